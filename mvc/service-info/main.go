package serviceInfo

import (
	"liquidbiopsy/api/contexts"
	serviceInfo "liquidbiopsy/api/models/constants/service-info"

	"net/http"

	"github.com/labstack/echo"
)

// Spec: https://github.com/ga4gh-discovery/ga4gh-service-info
func GetServiceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"dashboard": map[string]interface{}{
			"dataService": true,
			"serviceKind": serviceInfo.SERVICE_ARTIFACT,
		},
		"type": map[string]interface{}{
			"artifact": serviceInfo.SERVICE_ARTIFACT,
			"group":    serviceInfo.SERVICE_TYPE_NO_VER,
			"version":  c.(*contexts.LiquidBiopsyContext).Config.SemVer,
		},
		"id":          serviceInfo.SERVICE_ID,
		"name":        serviceInfo.SERVICE_NAME,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"organization": map[string]string{
			"name": "Liquid Biopsy Demo",
			"url":  "https://github.com/ajuni-sohota",
		},
		"contactUrl": c.(*contexts.LiquidBiopsyContext).Config.ServiceContact,
		"version":    c.(*contexts.LiquidBiopsyContext).Config.SemVer,
	})
}
