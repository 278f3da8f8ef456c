package dataTypes

import (
	"net/http"

	"liquidbiopsy/api/contexts"
	"liquidbiopsy/api/models/schemas"

	"github.com/labstack/echo"
)

var variantDataTypeJson = map[string]interface{}{
	"id":              "variant",
	"label":           "ctDNA Variants",
	"queryable":       true,
	"schema":          schemas.VARIANT_SCHEMA,
	"metadata_schema": schemas.VARIANT_METADATA_SCHEMA,
}

var qcDataTypeJson = map[string]interface{}{
	"id":              "qc-daily",
	"label":           "Daily QC Metrics",
	"queryable":       true,
	"schema":          schemas.QC_DAILY_SCHEMA,
	"metadata_schema": schemas.QC_METADATA_SCHEMA,
}

func GetDataTypes(c echo.Context) error {
	gc := c.(*contexts.LiquidBiopsyContext)

	// synthetic data types regenerate per request ; the advertised
	// count is the configured generation size, not a document count
	variantDataTypeJson["count"] = gc.Config.Api.DemoCohortSize
	qcDataTypeJson["count"] = gc.Config.Api.QcWindowDays

	return c.JSON(http.StatusOK, []map[string]interface{}{
		variantDataTypeJson,
		qcDataTypeJson,
	})
}

func GetVariantDataType(c echo.Context) error {
	return c.JSON(http.StatusOK, variantDataTypeJson)
}

func GetVariantDataTypeSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, schemas.VARIANT_SCHEMA)
}

func GetQcDataType(c echo.Context) error {
	return c.JSON(http.StatusOK, qcDataTypeJson)
}

func GetQcDataTypeSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, schemas.QC_DAILY_SCHEMA)
}
