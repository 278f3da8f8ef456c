package middleware

import (
	"net/http"

	"liquidbiopsy/api/contexts"
	cancerType "liquidbiopsy/api/models/constants/cancer-type"

	"github.com/labstack/echo"
)

/*
	Echo middleware to validate an optional `cancerType` HTTP query
	parameter used to filter a synthesized cohort.
*/
func ValidateOptionalCancerTypeAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.LiquidBiopsyContext)

		// check for a 'cancerType' query parameter
		cancerTypeQP := c.QueryParam("cancerType")
		if len(cancerTypeQP) > 0 {
			if !cancerType.IsKnownCancerType(cancerTypeQP) {
				// if invalid cancer type
				return echo.NewHTTPError(http.StatusBadRequest, "Please provide a 'cancerType' from the cohort set (NSCLC, CRC, Breast, Pancreatic)!")
			}

			gc.CancerType = cancerType.CastToCancerType(cancerTypeQP)
		}

		return next(c)
	}
}
