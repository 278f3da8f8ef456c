package middleware

import (
	"net/http"

	"liquidbiopsy/api/contexts"
	"liquidbiopsy/api/models/constants/confidence"

	"github.com/labstack/echo"
)

/*
	Echo middleware to validate an optional `confidence` HTTP query
	parameter used to filter a synthesized cohort by its derived label.
*/
func ValidateOptionalConfidenceAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.LiquidBiopsyContext)

		// check for a 'confidence' query parameter
		confidenceQP := c.QueryParam("confidence")
		if len(confidenceQP) > 0 {
			if !confidence.IsKnownConfidenceLabel(confidenceQP) {
				// if invalid confidence label
				return echo.NewHTTPError(http.StatusBadRequest, "Please provide a 'confidence' of HighConfidence or NeedsValidation!")
			}

			gc.Confidence = confidence.CastToConfidenceLabel(confidenceQP)
		}

		return next(c)
	}
}
