package middleware

import (
	"net/http"
	"strconv"

	"liquidbiopsy/api/contexts"

	"github.com/labstack/echo"
)

func ValidateCalibratedThresholds(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.LiquidBiopsyContext)

		var (
			vafFloor float64
			snFloor  float64

			vafFloorPointer *float64 // simulate "nullable" float
			snFloorPointer  *float64
		)

		// check for a 'vafThreshold' query parameter
		vafThresholdQP := c.QueryParam("vafThreshold")
		if len(vafThresholdQP) > 0 {
			// try to convert to a float
			vf, conversionErr := strconv.ParseFloat(vafThresholdQP, 64)
			if conversionErr == nil {
				vafFloor = vf
				vafFloorPointer = &vafFloor
			}
		}

		// check for an 'snThreshold' query parameter
		snThresholdQP := c.QueryParam("snThreshold")
		if len(snThresholdQP) > 0 {
			// try to convert to a float
			sf, conversionErr := strconv.ParseFloat(snThresholdQP, 64)
			if conversionErr == nil {
				snFloor = sf
				snFloorPointer = &snFloor
			}
		}

		// allow call to pass if and only if:
		// - neither threshold parameter is provided
		// - both are provided
		// -- and if both are provided, that they are positive
		if (snFloorPointer == nil && vafFloorPointer != nil) ||
			(snFloorPointer != nil && vafFloorPointer == nil) ||
			(snFloorPointer != nil && vafFloorPointer != nil && (vafFloor <= 0 || snFloor <= 0)) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid calibrated thresholds!")
		}

		gc.VafPercentFloor = vafFloorPointer
		gc.SignalToNoiseFloor = snFloorPointer
		return next(c)
	}
}
