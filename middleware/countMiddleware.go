package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"liquidbiopsy/api/contexts"

	"github.com/labstack/echo"
)

/*
	Echo middleware to validate an optional `count` HTTP query parameter.
	Falls back to the configured demo cohort size when absent. A count of
	zero is valid and yields an empty cohort.
*/
func ValidateOptionalCountAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.LiquidBiopsyContext)

		count := gc.Config.Api.DemoCohortSize

		// check for a 'count' query parameter
		countQP := c.QueryParam("count")
		if len(countQP) > 0 {
			parsedCount, conversionErr := strconv.Atoi(countQP)
			if conversionErr != nil {
				// if invalid count
				return echo.NewHTTPError(http.StatusBadRequest, "Error converting 'count' query parameter! Check your input")
			}

			if parsedCount < 0 {
				return echo.NewHTTPError(http.StatusBadRequest, "Please provide a non-negative 'count'!")
			}

			if parsedCount > gc.Config.Api.MaxCohortSize {
				return echo.NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("Please provide a 'count' no greater than %d!", gc.Config.Api.MaxCohortSize))
			}

			count = parsedCount
		}

		gc.Count = count
		return next(c)
	}
}
