package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"liquidbiopsy/api/contexts"

	"github.com/labstack/echo"
)

/*
	Echo middleware to validate an optional `days` HTTP query parameter
	for QC trend windows. Falls back to the configured window length when
	absent. A window of zero days is valid and yields an empty trend.
*/
func ValidateOptionalDaysAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.LiquidBiopsyContext)

		days := gc.Config.Api.QcWindowDays

		// check for a 'days' query parameter
		daysQP := c.QueryParam("days")
		if len(daysQP) > 0 {
			parsedDays, conversionErr := strconv.Atoi(daysQP)
			if conversionErr != nil {
				// if invalid window length
				return echo.NewHTTPError(http.StatusBadRequest, "Error converting 'days' query parameter! Check your input")
			}

			if parsedDays < 0 {
				return echo.NewHTTPError(http.StatusBadRequest, "Please provide a non-negative 'days'!")
			}

			if parsedDays > gc.Config.Api.MaxQcWindowDays {
				return echo.NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("Please provide a 'days' no greater than %d!", gc.Config.Api.MaxQcWindowDays))
			}

			days = parsedDays
		}

		gc.WindowDays = days
		return next(c)
	}
}
