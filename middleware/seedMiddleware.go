package middleware

import (
	"net/http"
	"strconv"

	"liquidbiopsy/api/contexts"

	"github.com/labstack/echo"
)

/*
	Echo middleware to validate an optional `seed` HTTP query parameter.
	When provided, the generation pass becomes reproducible ; when
	absent, the pass is seeded from the clock.
*/
func ValidateOptionalSeedAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.LiquidBiopsyContext)

		// check for a 'seed' query parameter
		seedQP := c.QueryParam("seed")
		if len(seedQP) > 0 {
			parsedSeed, conversionErr := strconv.ParseInt(seedQP, 10, 64)
			if conversionErr != nil {
				// if invalid seed
				return echo.NewHTTPError(http.StatusBadRequest, "Error converting 'seed' query parameter! Check your input")
			}

			gc.Seed = &parsedSeed
		}

		return next(c)
	}
}
