package mvc

import (
	"math/rand"

	"liquidbiopsy/api/contexts"
	"liquidbiopsy/api/models"
	"liquidbiopsy/api/utils"

	"github.com/labstack/echo"
)

// RetrieveCommonElements unwraps the pieces most generation handlers
// need : the configuration, a random source honoring an optional
// seed, and the validated count / window parameters.
func RetrieveCommonElements(c echo.Context) (*models.Config, *rand.Rand, int, int) {
	gc := c.(*contexts.LiquidBiopsyContext)
	cfg := gc.Config

	rng := utils.NewSeededRand(gc.Seed)

	return cfg, rng, gc.Count, gc.WindowDays
}
