package dashboard

import (
	"fmt"
	"net/http"
	"time"

	"liquidbiopsy/api/contexts"
	"liquidbiopsy/api/models/dtos"
	"liquidbiopsy/api/utils"

	"github.com/labstack/echo"
	"golang.org/x/sync/errgroup"
)

// GetDashboardSummary assembles the combined landing-page payload,
// generating the variant and QC panels concurrently.
func GetDashboardSummary(c echo.Context) error {
	fmt.Printf("[%s] - GetDashboardSummary hit!\n", time.Now())
	gc := c.(*contexts.LiquidBiopsyContext)
	cfg := gc.Config

	var (
		variantsSummary dtos.VariantsSummary
		qcSummary       dtos.QcSummary
	)

	// each panel gets its own random source ; a seeded request derives
	// a distinct-but-reproducible seed per panel
	var variantsSeed, qcSeed *int64
	if gc.Seed != nil {
		vs := *gc.Seed
		qs := *gc.Seed + 1
		variantsSeed = &vs
		qcSeed = &qs
	}

	var g errgroup.Group

	g.Go(func() error {
		rng := utils.NewSeededRand(variantsSeed)
		cohort := gc.VariantService.SynthesizeCohort(rng, gc.Count)
		variantsSummary = gc.VariantService.Summarize(cohort, cfg.Thresholds)
		return nil
	})

	g.Go(func() error {
		rng := utils.NewSeededRand(qcSeed)
		trend := gc.QcService.SynthesizeTrend(rng, gc.WindowDays, time.Now())
		qcSummary = gc.QcService.Summarize(trend)
		return nil
	})

	if err := g.Wait(); err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  500,
			"message": "Something went wrong... Please contact the administrator!",
		})
	}

	return c.JSON(http.StatusOK, dtos.DashboardSummaryResponseDTO{
		Status:   200,
		Message:  "Success",
		Variants: variantsSummary,
		Qc:       qcSummary,
	})
}
