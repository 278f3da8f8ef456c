package variants

import (
	"fmt"
	"net/http"
	"time"

	"liquidbiopsy/api/contexts"
	"liquidbiopsy/api/models/dtos"
	"liquidbiopsy/api/models/records"
	"liquidbiopsy/api/mvc"
	variantsService "liquidbiopsy/api/services/variants"

	"github.com/labstack/echo"
)

func VariantsGetDemo(c echo.Context) error {
	fmt.Printf("[%s] - VariantsGetDemo hit!\n", time.Now())
	gc := c.(*contexts.LiquidBiopsyContext)

	_, rng, count, _ := mvc.RetrieveCommonElements(c)

	cohort := gc.VariantService.SynthesizeCohort(rng, count)

	// apply optional cohort filters
	results := make([]records.VariantRecord, 0, len(cohort))
	for _, record := range cohort {
		if gc.CancerType != "" && record.CancerType != gc.CancerType {
			continue
		}
		if gc.Confidence != "" && record.Confidence != gc.Confidence {
			continue
		}
		results = append(results, record)
	}

	return c.JSON(http.StatusOK, dtos.VariantsResponseDTO{
		Status:  200,
		Message: "Success",
		Count:   len(results),
		Results: results,
	})
}

func VariantsGetByGene(c echo.Context) error {
	fmt.Printf("[%s] - VariantsGetByGene hit!\n", time.Now())
	gc := c.(*contexts.LiquidBiopsyContext)

	_, rng, count, _ := mvc.RetrieveCommonElements(c)

	// synthesize a cohort and keep only the requested gene
	cohort := gc.VariantService.SynthesizeCohort(rng, count)

	matches := make([]records.VariantRecord, 0)
	for _, record := range cohort {
		if record.Gene == gc.Gene {
			matches = append(matches, record)
		}
	}

	return c.JSON(http.StatusOK, dtos.VariantsByGeneResponseDTO{
		Status:  200,
		Message: "Success",
		Gene:    gc.Gene,
		Count:   len(matches),
		Results: matches,
	})
}

func GetVariantsOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetVariantsOverview hit!\n", time.Now())
	gc := c.(*contexts.LiquidBiopsyContext)

	_, rng, count, _ := mvc.RetrieveCommonElements(c)

	cohort := gc.VariantService.SynthesizeCohort(rng, count)

	return c.JSON(http.StatusOK, variantsService.GetVariantsOverview(cohort))
}

func GetVariantsSummary(c echo.Context) error {
	fmt.Printf("[%s] - GetVariantsSummary hit!\n", time.Now())
	gc := c.(*contexts.LiquidBiopsyContext)

	cfg, rng, count, _ := mvc.RetrieveCommonElements(c)

	// apply per-request calibration overrides, if any
	thresholds := cfg.Thresholds
	if gc.VafPercentFloor != nil {
		thresholds.VafPercentFloor = *gc.VafPercentFloor
	}
	if gc.SignalToNoiseFloor != nil {
		thresholds.SignalToNoiseFloor = *gc.SignalToNoiseFloor
	}

	cohort := gc.VariantService.SynthesizeCohort(rng, count)

	return c.JSON(http.StatusOK, dtos.VariantsSummaryResponseDTO{
		Status:  200,
		Message: "Success",
		Summary: gc.VariantService.Summarize(cohort, thresholds),
	})
}
