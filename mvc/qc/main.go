package qc

import (
	"fmt"
	"net/http"
	"time"

	"liquidbiopsy/api/contexts"
	"liquidbiopsy/api/models/dtos"
	"liquidbiopsy/api/mvc"

	"github.com/labstack/echo"
)

func GetQcTrends(c echo.Context) error {
	fmt.Printf("[%s] - GetQcTrends hit!\n", time.Now())
	gc := c.(*contexts.LiquidBiopsyContext)

	_, rng, _, days := mvc.RetrieveCommonElements(c)

	trend := gc.QcService.SynthesizeTrend(rng, days, time.Now())

	return c.JSON(http.StatusOK, dtos.QcTrendsResponseDTO{
		Status:  200,
		Message: "Success",
		Count:   len(trend),
		Results: trend,
	})
}

func GetQcOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetQcOverview hit!\n", time.Now())
	gc := c.(*contexts.LiquidBiopsyContext)

	_, rng, _, days := mvc.RetrieveCommonElements(c)

	trend := gc.QcService.SynthesizeTrend(rng, days, time.Now())

	return c.JSON(http.StatusOK, dtos.QcSummaryResponseDTO{
		Status:  200,
		Message: "Success",
		Summary: gc.QcService.Summarize(trend),
	})
}
