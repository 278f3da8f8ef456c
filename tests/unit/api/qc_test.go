package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	gam "liquidbiopsy/api/middleware"
	"liquidbiopsy/api/models/dtos"
	qcMvc "liquidbiopsy/api/mvc/qc"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestGetQcTrends(t *testing.T) {
	handler := gam.ValidateOptionalDaysAttribute(gam.ValidateOptionalSeedAttribute(qcMvc.GetQcTrends))

	t.Run("should return the requested window in chronological order", func(t *testing.T) {
		gc, rec := setUpEcho(http.MethodGet, "/qc/trends?days=10&seed=3")

		assert.NoError(t, handler(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.QcTrendsResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, 10, response.Count)
		assert.Len(t, response.Results, 10)

		// the window ends on today's date
		now := time.Now()
		last := response.Results[9].Date
		assert.Equal(t, now.Year(), last.Year())
		assert.Equal(t, now.Month(), last.Month())
		assert.Equal(t, now.Day(), last.Day())

		for i := 1; i < len(response.Results); i++ {
			assert.True(t, response.Results[i].Date.After(response.Results[i-1].Date))
		}

		for _, day := range response.Results {
			assert.GreaterOrEqual(t, day.ValidationRate, 0.85)
			assert.LessOrEqual(t, day.ValidationRate, 0.98)
			assert.GreaterOrEqual(t, day.ArtifactRate, 0.02)
			assert.LessOrEqual(t, day.ArtifactRate, 0.08)
		}
	})

	t.Run("zero days yields an empty window, not a failure", func(t *testing.T) {
		gc, rec := setUpEcho(http.MethodGet, "/qc/trends?days=0")

		assert.NoError(t, handler(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.QcTrendsResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, 0, response.Count)
		assert.Empty(t, response.Results)
	})

	t.Run("malformed days is rejected", func(t *testing.T) {
		gc, _ := setUpEcho(http.MethodGet, "/qc/trends?days=tomorrow")

		err := handler(gc)
		assert.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestGetQcOverview(t *testing.T) {
	handler := gam.ValidateOptionalDaysAttribute(gam.ValidateOptionalSeedAttribute(qcMvc.GetQcOverview))

	t.Run("should aggregate the window", func(t *testing.T) {
		gc, rec := setUpEcho(http.MethodGet, "/qc/overview?days=10&seed=4")

		assert.NoError(t, handler(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.QcSummaryResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, 10, response.Summary.Days)
		assert.GreaterOrEqual(t, response.Summary.MeanValidationRate, 0.85)
		assert.LessOrEqual(t, response.Summary.MeanValidationRate, 0.98)
		assert.GreaterOrEqual(t, response.Summary.TotalSamplesProcessed, 10*40)
		assert.LessOrEqual(t, response.Summary.TotalSamplesProcessed, 10*80)
	})
}
