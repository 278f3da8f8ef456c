package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"liquidbiopsy/api/contexts"
	gam "liquidbiopsy/api/middleware"
	cancerType "liquidbiopsy/api/models/constants/cancer-type"
	"liquidbiopsy/api/models/constants/confidence"
	serviceInfo "liquidbiopsy/api/models/constants/service-info"
	"liquidbiopsy/api/models/constants/gene"
	"liquidbiopsy/api/models/dtos"
	cohortsMvc "liquidbiopsy/api/mvc/cohorts"
	dashboardMvc "liquidbiopsy/api/mvc/dashboard"
	serviceInfoMvc "liquidbiopsy/api/mvc/service-info"
	variantsMvc "liquidbiopsy/api/mvc/variants"
	qcService "liquidbiopsy/api/services/qc"
	variantsService "liquidbiopsy/api/services/variants"
	"liquidbiopsy/api/tests/common"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func setUpEcho(method string, path string) (*contexts.LiquidBiopsyContext, *httptest.ResponseRecorder) {
	cfg := common.InitConfig()

	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	gc := &contexts.LiquidBiopsyContext{
		Context:        c,
		Es7Client:      nil, // archive surface stays disabled in unit tests
		Config:         cfg,
		VariantService: variantsService.NewVariantService(cfg),
		QcService:      qcService.NewQcService(cfg),
		ArchiveService: nil,
	}
	return gc, rec
}

func getJsonBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	// - extract body bytes from response
	body, _ := io.ReadAll(rec.Body)
	// - unmarshal or decode the JSON to a declared empty interface.
	var bodyJson map[string]interface{}
	json.Unmarshal(body, &bodyJson)

	return bodyJson
}

func TestGetServiceInfo(t *testing.T) {
	t.Run("should return 200 status ok and service descriptor", func(t *testing.T) {
		// set up
		gc, rec := setUpEcho(http.MethodGet, "/service-info")

		// perform
		serviceInfoMvc.GetServiceInfo(gc)

		// verify response status
		assert.Equal(t, http.StatusOK, rec.Code)

		// verify body
		body := getJsonBody(rec)

		// - detailed
		assert.Equal(t, true, body["dashboard"].(map[string]interface{})["dataService"].(bool))

		assert.Equal(t, string(serviceInfo.SERVICE_ID), body["id"].(string))
		assert.Equal(t, string(serviceInfo.SERVICE_NAME), body["name"].(string))
		assert.Equal(t, string(serviceInfo.SERVICE_DESCRIPTION), body["description"].(string))
	})
}

func TestVariantsGetDemo(t *testing.T) {
	handler := gam.ValidateOptionalCountAttribute(
		gam.ValidateOptionalSeedAttribute(
			gam.ValidateOptionalCancerTypeAttribute(
				gam.ValidateOptionalConfidenceAttribute(variantsMvc.VariantsGetDemo))))

	t.Run("should return the requested number of variants", func(t *testing.T) {
		gc, rec := setUpEcho(http.MethodGet, "/variants/demo?count=8&seed=42")

		assert.NoError(t, handler(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.VariantsResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, 8, response.Count)
		assert.Len(t, response.Results, 8)

		for _, record := range response.Results {
			assert.LessOrEqual(t, record.VafPercent, 0.20)
			assert.True(t, gene.IsKnownGene(string(record.Gene)))
		}
	})

	t.Run("zero count yields an empty cohort, not a failure", func(t *testing.T) {
		gc, rec := setUpEcho(http.MethodGet, "/variants/demo?count=0")

		assert.NoError(t, handler(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.VariantsResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, 0, response.Count)
		assert.Empty(t, response.Results)
	})

	t.Run("the same seed reproduces the same cohort", func(t *testing.T) {
		gcA, recA := setUpEcho(http.MethodGet, "/variants/demo?count=8&seed=1337")
		gcB, recB := setUpEcho(http.MethodGet, "/variants/demo?count=8&seed=1337")

		assert.NoError(t, handler(gcA))
		assert.NoError(t, handler(gcB))

		var responseA, responseB dtos.VariantsResponseDTO
		assert.NoError(t, json.Unmarshal(recA.Body.Bytes(), &responseA))
		assert.NoError(t, json.Unmarshal(recB.Body.Bytes(), &responseB))

		assert.Equal(t, len(responseA.Results), len(responseB.Results))
		for i := range responseA.Results {
			assert.Equal(t, responseA.Results[i].Gene, responseB.Results[i].Gene)
			assert.Equal(t, responseA.Results[i].VafPercent, responseB.Results[i].VafPercent)
			assert.Equal(t, responseA.Results[i].Confidence, responseB.Results[i].Confidence)
		}
	})

	t.Run("cancerType filter only keeps matching records", func(t *testing.T) {
		gc, rec := setUpEcho(http.MethodGet, "/variants/demo?count=100&seed=6&cancerType=NSCLC")

		assert.NoError(t, handler(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.VariantsResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, len(response.Results), response.Count)
		for _, record := range response.Results {
			assert.Equal(t, cancerType.NSCLC, record.CancerType)
		}
	})

	t.Run("confidence filter only keeps matching records", func(t *testing.T) {
		gc, rec := setUpEcho(http.MethodGet, "/variants/demo?count=100&seed=6&confidence=HighConfidence")

		assert.NoError(t, handler(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.VariantsResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, len(response.Results), response.Count)
		for _, record := range response.Results {
			assert.Equal(t, confidence.HighConfidence, record.Confidence)
		}
	})

	t.Run("unknown cancerType is rejected", func(t *testing.T) {
		gc, _ := setUpEcho(http.MethodGet, "/variants/demo?cancerType=Lung")

		err := handler(gc)
		assert.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("unknown confidence label is rejected", func(t *testing.T) {
		gc, _ := setUpEcho(http.MethodGet, "/variants/demo?confidence=maybe")

		err := handler(gc)
		assert.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("malformed count is rejected", func(t *testing.T) {
		gc, _ := setUpEcho(http.MethodGet, "/variants/demo?count=banana")

		err := handler(gc)
		assert.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("negative count is rejected at the http edge", func(t *testing.T) {
		gc, _ := setUpEcho(http.MethodGet, "/variants/demo?count=-1")

		err := handler(gc)
		assert.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestVariantsGetByGene(t *testing.T) {
	handler := gam.MandateGeneAttribute(
		gam.ValidateOptionalCountAttribute(
			gam.ValidateOptionalSeedAttribute(variantsMvc.VariantsGetByGene)))

	t.Run("should only return variants for the requested gene", func(t *testing.T) {
		gc, rec := setUpEcho(http.MethodGet, "/variants/get/by/gene?gene=EGFR&count=50&seed=2")

		assert.NoError(t, handler(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.VariantsByGeneResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, gene.EGFR, response.Gene)
		for _, record := range response.Results {
			assert.Equal(t, gene.EGFR, record.Gene)
		}
	})

	t.Run("missing gene is rejected", func(t *testing.T) {
		gc, _ := setUpEcho(http.MethodGet, "/variants/get/by/gene")

		err := handler(gc)
		assert.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("unknown gene is rejected", func(t *testing.T) {
		gc, _ := setUpEcho(http.MethodGet, "/variants/get/by/gene?gene=MYC")

		err := handler(gc)
		assert.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestGetVariantsSummary(t *testing.T) {
	handler := gam.ValidateOptionalCountAttribute(
		gam.ValidateOptionalSeedAttribute(
			gam.ValidateCalibratedThresholds(variantsMvc.GetVariantsSummary)))

	t.Run("should summarize a seeded cohort", func(t *testing.T) {
		gc, rec := setUpEcho(http.MethodGet, "/variants/summary?count=100&seed=5")

		assert.NoError(t, handler(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.VariantsSummaryResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, 100, response.Summary.Count)
		assert.GreaterOrEqual(t, response.Summary.HighConfidenceCount, response.Summary.ActionableCount)
		assert.Greater(t, response.Summary.AverageVafPercent, 0.0)
	})

	t.Run("unbalanced calibrated thresholds are rejected", func(t *testing.T) {
		gc, _ := setUpEcho(http.MethodGet, "/variants/summary?vafThreshold=0.05")

		err := handler(gc)
		assert.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestGetDashboardSummary(t *testing.T) {
	handler := gam.ValidateOptionalCountAttribute(
		gam.ValidateOptionalDaysAttribute(
			gam.ValidateOptionalSeedAttribute(dashboardMvc.GetDashboardSummary)))

	t.Run("should combine both panels", func(t *testing.T) {
		gc, rec := setUpEcho(http.MethodGet, "/dashboard/summary?count=8&days=10&seed=9")

		assert.NoError(t, handler(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.DashboardSummaryResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, 8, response.Variants.Count)
		assert.Equal(t, 10, response.Qc.Days)
	})
}

func TestCohortArchiveDisabled(t *testing.T) {
	t.Run("archive surface degrades when elasticsearch is off", func(t *testing.T) {
		gc, rec := setUpEcho(http.MethodGet, "/cohorts/archive/run")

		assert.NoError(t, cohortsMvc.CohortsArchiveRun(gc))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		body := getJsonBody(rec)
		assert.Equal(t, float64(503), body["status"].(float64))
	})
}
