package cohorts

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"liquidbiopsy/api/contexts"
	archiveModels "liquidbiopsy/api/models/archive"
	s "liquidbiopsy/api/models/constants/sort"
	"liquidbiopsy/api/models/dtos"
	"liquidbiopsy/api/models/records"
	esRepo "liquidbiopsy/api/repositories/elasticsearch"
	archiveService "liquidbiopsy/api/services/archive"
	"liquidbiopsy/api/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/mitchellh/mapstructure"
)

func archiveDisabledResponse(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
		"status":  503,
		"message": "Cohort archiving is disabled ; set LB_ES_ENABLED to use it!",
	})
}

func CohortsArchiveRun(c echo.Context) error {
	fmt.Printf("[%s] - CohortsArchiveRun hit!\n", time.Now())
	gc := c.(*contexts.LiquidBiopsyContext)
	cfg := gc.Config

	if !cfg.Elasticsearch.Enabled || gc.ArchiveService == nil {
		return archiveDisabledResponse(c)
	}

	newRequest := &archiveModels.CohortArchiveRequest{
		Id:        uuid.New(),
		CohortId:  uuid.NewString(),
		State:     archiveModels.Queued,
		CreatedAt: fmt.Sprintf("%v", time.Now()),
	}

	// trigger background archive process
	go func(request *archiveModels.CohortArchiveRequest) {
		as := gc.ArchiveService

		as.ArchiveRequestChan <- request

		// a fresh, time-seeded cohort stamped with this run's cohort id
		cohort := gc.VariantService.SynthesizeCohort(utils.NewSeededRand(nil), cfg.Api.DemoCohortSize)
		for i := range cohort {
			cohort[i].CohortId = request.CohortId
		}

		as.ArchiveCohort(cohort, request)
	}(newRequest)

	return c.JSON(http.StatusOK, archiveModels.CohortArchiveResponseDTO{
		Id:       newRequest.Id,
		CohortId: newRequest.CohortId,
		State:    newRequest.State,
		Message:  "please check in with /cohorts/archive/requests !",
	})
}

func GetAllCohortArchiveRequests(c echo.Context) error {
	fmt.Printf("[%s] - GetAllCohortArchiveRequests hit!\n", time.Now())
	gc := c.(*contexts.LiquidBiopsyContext)

	if !gc.Config.Elasticsearch.Enabled || gc.ArchiveService == nil {
		return archiveDisabledResponse(c)
	}

	gc.ArchiveService.ArchiveRequestMapMux.RLock()
	defer gc.ArchiveService.ArchiveRequestMapMux.RUnlock()

	// transform map of id-to-archiveRequests to an array
	m := make([]*archiveModels.CohortArchiveRequest, 0, len(gc.ArchiveService.ArchiveRequestMap))
	for _, val := range gc.ArchiveService.ArchiveRequestMap {
		m = append(m, val)
	}
	return c.JSON(http.StatusOK, m)
}

func GetArchivedVariantsByGene(c echo.Context) error {
	fmt.Printf("[%s] - GetArchivedVariantsByGene hit!\n", time.Now())
	gc := c.(*contexts.LiquidBiopsyContext)
	cfg := gc.Config
	es := gc.Es7Client

	if !cfg.Elasticsearch.Enabled || es == nil {
		return archiveDisabledResponse(c)
	}

	sortByDate := s.CastToSortDirection(c.QueryParam("sort"))

	docs, searchErr := esRepo.GetArchivedVariantsByGene(cfg, es, gc.Gene, 100, sortByDate)
	if searchErr != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  500,
			"message": "Something went wrong... Please contact the administrator!",
		})
	}

	// gather data from "hits"
	docsHits := docs["hits"].(map[string]interface{})["hits"]
	allDocHits := []map[string]interface{}{}
	mapstructure.Decode(docsHits, &allDocHits)

	// grab _source for each hit
	allSources := make([]records.VariantRecord, 0)

	for _, r := range allDocHits {
		source := r["_source"]
		byteSlice, _ := json.Marshal(source)

		// cast map[string]interface{} to variant record
		var resultingVariant records.VariantRecord
		if err := json.Unmarshal(byteSlice, &resultingVariant); err != nil {
			fmt.Println("failed to unmarshal:", err)
			continue
		}

		// accumulate structs
		allSources = append(allSources, resultingVariant)
	}

	fmt.Printf("Found %d docs!\n", len(allSources))

	return c.JSON(http.StatusOK, dtos.VariantsByGeneResponseDTO{
		Status:  200,
		Message: "Success",
		Gene:    gc.Gene,
		Count:   len(allSources),
		Results: allSources,
	})
}

func GetRecentArchivedVariants(c echo.Context) error {
	fmt.Printf("[%s] - GetRecentArchivedVariants hit!\n", time.Now())
	gc := c.(*contexts.LiquidBiopsyContext)
	cfg := gc.Config
	es := gc.Es7Client

	if !cfg.Elasticsearch.Enabled || es == nil {
		return archiveDisabledResponse(c)
	}

	// read back through the same contract the synthetic generator
	// implements
	source := &archiveService.ArchivedVariantSource{
		Es7Client: es,
		Config:    cfg,
	}

	results, sourceErr := source.Variants(c.Request().Context(), gc.Count)
	if sourceErr != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  500,
			"message": "Something went wrong... Please contact the administrator!",
		})
	}

	return c.JSON(http.StatusOK, dtos.VariantsResponseDTO{
		Status:  200,
		Message: "Success",
		Count:   len(results),
		Results: results,
	})
}

func GetArchivedCohortsOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetArchivedCohortsOverview hit!\n", time.Now())
	gc := c.(*contexts.LiquidBiopsyContext)
	cfg := gc.Config
	es := gc.Es7Client

	if !cfg.Elasticsearch.Enabled || es == nil {
		return archiveDisabledResponse(c)
	}

	resultsMap := map[string]interface{}{}

	callGetBucketsByKeyword := func(key string, keyword string) {
		results, bucketsError := esRepo.GetArchivedVariantsBucketsByKeyword(cfg, es, keyword)
		if bucketsError != nil {
			resultsMap[key] = map[string]interface{}{
				"error": "Something went wrong. Please contact the administrator!",
			}
			return
		}

		// retrieve aggregations.items.buckets
		bucketsMapped := []interface{}{}
		if aggs, aggsOk := results["aggregations"]; aggsOk {
			aggsMapped := aggs.(map[string]interface{})

			if items, itemsOk := aggsMapped["items"]; itemsOk {
				itemsMapped := items.(map[string]interface{})

				if buckets, bucketsOk := itemsMapped["buckets"]; bucketsOk {
					bucketsMapped = buckets.([]interface{})
				}
			}
		}

		individualKeyMap := map[string]interface{}{}
		// push results bucket to map
		for _, bucket := range bucketsMapped {
			doc_key := fmt.Sprint(bucket.(map[string]interface{})["key"]) // ensure strings and numbers are expressed as strings
			doc_count := bucket.(map[string]interface{})["doc_count"]

			individualKeyMap[doc_key] = doc_count
		}

		resultsMap[key] = individualKeyMap
	}

	// get distribution of genes across archived variants
	callGetBucketsByKeyword("genes", "gene.keyword")

	// get distribution of cohort IDs
	callGetBucketsByKeyword("cohortIDs", "cohortId.keyword")

	// get distribution of confidence labels
	callGetBucketsByKeyword("confidence", "confidence.keyword")

	// get total count of archived variants
	if total, countErr := esRepo.CountArchivedVariants(cfg, es); countErr == nil {
		resultsMap["totalArchivedVariants"] = total
	}

	return c.JSON(http.StatusOK, resultsMap)
}
