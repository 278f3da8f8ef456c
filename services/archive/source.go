package archiveService

import (
	"context"
	"encoding/json"
	"fmt"

	"liquidbiopsy/api/models"
	s "liquidbiopsy/api/models/constants/sort"
	"liquidbiopsy/api/models/records"
	esRepo "liquidbiopsy/api/repositories/elasticsearch"
	"liquidbiopsy/api/sources"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/mitchellh/mapstructure"
)

type (
	// ArchivedVariantSource serves previously archived cohort variants
	// from Elasticsearch behind the same contract the synthetic
	// generator implements.
	ArchivedVariantSource struct {
		Es7Client *es7.Client
		Config    *models.Config
	}
)

var _ sources.VariantSource = (*ArchivedVariantSource)(nil)

func (src *ArchivedVariantSource) Variants(ctx context.Context, limit int) ([]records.VariantRecord, error) {
	docs, searchErr := esRepo.GetRecentArchivedVariants(src.Config, src.Es7Client, limit, s.Descending)
	if searchErr != nil {
		return nil, searchErr
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

	return allSources, nil
}
