package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"liquidbiopsy/api/models"
	c "liquidbiopsy/api/models/constants"
	s "liquidbiopsy/api/models/constants/sort"

	es7 "github.com/elastic/go-elasticsearch/v7"
)

// GetArchivedVariantsByGene searches the cohorts index for archived
// variant documents matching a gene.
func GetArchivedVariantsByGene(cfg *models.Config, es *es7.Client, gene c.Gene,
	size int, sortByDate c.SortDirection) (map[string]interface{}, error) {

	// set up sorting
	if sortByDate == s.Undefined {
		// default to newest first
		sortByDate = s.Descending
	}

	// overall query structure
	var buf bytes.Buffer
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{{
					"bool": map[string]interface{}{
						"must": []map[string]interface{}{
							{
								"match": map[string]interface{}{
									"gene": map[string]interface{}{
										"query": string(gene),
									},
								},
							},
						},
					}},
				},
			},
		},
		"size": size,
		"sort": []map[string]interface{}{
			{
				"createdTime": map[string]string{
					"order": string(sortByDate),
				},
			},
		},
	}

	// encode the query
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		fmt.Printf("Error encoding query: %s\n", err)
		return nil, err
	}

	if cfg.Debug {
		// view the outbound elasticsearch query
		fmt.Println(buf.String())
	}

	fmt.Printf("Query Start: %s\n", time.Now())

	// Perform the search request.
	res, searchErr := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(cohortsIndex),
		es.Search.WithBody(&buf),
		es.Search.WithTrackTotalHits(true),
		es.Search.WithPretty(),
	)
	if searchErr != nil {
		fmt.Printf("Error getting response: %s\n", searchErr)
		return nil, searchErr
	}

	defer res.Body.Close()

	// Declared an empty interface
	result := make(map[string]interface{})

	// Unmarshal or Decode the JSON to the interface.
	if umErr := json.NewDecoder(res.Body).Decode(&result); umErr != nil {
		fmt.Printf("Error decoding response: %s\n", umErr)
		return nil, umErr
	}

	fmt.Printf("Query End: %s\n", time.Now())

	return result, nil
}

// GetRecentArchivedVariants searches the cohorts index for archived
// variant documents across all cohorts, newest first by default.
func GetRecentArchivedVariants(cfg *models.Config, es *es7.Client,
	size int, sortByDate c.SortDirection) (map[string]interface{}, error) {

	// set up sorting
	if sortByDate == s.Undefined {
		// default to newest first
		sortByDate = s.Descending
	}

	// overall query structure
	var buf bytes.Buffer
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"match_all": map[string]interface{}{},
		},
		"size": size,
		"sort": []map[string]interface{}{
			{
				"createdTime": map[string]string{
					"order": string(sortByDate),
				},
			},
		},
	}

	// encode the query
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		fmt.Printf("Error encoding query: %s\n", err)
		return nil, err
	}

	if cfg.Debug {
		// view the outbound elasticsearch query
		fmt.Println(buf.String())
	}

	// Perform the search request.
	res, searchErr := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(cohortsIndex),
		es.Search.WithBody(&buf),
		es.Search.WithTrackTotalHits(true),
		es.Search.WithPretty(),
	)
	if searchErr != nil {
		fmt.Printf("Error getting response: %s\n", searchErr)
		return nil, searchErr
	}

	defer res.Body.Close()

	result := make(map[string]interface{})
	if umErr := json.NewDecoder(res.Body).Decode(&result); umErr != nil {
		fmt.Printf("Error decoding response: %s\n", umErr)
		return nil, umErr
	}

	return result, nil
}

// GetArchivedVariantsBucketsByKeyword aggregates archived variant
// documents into buckets by the given keyword field (e.g.
// "gene.keyword", "cohortId.keyword").
func GetArchivedVariantsBucketsByKeyword(cfg *models.Config, es *es7.Client, keyword string) (map[string]interface{}, error) {

	// overall query structure
	var buf bytes.Buffer
	query := map[string]interface{}{
		"size": "0",
		"aggs": map[string]interface{}{
			"items": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": keyword,
					"size":  "10000",
				},
			},
		},
	}

	// encode the query
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		fmt.Printf("Error encoding query: %s\n", err)
		return nil, err
	}

	if cfg.Debug {
		// view the outbound elasticsearch query
		fmt.Println(buf.String())
	}

	// Perform the search request.
	res, searchErr := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(cohortsIndex),
		es.Search.WithBody(&buf),
		es.Search.WithTrackTotalHits(true),
		es.Search.WithPretty(),
	)
	if searchErr != nil {
		fmt.Printf("Error getting response: %s\n", searchErr)
		return nil, searchErr
	}

	defer res.Body.Close()

	result := make(map[string]interface{})
	if umErr := json.NewDecoder(res.Body).Decode(&result); umErr != nil {
		fmt.Printf("Error decoding response: %s\n", umErr)
		return nil, umErr
	}

	return result, nil
}
