package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"time"

	"liquidbiopsy/api/models"
	"liquidbiopsy/api/models/records"

	"github.com/Jeffail/gabs"
	es7 "github.com/elastic/go-elasticsearch/v7"
)

const cohortsIndex = "cohorts"

// CreateCohortsIndexIfNotExists bootstraps the archive index with the
// cohort variant mapping on first use.
func CreateCohortsIndexIfNotExists(cfg *models.Config, es *es7.Client) error {
	existsRes, existsErr := es.Indices.Exists([]string{cohortsIndex})
	if existsErr != nil {
		fmt.Printf("Error checking for index %s: %s\n", cohortsIndex, existsErr)
		return existsErr
	}
	defer existsRes.Body.Close()

	if existsRes.StatusCode == 200 {
		return nil
	}

	var buf bytes.Buffer
	indexBody := map[string]interface{}{
		"mappings": records.COHORT_INDEX_MAPPING,
	}
	if err := json.NewEncoder(&buf).Encode(indexBody); err != nil {
		fmt.Printf("Error encoding index body: %s\n", err)
		return err
	}

	createRes, createErr := es.Indices.Create(cohortsIndex, es.Indices.Create.WithBody(&buf))
	if createErr != nil {
		fmt.Printf("Error creating index %s: %s\n", cohortsIndex, createErr)
		return createErr
	}
	defer createRes.Body.Close()

	fmt.Printf("Created index %s\n", cohortsIndex)

	return nil
}

// CountArchivedVariants returns the total number of archived variant
// documents across all cohorts.
func CountArchivedVariants(cfg *models.Config, es *es7.Client) (int, error) {
	res, countErr := es.Count(
		es.Count.WithContext(context.Background()),
		es.Count.WithIndex(cohortsIndex),
	)
	if countErr != nil {
		fmt.Printf("Error getting count response: %s\n", countErr)
		return 0, countErr
	}
	defer res.Body.Close()

	responseBody, bodyErr := ioutil.ReadAll(res.Body)
	if bodyErr != nil {
		fmt.Printf("Error reading count body: %s\n", bodyErr)
		return 0, bodyErr
	}

	jsonParsed, parseErr := gabs.ParseJSON(responseBody)
	if parseErr != nil {
		fmt.Printf("Parsing error: %s\n", parseErr)
		return 0, parseErr
	}

	count, ok := jsonParsed.Path("count").Data().(float64)
	if !ok {
		return 0, fmt.Errorf("unexpected count response : %s", string(responseBody))
	}

	return int(count), nil
}

// DeleteArchivedCohortsOlderThan removes archived variant documents
// created before the cutoff ; used by the retention sweep.
func DeleteArchivedCohortsOlderThan(cfg *models.Config, es *es7.Client, cutoff time.Time) (int, error) {
	var buf bytes.Buffer
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"createdTime": map[string]interface{}{
					"lt": cutoff.Format(time.RFC3339),
				},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		fmt.Printf("Error encoding query: %s\n", err)
		return 0, err
	}

	if cfg.Debug {
		// view the outbound elasticsearch query
		fmt.Println(buf.String())
	}

	res, deleteErr := es.DeleteByQuery([]string{cohortsIndex}, &buf,
		es.DeleteByQuery.WithContext(context.Background()),
	)
	if deleteErr != nil {
		fmt.Printf("Error getting delete-by-query response: %s\n", deleteErr)
		return 0, deleteErr
	}
	defer res.Body.Close()

	responseBody, bodyErr := ioutil.ReadAll(res.Body)
	if bodyErr != nil {
		fmt.Printf("Error reading delete-by-query body: %s\n", bodyErr)
		return 0, bodyErr
	}

	jsonParsed, parseErr := gabs.ParseJSON(responseBody)
	if parseErr != nil {
		fmt.Printf("Parsing error: %s\n", parseErr)
		return 0, parseErr
	}

	deleted, ok := jsonParsed.Path("deleted").Data().(float64)
	if !ok {
		return 0, fmt.Errorf("unexpected delete-by-query response : %s", string(responseBody))
	}

	return int(deleted), nil
}
