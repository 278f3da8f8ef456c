package archiveService

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"liquidbiopsy/api/models"
	archiveModels "liquidbiopsy/api/models/archive"
	"liquidbiopsy/api/models/archive/structs"
	"liquidbiopsy/api/models/records"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testCohort(n int) []records.VariantRecord {
	cohort := make([]records.VariantRecord, 0, n)
	for i := 0; i < n; i++ {
		cohort = append(cohort, records.VariantRecord{
			VariantId:   fmt.Sprintf("var_%03d", i+1),
			CreatedTime: time.Now(),
		})
	}
	return cohort
}

// a service whose client points at a closed port, so every bulk flush
// fails
func testArchiveService(t *testing.T) *ArchiveService {
	es, clientErr := es7.NewClient(es7.Config{Addresses: []string{"http://127.0.0.1:1"}})
	assert.NoError(t, clientErr)

	bi, indexerErr := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         "cohorts",
		Client:        es,
		NumWorkers:    2,
		FlushInterval: 100 * time.Millisecond,
	})
	assert.NoError(t, indexerErr)

	as := &ArchiveService{
		ArchiveRequestChan:  make(chan *archiveModels.CohortArchiveRequest),
		ArchiveRequestMap:   map[string]*archiveModels.CohortArchiveRequest{},
		BulkIndexingQueue:   make(chan *structs.ArchiveQueueStructure, 10),
		BulkIndexer:         bi,
		ElasticsearchClient: es,
		Config:              &models.Config{},
	}
	as.Init()

	return as
}

func TestArchiveCohortMarksErrorWhenBootstrapFailed(t *testing.T) {
	as := testArchiveService(t)
	as.BootstrapError = errors.New("dial tcp 127.0.0.1:1: connect: connection refused")

	request := &archiveModels.CohortArchiveRequest{
		Id:       uuid.New(),
		CohortId: uuid.NewString(),
		State:    archiveModels.Queued,
	}

	as.ArchiveCohort(testCohort(3), request)

	// the request lands in its Error terminal state, never Done
	assert.Equal(t, archiveModels.Error, request.State)
	assert.Contains(t, request.Message, "cohorts index unavailable")
}

func TestArchiveCohortMarksErrorWhenIndexingFails(t *testing.T) {
	as := testArchiveService(t)

	request := &archiveModels.CohortArchiveRequest{
		Id:       uuid.New(),
		CohortId: uuid.NewString(),
		State:    archiveModels.Queued,
	}

	as.ArchiveCohort(testCohort(3), request)

	assert.Equal(t, archiveModels.Error, request.State)
	assert.Contains(t, request.Message, "failed to archive 3 of 3 variants")
}
