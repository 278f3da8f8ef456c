package archiveService

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"liquidbiopsy/api/models"
	archiveModels "liquidbiopsy/api/models/archive"
	"liquidbiopsy/api/models/archive/structs"
	"liquidbiopsy/api/models/records"
	esRepo "liquidbiopsy/api/repositories/elasticsearch"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esutil"
)

type (
	ArchiveService struct {
		Initialized          bool
		ArchiveRequestChan   chan *archiveModels.CohortArchiveRequest
		ArchiveRequestMap    map[string]*archiveModels.CohortArchiveRequest
		ArchiveRequestMapMux sync.RWMutex
		BulkIndexingQueue    chan *structs.ArchiveQueueStructure
		BulkIndexer          esutil.BulkIndexer
		BootstrapError       error
		ElasticsearchClient  *elasticsearch.Client
		Config               *models.Config
	}
)

func NewArchiveService(es *elasticsearch.Client, cfg *models.Config) *ArchiveService {

	as := &ArchiveService{
		Initialized:          false,
		ArchiveRequestChan:   make(chan *archiveModels.CohortArchiveRequest),
		ArchiveRequestMap:    map[string]*archiveModels.CohortArchiveRequest{},
		ArchiveRequestMapMux: sync.RWMutex{},
		BulkIndexingQueue:    make(chan *structs.ArchiveQueueStructure, 10),
		ElasticsearchClient:  es,
		Config:               cfg,
	}

	bi, _ := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:      "cohorts",
		Client:     as.ElasticsearchClient,
		NumWorkers: 2,
		// demo cohorts are tiny ; flush promptly so archive requests
		// reach a terminal state quickly
		FlushInterval: time.Second,
	})
	as.BulkIndexer = bi

	if err := esRepo.CreateCohortsIndexIfNotExists(cfg, es); err != nil {
		fmt.Printf("Failed to bootstrap cohorts index: %s\n", err)
		as.BootstrapError = err
	}

	as.Init()

	return as
}

func (a *ArchiveService) Init() {
	// safeguard to prevent multiple initilizations
	if !a.Initialized {
		// spin up a go routine acting as a listener for archive request
		// updates and cohort variant bulk indexing
		go func() {
			for {
				select {
				case archiveRequest := <-a.ArchiveRequestChan:
					if archiveRequest.State == archiveModels.Queued {
						fmt.Printf("Queueing a new cohort archive request for %s\n", archiveRequest.CohortId)
					}

					archiveRequest.UpdatedAt = time.Now().String()
					a.ArchiveRequestMapMux.Lock()
					a.ArchiveRequestMap[archiveRequest.Id.String()] = archiveRequest
					a.ArchiveRequestMapMux.Unlock()

				case queuedVariantItem := <-a.BulkIndexingQueue:

					queuedVariant := queuedVariantItem.Variant
					wg := queuedVariantItem.WaitGroup
					failures := queuedVariantItem.FailureCount

					// Prepare the data payload: encode record to JSON
					variantData, marshallErr := json.Marshal(queuedVariant)
					if marshallErr != nil {
						log.Fatalf("Cannot encode variant %s: %s\n", queuedVariant.VariantId, marshallErr)
					}

					// Add an item to the BulkIndexer
					marshallErr = a.BulkIndexer.Add(
						context.Background(),
						esutil.BulkIndexerItem{
							// Action field configures the operation to perform (index, create, delete, update)
							Action: "index",

							// Body is an `io.Reader` with the payload
							Body: bytes.NewReader(variantData),

							// OnSuccess is called for each successful operation
							OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
								defer wg.Done()
							},

							// OnFailure is called for each failed operation
							OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
								defer wg.Done()
								atomic.AddInt64(failures, 1)
								if err != nil {
									fmt.Printf("ERROR: %s", err)
								} else {
									fmt.Printf("ERROR: %s: %s", res.Error.Type, res.Error.Reason)
								}
							},
						},
					)
					if marshallErr != nil {
						fmt.Printf("Unexpected error: %s", marshallErr)
						atomic.AddInt64(failures, 1)
						wg.Done()
					}
				}
			}
		}()

		a.Initialized = true
		fmt.Println("Archive Service Initialized ..")
	}
}

// ArchiveCohort pushes a synthesized cohort through the bulk indexer,
// carrying the request through Running to its terminal state. A failed
// run is marked Error and never blocks later regeneration or archiving.
func (a *ArchiveService) ArchiveCohort(cohort []records.VariantRecord, request *archiveModels.CohortArchiveRequest) {
	if a.BootstrapError != nil {
		request.State = archiveModels.Error
		request.Message = fmt.Sprintf("cohorts index unavailable : %s", a.BootstrapError)
		a.ArchiveRequestChan <- request

		fmt.Printf("Cohort %s archiving failed!\n", request.CohortId)
		return
	}

	request.State = archiveModels.Running
	a.ArchiveRequestChan <- request

	var (
		cohortWg     sync.WaitGroup
		failureCount int64
	)
	for i := range cohort {
		cohortWg.Add(1)
		a.BulkIndexingQueue <- &structs.ArchiveQueueStructure{
			Variant:      &cohort[i],
			WaitGroup:    &cohortWg,
			FailureCount: &failureCount,
		}
	}
	cohortWg.Wait()

	if failed := atomic.LoadInt64(&failureCount); failed > 0 {
		request.State = archiveModels.Error
		request.Message = fmt.Sprintf("failed to archive %d of %d variants", failed, len(cohort))
		a.ArchiveRequestChan <- request

		fmt.Printf("Cohort %s archiving failed!\n", request.CohortId)
		return
	}

	request.State = archiveModels.Done
	request.Message = fmt.Sprintf("archived %d variants", len(cohort))
	a.ArchiveRequestChan <- request

	fmt.Printf("Cohort %s archiving done!\n", request.CohortId)
}
