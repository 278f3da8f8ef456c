package sanitation

import (
	"fmt"
	"time"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/go-co-op/gocron"

	"liquidbiopsy/api/models"
	esRepo "liquidbiopsy/api/repositories/elasticsearch"
)

type (
	SanitationService struct {
		Initialized bool
		Es7Client   *es7.Client
		Config      *models.Config
	}
)

func NewSanitationService(es *es7.Client, cfg *models.Config) *SanitationService {
	ss := &SanitationService{
		Initialized: false,
		Es7Client:   es,
		Config:      cfg,
	}

	ss.Init()

	return ss
}

func (ss *SanitationService) Init() {
	// initialization if necessary
	if !ss.Initialized {
		// - spin up a go routine that will periodically
		//   sweep the cohorts index and purge archived cohorts
		//   older than the configured retention window, keeping
		//   the archive from growing without bound
		go func() {
			// setup cron job
			s := gocron.NewScheduler(time.UTC)

			s.Every(1).Days().At("04:00:00").Do(func() { // 12am EST
				fmt.Printf("[%s] - Running archived cohorts cleanup..\n", time.Now())

				countBefore, countErr := esRepo.CountArchivedVariants(ss.Config, ss.Es7Client)
				if countErr != nil {
					fmt.Printf("[%s] - Error counting archived variants : %v..\n", time.Now(), countErr)
					return
				}
				fmt.Printf("[%s] - Archived variants before sweep : %d..\n", time.Now(), countBefore)

				cutoff := time.Now().AddDate(0, 0, -ss.Config.Archive.RetentionDays)

				deleted, deleteErr := esRepo.DeleteArchivedCohortsOlderThan(ss.Config, ss.Es7Client, cutoff)
				if deleteErr != nil {
					fmt.Printf("[%s] - Error sweeping archived cohorts : %v..\n", time.Now(), deleteErr)
					return
				}

				fmt.Printf("[%s] - Swept %d archived variants older than %s..\n", time.Now(), deleted, cutoff)
			})

			// starts the scheduler in blocking mode, which blocks
			// the current execution path
			s.StartBlocking()
		}()

		ss.Initialized = true
		fmt.Println("Sanitation Service Initialized ..")
	}
}
