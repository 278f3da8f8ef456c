package contexts

import (
	"liquidbiopsy/api/models"
	"liquidbiopsy/api/models/constants"
	archiveService "liquidbiopsy/api/services/archive"
	qcService "liquidbiopsy/api/services/qc"
	variantsService "liquidbiopsy/api/services/variants"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the service singletons and other variables
	LiquidBiopsyContext struct {
		echo.Context
		Es7Client      *es7.Client
		Config         *models.Config
		VariantService *variantsService.VariantService
		QcService      *qcService.QcService
		ArchiveService *archiveService.ArchiveService

		// validated query parameters, populated by middleware
		Count      int
		WindowDays int
		Seed       *int64 // nil means a time-seeded generation pass
		Gene       constants.Gene
		CancerType constants.CancerType
		Confidence constants.ConfidenceLabel

		// optional per-request calibration overrides
		VafPercentFloor    *float64
		SignalToNoiseFloor *float64
	}
)
