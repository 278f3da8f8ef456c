package main

import (
	"liquidbiopsy/api/contexts"
	gam "liquidbiopsy/api/middleware"
	"liquidbiopsy/api/models"
	serviceInfo "liquidbiopsy/api/models/constants/service-info"
	cohortsMvc "liquidbiopsy/api/mvc/cohorts"
	dashboardMvc "liquidbiopsy/api/mvc/dashboard"
	dataTypesMvc "liquidbiopsy/api/mvc/data-types"
	qcMvc "liquidbiopsy/api/mvc/qc"
	serviceInfoMvc "liquidbiopsy/api/mvc/service-info"
	variantsMvc "liquidbiopsy/api/mvc/variants"
	archiveService "liquidbiopsy/api/services/archive"
	qcService "liquidbiopsy/api/services/qc"
	"liquidbiopsy/api/services/sanitation"
	variantsService "liquidbiopsy/api/services/variants"
	"liquidbiopsy/api/utils"
	"time"

	"fmt"
	"net/http"
	"os"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tDemo Cohort Size : %d\n"+
		"\tQC Window (days) : %d\n"+
		"\tVAF Range (%%) : [%.2f, %.2f]\n"+
		"\tS/N Range : [%.1f, %.1f]\n"+
		"\tConfidence Thresholds (VAF%% / S/N / Artifact) : %.2f / %.1f / %.2f\n\n"+

		"\tElasticsearch Enabled : %t\n"+
		"\tElasticsearch Url : %s \n"+
		"\tElasticsearch Username : %s\n"+
		"\tArchive Retention (days) : %d\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.DemoCohortSize,
		cfg.Api.QcWindowDays,
		cfg.Synthesis.VafPercentMin, cfg.Synthesis.VafPercentMax,
		cfg.Synthesis.SignalToNoiseMin, cfg.Synthesis.SignalToNoiseMax,
		cfg.Thresholds.VafPercentFloor, cfg.Thresholds.SignalToNoiseFloor, cfg.Thresholds.ArtifactProbCeiling,
		cfg.Elasticsearch.Enabled,
		cfg.Elasticsearch.Url, cfg.Elasticsearch.Username,
		cfg.Archive.RetentionDays,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Service Connections:
	// -- Elasticsearch (optional ; the demo core is fully ephemeral
	//    without it)
	var es *es7.Client
	if cfg.Elasticsearch.Enabled {
		es = utils.CreateEsConnection(&cfg)
	}

	// Service Singletons
	vs := variantsService.NewVariantService(&cfg)
	qs := qcService.NewQcService(&cfg)

	var as *archiveService.ArchiveService
	if cfg.Elasticsearch.Enabled {
		as = archiveService.NewArchiveService(es, &cfg)
		sanitation.NewSanitationService(es, &cfg)
	}

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET},
	}))

	// -- Override handlers with "custom" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.LiquidBiopsyContext{
				Context:        c,
				Es7Client:      es,
				Config:         &cfg,
				VariantService: vs,
				QcService:      qs,
				ArchiveService: as,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Data-Type
	e.GET("/data-types", dataTypesMvc.GetDataTypes)
	e.GET("/data-types/variant", dataTypesMvc.GetVariantDataType)
	e.GET("/data-types/variant/schema", dataTypesMvc.GetVariantDataTypeSchema)
	e.GET("/data-types/qc", dataTypesMvc.GetQcDataType)
	e.GET("/data-types/qc/schema", dataTypesMvc.GetQcDataTypeSchema)

	// -- Variants
	e.GET("/variants/demo", variantsMvc.VariantsGetDemo,
		// middleware
		gam.ValidateOptionalCountAttribute,
		gam.ValidateOptionalSeedAttribute,
		gam.ValidateOptionalCancerTypeAttribute,
		gam.ValidateOptionalConfidenceAttribute)
	e.GET("/variants/get/by/gene", variantsMvc.VariantsGetByGene,
		// middleware
		gam.MandateGeneAttribute,
		gam.ValidateOptionalCountAttribute,
		gam.ValidateOptionalSeedAttribute)

	e.GET("/variants/overview", variantsMvc.GetVariantsOverview,
		// middleware
		gam.ValidateOptionalCountAttribute,
		gam.ValidateOptionalSeedAttribute)
	e.GET("/variants/summary", variantsMvc.GetVariantsSummary,
		// middleware
		gam.ValidateOptionalCountAttribute,
		gam.ValidateOptionalSeedAttribute,
		gam.ValidateCalibratedThresholds)

	// -- QC
	e.GET("/qc/trends", qcMvc.GetQcTrends,
		// middleware
		gam.ValidateOptionalDaysAttribute,
		gam.ValidateOptionalSeedAttribute)
	e.GET("/qc/overview", qcMvc.GetQcOverview,
		// middleware
		gam.ValidateOptionalDaysAttribute,
		gam.ValidateOptionalSeedAttribute)

	// -- Dashboard
	e.GET("/dashboard/summary", dashboardMvc.GetDashboardSummary,
		// middleware
		gam.ValidateOptionalCountAttribute,
		gam.ValidateOptionalDaysAttribute,
		gam.ValidateOptionalSeedAttribute)

	// -- Cohort Archive (optional ; requires Elasticsearch)
	e.GET("/cohorts/archive/run", cohortsMvc.CohortsArchiveRun)
	e.GET("/cohorts/archive/requests", cohortsMvc.GetAllCohortArchiveRequests)
	e.GET("/cohorts/archived/by/gene", cohortsMvc.GetArchivedVariantsByGene,
		// middleware
		gam.MandateGeneAttribute)
	e.GET("/cohorts/archived/recent", cohortsMvc.GetRecentArchivedVariants,
		// middleware
		gam.ValidateOptionalCountAttribute)
	e.GET("/cohorts/archived/overview", cohortsMvc.GetArchivedCohortsOverview)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
