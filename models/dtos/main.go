package dtos

import (
	"liquidbiopsy/api/models/constants"
	"liquidbiopsy/api/models/records"
)

type VariantsResponseDTO struct {
	Status  int                     `json:"status"`
	Message string                  `json:"message"`
	Count   int                     `json:"count"`
	Results []records.VariantRecord `json:"results"`
}

type VariantsByGeneResponseDTO struct {
	Status  int                     `json:"status"`
	Message string                  `json:"message"`
	Gene    constants.Gene          `json:"gene"`
	Count   int                     `json:"count"`
	Results []records.VariantRecord `json:"results"`
}

// VariantsSummary mirrors the dashboard's metric cards.
type VariantsSummary struct {
	Count               int     `json:"count"`
	HighConfidenceCount int     `json:"highConfidenceCount"`
	ActionableCount     int     `json:"actionableCount"`
	AverageVafPercent   float64 `json:"averageVafPercent"`
}

type VariantsSummaryResponseDTO struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Summary VariantsSummary `json:"summary"`
}

type QcTrendsResponseDTO struct {
	Status  int                     `json:"status"`
	Message string                  `json:"message"`
	Count   int                     `json:"count"`
	Results []records.QCDailyRecord `json:"results"`
}

// QcSummary aggregates a QC window for the trend panel headers.
type QcSummary struct {
	Days                  int     `json:"days"`
	TotalSamplesProcessed int     `json:"totalSamplesProcessed"`
	MeanValidationRate    float64 `json:"meanValidationRate"`
	MeanArtifactRate      float64 `json:"meanArtifactRate"`
	ArtifactAlertDays     int     `json:"artifactAlertDays"`
}

type QcSummaryResponseDTO struct {
	Status  int       `json:"status"`
	Message string    `json:"message"`
	Summary QcSummary `json:"summary"`
}

// DashboardSummaryResponseDTO is the combined payload behind the
// dashboard landing page.
type DashboardSummaryResponseDTO struct {
	Status   int             `json:"status"`
	Message  string          `json:"message"`
	Variants VariantsSummary `json:"variants"`
	Qc       QcSummary       `json:"qc"`
}
