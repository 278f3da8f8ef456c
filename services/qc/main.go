package qcService

import (
	"context"
	"math/rand"
	"time"

	"liquidbiopsy/api/models"
	"liquidbiopsy/api/models/dtos"
	"liquidbiopsy/api/models/records"
	"liquidbiopsy/api/sources"
	"liquidbiopsy/api/utils"
)

type (
	QcService struct {
		Config *models.Config
	}
)

var _ sources.QcMetricsSource = (*QcService)(nil)

func NewQcService(cfg *models.Config) *QcService {
	qs := &QcService{
		Config: cfg,
	}

	return qs
}

// SynthesizeTrend produces exactly max(days, 0) daily QC rows ending on
// end's calendar day, in chronological order with no gaps or
// duplicates. Days are sampled independently ; no cross-day correlation
// is modeled. Total over all window lengths : non-positive windows
// yield an empty trend.
func (qs *QcService) SynthesizeTrend(rng *rand.Rand, days int, end time.Time) []records.QCDailyRecord {
	qc := qs.Config.Qc

	trend := make([]records.QCDailyRecord, 0, maxInt(days, 0))
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	for i := days - 1; i >= 0; i-- {
		trend = append(trend, records.QCDailyRecord{
			Date:             endDay.AddDate(0, 0, -i),
			SamplesProcessed: utils.IntInRange(rng, qc.SamplesPerDayMin, qc.SamplesPerDayMax),
			AvgDepth:         utils.NormalClamped(rng, qc.AvgDepthMean, qc.AvgDepthStdDev, 0),
			ValidationRate:   utils.UniformInRange(rng, qc.ValidationRateMin, qc.ValidationRateMax),
			ArtifactRate:     utils.UniformInRange(rng, qc.ArtifactRateMin, qc.ArtifactRateMax),
		})
	}

	return trend
}

// DailyMetrics implements the sources.QcMetricsSource contract with a
// fresh, time-seeded generation pass.
func (qs *QcService) DailyMetrics(ctx context.Context, days int, end time.Time) ([]records.QCDailyRecord, error) {
	return qs.SynthesizeTrend(utils.NewSeededRand(nil), days, end), nil
}

// Summarize aggregates a QC window for the trend panel headers,
// counting days whose artifact rate breaches the configured alert line.
func (qs *QcService) Summarize(trend []records.QCDailyRecord) dtos.QcSummary {
	summary := dtos.QcSummary{Days: len(trend)}

	var validationSum, artifactSum float64
	for _, day := range trend {
		summary.TotalSamplesProcessed += day.SamplesProcessed
		validationSum += day.ValidationRate
		artifactSum += day.ArtifactRate

		if day.ArtifactRate > qs.Config.Qc.ArtifactRateAlertLine {
			summary.ArtifactAlertDays++
		}
	}

	if len(trend) > 0 {
		summary.MeanValidationRate = validationSum / float64(len(trend))
		summary.MeanArtifactRate = artifactSum / float64(len(trend))
	}

	return summary
}

func maxInt(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
