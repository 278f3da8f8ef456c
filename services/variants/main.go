package variantsService

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"liquidbiopsy/api/models"
	"liquidbiopsy/api/models/constants"
	cancerType "liquidbiopsy/api/models/constants/cancer-type"
	"liquidbiopsy/api/models/constants/confidence"
	"liquidbiopsy/api/models/constants/gene"
	validationStatus "liquidbiopsy/api/models/constants/validation-status"
	"liquidbiopsy/api/models/dtos"
	"liquidbiopsy/api/models/records"
	"liquidbiopsy/api/sources"
	"liquidbiopsy/api/utils"
)

type (
	VariantService struct {
		Config *models.Config
	}
)

var _ sources.VariantSource = (*VariantService)(nil)

func NewVariantService(cfg *models.Config) *VariantService {
	vs := &VariantService{
		Config: cfg,
	}

	return vs
}

// validation outcome mix observed in the source laboratory demo
var validationStatusDist = utils.Distribution{
	{Limit: 0.7, Value: string(validationStatus.Confirmed)},
	{Limit: 0.9, Value: string(validationStatus.Pending)},
	{Limit: 1.0, Value: string(validationStatus.Failed)},
}

// ClearsVafFloor reports whether a VAF (in percent) is at or above the
// reporting floor.
func ClearsVafFloor(vafPercent float64, floor float64) bool {
	return vafPercent >= floor
}

// ClearsSignalToNoiseFloor reports whether a signal-to-noise ratio is at
// or above the calling floor.
func ClearsSignalToNoiseFloor(signalToNoise float64, floor float64) bool {
	return signalToNoise >= floor
}

// BelowArtifactCeiling reports whether an artifact probability is at or
// below the tolerated ceiling.
func BelowArtifactCeiling(artifactProb float64, ceiling float64) bool {
	return artifactProb <= ceiling
}

// DeriveConfidence labels a numeric triple. Pure : re-evaluating the
// same triple against the same thresholds always yields the same label.
func DeriveConfidence(vafPercent float64, signalToNoise float64, artifactProb float64, thresholds models.ThresholdConfig) constants.ConfidenceLabel {
	if ClearsVafFloor(vafPercent, thresholds.VafPercentFloor) &&
		ClearsSignalToNoiseFloor(signalToNoise, thresholds.SignalToNoiseFloor) &&
		BelowArtifactCeiling(artifactProb, thresholds.ArtifactProbCeiling) {
		return confidence.HighConfidence
	}
	return confidence.NeedsValidation
}

// IsActionable : a variant carries therapeutic relevance if and only if
// its gene is in the actionable subset and the call is high-confidence.
func IsActionable(g constants.Gene, label constants.ConfidenceLabel) bool {
	return gene.IsActionableGene(g) && label == confidence.HighConfidence
}

// SynthesizeCohort produces exactly max(n, 0) variant records with each
// numeric field drawn independently from the configured ranges. It is
// total over all n : non-positive counts yield an empty cohort.
func (vs *VariantService) SynthesizeCohort(rng *rand.Rand, n int) []records.VariantRecord {
	synth := vs.Config.Synthesis

	cohort := make([]records.VariantRecord, 0, maxInt(n, 0))
	panel := gene.Panel()
	cohortTypes := cancerType.CohortTypes()
	now := time.Now()

	for i := 0; i < n; i++ {
		g := panel[rng.Intn(len(panel))]

		vafPercent := utils.UniformInRange(rng, synth.VafPercentMin, synth.VafPercentMax)
		depth := utils.IntInRange(rng, synth.DepthMin, synth.DepthMax)
		signalToNoise := utils.UniformInRange(rng, synth.SignalToNoiseMin, synth.SignalToNoiseMax)
		artifactProb := utils.UniformInRange(rng, synth.ArtifactProbMin, synth.ArtifactProbMax)

		label := DeriveConfidence(vafPercent, signalToNoise, artifactProb, vs.Config.Thresholds)

		cohort = append(cohort, records.VariantRecord{
			VariantId:        fmt.Sprintf("var_%03d", i+1),
			Gene:             g,
			CancerType:       cohortTypes[rng.Intn(len(cohortTypes))],
			VafPercent:       vafPercent,
			Depth:            depth,
			AltReads:         int(float64(depth) * vafPercent / 100),
			SignalToNoise:    signalToNoise,
			CtdnaFraction:    utils.UniformInRange(rng, synth.CtdnaFractionMin, synth.CtdnaFractionMax),
			ArtifactProb:     artifactProb,
			ValidationStatus: validationStatus.CastToValidationStatus(utils.SampleDist(rng, validationStatusDist)),
			Confidence:       label,
			Actionable:       IsActionable(g, label),
			CreatedTime:      now,
		})
	}

	return cohort
}

// Variants implements the sources.VariantSource contract with a fresh,
// time-seeded generation pass.
func (vs *VariantService) Variants(ctx context.Context, limit int) ([]records.VariantRecord, error) {
	return vs.SynthesizeCohort(utils.NewSeededRand(nil), limit), nil
}

// Summarize computes the dashboard metric cards, re-deriving the
// confidence label against the supplied thresholds so callers can
// explore calibrations without regenerating the cohort.
func (vs *VariantService) Summarize(cohort []records.VariantRecord, thresholds models.ThresholdConfig) dtos.VariantsSummary {
	summary := dtos.VariantsSummary{Count: len(cohort)}

	var vafSum float64
	for _, record := range cohort {
		label := DeriveConfidence(record.VafPercent, record.SignalToNoise, record.ArtifactProb, thresholds)
		if label == confidence.HighConfidence {
			summary.HighConfidenceCount++
		}
		if IsActionable(record.Gene, label) {
			summary.ActionableCount++
		}
		vafSum += record.VafPercent
	}

	if len(cohort) > 0 {
		summary.AverageVafPercent = vafSum / float64(len(cohort))
	}

	return summary
}

// GetVariantsOverview computes the distribution maps driving the
// dashboard charts (one keyed bucket map per facet).
func GetVariantsOverview(cohort []records.VariantRecord) map[string]interface{} {
	resultsMap := map[string]interface{}{}
	resultsMux := sync.RWMutex{}

	var wg sync.WaitGroup
	callCountBucketsByFacet := func(key string, facetOf func(records.VariantRecord) string, _wg *sync.WaitGroup) {
		defer _wg.Done()

		individualKeyMap := map[string]interface{}{}
		for _, record := range cohort {
			facetKey := facetOf(record)
			if current, ok := individualKeyMap[facetKey]; ok {
				individualKeyMap[facetKey] = current.(int) + 1
			} else {
				individualKeyMap[facetKey] = 1
			}
		}

		resultsMux.Lock()
		resultsMap[key] = individualKeyMap
		resultsMux.Unlock()
	}

	// get distribution of genes
	wg.Add(1)
	go callCountBucketsByFacet("genes", func(r records.VariantRecord) string { return string(r.Gene) }, &wg)

	// get distribution of confidence labels
	wg.Add(1)
	go callCountBucketsByFacet("confidence", func(r records.VariantRecord) string { return string(r.Confidence) }, &wg)

	// get distribution of cancer types
	wg.Add(1)
	go callCountBucketsByFacet("cancerTypes", func(r records.VariantRecord) string { return string(r.CancerType) }, &wg)

	// get distribution of validation statuses
	wg.Add(1)
	go callCountBucketsByFacet("validationStatuses", func(r records.VariantRecord) string { return string(r.ValidationStatus) }, &wg)

	// get distribution of actionability
	wg.Add(1)
	go callCountBucketsByFacet("actionable", func(r records.VariantRecord) string { return fmt.Sprintf("%t", r.Actionable) }, &wg)

	wg.Wait()

	return resultsMap
}

func maxInt(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
