package variantsService

import (
	"testing"

	"liquidbiopsy/api/models"
	"liquidbiopsy/api/models/constants/confidence"
	"liquidbiopsy/api/models/constants/gene"
	validationStatus "liquidbiopsy/api/models/constants/validation-status"
	"liquidbiopsy/api/models/records"
	"liquidbiopsy/api/utils"

	"github.com/stretchr/testify/assert"

	. "github.com/ahmetb/go-linq"
)

func testConfig() *models.Config {
	return &models.Config{
		Synthesis: models.SynthesisConfig{
			VafPercentMin:    0.01,
			VafPercentMax:    0.20,
			SignalToNoiseMin: 1.5,
			SignalToNoiseMax: 8.0,
			DepthMin:         5000,
			DepthMax:         15000,
			ArtifactProbMin:  0.05,
			ArtifactProbMax:  0.60,
			CtdnaFractionMin: 0.001,
			CtdnaFractionMax: 0.2,
		},
		Thresholds: models.ThresholdConfig{
			VafPercentFloor:     0.05,
			SignalToNoiseFloor:  3.0,
			ArtifactProbCeiling: 0.30,
		},
	}
}

func TestSynthesizeCohortCount(t *testing.T) {
	vs := NewVariantService(testConfig())

	for _, n := range []int{0, 1, 8, 100} {
		seed := int64(42)
		cohort := vs.SynthesizeCohort(utils.NewSeededRand(&seed), n)
		assert.Len(t, cohort, n)
	}

	// negative counts yield an empty cohort, never a failure
	seed := int64(42)
	assert.Empty(t, vs.SynthesizeCohort(utils.NewSeededRand(&seed), -3))
}

func TestSynthesizedValuesWithinRanges(t *testing.T) {
	cfg := testConfig()
	vs := NewVariantService(cfg)

	for seed := int64(1); seed <= 20; seed++ {
		s := seed
		cohort := vs.SynthesizeCohort(utils.NewSeededRand(&s), 25)

		for _, record := range cohort {
			assert.GreaterOrEqual(t, record.VafPercent, cfg.Synthesis.VafPercentMin)
			assert.LessOrEqual(t, record.VafPercent, cfg.Synthesis.VafPercentMax)

			assert.GreaterOrEqual(t, record.SignalToNoise, cfg.Synthesis.SignalToNoiseMin)
			assert.LessOrEqual(t, record.SignalToNoise, cfg.Synthesis.SignalToNoiseMax)

			assert.GreaterOrEqual(t, record.Depth, cfg.Synthesis.DepthMin)
			assert.LessOrEqual(t, record.Depth, cfg.Synthesis.DepthMax)

			assert.GreaterOrEqual(t, record.ArtifactProb, 0.0)
			assert.LessOrEqual(t, record.ArtifactProb, 1.0)

			assert.True(t, gene.IsKnownGene(string(record.Gene)))
			assert.True(t, validationStatus.IsKnownValidationStatus(string(record.ValidationStatus)))

			// altReads is derived from depth and VAF
			assert.Equal(t, int(float64(record.Depth)*record.VafPercent/100), record.AltReads)
		}
	}
}

func TestDeriveConfidenceIsDeterministic(t *testing.T) {
	thresholds := testConfig().Thresholds

	first := DeriveConfidence(0.07, 4.2, 0.12, thresholds)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, DeriveConfidence(0.07, 4.2, 0.12, thresholds))
	}
	assert.Equal(t, confidence.HighConfidence, first)
}

func TestConfidencePredicates(t *testing.T) {
	thresholds := testConfig().Thresholds

	assert.True(t, ClearsVafFloor(0.05, thresholds.VafPercentFloor))
	assert.False(t, ClearsVafFloor(0.049, thresholds.VafPercentFloor))

	assert.True(t, ClearsSignalToNoiseFloor(3.0, thresholds.SignalToNoiseFloor))
	assert.False(t, ClearsSignalToNoiseFloor(2.99, thresholds.SignalToNoiseFloor))

	assert.True(t, BelowArtifactCeiling(0.30, thresholds.ArtifactProbCeiling))
	assert.False(t, BelowArtifactCeiling(0.31, thresholds.ArtifactProbCeiling))

	// a record needs all three to clear for a high-confidence call
	assert.Equal(t, confidence.HighConfidence, DeriveConfidence(0.10, 5.0, 0.10, thresholds))
	assert.Equal(t, confidence.NeedsValidation, DeriveConfidence(0.02, 5.0, 0.10, thresholds))
	assert.Equal(t, confidence.NeedsValidation, DeriveConfidence(0.10, 2.0, 0.10, thresholds))
	assert.Equal(t, confidence.NeedsValidation, DeriveConfidence(0.10, 5.0, 0.50, thresholds))
}

func TestIsActionable(t *testing.T) {
	// actionable if and only if the gene is in the actionable subset
	// and the call is high-confidence
	for _, g := range gene.ActionableSubset() {
		assert.True(t, IsActionable(g, confidence.HighConfidence))
		assert.False(t, IsActionable(g, confidence.NeedsValidation))
	}

	assert.False(t, IsActionable(gene.KRAS, confidence.HighConfidence))
	assert.False(t, IsActionable(gene.TP53, confidence.HighConfidence))
	assert.False(t, IsActionable(gene.Unknown, confidence.HighConfidence))
}

func TestConfidenceMixOverRepeatedRuns(t *testing.T) {
	// statistical property : over repeated runs, both confidence labels
	// show up in 8-variant cohorts
	vs := NewVariantService(testConfig())

	var (
		sawHighConfidence  bool
		sawNeedsValidation bool
	)

	for seed := int64(1); seed <= 40; seed++ {
		s := seed
		cohort := vs.SynthesizeCohort(utils.NewSeededRand(&s), 8)
		assert.Len(t, cohort, 8)

		if From(cohort).AnyWithT(func(r records.VariantRecord) bool { return r.Confidence == confidence.HighConfidence }) {
			sawHighConfidence = true
		}
		if From(cohort).AnyWithT(func(r records.VariantRecord) bool { return r.Confidence == confidence.NeedsValidation }) {
			sawNeedsValidation = true
		}
	}

	assert.True(t, sawHighConfidence)
	assert.True(t, sawNeedsValidation)
}

func TestSummarize(t *testing.T) {
	cfg := testConfig()
	vs := NewVariantService(cfg)

	cohort := []records.VariantRecord{
		{Gene: gene.EGFR, VafPercent: 0.10, SignalToNoise: 5.0, ArtifactProb: 0.10, Confidence: confidence.HighConfidence, Actionable: true},
		{Gene: gene.KRAS, VafPercent: 0.10, SignalToNoise: 5.0, ArtifactProb: 0.10, Confidence: confidence.HighConfidence, Actionable: false},
		{Gene: gene.BRAF, VafPercent: 0.02, SignalToNoise: 2.0, ArtifactProb: 0.50, Confidence: confidence.NeedsValidation, Actionable: false},
	}

	summary := vs.Summarize(cohort, cfg.Thresholds)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 2, summary.HighConfidenceCount)
	assert.Equal(t, 1, summary.ActionableCount)
	assert.InDelta(t, (0.10+0.10+0.02)/3, summary.AverageVafPercent, 1e-9)

	// a stricter per-request calibration flips high-confidence calls
	strict := cfg.Thresholds
	strict.SignalToNoiseFloor = 6.0
	strictSummary := vs.Summarize(cohort, strict)
	assert.Equal(t, 0, strictSummary.HighConfidenceCount)
	assert.Equal(t, 0, strictSummary.ActionableCount)

	// an empty cohort summarizes to zeroes
	empty := vs.Summarize(nil, cfg.Thresholds)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, 0.0, empty.AverageVafPercent)
}

func TestGetVariantsOverview(t *testing.T) {
	cohort := []records.VariantRecord{
		{Gene: gene.EGFR, Confidence: confidence.HighConfidence, Actionable: true},
		{Gene: gene.EGFR, Confidence: confidence.NeedsValidation, Actionable: false},
		{Gene: gene.TP53, Confidence: confidence.NeedsValidation, Actionable: false},
	}

	overview := GetVariantsOverview(cohort)

	genes := overview["genes"].(map[string]interface{})
	assert.Equal(t, 2, genes[string(gene.EGFR)])
	assert.Equal(t, 1, genes[string(gene.TP53)])

	labels := overview["confidence"].(map[string]interface{})
	assert.Equal(t, 1, labels[string(confidence.HighConfidence)])
	assert.Equal(t, 2, labels[string(confidence.NeedsValidation)])

	actionable := overview["actionable"].(map[string]interface{})
	assert.Equal(t, 1, actionable["true"])
	assert.Equal(t, 2, actionable["false"])
}
