package records

import (
	c "liquidbiopsy/api/models/constants"
	"time"
)

// VariantRecord is one synthetic ctDNA variant observation. Records are
// created fresh on each request, never mutated afterwards, and only
// persisted when explicitly archived to the cohorts index.
type VariantRecord struct {
	VariantId string `json:"variantId"`
	CohortId  string `json:"cohortId,omitempty"`

	Gene       c.Gene       `json:"gene"`
	CancerType c.CancerType `json:"cancerType"`

	VafPercent    float64 `json:"vafPercent"`
	Depth         int     `json:"depth"`
	AltReads      int     `json:"altReads"`
	SignalToNoise float64 `json:"signalToNoise"`
	CtdnaFraction float64 `json:"ctdnaFraction"`
	ArtifactProb  float64 `json:"artifactProb"`

	ValidationStatus c.ValidationStatus `json:"validationStatus"`

	// derived fields ; deterministic functions of the numeric fields above
	Confidence c.ConfidenceLabel `json:"confidence"`
	Actionable bool              `json:"actionable"`

	CreatedTime time.Time `json:"createdTime"`
}

// QCDailyRecord is one synthetic day of laboratory throughput.
type QCDailyRecord struct {
	Date             time.Time `json:"date"`
	SamplesProcessed int       `json:"samplesProcessed"`
	AvgDepth         float64   `json:"avgDepth"`
	ValidationRate   float64   `json:"validationRate"`
	ArtifactRate     float64   `json:"artifactRate"`
}

var MAPPING_FIELDS_KEYWORD_IG256 = map[string]interface{}{
	"keyword": map[string]interface{}{
		"type":         "keyword",
		"ignore_above": 256,
	},
}
var MAPPING_TEXT = map[string]interface{}{"type": "text", "fields": MAPPING_FIELDS_KEYWORD_IG256}
var MAPPING_LONG = map[string]interface{}{"type": "long"}
var MAPPING_FLOAT64 = map[string]interface{}{"type": "double"}
var MAPPING_BOOL = map[string]interface{}{"type": "boolean"}
var MAPPING_DATE = map[string]interface{}{"type": "date"}

// index mapping for archived cohort variant documents
var COHORT_INDEX_MAPPING = map[string]interface{}{
	"properties": map[string]interface{}{
		"variantId":        MAPPING_TEXT,
		"cohortId":         MAPPING_TEXT,
		"gene":             MAPPING_TEXT,
		"cancerType":       MAPPING_TEXT,
		"vafPercent":       MAPPING_FLOAT64,
		"depth":            MAPPING_LONG,
		"altReads":         MAPPING_LONG,
		"signalToNoise":    MAPPING_FLOAT64,
		"ctdnaFraction":    MAPPING_FLOAT64,
		"artifactProb":     MAPPING_FLOAT64,
		"validationStatus": MAPPING_TEXT,
		"confidence":       MAPPING_TEXT,
		"actionable":       MAPPING_BOOL,
		"createdTime":      MAPPING_DATE,
	},
}
