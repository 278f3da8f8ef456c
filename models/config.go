package models

type Config struct {
	Debug          bool   `yaml:"debug" envconfig:"LB_DEBUG" default:"false"`
	SemVer         string `yaml:"semver" envconfig:"LB_SEMVER" default:"0.1.0"`
	ServiceContact string `yaml:"servicecontact" envconfig:"LB_SERVICE_CONTACT" default:"mailto:ajunisohota@gmail.com"`

	Api           ApiConfig           `yaml:"api"`
	Synthesis     SynthesisConfig     `yaml:"synthesis"`
	Thresholds    ThresholdConfig     `yaml:"thresholds"`
	Qc            QcConfig            `yaml:"qc"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Archive       ArchiveConfig       `yaml:"archive"`
}

type ApiConfig struct {
	Port string `yaml:"port" envconfig:"LB_API_INTERNAL_PORT" default:"5000"`
	Url  string `yaml:"url" envconfig:"LB_API_URL" default:"http://localhost:5000"`

	DemoCohortSize  int `yaml:"democohortsize" envconfig:"LB_API_DEMO_COHORT_SIZE" default:"8"`
	MaxCohortSize   int `yaml:"maxcohortsize" envconfig:"LB_API_MAX_COHORT_SIZE" default:"500"`
	QcWindowDays    int `yaml:"qcwindowdays" envconfig:"LB_API_QC_WINDOW_DAYS" default:"10"`
	MaxQcWindowDays int `yaml:"maxqcwindowdays" envconfig:"LB_API_MAX_QC_WINDOW_DAYS" default:"365"`
}

// SynthesisConfig documents the ranges every synthetic variant field is
// drawn from. The defaults mimic plausible low-input ctDNA values.
type SynthesisConfig struct {
	VafPercentMin float64 `yaml:"vafpercentmin" envconfig:"LB_SYNTH_VAF_PERCENT_MIN" default:"0.01"`
	VafPercentMax float64 `yaml:"vafpercentmax" envconfig:"LB_SYNTH_VAF_PERCENT_MAX" default:"0.20"`

	SignalToNoiseMin float64 `yaml:"signaltonoisemin" envconfig:"LB_SYNTH_SN_MIN" default:"1.5"`
	SignalToNoiseMax float64 `yaml:"signaltonoisemax" envconfig:"LB_SYNTH_SN_MAX" default:"8.0"`

	DepthMin int `yaml:"depthmin" envconfig:"LB_SYNTH_DEPTH_MIN" default:"5000"`
	DepthMax int `yaml:"depthmax" envconfig:"LB_SYNTH_DEPTH_MAX" default:"15000"`

	ArtifactProbMin float64 `yaml:"artifactprobmin" envconfig:"LB_SYNTH_ARTIFACT_PROB_MIN" default:"0.05"`
	ArtifactProbMax float64 `yaml:"artifactprobmax" envconfig:"LB_SYNTH_ARTIFACT_PROB_MAX" default:"0.60"`

	CtdnaFractionMin float64 `yaml:"ctdnafractionmin" envconfig:"LB_SYNTH_CTDNA_FRACTION_MIN" default:"0.001"`
	CtdnaFractionMax float64 `yaml:"ctdnafractionmax" envconfig:"LB_SYNTH_CTDNA_FRACTION_MAX" default:"0.2"`
}

// ThresholdConfig carries the confidence-calling cutoffs. The defaults
// are illustrative, not validated clinical truths, and are deliberately
// overridable per deployment (and per request ; see the
// calibrated-thresholds middleware).
type ThresholdConfig struct {
	VafPercentFloor     float64 `yaml:"vafpercentfloor" envconfig:"LB_THRESHOLD_VAF_PERCENT_FLOOR" default:"0.05"`
	SignalToNoiseFloor  float64 `yaml:"signaltonoisefloor" envconfig:"LB_THRESHOLD_SN_FLOOR" default:"3.0"`
	ArtifactProbCeiling float64 `yaml:"artifactprobceiling" envconfig:"LB_THRESHOLD_ARTIFACT_PROB_CEILING" default:"0.30"`
}

type QcConfig struct {
	SamplesPerDayMin int `yaml:"samplesperdaymin" envconfig:"LB_QC_SAMPLES_PER_DAY_MIN" default:"40"`
	SamplesPerDayMax int `yaml:"samplesperdaymax" envconfig:"LB_QC_SAMPLES_PER_DAY_MAX" default:"80"`

	AvgDepthMean   float64 `yaml:"avgdepthmean" envconfig:"LB_QC_AVG_DEPTH_MEAN" default:"8000"`
	AvgDepthStdDev float64 `yaml:"avgdepthstddev" envconfig:"LB_QC_AVG_DEPTH_STDDEV" default:"1000"`

	ValidationRateMin float64 `yaml:"validationratemin" envconfig:"LB_QC_VALIDATION_RATE_MIN" default:"0.85"`
	ValidationRateMax float64 `yaml:"validationratemax" envconfig:"LB_QC_VALIDATION_RATE_MAX" default:"0.98"`

	ArtifactRateMin float64 `yaml:"artifactratemin" envconfig:"LB_QC_ARTIFACT_RATE_MIN" default:"0.02"`
	ArtifactRateMax float64 `yaml:"artifactratemax" envconfig:"LB_QC_ARTIFACT_RATE_MAX" default:"0.08"`

	ArtifactRateAlertLine float64 `yaml:"artifactratealertline" envconfig:"LB_QC_ARTIFACT_RATE_ALERT_LINE" default:"0.05"`
}

type ElasticsearchConfig struct {
	Enabled  bool   `yaml:"enabled" envconfig:"LB_ES_ENABLED" default:"false"`
	Url      string `yaml:"url" envconfig:"LB_ES_URL"`
	Username string `yaml:"username" envconfig:"LB_ES_USERNAME"`
	Password string `yaml:"password" envconfig:"LB_ES_PASSWORD"`
}

type ArchiveConfig struct {
	RetentionDays int `yaml:"retentiondays" envconfig:"LB_ARCHIVE_RETENTION_DAYS" default:"30"`
}
