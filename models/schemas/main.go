package schemas

var OBJECT_SCHEMA = map[string]interface{}{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type":    "object",
}

var VARIANT_SCHEMA = map[string]interface{}{
	"$schema":     "http://json-schema.org/draft-07/schema#",
	"id":          "variant",
	"type":        "object",
	"description": "Synthetic ctDNA variant observation",
	"properties": map[string]interface{}{
		"variantId":        map[string]interface{}{"type": "string"},
		"cohortId":         map[string]interface{}{"type": "string"},
		"gene":             map[string]interface{}{"type": "string", "enum": []string{"EGFR", "KRAS", "TP53", "PIK3CA", "BRAF"}},
		"cancerType":       map[string]interface{}{"type": "string", "enum": []string{"NSCLC", "CRC", "Breast", "Pancreatic"}},
		"vafPercent":       map[string]interface{}{"type": "number", "minimum": 0},
		"depth":            map[string]interface{}{"type": "integer", "minimum": 0},
		"altReads":         map[string]interface{}{"type": "integer", "minimum": 0},
		"signalToNoise":    map[string]interface{}{"type": "number", "minimum": 0},
		"ctdnaFraction":    map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
		"artifactProb":     map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
		"validationStatus": map[string]interface{}{"type": "string", "enum": []string{"Confirmed", "Pending", "Failed"}},
		"confidence":       map[string]interface{}{"type": "string", "enum": []string{"HighConfidence", "NeedsValidation"}},
		"actionable":       map[string]interface{}{"type": "boolean"},
		"createdTime":      map[string]interface{}{"type": "string", "format": "date-time"},
	},
}

var QC_DAILY_SCHEMA = map[string]interface{}{
	"$schema":     "http://json-schema.org/draft-07/schema#",
	"id":          "qc-daily",
	"type":        "object",
	"description": "Synthetic daily laboratory QC summary",
	"properties": map[string]interface{}{
		"date":             map[string]interface{}{"type": "string", "format": "date-time"},
		"samplesProcessed": map[string]interface{}{"type": "integer", "minimum": 0},
		"avgDepth":         map[string]interface{}{"type": "number", "minimum": 0},
		"validationRate":   map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
		"artifactRate":     map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
	},
}

var VARIANT_METADATA_SCHEMA = OBJECT_SCHEMA
var QC_METADATA_SCHEMA = OBJECT_SCHEMA
