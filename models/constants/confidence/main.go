package confidence

import (
	"liquidbiopsy/api/models/constants"
	"strings"
)

const (
	Unknown constants.ConfidenceLabel = "Unknown"

	HighConfidence  constants.ConfidenceLabel = "HighConfidence"
	NeedsValidation constants.ConfidenceLabel = "NeedsValidation"
)

func CastToConfidenceLabel(text string) constants.ConfidenceLabel {
	switch strings.ToLower(text) {
	case "highconfidence":
		return HighConfidence
	case "needsvalidation":
		return NeedsValidation
	default:
		return Unknown
	}
}

func IsKnownConfidenceLabel(text string) bool {
	return CastToConfidenceLabel(text) != Unknown
}
