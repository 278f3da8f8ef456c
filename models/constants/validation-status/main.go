package validationStatus

import (
	"liquidbiopsy/api/models/constants"
	"strings"
)

const (
	Unknown constants.ValidationStatus = "Unknown"

	Confirmed constants.ValidationStatus = "Confirmed"
	Pending   constants.ValidationStatus = "Pending"
	Failed    constants.ValidationStatus = "Failed"
)

func CastToValidationStatus(text string) constants.ValidationStatus {
	switch strings.ToLower(text) {
	case "confirmed":
		return Confirmed
	case "pending":
		return Pending
	case "failed":
		return Failed
	default:
		return Unknown
	}
}

func IsKnownValidationStatus(text string) bool {
	return CastToValidationStatus(text) != Unknown
}
