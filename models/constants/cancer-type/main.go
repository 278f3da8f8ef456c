package cancerType

import (
	"liquidbiopsy/api/models/constants"
	"strings"
)

const (
	Unknown constants.CancerType = "Unknown"

	NSCLC      constants.CancerType = "NSCLC"
	CRC        constants.CancerType = "CRC"
	Breast     constants.CancerType = "Breast"
	Pancreatic constants.CancerType = "Pancreatic"
)

func CohortTypes() []constants.CancerType {
	return []constants.CancerType{NSCLC, CRC, Breast, Pancreatic}
}

func CastToCancerType(text string) constants.CancerType {
	switch strings.ToLower(text) {
	case "nsclc":
		return NSCLC
	case "crc":
		return CRC
	case "breast":
		return Breast
	case "pancreatic":
		return Pancreatic
	default:
		return Unknown
	}
}

func IsKnownCancerType(text string) bool {
	return CastToCancerType(text) != Unknown
}
