package gene

import (
	"liquidbiopsy/api/models/constants"
	"strings"
)

const (
	Unknown constants.Gene = "Unknown"

	EGFR   constants.Gene = "EGFR"
	KRAS   constants.Gene = "KRAS"
	TP53   constants.Gene = "TP53"
	PIK3CA constants.Gene = "PIK3CA"
	BRAF   constants.Gene = "BRAF"
)

// the fixed oncogene panel every synthetic cohort draws from
func Panel() []constants.Gene {
	return []constants.Gene{EGFR, KRAS, TP53, PIK3CA, BRAF}
}

// genes with an approved targeted-therapy association ;
// KRAS and TP53 are intentionally excluded
func ActionableSubset() []constants.Gene {
	return []constants.Gene{EGFR, BRAF, PIK3CA}
}

func CastToGene(text string) constants.Gene {
	switch strings.ToUpper(text) {
	case "EGFR":
		return EGFR
	case "KRAS":
		return KRAS
	case "TP53":
		return TP53
	case "PIK3CA":
		return PIK3CA
	case "BRAF":
		return BRAF
	default:
		return Unknown
	}
}

func IsKnownGene(text string) bool {
	// attempt to cast to gene and
	// return if unknown gene
	return CastToGene(text) != Unknown
}

func IsActionableGene(g constants.Gene) bool {
	for _, actionable := range ActionableSubset() {
		if g == actionable {
			return true
		}
	}
	return false
}
