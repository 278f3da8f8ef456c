package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the Liquid Biopsy demo
	service and its associated components.
*/
type Gene string
type CancerType string
type ConfidenceLabel string
type ValidationStatus string

type SortDirection string
