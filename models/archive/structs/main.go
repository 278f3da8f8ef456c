package structs

import (
	"liquidbiopsy/api/models/records"
	"sync"
)

type ArchiveQueueStructure struct {
	Variant      *records.VariantRecord
	WaitGroup    *sync.WaitGroup
	FailureCount *int64 // incremented atomically on indexing failures
}
