package sources

import (
	"context"
	"liquidbiopsy/api/models/records"
	"time"
)

/*
	Capability interfaces separating what the dashboard consumes from
	where the data comes from. The synthetic services are the default
	implementations ; a production successor would plug real loaders
	(variant-call file ingestion, a LIMS query layer, an annotation
	lookup) in behind the same contracts. The Elasticsearch-backed
	archive reader is the one alternative implementation shipped here.
*/

type VariantSource interface {
	Variants(ctx context.Context, limit int) ([]records.VariantRecord, error)
}

type QcMetricsSource interface {
	DailyMetrics(ctx context.Context, days int, end time.Time) ([]records.QCDailyRecord, error)
}
