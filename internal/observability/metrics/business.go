package metrics

import (
	"strconv"
	"time"
)

// RecordIngest records the outcome of ingesting one source.
func RecordIngest(sourceID int64, duration time.Duration, fetched, inserted, skipped int64) {
	id := strconv.FormatInt(sourceID, 10)
	IngestDuration.WithLabelValues(id).Observe(duration.Seconds())
	IngestItemsTotal.WithLabelValues(id, "fetched").Add(float64(fetched))
	IngestItemsTotal.WithLabelValues(id, "inserted").Add(float64(inserted))
	IngestItemsTotal.WithLabelValues(id, "skipped").Add(float64(skipped))
}

// RecordIngestError counts a failure at stage ("fetch", "lookup", "create", "touch").
func RecordIngestError(sourceID int64, stage string) {
	IngestErrorsTotal.WithLabelValues(strconv.FormatInt(sourceID, 10), stage).Inc()
}

func UpdateStoreTotals(sources, items int64) {
	NewsSourcesTotal.Set(float64(sources))
	NewsItemsTotal.Set(float64(items))
}

func UpdateDBConnectionStats(inUse, idle int) {
	DBConnectionsInUse.Set(float64(inUse))
	DBConnectionsIdle.Set(float64(idle))
}
