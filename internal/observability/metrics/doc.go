// Package metrics holds the Prometheus metrics recorded outside the HTTP
// middleware: feed ingest results and store sizes.
//
// Metrics register with the default registry and are served by /metrics.
//
//	start := time.Now()
//	// ... ingest one source ...
//	metrics.RecordIngest(src.ID, time.Since(start), fetched, inserted, skipped)
package metrics
