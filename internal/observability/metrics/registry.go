package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingest metrics.
var (
	IngestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_ingest_duration_seconds",
			Help:    "Time spent ingesting one news source",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"source_id"},
	)

	IngestItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_ingest_items_total",
			Help: "Feed entries seen by the ingest, by outcome",
		},
		[]string{"source_id", "outcome"},
	)

	IngestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_ingest_errors_total",
			Help: "Ingest failures by source and stage",
		},
		[]string{"source_id", "stage"},
	)
)

// Store gauges.
var (
	NewsItemsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_items_total",
			Help: "Number of stored news items",
		},
	)

	NewsSourcesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_sources_total",
			Help: "Number of stored news sources",
		},
	)

	DBConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Database connections currently in use",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Idle database connections",
		},
	)
)
