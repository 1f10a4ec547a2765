package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts paged listing requests by status and page bucket.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_pagination_requests_total",
			Help: "Total number of paginated news list requests",
		},
		[]string{"status", "page_range"},
	)

	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_pagination_duration_seconds",
			Help:    "Paginated news list duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// ErrorsTotal counts failures by type: validation or database.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_pagination_errors_total",
			Help: "Total number of paginated news list errors",
		},
		[]string{"type"},
	)
)

func RecordRequest(statusCode int, page int) {
	RequestsTotal.WithLabelValues(strconv.Itoa(statusCode), pageRangeBucket(page)).Inc()
}

func RecordDuration(operation string, seconds float64) {
	DurationSeconds.WithLabelValues(operation).Observe(seconds)
}

func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

func pageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
