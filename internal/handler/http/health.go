// Package http holds the HTTP plumbing shared by the blog and news services:
// middleware, health probes and metrics.
package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"newsblog/internal/handler/http/respond"
	"newsblog/internal/observability/metrics"
)

// Pinger is satisfied by *sql.DB and the circuit-breaker wrapper around it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Backend   string                 `json:"backend"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

type CheckStatus struct {
	Status  string         `json:"status"` // healthy, degraded or unhealthy
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports the storage backend and, for PostgreSQL, a ping and
// pool statistics. The in-memory backend is always healthy.
type HealthHandler struct {
	Backend string
	DB      Pinger
	Stats   func() sql.DBStats
	Version string
}

// ServeHTTP godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	healthy := true

	if h.DB != nil {
		dbCheck := h.checkDatabase(ctx)
		checks["database"] = dbCheck
		if dbCheck.Status == "unhealthy" {
			healthy = false
		}
	} else {
		checks["storage"] = CheckStatus{Status: "healthy", Message: "in-memory"}
	}

	status, code := "healthy", http.StatusOK
	if !healthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Backend:   h.Backend,
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: "unhealthy", Message: respond.SanitizeError(err)}
	}
	if h.Stats == nil {
		return CheckStatus{Status: "healthy"}
	}

	stats := h.Stats()
	metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}
	// MaxOpenConnections 0 means unlimited
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80.0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

// ReadyHandler answers 200 once the database responds to a ping. Without a
// database the service is ready as soon as it listens.
type ReadyHandler struct {
	DB Pinger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			respond.Error(w, http.StatusServiceUnavailable, "database not ready")
			return
		}
	}
	writeText(w, "ready")
}

type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeText(w, "alive")
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// RegisterProbes mounts /health, /ready, /live and /metrics.
func RegisterProbes(mux *http.ServeMux, health *HealthHandler) {
	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", &ReadyHandler{DB: health.DB})
	mux.Handle("GET /live", &LiveHandler{})
	mux.Handle("GET /metrics", MetricsHandler())
}
