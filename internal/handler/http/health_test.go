package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHealthHandler_Memory(t *testing.T) {
	h := &HealthHandler{Backend: "memory", Version: "test"}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "memory", resp.Backend)
	assert.Equal(t, "test", resp.Version)
	assert.Equal(t, "in-memory", resp.Checks["storage"].Message)
}

func TestHealthHandler_Postgres(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(sqlmock.Sqlmock)
		maxOpen        int
		expectedStatus int
		wantStatus     string
		wantDBStatus   string
	}{
		{
			name:           "healthy",
			setupMock:      func(m sqlmock.Sqlmock) { m.ExpectPing() },
			maxOpen:        25,
			expectedStatus: http.StatusOK,
			wantStatus:     "healthy",
			wantDBStatus:   "healthy",
		},
		{
			name:           "pool unconfigured is degraded",
			setupMock:      func(m sqlmock.Sqlmock) { m.ExpectPing() },
			maxOpen:        0,
			expectedStatus: http.StatusOK,
			wantStatus:     "healthy",
			wantDBStatus:   "degraded",
		},
		{
			name: "ping fails",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectPing().WillReturnError(errors.New("connection refused"))
			},
			maxOpen:        25,
			expectedStatus: http.StatusServiceUnavailable,
			wantStatus:     "unhealthy",
			wantDBStatus:   "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			db.SetMaxOpenConns(tt.maxOpen)
			tt.setupMock(mock)

			h := &HealthHandler{Backend: "postgres", DB: db, Stats: db.Stats, Version: "v1"}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			resp := decodeHealth(t, rec)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantDBStatus, resp.Checks["database"].Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHealthHandler_PingWithoutStats(t *testing.T) {
	h := &HealthHandler{Backend: "postgres", DB: pingFunc(func(context.Context) error { return nil })}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decodeHealth(t, rec).Checks["database"].Status)
}

func TestReadyHandler(t *testing.T) {
	tests := []struct {
		name   string
		db     Pinger
		status int
	}{
		{"no database", nil, http.StatusOK},
		{"ping ok", pingFunc(func(context.Context) error { return nil }), http.StatusOK},
		{"ping fails", pingFunc(func(context.Context) error { return sql.ErrConnDone }), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			(&ReadyHandler{DB: tt.db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRegisterProbes(t *testing.T) {
	mux := http.NewServeMux()
	RegisterProbes(mux, &HealthHandler{Backend: "memory"})

	for _, path := range []string{"/health", "/ready", "/live", "/metrics"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, "alive", rec.Body.String())
}
