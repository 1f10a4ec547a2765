package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCORS(t *testing.T) http.Handler {
	t.Helper()
	cfg, err := NewCORSConfig(nil, nil, nil, DefaultMaxAge)
	require.NoError(t, err)
	return CORS(*cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORS_AllowedOrigin(t *testing.T) {
	h := defaultCORS(t)

	for _, origin := range DefaultAllowedOrigins {
		req := httptest.NewRequest(http.MethodGet, "/news", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	h := defaultCORS(t)
	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_NoOrigin(t *testing.T) {
	h := defaultCORS(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Vary"))
}

func TestCORS_Preflight(t *testing.T) {
	h := defaultCORS(t)
	req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Custom")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "GET, POST, PUT, PATCH, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, X-Custom", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_PreflightExplicitHeaders(t *testing.T) {
	cfg, err := NewCORSConfig([]string{"https://app.example"}, []string{"get", "post"}, []string{"Content-Type"}, 60)
	require.NoError(t, err)
	h := CORS(*cfg)(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	req.Header.Set("Origin", "https://APP.example/")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestNewCORSConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		methods []string
		maxAge  int
	}{
		{"bad scheme", []string{"ftp://x.example"}, nil, 0},
		{"path", []string{"http://x.example/app"}, nil, 0},
		{"trailing slash", []string{"http://x.example/"}, nil, 0},
		{"no host", []string{"http://"}, nil, 0},
		{"bad method", nil, []string{"FETCH"}, 0},
		{"negative max age", nil, nil, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCORSConfig(tt.origins, tt.methods, nil, tt.maxAge)
			assert.Error(t, err)
		})
	}
}

func TestWhitelistValidator(t *testing.T) {
	v := NewWhitelistValidator([]string{" http://LocalHost:8080/ ", ""})
	assert.Equal(t, []string{"http://localhost:8080"}, v.GetAllowedOrigins())
	assert.True(t, v.IsAllowed("http://localhost:8080"))
	assert.True(t, v.IsAllowed("HTTP://LOCALHOST:8080/"))
	assert.False(t, v.IsAllowed(""))
	assert.False(t, v.IsAllowed("http://localhost:3000"))
}
