// Package middleware holds the CORS middleware shared by both services.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

type CORSConfig struct {
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int // seconds
	Validator        *WhitelistValidator
	Logger           *slog.Logger
}

// CORS answers preflight requests from allowed origins with 204 and adds the
// allow headers to their actual requests. Requests from other origins pass
// through without CORS headers, so the browser blocks them.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")
			if !config.Validator.IsAllowed(origin) {
				logger.Warn("CORS: origin not allowed",
					slog.String("origin", origin),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			if config.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods",
					allowList(config.AllowedMethods, r.Header.Get("Access-Control-Request-Method")))
				if h := allowList(config.AllowedHeaders, r.Header.Get("Access-Control-Request-Headers")); h != "" {
					w.Header().Set("Access-Control-Allow-Headers", h)
				}
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))

				logger.Debug("CORS: preflight request",
					slog.String("origin", origin),
					slog.String("requested_method", r.Header.Get("Access-Control-Request-Method")),
					slog.String("requested_headers", r.Header.Get("Access-Control-Request-Headers")))

				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// allowList joins the configured values; a "*" entry echoes what the browser
// asked for, since the literal wildcard is ignored on credentialed requests.
func allowList(configured []string, requested string) string {
	for _, v := range configured {
		if v == "*" {
			return requested
		}
	}
	return strings.Join(configured, ", ")
}
