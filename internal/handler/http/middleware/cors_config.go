package middleware

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

var (
	DefaultAllowedOrigins = []string{"http://localhost:8080", "http://127.0.0.1:8080"}
	DefaultAllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	DefaultAllowedHeaders = []string{"*"}
)

const DefaultMaxAge = 600

var validMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// NewCORSConfig validates the lists and builds a credentialed config. Empty
// lists fall back to the defaults above.
func NewCORSConfig(origins, methods, headers []string, maxAge int) (*CORSConfig, error) {
	if len(origins) == 0 {
		origins = DefaultAllowedOrigins
	}
	if len(methods) == 0 {
		methods = DefaultAllowedMethods
	}
	if len(headers) == 0 {
		headers = DefaultAllowedHeaders
	}
	if maxAge < 0 {
		return nil, fmt.Errorf("CORS max age must be non-negative, got: %d", maxAge)
	}

	for _, o := range origins {
		if err := validateOrigin(o); err != nil {
			return nil, err
		}
	}

	normalized := make([]string, 0, len(methods))
	for _, m := range methods {
		m = strings.ToUpper(strings.TrimSpace(m))
		if !validMethods[m] {
			return nil, fmt.Errorf("invalid HTTP method %q", m)
		}
		normalized = append(normalized, m)
	}

	return &CORSConfig{
		AllowedMethods:   normalized,
		AllowedHeaders:   headers,
		AllowCredentials: true,
		MaxAge:           maxAge,
		Validator:        NewWhitelistValidator(origins),
	}, nil
}

func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin URL %q: %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin must use http or https scheme: %s", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("origin must include a host: %s", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin must not include path, query or fragment: %s", origin)
	}
	return nil
}
