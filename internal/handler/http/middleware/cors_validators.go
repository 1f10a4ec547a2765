package middleware

import (
	"slices"
	"strings"
)

// WhitelistValidator matches origins case-insensitively, ignoring a trailing slash.
type WhitelistValidator struct {
	allowedOrigins []string
}

func NewWhitelistValidator(origins []string) *WhitelistValidator {
	normalized := make([]string, 0, len(origins))
	for _, origin := range origins {
		if o := normalizeOrigin(origin); o != "" {
			normalized = append(normalized, o)
		}
	}
	return &WhitelistValidator{allowedOrigins: normalized}
}

func (v *WhitelistValidator) IsAllowed(origin string) bool {
	origin = normalizeOrigin(origin)
	return origin != "" && slices.Contains(v.allowedOrigins, origin)
}

func (v *WhitelistValidator) GetAllowedOrigins() []string {
	return slices.Clone(v.allowedOrigins)
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}
