// Package pathutil parses ids from request paths and query strings and
// normalizes paths for metric labels.
package pathutil

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when an id is not an integer.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a decimal id. Range checks belong to the caller.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// PathID parses the {name} wildcard of the matched route.
func PathID(r *http.Request, name string) (int64, error) {
	return ParseID(r.PathValue(name))
}

// QueryID parses an id from the query string. ok is false when the key is
// absent or empty.
func QueryID(r *http.Request, key string) (id int64, ok bool, err error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false, nil
	}
	id, err = ParseID(raw)
	return id, true, err
}
