package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

type Params struct {
	Page int // 1-based
	Size int
}

// ParseQueryParams reads page and size from the query string. Missing values
// take the configured defaults; present but invalid values are an error.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page: config.DefaultPage,
		Size: config.DefaultLimit,
	}
	q := r.URL.Query()

	if pageStr := q.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}

	if sizeStr := q.Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 || size > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: size must be between 1 and %d", config.MaxLimit)
		}
		params.Size = size
	}

	return params, nil
}
