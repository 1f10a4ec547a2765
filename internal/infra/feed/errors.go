// Package feed fetches RSS/Atom feeds and article pages for the news ingest.
package feed

import "errors"

var (
	ErrInvalidURL        = errors.New("invalid URL or unsupported scheme")
	ErrPrivateIP         = errors.New("URL resolves to a private address")
	ErrTooManyRedirects  = errors.New("too many redirects")
	ErrBodyTooLarge      = errors.New("response body too large")
	ErrReadabilityFailed = errors.New("no readable content")
)
