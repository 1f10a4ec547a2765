// Package resilience groups fault-tolerance helpers. circuitbreaker wraps
// gobreaker for the PostgreSQL pool and for feed hosts. Nothing here retries:
// a failed call fails the request (or, in ingest, the source).
//
//	cb := circuitbreaker.New(circuitbreaker.FeedFetchConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return fetch(ctx, url)
//	})
package resilience
