// Package pagination parses offset/limit paging parameters and records
// listing metrics.
package pagination

import "fmt"

// MaxPageSize is the hard upper bound for any configured MaxLimit.
const MaxPageSize = 100

type Config struct {
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// DefaultConfig returns page=1, size=20, max=100.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

func (c Config) Validate() error {
	if c.DefaultPage < 1 {
		return fmt.Errorf("pagination default page must be >= 1, got %d", c.DefaultPage)
	}
	if c.MaxLimit < 1 || c.MaxLimit > MaxPageSize {
		return fmt.Errorf("pagination max limit must be between 1 and %d, got %d", MaxPageSize, c.MaxLimit)
	}
	if c.DefaultLimit < 1 || c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("pagination default limit must be between 1 and %d, got %d", c.MaxLimit, c.DefaultLimit)
	}
	return nil
}
