package http

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

type CompressionConfig struct {
	Enabled bool
	MinSize int
	Level   int
}

func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{Enabled: true, MinSize: 500, Level: 7}
}

// Compress gzips responses of at least MinSize bytes when the client accepts
// gzip. A disabled config yields a pass-through middleware.
func Compress(cfg CompressionConfig) (Middleware, error) {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }, nil
	}
	wrap, err := gzhttp.NewWrapper(
		gzhttp.MinSize(cfg.MinSize),
		gzhttp.CompressionLevel(cfg.Level),
	)
	if err != nil {
		return nil, fmt.Errorf("gzip wrapper: %w", err)
	}
	return func(next http.Handler) http.Handler {
		return wrap(next)
	}, nil
}
