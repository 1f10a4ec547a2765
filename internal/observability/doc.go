// Package observability groups the logging, metrics and tracing subpackages.
//
//	logger := logging.NewLogger(os.Stdout, "info")
//	slog.SetDefault(logger)
//	handler = tracing.Middleware(handler)
package observability
