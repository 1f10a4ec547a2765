// Package server holds the HTTP plumbing shared by the blog and news
// deployments: the middleware chain, Swagger UI mounting and graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"newsblog/internal/config"
	hhttp "newsblog/internal/handler/http"
	"newsblog/internal/handler/http/middleware"
	"newsblog/internal/handler/http/requestid"
	"newsblog/internal/observability/tracing"
)

// readHeaderTimeout bounds slow clients (Slowloris).
const readHeaderTimeout = 10 * time.Second

// Handler wraps mux with the middleware chain, outermost first:
// CORS, request id, tracing, recovery, logging, body limit, timeout,
// compression, metrics.
func Handler(cfg *config.Config, logger *slog.Logger, mux http.Handler) (http.Handler, error) {
	corsCfg, err := middleware.NewCORSConfig(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
		cfg.CORS.MaxAge,
	)
	if err != nil {
		return nil, fmt.Errorf("CORS configuration: %w", err)
	}
	corsCfg.Logger = logger

	compress, err := hhttp.Compress(hhttp.CompressionConfig{
		Enabled: cfg.Compression.Enabled,
		MinSize: cfg.Compression.MinSize,
		Level:   cfg.Compression.Level,
	})
	if err != nil {
		return nil, fmt.Errorf("compression configuration: %w", err)
	}

	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsCfg.Validator.GetAllowedOrigins()),
		slog.Any("allowed_methods", corsCfg.AllowedMethods),
		slog.Int("max_age", corsCfg.MaxAge))

	return hhttp.Chain(mux,
		middleware.CORS(*corsCfg),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.LimitRequestBody(cfg.RequestBodyLimit),
		hhttp.Timeout(cfg.RequestTimeout),
		compress,
		hhttp.MetricsMiddleware,
	), nil
}

// MountSwagger serves the Swagger UI for the document registered under
// instance at /swagger/.
func MountSwagger(mux *http.ServeMux, instance string) {
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.InstanceName(instance)))
}

func New(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// Run serves until ctx is done, then shuts down, giving in-flight requests up
// to shutdownTimeout. A listen failure is returned immediately.
func Run(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
