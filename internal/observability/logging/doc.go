// Package logging builds the JSON slog logger used by every binary and
// carries request-scoped loggers through context.
//
//	logger := logging.NewLogger(os.Stdout, cfg.LogLevel)
//	slog.SetDefault(logger)
//
//	log := logging.WithRequestID(r.Context(), slog.Default())
//	log.Info("source created", slog.Int64("id", src.ID))
package logging
