// Package main runs one feed ingest pass over the active news sources.
// Usage: newsblog-ingest [--parallelism N] [--rate R] [--full-content] [--output json]
package main

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"newsblog/internal/config"
	"newsblog/internal/infra/adapter/persistence/memory"
	pgRepo "newsblog/internal/infra/adapter/persistence/postgres"
	"newsblog/internal/infra/db"
	"newsblog/internal/infra/feed"
	"newsblog/internal/observability/logging"
	"newsblog/internal/repository"
	"newsblog/internal/resilience/circuitbreaker"
	"newsblog/internal/usecase/demo"
	"newsblog/internal/usecase/ingest"
	itemUC "newsblog/internal/usecase/newsitem"
	sourceUC "newsblog/internal/usecase/newssource"
)

// StatsOutput is the --output json report.
type StatsOutput struct {
	Sources    int    `json:"sources"`
	Fetched    int64  `json:"fetched"`
	Inserted   int64  `json:"inserted"`
	Skipped    int64  `json:"skipped"`
	Failed     int64  `json:"failed"`
	DurationMS int64  `json:"duration_ms"`
	Backend    string `json:"backend"`
}

func main() {
	var (
		parallelism  int
		perSecond    float64
		fullContent  bool
		allowPrivate bool
		timeout      time.Duration
		outputFormat string
	)
	flag.IntVar(&parallelism, "parallelism", 4, "Sources fetched concurrently")
	flag.Float64Var(&perSecond, "rate", 2, "Feed requests per second across all workers (0 = unpaced)")
	flag.BoolVar(&fullContent, "full-content", false, "Extract article text for items without content")
	flag.BoolVar(&allowPrivate, "allow-private", false, "Allow feed and article URLs that resolve to private addresses")
	flag.DurationVar(&timeout, "timeout", 5*time.Minute, "Upper bound for the whole run")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sources, items, closeDB := initStorage(ctx, logger, cfg)
	defer closeDB()

	itemSvc := &itemUC.Service{Repo: items, Now: time.Now, Location: cfg.Location()}
	if cfg.StorageBackend == config.BackendMemory {
		// a throwaway store: give it the demo source so the run has a feed to read
		if _, err := demo.SeedNews(ctx, &sourceUC.Service{Repo: sources}, itemSvc, time.Now()); err != nil {
			logger.Error("failed to seed demo data", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Warn("ingesting into the in-memory store; results are discarded on exit")
	}

	svc := &ingest.Service{
		Sources:     sources,
		Items:       items,
		Creator:     itemSvc,
		Fetcher:     feed.NewRSSFetcher(createHTTPClient(), !allowPrivate),
		Parallelism: parallelism,
	}
	if perSecond > 0 {
		svc.Limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
	if fullContent {
		rc := feed.DefaultReadabilityConfig()
		rc.DenyPrivateIPs = !allowPrivate
		svc.Content = feed.NewReadabilityFetcher(rc)
	}

	logger.Info("ingest starting",
		slog.Int("parallelism", parallelism),
		slog.Float64("rate", perSecond),
		slog.Bool("full_content", fullContent),
		slog.String("storage_backend", cfg.StorageBackend))

	stats, err := svc.Run(ctx)
	if err != nil {
		logger.Error("ingest failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: Ingest failed: %v\n", err)
		os.Exit(1)
	}

	if outputFormat == "json" {
		outputJSON(stats, cfg.StorageBackend)
	} else {
		outputText(stats)
	}
}

func initStorage(ctx context.Context, logger *slog.Logger, cfg *config.Config) (repository.NewsSourceRepository, repository.NewsItemRepository, func()) {
	if cfg.StorageBackend == config.BackendMemory {
		mem := memory.NewNewsStore(time.Now)
		return memory.NewNewsSourceRepo(mem), memory.NewNewsItemRepo(mem), func() {}
	}

	sqlDB, err := db.Open(ctx, cfg.DatabaseURL, db.ConnectionConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.DB.ConnMaxIdleTime,
	}.WithDefaults())
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(sqlDB); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	var conn pgRepo.DBTX = sqlDB
	if cfg.DB.CircuitBreakerEnabled {
		conn = circuitbreaker.NewDBCircuitBreaker(sqlDB)
	}
	closeDB := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}
	return pgRepo.NewNewsSourceRepo(conn), pgRepo.NewNewsItemRepo(conn), closeDB
}

func createHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}

func outputJSON(stats *ingest.Stats, backend string) {
	out := StatsOutput{
		Sources:    stats.Sources,
		Fetched:    stats.Fetched,
		Inserted:   stats.Inserted,
		Skipped:    stats.Skipped,
		Failed:     stats.Failed,
		DurationMS: stats.Duration.Milliseconds(),
		Backend:    backend,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to encode output: %v\n", err)
		os.Exit(1)
	}
}

func outputText(stats *ingest.Stats) {
	fmt.Printf("Sources:  %d\n", stats.Sources)
	fmt.Printf("Fetched:  %d\n", stats.Fetched)
	fmt.Printf("Inserted: %d\n", stats.Inserted)
	fmt.Printf("Skipped:  %d\n", stats.Skipped)
	fmt.Printf("Failed:   %d\n", stats.Failed)
	fmt.Printf("Duration: %s\n", stats.Duration.Round(time.Millisecond))
}
