package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsblog/internal/common/pagination"
	"newsblog/internal/config"
	hhttp "newsblog/internal/handler/http"
	hitem "newsblog/internal/handler/http/newsitem"
	hsource "newsblog/internal/handler/http/newssource"
	"newsblog/internal/infra/adapter/persistence/memory"
	pgRepo "newsblog/internal/infra/adapter/persistence/postgres"
	"newsblog/internal/infra/db"
	"newsblog/internal/observability/logging"
	"newsblog/internal/repository"
	"newsblog/internal/resilience/circuitbreaker"
	"newsblog/internal/server"
	"newsblog/internal/usecase/demo"
	itemUC "newsblog/internal/usecase/newsitem"
	sourceUC "newsblog/internal/usecase/newssource"

	_ "newsblog/docs/newsapi" // swagger docs
)

// @title           News API
// @version         1.0
// @description     News sources and items with period filtering and pagination.
// @host            localhost:8080
// @BasePath        /

type storage struct {
	sources repository.NewsSourceRepository
	items   repository.NewsItemRepository
	sqlDB   *sql.DB
	breaker *circuitbreaker.DBCircuitBreaker
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := initStorage(ctx, logger, cfg)
	if store.sqlDB != nil {
		defer func() {
			if err := store.sqlDB.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	sourceSvc := &sourceUC.Service{Repo: store.sources}
	itemSvc := &itemUC.Service{Repo: store.items, Now: time.Now, Location: cfg.Location()}

	if cfg.SeedDemoData {
		if _, err := demo.SeedNews(ctx, sourceSvc, itemSvc, time.Now()); err != nil {
			logger.Error("failed to seed demo data", slog.Any("error", err))
			os.Exit(1)
		}
	}

	paginationCfg := pagination.Config{
		DefaultPage:  cfg.Pagination.DefaultPage,
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
	}

	mux := http.NewServeMux()
	hitem.Register(mux, itemSvc, paginationCfg)
	hsource.Register(mux, sourceSvc)
	hhttp.RegisterProbes(mux, healthHandler(cfg, store))
	server.MountSwagger(mux, "newsapi")

	handler, err := server.Handler(cfg, logger, mux)
	if err != nil {
		logger.Error("failed to build middleware chain", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("news service configured",
		slog.String("storage_backend", cfg.StorageBackend),
		slog.String("timezone", cfg.Location().String()),
		slog.Bool("db_circuit_breaker", store.breaker != nil),
		slog.String("version", cfg.Version))
	if err := server.Run(ctx, logger, server.New(cfg.HTTPAddr, handler), cfg.ShutdownTimeout); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

// initStorage selects the backend once. PostgreSQL runs the idempotent
// migrations at startup and, unless disabled, routes queries through a
// circuit breaker.
func initStorage(ctx context.Context, logger *slog.Logger, cfg *config.Config) storage {
	if cfg.StorageBackend == config.BackendMemory {
		mem := memory.NewNewsStore(time.Now)
		return storage{sources: memory.NewNewsSourceRepo(mem), items: memory.NewNewsItemRepo(mem)}
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

	store := storage{sqlDB: sqlDB}
	var conn pgRepo.DBTX = sqlDB
	if cfg.DB.CircuitBreakerEnabled {
		store.breaker = circuitbreaker.NewDBCircuitBreaker(sqlDB)
		conn = store.breaker
	}
	store.sources = pgRepo.NewNewsSourceRepo(conn)
	store.items = pgRepo.NewNewsItemRepo(conn)
	return store
}

func healthHandler(cfg *config.Config, store storage) *hhttp.HealthHandler {
	h := &hhttp.HealthHandler{Backend: cfg.StorageBackend, Version: cfg.Version}
	if store.sqlDB == nil {
		return h
	}
	h.Stats = store.sqlDB.Stats
	if store.breaker != nil {
		h.DB = store.breaker
	} else {
		h.DB = store.sqlDB
	}
	return h
}
