package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"newsblog/internal/config"
	hhttp "newsblog/internal/handler/http"
	hpost "newsblog/internal/handler/http/post"
	huser "newsblog/internal/handler/http/user"
	"newsblog/internal/infra/adapter/persistence/gormrepo"
	"newsblog/internal/infra/adapter/persistence/memory"
	"newsblog/internal/infra/db"
	"newsblog/internal/observability/logging"
	"newsblog/internal/repository"
	"newsblog/internal/resilience/circuitbreaker"
	"newsblog/internal/server"
	"newsblog/internal/usecase/demo"
	postUC "newsblog/internal/usecase/post"
	userUC "newsblog/internal/usecase/user"

	_ "newsblog/docs/blogapi" // swagger docs
)

// @title           Blog API
// @version         1.0
// @description     Users and posts.
// @host            localhost:8080
// @BasePath        /

// storage bundles the repositories and, for PostgreSQL, the pool behind them.
type storage struct {
	users repository.UserRepository
	posts repository.PostRepository
	sqlDB *sql.DB
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := initLogger(cfg)

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

	userSvc := &userUC.Service{Repo: store.users}
	postSvc := &postUC.Service{Repo: store.posts}

	if cfg.SeedDemoData {
		if _, err := demo.SeedBlog(ctx, userSvc, postSvc); err != nil {
			logger.Error("failed to seed demo data", slog.Any("error", err))
			os.Exit(1)
		}
	}

	mux := http.NewServeMux()
	huser.Register(mux, userSvc)
	hpost.Register(mux, postSvc)
	hhttp.RegisterProbes(mux, healthHandler(cfg, store))
	server.MountSwagger(mux, "blogapi")

	handler, err := server.Handler(cfg, logger, mux)
	if err != nil {
		logger.Error("failed to build middleware chain", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("blog service configured",
		slog.String("storage_backend", cfg.StorageBackend),
		slog.String("version", cfg.Version))
	if err := server.Run(ctx, logger, server.New(cfg.HTTPAddr, handler), cfg.ShutdownTimeout); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

func initLogger(cfg *config.Config) *slog.Logger {
	logger := logging.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger
}

// initStorage selects the backend once. PostgreSQL goes through GORM, with
// the schema created by AutoMigrate before the first request.
func initStorage(ctx context.Context, logger *slog.Logger, cfg *config.Config) storage {
	if cfg.StorageBackend == config.BackendMemory {
		mem := memory.NewBlogStore()
		return storage{users: memory.NewUserRepo(mem), posts: memory.NewPostRepo(mem)}
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

	gdb, err := db.OpenGorm(sqlDB)
	if err != nil {
		logger.Error("failed to initialise gorm", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.AutoMigrate(gdb, gormrepo.Models()...); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	return storage{
		users: gormrepo.NewUserRepo(gdb),
		posts: gormrepo.NewPostRepo(gdb),
		sqlDB: sqlDB,
	}
}

func healthHandler(cfg *config.Config, store storage) *hhttp.HealthHandler {
	h := &hhttp.HealthHandler{Backend: cfg.StorageBackend, Version: cfg.Version}
	if store.sqlDB == nil {
		return h
	}
	h.Stats = store.sqlDB.Stats
	if cfg.DB.CircuitBreakerEnabled {
		h.DB = circuitbreaker.NewDBCircuitBreaker(store.sqlDB)
	} else {
		h.DB = store.sqlDB
	}
	return h
}
