// Package config assembles service configuration from an optional .env file,
// an optional YAML file named by CONFIG_FILE and environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"newsblog/internal/common/pagination"
	envconfig "newsblog/pkg/config"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTPAddr         string            `yaml:"http_addr"`
	StorageBackend   string            `yaml:"storage_backend"`
	DatabaseURL      string            `yaml:"database_url"`
	DB               DBConfig          `yaml:"db"`
	SeedDemoData     bool              `yaml:"-"`
	NewsTimezone     string            `yaml:"news_timezone"`
	Compression      CompressionConfig `yaml:"compression"`
	CORS             CORSConfig        `yaml:"cors"`
	Pagination       PaginationConfig  `yaml:"pagination"`
	RequestBodyLimit int64             `yaml:"request_body_limit"`
	RequestTimeout   time.Duration     `yaml:"request_timeout"`
	ShutdownTimeout  time.Duration     `yaml:"shutdown_timeout"`
	Version          string            `yaml:"version"`
	LogLevel         string            `yaml:"log_level"`
}

type DBConfig struct {
	MaxOpenConns          int           `yaml:"max_open_conns"`
	MaxIdleConns          int           `yaml:"max_idle_conns"`
	ConnMaxLifetime       time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime       time.Duration `yaml:"conn_max_idle_time"`
	CircuitBreakerEnabled bool          `yaml:"circuit_breaker_enabled"`
}

type CompressionConfig struct {
	Enabled bool `yaml:"enabled"`
	MinSize int  `yaml:"min_size"`
	Level   int  `yaml:"level"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
	MaxAge         int      `yaml:"max_age"`
}

type PaginationConfig struct {
	DefaultPage  int `yaml:"default_page"`
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

// fileConfig distinguishes an absent seed_demo_data from an explicit false,
// since the default depends on the storage backend.
type fileConfig struct {
	Config       `yaml:",inline"`
	SeedDemoData *bool `yaml:"seed_demo_data"`
}

// Default returns the built-in configuration: in-memory storage on :8080.
func Default() Config {
	return Config{
		HTTPAddr:       ":8080",
		StorageBackend: BackendMemory,
		DB: DBConfig{
			MaxOpenConns:          25,
			MaxIdleConns:          10,
			ConnMaxLifetime:       time.Hour,
			ConnMaxIdleTime:       30 * time.Minute,
			CircuitBreakerEnabled: true,
		},
		NewsTimezone: "Local",
		Compression: CompressionConfig{
			Enabled: true,
			MinSize: 500,
			Level:   7,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:8080", "http://127.0.0.1:8080"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			MaxAge:         600,
		},
		Pagination: PaginationConfig{
			DefaultPage:  1,
			DefaultLimit: 20,
			MaxLimit:     100,
		},
		RequestBodyLimit: 1 << 20,
		RequestTimeout:   30 * time.Second,
		ShutdownTimeout:  5 * time.Second,
		Version:          "dev",
		LogLevel:         "info",
	}
}

// Load reads .env from the working directory when present, then CONFIG_FILE,
// then the environment, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	var seed *bool
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fc, err := readFile(path, cfg)
		if err != nil {
			return nil, err
		}
		cfg, seed = fc.Config, fc.SeedDemoData
	}

	cfg.applyEnv(seed)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	loadMetrics.RecordLoadTimestamp()
	return &cfg, nil
}

func readFile(path string, base Config) (*fileConfig, error) {
	// #nosec G304 -- path comes from the operator's CONFIG_FILE
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	fc := &fileConfig{Config: base}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return fc, nil
}

func (c *Config) applyEnv(seed *bool) {
	c.HTTPAddr = envconfig.GetEnvString("HTTP_ADDR", c.HTTPAddr)
	c.StorageBackend = strings.ToLower(envconfig.GetEnvString("STORAGE_BACKEND", c.StorageBackend))
	c.DatabaseURL = envconfig.GetEnvString("DATABASE_URL", c.DatabaseURL)

	c.DB.MaxOpenConns = envconfig.GetEnvInt("DB_MAX_OPEN_CONNS", c.DB.MaxOpenConns)
	c.DB.MaxIdleConns = envconfig.GetEnvInt("DB_MAX_IDLE_CONNS", c.DB.MaxIdleConns)
	c.DB.ConnMaxLifetime = envconfig.GetEnvDuration("DB_CONN_MAX_LIFETIME", c.DB.ConnMaxLifetime)
	c.DB.ConnMaxIdleTime = envconfig.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", c.DB.ConnMaxIdleTime)
	c.DB.CircuitBreakerEnabled = envconfig.GetEnvBool("DB_CIRCUIT_BREAKER_ENABLED", c.DB.CircuitBreakerEnabled)

	seedDefault := c.StorageBackend == BackendMemory
	if seed != nil {
		seedDefault = *seed
	}
	c.SeedDemoData = envconfig.GetEnvBool("SEED_DEMO_DATA", seedDefault)

	c.NewsTimezone = envconfig.GetEnvString("NEWS_TIMEZONE", c.NewsTimezone)

	c.Compression.Enabled = envconfig.GetEnvBool("COMPRESSION_ENABLED", c.Compression.Enabled)
	c.Compression.MinSize = envconfig.GetEnvInt("COMPRESSION_MIN_SIZE", c.Compression.MinSize)
	c.Compression.Level = envconfig.GetEnvInt("COMPRESSION_LEVEL", c.Compression.Level)

	c.CORS.AllowedOrigins = envconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", c.CORS.AllowedOrigins)
	c.CORS.AllowedMethods = envconfig.GetEnvStringList("CORS_ALLOWED_METHODS", c.CORS.AllowedMethods)
	c.CORS.AllowedHeaders = envconfig.GetEnvStringList("CORS_ALLOWED_HEADERS", c.CORS.AllowedHeaders)
	c.CORS.MaxAge = envconfig.GetEnvInt("CORS_MAX_AGE", c.CORS.MaxAge)

	c.Pagination.DefaultPage = envconfig.GetEnvInt("PAGINATION_DEFAULT_PAGE", c.Pagination.DefaultPage)
	c.Pagination.DefaultLimit = envconfig.GetEnvInt("PAGINATION_DEFAULT_LIMIT", c.Pagination.DefaultLimit)
	c.Pagination.MaxLimit = envconfig.GetEnvInt("PAGINATION_MAX_LIMIT", c.Pagination.MaxLimit)

	c.RequestBodyLimit = envconfig.GetEnvInt64("REQUEST_BODY_LIMIT", c.RequestBodyLimit)
	c.RequestTimeout = envconfig.GetEnvDuration("REQUEST_TIMEOUT", c.RequestTimeout)
	c.ShutdownTimeout = envconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)
	c.Version = envconfig.GetEnvString("VERSION", c.Version)
	c.LogLevel = strings.ToLower(envconfig.GetEnvString("LOG_LEVEL", c.LogLevel))
}

// Validate reports the first invalid field and counts it in
// config_validation_errors_total.
func (c *Config) Validate() error {
	field, err := c.validate()
	if err != nil {
		loadMetrics.RecordValidationError(field)
		return err
	}
	return nil
}

func (c *Config) validate() (string, error) {
	if c.HTTPAddr == "" {
		return "http_addr", errors.New("HTTP_ADDR cannot be empty")
	}

	switch c.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return "database_url", errors.New("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return "storage_backend", fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendMemory, BackendPostgres, c.StorageBackend)
	}

	if err := envconfig.ValidateTimezone(c.NewsTimezone); err != nil {
		return "news_timezone", fmt.Errorf("NEWS_TIMEZONE: %w", err)
	}

	if c.Compression.Enabled {
		// gzip.HuffmanOnly (-2) through gzip.BestCompression (9)
		if err := envconfig.ValidateIntRange(c.Compression.Level, -2, 9); err != nil {
			return "compression_level", fmt.Errorf("COMPRESSION_LEVEL: %w", err)
		}
		if c.Compression.MinSize < 0 {
			return "compression_min_size", fmt.Errorf("COMPRESSION_MIN_SIZE must be non-negative, got %d", c.Compression.MinSize)
		}
	}

	if c.CORS.MaxAge < 0 {
		return "cors_max_age", fmt.Errorf("CORS_MAX_AGE must be non-negative, got %d", c.CORS.MaxAge)
	}

	if err := envconfig.ValidateIntRange(c.Pagination.MaxLimit, 1, pagination.MaxPageSize); err != nil {
		return "pagination_max_limit", fmt.Errorf("PAGINATION_MAX_LIMIT: %w", err)
	}
	if c.Pagination.DefaultPage < 1 {
		return "pagination_default_page", fmt.Errorf("PAGINATION_DEFAULT_PAGE must be >= 1, got %d", c.Pagination.DefaultPage)
	}
	if err := envconfig.ValidateIntRange(c.Pagination.DefaultLimit, 1, c.Pagination.MaxLimit); err != nil {
		return "pagination_default_limit", fmt.Errorf("PAGINATION_DEFAULT_LIMIT: %w", err)
	}

	if c.RequestBodyLimit <= 0 {
		return "request_body_limit", fmt.Errorf("REQUEST_BODY_LIMIT must be positive, got %d", c.RequestBodyLimit)
	}
	if err := envconfig.ValidateNonNegativeDuration(c.RequestTimeout); err != nil {
		return "request_timeout", fmt.Errorf("REQUEST_TIMEOUT: %w", err)
	}
	if err := envconfig.ValidatePositiveDuration(c.ShutdownTimeout); err != nil {
		return "shutdown_timeout", fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return "log_level", fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	return "", nil
}

// Location resolves NewsTimezone; "Local" is the process time zone.
func (c *Config) Location() *time.Location {
	if c.NewsTimezone == "" || c.NewsTimezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.NewsTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}
