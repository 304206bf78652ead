// Package db opens the gorm connection behind the database symbol store.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultSQLitePath = "data/watchlist.db"
	DefaultTimeout    = 30 * time.Second
)

// Config holds database connection settings.
type Config struct {
	Driver   string `yaml:"driver"` // sqlite (default) or postgres
	Path     string `yaml:"path"`   // sqlite file; ":memory:" is allowed
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv reads DB_DRIVER, SQLITE_PATH and the DB_* postgres settings.
func LoadConfigFromEnv() Config {
	return Config{
		Driver:   os.Getenv("DB_DRIVER"),
		Path:     os.Getenv("SQLITE_PATH"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}
}

// BuildDSN returns the driver-specific DSN for cfg.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverPostgres {
		port := cfg.Port
		if port == "" {
			port = "5432"
		}
		sslmode := cfg.SSLMode
		if sslmode == "" {
			sslmode = "disable"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, port, sslmode)
	}
	if cfg.Path == "" {
		return DefaultSQLitePath
	}
	return cfg.Path
}

// OpenerFor returns the gorm opener matching cfg.Driver.
func OpenerFor(cfg Config) (Opener, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	switch cfg.Driver {
	case "", DriverSQLite:
		return func(dsn string) (*gorm.DB, error) {
			if dsn != ":memory:" {
				if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
					return nil, err
				}
			}
			return gorm.Open(sqlite.Open(dsn), gcfg)
		}, nil
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gcfg)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// OpenDB connects using cfg, retrying for up to DefaultTimeout.
func OpenDB(cfg Config) (*gorm.DB, error) {
	opener, err := OpenerFor(cfg)
	if err != nil {
		return nil, err
	}
	return ConnectWithRetry(BuildDSN(cfg), DefaultTimeout, opener)
}

// ConnectWithRetry calls opener with exponential backoff until it succeeds
// or timeout has elapsed, then returns the last error.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 3 * time.Second
	b.MaxElapsedTime = timeout

	var db *gorm.DB
	op := func() error {
		conn, err := opener(dsn)
		if err != nil {
			return err
		}
		db = conn
		return nil
	}
	notify := func(err error, next time.Duration) {
		slog.Warn("DB connect failed, retrying", "error", err, "retry_in", next)
	}

	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
	}
	return db, nil
}
