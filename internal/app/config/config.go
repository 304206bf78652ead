// Package config loads application settings from an optional YAML file,
// then applies environment overrides and defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"stock_watchlist/internal/feature/quotes/adapters/finnhub"
	"stock_watchlist/internal/platform/cache"
	"stock_watchlist/internal/platform/db"
	"stock_watchlist/internal/platform/logging"
	"stock_watchlist/internal/platform/redis"
)

// Symbol store backends.
const (
	StoreFile  = "file"
	StoreDB    = "db"
	StoreRedis = "redis"
)

// Search cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// DefaultPath is where the commands look for the config file.
const DefaultPath = "config.yaml"

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr           string   `yaml:"addr"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Finnhub struct {
		APIKey         string        `yaml:"api_key"`
		BaseURL        string        `yaml:"base_url"`
		Timeout        time.Duration `yaml:"timeout"`
		CallsPerMinute int           `yaml:"calls_per_minute"`
	} `yaml:"finnhub"`
	Watchlist struct {
		ReportFetchFailures bool          `yaml:"report_fetch_failures"`
		BatchDelay          time.Duration `yaml:"batch_delay"`
	} `yaml:"watchlist"`
	Store struct {
		Type        string `yaml:"type"`
		FilePath    string `yaml:"file_path"`
		RedisPrefix string `yaml:"redis_prefix"`
	} `yaml:"store"`
	SearchCache struct {
		Type string        `yaml:"type"`
		Size int           `yaml:"size"`
		TTL  time.Duration `yaml:"ttl"`
	} `yaml:"search_cache"`
	Refresh struct {
		Cron string `yaml:"cron"` // empty disables periodic refresh
	} `yaml:"refresh"`
	Database db.Config      `yaml:"database"`
	Redis    redis.Config   `yaml:"redis"`
	Log      logging.Config `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("WATCHLIST_STORE"); v != "" {
		c.Store.Type = v
	}
	if v := os.Getenv("WATCHLIST_FILE"); v != "" {
		c.Store.FilePath = v
	}
	if v := os.Getenv("SEARCH_CACHE"); v != "" {
		c.SearchCache.Type = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		c.Refresh.Cron = v
	}
	if v := os.Getenv("REPORT_FETCH_FAILURES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("REPORT_FETCH_FAILURES: %w", err)
		}
		c.Watchlist.ReportFetchFailures = b
	}
	if v := os.Getenv("BATCH_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("BATCH_DELAY: %w", err)
		}
		c.Watchlist.BatchDelay = d
	}

	mergeDB(&c.Database, db.LoadConfigFromEnv())

	r := redis.LoadConfigFromEnv()
	if r.Addr != "" {
		c.Redis.Addr = r.Addr
	}
	if r.Password != "" {
		c.Redis.Password = r.Password
	}

	l := logging.LoadConfigFromEnv()
	if l.Format != "" {
		c.Log.Format = l.Format
	}
	if l.Level != "" {
		c.Log.Level = l.Level
	}
	return nil
}

func mergeDB(dst *db.Config, env db.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&dst.Driver, env.Driver)
	set(&dst.Path, env.Path)
	set(&dst.User, env.User)
	set(&dst.Password, env.Password)
	set(&dst.Name, env.Name)
	set(&dst.Host, env.Host)
	set(&dst.Port, env.Port)
	set(&dst.SSLMode, env.SSLMode)
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8080"
	}
	if c.Watchlist.BatchDelay == 0 {
		c.Watchlist.BatchDelay = time.Second
	}
	if c.Store.Type == "" {
		c.Store.Type = StoreFile
	}
	if c.Store.FilePath == "" {
		c.Store.FilePath = "data/watchlist.json"
	}
	if c.Store.RedisPrefix == "" {
		c.Store.RedisPrefix = "watchlist"
	}
	if c.SearchCache.Type == "" {
		c.SearchCache.Type = CacheMemory
	}
	if c.SearchCache.Size == 0 {
		c.SearchCache.Size = cache.DefaultSize
	}
	if c.SearchCache.TTL == 0 {
		c.SearchCache.TTL = cache.DefaultTTL
	}
	if c.Database.Driver == "" {
		c.Database.Driver = db.DriverSQLite
	}
}

// Validate checks that the selected backends are known and usable.
func (c *Config) Validate() error {
	switch c.Store.Type {
	case StoreFile, StoreDB, StoreRedis:
	default:
		return fmt.Errorf("store.type must be one of file, db, redis; got %q", c.Store.Type)
	}
	switch c.SearchCache.Type {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return fmt.Errorf("search_cache.type must be one of memory, redis, none; got %q", c.SearchCache.Type)
	}
	if c.NeedsRedis() && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis is used")
	}
	if c.Store.Type == StoreDB {
		switch c.Database.Driver {
		case db.DriverSQLite:
		case db.DriverPostgres:
			if c.Database.Host == "" || c.Database.Name == "" {
				return fmt.Errorf("database.host and database.name are required for postgres")
			}
		default:
			return fmt.Errorf("database.driver must be sqlite or postgres; got %q", c.Database.Driver)
		}
	}
	if c.SearchCache.Size < 0 {
		return fmt.Errorf("search_cache.size must not be negative")
	}
	if c.Watchlist.BatchDelay < 0 {
		return fmt.Errorf("watchlist.batch_delay must not be negative")
	}
	if c.Finnhub.CallsPerMinute < 0 {
		return fmt.Errorf("finnhub.calls_per_minute must not be negative")
	}
	return nil
}

// NeedsRedis reports whether any component is configured to use Redis.
func (c *Config) NeedsRedis() bool {
	return c.Store.Type == StoreRedis || c.SearchCache.Type == CacheRedis
}

// FinnhubConfig resolves the Finnhub client settings. Environment values
// read by finnhub.LoadConfig win over the file.
func (c *Config) FinnhubConfig() finnhub.Config {
	fc := finnhub.LoadConfig()
	if fc.APIKey == "" {
		fc.APIKey = c.Finnhub.APIKey
	}
	if os.Getenv("FINNHUB_BASE_URL") == "" && c.Finnhub.BaseURL != "" {
		fc.BaseURL = c.Finnhub.BaseURL
	}
	if c.Finnhub.Timeout > 0 {
		fc.Timeout = c.Finnhub.Timeout
	}
	if c.Finnhub.CallsPerMinute > 0 {
		fc.CallsPerMinute = c.Finnhub.CallsPerMinute
	}
	return fc
}
