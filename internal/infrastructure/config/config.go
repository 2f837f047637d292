package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/pflag"
)

const (
	BackendFile  = "file"
	BackendMongo = "mongo"
	BackendLog   = "log"
	BackendRedis = "redis"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	HTTPAddr string `env:"HTTP_ADDR, default=127.0.0.1:8080"`

	// AllowedNetworks are CIDRs besides loopback that may reach /v1.
	AllowedNetworks []string `env:"ALLOWED_NETWORKS"`

	DataDir      string `env:"DATA_DIR,      default=data"`
	RosterFile   string `env:"ROSTER_FILE"`
	LogDir       string `env:"LOG_DIR"`
	FacilityFile string `env:"FACILITY_FILE"`

	ShowerTimeout time.Duration `env:"SHOWER_TIMEOUT, default=20m"`
	CheckInterval time.Duration `env:"CHECK_INTERVAL, default=15m"`

	SnapshotBackend string `env:"SNAPSHOT_BACKEND, default=file"`
	NoticeBackend   string `env:"NOTICE_BACKEND,   default=log"`
	NoticeWorkers   int    `env:"NOTICE_WORKERS,   default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=crisis_center"`
}

type RedisConfig struct {
	Addr    string `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int    `env:"REDIS_DB,      default=0"`
	Channel string `env:"REDIS_CHANNEL, default=tracker:notices"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration from l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// BindFlags registers command-line overrides on fs, defaulting to the
// values already loaded from the environment.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.HTTPAddr, "addr", c.HTTPAddr, "HTTP listen address")
	fs.StringVar(&c.DataDir, "data-dir", c.DataDir, "directory for the roster snapshot and activity logs")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: trace, debug, info, warn, error")
	fs.StringVar(&c.FacilityFile, "facility", c.FacilityFile, "YAML file listing beds and genders")
}

// Validate rejects settings that cannot work together.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR must not be empty"))
	}
	if c.ShowerTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHOWER_TIMEOUT must be positive, got %s", c.ShowerTimeout))
	}
	if c.CheckInterval < time.Minute {
		errs = append(errs, fmt.Errorf("CHECK_INTERVAL must be at least 1m, got %s", c.CheckInterval))
	}
	switch c.SnapshotBackend {
	case BackendFile:
	case BackendMongo:
		if c.Mongo.URI == "" {
			errs = append(errs, errors.New("MONGO_URI is required when SNAPSHOT_BACKEND=mongo"))
		}
	default:
		errs = append(errs, fmt.Errorf("SNAPSHOT_BACKEND must be %q or %q, got %q", BackendFile, BackendMongo, c.SnapshotBackend))
	}
	switch c.NoticeBackend {
	case BackendLog:
	case BackendRedis:
		if c.Redis.Addr == "" || c.Redis.Channel == "" {
			errs = append(errs, errors.New("REDIS_ADDR and REDIS_CHANNEL are required when NOTICE_BACKEND=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("NOTICE_BACKEND must be %q or %q, got %q", BackendLog, BackendRedis, c.NoticeBackend))
	}
	return errors.Join(errs...)
}

// RosterPath is the snapshot file, defaulting to clients.json in DataDir.
func (c *Config) RosterPath() string {
	if c.RosterFile != "" {
		return c.RosterFile
	}
	return filepath.Join(c.DataDir, "clients.json")
}

// ActivityLogDir is the root of the daily log tree, defaulting to logs in
// DataDir.
func (c *Config) ActivityLogDir() string {
	if c.LogDir != "" {
		return c.LogDir
	}
	return filepath.Join(c.DataDir, "logs")
}

// IsDevelopment enables console-friendly logging.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
