// Package config loads the wizard configuration from the environment
package config

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
)

// Draft store backends
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

const (
	appDirName     = "daggerheart-wizard"
	sqliteFileName = "wizard.db"
	logFileName    = "wizard.log"
)

// Config holds all configuration for the wizard
type Config struct {
	// Store selects the draft backend: file, redis or sqlite
	Store    string `env:"WIZARD_STORE" envDefault:"file"`
	DraftKey string `env:"WIZARD_DRAFT_KEY" envDefault:"daggerheart-wizard-draft"`

	// StateDir holds the file backend, the sqlite database and the log
	// file unless those are set. Defaults to the user config directory.
	StateDir string `env:"WIZARD_STATE_DIR"`

	Redis      RedisConfig `envPrefix:"WIZARD_REDIS_"`
	SQLitePath string      `env:"WIZARD_SQLITE_PATH"`

	CatalogDir string `env:"WIZARD_CATALOG_DIR"`
	AssetDir   string `env:"WIZARD_ASSET_DIR"`

	LogFile  string `env:"WIZARD_LOG_FILE"`
	LogLevel string `env:"WIZARD_LOG_LEVEL" envDefault:"info"`

	// WideColumns is the terminal width at which three cards are shown
	WideColumns int `env:"WIZARD_WIDE_COLUMNS" envDefault:"100"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string        `env:"ADDR" envDefault:"localhost:6379"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"0s"`
}

// Load reads the optional dotenv files, then the environment. With no
// files it looks for .env in the working directory. Missing files are
// skipped. Variables already set win over dotenv values.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read "+file)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills the paths derived from StateDir. It is safe to call
// again after flags changed StateDir.
func (c *Config) ApplyDefaults() error {
	if c.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return errors.Wrap(err, "failed to find the user config directory")
		}
		c.StateDir = filepath.Join(base, appDirName)
	}
	if c.SQLitePath == "" {
		c.SQLitePath = filepath.Join(c.StateDir, sqliteFileName)
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(c.StateDir, logFileName)
	}
	if c.DraftKey == "" {
		c.DraftKey = daggerheart.DefaultDraftKey
	}
	return nil
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("store", c.Store, []string{StoreFile, StoreRedis, StoreSQLite}, vb)
	errors.ValidateRequired("draftKey", c.DraftKey, vb)
	errors.ValidateRequired("stateDir", c.StateDir, vb)
	errors.ValidateEnum("logLevel", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateRange("wideColumns", c.WideColumns, 40, 1000, vb)

	switch c.Store {
	case StoreRedis:
		errors.ValidateRequired("redis.addr", c.Redis.Addr, vb)
		errors.ValidateRange("redis.db", c.Redis.DB, 0, 15, vb)
		if c.Redis.TTL < 0 {
			vb.Field("redis.ttl", "must not be negative")
		}
	case StoreSQLite:
		errors.ValidateRequired("sqlitePath", c.SQLitePath, vb)
	}

	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
