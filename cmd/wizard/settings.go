package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/daggerheart-wizard/internal/config"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	"github.com/KirkDiggler/daggerheart-wizard/internal/redis"
	"github.com/KirkDiggler/daggerheart-wizard/internal/repositories/catalog"
	characterdraft "github.com/KirkDiggler/daggerheart-wizard/internal/repositories/character_draft"
)

const (
	stateDirMode = 0o755
	logFileMode  = 0o600
	redisTimeout = 3 * time.Second
)

var (
	// Config override flags
	envFile    string
	storeKind  string
	draftDir   string
	redisAddr  string
	sqlitePath string
	logFile    string
	catalogDir string
	assetDir   string
)

func registerConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", ".env", "Dotenv file to load before reading the environment")
	flags.StringVar(&storeKind, "store", "", "Draft store: file, redis or sqlite (env WIZARD_STORE)")
	flags.StringVar(&draftDir, "draft-dir", "", "Directory for the draft file, database and log (env WIZARD_STATE_DIR)")
	flags.StringVar(&redisAddr, "redis-addr", "", "Redis address for the redis store (env WIZARD_REDIS_ADDR)")
	flags.StringVar(&sqlitePath, "sqlite-path", "", "Database path for the sqlite store (env WIZARD_SQLITE_PATH)")
	flags.StringVar(&logFile, "log-file", "", "Log file (env WIZARD_LOG_FILE)")
	flags.StringVar(&catalogDir, "catalog-dir", "", "Directory overriding the built-in catalog (env WIZARD_CATALOG_DIR)")
	flags.StringVar(&assetDir, "asset-dir", "", "Directory holding card images (env WIZARD_ASSET_DIR)")
}

// loadConfig reads the environment, then applies the flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store = storeKind
	}
	if flags.Changed("draft-dir") {
		cfg.StateDir = draftDir
		// paths derived from the old state dir follow the new one
		if os.Getenv("WIZARD_SQLITE_PATH") == "" {
			cfg.SQLitePath = ""
		}
		if os.Getenv("WIZARD_LOG_FILE") == "" {
			cfg.LogFile = ""
		}
	}
	if flags.Changed("redis-addr") {
		cfg.Redis.Addr = redisAddr
	}
	if flags.Changed("sqlite-path") {
		cfg.SQLitePath = sqlitePath
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("catalog-dir") {
		cfg.CatalogDir = catalogDir
	}
	if flags.Changed("asset-dir") {
		cfg.AssetDir = assetDir
	}

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// setupLogging sends the default logger to the log file, since the
// terminal belongs to the wizard
func setupLogging(cfg *config.Config, session string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), stateDirMode); err != nil {
		return nil, errors.Wrapf(err, "failed to create log directory for %s", cfg.LogFile)
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", cfg.LogFile)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler).With("session", session))

	return f, nil
}

func openCatalog(cfg *config.Config) (*catalog.Store, error) {
	store, err := catalog.New(&catalog.Config{Dir: cfg.CatalogDir, AssetDir: cfg.AssetDir})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}
	return store, nil
}

// openDraftRepo opens the configured draft store. The returned cleanup
// releases its connections.
func openDraftRepo(ctx context.Context, cfg *config.Config) (characterdraft.Repository, func(), error) {
	noop := func() {}

	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, noop, errors.Wrap(err, "failed to create redis client")
		}
		cleanup := func() {
			_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		}

		if err := redis.Ping(ctx, client, redisTimeout); err != nil {
			cleanup()
			return nil, noop, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is not reachable at "+cfg.Redis.Addr)
		}

		repo, err := characterdraft.NewRedisRepository(&characterdraft.RedisConfig{
			Client: client,
			Key:    cfg.DraftKey,
			TTL:    cfg.Redis.TTL,
		})
		if err != nil {
			cleanup()
			return nil, noop, err
		}
		slog.DebugContext(ctx, "using redis draft store", "addr", cfg.Redis.Addr)
		return repo, cleanup, nil

	case config.StoreSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), stateDirMode); err != nil {
			return nil, noop, errors.Wrapf(err, "failed to create directory for %s", cfg.SQLitePath)
		}
		repo, err := characterdraft.NewSQLiteRepository(ctx, &characterdraft.SQLiteConfig{
			Path: cfg.SQLitePath,
			Key:  cfg.DraftKey,
		})
		if err != nil {
			return nil, noop, err
		}
		slog.DebugContext(ctx, "using sqlite draft store", "path", cfg.SQLitePath)
		return repo, func() {
			_ = repo.Close() // nolint:errcheck // safe to ignore in cleanup
		}, nil

	default:
		repo, err := characterdraft.NewFileRepository(&characterdraft.FileConfig{
			Dir: cfg.StateDir,
			Key: cfg.DraftKey,
		})
		if err != nil {
			return nil, noop, err
		}
		slog.DebugContext(ctx, "using file draft store", "dir", cfg.StateDir)
		return repo, noop, nil
	}
}
