package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/daggerheart-wizard/internal/config"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv("WIZARD_STATE_DIR", s.dir)
}

func (s *ConfigTestSuite) load(files ...string) *config.Config {
	if len(files) == 0 {
		files = []string{filepath.Join(s.dir, "missing.env")}
	}
	cfg, err := config.Load(files...)
	s.Require().NoError(err)
	return cfg
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg := s.load()

	s.Equal(config.StoreFile, cfg.Store)
	s.Equal("daggerheart-wizard-draft", cfg.DraftKey)
	s.Equal(s.dir, cfg.StateDir)
	s.Equal(filepath.Join(s.dir, "wizard.db"), cfg.SQLitePath)
	s.Equal(filepath.Join(s.dir, "wizard.log"), cfg.LogFile)
	s.Equal("localhost:6379", cfg.Redis.Addr)
	s.Equal(100, cfg.WideColumns)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestEnvironment() {
	s.T().Setenv("WIZARD_STORE", "redis")
	s.T().Setenv("WIZARD_REDIS_ADDR", "cache:6380")
	s.T().Setenv("WIZARD_REDIS_DB", "2")
	s.T().Setenv("WIZARD_REDIS_TTL", "48h")
	s.T().Setenv("WIZARD_LOG_LEVEL", "DEBUG")

	cfg := s.load()
	s.Equal(config.StoreRedis, cfg.Store)
	s.Equal("cache:6380", cfg.Redis.Addr)
	s.Equal(2, cfg.Redis.DB)
	s.Equal(48*time.Hour, cfg.Redis.TTL)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestDotenv() {
	file := filepath.Join(s.dir, "wizard.env")
	s.Require().NoError(os.WriteFile(file, []byte("WIZARD_STORE=sqlite\nWIZARD_SQLITE_PATH=/tmp/drafts.db\n"), 0o600))

	// godotenv sets process variables; clear them after the test
	s.T().Setenv("WIZARD_STORE", "")
	s.Require().NoError(os.Unsetenv("WIZARD_STORE"))
	s.T().Setenv("WIZARD_SQLITE_PATH", "")
	s.Require().NoError(os.Unsetenv("WIZARD_SQLITE_PATH"))

	cfg := s.load(file)
	s.Equal(config.StoreSQLite, cfg.Store)
	s.Equal("/tmp/drafts.db", cfg.SQLitePath)
}

func (s *ConfigTestSuite) TestBadEnvironment() {
	s.T().Setenv("WIZARD_WIDE_COLUMNS", "wide")

	_, err := config.Load(filepath.Join(s.dir, "missing.env"))
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		mutate func(cfg *config.Config)
		field  string
	}{
		{name: "unknown store", mutate: func(cfg *config.Config) { cfg.Store = "s3" }, field: "store"},
		{name: "unknown log level", mutate: func(cfg *config.Config) { cfg.LogLevel = "loud" }, field: "logLevel"},
		{name: "narrow breakpoint", mutate: func(cfg *config.Config) { cfg.WideColumns = 10 }, field: "wideColumns"},
		{name: "blank key", mutate: func(cfg *config.Config) { cfg.DraftKey = " " }, field: "draftKey"},
		{
			name:   "redis without address",
			mutate: func(cfg *config.Config) { cfg.Store = config.StoreRedis; cfg.Redis.Addr = "" },
			field:  "redis.addr",
		},
		{
			name:   "redis db out of range",
			mutate: func(cfg *config.Config) { cfg.Store = config.StoreRedis; cfg.Redis.DB = 99 },
			field:  "redis.db",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := s.load()
			tc.mutate(cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))

			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Require().True(ok)
			s.Contains(fields, tc.field)
		})
	}
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
