package characterdraft

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	"github.com/KirkDiggler/daggerheart-wizard/internal/pkg/clock"
)

const (
	sqliteDSNOptions = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	createDraftsTable = `CREATE TABLE IF NOT EXISTS wizard_drafts (
	draft_key  TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`
	selectDraft = `SELECT data FROM wizard_drafts WHERE draft_key = ?`
	upsertDraft = `INSERT INTO wizard_drafts (draft_key, data, updated_at) VALUES (?, ?, ?)
ON CONFLICT(draft_key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	deleteDraft = `DELETE FROM wizard_drafts WHERE draft_key = ?`
)

// SQLiteConfig configures the sqlite backend
type SQLiteConfig struct {
	Path string
	Key  string

	// Clock stamps updated_at; defaults to the system clock
	Clock clock.Clock
}

// Validate validates the config
func (c *SQLiteConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("path", c.Path, vb)
	if c.Key == "" {
		vb.Field("key", errKeyEmpty)
	}

	return vb.Build()
}

// SQLiteRepository is a draft repository over a sqlite database. It owns the
// database handle and must be closed.
type SQLiteRepository struct {
	db    *sql.DB
	key   string
	clock clock.Clock
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens the database and creates the drafts table
func NewSQLiteRepository(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("sqlite config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid sqlite draft config")
	}

	dsn := filepath.Clean(strings.TrimSpace(cfg.Path)) + sqliteDSNOptions
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}
	if _, err := db.ExecContext(ctx, createDraftsTable); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to create drafts table")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &SQLiteRepository{db: db, key: cfg.Key, clock: clk}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Get implements Repository
func (r *SQLiteRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	var data string
	err := r.db.QueryRowContext(ctx, selectDraft, r.key).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("no draft stored at %s", r.key)
		}
		return nil, errors.Wrapf(err, "failed to get draft")
	}

	return decode([]byte(data))
}

// Save implements Repository
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	data, err := encode(input)
	if err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx, upsertDraft, r.key, string(data), r.clock.Now().UTC().UnixMilli()); err != nil {
		return nil, errors.Wrapf(err, "failed to save draft")
	}

	return &SaveOutput{}, nil
}

// Delete implements Repository
func (r *SQLiteRepository) Delete(ctx context.Context, _ DeleteInput) (*DeleteOutput, error) {
	result, err := r.db.ExecContext(ctx, deleteDraft, r.key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read deleted rows")
	}

	return &DeleteOutput{Existed: affected > 0}, nil
}
