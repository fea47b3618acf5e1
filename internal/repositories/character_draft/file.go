package characterdraft

import (
	"context"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
)

const (
	draftFileExt  = ".json"
	draftFileMode = 0o600
	draftDirMode  = 0o750
)

// FileConfig configures the file backend, which keeps the record as one
// JSON file named after the key.
type FileConfig struct {
	Dir string
	Key string
}

// Validate validates the config
func (c *FileConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("dir", c.Dir, vb)
	if c.Key == "" {
		vb.Field("key", errKeyEmpty)
	}
	if filepath.Base(c.Key) != c.Key {
		vb.Field("key", "must not contain a path separator")
	}

	return vb.Build()
}

type fileRepository struct {
	dir  string
	path string
}

// NewFileRepository creates a new file-backed draft repository. The
// directory is created on first save.
func NewFileRepository(cfg *FileConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("file config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid file draft config")
	}

	return &fileRepository{
		dir:  cfg.Dir,
		path: filepath.Join(cfg.Dir, cfg.Key+draftFileExt),
	}, nil
}

func (r *fileRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "draft read cancelled")
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("no draft stored at %s", r.path)
		}
		return nil, errors.Wrapf(err, "failed to read draft")
	}

	return decode(data)
}

// Save writes to a temporary file and renames it over the record so a
// crash never leaves a half written draft.
func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "draft save cancelled")
	}

	data, err := encode(input)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.dir, draftDirMode); err != nil {
		return nil, errors.Wrapf(err, "failed to create draft directory")
	}

	tmp, err := os.CreateTemp(r.dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create temp draft")
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, errors.Wrapf(err, "failed to write draft")
	}
	if err := tmp.Chmod(draftFileMode); err != nil {
		_ = tmp.Close()
		return nil, errors.Wrapf(err, "failed to set draft permissions")
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to close draft")
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		return nil, errors.Wrapf(err, "failed to replace draft")
	}

	return &SaveOutput{}, nil
}

func (r *fileRepository) Delete(ctx context.Context, _ DeleteInput) (*DeleteOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "draft delete cancelled")
	}

	err := os.Remove(r.path)
	switch {
	case err == nil:
		return &DeleteOutput{Existed: true}, nil
	case os.IsNotExist(err):
		return &DeleteOutput{}, nil
	default:
		return nil, errors.Wrapf(err, "failed to delete draft")
	}
}
