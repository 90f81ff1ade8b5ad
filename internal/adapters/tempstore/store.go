// Package tempstore persists the merged keg and tap config for external tooling.
package tempstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.TempConfigStore on the local filesystem.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new Store reporting cleanup failures to logger.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Write removes dir, recreates it and writes cfg to dir/name as indented JSON.
// A failed cleanup is logged and the write is still attempted.
func (s *Store) Write(dir, name string, cfg domain.Config) (string, error) {
	if err := os.RemoveAll(dir); err != nil {
		s.logger.Warn(zerr.With(zerr.Wrap(err, domain.ErrTempCleanup.Error()), "dir", dir).Error())
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrTempWriteFailed.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTempWriteFailed.Error()), "dir", dir)
	}

	path := filepath.Join(dir, name)
	//nolint:gosec // path is built from the configured temp dir and config file name
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePerm)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTempWriteFailed.Error()), "path", path)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		_ = f.Close()
		return "", zerr.With(zerr.Wrap(err, domain.ErrTempWriteFailed.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTempWriteFailed.Error()), "path", path)
	}

	return path, nil
}
