// Package config loads keg and tap configuration files.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader. JSON is a subset of YAML, so all
// supported config files are decoded with yaml.v3.
type Loader struct {
	names []string
}

// NewLoader creates a Loader probing domain.ConfigNames in order.
func NewLoader() *Loader {
	return &Loader{names: domain.ConfigNames()}
}

// Load finds the first known config file in dir and parses it.
func (l *Loader) Load(dir string) (*domain.ConfigFile, error) {
	for _, name := range l.names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		if info.IsDir() {
			continue
		}

		cfg, err := readConfig(path)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		return &domain.ConfigFile{Path: path, Config: cfg}, nil
	}

	return nil, zerr.With(domain.ErrConfigNotFound, "dir", dir)
}

func readConfig(path string) (domain.Config, error) {
	// #nosec G304 -- path is built from a known config file name
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	if raw == nil {
		raw = map[string]any{}
	}

	return domain.Config(raw), nil
}
