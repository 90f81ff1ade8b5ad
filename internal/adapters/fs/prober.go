// Package fs provides file system adapters for probing and walking files.
package fs

import (
	"errors"
	"io/fs"
	"os"
)

// Prober implements ports.FileProber using os.Stat.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Exists reports whether path exists.
func (p *Prober) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether path exists and is a directory.
func (p *Prober) IsDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
