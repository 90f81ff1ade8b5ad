package watcher

import (
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Fingerprints remembers a content hash per file so that writes which leave
// the bytes unchanged can be ignored.
type Fingerprints struct {
	mu     sync.Mutex
	hashes map[string]uint64
}

// NewFingerprints creates an empty fingerprint set.
func NewFingerprints() *Fingerprints {
	return &Fingerprints{hashes: make(map[string]uint64)}
}

// Record stores the current fingerprint of path. Missing files are forgotten.
func (f *Fingerprints) Record(path string) {
	sum, ok := hashFile(path)

	f.mu.Lock()
	defer f.mu.Unlock()
	if !ok {
		delete(f.hashes, path)
		return
	}
	f.hashes[path] = sum
}

// Changed reports whether the content of path differs from the recorded
// fingerprint and records the new one. Appearing and disappearing files count
// as changes.
func (f *Fingerprints) Changed(path string) bool {
	sum, exists := hashFile(path)

	f.mu.Lock()
	defer f.mu.Unlock()

	prev, known := f.hashes[path]
	switch {
	case !exists:
		delete(f.hashes, path)
		return known
	case !known:
		f.hashes[path] = sum
		return true
	default:
		f.hashes[path] = sum
		return prev != sum
	}
}

func hashFile(path string) (uint64, bool) {
	// #nosec G304 -- path comes from the watched config set
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	return xxhash.Sum64(data), true
}
