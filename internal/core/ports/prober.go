// Package ports defines the core interfaces for the application.
package ports

import "iter"

// FileProber answers existence questions about the filesystem.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type FileProber interface {
	// Exists reports whether path exists. A not-exist condition is (false, nil);
	// any other stat failure is returned as an error.
	Exists(path string) (bool, error)
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool
}

// FileWalker lists regular files below a directory tree.
type FileWalker interface {
	// WalkFiles yields every regular file below root. A missing root yields nothing.
	WalkFiles(root string) iter.Seq2[string, error]
}
