package ports

import "go.trai.ch/tapresolver/internal/core/domain"

// TempConfigStore persists the merged config for external tooling.
//
//go:generate go run go.uber.org/mock/mockgen -source=temp_store.go -destination=mocks/mock_temp_store.go -package=mocks
type TempConfigStore interface {
	// Write removes dir, recreates it and writes cfg as JSON to dir/name.
	// It returns the path of the written file.
	Write(dir, name string, cfg domain.Config) (string, error)
}
