package ports

import "go.trai.ch/tapresolver/internal/core/domain"

// ConfigLoader defines the interface for loading keg and tap configuration files.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the first known config file in dir and parses it.
	// It returns domain.ErrConfigNotFound if dir holds none of them.
	Load(dir string) (*domain.ConfigFile, error)
}

// SchemaValidator validates a config tree against the tapResolver schema.
type SchemaValidator interface {
	Validate(cfg domain.Config) error
}
