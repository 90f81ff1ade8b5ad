package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tapresolver/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// ValidatorNodeID is the unique identifier for the schema validator Graft node.
	ValidatorNodeID graft.ID = "adapter.config_schema"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.SchemaValidator]{
		ID:        ValidatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SchemaValidator, error) {
			v, err := NewValidator()
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	})
}
