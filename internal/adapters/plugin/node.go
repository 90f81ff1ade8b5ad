package plugin

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tapresolver/internal/adapters/logger"
	"go.trai.ch/tapresolver/internal/adapters/shell"
	"go.trai.ch/tapresolver/internal/core/ports"
)

// NodeID is the unique identifier for the plugin registry Graft node.
const NodeID graft.ID = "adapter.plugin_registry"

func init() {
	graft.Register(graft.Node[ports.PluginRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PluginRegistry, error) {
			runner, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(runner, log), nil
		},
	})
}
