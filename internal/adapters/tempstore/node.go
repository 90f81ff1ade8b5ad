package tempstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tapresolver/internal/adapters/logger"
	"go.trai.ch/tapresolver/internal/core/ports"
)

// NodeID is the unique identifier for the temp config store Graft node.
const NodeID graft.ID = "adapter.temp_store"

func init() {
	graft.Register(graft.Node[ports.TempConfigStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.TempConfigStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})
}
