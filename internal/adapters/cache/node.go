package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tapresolver/internal/core/ports"
)

// NodeID is the unique identifier for the path cache factory Graft node.
const NodeID graft.ID = "adapter.path_cache"

func init() {
	graft.Register(graft.Node[ports.PathCacheFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathCacheFactory, error) {
			return NewSessionCache, nil
		},
	})
}
