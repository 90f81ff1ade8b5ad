package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tapresolver/internal/core/ports"
)

const (
	// ProberNodeID is the unique identifier for the file prober Graft node.
	ProberNodeID graft.ID = "adapter.prober"
	// WalkerNodeID is the unique identifier for the file walker Graft node.
	WalkerNodeID graft.ID = "adapter.walker"
)

func init() {
	graft.Register(graft.Node[ports.FileProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileProber, error) {
			return NewProber(), nil
		},
	})

	graft.Register(graft.Node[ports.FileWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileWalker, error) {
			return NewWalker(), nil
		},
	})
}
