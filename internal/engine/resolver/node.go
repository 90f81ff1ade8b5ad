package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tapresolver/internal/adapters/cache"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tapresolver/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tapresolver/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tapresolver/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tapresolver/internal/adapters/plugin"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tapresolver/internal/adapters/tempstore" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tapresolver/internal/core/ports"
)

// NodeID is the unique identifier for the resolver engine Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.ValidatorNodeID,
			tempstore.NodeID,
			plugin.NodeID,
			cache.NodeID,
			fs.ProberNodeID,
			fs.WalkerNodeID,
			logger.NodeID,
		},
		Run: runEngineNode,
	})
}

func runEngineNode(ctx context.Context) (*Engine, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	validator, err := graft.Dep[ports.SchemaValidator](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.TempConfigStore](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[ports.PluginRegistry](ctx)
	if err != nil {
		return nil, err
	}

	newCache, err := graft.Dep[ports.PathCacheFactory](ctx)
	if err != nil {
		return nil, err
	}

	prober, err := graft.Dep[ports.FileProber](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.FileWalker](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewEngine(EngineDeps{
		Loader:    loader,
		Validator: validator,
		Store:     store,
		Registry:  registry,
		NewCache:  newCache,
		Prober:    prober,
		Walker:    walker,
		Logger:    log,
	}), nil
}
