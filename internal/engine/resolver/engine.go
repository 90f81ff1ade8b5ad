package resolver

import "go.trai.ch/tapresolver/internal/core/ports"

// Engine holds the collaborators shared by every build session.
type Engine struct {
	loader   ports.ConfigLoader
	builder  *ConstantsBuilder
	registry ports.PluginRegistry
	newCache ports.PathCacheFactory
	prober   ports.FileProber
	walker   ports.FileWalker
	logger   ports.Logger
}

// EngineDeps are the collaborators an Engine is created from.
type EngineDeps struct {
	Loader    ports.ConfigLoader
	Validator ports.SchemaValidator
	Store     ports.TempConfigStore
	Registry  ports.PluginRegistry
	// NewCache creates the path cache owned by each session.
	NewCache  ports.PathCacheFactory
	Prober    ports.FileProber
	Walker    ports.FileWalker
	Logger    ports.Logger
}

// NewEngine creates a new Engine.
func NewEngine(deps EngineDeps) *Engine {
	merger := NewMerger(deps.Store, deps.Validator, deps.Prober, deps.Logger)
	return &Engine{
		loader:   deps.Loader,
		builder:  NewConstantsBuilder(merger, deps.Validator, deps.Prober, deps.Logger),
		registry: deps.Registry,
		newCache: deps.NewCache,
		prober:   deps.Prober,
		walker:   deps.Walker,
		logger:   deps.Logger,
	}
}

// Walker returns the file walker used for asset discovery.
func (e *Engine) Walker() ports.FileWalker {
	return e.walker
}

// NewSession starts a build session for in.
func (e *Engine) NewSession(in SessionInput) *Session {
	return &Session{
		engine:      e,
		in:          in,
		cache:       e.newCache(),
		pluginCache: e.newCache(),
	}
}
