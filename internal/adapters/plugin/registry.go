// Package plugin loads custom content and web resolvers.
//
// A resolver reference is either the name of a plugin registered in process
// or a path to an executable, relative to the keg root. Executables receive
// one JSON request per resolution on stdin and answer with a JSON response on
// stdout.
package plugin

import (
	"path/filepath"
	"sync"

	"go.trai.ch/tapresolver/internal/adapters/shell"
	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PluginRegistry = (*Registry)(nil)

// Registry implements ports.PluginRegistry.
type Registry struct {
	mu      sync.RWMutex
	content map[string]ports.ResolverPlugin
	web     map[string]ports.WebResolverPlugin
	runner  *shell.Runner
	logger  ports.Logger
}

// NewRegistry creates an empty Registry. Executable plugins run through runner.
func NewRegistry(runner *shell.Runner, logger ports.Logger) *Registry {
	return &Registry{
		content: make(map[string]ports.ResolverPlugin),
		web:     make(map[string]ports.WebResolverPlugin),
		runner:  runner,
		logger:  logger,
	}
}

// Register adds an in-process content resolver under its name.
func (r *Registry) Register(p ports.ResolverPlugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content[p.Name()] = p
}

// RegisterWeb adds an in-process web resolver under its name.
func (r *Registry) RegisterWeb(p ports.WebResolverPlugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.web[p.Name()] = p
}

// ContentResolver loads the content resolver named by ref.
func (r *Registry) ContentResolver(ref, kegRoot string) (ports.ResolverPlugin, error) {
	r.mu.RLock()
	p, ok := r.content[ref]
	r.mu.RUnlock()
	if ok {
		return p, nil
	}

	exe, err := r.executable(ref, kegRoot)
	if err != nil {
		return nil, err
	}
	return exe, nil
}

// WebResolver loads the web resolver named by ref.
func (r *Registry) WebResolver(ref, kegRoot string) (ports.WebResolverPlugin, error) {
	r.mu.RLock()
	p, ok := r.web[ref]
	r.mu.RUnlock()
	if ok {
		return p, nil
	}

	exe, err := r.executable(ref, kegRoot)
	if err != nil {
		return nil, err
	}
	return exe, nil
}

func (r *Registry) executable(ref, kegRoot string) (*Executable, error) {
	if ref == "" {
		return nil, zerr.With(domain.ErrPluginNotFound, "ref", ref)
	}

	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(kegRoot, ref)
	}
	if !shell.IsExecutable(path) {
		return nil, zerr.With(domain.ErrPluginNotFound, "ref", ref)
	}

	return &Executable{
		path:    path,
		kegRoot: kegRoot,
		runner:  r.runner,
		logger:  r.logger,
	}, nil
}
