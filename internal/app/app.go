// Package app implements the application layer for tapresolver.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.trai.ch/tapresolver/internal/adapters/watcher"
	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/core/ports"
	"go.trai.ch/tapresolver/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	engine         *resolver.Engine
	watcher        ports.Watcher
	logger         ports.Logger
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(engine *resolver.Engine, w ports.Watcher, log ports.Logger) *App {
	return &App{
		engine:         engine,
		watcher:        w,
		logger:         log,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithDebounceWindow sets the quiet window watch mode waits for before rebuilding.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// Options select the keg, tap and platform of a run.
type Options struct {
	KegRoot  string
	TapPath  string
	TapName  string
	EnvTap   string
	Platform domain.Platform
}

func (o Options) sessionInput() resolver.SessionInput {
	return resolver.SessionInput(o)
}

// Resolution is the resolved path of one reference.
type Resolution struct {
	Reference string `json:"reference"`
	Path      string `json:"path"`
}

// Setup builds the module resolver config handed to the bundler.
func (a *App) Setup(_ context.Context, opts Options) (resolver.ModuleResolverConfig, error) {
	return setup(a.engine.NewSession(opts.sessionInput()))
}

// Resolve resolves each logical reference in order.
func (a *App) Resolve(_ context.Context, opts Options, references []string) ([]Resolution, error) {
	session := a.engine.NewSession(opts.sessionInput())

	results := make([]Resolution, 0, len(references))
	for _, ref := range references {
		path, err := session.Resolve(ref)
		if err != nil {
			return nil, err
		}
		results = append(results, Resolution{Reference: ref, Path: path})
	}
	return results, nil
}

// ResolveImports rewrites import sources the way the web bundler hook does.
func (a *App) ResolveImports(_ context.Context, opts Options, currentFile string, sources []string) ([]Resolution, error) {
	session := a.engine.NewSession(opts.sessionInput())

	aliases, err := session.Aliases()
	if err != nil {
		return nil, err
	}
	web, err := session.WebResolver()
	if err != nil {
		return nil, err
	}

	results := make([]Resolution, 0, len(sources))
	for _, source := range sources {
		results = append(results, Resolution{
			Reference: source,
			Path:      web.ResolvePath(source, currentFile, aliases),
		})
	}
	return results, nil
}

// Aliases returns the alias set of the active tap.
func (a *App) Aliases(_ context.Context, opts Options) (domain.AliasSet, error) {
	return a.engine.NewSession(opts.sessionInput()).Aliases()
}

// Assets returns the asset index of the base and the active tap.
func (a *App) Assets(ctx context.Context, opts Options) (map[string]string, error) {
	c, err := a.engine.NewSession(opts.sessionInput()).Constants()
	if err != nil {
		return nil, err
	}
	return resolver.BuildAssets(ctx, c, a.engine.Walker())
}

// Watch emits the module resolver config, then emits it again whenever a
// keg or tap config file changes content. It returns when ctx is done.
func (a *App) Watch(ctx context.Context, opts Options, emit func(resolver.ModuleResolverConfig)) error {
	session := a.engine.NewSession(opts.sessionInput())

	cfg, err := setup(session)
	if err != nil {
		return err
	}
	emit(cfg)

	dirs := session.WatchDirs()
	fingerprints := watcher.NewFingerprints()
	for _, dir := range dirs {
		for _, name := range domain.ConfigNames() {
			fingerprints.Record(filepath.Join(dir, name))
		}
	}

	if err := a.watcher.Start(ctx, dirs...); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %d config directories", len(dirs)))

	var rebuild sync.Mutex
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		rebuild.Lock()
		defer rebuild.Unlock()

		changed := false
		for _, path := range paths {
			if fingerprints.Changed(path) {
				changed = true
			}
		}
		if !changed {
			a.logger.Debug("config files unchanged, skipping rebuild")
			return
		}

		session.Invalidate()
		cfg, err := setup(session)
		if err != nil {
			a.logger.Error(err)
			return
		}
		if ctx.Err() != nil {
			return
		}
		a.logger.Info(fmt.Sprintf("config changed, rebuilt %d aliases", len(cfg.Alias)))
		emit(cfg)
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gctx.Done()
		if err := a.watcher.Stop(); err != nil {
			return zerr.Wrap(err, "failed to stop config watcher")
		}
		return nil
	})

	g.Go(func() error {
		defer debouncer.Stop()
		for event := range a.watcher.Events() {
			if isConfigFile(event.Path) {
				debouncer.Add(event.Path)
			}
		}
		return nil
	})

	return g.Wait()
}

func setup(session *resolver.Session) (resolver.ModuleResolverConfig, error) {
	c, err := session.Constants()
	if err != nil {
		return resolver.ModuleResolverConfig{}, err
	}
	aliases, err := session.Aliases()
	if err != nil {
		return resolver.ModuleResolverConfig{}, err
	}
	return resolver.NewModuleResolverConfig(c, aliases), nil
}

func isConfigFile(path string) bool {
	return slices.Contains(domain.ConfigNames(), filepath.Base(path))
}
