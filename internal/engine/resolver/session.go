package resolver

import (
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/core/ports"
	"go.trai.ch/zerr"
)

// SessionInput identifies the keg, tap and platform a session resolves for.
type SessionInput struct {
	KegRoot string
	// TapPath is the requested tap directory. Empty means no tap was requested.
	TapPath  string
	TapName  string
	EnvTap   string
	Platform domain.Platform
}

// Session owns the derived state of one build. Constants and aliases are
// built on first use and kept until Invalidate. The path caches belong to the
// session alone, so sessions on one engine never see each other's results.
type Session struct {
	engine *Engine

	mu          sync.Mutex
	in          SessionInput
	cache       ports.PathCache
	// pluginCache holds the answers of a custom content resolver. It is kept
	// apart from cache, which the built-in fallback fills.
	pluginCache ports.PathCache
	constants   *domain.BuildConstants
	aliases     *domain.AliasSet
	resolvers   map[string]domain.MatchResolver
	web         ports.WebResolverPlugin
}

// Input returns the inputs the session currently resolves for.
func (s *Session) Input() SessionInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.in
}

// Constants returns the build constants, building them if needed.
func (s *Session) Constants() (*domain.BuildConstants, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildConstants()
}

// Aliases returns the alias set, building it if needed.
func (s *Session) Aliases() (domain.AliasSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildAliases()
}

// Resolve maps a logical reference to a file path. A reference matching a
// dynamic alias goes through that alias. Anything else must have the form
// <contentType>/<name>.
func (s *Session) Resolve(reference string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aliases, err := s.buildAliases()
	if err != nil {
		return "", err
	}
	if path, ok := aliases.Match(reference); ok {
		return path, nil
	}

	contentType, name, ok := strings.Cut(reference, "/")
	if !ok || contentType == "" || name == "" {
		return "", zerr.With(domain.ErrInvalidReference, "reference", reference)
	}

	resolve, err := s.resolverFor(contentType, aliases.Static)
	if err != nil {
		return "", err
	}
	return resolve([]string{reference, name}), nil
}

// WebResolver returns the resolvePath hook named by tapResolver.paths.webResolver,
// or the built-in one.
func (s *Session) WebResolver() (ports.WebResolverPlugin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.web != nil {
		return s.web, nil
	}

	c, err := s.buildConstants()
	if err != nil {
		return nil, err
	}

	s.web = WebResolver{}
	if ref := c.AppConfig.String(domain.KeyTapResolver, domain.KeyPaths, domain.KeyWebResolver); ref != "" {
		p, err := s.engine.registry.WebResolver(ref, c.KegRoot)
		if err != nil {
			s.warnOverride(err)
		} else {
			s.web = p
		}
	}
	return s.web, nil
}

// Invalidate drops the path cache and every derived value.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidate()
}

// SwitchTap replaces the tap inputs and invalidates the session.
func (s *Session) SwitchTap(name, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.in.TapName = name
	s.in.TapPath = path
	s.invalidate()
}

// WatchDirs returns the directories whose config files feed the session.
func (s *Session) WatchDirs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirs := []string{s.in.KegRoot}
	if s.in.TapPath != "" && s.in.TapPath != s.in.KegRoot && s.engine.prober.IsDir(s.in.TapPath) {
		dirs = append(dirs, s.in.TapPath)
	}
	return dirs
}

func (s *Session) invalidate() {
	s.cache.Flush()
	s.pluginCache.Flush()
	s.constants = nil
	s.aliases = nil
	s.resolvers = nil
	s.web = nil
}

func (s *Session) buildConstants() (*domain.BuildConstants, error) {
	if s.constants != nil {
		return s.constants, nil
	}

	keg, err := s.engine.loader.Load(s.in.KegRoot)
	if err != nil {
		return nil, err
	}

	c, err := s.engine.builder.Build(ConstantsInput{
		KegRoot:  s.in.KegRoot,
		Keg:      keg,
		TapPath:  s.in.TapPath,
		Tap:      s.loadTap(),
		TapName:  s.in.TapName,
		EnvTap:   s.in.EnvTap,
		Platform: s.in.Platform,
	})
	if err != nil {
		return nil, err
	}

	s.constants = c
	return c, nil
}

// loadTap returns the tap config, or nil when the tap directory is missing,
// holds no config file or holds one that cannot be read.
func (s *Session) loadTap() *domain.ConfigFile {
	if s.in.TapPath == "" || !s.engine.prober.IsDir(s.in.TapPath) || !s.hasConfig(s.in.TapPath) {
		return nil
	}

	tap, err := s.engine.loader.Load(s.in.TapPath)
	if err != nil {
		s.warnOverride(err)
		return nil
	}
	return tap
}

func (s *Session) hasConfig(dir string) bool {
	for _, name := range domain.ConfigNames() {
		if ok, _ := s.engine.prober.Exists(filepath.Join(dir, name)); ok {
			return true
		}
	}
	return false
}

func (s *Session) buildAliases() (domain.AliasSet, error) {
	if s.aliases != nil {
		return *s.aliases, nil
	}

	c, err := s.buildConstants()
	if err != nil {
		return domain.AliasSet{}, err
	}

	aliases, err := AliasBuilder(c, s.contentResolver)()
	if err != nil {
		return domain.AliasSet{}, err
	}

	s.aliases = &aliases
	return aliases, nil
}

func (s *Session) resolverFor(contentType string, aliases domain.AliasMap) (domain.MatchResolver, error) {
	if resolve, ok := s.resolvers[contentType]; ok {
		return resolve, nil
	}

	c, err := s.buildConstants()
	if err != nil {
		return nil, err
	}

	resolve, err := s.contentResolver(c.AppConfig, aliases, c.Content(), contentType)
	if err != nil {
		return nil, err
	}

	if s.resolvers == nil {
		s.resolvers = make(map[string]domain.MatchResolver)
	}
	s.resolvers[contentType] = resolve
	return resolve, nil
}

// contentResolver is the ContentResolverFactory of the session. A custom
// resolver named by tapResolver.paths.contentResolver replaces the built-in
// one. When it cannot be loaded the built-in resolver is used.
func (s *Session) contentResolver(
	appConfig domain.Config,
	aliases domain.AliasMap,
	content domain.ContentContext,
	contentType string,
) (domain.MatchResolver, error) {
	builtin, err := NewContentResolver(appConfig, aliases, content, ContentDeps{
		Cache:  s.cache,
		Prober: s.engine.prober,
		Logger: s.engine.logger,
	})
	if err != nil {
		return nil, err
	}
	fallback := builtin.Func(contentType)

	ref := appConfig.String(domain.KeyTapResolver, domain.KeyPaths, domain.KeyContentResolver)
	if ref == "" {
		return fallback, nil
	}

	plugin, err := s.engine.registry.ContentResolver(ref, s.in.KegRoot)
	if err != nil {
		s.warnOverride(err)
		return fallback, nil
	}

	resolve, err := plugin.NewContentResolver(ports.ContentResolverRequest{
		Config:      appConfig,
		Aliases:     aliases,
		Content:     content,
		ContentType: contentType,
		Fallback:    fallback,
	})
	if err != nil {
		s.warnOverride(zerr.With(err, "plugin", plugin.Name()))
		return fallback, nil
	}
	return cachedMatch(s.pluginCache, builtin, contentType, resolve), nil
}

// cachedMatch memoizes resolve by the tap candidate of each match, the same
// key the built-in resolver caches under.
func cachedMatch(
	c ports.PathCache,
	builtin *ContentResolver,
	contentType string,
	resolve domain.MatchResolver,
) domain.MatchResolver {
	return func(match []string) string {
		reference := ""
		if len(match) > 1 {
			reference = match[1]
		}
		candidate := builtin.Candidate(contentType, reference)
		if resolved, ok := c.Get(candidate); ok {
			return resolved
		}
		resolved := resolve(match)
		c.Set(candidate, resolved)
		return resolved
	}
}

func (s *Session) warnOverride(err error) {
	s.engine.logger.Warn(zerr.Wrap(err, domain.ErrTapOverride.Error()).Error())
}
