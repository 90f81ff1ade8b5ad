package resolver

import (
	"maps"

	"go.trai.ch/tapresolver/internal/core/domain"
)

// ModuleResolverConfig is the module resolution setup handed to a bundler.
type ModuleResolverConfig struct {
	Root       []string          `json:"root"`
	Cwd        string            `json:"cwd"`
	Extensions []string          `json:"extensions"`
	Alias      map[string]string `json:"alias"`
	// Dynamic maps dynamic alias names to their content type.
	Dynamic map[string]string `json:"dynamic,omitempty"`
	// WebResolve is set on web, where the bundler routes imports through the web resolver.
	WebResolve bool  `json:"webResolve,omitempty"`
	Presets    []any `json:"presets"`
	Plugins    []any `json:"plugins"`
}

// NewModuleResolverConfig assembles the bundler config for c and its aliases.
// Presets and plugins come from the platform half of tapResolver.babel.
func NewModuleResolverConfig(c *domain.BuildConstants, aliases domain.AliasSet) ModuleResolverConfig {
	babel := domain.PlatformData(valueAt(c.AppConfig, domain.KeyTapResolver, domain.KeyBabel), c.Platform)

	var dynamic map[string]string
	if len(aliases.Dynamic) > 0 {
		dynamic = make(map[string]string, len(aliases.Dynamic))
		for _, d := range aliases.Dynamic {
			dynamic[d.Name] = d.ContentType
		}
	}

	return ModuleResolverConfig{
		Root:       []string{c.KegRoot},
		Cwd:        c.KegRoot,
		Extensions: append([]string(nil), c.Extensions...),
		Alias:      maps.Clone(aliases.Static),
		Dynamic:    dynamic,
		WebResolve: c.Platform.IsWeb(),
		Presets:    list(babel[domain.KeyPresets]),
		Plugins:    list(babel[domain.KeyPlugins]),
	}
}

func list(v any) []any {
	items, ok := v.([]any)
	if !ok {
		return []any{}
	}
	return domain.CloneValue(items).([]any)
}
