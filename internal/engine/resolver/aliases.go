package resolver

import (
	"maps"
	"path/filepath"
	"slices"

	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/zerr"
)

// ContentResolverFactory builds the resolver behind the dynamic aliases of one content type.
type ContentResolverFactory func(
	appConfig domain.Config,
	aliases domain.AliasMap,
	content domain.ContentContext,
	contentType string,
) (domain.MatchResolver, error)

// AliasBuilder returns a deferred builder of the alias set for c.
//
// Static aliases are layered, later layers overwriting earlier ones:
//  1. the base content aliases, each joined to the base path, and <nameSpace>Base
//  2. <nameSpace>Tap, pointing at the tap path when a tap is active
//  3. the user static aliases, relative to the keg root
//  4. the platform aliases, as declared
//
// Each dynamic content alias gets a resolver from factory, built against the
// final static map.
func AliasBuilder(c *domain.BuildConstants, factory ContentResolverFactory) func() (domain.AliasSet, error) {
	return func() (domain.AliasSet, error) {
		static := staticAliases(c)

		names := slices.Sorted(maps.Keys(c.DynamicContent))
		dynamic := make([]domain.DynamicAlias, 0, len(names))
		for _, name := range names {
			contentType := c.DynamicContent[name]
			resolve, err := factory(c.AppConfig, maps.Clone(static), c.Content(), contentType)
			if err != nil {
				return domain.AliasSet{}, zerr.With(err, "alias", name)
			}
			dynamic = append(dynamic, domain.NewDynamicAlias(name, contentType, resolve))
		}

		return domain.AliasSet{Static: static, Dynamic: dynamic}, nil
	}
}

func staticAliases(c *domain.BuildConstants) domain.AliasMap {
	static := make(domain.AliasMap, len(c.BaseContent)+len(c.Aliases)+len(c.PlatformAliases)+2)

	for name, dir := range c.BaseContent {
		static[name] = filepath.Join(c.BasePath, dir)
	}
	static[domain.BaseAliasName(c.NameSpace)] = c.BasePath

	tapDir := c.BasePath
	if c.HasTap {
		tapDir = c.TapPath
	}
	static[domain.TapAliasName(c.NameSpace)] = tapDir

	for name, path := range c.Aliases {
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.KegRoot, path)
		}
		static[name] = path
	}

	maps.Copy(static, c.PlatformAliases)

	return static
}
