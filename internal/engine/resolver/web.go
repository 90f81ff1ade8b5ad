package resolver

import (
	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/core/ports"
)

// BuiltinName names the built-in resolvers.
const BuiltinName = "builtin"

var _ ports.WebResolverPlugin = WebResolver{}

// WebResolver is the built-in resolvePath hook for web bundlers.
type WebResolver struct{}

// Name returns BuiltinName.
func (WebResolver) Name() string {
	return BuiltinName
}

// ResolvePath rewrites source through the longest matching static alias,
// then through the dynamic aliases. Anything else is returned unchanged.
func (WebResolver) ResolvePath(source, _ string, aliases domain.AliasSet) string {
	if path, ok := aliases.Lookup(source); ok {
		return path
	}
	if path, ok := aliases.Match(source); ok {
		return path
	}
	return source
}
