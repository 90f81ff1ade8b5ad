package ports

import "go.trai.ch/tapresolver/internal/core/domain"

// ContentResolverRequest carries what a content resolver plugin closes over.
type ContentResolverRequest struct {
	Config      domain.Config
	Aliases     domain.AliasMap
	Content     domain.ContentContext
	ContentType string
	// Fallback is the built-in resolver for the same content type.
	Fallback domain.MatchResolver
}

// ResolverPlugin is a custom content resolver loaded from tapResolver.paths.contentResolver.
type ResolverPlugin interface {
	Name() string
	NewContentResolver(req ContentResolverRequest) (domain.MatchResolver, error)
}

// WebResolverPlugin is a custom resolvePath hook loaded from tapResolver.paths.webResolver.
type WebResolverPlugin interface {
	Name() string
	ResolvePath(source, currentFile string, aliases domain.AliasSet) string
}

// PluginRegistry loads resolver plugins by reference.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver_plugin.go -destination=mocks/mock_resolver_plugin.go -package=mocks
type PluginRegistry interface {
	// ContentResolver loads the content resolver named by ref, relative to kegRoot.
	ContentResolver(ref, kegRoot string) (ResolverPlugin, error)
	// WebResolver loads the web resolver named by ref, relative to kegRoot.
	WebResolver(ref, kegRoot string) (WebResolverPlugin, error)
}
