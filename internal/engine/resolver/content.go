package resolver

import (
	"path/filepath"

	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/core/ports"
	"go.trai.ch/zerr"
)

// ContentDeps are the collaborators of a ContentResolver.
type ContentDeps struct {
	Cache  ports.PathCache
	Prober ports.FileProber
	Logger ports.Logger
}

// ContentResolver maps content references to files in the active tap,
// falling back to the base content directory.
type ContentResolver struct {
	tapRoot    string
	basePath   string
	extensions []string

	cache  ports.PathCache
	prober ports.FileProber
	logger ports.Logger
}

// NewContentResolver creates a resolver rooted at the <nameSpace>Tap alias.
// The namespace, the tap alias and the base path are required.
func NewContentResolver(
	appConfig domain.Config,
	aliases domain.AliasMap,
	content domain.ContentContext,
	deps ContentDeps,
) (*ContentResolver, error) {
	nameSpace := appConfig.String(domain.KeyTapResolver, domain.KeyAliases, domain.KeyNameSpace)
	if nameSpace == "" {
		return nil, zerr.With(domain.ErrValidation, "field", "tapResolver.aliases.nameSpace")
	}

	tapAlias := domain.TapAliasName(nameSpace)
	tapRoot, ok := aliases[tapAlias]
	if !ok || tapRoot == "" {
		return nil, zerr.With(domain.ErrValidation, "alias", tapAlias)
	}
	if content.BasePath == "" {
		return nil, zerr.With(domain.ErrValidation, "field", "basePath")
	}

	return &ContentResolver{
		tapRoot:    tapRoot,
		basePath:   content.BasePath,
		extensions: content.Extensions,
		cache:      deps.Cache,
		prober:     deps.Prober,
		logger:     deps.Logger,
	}, nil
}

// Resolve returns the path of reference within contentType.
//
// The tap candidate is tried bare and with each extension in order, after
// descending into <candidate>/index when the candidate is a directory. The
// first existing path wins. Without a match the base path is returned
// unchecked. Results are cached by the tap candidate.
func (r *ContentResolver) Resolve(contentType, reference string) string {
	candidate := r.Candidate(contentType, reference)

	if resolved, ok := r.cache.Get(candidate); ok {
		return resolved
	}

	probe := candidate
	if r.prober.IsDir(candidate) {
		probe = filepath.Join(candidate, domain.IndexName)
	}

	resolved, found := r.firstExisting(probe)
	if !found {
		resolved = filepath.Join(r.basePath, contentType, reference)
	}

	r.cache.Set(candidate, resolved)
	r.logger.Debug("Loading file from " + resolved)

	return resolved
}

// Candidate returns the tap path of reference before any probing. It is the
// cache key of the resolution.
func (r *ContentResolver) Candidate(contentType, reference string) string {
	return filepath.Join(r.tapRoot, contentType, reference)
}

// Func adapts Resolve for a dynamic alias of contentType. match[1] is the reference.
func (r *ContentResolver) Func(contentType string) domain.MatchResolver {
	return func(match []string) string {
		reference := ""
		if len(match) > 1 {
			reference = match[1]
		}
		return r.Resolve(contentType, reference)
	}
}

func (r *ContentResolver) firstExisting(probe string) (string, bool) {
	if r.exists(probe) {
		return probe, true
	}
	for _, ext := range r.extensions {
		if path := probe + ext; r.exists(path) {
			return path, true
		}
	}
	return "", false
}

// exists treats stat failures other than not-exist as absent.
func (r *ContentResolver) exists(path string) bool {
	ok, err := r.prober.Exists(path)
	if err != nil {
		r.logger.Warn(zerr.With(zerr.Wrap(err, "failed to probe content path"), "path", path).Error())
		return false
	}
	return ok
}
