package domain

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// AliasMap maps alias names to absolute directory paths.
type AliasMap map[string]string

// Names returns the alias names in sorted order.
func (a AliasMap) Names() []string {
	return slices.Sorted(maps.Keys(a))
}

// MatchResolver resolves a regexp match of a dynamic alias to a file path.
// match[1] holds the reference relative to the content type directory.
type MatchResolver func(match []string) string

// DynamicAlias is an alias resolved per match at bundle time.
type DynamicAlias struct {
	Name        string
	Pattern     *regexp.Regexp
	ContentType string
	Resolve     MatchResolver
}

// NewDynamicAlias builds the entry matching "<name>/<reference>" imports.
func NewDynamicAlias(name, contentType string, resolve MatchResolver) DynamicAlias {
	return DynamicAlias{
		Name:        name,
		Pattern:     regexp.MustCompile("^" + regexp.QuoteMeta(name) + "/(.*)$"),
		ContentType: contentType,
		Resolve:     resolve,
	}
}

// AliasSet is the full alias mapping handed to build tooling.
type AliasSet struct {
	Static  AliasMap
	Dynamic []DynamicAlias
}

// Match returns the resolved path for source through the first dynamic alias matching it.
func (s AliasSet) Match(source string) (string, bool) {
	for _, d := range s.Dynamic {
		if m := d.Pattern.FindStringSubmatch(source); m != nil {
			return d.Resolve(m), true
		}
	}
	return "", false
}

// Lookup rewrites source through the longest static alias that prefixes it.
func (s AliasSet) Lookup(source string) (string, bool) {
	best := ""
	for name := range s.Static {
		if source != name && !strings.HasPrefix(source, name+"/") {
			continue
		}
		if len(name) > len(best) {
			best = name
		}
	}
	if best == "" {
		return "", false
	}
	return s.Static[best] + strings.TrimPrefix(source, best), true
}
