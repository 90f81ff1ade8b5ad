package ports

// PathCache maps a candidate path to its resolved path for one build session.
type PathCache interface {
	Get(candidate string) (string, bool)
	Set(candidate, resolved string)
	// Flush drops every entry.
	Flush()
	Len() int
}

// PathCacheFactory creates an empty PathCache for a new build session.
type PathCacheFactory func() PathCache
