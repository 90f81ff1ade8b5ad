// Package domain contains the core domain models for tap and keg path resolution.
package domain

// Well-known config keys.
const (
	KeyName            = "name"
	KeyTapResolver     = "tapResolver"
	KeyPaths           = "paths"
	KeyAliases         = "aliases"
	KeyExtensions      = "extensions"
	KeyBabel           = "babel"
	KeyBaseTap         = "baseTap"
	KeyTemp            = "temp"
	KeyContentResolver = "contentResolver"
	KeyWebResolver     = "webResolver"
	KeyNameSpace       = "nameSpace"
	KeyBase            = "base"
	KeyDynamic         = "dynamic"
	KeyStatic          = "static"
	KeyPresets         = "presets"
	KeyPlugins         = "plugins"
)

// Config is a parsed configuration tree, as decoded from a keg or tap config file.
type Config map[string]any

// ConfigFile is a Config together with the file it was read from.
type ConfigFile struct {
	Path   string
	Config Config
}

// EffectiveConfig is the merged keg and tap configuration.
type EffectiveConfig struct {
	Config Config
	// Path is the advisory location of the merged config. It points at the temp
	// file when a tap is active and at the keg config otherwise.
	Path   string
	HasTap bool
}

// AsConfig returns v as a Config if it is a map, or nil.
func AsConfig(v any) Config {
	switch m := v.(type) {
	case Config:
		return m
	case map[string]any:
		return Config(m)
	default:
		return nil
	}
}

// Get walks the tree along path and returns the value found.
func (c Config) Get(path ...string) (any, bool) {
	var current any = c
	for _, key := range path {
		m := AsConfig(current)
		if m == nil {
			return nil, false
		}
		v, ok := m[key]
		if !ok {
			return nil, false
		}
		current = v
	}
	return current, true
}

// String returns the string at path, or "" if absent or not a string.
func (c Config) String(path ...string) string {
	v, _ := c.Get(path...)
	s, _ := v.(string)
	return s
}

// Map returns the map at path, or nil.
func (c Config) Map(path ...string) Config {
	v, _ := c.Get(path...)
	return AsConfig(v)
}

// Strings returns the string list at path. Non-string items are skipped.
func (c Config) Strings(path ...string) []string {
	v, _ := c.Get(path...)
	return toStrings(v)
}

// StringMap returns the map at path with its string values only.
func (c Config) StringMap(path ...string) map[string]string {
	m := c.Map(path...)
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// Name returns the top-level name field.
func (c Config) Name() string {
	return c.String(KeyName)
}

// Clone returns a deep copy of the tree. Slices and maps are copied, leaves are shared.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	return AsConfig(CloneValue(c))
}

// CloneValue deep copies maps and slices within v.
func CloneValue(v any) any {
	if m := AsConfig(v); m != nil {
		out := make(map[string]any, len(m))
		for k, item := range m {
			out[k] = CloneValue(item)
		}
		return out
	}
	if s, ok := v.([]any); ok {
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = CloneValue(item)
		}
		return out
	}
	return v
}

func toStrings(v any) []string {
	switch s := v.(type) {
	case []string:
		return append([]string(nil), s...)
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	default:
		return nil
	}
}
