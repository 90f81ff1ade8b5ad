package domain

import "strings"

// Platform is the target platform a build resolves for.
type Platform string

const (
	// PlatformWeb selects the web half of platform-conditioned config values.
	PlatformWeb Platform = "web"
	// PlatformNative selects the native half. It is the default.
	PlatformNative Platform = "native"
)

// ParsePlatform maps a PLATFORM value to a Platform. Anything but "web" is native.
func ParsePlatform(s string) Platform {
	if strings.EqualFold(strings.TrimSpace(s), string(PlatformWeb)) {
		return PlatformWeb
	}
	return PlatformNative
}

// IsWeb reports whether p is the web platform.
func (p Platform) IsWeb() bool {
	return p == PlatformWeb
}

// PlatformData selects the half of a {web, native} shaped value that applies to p.
//
// A web build uses the "web" map when present. Otherwise the "native" map is used
// when present, for web builds too. A value with neither key applies as a whole,
// and a value that is not a map yields an empty Config.
func PlatformData(v any, p Platform) Config {
	conf := AsConfig(v)
	if conf == nil {
		return Config{}
	}
	if p.IsWeb() {
		if web := AsConfig(conf[string(PlatformWeb)]); web != nil {
			return web
		}
	}
	if native := AsConfig(conf[string(PlatformNative)]); native != nil {
		return native
	}
	return conf
}

// PlatformList selects the list that applies to p from a value that is either a
// plain list or a {web, native} shaped map of lists. Like PlatformData, a web
// build without a "web" list uses the "native" one.
func PlatformList(v any, p Platform) []string {
	if list := toStrings(v); list != nil {
		return list
	}
	conf := AsConfig(v)
	if conf == nil {
		return nil
	}
	if p.IsWeb() {
		if list := toStrings(conf[string(PlatformWeb)]); len(list) > 0 {
			return list
		}
	}
	return toStrings(conf[string(PlatformNative)])
}
