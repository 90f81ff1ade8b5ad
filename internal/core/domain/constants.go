package domain

// ResolvedPaths are the tap and base locations derived once per build.
type ResolvedPaths struct {
	BasePath string
	// TapPath is the active tap directory. It equals BasePath when no tap is active.
	TapPath string
	HasTap  bool
	TapName string
}

// BuildConstants are the values derived from the merged config and filesystem probing.
type BuildConstants struct {
	ResolvedPaths

	KegRoot       string
	AppConfig     Config
	AppConfigPath string
	NameSpace     string
	// BaseContent maps alias names to directories under BasePath.
	BaseContent map[string]string
	// DynamicContent maps alias names to the content type resolved per match.
	DynamicContent map[string]string
	// Aliases are the user-declared static aliases, relative to KegRoot.
	Aliases map[string]string
	// PlatformAliases are the aliases declared for the active platform only.
	PlatformAliases map[string]string
	Extensions      []string
	Platform        Platform
}

// ContentContext is what a content resolver closes over at setup time.
type ContentContext struct {
	Base       map[string]string
	BasePath   string
	Dynamic    map[string]string
	Tap        bool
	Extensions []string
}

// Content returns the ContentContext for these constants.
func (b *BuildConstants) Content() ContentContext {
	return ContentContext{
		Base:       b.BaseContent,
		BasePath:   b.BasePath,
		Dynamic:    b.DynamicContent,
		Tap:        b.HasTap,
		Extensions: b.Extensions,
	}
}

// TapAliasName is the namespace-qualified alias pointing at the active tap directory.
func TapAliasName(nameSpace string) string {
	return nameSpace + "Tap"
}

// BaseAliasName is the namespace-qualified alias pointing at the base directory.
func BaseAliasName(nameSpace string) string {
	return nameSpace + "Base"
}

// DefaultExtensions is the generic resolvable extension list, in precedence order.
func DefaultExtensions() []string {
	return []string{
		".web.js",
		".native.js",
		".ios.js",
		".android.js",
		".js",
		".json",
		".sqlite",
		".ttf",
	}
}

// AssetExtensions are the file extensions collected by the assets builder.
func AssetExtensions() []string {
	return []string{
		".png",
		".jpg",
		".jpeg",
		".gif",
		".ttf",
	}
}
