package domain

import "path/filepath"

const (
	// TempDirName is the name of the default temp directory for merged configs.
	TempDirName = ".temp"

	// DefaultConfigFileName names the merged config file when the tap config has no file name.
	DefaultConfigFileName = "tap.json"

	// TapsDirName is the directory under the keg root holding taps by name.
	TapsDirName = "taps"

	// AssetsPath is the assets directory, relative to the base or tap path.
	AssetsPath = "assets"

	// IndexName is appended when a candidate path is a directory.
	IndexName = "index"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ConfigNames are the config file names looked up in a keg or tap directory, in order.
func ConfigNames() []string {
	return []string{
		"tap.config.json",
		"tap.json",
		"app.json",
		"package.json",
	}
}

// DefaultTempPath returns the default temp directory under kegRoot.
func DefaultTempPath(kegRoot string) string {
	return filepath.Join(kegRoot, TempDirName)
}
