package domain

import "go.trai.ch/zerr"

var (
	// ErrConfiguration is returned when the base content directory cannot be located on disk.
	// Resolution cannot proceed without it.
	ErrConfiguration = zerr.New("base content path could not be located")

	// ErrValidation is returned when required configuration fields are missing.
	ErrValidation = zerr.New("required configuration is missing")

	// ErrTapOverride is logged when a tap config or a custom resolver fails to load.
	// Execution continues with the keg configuration or the built-in resolver.
	ErrTapOverride = zerr.New("tap override could not be applied")

	// ErrTempCleanup is logged when the temp config directory cannot be removed.
	ErrTempCleanup = zerr.New("failed to clean up temp config directory")

	// ErrConfigNotFound is returned when no config file exists in a directory.
	ErrConfigNotFound = zerr.New("could not find a tap or keg config file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrSchemaViolation is returned when a config does not satisfy the tapResolver schema.
	ErrSchemaViolation = zerr.New("config does not match the tapResolver schema")

	// ErrTempWriteFailed is returned when the merged config cannot be written to the temp directory.
	ErrTempWriteFailed = zerr.New("failed to write merged config")

	// ErrPluginNotFound is returned when a resolver plugin reference cannot be resolved.
	ErrPluginNotFound = zerr.New("resolver plugin not found")

	// ErrPluginFailed is returned when an executable resolver plugin fails.
	ErrPluginFailed = zerr.New("resolver plugin failed")

	// ErrInvalidReference is returned when a logical reference has no content type segment.
	ErrInvalidReference = zerr.New("invalid logical reference, expected <contentType>/<name>")

	// ErrAssetWalkFailed is returned when an assets directory cannot be walked.
	ErrAssetWalkFailed = zerr.New("failed to walk assets directory")

	// ErrWatcherFailed is returned when the config watcher cannot start.
	ErrWatcherFailed = zerr.New("failed to start config watcher")
)
