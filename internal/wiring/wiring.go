// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tapresolver/internal/adapters/cache"
	_ "go.trai.ch/tapresolver/internal/adapters/config"
	_ "go.trai.ch/tapresolver/internal/adapters/fs"
	_ "go.trai.ch/tapresolver/internal/adapters/logger"
	_ "go.trai.ch/tapresolver/internal/adapters/plugin"
	_ "go.trai.ch/tapresolver/internal/adapters/shell"
	_ "go.trai.ch/tapresolver/internal/adapters/tempstore"
	_ "go.trai.ch/tapresolver/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/tapresolver/internal/app"
	_ "go.trai.ch/tapresolver/internal/engine/resolver"
)
