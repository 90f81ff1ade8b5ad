package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/tapresolver/internal/adapters/cache"
	"go.trai.ch/tapresolver/internal/adapters/config"
	"go.trai.ch/tapresolver/internal/adapters/fs"
	"go.trai.ch/tapresolver/internal/adapters/plugin"
	"go.trai.ch/tapresolver/internal/adapters/shell"
	"go.trai.ch/tapresolver/internal/adapters/tempstore"
	"go.trai.ch/tapresolver/internal/core/ports"
	"go.trai.ch/tapresolver/internal/engine/resolver"
)

func newEngine(t *testing.T, log ports.Logger) *resolver.Engine {
	t.Helper()
	validator, err := config.NewValidator()
	require.NoError(t, err)

	return resolver.NewEngine(resolver.EngineDeps{
		Loader:    config.NewLoader(),
		Validator: validator,
		Store:     tempstore.NewStore(log),
		Registry:  plugin.NewRegistry(shell.NewRunner(), log),
		NewCache:  cache.NewSessionCache,
		Prober:    fs.NewProber(),
		Walker:    fs.NewWalker(),
		Logger:    log,
	})
}
