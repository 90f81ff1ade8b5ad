package settings_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tapresolver/internal/adapters/settings"
	"go.trai.ch/tapresolver/internal/core/domain"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	settings.RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(settings.EnvTap, "")
	t.Setenv(settings.EnvPlatform, "")
	t.Setenv(settings.EnvLog, "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := settings.Load(newFlags(t))
	require.NoError(t, err)

	wd, err := filepath.Abs(".")
	require.NoError(t, err)

	assert.Equal(t, wd, s.KegRoot)
	assert.Empty(t, s.TapPath)
	assert.Empty(t, s.TapName)
	assert.Equal(t, domain.PlatformNative, s.Platform)
	assert.False(t, s.Verbose)
	assert.False(t, s.JSON)
}

func TestLoad_Flags(t *testing.T) {
	clearEnv(t)
	keg := t.TempDir()
	tap := t.TempDir()

	s, err := settings.Load(newFlags(t,
		"--keg", keg,
		"--tap", tap,
		"--tap-name", "acme",
		"--platform", "web",
		"--log",
		"--json",
	))
	require.NoError(t, err)

	assert.Equal(t, keg, s.KegRoot)
	assert.Equal(t, tap, s.TapPath)
	assert.Equal(t, "acme", s.TapName)
	assert.Equal(t, domain.PlatformWeb, s.Platform)
	assert.True(t, s.Verbose)
	assert.True(t, s.JSON)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(settings.EnvTap, "acme")
	t.Setenv(settings.EnvPlatform, "web")
	t.Setenv(settings.EnvLog, "true")
	keg := t.TempDir()

	s, err := settings.Load(newFlags(t, "--keg", keg))
	require.NoError(t, err)

	assert.Empty(t, s.TapName, "TAP must not become an explicit tap name")
	assert.Equal(t, "acme", s.EnvTap)
	assert.Equal(t, filepath.Join(keg, "taps", "acme"), s.TapPath)
	assert.Equal(t, domain.PlatformWeb, s.Platform)
	assert.True(t, s.Verbose)
}

func TestLoad_FlagBeatsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(settings.EnvPlatform, "web")

	s, err := settings.Load(newFlags(t, "--platform", "native"))
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformNative, s.Platform)
}

func TestLoad_TapNameDerivesTapPath(t *testing.T) {
	clearEnv(t)
	t.Setenv(settings.EnvTap, "other")
	keg := t.TempDir()

	s, err := settings.Load(newFlags(t, "--keg", keg, "--tap-name", "acme"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(keg, "taps", "acme"), s.TapPath)
}
