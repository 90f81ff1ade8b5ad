package shell_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tapresolver/internal/adapters/shell"
	"go.trai.ch/tapresolver/internal/core/domain"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "plugin.sh")
	//nolint:gosec // test script must be executable
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o750))
	return path
}

func TestRunner_Run_EchoesStdin(t *testing.T) {
	script := writeScript(t, "cat\n")

	out, err := shell.NewRunner().Run(t.Context(), script, t.TempDir(), nil, []byte(`{"ok":true}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(out))
}

func TestRunner_Run_PassesEnvironment(t *testing.T) {
	script := writeScript(t, "printf '%s' \"$TAPRESOLVER_KEG_ROOT\"\n")

	out, err := shell.NewRunner().Run(t.Context(), script, t.TempDir(),
		map[string]string{"TAPRESOLVER_KEG_ROOT": "/keg"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/keg", string(out))
}

func TestRunner_Run_Failure(t *testing.T) {
	script := writeScript(t, "echo broken >&2\nexit 3\n")

	_, err := shell.NewRunner().Run(t.Context(), script, t.TempDir(), nil, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPluginFailed.Error())
}

func TestIsExecutable(t *testing.T) {
	script := writeScript(t, "exit 0\n")
	plain := filepath.Join(t.TempDir(), "plain.js")
	require.NoError(t, os.WriteFile(plain, []byte("module.exports = {}"), domain.FilePerm))

	assert.True(t, shell.IsExecutable(script))
	assert.False(t, shell.IsExecutable(plain))
	assert.False(t, shell.IsExecutable(filepath.Dir(script)))
	assert.False(t, shell.IsExecutable(filepath.Join(t.TempDir(), "missing")))
}

func TestResolveEnvironment(t *testing.T) {
	got := shell.ResolveEnvironment(
		[]string{"PATH=/bin", "TAP=old", "INVALID"},
		map[string]string{"TAP": "acme"},
	)
	assert.Equal(t, []string{"PATH=/bin", "TAP=acme"}, got)
}
