package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tapresolver/internal/adapters/fs"
	"go.trai.ch/tapresolver/internal/core/domain"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("x"), domain.FilePerm))
}

func TestProber_Exists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Header.js")
	writeFile(t, file)

	p := fs.NewProber()

	ok, err := p.Exists(file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Exists(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Exists(filepath.Join(dir, "missing.js"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProber_IsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Header.js")
	writeFile(t, file)

	p := fs.NewProber()
	assert.True(t, p.IsDir(dir))
	assert.False(t, p.IsDir(file))
	assert.False(t, p.IsDir(filepath.Join(dir, "missing")))
	assert.False(t, p.IsDir(""))
}

func TestWalker_WalkFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "logo.png"))
	writeFile(t, filepath.Join(dir, "icons", "home.png"))
	writeFile(t, filepath.Join(dir, ".cache", "skip.png"))

	var got []string
	for path, err := range fs.NewWalker().WalkFiles(dir) {
		require.NoError(t, err)
		rel, relErr := filepath.Rel(dir, path)
		require.NoError(t, relErr)
		got = append(got, filepath.ToSlash(rel))
	}
	slices.Sort(got)

	assert.Equal(t, []string{"icons/home.png", "logo.png"}, got)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	count := 0
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing")) {
		require.NoError(t, err)
		count++
	}
	assert.Zero(t, count)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"))
	writeFile(t, filepath.Join(dir, "b.png"))

	count := 0
	for range fs.NewWalker().WalkFiles(dir) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
