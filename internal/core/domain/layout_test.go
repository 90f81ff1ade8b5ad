package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tapresolver/internal/core/domain"
)

func TestDefaultTempPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, filepath.Join("/keg", ".temp"), domain.DefaultTempPath("/keg"))
}

func TestConfigNames_Order(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"tap.config.json", "tap.json", "app.json", "package.json"}, domain.ConfigNames())
}

func TestDefaultExtensions_Fresh(t *testing.T) {
	t.Parallel()

	exts := domain.DefaultExtensions()
	exts[0] = "changed"

	assert.Equal(t, ".web.js", domain.DefaultExtensions()[0])
}
