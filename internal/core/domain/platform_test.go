package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tapresolver/internal/core/domain"
)

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.PlatformWeb, domain.ParsePlatform("web"))
	assert.Equal(t, domain.PlatformWeb, domain.ParsePlatform(" WEB "))
	assert.Equal(t, domain.PlatformNative, domain.ParsePlatform("ios"))
	assert.Equal(t, domain.PlatformNative, domain.ParsePlatform(""))
}

func TestPlatformData(t *testing.T) {
	t.Parallel()

	both := map[string]any{
		"web":    map[string]any{"presets": "w"},
		"native": map[string]any{"presets": "n"},
	}
	nativeOnly := map[string]any{"native": map[string]any{"presets": "n"}}
	flat := map[string]any{"presets": "f"}

	tests := []struct {
		name     string
		value    any
		platform domain.Platform
		want     domain.Config
	}{
		{name: "web picks web", value: both, platform: domain.PlatformWeb, want: domain.Config{"presets": "w"}},
		{name: "native picks native", value: both, platform: domain.PlatformNative, want: domain.Config{"presets": "n"}},
		{name: "web falls back to native", value: nativeOnly, platform: domain.PlatformWeb, want: domain.Config{"presets": "n"}},
		{name: "flat applies as a whole", value: flat, platform: domain.PlatformWeb, want: domain.Config{"presets": "f"}},
		{name: "non map is empty", value: "x", platform: domain.PlatformNative, want: domain.Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, domain.PlatformData(tt.value, tt.platform))
		})
	}
}

func TestPlatformList(t *testing.T) {
	t.Parallel()

	split := map[string]any{
		"web":    []any{".web.js"},
		"native": []any{".ios.js", ".js"},
	}

	assert.Equal(t, []string{".js"}, domain.PlatformList([]any{".js"}, domain.PlatformWeb))
	assert.Equal(t, []string{".web.js"}, domain.PlatformList(split, domain.PlatformWeb))
	assert.Equal(t, []string{".ios.js", ".js"}, domain.PlatformList(split, domain.PlatformNative))
	assert.Equal(t, []string{".native.js", ".js"},
		domain.PlatformList(map[string]any{"native": []any{".native.js", ".js"}}, domain.PlatformWeb))
	assert.Equal(t, []string{".js"},
		domain.PlatformList(map[string]any{"web": []any{}, "native": []any{".js"}}, domain.PlatformWeb))
	assert.Nil(t, domain.PlatformList(map[string]any{"web": []any{".web.js"}}, domain.PlatformNative))
	assert.Nil(t, domain.PlatformList(nil, domain.PlatformNative))
}
