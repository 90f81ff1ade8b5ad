package resolver_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/engine/resolver"
)

func TestNewModuleResolverConfig(t *testing.T) {
	t.Parallel()

	c := &domain.BuildConstants{
		KegRoot:    "/keg",
		Extensions: []string{".web.js", ".js"},
		Platform:   domain.PlatformWeb,
		AppConfig: domain.Config{
			"tapResolver": map[string]any{
				"babel": map[string]any{
					"web":    map[string]any{"presets": []any{"web-preset"}, "plugins": []any{[]any{"module", map[string]any{"x": 1}}}},
					"native": map[string]any{"presets": []any{"native-preset"}},
				},
			},
		},
	}
	aliases := domain.AliasSet{
		Static: domain.AliasMap{"kegTap": "/keg/taps/acme"},
		Dynamic: []domain.DynamicAlias{
			domain.NewDynamicAlias("kegComponents", "components", nil),
		},
	}

	cfg := resolver.NewModuleResolverConfig(c, aliases)

	assert.Equal(t, []string{"/keg"}, cfg.Root)
	assert.Equal(t, "/keg", cfg.Cwd)
	assert.Equal(t, []string{".web.js", ".js"}, cfg.Extensions)
	assert.Equal(t, map[string]string{"kegTap": "/keg/taps/acme"}, cfg.Alias)
	assert.Equal(t, map[string]string{"kegComponents": "components"}, cfg.Dynamic)
	assert.True(t, cfg.WebResolve)
	assert.Equal(t, []any{"web-preset"}, cfg.Presets)
	assert.Len(t, cfg.Plugins, 1)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"webResolve":true`)
}

func TestNewModuleResolverConfig_NativeWithoutBabel(t *testing.T) {
	t.Parallel()

	c := &domain.BuildConstants{KegRoot: "/keg", Platform: domain.PlatformNative, AppConfig: domain.Config{}}

	cfg := resolver.NewModuleResolverConfig(c, domain.AliasSet{})

	assert.False(t, cfg.WebResolve)
	assert.Nil(t, cfg.Dynamic)
	assert.Equal(t, []any{}, cfg.Presets)
	assert.Equal(t, []any{}, cfg.Plugins)
}
