package resolver_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tapresolver/internal/adapters/cache"
	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/core/ports/mocks"
	"go.trai.ch/tapresolver/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

var contentConfig = domain.Config{
	"tapResolver": map[string]any{
		"aliases": map[string]any{"nameSpace": "keg"},
	},
}

var contentAliases = domain.AliasMap{"kegTap": "/keg/taps/acme"}

func contentContext() domain.ContentContext {
	return domain.ContentContext{
		BasePath:   "/keg/base",
		Tap:        true,
		Extensions: []string{".ios.js", ".js"},
	}
}

type contentFixture struct {
	prober *mocks.MockFileProber
	logger *mocks.MockLogger
	cache  *cache.PathCache
	deps   resolver.ContentDeps
}

func newContentFixture(t *testing.T) contentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := contentFixture{
		prober: mocks.NewMockFileProber(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		cache:  cache.New(),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.deps = resolver.ContentDeps{Cache: f.cache, Prober: f.prober, Logger: f.logger}
	return f
}

// files makes prober report the given files as existing and nothing else.
func files(prober *mocks.MockFileProber, existing ...string) {
	prober.EXPECT().Exists(gomock.Any()).DoAndReturn(func(path string) (bool, error) {
		return slices.Contains(existing, path), nil
	}).AnyTimes()
}

func TestContentResolver_Resolve_ExtensionOrder(t *testing.T) {
	t.Parallel()
	f := newContentFixture(t)
	f.prober.EXPECT().IsDir("/keg/taps/acme/components/Button").Return(false)
	files(f.prober, "/keg/taps/acme/components/Button.ios.js", "/keg/taps/acme/components/Button.js")

	r, err := resolver.NewContentResolver(contentConfig, contentAliases, contentContext(), f.deps)
	require.NoError(t, err)

	assert.Equal(t, "/keg/taps/acme/components/Button.ios.js", r.Resolve("components", "Button"))
}

func TestContentResolver_Resolve_BarePathFirst(t *testing.T) {
	t.Parallel()
	f := newContentFixture(t)
	f.prober.EXPECT().IsDir(gomock.Any()).Return(false)
	files(f.prober, "/keg/taps/acme/fonts/Inter.ttf", "/keg/taps/acme/fonts/Inter.ttf.js")

	r, err := resolver.NewContentResolver(contentConfig, contentAliases, contentContext(), f.deps)
	require.NoError(t, err)

	assert.Equal(t, "/keg/taps/acme/fonts/Inter.ttf", r.Resolve("fonts", "Inter.ttf"))
}

func TestContentResolver_Resolve_DirectoryIndex(t *testing.T) {
	t.Parallel()
	f := newContentFixture(t)
	f.prober.EXPECT().IsDir("/keg/taps/acme/screens/Home").Return(true)
	files(f.prober, "/keg/taps/acme/screens/Home/index.js")

	r, err := resolver.NewContentResolver(contentConfig, contentAliases, contentContext(), f.deps)
	require.NoError(t, err)

	assert.Equal(t, "/keg/taps/acme/screens/Home/index.js", r.Resolve("screens", "Home"))
}

func TestContentResolver_Resolve_BaseFallback(t *testing.T) {
	t.Parallel()
	f := newContentFixture(t)
	f.prober.EXPECT().IsDir(gomock.Any()).Return(false)
	files(f.prober)

	r, err := resolver.NewContentResolver(contentConfig, contentAliases, contentContext(), f.deps)
	require.NoError(t, err)

	assert.Equal(t, "/keg/base/components/Button", r.Resolve("components", "Button"))
}

func TestContentResolver_Resolve_CacheHitSkipsProbes(t *testing.T) {
	t.Parallel()
	f := newContentFixture(t)
	f.prober.EXPECT().IsDir("/keg/taps/acme/components/Button").Return(false).Times(1)
	f.prober.EXPECT().Exists("/keg/taps/acme/components/Button").Return(false, nil).Times(1)
	f.prober.EXPECT().Exists("/keg/taps/acme/components/Button.ios.js").Return(true, nil).Times(1)

	r, err := resolver.NewContentResolver(contentConfig, contentAliases, contentContext(), f.deps)
	require.NoError(t, err)

	first := r.Resolve("components", "Button")
	second := r.Resolve("components", "Button")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.cache.Len())
}

func TestContentResolver_Resolve_StatErrorFallsBack(t *testing.T) {
	t.Parallel()
	f := newContentFixture(t)
	f.prober.EXPECT().IsDir(gomock.Any()).Return(false)
	f.prober.EXPECT().Exists(gomock.Any()).Return(false, errors.New("permission denied")).Times(3)
	f.logger.EXPECT().Warn(gomock.Any()).Times(3)

	r, err := resolver.NewContentResolver(contentConfig, contentAliases, contentContext(), f.deps)
	require.NoError(t, err)

	assert.Equal(t, "/keg/base/components/Button", r.Resolve("components", "Button"))
}

func TestContentResolver_Func(t *testing.T) {
	t.Parallel()
	f := newContentFixture(t)
	f.prober.EXPECT().IsDir(gomock.Any()).Return(false)
	files(f.prober, "/keg/taps/acme/components/Button.js")

	r, err := resolver.NewContentResolver(contentConfig, contentAliases, contentContext(), f.deps)
	require.NoError(t, err)

	resolve := r.Func("components")
	assert.Equal(t, "/keg/taps/acme/components/Button.js", resolve([]string{"kegComponents/Button", "Button"}))
}

func TestNewContentResolver_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     domain.Config
		aliases domain.AliasMap
		content domain.ContentContext
	}{
		{name: "missing namespace", cfg: domain.Config{}, aliases: contentAliases, content: contentContext()},
		{name: "missing tap alias", cfg: contentConfig, aliases: domain.AliasMap{}, content: contentContext()},
		{name: "missing base path", cfg: contentConfig, aliases: contentAliases, content: domain.ContentContext{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newContentFixture(t)

			_, err := resolver.NewContentResolver(tt.cfg, tt.aliases, tt.content, f.deps)
			require.ErrorContains(t, err, domain.ErrValidation.Error())
		})
	}
}
