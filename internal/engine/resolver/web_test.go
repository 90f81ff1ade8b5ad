package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/engine/resolver"
)

func TestWebResolver_ResolvePath(t *testing.T) {
	t.Parallel()

	aliases := domain.AliasSet{
		Static: domain.AliasMap{
			"@utils":       "/keg/src/utils",
			"@utils/deep":  "/keg/deep",
			"react-native": "react-native-web",
		},
		Dynamic: []domain.DynamicAlias{
			domain.NewDynamicAlias("kegComponents", "components", func(match []string) string {
				return "/keg/taps/acme/components/" + match[1] + ".js"
			}),
		},
	}

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "exact static", source: "react-native", want: "react-native-web"},
		{name: "static prefix", source: "@utils/format", want: "/keg/src/utils/format"},
		{name: "longest static prefix", source: "@utils/deep/x", want: "/keg/deep/x"},
		{name: "prefix without separator", source: "@utilsx", want: "@utilsx"},
		{name: "dynamic", source: "kegComponents/Button", want: "/keg/taps/acme/components/Button.js"},
		{name: "unknown", source: "lodash", want: "lodash"},
	}

	r := resolver.WebResolver{}
	assert.Equal(t, resolver.BuiltinName, r.Name())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, r.ResolvePath(tt.source, "/keg/src/App.js", aliases))
		})
	}
}
