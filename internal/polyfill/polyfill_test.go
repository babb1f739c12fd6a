package polyfill

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tscore/tscore/internal/compat"
	"github.com/tscore/tscore/internal/config"
	"github.com/tscore/tscore/internal/jsast"
	"github.com/tscore/tscore/internal/semver"
)

// newMapModule is the scenario-6 fixture: a module whose only statement is
// `new Map();`.
func newMapModule() jsast.Module {
	return jsast.Module{Stmts: []jsast.Stmt{{
		Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.ENew{
			Callee: jsast.Expr{Data: &jsast.EIdentifier{Name: "Map"}},
		}}},
	}}}
}

func usageConfig() config.Config {
	cfg := config.Default()
	cfg.Mode = config.ModeUsage
	return cfg
}

func TestUsageInjectsMapPolyfill(t *testing.T) {
	out, err := Inject(newMapModule(), usageConfig())
	require.NoError(t, err)

	require.NotEmpty(t, out.Stmts)
	imp, ok := out.Stmts[0].Data.(*jsast.SImport)
	require.True(t, ok, "first statement should be an injected import")
	assert.Equal(t, "core-js/modules/es6.map", imp.Specifier)
	assert.Nil(t, imp.Default)
	assert.Nil(t, imp.Star)
	assert.Empty(t, imp.Named)
}

func TestUsageInjectionIsIdempotent(t *testing.T) {
	cfg := usageConfig()
	once, err := Inject(newMapModule(), cfg)
	require.NoError(t, err)
	twice, err := Inject(once, cfg)
	require.NoError(t, err)

	assert.Equal(t, importSpecifiers(once), importSpecifiers(twice))
}

// P8: the collected specifier list is sorted and free of duplicates.
func TestSpecifierListSortedAndDeduplicated(t *testing.T) {
	m := jsast.Module{Stmts: []jsast.Stmt{
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.ENew{Callee: jsast.Expr{Data: &jsast.EIdentifier{Name: "Map"}}}}}},
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.ENew{Callee: jsast.Expr{Data: &jsast.EIdentifier{Name: "Map"}}}}}},
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.EIdentifier{Name: "Promise"}}}},
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.EMember{
			Obj:  jsast.Expr{Data: &jsast.EIdentifier{Name: "xs"}},
			Prop: "includes",
		}}}},
	}}

	specs := CollectSpecifiers(m, usageConfig())
	assert.True(t, sort.StringsAreSorted(specs), "specifiers must be sorted: %v", specs)
	seen := map[string]bool{}
	for _, s := range specs {
		assert.False(t, seen[s], "duplicate specifier %s", s)
		seen[s] = true
	}
	assert.Contains(t, specs, "core-js/modules/es6.map")
	assert.Contains(t, specs, "core-js/modules/es6.promise")
	assert.Contains(t, specs, "core-js/modules/es7.array.includes")
	assert.Contains(t, specs, "core-js/modules/es6.string.includes")
}

func TestCoreJS3NamingScheme(t *testing.T) {
	cfg := usageConfig()
	cfg.CoreJS = 3
	specs := CollectSpecifiers(newMapModule(), cfg)
	assert.Equal(t, []string{"core-js/modules/es.map"}, specs)
}

func TestSkipFiltersSpecifiers(t *testing.T) {
	cfg := usageConfig()
	cfg.Skip = map[string]bool{"core-js/modules/es6.map": true}
	specs := CollectSpecifiers(newMapModule(), cfg)
	assert.Empty(t, specs)
}

func TestModernTargetsNeedNoPolyfill(t *testing.T) {
	cfg := usageConfig()
	cfg.Versions = compat.NoTargets.Set(compat.Chrome, semver.Semver{Parts: []int{90}})
	specs := CollectSpecifiers(newMapModule(), cfg)
	assert.Empty(t, specs)
}

func TestOldTargetsNeedPolyfill(t *testing.T) {
	cfg := usageConfig()
	cfg.Versions = compat.NoTargets.Set(compat.IE, semver.Semver{Parts: []int{11}})
	specs := CollectSpecifiers(newMapModule(), cfg)
	assert.Equal(t, []string{"core-js/modules/es6.map"}, specs)
}

func TestEntryAndNoneModesDoNotInject(t *testing.T) {
	for _, mode := range []config.Mode{config.ModeNone, config.ModeEntry} {
		cfg := config.Default()
		cfg.Mode = mode
		out, err := Inject(newMapModule(), cfg)
		require.NoError(t, err)
		assert.Len(t, out.Stmts, 1, "mode %s must not inject", mode)
	}
}

func TestScriptInputIsFatal(t *testing.T) {
	m := newMapModule()
	m.IsScript = true
	_, err := Inject(m, usageConfig())
	require.ErrorIs(t, err, ErrScriptInput)
}

func importSpecifiers(m jsast.Module) []string {
	var out []string
	for _, s := range m.Stmts {
		if imp, ok := s.Data.(*jsast.SImport); ok {
			out = append(out, imp.Specifier)
		}
	}
	return out
}
