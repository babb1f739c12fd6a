// Package polyfill implements C4, the usage-mode polyfill injector: a
// read-only scan of the module for uses of polyfillable globals and
// methods (usage.go), a core-js ruleset mapping each use to module
// specifiers (corejs.go), and the rewrite here that prepends one bare
// side-effect import per required specifier.
//
// The scanner and the injector are deliberately separate (§9's design
// note) so the ruleset can move from core-js 2 to 3 without touching the
// rewrite itself.
package polyfill

import (
	"errors"
	"sort"

	"github.com/tscore/tscore/internal/config"
	"github.com/tscore/tscore/internal/jsast"
)

// ErrScriptInput is returned when usage-mode injection is asked to run on a
// classic script. Prepending imports to a script would silently change its
// parse goal, so this case is fatal to the run rather than a warning (§4.3).
var ErrScriptInput = errors.New("polyfill: automatic polyfill injection is not supported on script files (parse the input as a module)")

// Inject implements §4.3. In Usage mode it scans m for polyfillable uses,
// filters the resulting specifiers by the configured targets and skip set,
// and prepends one bare import per specifier, deduplicated against imports
// already present and sorted lexicographically. Entry and None modes leave
// the module untouched.
func Inject(m jsast.Module, cfg config.Config) (jsast.Module, error) {
	if cfg.Mode != config.ModeUsage {
		return m, nil
	}
	if m.IsScript {
		return m, ErrScriptInput
	}

	specifiers := CollectSpecifiers(m, cfg)
	if len(specifiers) == 0 {
		return m, nil
	}

	existing := existingBareImports(m)
	stmts := make([]jsast.Stmt, 0, len(specifiers)+len(m.Stmts))
	for _, spec := range specifiers {
		if existing[spec] {
			continue
		}
		stmts = append(stmts, jsast.Stmt{Data: &jsast.SImport{Specifier: spec}})
	}
	m.Stmts = append(stmts, m.Stmts...)
	return m, nil
}

// CollectSpecifiers runs the usage scan and the ruleset filter, returning
// the sorted, deduplicated specifier list for m under cfg. Exported
// separately from Inject so a host (or P8's test) can inspect the set
// without rewriting anything.
func CollectSpecifiers(m jsast.Module, cfg config.Config) []string {
	uses := scanUsage(m)

	seen := map[string]bool{}
	var out []string
	for _, rule := range rulesFor(uses) {
		if !rule.needed(cfg.Versions) {
			continue
		}
		for _, spec := range rule.specifiers(cfg.CoreJS) {
			if cfg.Skip[spec] || seen[spec] {
				continue
			}
			seen[spec] = true
			out = append(out, spec)
		}
	}

	// Lexicographic order keeps the injected prelude deterministic across
	// runs regardless of traversal order (§4.3, P8).
	sort.Strings(out)
	return out
}

// existingBareImports returns the specifiers of bare side-effect imports in
// the module's leading import block, so running the injector twice over its
// own output is a no-op on the specifier set.
func existingBareImports(m jsast.Module) map[string]bool {
	out := map[string]bool{}
	for _, s := range m.Stmts {
		imp, ok := s.Data.(*jsast.SImport)
		if !ok {
			break
		}
		if imp.Default == nil && imp.Star == nil && len(imp.Named) == 0 {
			out[imp.Specifier] = true
		}
	}
	return out
}
