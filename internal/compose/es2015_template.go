package compose

import "github.com/tscore/tscore/internal/jsast"

// templateLiteralsRewriter lowers a template literal to a chain of string
// concatenations: `a${b}c` becomes "a" + (b) + "c", dropping empty leading
// and trailing quasis the way esbuild's template-to-string lowering avoids
// emitting a redundant "" + ... prefix.
type templateLiteralsRewriter struct{}

func (templateLiteralsRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			tpl, ok := e.Data.(*jsast.ETemplate)
			if !ok {
				return e
			}
			return lowerTemplate(tpl)
		},
	}
	return jsast.WalkModule(m, v)
}

func lowerTemplate(tpl *jsast.ETemplate) jsast.Expr {
	var parts []jsast.Expr
	for i, quasi := range tpl.Quasis {
		if quasi != "" || (i == 0 && len(tpl.Exprs) == 0) {
			parts = append(parts, str(quasi))
		}
		if i < len(tpl.Exprs) {
			parts = append(parts, tpl.Exprs[i])
		}
	}
	if len(parts) == 0 {
		return str("")
	}
	result := parts[0]
	if _, isStr := result.Data.(*jsast.EString); !isStr {
		// A leading expression must still coerce to string; force it with a
		// leading "" the way esbuild's lowerTemplateLiteral does when the
		// first quasi is empty and was dropped above.
		result = jsast.Expr{Data: &jsast.EBinary{Op: jsast.BinAdd, Left: str(""), Right: result}}
	}
	for _, p := range parts[1:] {
		result = jsast.Expr{Data: &jsast.EBinary{Op: jsast.BinAdd, Left: result, Right: p}}
	}
	return result
}
