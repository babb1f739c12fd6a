package compose

import "github.com/tscore/tscore/internal/jsast"

// exponentiationRewriter lowers "a ** b" to "Math.pow(a, b)", the textbook
// downlevel for the exponentiation operator (the same rewrite esbuild's
// lowerExponentiationOperator performs in js_parser_lower.go before engines
// shipped "**" natively).
type exponentiationRewriter struct{}

func (exponentiationRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			bin, ok := e.Data.(*jsast.EBinary)
			if !ok || bin.Op != jsast.BinExp {
				return e
			}
			return call(member(ident("Math"), "pow"), bin.Left, bin.Right)
		},
	}
	return jsast.WalkModule(m, v)
}
