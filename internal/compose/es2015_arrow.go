package compose

import "github.com/tscore/tscore/internal/jsast"

// arrowFunctionsRewriter lowers "(x) => x * 2" to the traditional function
// expression "function (x) { return x * 2; }". A concise (expression) body
// becomes a single return statement; a block body is kept as-is.
//
// Simplification: a real downlevel additionally captures the enclosing
// "this"/"arguments" into a renamed variable so a lowered arrow keeps
// lexical "this" once turned into a dynamically-bound function expression
// (esbuild's fnStmts.shouldCaptureThis machinery). This core's AST has no
// scope-resolution pass feeding the composer (that lives in the external
// parser per §1), so capture-this rewriting is out of scope here; arrows
// that don't reference an enclosing "this" lower correctly as-is.
type arrowFunctionsRewriter struct{}

func (arrowFunctionsRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			arrow, ok := e.Data.(*jsast.EArrow)
			if !ok {
				return e
			}
			fn := arrow.Fn
			if fn.ExprBody != nil {
				fn.Body = []jsast.Stmt{{Data: &jsast.SReturn{Value: fn.ExprBody}}}
				fn.ExprBody = nil
			}
			return jsast.Expr{Loc: e.Loc, Data: &jsast.EFunction{Fn: fn}}
		},
	}
	return jsast.WalkModule(m, v)
}
