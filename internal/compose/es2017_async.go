package compose

import "github.com/tscore/tscore/internal/jsast"

// asyncToGeneratorRewriter lowers "async function"/"async arrow" to a plain
// generator wrapped in an __async runtime helper call, the same
// transformation Babel's plugin-transform-async-to-generator and
// TypeScript's --target es5 downlevel both perform: every "await x" inside
// the function body becomes "yield x" inside an inner generator function,
// and the outer function's body becomes "return __async(this, arguments,
// <generator>)" so the caller still gets back a promise.
//
// __async is treated as an external runtime helper (not defined by this
// core), matching how esbuild's lowered async functions call into its
// "__async" helper from internal/runtime rather than re-deriving the
// promise-driving trampoline at every call site.
type asyncToGeneratorRewriter struct{}

func (asyncToGeneratorRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			switch data := e.Data.(type) {
			case *jsast.EFunction:
				lowerAsyncFn(data.Fn)
			case *jsast.EArrow:
				if lowered, ok := lowerAsyncArrow(data.Fn); ok {
					return lowered
				}
			}
			return e
		},
		StmtFn: func(s jsast.Stmt) jsast.Stmt {
			if fn, ok := s.Data.(*jsast.SFunction); ok {
				lowerAsyncFn(fn.Fn)
			}
			return s
		},
	}
	return jsast.WalkModule(m, v)
}

func lowerAsyncFn(fn *jsast.Fn) {
	if fn == nil || !fn.IsAsync {
		return
	}
	inner := jsast.Expr{Data: &jsast.EFunction{Fn: &jsast.Fn{
		Body:        rewriteAwaitsAsYields(fn.Body),
		IsGenerator: true,
	}}}
	fn.IsAsync = false
	fn.Body = []jsast.Stmt{
		{Data: &jsast.SReturn{Value: ptrExpr(call(ident("__async"), jsast.Expr{Data: &jsast.EThis{}},
			jsast.Expr{Data: &jsast.EIdentifier{Name: "arguments"}}, inner))}},
	}
}

// lowerAsyncArrow rewrites an async arrow's concise or block body the same
// way, returning the lowered function expression replacement and true if fn
// was in fact async.
func lowerAsyncArrow(fn *jsast.Fn) (jsast.Expr, bool) {
	if fn == nil || !fn.IsAsync {
		return jsast.Expr{}, false
	}
	if fn.ExprBody != nil {
		fn.Body = []jsast.Stmt{{Data: &jsast.SReturn{Value: fn.ExprBody}}}
		fn.ExprBody = nil
	}
	lowerAsyncFn(fn)
	return jsast.Expr{Data: &jsast.EFunction{Fn: fn}}, true
}

// rewriteAwaitsAsYields replaces every EAwait reachable from stmts with an
// equivalent EYield. It is safe to recurse into nested function literals
// unconditionally: a nested async function has already been lowered by the
// time its enclosing function is processed (WalkModule visits bottom-up),
// so no raw EAwait survives inside it, and a nested non-async function can
// never legally contain an EAwait bound to this function's scope in the
// first place.
func rewriteAwaitsAsYields(stmts []jsast.Stmt) []jsast.Stmt {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			if await, ok := e.Data.(*jsast.EAwait); ok {
				return jsast.Expr{Loc: e.Loc, Data: &jsast.EYield{Arg: ptrExpr(await.Value)}}
			}
			return e
		},
	}
	return jsast.WalkModule(jsast.Module{Stmts: stmts}, v).Stmts
}

func ptrExpr(e jsast.Expr) *jsast.Expr { return &e }
