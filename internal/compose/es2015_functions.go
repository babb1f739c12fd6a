package compose

import "github.com/tscore/tscore/internal/jsast"

// blockScopedFunctionsRewriter hoists a function declaration that appears
// directly inside a non-top-level block to a "var" assigned a function
// expression, matching how ES3/ES5 engines only hoist function
// declarations to the nearest function (not block) scope: "{ function f()
// {} }" becomes "{ var f = function f() {}; }" so the binding still exists
// for the rest of that block without relying on block-level hoisting.
type blockScopedFunctionsRewriter struct{}

func (blockScopedFunctionsRewriter) Apply(m jsast.Module) jsast.Module {
	rewriteNestedBlocks := func(stmts []jsast.Stmt) []jsast.Stmt {
		out := make([]jsast.Stmt, len(stmts))
		for i, s := range stmts {
			if fn, ok := s.Data.(*jsast.SFunction); ok && fn.Fn.Name != nil {
				name := *fn.Fn.Name
				val := jsast.Expr{Data: &jsast.EFunction{Fn: fn.Fn}}
				out[i] = varDecl(jsast.VarVar, name, &val)
				continue
			}
			out[i] = s
		}
		return out
	}

	v := &jsast.Visitor{
		StmtFn: func(s jsast.Stmt) jsast.Stmt {
			switch data := s.Data.(type) {
			case *jsast.SBlock:
				data.Stmts = rewriteNestedBlocks(data.Stmts)
			case *jsast.SIf:
				data.Yes = wrapIfBlockFn(data.Yes)
				if data.No != nil {
					no := wrapIfBlockFn(*data.No)
					data.No = &no
				}
			}
			return s
		},
	}
	return jsast.WalkModule(m, v)
}

func wrapIfBlockFn(s jsast.Stmt) jsast.Stmt {
	fn, ok := s.Data.(*jsast.SFunction)
	if !ok || fn.Fn.Name == nil {
		return s
	}
	name := *fn.Fn.Name
	val := jsast.Expr{Data: &jsast.EFunction{Fn: fn.Fn}}
	return varDecl(jsast.VarVar, name, &val)
}

// functionNameRewriter ensures a function expression assigned directly to a
// variable keeps its own name (ES6 infers "f" from "const f = function()
// {}"; older engines leave .name empty on anonymous function expressions),
// by copying the binding name onto the function's own Name field so
// whatever the external printer emits preserves it as a named function
// expression.
type functionNameRewriter struct{}

func (functionNameRewriter) Apply(m jsast.Module) jsast.Module {
	nameAnonymousFn := func(e *jsast.Expr, name string) {
		switch data := e.Data.(type) {
		case *jsast.EFunction:
			if data.Fn.Name == nil {
				data.Fn.Name = &name
			}
		case *jsast.EArrow:
			// Arrows are left unnamed: ArrowFunctions runs after this stage
			// in the pipeline (§4.1's ordering), so an arrow is still an
			// EArrow here and the function expression it later becomes
			// gets no name from this stage.
		}
	}

	v := &jsast.Visitor{
		StmtFn: func(s jsast.Stmt) jsast.Stmt {
			decl, ok := s.Data.(*jsast.SVarDecl)
			if !ok {
				return s
			}
			for i := range decl.Decls {
				d := &decl.Decls[i]
				if d.Binding.Kind == jsast.BIdentifier && d.Value != nil {
					nameAnonymousFn(d.Value, d.Binding.Name)
				}
			}
			return s
		},
	}
	return jsast.WalkModule(m, v)
}

// parametersRewriter lowers default parameter values and rest parameters,
// neither of which ES5 engines understand: a default becomes a guarded
// assignment at the top of the function body ("if (x === undefined) x =
// 1;"), and a rest parameter becomes a slice built from "arguments".
type parametersRewriter struct{}

func (parametersRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			if fn, ok := e.Data.(*jsast.EFunction); ok {
				lowerFnParams(fn.Fn)
			}
			return e
		},
		StmtFn: func(s jsast.Stmt) jsast.Stmt {
			if fn, ok := s.Data.(*jsast.SFunction); ok {
				lowerFnParams(fn.Fn)
			}
			return s
		},
	}
	return jsast.WalkModule(m, v)
}

func lowerFnParams(fn *jsast.Fn) {
	if fn == nil {
		return
	}
	var prelude []jsast.Stmt
	kept := make([]jsast.Param, 0, len(fn.Params))

	for i, p := range fn.Params {
		if p.IsRest {
			prelude = append(prelude, lowerRestParam(p, i))
			continue
		}
		if p.Default != nil && p.Binding.Kind == jsast.BIdentifier {
			kept = append(kept, jsast.Param{Binding: p.Binding})
			cond := jsast.Expr{Data: &jsast.EBinary{
				Op:    jsast.BinStrictEq,
				Left:  ident(p.Binding.Name),
				Right: jsast.Expr{Data: &jsast.EIdentifier{Name: "undefined"}},
			}}
			assignment := exprStmt(assign(ident(p.Binding.Name), *p.Default))
			prelude = append(prelude, jsast.Stmt{Data: &jsast.SIf{Test: cond, Yes: assignment}})
			continue
		}
		kept = append(kept, p)
	}

	fn.Params = kept
	fn.Body = append(prelude, fn.Body...)
}

// lowerRestParam builds "var name = Array.prototype.slice.call(arguments,
// fromIndex);" for a rest parameter at position fromIndex, the standard
// pre-ES6 equivalent.
func lowerRestParam(p jsast.Param, fromIndex int) jsast.Stmt {
	sliceCall := call(member(member(member(ident("Array"), "prototype"), "slice"), "call"),
		jsast.Expr{Data: &jsast.EIdentifier{Name: "arguments"}}, num(float64(fromIndex)))
	return varDecl(jsast.VarVar, p.Binding.Name, &sliceCall)
}
