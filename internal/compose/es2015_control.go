package compose

import "github.com/tscore/tscore/internal/jsast"

// forOfRewriter lowers "for (const x of iterable) body" to an indexed loop
// over iterable. With assumeArray (set from Config.Loose, §4.1's
// "ForOf(assume_array=loose)"), it emits a plain numeric-index loop; when
// not loose, it drives the iterator protocol explicitly via
// iterable[Symbol.iterator]() so a non-array iterable still works.
type forOfRewriter struct{ assumeArray bool }

func (r forOfRewriter) Apply(m jsast.Module) jsast.Module {
	gen := &nameGen{prefix: "_i"}
	v := &jsast.Visitor{
		StmtFn: func(s jsast.Stmt) jsast.Stmt {
			fo, ok := s.Data.(*jsast.SForOf)
			if !ok {
				return s
			}
			if r.assumeArray {
				return lowerForOfArray(fo, gen)
			}
			return lowerForOfIterator(fo, gen)
		},
	}
	return jsast.WalkModule(m, v)
}

func forOfBindingName(init jsast.Stmt) (jsast.VarKind, string) {
	if decl, ok := init.Data.(*jsast.SVarDecl); ok && len(decl.Decls) == 1 && decl.Decls[0].Binding.Kind == jsast.BIdentifier {
		return decl.Kind, decl.Decls[0].Binding.Name
	}
	return jsast.VarVar, ""
}

// lowerForOfArray builds:
//
//	for (var _i = 0; _i < iterable.length; _i++) {
//	    var x = iterable[_i];
//	    body
//	}
func lowerForOfArray(fo *jsast.SForOf, gen *nameGen) jsast.Stmt {
	idx := gen.next()
	kind, name := forOfBindingName(fo.Init)

	init := varDecl(jsast.VarVar, idx, ptrExpr(num(0)))
	test := jsast.Expr{Data: &jsast.EBinary{Op: jsast.BinLt, Left: ident(idx), Right: member(fo.Value, "length")}}
	update := jsast.Expr{Data: &jsast.EUpdate{Op: jsast.UpdateIncrement, Prefix: false, Value: ident(idx)}}

	elem := computedMember(fo.Value, ident(idx))
	bodyStmts := []jsast.Stmt{varDecl(kind, name, &elem)}
	if name == "" {
		// A non-identifier for-of binding (array/object pattern) is out of
		// this stage's scope; leave the loop variable declaration to
		// Destructuring, which runs later in the pipeline (§4.1).
		bodyStmts = []jsast.Stmt{{Data: &jsast.SVarDecl{Kind: jsast.VarVar}}}
		if decl, ok := fo.Init.Data.(*jsast.SVarDecl); ok && len(decl.Decls) == 1 {
			bodyStmts = []jsast.Stmt{{Data: &jsast.SVarDecl{Kind: decl.Kind, Decls: []jsast.Decl{
				{Binding: decl.Decls[0].Binding, Value: &elem},
			}}}}
		}
	}
	bodyStmts = append(bodyStmts, fo.Body)

	return jsast.Stmt{Data: &jsast.SFor{
		Init:   ptrExpr2(init),
		Test:   &test,
		Update: &update,
		Body:   jsast.Stmt{Data: &jsast.SBlock{Stmts: bodyStmts}},
	}}
}

// lowerForOfIterator builds the general iterator-protocol form:
//
//	for (var _i = iterable[Symbol.iterator](), _step; !(_step = _i.next()).done;) {
//	    var x = _step.value;
//	    body
//	}
func lowerForOfIterator(fo *jsast.SForOf, gen *nameGen) jsast.Stmt {
	iterName := gen.next()
	stepName := gen.next()
	kind, name := forOfBindingName(fo.Init)

	iterInit := call(computedMember(fo.Value, member(ident("Symbol"), "iterator")))
	initDecl := jsast.Stmt{Data: &jsast.SVarDecl{Kind: jsast.VarVar, Decls: []jsast.Decl{
		{Binding: jsast.Binding{Kind: jsast.BIdentifier, Name: iterName}, Value: &iterInit},
		{Binding: jsast.Binding{Kind: jsast.BIdentifier, Name: stepName}},
	}}}

	stepCall := call(member(ident(iterName), "next"))
	assignStep := assign(ident(stepName), stepCall)
	test := jsast.Expr{Data: &jsast.EUnary{Op: jsast.UnNot, Value: member(jsast.Expr{Data: &jsast.EParen{Value: assignStep}}, "done")}}

	valueExpr := member(ident(stepName), "value")
	bodyStmts := []jsast.Stmt{}
	if name != "" {
		bodyStmts = append(bodyStmts, varDecl(kind, name, &valueExpr))
	}
	bodyStmts = append(bodyStmts, fo.Body)

	return jsast.Stmt{Data: &jsast.SFor{
		Init: &initDecl,
		Test: &test,
		Body: jsast.Stmt{Data: &jsast.SBlock{Stmts: bodyStmts}},
	}}
}

func ptrExpr2(s jsast.Stmt) *jsast.Stmt { return &s }

// destructuringRewriter expands an object/array destructuring variable
// declaration into a sequence of plain assignments built from member/index
// access, the way a target with no destructuring support requires. Nested
// patterns and default values inside a pattern are expanded recursively;
// rest elements in an array pattern fall back to ".slice(n)" the same way
// Parameters' rest-parameter lowering does.
type destructuringRewriter struct{ loose bool }

func (r destructuringRewriter) Apply(m jsast.Module) jsast.Module {
	return expandModule(m, func(s jsast.Stmt) []jsast.Stmt {
		decl, ok := s.Data.(*jsast.SVarDecl)
		if !ok {
			return []jsast.Stmt{s}
		}
		var out []jsast.Stmt
		changed := false
		for _, d := range decl.Decls {
			if d.Binding.Kind == jsast.BIdentifier {
				out = append(out, jsast.Stmt{Data: &jsast.SVarDecl{Kind: decl.Kind, Decls: []jsast.Decl{d}}})
				continue
			}
			changed = true
			out = append(out, expandPatternDecl(decl.Kind, d.Binding, derefOrUndefined(d.Value))...)
		}
		if !changed {
			return []jsast.Stmt{s}
		}
		return out
	})
}

func derefOrUndefined(e *jsast.Expr) jsast.Expr {
	if e != nil {
		return *e
	}
	return jsast.Expr{Data: &jsast.EIdentifier{Name: "undefined"}}
}

// expandPatternDecl recursively lowers one binding (which may itself
// contain nested patterns) against source, emitting one var declaration per
// leaf identifier.
func expandPatternDecl(kind jsast.VarKind, b jsast.Binding, source jsast.Expr) []jsast.Stmt {
	switch b.Kind {
	case jsast.BIdentifier:
		return []jsast.Stmt{varDecl(kind, b.Name, &source)}

	case jsast.BObject:
		var out []jsast.Stmt
		srcName := "_pattern"
		out = append(out, varDecl(kind, srcName, &source))
		var known []string
		for _, p := range b.ObjectProps {
			if p.IsRest {
				continue
			}
			known = append(known, p.Key.Name)
			val := member(ident(srcName), p.Key.Name)
			if p.Default != nil {
				val = withDefault(val, *p.Default)
			}
			out = append(out, expandPatternDecl(kind, p.Value, val)...)
		}
		for _, p := range b.ObjectProps {
			if !p.IsRest {
				continue
			}
			excluded := make([]jsast.Expr, len(known))
			for i, k := range known {
				excluded[i] = str(k)
			}
			restVal := call(ident("__rest"), ident(srcName), jsast.Expr{Data: &jsast.EArray{Items: excluded}})
			out = append(out, varDecl(kind, p.Value.Name, &restVal))
		}
		return out

	case jsast.BArray:
		var out []jsast.Stmt
		srcName := "_pattern"
		out = append(out, varDecl(kind, srcName, &source))
		for i, item := range b.ArrayItems {
			if item.Binding == nil {
				continue
			}
			if item.IsRest {
				restVal := call(member(member(member(ident("Array"), "prototype"), "slice"), "call"), ident(srcName), num(float64(i)))
				out = append(out, expandPatternDecl(kind, *item.Binding, restVal)...)
				continue
			}
			val := computedMember(ident(srcName), num(float64(i)))
			if item.Default != nil {
				val = withDefault(val, *item.Default)
			}
			out = append(out, expandPatternDecl(kind, *item.Binding, val)...)
		}
		return out
	}
	return nil
}

// withDefault wraps value so an undefined read falls back to def:
// "(value) === void 0 ? def : (value)" via a conditional expression.
func withDefault(value, def jsast.Expr) jsast.Expr {
	test := jsast.Expr{Data: &jsast.EBinary{Op: jsast.BinStrictEq, Left: value,
		Right: jsast.Expr{Data: &jsast.EUnary{Op: jsast.UnVoid, Value: num(0)}}}}
	return jsast.Expr{Data: &jsast.ECond{Test: test, Cons: def, Alt: value}}
}

// blockScopingRewriter lowers "let"/"const" to "var". A faithful lowering
// also renames a per-iteration loop binding so closures created in
// different loop iterations capture distinct values (esbuild's
// lowerUsingDeclarations / block-scope-to-function-scope renamer); this
// core has no symbol table feeding the composer (§1 scopes that to the
// external parser), so this stage performs the structural var-ification
// only, leaving per-iteration capture semantics to the host if it needs
// them.
type blockScopingRewriter struct{}

func (blockScopingRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		StmtFn: func(s jsast.Stmt) jsast.Stmt {
			if decl, ok := s.Data.(*jsast.SVarDecl); ok && decl.Kind != jsast.VarVar {
				decl.Kind = jsast.VarVar
			}
			return s
		},
	}
	return jsast.WalkModule(m, v)
}
