package compose

import "github.com/tscore/tscore/internal/jsast"

// classesRewriter lowers a class declaration/expression to the classic
// constructor-function-plus-prototype pattern, the same shape Babel's
// preset-env and esbuild's js_parser_lower_class.go both fall back to for
// targets that predate native "class":
//
//	function Name(...) { SuperClass.call(this, ...); this.prop = v; ... }
//	Name.prototype = Object.create(SuperClass.prototype);  // only with "extends"
//	Name.prototype.constructor = Name;                     // only with "extends"
//	Name.prototype.method = function (...) {...};
//	Name.staticMethod = function (...) {...};
//
// Private members (IsPrivate) are not lowered: they are left out of the
// output entirely. Emulating hard privacy pre-ES2022 needs a WeakMap-keyed
// accessor rewrite, a different and much larger transform than the
// public-shape one this stage performs.
type classesRewriter struct{}

func (classesRewriter) Apply(m jsast.Module) jsast.Module {
	gen := &nameGen{prefix: "_class"}
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			cls, ok := e.Data.(*jsast.EClass)
			if !ok {
				return e
			}
			name := gen.next()
			if cls.Class.Name != nil {
				name = *cls.Class.Name
			}
			stmts := lowerClass(name, cls.Class)
			iife := jsast.Expr{Data: &jsast.ECall{Callee: jsast.Expr{Data: &jsast.EFunction{Fn: &jsast.Fn{
				Body: append(stmts, jsast.Stmt{Data: &jsast.SReturn{Value: ptrExpr(ident(name))}}),
			}}}}}
			return iife
		},
		StmtFn: func(s jsast.Stmt) jsast.Stmt {
			sc, ok := s.Data.(*jsast.SClass)
			if !ok {
				return s
			}
			name := "_anonymousClass"
			if sc.Class.Name != nil {
				name = *sc.Class.Name
			}
			stmts := lowerClass(name, sc.Class)
			return jsast.Stmt{Data: &jsast.SBlock{Stmts: stmts}}
		},
	}
	m = jsast.WalkModule(m, v)
	return expandModule(m, func(s jsast.Stmt) []jsast.Stmt {
		if blk, ok := s.Data.(*jsast.SBlock); ok && blockIsHoistableClass(blk) {
			return blk.Stmts
		}
		return []jsast.Stmt{s}
	})
}

// blockIsHoistableClass reports whether blk was synthesized by the SClass
// case above (its first statement declares the class's own constructor
// function), so the surrounding module/function body can absorb its
// statements directly instead of keeping a pointless extra block scope.
func blockIsHoistableClass(blk *jsast.SBlock) bool {
	if len(blk.Stmts) == 0 {
		return false
	}
	_, ok := blk.Stmts[0].Data.(*jsast.SFunction)
	return ok
}

func lowerClass(name string, c *jsast.Class) []jsast.Stmt {
	ctorFn := findConstructor(c)
	ctorBody := buildConstructorBody(c, ctorFn)

	out := []jsast.Stmt{
		{Data: &jsast.SFunction{Fn: &jsast.Fn{
			Name:   &name,
			Params: ctorParams(ctorFn),
			Body:   ctorBody,
		}}},
	}

	if c.SuperClass != nil {
		out = append(out,
			exprStmt(assign(member(ident(name), "prototype"),
				call(member(ident("Object"), "create"), member(*c.SuperClass, "prototype")))),
			exprStmt(assign(member(member(ident(name), "prototype"), "constructor"), ident(name))),
		)
	}

	for _, mem := range c.Members {
		switch mem.Kind {
		case jsast.ClassMethod:
			if mem.IsPrivate || mem.Key.Computed != nil {
				continue
			}
			target := member(ident(name), mem.Key.Name)
			if !mem.IsStatic {
				target = member(member(ident(name), "prototype"), mem.Key.Name)
			}
			out = append(out, exprStmt(assign(target, jsast.Expr{Data: &jsast.EFunction{Fn: mem.Fn}})))

		case jsast.ClassGetter, jsast.ClassSetter:
			if mem.IsPrivate || mem.Key.Computed != nil {
				continue
			}
			out = append(out, defineAccessor(name, mem))

		case jsast.ClassProperty:
			// Static properties are installed directly on the constructor;
			// instance properties are already folded into the constructor
			// body by buildConstructorBody.
			if mem.IsStatic && !mem.IsPrivate && mem.Key.Computed == nil && mem.Value != nil {
				out = append(out, exprStmt(assign(member(ident(name), mem.Key.Name), *mem.Value)))
			}
		}
	}

	return out
}

func findConstructor(c *jsast.Class) *jsast.Fn {
	for _, m := range c.Members {
		if m.Kind == jsast.ClassConstructor {
			return m.Fn
		}
	}
	return nil
}

func ctorParams(fn *jsast.Fn) []jsast.Param {
	if fn == nil {
		return nil
	}
	return fn.Params
}

// buildConstructorBody assembles the synthesized constructor: the explicit
// constructor body if present (with "super(...)" calls already rewritten to
// "SuperClass.call(this, ...)" by rewriteSuperCalls), otherwise an implicit
// default constructor, with every instance field initializer prepended as
// an assignment statement, exactly where a class field initializer runs in
// real class-fields semantics (before the rest of the constructor body).
func buildConstructorBody(c *jsast.Class, ctorFn *jsast.Fn) []jsast.Stmt {
	var body []jsast.Stmt

	for _, m := range c.Members {
		if m.Kind == jsast.ClassProperty && !m.IsStatic && !m.IsPrivate && m.Key.Computed == nil && m.Value != nil {
			body = append(body, exprStmt(assign(member(jsast.Expr{Data: &jsast.EThis{}}, m.Key.Name), *m.Value)))
		}
	}

	if ctorFn != nil {
		body = append(body, rewriteSuperCalls(ctorFn.Body, c.SuperClass)...)
	} else if c.SuperClass != nil {
		body = append([]jsast.Stmt{exprStmt(call(member(*c.SuperClass, "call"),
			jsast.Expr{Data: &jsast.EThis{}}, jsast.Expr{Data: &jsast.ESpread{Value: jsast.Expr{Data: &jsast.EIdentifier{Name: "arguments"}}}}))}, body...)
	}

	return body
}

// rewriteSuperCalls turns a bare "super(...)" call expression into
// "SuperClass.call(this, ...)"; all other statements pass through
// unchanged.
func rewriteSuperCalls(stmts []jsast.Stmt, superClass *jsast.Expr) []jsast.Stmt {
	if superClass == nil {
		return stmts
	}
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			call2, ok := e.Data.(*jsast.ECall)
			if !ok {
				return e
			}
			if _, isSuper := call2.Callee.Data.(*jsast.ESuper); !isSuper {
				return e
			}
			args := append([]jsast.Expr{{Data: &jsast.EThis{}}}, call2.Args...)
			return jsast.Expr{Loc: e.Loc, Data: &jsast.ECall{Callee: member(*superClass, "call"), Args: args}}
		},
	}
	return jsast.WalkModule(jsast.Module{Stmts: stmts}, v).Stmts
}

// defineAccessor installs a getter/setter pair via Object.defineProperty,
// since a bare assignment can't express an accessor.
func defineAccessor(className string, mem jsast.ClassMember) jsast.Stmt {
	target := member(ident(className), "prototype")
	if mem.IsStatic {
		target = ident(className)
	}
	kind := "get"
	if mem.Kind == jsast.ClassSetter {
		kind = "set"
	}
	descriptor := jsast.Expr{Data: &jsast.EObject{Properties: []jsast.Property{
		{Kind: jsast.PropertyInit, Key: jsast.PropertyKey{Name: kind}, Value: ptrExpr(jsast.Expr{Data: &jsast.EFunction{Fn: mem.Fn}})},
		{Kind: jsast.PropertyInit, Key: jsast.PropertyKey{Name: "configurable"}, Value: ptrExpr(jsast.Expr{Data: &jsast.EBoolean{Value: true}})},
	}}}
	return exprStmt(call(member(ident("Object"), "defineProperty"), target, str(mem.Key.Name), descriptor))
}
