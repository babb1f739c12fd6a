package compose

import "github.com/tscore/tscore/internal/jsast"

// objectRestSpreadRewriter lowers object-literal spread ("{...a, b}") to an
// Object.assign call, the same technique esbuild's lowerObjectSpread uses
// (js_parser_lower.go) before it has a native spread to rely on. Object
// rest in a destructuring binding ("const {a, ...rest} = x") is expanded at
// the enclosing var-decl statement into a temporary holding x, one
// declaration per named property, and a "__rest" helper call for the rest.
type objectRestSpreadRewriter struct{}

func (objectRestSpreadRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			obj, ok := e.Data.(*jsast.EObject)
			if !ok || !hasSpreadProperty(obj) {
				return e
			}
			return lowerObjectSpread(obj)
		},
	}
	m = jsast.WalkModule(m, v)
	return expandModule(m, expandObjectRestBindings)
}

func hasSpreadProperty(obj *jsast.EObject) bool {
	for _, p := range obj.Properties {
		if p.Kind == jsast.PropertySpread {
			return true
		}
	}
	return false
}

// lowerObjectSpread turns "{...a, b: 1, ...c}" into
// "Object.assign({}, a, {b: 1}, c)": each run of non-spread properties is
// grouped into its own object literal, and each spread becomes a bare
// argument, preserving left-to-right property precedence exactly as the
// spread/Object.assign semantics require.
func lowerObjectSpread(obj *jsast.EObject) jsast.Expr {
	args := []jsast.Expr{{Data: &jsast.EObject{}}}
	var run []jsast.Property
	flush := func() {
		if len(run) > 0 {
			args = append(args, jsast.Expr{Data: &jsast.EObject{Properties: run}})
			run = nil
		}
	}
	for _, p := range obj.Properties {
		if p.Kind == jsast.PropertySpread {
			flush()
			args = append(args, *p.Value)
			continue
		}
		run = append(run, p)
	}
	flush()
	return call(member(ident("Object"), "assign"), args...)
}

// expandObjectRestBindings handles "const {a, ...rest} = src;" by replacing
// it with "const _source = src; const a = _source.a;" followed by
// "const rest = __rest(_source, [\"a\"]);", since ES3/ES5 targets have
// neither destructuring nor spread to express it directly.
func expandObjectRestBindings(s jsast.Stmt) []jsast.Stmt {
	decl, ok := s.Data.(*jsast.SVarDecl)
	if !ok {
		return []jsast.Stmt{s}
	}

	var out []jsast.Stmt
	changed := false
	for _, d := range decl.Decls {
		if d.Binding.Kind != jsast.BObject || !bindingHasRest(d.Binding) || d.Value == nil {
			out = append(out, jsast.Stmt{Data: &jsast.SVarDecl{Kind: decl.Kind, Decls: []jsast.Decl{d}}})
			continue
		}
		changed = true
		out = append(out, expandObjectRestDecl(decl.Kind, d)...)
	}
	if !changed {
		return []jsast.Stmt{s}
	}
	return out
}

func bindingHasRest(b jsast.Binding) bool {
	for _, p := range b.ObjectProps {
		if p.IsRest {
			return true
		}
	}
	return false
}

func expandObjectRestDecl(kind jsast.VarKind, d jsast.Decl) []jsast.Stmt {
	srcName := "_source"
	src := ident(srcName)
	out := []jsast.Stmt{varDecl(kind, srcName, d.Value)}

	var restName string
	var known []string
	for _, p := range d.Binding.ObjectProps {
		if p.IsRest {
			restName = p.Value.Name
			continue
		}
		known = append(known, p.Key.Name)
		v := member(src, p.Key.Name)
		out = append(out, varDecl(kind, p.Value.Name, &v))
	}
	if restName != "" {
		// __rest mirrors tslib's helper of the same name: copy every own
		// property of src except the ones already destructured by name.
		excluded := make([]jsast.Expr, len(known))
		for i, k := range known {
			excluded[i] = str(k)
		}
		restVal := call(ident("__rest"), src, jsast.Expr{Data: &jsast.EArray{Items: excluded}})
		out = append(out, varDecl(kind, restName, &restVal))
	}
	return out
}

// optionalCatchBindingRewriter gives every "catch { ... }" block (no bound
// parameter) a synthetic binding, since pre-ES2019 engines require one.
type optionalCatchBindingRewriter struct{}

func (optionalCatchBindingRewriter) Apply(m jsast.Module) jsast.Module {
	gen := &nameGen{prefix: "_unused"}
	v := &jsast.Visitor{
		StmtFn: func(s jsast.Stmt) jsast.Stmt {
			t, ok := s.Data.(*jsast.STry)
			if !ok || t.Catch == nil || t.Catch.Binding != nil {
				return s
			}
			b := jsast.Binding{Kind: jsast.BIdentifier, Name: gen.next()}
			t.Catch.Binding = &b
			return s
		},
	}
	return jsast.WalkModule(m, v)
}
