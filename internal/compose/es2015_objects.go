package compose

import "github.com/tscore/tscore/internal/jsast"

// duplicateKeysRewriter removes all but the last occurrence of a
// statically-known duplicate key in an object literal. Strict-mode ES5
// throws a SyntaxError on a literal duplicate key that later engines
// quietly let the last write win, so downleveled code must already only
// contain the winning property.
type duplicateKeysRewriter struct{}

func (duplicateKeysRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			obj, ok := e.Data.(*jsast.EObject)
			if !ok {
				return e
			}
			obj.Properties = dedupeProperties(obj.Properties)
			return e
		},
	}
	return jsast.WalkModule(m, v)
}

func dedupeProperties(props []jsast.Property) []jsast.Property {
	lastIndex := map[string]int{}
	for i, p := range props {
		if p.Key.Computed != nil || p.Kind == jsast.PropertySpread || p.Kind == jsast.PropertyGet || p.Kind == jsast.PropertySet {
			continue
		}
		lastIndex[p.Key.Name] = i
	}
	out := make([]jsast.Property, 0, len(props))
	for i, p := range props {
		if p.Key.Computed == nil && p.Kind != jsast.PropertySpread && p.Kind != jsast.PropertyGet && p.Kind != jsast.PropertySet {
			if lastIndex[p.Key.Name] != i {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// shorthandPropertiesRewriter expands "{x}" to "{x: x}"; ES3/ES5 object
// literal grammar has no shorthand form.
type shorthandPropertiesRewriter struct{}

func (shorthandPropertiesRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			obj, ok := e.Data.(*jsast.EObject)
			if !ok {
				return e
			}
			for i := range obj.Properties {
				p := &obj.Properties[i]
				if p.Kind == jsast.PropertyShorthand {
					p.Kind = jsast.PropertyInit
					p.Value = ptrExpr(ident(p.Key.Name))
				}
			}
			return e
		},
	}
	return jsast.WalkModule(m, v)
}

// computedPropertiesRewriter lowers "{[k]: v, ...}" (which ES3/ES5 object
// literal syntax can't express directly) to a comma-sequence that builds
// the object incrementally: "(_obj = {...static props...}, _obj[k] = v,
// _obj)", the same temp-plus-sequence technique esbuild's
// lowerObjectPropertyInPlace uses when a literal can't stay purely
// declarative.
type computedPropertiesRewriter struct{}

func (computedPropertiesRewriter) Apply(m jsast.Module) jsast.Module {
	gen := &nameGen{prefix: "_obj"}
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			obj, ok := e.Data.(*jsast.EObject)
			if !ok || !hasComputedKey(obj) {
				return e
			}
			return lowerComputedObject(obj, gen.next())
		},
	}
	return jsast.WalkModule(m, v)
}

func hasComputedKey(obj *jsast.EObject) bool {
	for _, p := range obj.Properties {
		if p.Key.Computed != nil {
			return true
		}
	}
	return false
}

func lowerComputedObject(obj *jsast.EObject, tempName string) jsast.Expr {
	var statik []jsast.Property
	var exprs []jsast.Expr

	flush := func() {
		if len(statik) > 0 {
			if len(exprs) == 0 {
				exprs = append(exprs, assign(ident(tempName), jsast.Expr{Data: &jsast.EObject{Properties: statik}}))
			} else {
				// The object already exists: add the later static properties
				// to it one by one rather than replacing it.
				for _, sp := range statik {
					if sp.Value != nil {
						exprs = append(exprs, assign(member(ident(tempName), sp.Key.Name), *sp.Value))
					}
				}
			}
			statik = nil
		}
	}

	for _, p := range obj.Properties {
		if p.Key.Computed == nil {
			statik = append(statik, p)
			continue
		}
		flush()
		if len(exprs) == 0 {
			exprs = append(exprs, assign(ident(tempName), jsast.Expr{Data: &jsast.EObject{}}))
		}
		key := *p.Key.Computed
		target := computedMember(ident(tempName), key)
		if p.Value != nil {
			exprs = append(exprs, assign(target, *p.Value))
		}
	}
	flush()
	exprs = append(exprs, ident(tempName))
	return seq(exprs...)
}
