package polyfill

import "github.com/tscore/tscore/internal/jsast"

// usage is what the read-only scan observed in one module: global
// identifiers referenced anywhere (covers both `Promise.resolve` and
// `new Map()`, since the callee of a `new` is an identifier reference
// too), static method accesses on a known global (`Object.assign`), and
// instance-method-looking property names (`xs.includes`). Instance
// methods are recorded by name alone; without full type information the
// scanner can't tell an array's `includes` from a string's, so the
// ruleset maps such a name to every plausible polyfill, matching how
// babel's usage plugin over-approximates.
type usage struct {
	globals   map[string]bool
	statics   map[string]bool // "Object.assign" style, dotted
	instances map[string]bool // bare method name
}

func newUsage() *usage {
	return &usage{
		globals:   map[string]bool{},
		statics:   map[string]bool{},
		instances: map[string]bool{},
	}
}

// scanUsage is the UsageVisitor: a read-only traversal recording every
// polyfill-relevant reference. It reuses the jsast.Visitor walk with hooks
// that return their input unchanged.
func scanUsage(m jsast.Module) *usage {
	u := newUsage()
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			switch data := e.Data.(type) {
			case *jsast.EIdentifier:
				if _, ok := globalRules[data.Name]; ok {
					u.globals[data.Name] = true
				}
			case *jsast.EMember:
				if data.Computed != nil {
					break
				}
				if obj, ok := data.Obj.Data.(*jsast.EIdentifier); ok {
					dotted := obj.Name + "." + data.Prop
					if _, ok := staticRules[dotted]; ok {
						u.statics[dotted] = true
						break
					}
				}
				if _, ok := instanceRules[data.Prop]; ok {
					u.instances[data.Prop] = true
				}
			}
			return e
		},
	}
	jsast.WalkModule(m, v)
	return u
}

// rulesFor flattens the observed uses into the matching ruleset entries.
// The entries come out in map iteration order, which is not fixed;
// CollectSpecifiers sorts the final specifier list.
func rulesFor(u *usage) []rule {
	var out []rule
	for name, r := range globalRules {
		if u.globals[name] {
			out = append(out, r)
		}
	}
	for name, r := range staticRules {
		if u.statics[name] {
			out = append(out, r)
		}
	}
	for name, rs := range instanceRules {
		if u.instances[name] {
			out = append(out, rs...)
		}
	}
	return out
}
