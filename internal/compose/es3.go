package compose

import "github.com/tscore/tscore/internal/jsast"

// propertyLiteralsRewriter is a no-op at this AST layer: ES3's restriction
// is that an object literal key spelled as a reserved word must be quoted
// ("var o = {\"class\": 1}"), which is a printer/quoting concern (out of
// scope per §1 - "source span bookkeeping... diagnostic presentation" and,
// by the same reasoning, the external printer owns key quoting). jsast's
// PropertyKey carries a bare Go string either way, so there is no
// structural difference for this stage to produce; it still participates
// in composition (and the debug trace) so its enablement is visible.
type propertyLiteralsRewriter struct{}

func (propertyLiteralsRewriter) Apply(m jsast.Module) jsast.Module { return m }

// memberExpressionLiteralsRewriter converts a dotted member access whose
// property name is an ES3-reserved word ("obj.class") into the equivalent
// bracket form ("obj[\"class\"]"), since ES3 parsers reject a reserved word
// immediately after ".".
type memberExpressionLiteralsRewriter struct{}

func (memberExpressionLiteralsRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			mem, ok := e.Data.(*jsast.EMember)
			if !ok || mem.Computed != nil {
				return e
			}
			if reservedWordsES3[mem.Prop] {
				toBracketAccess(mem)
			}
			return e
		},
	}
	return jsast.WalkModule(m, v)
}

// reservedWordsRewriter is MemberExpressionLiterals' sibling for the
// specific "import" identifier collision case: an ES3 host that lowers
// dotted ".import" member access would otherwise also rewrite the operand
// of a dynamic "import(...)" call if this core represented it as an
// ordinary member+call; preserveImport (wired from Config.DynamicImport per
// §4.1's "ReservedWords(preserve_import=dynamic_import)") skips "import"
// when the host still needs to recognize dynamic import call sites
// downstream.
type reservedWordsRewriter struct{ preserveImport bool }

func (r reservedWordsRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			mem, ok := e.Data.(*jsast.EMember)
			if !ok || mem.Computed != nil {
				return e
			}
			if mem.Prop == "import" && r.preserveImport {
				return e
			}
			if reservedWordsES3[mem.Prop] {
				toBracketAccess(mem)
			}
			return e
		},
	}
	return jsast.WalkModule(m, v)
}
