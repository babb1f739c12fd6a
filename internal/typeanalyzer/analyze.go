package typeanalyzer

import (
	"github.com/tscore/tscore/internal/jsast"
	"github.com/tscore/tscore/internal/logger"
)

// TypeOf computes the static type of expr under ctx, implementing every
// rule in §4.2 keyed by expression shape. A failing sub-expression
// short-circuits its parent; errors are only aggregated at the union
// extraction boundary (extract, in callnew.go).
func TypeOf(ctx *Context, expr jsast.Expr) (Type, *Error) {
	switch e := expr.Data.(type) {
	case *jsast.EThis:
		return ThisType(), nil

	case *jsast.EIdentifier:
		return typeOfIdentifier(ctx, expr.Loc, e.Name)

	case *jsast.EBoolean:
		return BoolLit(e.Value), nil
	case *jsast.EString:
		return StrLit(e.Value), nil
	case *jsast.ENumber:
		return NumLit(e.Value), nil
	case *jsast.ENull:
		return NullType(), nil
	case *jsast.ERegExp:
		return regExpType(), nil

	case *jsast.EParen:
		return TypeOf(ctx, e.Value)

	case *jsast.EArray:
		return typeOfArray(ctx, e)

	case *jsast.EObject:
		return typeOfObject(ctx, expr.Loc, e)

	case *jsast.ETemplate:
		return StringType(), nil

	case *jsast.EUnary:
		return typeOfUnary(ctx, expr.Loc, e)

	case *jsast.EBinary:
		return typeOfBinary(ctx, expr.Loc, e)

	case *jsast.EAssign:
		return TypeOf(ctx, e.Value)

	case *jsast.ESeq:
		if len(e.Exprs) == 0 {
			return Type{}, NewUnimplemented(expr.Loc, "empty sequence expression", ctx.Path)
		}
		return TypeOf(ctx, e.Exprs[len(e.Exprs)-1])

	case *jsast.ECond:
		cons, err := TypeOf(ctx, e.Cons)
		if err != nil {
			return Type{}, err
		}
		alt, err := TypeOf(ctx, e.Alt)
		if err != nil {
			return Type{}, err
		}
		if EqIgnoreSpan(cons, alt) {
			return cons, nil
		}
		return NewUnion([]Type{cons, alt}), nil

	case *jsast.ENew:
		return resolveCallOrNew(ctx, e.Callee, e.Args, e.TypeArgs, callKindNew)

	case *jsast.ECall:
		if _, ok := e.Callee.Data.(*jsast.ESuper); ok {
			return AnyType(), nil
		}
		return resolveCallOrNew(ctx, e.Callee, e.Args, e.TypeArgs, callKindCall)

	case *jsast.EMember:
		return memberType(ctx, e)

	case *jsast.EFunction:
		return functionType(ctx, e.Fn), nil

	case *jsast.EArrow:
		return functionType(ctx, e.Fn), nil

	case *jsast.EClass:
		return typeOfClass(ctx, e.Class), nil

	case *jsast.EYield:
		return AnyType(), nil

	case *jsast.EUpdate:
		return NumberType(), nil

	case *jsast.ETsAs:
		return Simple(e.Type), nil

	case *jsast.ETsTypeCast:
		return Simple(e.Type), nil

	case *jsast.ETsNonNull:
		inner, err := TypeOf(ctx, e.Value)
		if err != nil {
			return Type{}, err
		}
		return removeFalsy(inner), nil

	case *jsast.EAwait:
		return Type{}, NewUnimplemented(expr.Loc, "await expressions", ctx.Path)

	case *jsast.EMetaProp:
		return Type{}, NewUnimplemented(expr.Loc, "new.target / import.meta", ctx.Path)

	case *jsast.EImportCall:
		return Type{}, NewUnimplemented(expr.Loc, "dynamic import() expressions", ctx.Path)

	case *jsast.ESuper:
		return Type{}, NewUnimplemented(expr.Loc, "bare super reference", ctx.Path)

	default:
		return Type{}, NewUnimplemented(expr.Loc, "unsupported expression kind", ctx.Path)
	}
}

// typeOfIdentifier implements the identifier lookup rule (§4.2): "undefined"
// and "require" are special-cased, then resolved_imports, scope, and
// builtins are tried in that order; a miss is an UndefinedSymbol error.
func typeOfIdentifier(ctx *Context, loc logger.Loc, name string) (Type, *Error) {
	if name == "undefined" {
		return UndefinedType(), nil
	}
	if name == "require" {
		// §4.2: "fatal invariant breach (the rewriter removes these before
		// analysis)". Reaching here means a caller handed the analyzer an
		// AST that still contains a bare `require` reference outside of a
		// require("literal") call, which this core treats as a programming
		// error in the host rather than a recoverable diagnostic.
		panic("typeanalyzer: bare \"require\" identifier reached TypeOf; the host must strip these before analysis")
	}
	if t, ok := ctx.ResolvedImports[name]; ok {
		return t, nil
	}
	if t, ok := ctx.Scope.FindVarType(name); ok {
		return t, nil
	}
	if t, ok := builtinTypes(ctx.Libs, name); ok {
		return t, nil
	}
	return Type{}, NewUndefinedSymbol(loc, name)
}
