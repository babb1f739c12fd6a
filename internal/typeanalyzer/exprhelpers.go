package typeanalyzer

import (
	"github.com/tscore/tscore/internal/jsast"
	"github.com/tscore/tscore/internal/logger"
)

// typeOfArray implements the array-literal rule (§4.2): a hole contributes
// undefined, spread elements are unsupported, and the element type is the
// generalized, deduplicated union of every element's type.
func typeOfArray(ctx *Context, e *jsast.EArray) (Type, *Error) {
	var elems []Type
	for _, item := range e.Items {
		if item.Data == nil {
			elems = append(elems, UndefinedType())
			continue
		}
		if spread, ok := item.Data.(*jsast.ESpread); ok {
			return Type{}, NewUnimplemented(spread.Value.Loc, "array spread elements", ctx.Path)
		}
		t, err := TypeOf(ctx, item)
		if err != nil {
			return Type{}, err
		}
		elems = append(elems, generalizeLit(t))
	}

	switch len(elems) {
	case 0:
		return NewArray(AnyType()), nil
	default:
		deduped := dedupeTypes(elems)
		if len(deduped) == 1 {
			return NewArray(deduped[0]), nil
		}
		return NewArray(NewUnion(deduped)), nil
	}
}

// typeOfObject implements the object-literal rule (§4.2): one
// PropertySignature per non-spread property, no type annotation or
// initializer recorded on the member (only the key matters to the public
// type this core computes). A spread property is unsupported.
func typeOfObject(ctx *Context, loc logger.Loc, e *jsast.EObject) (Type, *Error) {
	var members []jsast.TypeMember
	for _, p := range e.Properties {
		if p.Kind == jsast.PropertySpread {
			return Type{}, NewUnimplemented(loc, "object spread properties", ctx.Path)
		}
		key := p.Key.Name
		if p.Key.Computed != nil {
			key = "[computed]"
		}
		members = append(members, jsast.TypeMember{Kind: jsast.MemberProperty, Key: key})
	}
	return Type{Kind: KindSimple, TsType: jsast.TsType{Loc: loc, Data: &jsast.TTypeLit{Members: members}}, Owned: true}, nil
}

// typeOfUnary implements the three unary rules the analyzer handles: "!"
// (negate), "typeof" (always string), and "void" (always undefined). Any
// other unary operator (numeric negation, bitwise not, ...) falls outside
// the enumerated construct set and surfaces as Unimplemented.
func typeOfUnary(ctx *Context, loc logger.Loc, e *jsast.EUnary) (Type, *Error) {
	switch e.Op {
	case jsast.UnNot:
		inner, err := TypeOf(ctx, e.Value)
		if err != nil {
			return Type{}, err
		}
		return negate(inner), nil
	case jsast.UnTypeof:
		return StringType(), nil
	case jsast.UnVoid:
		return UndefinedType(), nil
	default:
		return Type{}, NewUnimplemented(loc, "unary operator outside !/typeof/void", ctx.Path)
	}
}

// typeOfBinary implements the logical, arithmetic, and comparison rules
// (§4.2). Full control-flow narrowing of && / || is a declared non-goal;
// here they simply yield the right operand's type.
func typeOfBinary(ctx *Context, loc logger.Loc, e *jsast.EBinary) (Type, *Error) {
	switch e.Op {
	case jsast.BinLogicalAnd, jsast.BinLogicalOr:
		return TypeOf(ctx, e.Right)

	case jsast.BinSub:
		return NumberType(), nil

	case jsast.BinStrictEq, jsast.BinStrictNe, jsast.BinLooseEq, jsast.BinLooseNe,
		jsast.BinLt, jsast.BinLe, jsast.BinGt, jsast.BinGe:
		return BooleanType(), nil

	default:
		return Type{}, NewUnimplemented(loc, "binary operator outside logical/comparison/minus", ctx.Path)
	}
}
