package typeanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tscore/tscore/internal/jsast"
	"github.com/tscore/tscore/internal/logger"
)

func ident(name string) jsast.Expr {
	return jsast.Expr{Data: &jsast.EIdentifier{Name: name}}
}

func num(v float64) jsast.Expr {
	return jsast.Expr{Data: &jsast.ENumber{Value: v}}
}

func str(v string) jsast.Expr {
	return jsast.Expr{Data: &jsast.EString{Value: v}}
}

// P4: negate(negate(t)) on a boolean literal type is eq_ignore_span-equal;
// negate on a string/number literal yields the boolean literal of its
// truthiness (value != "" / value != 0).
func TestNegateTwiceBoolLiteral(t *testing.T) {
	original := BoolLit(true)
	twice := negate(negate(original))
	assert.True(t, EqIgnoreSpan(original, twice))
}

func TestNegateStringAndNumberLiteralsYieldTruthinessLiteral(t *testing.T) {
	assert.True(t, EqIgnoreSpan(negate(StrLit("x")), BoolLit(true)))
	assert.True(t, EqIgnoreSpan(negate(NumLit(5)), BoolLit(true)))
}

// P5: type_of(array of N identical typed expressions) -> Array{t}, no union.
func TestArrayOfIdenticalElementsNoUnion(t *testing.T) {
	ctx := NewContext("test.ts")
	arr := jsast.Expr{Data: &jsast.EArray{Items: []jsast.Expr{num(1), num(2), num(3)}}}
	ty, err := TypeOf(ctx, arr)
	require.Nil(t, err)
	require.Equal(t, KindArray, ty.Kind)
	assert.True(t, ty.Elem.IsKeyword(jsast.KwNumber))
}

func TestArrayOfMixedElementsIsUnion(t *testing.T) {
	ctx := NewContext("test.ts")
	// [1, "a", 1] -> Array{Union{number, string}} with exactly two members.
	arr := jsast.Expr{Data: &jsast.EArray{Items: []jsast.Expr{num(1), str("a"), num(1)}}}
	ty, err := TypeOf(ctx, arr)
	require.Nil(t, err)
	require.Equal(t, KindArray, ty.Kind)
	require.Equal(t, KindUnion, ty.Elem.Kind)
	assert.Len(t, ty.Elem.Members, 2)
}

// P6: conditional with identical arm types collapses, no union.
func TestConditionalIdenticalArmsNoUnion(t *testing.T) {
	ctx := NewContext("test.ts")
	cond := jsast.Expr{Data: &jsast.ECond{Test: ident("x"), Cons: num(1), Alt: num(1)}}
	ty, err := TypeOf(ctx, cond)
	require.Nil(t, err)
	assert.Equal(t, KindSimple, ty.Kind)
	lit, ok := ty.AsLit()
	require.True(t, ok)
	assert.Equal(t, jsast.LitNum, lit.Kind)
}

func TestConditionalDifferentArmsUnion(t *testing.T) {
	ctx := NewContext("test.ts")
	cond := jsast.Expr{Data: &jsast.ECond{Test: ident("x"), Cons: num(1), Alt: str("a")}}
	ty, err := TypeOf(ctx, cond)
	require.Nil(t, err)
	assert.Equal(t, KindUnion, ty.Kind)
	assert.Len(t, ty.Members, 2)
}

// Scenario 3: typeof 42 === "number" -> boolean.
func TestTypeofComparisonIsBoolean(t *testing.T) {
	ctx := NewContext("test.ts")
	expr := jsast.Expr{Data: &jsast.EBinary{
		Op:   jsast.BinStrictEq,
		Left: jsast.Expr{Data: &jsast.EUnary{Op: jsast.UnTypeof, Value: num(42)}},
		Right: str("number"),
	}}
	ty, err := TypeOf(ctx, expr)
	require.Nil(t, err)
	assert.True(t, ty.IsKeyword(jsast.KwBoolean))
}

// Scenario 5: (x => x+1)(1,2) -> WrongParams{expected: 1..=1, actual: 2}.
func TestCallArityMismatch(t *testing.T) {
	ctx := NewContext("test.ts")
	arrow := jsast.Expr{Data: &jsast.EArrow{Fn: &jsast.Fn{
		Params: []jsast.Param{{Binding: jsast.Binding{Kind: jsast.BIdentifier, Name: "x"}}},
		ExprBody: &jsast.Expr{Data: &jsast.EBinary{Op: jsast.BinAdd, Left: ident("x"), Right: num(1)}},
	}}}
	call := jsast.Expr{Data: &jsast.ECall{Callee: arrow, Args: []jsast.Expr{num(1), num(2)}}}
	_, err := TypeOf(ctx, call)
	require.NotNil(t, err)
	assert.Equal(t, WrongParams, err.Kind)
	assert.Equal(t, 1, err.ExpectedMin)
	assert.Equal(t, 1, err.ExpectedMax)
	assert.Equal(t, 2, err.Actual)
}

func TestUndefinedIdentifier(t *testing.T) {
	ctx := NewContext("test.ts")
	ty, err := TypeOf(ctx, ident("undefined"))
	require.Nil(t, err)
	assert.True(t, ty.IsKeyword(jsast.KwUndefined))
}

func TestUnresolvedIdentifierIsUndefinedSymbol(t *testing.T) {
	ctx := NewContext("test.ts")
	_, err := TypeOf(ctx, ident("totallyUnknownName"))
	require.NotNil(t, err)
	assert.Equal(t, UndefinedSymbol, err.Kind)
}

func TestNonNullAssertionStripsUndefinedFromUnion(t *testing.T) {
	ctx := NewContext("test.ts")
	ctx.Scope.Declare("maybe", NewUnion([]Type{StringType(), UndefinedType()}))
	expr := jsast.Expr{Data: &jsast.ETsNonNull{Value: ident("maybe")}}
	ty, err := TypeOf(ctx, expr)
	require.Nil(t, err)
	assert.True(t, ty.IsKeyword(jsast.KwString))
}

// P7: extract on a union where exactly one member is callable returns that
// member's return type; where none are, UnionError.errors has len == arity.
func TestExtractUnionExactlyOneCallable(t *testing.T) {
	fn := jsast.TsType{Data: &jsast.TFnType{ReturnType: jsast.TsType{Data: &jsast.TKeyword{Kind: jsast.KwString}}}}
	notCallable := jsast.TsType{Data: &jsast.TKeyword{Kind: jsast.KwNumber}}
	union := Type{Kind: KindUnion, Members: []Type{Simple(fn), Simple(notCallable)}}

	ctx := NewContext("test.ts")
	ty, err := extract(ctx, union, callKindCall, nil, nil, fn.Loc)
	require.Nil(t, err)
	assert.True(t, ty.IsKeyword(jsast.KwString))
}

func TestExtractUnionNoneCallable(t *testing.T) {
	union := Type{Kind: KindUnion, Members: []Type{
		Simple(jsast.TsType{Data: &jsast.TKeyword{Kind: jsast.KwNumber}}),
		Simple(jsast.TsType{Data: &jsast.TKeyword{Kind: jsast.KwString}}),
		Simple(jsast.TsType{Data: &jsast.TKeyword{Kind: jsast.KwBoolean}}),
	}}
	ctx := NewContext("test.ts")
	_, err := extract(ctx, union, callKindCall, nil, nil, logger.Loc{})
	require.NotNil(t, err)
	assert.Equal(t, UnionError, err.Kind)
	assert.Len(t, err.Errors, 3)
}

func TestEnumMemberAccessProducesTypeRef(t *testing.T) {
	ctx := NewContext("test.ts")
	ctx.Scope.DeclareEnum("Color", Type{Kind: KindSimple, TsType: jsast.TsType{Data: &jsast.TTypeLit{}}})
	expr := jsast.Expr{Data: &jsast.EMember{Obj: ident("Color"), Prop: "Red"}}
	ty, err := TypeOf(ctx, expr)
	require.Nil(t, err)
	ref, ok := ty.TsType.Data.(*jsast.TTypeRef)
	require.True(t, ok)
	assert.Equal(t, []string{"Color", "Red"}, ref.Name)
}
