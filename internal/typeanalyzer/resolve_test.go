package typeanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tscore/tscore/internal/jsast"
)

func TestRequireCallResolvesImport(t *testing.T) {
	ctx := NewContext("test.ts")
	ctx.ResolvedImports["lodash"] = StringType()

	call := jsast.Expr{Data: &jsast.ECall{
		Callee: ident("require"),
		Args:   []jsast.Expr{str("lodash")},
	}}
	ty, err := TypeOf(ctx, call)
	require.Nil(t, err)
	assert.True(t, ty.IsKeyword(jsast.KwString))
}

func TestBareRequireIdentifierPanics(t *testing.T) {
	ctx := NewContext("test.ts")
	assert.Panics(t, func() {
		_, _ = TypeOf(ctx, ident("require"))
	})
}

func TestExpandFollowsAliasChain(t *testing.T) {
	ctx := NewContext("test.ts")
	ctx.Scope.DeclareAlias("B", NumberType())
	ctx.Scope.DeclareAlias("A", Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"B"}}}))

	ty, err := expand(ctx, Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"A"}}}))
	require.Nil(t, err)
	assert.True(t, ty.IsKeyword(jsast.KwNumber))
}

func TestExpandCyclicAliasIsUnimplemented(t *testing.T) {
	ctx := NewContext("test.ts")
	ctx.Scope.DeclareAlias("A", Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"B"}}}))
	ctx.Scope.DeclareAlias("B", Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"A"}}}))

	_, err := expand(ctx, Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"A"}}}))
	require.NotNil(t, err)
	assert.Equal(t, Unimplemented, err.Kind)
}

func TestExpandBuiltinGenericPassesThrough(t *testing.T) {
	ctx := NewContext("test.ts")
	ref := Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"Partial"}, Params: []jsast.TsType{
		{Data: &jsast.TKeyword{Kind: jsast.KwString}},
	}}})
	ty, err := expand(ctx, ref)
	require.Nil(t, err)
	assert.True(t, EqIgnoreSpan(ty, ref))
}

func TestMemberAccessProducesIndexedAccess(t *testing.T) {
	ctx := NewContext("test.ts")
	ctx.Scope.Declare("obj", Simple(jsast.TsType{Data: &jsast.TTypeLit{}}))

	expr := jsast.Expr{Data: &jsast.EMember{Obj: ident("obj"), Prop: "field"}}
	ty, err := TypeOf(ctx, expr)
	require.Nil(t, err)
	require.Equal(t, KindSimple, ty.Kind)
	idx, ok := ty.TsType.Data.(*jsast.TIndexedAccess)
	require.True(t, ok, "non-enum member access must be an indexed access type")
	kw, ok := idx.Index.Data.(*jsast.TKeyword)
	require.True(t, ok)
	assert.Equal(t, jsast.KwString, kw.Kind)
}

func TestComputedMemberAccessUsesIndexExpressionType(t *testing.T) {
	ctx := NewContext("test.ts")
	ctx.Scope.Declare("obj", Simple(jsast.TsType{Data: &jsast.TTypeLit{}}))

	idx := num(0)
	expr := jsast.Expr{Data: &jsast.EMember{Obj: ident("obj"), Computed: &idx}}
	ty, err := TypeOf(ctx, expr)
	require.Nil(t, err)
	access, ok := ty.TsType.Data.(*jsast.TIndexedAccess)
	require.True(t, ok)
	lit, ok := access.Index.Data.(*jsast.TLit)
	require.True(t, ok)
	assert.Equal(t, jsast.LitNum, lit.Kind)
}

func TestObjectLiteralBecomesTypeLit(t *testing.T) {
	ctx := NewContext("test.ts")
	obj := jsast.Expr{Data: &jsast.EObject{Properties: []jsast.Property{
		{Kind: jsast.PropertyInit, Key: jsast.PropertyKey{Name: "a"}, Value: &jsast.Expr{Data: &jsast.ENumber{Value: 1}}},
		{Kind: jsast.PropertyShorthand, Key: jsast.PropertyKey{Name: "b"}},
	}}}
	ty, err := TypeOf(ctx, obj)
	require.Nil(t, err)
	lit, ok := ty.AsTypeLit()
	require.True(t, ok)
	require.Len(t, lit.Members, 2)
	assert.Equal(t, "a", lit.Members[0].Key)
	assert.Equal(t, "b", lit.Members[1].Key)
	for _, m := range lit.Members {
		assert.Equal(t, jsast.MemberProperty, m.Kind)
		assert.Nil(t, m.ValueType)
	}
}

func TestObjectSpreadIsUnimplemented(t *testing.T) {
	ctx := NewContext("test.ts")
	obj := jsast.Expr{Data: &jsast.EObject{Properties: []jsast.Property{
		{Kind: jsast.PropertySpread, Value: &jsast.Expr{Data: &jsast.EIdentifier{Name: "rest"}}},
	}}}
	_, err := TypeOf(ctx, obj)
	require.NotNil(t, err)
	assert.Equal(t, Unimplemented, err.Kind)
}

func TestArraySpreadIsUnimplemented(t *testing.T) {
	ctx := NewContext("test.ts")
	arr := jsast.Expr{Data: &jsast.EArray{Items: []jsast.Expr{
		{Data: &jsast.ESpread{Value: ident("xs")}},
	}}}
	_, err := TypeOf(ctx, arr)
	require.NotNil(t, err)
	assert.Equal(t, Unimplemented, err.Kind)
}

func TestArrayHoleContributesUndefined(t *testing.T) {
	ctx := NewContext("test.ts")
	arr := jsast.Expr{Data: &jsast.EArray{Items: []jsast.Expr{num(1), {}}}}
	ty, err := TypeOf(ctx, arr)
	require.Nil(t, err)
	require.Equal(t, KindArray, ty.Kind)
	require.Equal(t, KindUnion, ty.Elem.Kind)
	assert.Len(t, ty.Elem.Members, 2)
}

func TestEmptyArrayIsArrayOfAny(t *testing.T) {
	ctx := NewContext("test.ts")
	ty, err := TypeOf(ctx, jsast.Expr{Data: &jsast.EArray{}})
	require.Nil(t, err)
	require.Equal(t, KindArray, ty.Kind)
	assert.True(t, ty.Elem.IsKeyword(jsast.KwAny))
}

func TestFunctionReturnInference(t *testing.T) {
	ctx := NewContext("test.ts")

	// No return statements: inferred undefined.
	bare := &jsast.Fn{Body: []jsast.Stmt{{Data: &jsast.SExpr{Value: num(1)}}}}
	ty := functionType(ctx, bare)
	fn, ok := ty.TsType.Data.(*jsast.TFnType)
	require.True(t, ok)
	kw, ok := fn.ReturnType.Data.(*jsast.TKeyword)
	require.True(t, ok)
	assert.Equal(t, jsast.KwUndefined, kw.Kind)

	// Declared annotation wins over the body.
	annotated := &jsast.Fn{
		ReturnType: &jsast.TsType{Data: &jsast.TKeyword{Kind: jsast.KwString}},
		Body:       []jsast.Stmt{{Data: &jsast.SReturn{}}},
	}
	ty = functionType(ctx, annotated)
	fn = ty.TsType.Data.(*jsast.TFnType)
	kw = fn.ReturnType.Data.(*jsast.TKeyword)
	assert.Equal(t, jsast.KwString, kw.Kind)
}

func TestSequenceYieldsLastOperand(t *testing.T) {
	ctx := NewContext("test.ts")
	seq := jsast.Expr{Data: &jsast.ESeq{Exprs: []jsast.Expr{num(1), str("a")}}}
	ty, err := TypeOf(ctx, seq)
	require.Nil(t, err)
	lit, ok := ty.AsLit()
	require.True(t, ok)
	assert.Equal(t, jsast.LitStr, lit.Kind)
}

func TestAwaitIsUnimplemented(t *testing.T) {
	ctx := NewContext("test.ts")
	_, err := TypeOf(ctx, jsast.Expr{Data: &jsast.EAwait{Value: num(1)}})
	require.NotNil(t, err)
	assert.Equal(t, Unimplemented, err.Kind)
}
