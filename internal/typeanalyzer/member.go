package typeanalyzer

import "github.com/tscore/tscore/internal/jsast"

// memberType implements the `obj.prop` / `obj[prop]` rule (§4.2 and the
// "enum-in-member" design note in §9): member access on an identifier that
// resolves to an Enum synthesizes a qualified TypeRef; every other object
// shape produces an IndexedAccessType. This asymmetry is intentional — it
// is what preserves nominal enum types across member access.
func memberType(ctx *Context, m *jsast.EMember) (Type, *Error) {
	if ident, ok := m.Obj.Data.(*jsast.EIdentifier); ok && ctx.Scope.IsEnum(ident.Name) {
		return Type{
			Kind:   KindSimple,
			TsType: jsast.TsType{Data: &jsast.TTypeRef{Name: []string{ident.Name, m.Prop}}},
			Owned:  true,
		}, nil
	}

	objType, err := TypeOf(ctx, m.Obj)
	if err != nil {
		return Type{}, err
	}

	var indexType Type
	if m.Computed != nil {
		indexType, err = TypeOf(ctx, *m.Computed)
		if err != nil {
			return Type{}, err
		}
	} else {
		indexType = StringType()
	}

	return Type{
		Kind: KindSimple,
		TsType: jsast.TsType{
			Data: &jsast.TIndexedAccess{Obj: typeToTsType(objType), Index: typeToTsType(indexType)},
		},
		Owned: true,
	}, nil
}

// typeToTsType best-effort-embeds an analyzer Type inside a TsType node, for
// the places where the AST schema wants a TsType but the analyzer has
// already produced its own richer Type: IndexedAccessType's operands here,
// and the inferred return and class property types built in funcbuild.go.
// Array and Union have no dedicated TsType variant in this core's fixed set
// (§4.2), so they're represented as a TypeRef named "Array" or "Union" the
// same way a generic instantiation is. expand does not resolve those names
// unless the scope declares them, so a type that goes through this
// conversion and is later expanded yields an Unimplemented error.
func typeToTsType(t Type) jsast.TsType {
	switch t.Kind {
	case KindSimple:
		return t.TsType
	case KindArray:
		return jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"Array"}, Params: []jsast.TsType{typeToTsType(*t.Elem)}}}
	case KindEnum:
		return jsast.TsType{Data: &jsast.TTypeRef{Name: []string{t.EnumRef}}}
	case KindUnion:
		params := make([]jsast.TsType, len(t.Members))
		for i, m := range t.Members {
			params[i] = typeToTsType(m)
		}
		return jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"Union"}, Params: params}}
	default:
		return jsast.TsType{Data: &jsast.TKeyword{Kind: jsast.KwAny}}
	}
}
