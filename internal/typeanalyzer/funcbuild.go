package typeanalyzer

import "github.com/tscore/tscore/internal/jsast"

// functionType builds the TFnType for an arrow or function expression
// (§4.2): declared parameters pass through as-is, and the return type is
// the declared annotation if present, else inferred from the body,
// defaulting to undefined when no return statements are found.
func functionType(ctx *Context, fn *jsast.Fn) Type {
	ret := functionReturnType(ctx, fn)
	return Type{
		Kind: KindSimple,
		TsType: jsast.TsType{
			Data: &jsast.TFnType{Params: fn.Params, ReturnType: ret},
		},
		Owned: true,
	}
}

func functionReturnType(ctx *Context, fn *jsast.Fn) jsast.TsType {
	if fn.ReturnType != nil {
		return *fn.ReturnType
	}
	if fn.ExprBody != nil {
		if t, err := TypeOf(ctx, *fn.ExprBody); err == nil {
			return typeToTsType(t)
		}
		return typeToTsType(AnyType())
	}
	if t, ok := inferReturnType(ctx, fn.Body); ok {
		return typeToTsType(t)
	}
	return typeToTsType(UndefinedType())
}

// typeOfClass builds the public TypeLit for a class expression (§4.2):
// properties become PropertySignature members, the constructor (if any)
// becomes a ConstructSignatureDecl; methods, index signatures, and private
// members are elided from the public type, matching a TS class's
// "instance type" shape as seen from the outside.
func typeOfClass(ctx *Context, class *jsast.Class) Type {
	var members []jsast.TypeMember
	for _, m := range class.Members {
		if m.IsPrivate {
			continue
		}
		switch m.Kind {
		case jsast.ClassProperty:
			members = append(members, jsast.TypeMember{
				Kind:      jsast.MemberProperty,
				Key:       m.Key.Name,
				Optional:  m.Optional,
				Readonly:  m.Readonly,
				ValueType: classPropertyType(ctx, m),
			})
		case jsast.ClassConstructor:
			ret := classInstanceType(class)
			members = append(members, jsast.TypeMember{
				Kind:       jsast.MemberConstructSignature,
				Params:     m.Fn.Params,
				ReturnType: &ret,
			})
		// Methods, getters/setters, and index signatures are intentionally
		// not surfaced: §4.2 says they're elided from the public type this
		// core computes.
		default:
			continue
		}
	}
	return Type{Kind: KindSimple, TsType: jsast.TsType{Data: &jsast.TTypeLit{Members: members}}, Owned: true}
}

func classPropertyType(ctx *Context, m jsast.ClassMember) *jsast.TsType {
	if m.ValueType != nil {
		return m.ValueType
	}
	if m.Value != nil {
		if t, err := TypeOf(ctx, *m.Value); err == nil {
			ts := typeToTsType(t)
			return &ts
		}
	}
	ts := typeToTsType(AnyType())
	return &ts
}

// classInstanceType names the constructed instance by the class's own name
// where available, falling back to an anonymous object type.
func classInstanceType(class *jsast.Class) jsast.TsType {
	if class.Name != nil {
		return jsast.TsType{Data: &jsast.TTypeRef{Name: []string{*class.Name}}}
	}
	return jsast.TsType{Data: &jsast.TTypeLit{}}
}
