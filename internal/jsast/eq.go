package jsast

// EqIgnoreSpan reports whether two TsType values are structurally equal,
// disregarding the Loc each node carries (the "eq-ignore-span" glossary
// term). It follows the shape of esbuild's own ValuesLookTheSame
// (internal/js_ast/js_ast_helpers.go): one type switch, comparing children
// recursively and bailing to false on any kind or shape mismatch.
func EqIgnoreSpan(a, b TsType) bool {
	switch x := a.Data.(type) {
	case *TKeyword:
		y, ok := b.Data.(*TKeyword)
		return ok && x.Kind == y.Kind

	case *TLit:
		y, ok := b.Data.(*TLit)
		if !ok || x.Kind != y.Kind {
			return false
		}
		switch x.Kind {
		case LitBool:
			return x.Bool == y.Bool
		case LitNum:
			return x.Num == y.Num
		default:
			return x.Str == y.Str
		}

	case *TTypeLit:
		y, ok := b.Data.(*TTypeLit)
		if !ok || len(x.Members) != len(y.Members) {
			return false
		}
		for i := range x.Members {
			if !eqMember(x.Members[i], y.Members[i]) {
				return false
			}
		}
		return true

	case *TTypeRef:
		y, ok := b.Data.(*TTypeRef)
		if !ok || len(x.Name) != len(y.Name) || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Name {
			if x.Name[i] != y.Name[i] {
				return false
			}
		}
		for i := range x.Params {
			if !EqIgnoreSpan(x.Params[i], y.Params[i]) {
				return false
			}
		}
		return true

	case *TIndexedAccess:
		y, ok := b.Data.(*TIndexedAccess)
		return ok && EqIgnoreSpan(x.Obj, y.Obj) && EqIgnoreSpan(x.Index, y.Index)

	case *TFnType:
		y, ok := b.Data.(*TFnType)
		return ok && eqParams(x.Params, y.Params) && EqIgnoreSpan(x.ReturnType, y.ReturnType)

	case *TConstructorType:
		y, ok := b.Data.(*TConstructorType)
		return ok && eqParams(x.Params, y.Params) && EqIgnoreSpan(x.ReturnType, y.ReturnType)

	case *TTypeQuery:
		y, ok := b.Data.(*TTypeQuery)
		if !ok || len(x.Name) != len(y.Name) {
			return false
		}
		for i := range x.Name {
			if x.Name[i] != y.Name[i] {
				return false
			}
		}
		return true
	}
	return false
}

func eqMember(a, b TypeMember) bool {
	if a.Kind != b.Kind || a.Key != b.Key || a.Optional != b.Optional || a.Readonly != b.Readonly {
		return false
	}
	if (a.ValueType == nil) != (b.ValueType == nil) {
		return false
	}
	if a.ValueType != nil && !EqIgnoreSpan(*a.ValueType, *b.ValueType) {
		return false
	}
	if (a.ReturnType == nil) != (b.ReturnType == nil) {
		return false
	}
	if a.ReturnType != nil && !EqIgnoreSpan(*a.ReturnType, *b.ReturnType) {
		return false
	}
	return eqParams(a.Params, b.Params)
}

func eqParams(a, b []Param) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Optional != b[i].Optional || a[i].IsRest != b[i].IsRest {
			return false
		}
		if (a[i].TsType == nil) != (b[i].TsType == nil) {
			return false
		}
		if a[i].TsType != nil && !EqIgnoreSpan(*a[i].TsType, *b[i].TsType) {
			return false
		}
	}
	return true
}
