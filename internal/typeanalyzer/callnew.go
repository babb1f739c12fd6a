package typeanalyzer

import (
	"github.com/tscore/tscore/internal/jsast"
	"github.com/tscore/tscore/internal/logger"
)

// callKind distinguishes a `new Foo()` from a `foo()` for extraction
// purposes: they pick different signature kinds out of a TTypeLit and (for
// New) out of a ConstructorType rather than a FnType.
type callKind uint8

const (
	callKindCall callKind = iota
	callKindNew
)

// resolveCallOrNew is the "Call/New extraction" procedure from §4.2: resolve
// the callee first, special-casing `require("lit")` and method calls on an
// object-type-literal member, before falling back to the general extract
// pipeline.
func resolveCallOrNew(ctx *Context, callee jsast.Expr, args []jsast.Expr, typeArgs []jsast.TsType, kind callKind) (Type, *Error) {
	if kind == callKindCall {
		if ident, ok := callee.Data.(*jsast.EIdentifier); ok && ident.Name == "require" && len(args) == 1 {
			if strArg, ok := args[0].Data.(*jsast.EString); ok {
				if t, ok := ctx.ResolvedImports[strArg.Value]; ok {
					return t, nil
				}
				if ctx.Scope.IsEnum(strArg.Value) {
					return NewEnum(strArg.Value), nil
				}
			}
		}

		if member, ok := callee.Data.(*jsast.EMember); ok {
			objType, err := TypeOf(ctx, member.Obj)
			if err != nil {
				return Type{}, err
			}
			if typeLit, ok := objType.AsTypeLit(); ok {
				return resolveMemberCall(typeLit, member.Prop, args, callee.Loc)
			}
			// Any other obj shape falls through to the general extract
			// pipeline below, using the member access's own computed type.
		}
	}

	calleeType, err := TypeOf(ctx, callee)
	if err != nil {
		return Type{}, err
	}
	return extract(ctx, calleeType, kind, args, typeArgs, callee.Loc)
}

// resolveMemberCall implements the "Member-call" rule: gather the object
// type literal's call signatures matching prop by name, then disambiguate
// by arity when more than one matches.
func resolveMemberCall(typeLit *jsast.TTypeLit, prop string, args []jsast.Expr, loc logger.Loc) (Type, *Error) {
	var candidates []jsast.TypeMember
	for _, m := range typeLit.Members {
		if m.Kind == jsast.MemberCallSignature && m.Key == prop {
			candidates = append(candidates, m)
		}
	}

	switch len(candidates) {
	case 0:
		return Type{}, NewNoCallSignature(loc)
	case 1:
		return signatureReturnType(candidates[0]), nil
	default:
		for _, c := range candidates {
			if len(c.Params) == len(args) {
				return signatureReturnType(c), nil
			}
		}
		return Type{}, NewNoCallSignature(loc)
	}
}

func signatureReturnType(m jsast.TypeMember) Type {
	if m.ReturnType != nil {
		return Simple(*m.ReturnType)
	}
	return AnyType()
}

// extract implements §4.2's extract(ty, kind, args, type_args).
func extract(ctx *Context, ty Type, kind callKind, args []jsast.Expr, typeArgs []jsast.TsType, loc logger.Loc) (Type, *Error) {
	expanded, err := expand(ctx, ty)
	if err != nil {
		return Type{}, err
	}

	if expanded.IsKeyword(jsast.KwAny) {
		return AnyType(), nil
	}

	if typeLit, ok := expanded.AsTypeLit(); ok {
		wantKind := jsast.MemberCallSignature
		if kind == callKindNew {
			wantKind = jsast.MemberConstructSignature
		}
		for _, m := range typeLit.Members {
			if m.Kind != wantKind {
				continue
			}
			if t, instErr := tryInstantiate(m.Params, m.ReturnType, args, loc); instErr == nil {
				return t, nil
			}
		}
		return noSignatureError(kind, loc)
	}

	if expanded.Kind == KindSimple {
		switch fn := expanded.TsType.Data.(type) {
		case *jsast.TFnType:
			if kind != callKindCall {
				return noSignatureError(kind, loc)
			}
			return tryInstantiate(fn.Params, &fn.ReturnType, args, loc)
		case *jsast.TConstructorType:
			if kind != callKindNew {
				return noSignatureError(kind, loc)
			}
			return tryInstantiate(fn.Params, &fn.ReturnType, args, loc)
		}
	}

	if expanded.Kind == KindUnion {
		var errs []*Error
		for _, member := range expanded.Members {
			if t, memberErr := extract(ctx, member, kind, args, typeArgs, loc); memberErr == nil {
				return t, nil
			} else {
				errs = append(errs, memberErr)
			}
		}
		return Type{}, NewUnionError(loc, errs)
	}

	return noSignatureError(kind, loc)
}

func noSignatureError(kind callKind, loc logger.Loc) (Type, *Error) {
	if kind == callKindNew {
		return Type{}, NewNoNewSignature(loc)
	}
	return Type{}, NewNoCallSignature(loc)
}

// tryInstantiate implements §4.2's try_instantiate: compute the minimum
// required arity (parameters that are not optional or rest), and fail with
// WrongParams if the call's argument count falls outside that envelope.
// Type parameter substitution is a declared non-goal; typeArgs are accepted
// and ignored by the caller.
func tryInstantiate(params []jsast.Param, returnType *jsast.TsType, args []jsast.Expr, loc logger.Loc) (Type, *Error) {
	required := 0
	hasRest := false
	for _, p := range params {
		if p.IsRest {
			hasRest = true
			continue
		}
		if !p.Optional {
			required++
		}
	}

	max := len(params)
	actual := len(args)
	if actual < required || (!hasRest && actual > max) {
		expectedMax := max
		if hasRest {
			expectedMax = actual // an unbounded upper end never itself fails the check
			if expectedMax < required {
				expectedMax = required
			}
		}
		return Type{}, NewWrongParams(loc, required, expectedMax, actual)
	}

	if returnType != nil {
		return Simple(*returnType), nil
	}
	return AnyType(), nil
}
