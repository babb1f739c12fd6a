package typeanalyzer

import (
	"fmt"

	"github.com/tscore/tscore/internal/jsast"
)

// expand resolves a TypeRef to the definition it names, and a TypeQuery to
// the type of the identifier it queries (§4.2 / glossary "Expand"). Every
// other shape passes through unchanged. A visited set guards against cyclic
// aliases (§9's design note); hitting a cycle surfaces Unimplemented rather
// than looping.
func expand(ctx *Context, t Type) (Type, *Error) {
	return expandRec(ctx, t, map[string]bool{})
}

func expandRec(ctx *Context, t Type, visited map[string]bool) (Type, *Error) {
	if t.Kind != KindSimple {
		return t, nil
	}

	switch data := t.TsType.Data.(type) {
	case *jsast.TTypeRef:
		if len(data.Name) == 0 {
			return t, nil
		}
		root := data.Name[0]

		if builtinGenerics[root] {
			// Recognized but not expanded in this core (§4.2).
			return t, nil
		}

		if visited[root] {
			return Type{}, NewUnimplemented(t.TsType.Loc, fmt.Sprintf("cyclic type reference %q", root), ctx.Path)
		}
		visited[root] = true

		if resolved, ok := ctx.ResolvedImports[root]; ok {
			return expandRec(ctx, resolved, visited)
		}
		if resolved, ok := ctx.Scope.FindType(root); ok {
			return expandRec(ctx, resolved, visited)
		}
		return Type{}, NewUnimplemented(t.TsType.Loc, fmt.Sprintf("cannot resolve type %q", root), ctx.Path)

	case *jsast.TTypeQuery:
		if len(data.Name) == 0 {
			return Type{}, NewUnimplemented(t.TsType.Loc, "empty type query", ctx.Path)
		}
		return TypeOf(ctx, jsast.Expr{Loc: t.TsType.Loc, Data: &jsast.EIdentifier{Name: data.Name[0]}})

	default:
		return t, nil
	}
}
