// Package typeanalyzer implements C3: given an analyzer Context (scope
// chain, resolved imports, builtin library view), TypeOf computes the
// static Type of an arbitrary expression, including call/new resolution,
// truthiness narrowing, and type-alias expansion.
package typeanalyzer

import (
	"github.com/tscore/tscore/internal/jsast"
)

// Kind tags which variant of the analyzer's Type sum a value holds (§3's
// data model: Simple(TsType) | Array{elem} | Union{members} | Enum(ref)).
type Kind uint8

const (
	KindSimple Kind = iota
	KindArray
	KindUnion
	KindEnum
)

// Type is the analyzer's own view of a type, distinct from the AST's raw
// TsType: it additionally represents array and union types synthesized by
// the analyzer itself (e.g. from an array literal or a conditional
// expression) rather than parsed from an annotation.
//
// Owned tracks the borrowed-vs-owned distinction from the design notes: a
// Type is "borrowed" when it is a thin wrapper around a TsType node that
// still lives in the AST (Owned == false), and "owned" when the analyzer
// allocated it fresh (a union, an array element type, a literal-type
// wrapper). Go's garbage collector makes the distinction immaterial for
// memory safety, but IntoOwned is kept as the documented, idempotent
// conversion point so callers don't need to reason about which case they're
// in before storing a Type past the current call.
type Type struct {
	Kind Kind

	// KindSimple
	TsType jsast.TsType

	// KindArray
	Elem *Type

	// KindUnion - always has >= 2 distinct members per the invariant in §3;
	// NewUnion enforces this at construction time.
	Members []Type

	// KindEnum
	EnumRef string

	Owned bool
}

// IntoOwned returns an owned copy of t. It is always valid and idempotent:
// calling it again on its own result is a no-op.
func (t Type) IntoOwned() Type {
	t.Owned = true
	return t
}

// Simple wraps a TsType annotation as-is (borrowed: it did not require any
// new allocation beyond the node already in the AST).
func Simple(ts jsast.TsType) Type {
	return Type{Kind: KindSimple, TsType: ts}
}

// Keyword is a convenience constructor for an owned keyword type.
func Keyword(kind jsast.KeywordKind) Type {
	return Type{Kind: KindSimple, TsType: jsast.TsType{Data: &jsast.TKeyword{Kind: kind}}, Owned: true}
}

func AnyType() Type       { return Keyword(jsast.KwAny) }
func UndefinedType() Type { return Keyword(jsast.KwUndefined) }
func NullType() Type      { return Keyword(jsast.KwNull) }
func StringType() Type    { return Keyword(jsast.KwString) }
func NumberType() Type    { return Keyword(jsast.KwNumber) }
func BooleanType() Type   { return Keyword(jsast.KwBoolean) }
func ThisType() Type      { return Keyword(jsast.KwThis) }

func BoolLit(v bool) Type {
	return Type{Kind: KindSimple, TsType: jsast.TsType{Data: &jsast.TLit{Kind: jsast.LitBool, Bool: v}}, Owned: true}
}

func NumLit(v float64) Type {
	return Type{Kind: KindSimple, TsType: jsast.TsType{Data: &jsast.TLit{Kind: jsast.LitNum, Num: v}}, Owned: true}
}

func StrLit(v string) Type {
	return Type{Kind: KindSimple, TsType: jsast.TsType{Data: &jsast.TLit{Kind: jsast.LitStr, Str: v}}, Owned: true}
}

// NewArray builds an owned Array{elem} type.
func NewArray(elem Type) Type {
	return Type{Kind: KindArray, Elem: &elem, Owned: true}
}

// NewEnum builds an owned reference to an enum declaration.
func NewEnum(ref string) Type {
	return Type{Kind: KindEnum, EnumRef: ref, Owned: true}
}

// NewUnion deduplicates members by EqIgnoreSpan and collapses to the single
// remaining member if only one is left, per the invariant that a Union
// always has >= 2 distinct members.
func NewUnion(members []Type) Type {
	deduped := dedupeTypes(members)
	if len(deduped) == 1 {
		return deduped[0]
	}
	return Type{Kind: KindUnion, Members: deduped, Owned: true}
}

func dedupeTypes(types []Type) []Type {
	var out []Type
	for _, t := range types {
		dup := false
		for _, seen := range out {
			if EqIgnoreSpan(t, seen) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

// EqIgnoreSpan extends jsast.EqIgnoreSpan to the analyzer's own Array/Union/
// Enum variants.
func EqIgnoreSpan(a, b Type) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindSimple:
		return jsast.EqIgnoreSpan(a.TsType, b.TsType)
	case KindArray:
		return EqIgnoreSpan(*a.Elem, *b.Elem)
	case KindEnum:
		return a.EnumRef == b.EnumRef
	case KindUnion:
		if len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if !EqIgnoreSpan(a.Members[i], b.Members[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// IsKeyword reports whether t is the Simple keyword type kind.
func (t Type) IsKeyword(kind jsast.KeywordKind) bool {
	if t.Kind != KindSimple {
		return false
	}
	kw, ok := t.TsType.Data.(*jsast.TKeyword)
	return ok && kw.Kind == kind
}

// AsLit returns the underlying TLit data for a Simple literal type.
func (t Type) AsLit() (*jsast.TLit, bool) {
	if t.Kind != KindSimple {
		return nil, false
	}
	lit, ok := t.TsType.Data.(*jsast.TLit)
	return lit, ok
}

// AsTypeLit returns the underlying TTypeLit for a Simple object-type literal.
func (t Type) AsTypeLit() (*jsast.TTypeLit, bool) {
	if t.Kind != KindSimple {
		return nil, false
	}
	lit, ok := t.TsType.Data.(*jsast.TTypeLit)
	return lit, ok
}
