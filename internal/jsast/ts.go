package jsast

import "github.com/tscore/tscore/internal/logger"

// TsType is a type annotation node. Per §4.2, the analyzer only handles the
// eight variants below; any other shape (array-type syntax, union syntax,
// mapped/conditional types, ...) is outside this AST schema and would
// surface as an Unimplemented diagnostic if the external parser ever
// produced one here.
type TsType struct {
	Loc  logger.Loc
	Data T
}

type T interface{ isTsType() }

func (*TKeyword) isTsType()         {}
func (*TLit) isTsType()             {}
func (*TTypeLit) isTsType()         {}
func (*TTypeRef) isTsType()         {}
func (*TIndexedAccess) isTsType()   {}
func (*TFnType) isTsType()          {}
func (*TConstructorType) isTsType() {}
func (*TTypeQuery) isTsType()       {}

type KeywordKind uint8

const (
	KwAny KeywordKind = iota
	KwUndefined
	KwNull
	KwVoid
	KwNumber
	KwString
	KwBoolean
	KwNever
	KwThis
)

func (k KeywordKind) String() string {
	switch k {
	case KwAny:
		return "any"
	case KwUndefined:
		return "undefined"
	case KwNull:
		return "null"
	case KwVoid:
		return "void"
	case KwNumber:
		return "number"
	case KwString:
		return "string"
	case KwBoolean:
		return "boolean"
	case KwNever:
		return "never"
	case KwThis:
		return "this"
	default:
		return "unknown"
	}
}

type TKeyword struct{ Kind KeywordKind }

type LitKind uint8

const (
	LitBool LitKind = iota
	LitNum
	LitStr
)

// TLit is a literal type, e.g. `true`, `42`, `"x"`.
type TLit struct {
	Kind LitKind
	Bool bool
	Num  float64
	Str  string
}

type MemberKind uint8

const (
	MemberProperty MemberKind = iota
	MemberCallSignature
	MemberConstructSignature
)

// TypeMember is one member of a TTypeLit: a property signature or a
// call/construct signature.
type TypeMember struct {
	Kind       MemberKind
	Key        string // meaningful for MemberProperty
	Optional   bool
	Readonly   bool
	ValueType  *TsType  // MemberProperty's declared type, nil if uninferred
	Params     []Param  // MemberCallSignature / MemberConstructSignature
	ReturnType *TsType  // MemberCallSignature / MemberConstructSignature
}

// TTypeLit is an object type literal / the public shape esbuild derives
// from a class (see type_of_class in §4.2).
type TTypeLit struct{ Members []TypeMember }

// TTypeRef is a (possibly qualified) reference to a named type, e.g.
// `Foo`, `NS.Foo`, or a generic instantiation `Array<string>`.
type TTypeRef struct {
	Name   []string
	Params []TsType
}

// TIndexedAccess is `Obj[Index]`, e.g. the type produced by computed member
// access in the analyzer.
type TIndexedAccess struct {
	Obj   TsType
	Index TsType
}

type TFnType struct {
	Params     []Param
	ReturnType TsType
}

type TConstructorType struct {
	Params     []Param
	ReturnType TsType
}

// TTypeQuery is `typeof expr` used in type position, e.g. `typeof someVar`.
type TTypeQuery struct{ Name []string }
