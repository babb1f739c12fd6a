// Package jsast is the AST schema the pass composer and type analyzer both
// operate on. It follows esbuild's internal/js_ast shape: a node is a small
// struct wrapping a source Loc and a tagged interface value (E for
// expressions, S for statements, T for TypeScript type annotations), with
// one concrete type per node kind and a private marker method tying it to
// the interface. Per §3, parsing and span bookkeeping are out of scope — this
// package only defines the shapes a parser would hand to the core.
package jsast

import "github.com/tscore/tscore/internal/logger"

// Expr is an expression node: a location plus the kind-specific payload.
type Expr struct {
	Loc  logger.Loc
	Data E
}

// E is implemented by every expression payload type. The method is never
// called; its only purpose is to make E a closed sum type within this
// package, the same trick esbuild's js_ast.E interface uses.
type E interface{ isExpr() }

func (*EIdentifier) isExpr()     {}
func (*EBoolean) isExpr()        {}
func (*EString) isExpr()         {}
func (*ENumber) isExpr()         {}
func (*ENull) isExpr()           {}
func (*ERegExp) isExpr()         {}
func (*EArray) isExpr()          {}
func (*EObject) isExpr()         {}
func (*ESpread) isExpr()         {}
func (*EParen) isExpr()          {}
func (*ETemplate) isExpr()       {}
func (*EUnary) isExpr()          {}
func (*EBinary) isExpr()         {}
func (*EAssign) isExpr()         {}
func (*ESeq) isExpr()            {}
func (*ECond) isExpr()           {}
func (*ENew) isExpr()            {}
func (*ECall) isExpr()           {}
func (*EMember) isExpr()         {}
func (*EFunction) isExpr()       {}
func (*EArrow) isExpr()          {}
func (*EClass) isExpr()          {}
func (*EMetaProp) isExpr()       {}
func (*EYield) isExpr()          {}
func (*EAwait) isExpr()          {}
func (*EUpdate) isExpr()         {}
func (*ETsAs) isExpr()           {}
func (*ETsTypeCast) isExpr()     {}
func (*ETsNonNull) isExpr()      {}
func (*EThis) isExpr()           {}
func (*ESuper) isExpr()          {}
func (*EImportCall) isExpr()     {}

// EIdentifier is a bare identifier reference. "undefined" and "require" are
// ordinary identifiers at the AST level; the analyzer special-cases their
// names (§4.2).
type EIdentifier struct{ Name string }

type EBoolean struct{ Value bool }
type EString struct{ Value string }
type ENumber struct{ Value float64 }
type ENull struct{}
type ERegExp struct{ Value string }

// EArray is an array literal. A hole is represented by a nil Expr.Data entry
// at that index (zero Expr with Data == nil); a spread element appears as an
// *ESpread.
type EArray struct{ Items []Expr }

type PropertyKind uint8

const (
	PropertyInit PropertyKind = iota
	PropertyShorthand
	PropertyMethod
	PropertyGet
	PropertySet
	PropertySpread
)

// PropertyKey names an object or class member: either a plain identifier-like
// name, or (when Computed is non-nil) an arbitrary computed expression.
type PropertyKey struct {
	Name     string
	Computed *Expr
}

type Property struct {
	Kind  PropertyKind
	Key   PropertyKey
	Value *Expr // the value; for PropertySpread, the spread target
	Fn   *Fn   // non-nil for PropertyMethod/Get/Set
}

type EObject struct{ Properties []Property }

// ESpread wraps the operand of a "...x" spread, used inside EArray.Items,
// ECall.Args, and ENew.Args.
type ESpread struct{ Value Expr }

type EParen struct{ Value Expr }

// ETemplate models a template literal as alternating literal quasis and
// interpolated expressions: len(Quasis) == len(Exprs)+1.
type ETemplate struct {
	Quasis []string
	Exprs  []Expr
}

type UnaryOp uint8

const (
	UnNot UnaryOp = iota // !
	UnTypeof
	UnVoid
	UnNeg // unary -
	UnPos // unary +
	UnBitNot
)

type EUnary struct {
	Op    UnaryOp
	Value Expr
}

type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinExp
	BinLooseEq
	BinLooseNe
	BinStrictEq
	BinStrictNe
	BinLt
	BinLe
	BinGt
	BinGe
	BinLogicalAnd
	BinLogicalOr
	BinNullishCoalescing
	BinInstanceof
	BinIn
)

type EBinary struct {
	Op          BinaryOp
	Left, Right Expr
}

// EAssign is a plain "target = value" assignment. Compound assignment
// operators are out of the analyzer's exercised shape set and are desugared
// by the (external) parser before reaching this core.
type EAssign struct {
	Target Expr
	Value  Expr
}

// ESeq is a non-empty comma-operator sequence.
type ESeq struct{ Exprs []Expr }

type ECond struct {
	Test, Cons, Alt Expr
}

type ENew struct {
	Callee   Expr
	Args     []Expr
	TypeArgs []TsType
}

type ECall struct {
	Callee        Expr
	Args          []Expr
	TypeArgs      []TsType
	OptionalChain bool
}

// EMember is "obj.prop" or "obj[prop]". Computed is nil for the dotted form;
// when non-nil it holds the bracketed index expression.
type EMember struct {
	Obj      Expr
	Prop     string
	Computed *Expr
}

type EFunction struct{ Fn *Fn }

// EArrow's Fn.Body is nil when the arrow has a concise (expression) body, in
// which case Fn.ExprBody holds that expression.
type EArrow struct{ Fn *Fn }

type EClass struct{ Class *Class }

type MetaPropKind uint8

const (
	MetaNewTarget MetaPropKind = iota
	MetaImportMeta
)

type EMetaProp struct{ Kind MetaPropKind }

// EYield's Arg is nil for a bare "yield".
type EYield struct {
	Arg      *Expr
	Delegate bool
}

type EAwait struct{ Value Expr }

type UpdateOp uint8

const (
	UpdateIncrement UpdateOp = iota
	UpdateDecrement
)

type EUpdate struct {
	Op     UpdateOp
	Prefix bool
	Value  Expr
}

// ETsAs is "x as T".
type ETsAs struct {
	Value Expr
	Type  TsType
}

// ETsTypeCast is the legacy "<T>x" angle-bracket cast.
type ETsTypeCast struct {
	Value Expr
	Type  TsType
}

// ETsNonNull is "x!".
type ETsNonNull struct{ Value Expr }

type EThis struct{}
type ESuper struct{}

// EImportCall is a dynamic "import(specifier)" expression.
type EImportCall struct{ Arg Expr }
