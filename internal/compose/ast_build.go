package compose

import "github.com/tscore/tscore/internal/jsast"

// This file collects small AST-construction helpers shared by the lowering
// stages. Each lowering builds the constructs it needs by hand (no template
// engine, no reparse-from-string step), mirroring how esbuild's lowerings
// build replacement js_ast nodes directly (js_parser_lower.go's
// callRuntime, etc).

func ident(name string) jsast.Expr {
	return jsast.Expr{Data: &jsast.EIdentifier{Name: name}}
}

func member(obj jsast.Expr, prop string) jsast.Expr {
	return jsast.Expr{Data: &jsast.EMember{Obj: obj, Prop: prop}}
}

func computedMember(obj jsast.Expr, index jsast.Expr) jsast.Expr {
	return jsast.Expr{Data: &jsast.EMember{Obj: obj, Computed: &index}}
}

func call(callee jsast.Expr, args ...jsast.Expr) jsast.Expr {
	return jsast.Expr{Data: &jsast.ECall{Callee: callee, Args: args}}
}

func str(s string) jsast.Expr {
	return jsast.Expr{Data: &jsast.EString{Value: s}}
}

func num(n float64) jsast.Expr {
	return jsast.Expr{Data: &jsast.ENumber{Value: n}}
}

func assign(target, value jsast.Expr) jsast.Expr {
	return jsast.Expr{Data: &jsast.EAssign{Target: target, Value: value}}
}

func seq(exprs ...jsast.Expr) jsast.Expr {
	return jsast.Expr{Data: &jsast.ESeq{Exprs: exprs}}
}

func exprStmt(e jsast.Expr) jsast.Stmt {
	return jsast.Stmt{Data: &jsast.SExpr{Value: e}}
}

func varDecl(kind jsast.VarKind, name string, value *jsast.Expr) jsast.Stmt {
	return jsast.Stmt{Data: &jsast.SVarDecl{Kind: kind, Decls: []jsast.Decl{
		{Binding: jsast.Binding{Kind: jsast.BIdentifier, Name: name}, Value: value},
	}}}
}

// nameGen hands out fresh, collision-avoiding identifier names scoped to a
// single Apply call, the same role esbuild's renamer plays for synthesized
// temporaries (internal/renamer), simplified to a monotonic counter since
// this core has no symbol table to consult for collisions.
type nameGen struct {
	prefix string
	n      int
}

func (g *nameGen) next() string {
	g.n++
	if g.n == 1 {
		return g.prefix
	}
	return g.prefix + itoa(g.n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// reservedWordsES3 is the set of words that were reserved (but not always
// used as keywords) prior to ES5, which legacy engines reject as a dotted
// property name — the set esbuild's js_lexer.ReservedWords reports for
// MemberExpressionLiterals/ReservedWords lowering.
var reservedWordsES3 = map[string]bool{
	"abstract": true, "boolean": true, "byte": true, "char": true, "class": true,
	"const": true, "debugger": true, "double": true, "enum": true, "export": true,
	"extends": true, "final": true, "float": true, "goto": true, "implements": true,
	"import": true, "int": true, "interface": true, "long": true, "native": true,
	"package": true, "private": true, "protected": true, "public": true, "short": true,
	"static": true, "super": true, "synchronized": true, "throws": true, "transient": true,
	"volatile": true,
}

// toBracketAccess rewrites a dotted member expression into the equivalent
// computed (bracket) form, in place.
func toBracketAccess(e *jsast.EMember) {
	prop := e.Prop
	e.Prop = ""
	idx := str(prop)
	e.Computed = &idx
}
