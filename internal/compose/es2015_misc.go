package compose

import (
	"strings"

	"github.com/tscore/tscore/internal/jsast"
)

// stickyRegexRewriter strips the "y" (sticky) flag from a regex literal,
// since pre-ES2015 engines don't recognize it and would otherwise throw a
// SyntaxError parsing the literal itself.
type stickyRegexRewriter struct{}

func (stickyRegexRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			re, ok := e.Data.(*jsast.ERegExp)
			if !ok {
				return e
			}
			re.Value = stripRegexFlag(re.Value, 'y')
			return e
		},
	}
	return jsast.WalkModule(m, v)
}

// stripRegexFlag removes flag from the trailing flag section of a regex
// literal source (e.g. "/abc/gy" -> "/abc/g"); the literal body before the
// final "/" is left untouched.
func stripRegexFlag(src string, flag byte) string {
	last := strings.LastIndexByte(src, '/')
	if last < 0 || last == len(src)-1 {
		return src
	}
	body, flags := src[:last+1], src[last+1:]
	flags = strings.ReplaceAll(flags, string(flag), "")
	return body + flags
}

// typeOfSymbolRewriter guards a "typeof x === \"symbol\"" (or !==) check
// with an additional "x instanceof Symbol" test, since a core-js Symbol
// polyfill's values are objects whose typeof never reports "symbol" - the
// same compatibility gap esbuild's TypeOfSymbol feature (table.go) flags by
// name.
type typeOfSymbolRewriter struct{}

func (typeOfSymbolRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			bin, ok := e.Data.(*jsast.EBinary)
			if !ok || (bin.Op != jsast.BinStrictEq && bin.Op != jsast.BinStrictNe) {
				return e
			}
			operand, matched := matchTypeofSymbol(bin.Left, bin.Right)
			if !matched {
				return e
			}
			guard := jsast.Expr{Data: &jsast.EBinary{Op: jsast.BinInstanceof, Left: operand, Right: ident("Symbol")}}
			if bin.Op == jsast.BinStrictNe {
				// e reads "typeof x !== 'symbol'"; also require it isn't a
				// polyfilled Symbol instance.
				return jsast.Expr{Data: &jsast.EBinary{Op: jsast.BinLogicalAnd, Left: e,
					Right: jsast.Expr{Data: &jsast.EUnary{Op: jsast.UnNot, Value: guard}}}}
			}
			return jsast.Expr{Data: &jsast.EBinary{Op: jsast.BinLogicalOr, Left: e, Right: guard}}
		},
	}
	return jsast.WalkModule(m, v)
}

func matchTypeofSymbol(left, right jsast.Expr) (jsast.Expr, bool) {
	if un, ok := left.Data.(*jsast.EUnary); ok && un.Op == jsast.UnTypeof {
		if s, ok := right.Data.(*jsast.EString); ok && s.Value == "symbol" {
			return un.Value, true
		}
	}
	if un, ok := right.Data.(*jsast.EUnary); ok && un.Op == jsast.UnTypeof {
		if s, ok := left.Data.(*jsast.EString); ok && s.Value == "symbol" {
			return un.Value, true
		}
	}
	return jsast.Expr{}, false
}

// spreadRewriter lowers array-literal and call-argument spread to
// ".concat(...)" / ".apply(...)" calls. The loose flag (§4.1's
// "Spread(loose)") is carried but not read: in both modes every spread
// target is treated as array-like, and no iterator-protocol form is
// emitted for non-array iterables.
type spreadRewriter struct{ loose bool }

func (r spreadRewriter) Apply(m jsast.Module) jsast.Module {
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			switch data := e.Data.(type) {
			case *jsast.EArray:
				if hasSpreadItem(data.Items) {
					return lowerArraySpread(data.Items)
				}
			case *jsast.ECall:
				if hasSpreadArgs(data.Args) {
					return lowerCallSpread(data)
				}
			}
			return e
		},
	}
	return jsast.WalkModule(m, v)
}

func hasSpreadItem(items []jsast.Expr) bool {
	for _, it := range items {
		if _, ok := it.Data.(*jsast.ESpread); ok {
			return true
		}
	}
	return false
}

func hasSpreadArgs(args []jsast.Expr) bool {
	return hasSpreadItem(args)
}

// lowerArraySpread turns "[1, ...a, 2]" into "[1].concat(a, [2])",
// coalescing adjacent plain items into one array literal argument the same
// way lowerObjectSpread coalesces adjacent object properties.
func lowerArraySpread(items []jsast.Expr) jsast.Expr {
	var args []jsast.Expr
	var run []jsast.Expr
	flush := func() {
		if len(run) > 0 {
			args = append(args, jsast.Expr{Data: &jsast.EArray{Items: run}})
			run = nil
		}
	}
	for _, it := range items {
		if sp, ok := it.Data.(*jsast.ESpread); ok {
			flush()
			args = append(args, sp.Value)
			continue
		}
		run = append(run, it)
	}
	flush()
	if len(args) == 0 {
		return jsast.Expr{Data: &jsast.EArray{}}
	}
	head, rest := args[0], args[1:]
	if len(rest) == 0 {
		return head
	}
	return call(member(head, "concat"), rest...)
}

// lowerCallSpread turns "f(a, ...b, c)" into
// "f.apply(void 0, [a].concat(b, [c]))"; a member-call callee ("o.f(...)")
// keeps its receiver via "o.f.apply(o, ...)" so "this" binds correctly.
func lowerCallSpread(c *jsast.ECall) jsast.Expr {
	argsArray := lowerArraySpread(c.Args)
	if mem, ok := c.Callee.Data.(*jsast.EMember); ok {
		return call(member(c.Callee, "apply"), mem.Obj, argsArray)
	}
	return call(member(c.Callee, "apply"), jsast.Expr{Data: &jsast.EUnary{Op: jsast.UnVoid, Value: num(0)}}, argsArray)
}
