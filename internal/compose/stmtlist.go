package compose

import "github.com/tscore/tscore/internal/jsast"

// expandFn maps one statement to a replacement slice of zero or more
// statements. mapStmts recurses into every place jsast.Module holds a
// statement list (module body, block bodies, function bodies, try/catch
// blocks, loop/if bodies) and applies expandFn bottom-up, letting a stage
// turn e.g. one destructuring SVarDecl into several plain assignments
// without hand-rolling that recursion in every lowering.
type expandFn func(jsast.Stmt) []jsast.Stmt

func mapStmts(list []jsast.Stmt, f expandFn) []jsast.Stmt {
	out := make([]jsast.Stmt, 0, len(list))
	for _, s := range list {
		out = append(out, expandOneDeep(s, f)...)
	}
	return out
}

// expandOneDeep first recurses into s's own nested statement lists (so
// nested blocks get expanded too), then applies f to s itself.
func expandOneDeep(s jsast.Stmt, f expandFn) []jsast.Stmt {
	switch data := s.Data.(type) {
	case *jsast.SBlock:
		data.Stmts = mapStmts(data.Stmts, f)
	case *jsast.SIf:
		data.Yes = single(expandOneDeep(data.Yes, f))
		if data.No != nil {
			no := single(expandOneDeep(*data.No, f))
			data.No = &no
		}
	case *jsast.SFor:
		data.Body = single(expandOneDeep(data.Body, f))
	case *jsast.SForOf:
		data.Body = single(expandOneDeep(data.Body, f))
	case *jsast.SForIn:
		data.Body = single(expandOneDeep(data.Body, f))
	case *jsast.SWhile:
		data.Body = single(expandOneDeep(data.Body, f))
	case *jsast.SDoWhile:
		data.Body = single(expandOneDeep(data.Body, f))
	case *jsast.SFunction:
		if data.Fn != nil {
			data.Fn.Body = mapStmts(data.Fn.Body, f)
		}
	case *jsast.STry:
		data.Block = mapStmts(data.Block, f)
		if data.Catch != nil {
			data.Catch.Block = mapStmts(data.Catch.Block, f)
		}
		data.Finally = mapStmts(data.Finally, f)
	case *jsast.SLabel:
		data.Stmt = single(expandOneDeep(data.Stmt, f))
	case *jsast.SSwitch:
		for i := range data.Cases {
			data.Cases[i].Stmts = mapStmts(data.Cases[i].Stmts, f)
		}
	}
	return f(s)
}

// single collapses a replacement slice back to one statement for the
// (common) positions in the grammar that hold exactly one child statement,
// wrapping in a synthetic block when expansion produced more than one.
func single(stmts []jsast.Stmt) jsast.Stmt {
	if len(stmts) == 1 {
		return stmts[0]
	}
	return jsast.Stmt{Data: &jsast.SBlock{Stmts: stmts}}
}

// expandModule applies f across every statement list reachable from m,
// including inside function and arrow bodies found while walking
// expressions.
func expandModule(m jsast.Module, f expandFn) jsast.Module {
	m.Stmts = mapStmts(m.Stmts, f)
	v := &jsast.Visitor{
		ExprFn: func(e jsast.Expr) jsast.Expr {
			switch data := e.Data.(type) {
			case *jsast.EFunction:
				if data.Fn != nil {
					data.Fn.Body = mapStmts(data.Fn.Body, f)
				}
			case *jsast.EArrow:
				if data.Fn != nil && data.Fn.Body != nil {
					data.Fn.Body = mapStmts(data.Fn.Body, f)
				}
			}
			return e
		},
	}
	wrapped := jsast.WalkModule(jsast.Module{Stmts: m.Stmts, IsScript: m.IsScript}, v)
	m.Stmts = wrapped.Stmts
	return m
}
