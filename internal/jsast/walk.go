package jsast

// Visitor is the generic bottom-up rewrite hook used by every lowering
// stage in the compose package (see compose.Optional). ExprFn and StmtFn
// are applied after a node's children have already been rewritten, mirroring
// esbuild's own post-order visit methods (visitExprInOut / visitStmtsAndPrependTempRefs)
// without esbuild's extra bookkeeping, which belongs to the (out of scope)
// parser.
type Visitor struct {
	ExprFn func(Expr) Expr
	StmtFn func(Stmt) Stmt
}

func (v *Visitor) expr(e Expr) Expr {
	if e.Data == nil {
		return e
	}
	e.Data = v.visitE(e.Data)
	if v.ExprFn != nil {
		e = v.ExprFn(e)
	}
	return e
}

func (v *Visitor) exprPtr(e *Expr) {
	if e != nil {
		*e = v.expr(*e)
	}
}

func (v *Visitor) exprs(list []Expr) {
	for i := range list {
		list[i] = v.expr(list[i])
	}
}

func (v *Visitor) visitE(data E) E {
	switch e := data.(type) {
	case *EArray:
		v.exprs(e.Items)
	case *EObject:
		for i := range e.Properties {
			p := &e.Properties[i]
			if p.Key.Computed != nil {
				v.exprPtr(p.Key.Computed)
			}
			v.exprPtr(p.Value)
			if p.Fn != nil {
				v.fn(p.Fn)
			}
		}
	case *ESpread:
		e.Value = v.expr(e.Value)
	case *EParen:
		e.Value = v.expr(e.Value)
	case *ETemplate:
		v.exprs(e.Exprs)
	case *EUnary:
		e.Value = v.expr(e.Value)
	case *EBinary:
		e.Left = v.expr(e.Left)
		e.Right = v.expr(e.Right)
	case *EAssign:
		e.Target = v.expr(e.Target)
		e.Value = v.expr(e.Value)
	case *ESeq:
		v.exprs(e.Exprs)
	case *ECond:
		e.Test = v.expr(e.Test)
		e.Cons = v.expr(e.Cons)
		e.Alt = v.expr(e.Alt)
	case *ENew:
		e.Callee = v.expr(e.Callee)
		v.exprs(e.Args)
	case *ECall:
		e.Callee = v.expr(e.Callee)
		v.exprs(e.Args)
	case *EMember:
		e.Obj = v.expr(e.Obj)
		v.exprPtr(e.Computed)
	case *EFunction:
		v.fn(e.Fn)
	case *EArrow:
		v.fn(e.Fn)
	case *EClass:
		v.class(e.Class)
	case *EYield:
		v.exprPtr(e.Arg)
	case *EAwait:
		e.Value = v.expr(e.Value)
	case *EUpdate:
		e.Value = v.expr(e.Value)
	case *ETsAs:
		e.Value = v.expr(e.Value)
	case *ETsTypeCast:
		e.Value = v.expr(e.Value)
	case *ETsNonNull:
		e.Value = v.expr(e.Value)
	case *EImportCall:
		e.Arg = v.expr(e.Arg)
	// EIdentifier, EBoolean, EString, ENumber, ENull, ERegExp, EThis, ESuper,
	// EMetaProp have no child expressions.
	}
	return data
}

func (v *Visitor) fn(fn *Fn) {
	if fn == nil {
		return
	}
	for i := range fn.Params {
		v.binding(&fn.Params[i].Binding)
		v.exprPtr(fn.Params[i].Default)
	}
	if fn.ExprBody != nil {
		v.exprPtr(fn.ExprBody)
	}
	fn.Body = v.stmts(fn.Body)
}

func (v *Visitor) class(c *Class) {
	if c == nil {
		return
	}
	v.exprPtr(c.SuperClass)
	for i := range c.Members {
		m := &c.Members[i]
		if m.Key.Computed != nil {
			v.exprPtr(m.Key.Computed)
		}
		v.exprPtr(m.Value)
		v.fn(m.Fn)
	}
}

func (v *Visitor) binding(b *Binding) {
	if b == nil {
		return
	}
	switch b.Kind {
	case BArray:
		for i := range b.ArrayItems {
			item := &b.ArrayItems[i]
			v.binding(item.Binding)
			v.exprPtr(item.Default)
		}
	case BObject:
		for i := range b.ObjectProps {
			p := &b.ObjectProps[i]
			if p.Key.Computed != nil {
				v.exprPtr(p.Key.Computed)
			}
			v.binding(&p.Value)
			v.exprPtr(p.Default)
		}
	}
}

func (v *Visitor) stmt(s Stmt) Stmt {
	if s.Data == nil {
		return s
	}
	s.Data = v.visitS(s.Data)
	if v.StmtFn != nil {
		s = v.StmtFn(s)
	}
	return s
}

func (v *Visitor) stmts(list []Stmt) []Stmt {
	for i := range list {
		list[i] = v.stmt(list[i])
	}
	return list
}

func (v *Visitor) visitS(data S) S {
	switch s := data.(type) {
	case *SExpr:
		s.Value = v.expr(s.Value)
	case *SReturn:
		v.exprPtr(s.Value)
	case *SBlock:
		s.Stmts = v.stmts(s.Stmts)
	case *SIf:
		s.Test = v.expr(s.Test)
		s.Yes = v.stmt(s.Yes)
		if s.No != nil {
			n := v.stmt(*s.No)
			s.No = &n
		}
	case *SFor:
		if s.Init != nil {
			i := v.stmt(*s.Init)
			s.Init = &i
		}
		v.exprPtr(s.Test)
		v.exprPtr(s.Update)
		s.Body = v.stmt(s.Body)
	case *SForOf:
		s.Init = v.stmt(s.Init)
		s.Value = v.expr(s.Value)
		s.Body = v.stmt(s.Body)
	case *SForIn:
		s.Init = v.stmt(s.Init)
		s.Value = v.expr(s.Value)
		s.Body = v.stmt(s.Body)
	case *SWhile:
		s.Test = v.expr(s.Test)
		s.Body = v.stmt(s.Body)
	case *SDoWhile:
		s.Body = v.stmt(s.Body)
		s.Test = v.expr(s.Test)
	case *SVarDecl:
		for i := range s.Decls {
			v.binding(&s.Decls[i].Binding)
			v.exprPtr(s.Decls[i].Value)
		}
	case *SFunction:
		v.fn(s.Fn)
	case *SClass:
		v.class(s.Class)
	case *SThrow:
		s.Value = v.expr(s.Value)
	case *STry:
		s.Block = v.stmts(s.Block)
		if s.Catch != nil {
			v.binding(s.Catch.Binding)
			s.Catch.Block = v.stmts(s.Catch.Block)
		}
		s.Finally = v.stmts(s.Finally)
	case *SLabel:
		s.Stmt = v.stmt(s.Stmt)
	case *SSwitch:
		s.Test = v.expr(s.Test)
		for i := range s.Cases {
			v.exprPtr(s.Cases[i].Test)
			s.Cases[i].Stmts = v.stmts(s.Cases[i].Stmts)
		}
	// SBreak, SContinue, SEmpty, SImport have no child statements/expressions.
	}
	return data
}

// WalkModule applies v to every statement and expression in m, bottom-up,
// and returns the (possibly mutated in place) module.
func WalkModule(m Module, v *Visitor) Module {
	m.Stmts = v.stmts(m.Stmts)
	return m
}
