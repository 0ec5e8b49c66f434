package eval

import (
	"github.com/golci/lci/ast"
	"github.com/golci/lci/errs"
	"github.com/golci/lci/objects"
	"github.com/golci/lci/scope"
)

// execIf runs the O RLY?/YA RLY/MEBBE.../NO WAI/OIC chain, guarding on
// the IT value the preceding bare-expression statement left behind.
func (e *Evaluator) execIf(n *ast.IfStmt, s *scope.Scope) (flow, *errs.Error) {
	guard, err := objects.AsBool(s.It, n.Pos.File, n.Pos.Line)
	if err != nil {
		return flow{}, err
	}
	if guard {
		return e.execBlock(n.Yes, s)
	}
	for i, g := range n.Guards {
		cond, err := e.evalExpr(g, s)
		if err != nil {
			return flow{}, err
		}
		pass, err := objects.AsBool(cond, g.Position().File, g.Position().Line)
		if err != nil {
			return flow{}, err
		}
		if pass {
			return e.execBlock(n.Blocks[i], s)
		}
	}
	if n.Else != nil {
		return e.execBlock(n.Else, s)
	}
	return flow{kind: flowNormal}, nil
}

// execSwitch probes OMG cases in source order against IT and stops at the
// first match; no fallthrough between cases. A no-match with no OMGWTF
// default is a no-op.
func (e *Evaluator) execSwitch(n *ast.SwitchStmt, s *scope.Scope) (flow, *errs.Error) {
	for _, c := range n.Cases {
		lit, err := e.evalExpr(&ast.ConstExpr{Pos: n.Pos, Value: c.Literal}, s)
		if err != nil {
			return flow{}, err
		}
		eq, err := objects.Equal(s.It, lit, n.Pos.File, n.Pos.Line)
		if err != nil {
			continue // incomparable types just fail this case, not the switch
		}
		if eq {
			return e.execBlock(c.Body, s)
		}
	}
	if n.Default != nil {
		return e.execBlock(n.Default, s)
	}
	return flow{kind: flowNormal}, nil
}
