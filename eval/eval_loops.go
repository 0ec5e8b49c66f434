package eval

import (
	"github.com/golci/lci/ast"
	"github.com/golci/lci/errs"
	"github.com/golci/lci/function"
	"github.com/golci/lci/objects"
	"github.com/golci/lci/scope"
)

// execLoop runs an IM IN YR loop: guard checked before each iteration,
// update applied after each iteration's body. GTFO breaks the loop and is
// absorbed here; FOUND YR propagates past it to the enclosing function.
func (e *Evaluator) execLoop(n *ast.LoopStmt, s *scope.Scope) (flow, *errs.Error) {
	for {
		if n.Guard != nil {
			condVal, err := e.evalExpr(n.Guard.Cond, s)
			if err != nil {
				return flow{}, err
			}
			pass, err := objects.AsBool(condVal, n.Pos.File, n.Pos.Line)
			if err != nil {
				return flow{}, err
			}
			if n.Guard.Til {
				pass = !pass
			}
			if !pass {
				break
			}
		}

		f, err := e.execBlock(n.Body, s)
		if err != nil {
			return flow{}, err
		}
		switch f.kind {
		case flowBreak:
			return flow{kind: flowNormal}, nil
		case flowReturn:
			return f, nil
		}

		if n.Update != nil {
			if err := e.applyLoopUpdate(n, s); err != nil {
				return flow{}, err
			}
		}
	}
	return flow{kind: flowNormal}, nil
}

func (e *Evaluator) applyLoopUpdate(n *ast.LoopStmt, s *scope.Scope) *errs.Error {
	cur, err := e.readTarget(n.Var, s)
	if err != nil {
		return err
	}

	switch n.Update.Kind {
	case ast.UppinUpdate, ast.NerfinUpdate:
		// Desugars to SUM OF/DIFF OF <var> AN 1 (spec.md §4.3), so a
		// NUMBAR loop variable promotes to float arithmetic the same way
		// an explicit SUM OF would, instead of being silently truncated.
		op := ast.OpAdd
		if n.Update.Kind == ast.NerfinUpdate {
			op = ast.OpSub
		}
		next, err := numericBinOp(op, cur, objects.Int{V: 1}, n.Pos.File, n.Pos.Line)
		if err != nil {
			return err
		}
		return e.assignTarget(n.Var, next, s, n.Pos)

	case ast.UnaryCallUpdate:
		fnVal, ok := s.LookUp(n.Update.FuncName)
		if !ok {
			return errs.New(errs.RuntimeUndefinedFunction, n.Pos.File, n.Pos.Line, n.Update.FuncName, n.Update.FuncName)
		}
		fn, ok := fnVal.(*function.Function)
		if !ok {
			return errs.New(errs.RuntimeUndefinedFunction, n.Pos.File, n.Pos.Line, n.Update.FuncName, n.Update.FuncName)
		}
		if len(fn.Params) != 1 {
			return errs.New(errs.RuntimeWrongArgCount, n.Pos.File, n.Pos.Line, n.Update.FuncName, n.Update.FuncName, len(fn.Params), 1)
		}
		result, err := e.callFunctionValue(fn, []objects.Value{cur}, n.Pos)
		if err != nil {
			return err
		}
		return e.assignTarget(n.Var, result, s, n.Pos)
	}
	return nil
}
