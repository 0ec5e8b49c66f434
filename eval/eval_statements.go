package eval

import (
	"io"
	"strings"

	"github.com/golci/lci/ast"
	"github.com/golci/lci/errs"
	"github.com/golci/lci/function"
	"github.com/golci/lci/objects"
	"github.com/golci/lci/scope"
)

// execStmt dispatches on the concrete *ast.Stmt variant and runs it in s.
func (e *Evaluator) execStmt(stmt ast.Stmt, s *scope.Scope) (flow, *errs.Error) {
	switch n := stmt.(type) {
	case *ast.ExprStmt:
		val, err := e.evalExpr(n.Expr, s)
		if err != nil {
			return flow{}, err
		}
		s.It = val
		return flow{kind: flowNormal}, nil

	case *ast.PrintStmt:
		return flow{kind: flowNormal}, e.execPrint(n, s)

	case *ast.InputStmt:
		return flow{kind: flowNormal}, e.execInput(n, s)

	case *ast.DeclareStmt:
		return flow{kind: flowNormal}, e.execDeclare(n, s)

	case *ast.AssignStmt:
		val, err := e.evalExpr(n.Value, s)
		if err != nil {
			return flow{}, err
		}
		return flow{kind: flowNormal}, e.assignTarget(n.Target, val, s, n.Pos)

	case *ast.DeallocStmt:
		return flow{kind: flowNormal}, e.deallocTarget(n.Target, s, n.Pos)

	case *ast.CastStmt:
		return flow{kind: flowNormal}, e.execCastStmt(n, s)

	case *ast.IfStmt:
		return e.execIf(n, s)

	case *ast.SwitchStmt:
		return e.execSwitch(n, s)

	case *ast.LoopStmt:
		return e.execLoop(n, s)

	case *ast.BreakStmt:
		return flow{kind: flowBreak}, nil

	case *ast.ReturnStmt:
		val, err := e.evalExpr(n.Value, s)
		if err != nil {
			return flow{}, err
		}
		return flow{kind: flowReturn, value: val}, nil

	case *ast.FuncDefStmt:
		return flow{kind: flowNormal}, e.execFuncDef(n, s)

	case *ast.AltArrayDefStmt:
		return flow{kind: flowNormal}, e.execAltArrayDef(n, s)

	case *ast.ImportStmt:
		logger.Debugf("CAN HAS %s? (no-op: module loading is out of scope)", n.Name)
		return flow{kind: flowNormal}, nil

	case *ast.BindingStmt:
		native, ok := e.Natives[n.Name]
		if !ok {
			return flow{}, errs.New(errs.RuntimeUndefinedFunction, n.Pos.File, n.Pos.Line, n.Name, n.Name)
		}
		if err := s.Declare(n.Name, native, n.Pos.File, n.Pos.Line); err != nil {
			return flow{}, err
		}
		return flow{kind: flowNormal}, nil
	}

	return flow{kind: flowNormal}, nil
}

// baseIdentName resolves ident's own name, evaluating Expr for an
// IndirectIdent (SRS), without descending into any slot chain.
func (e *Evaluator) baseIdentName(ident *ast.Identifier, s *scope.Scope) (string, *errs.Error) {
	if ident.Kind == ast.DirectIdent {
		return ident.Name, nil
	}
	v, err := e.evalExpr(ident.Expr, s)
	if err != nil {
		return "", err
	}
	return objects.AsString(v, ident.Pos.File, ident.Pos.Line)
}

// resolveTarget walks ident's slot chain (if any) and returns the array
// container and final member name a write or read should target. A nil
// container means the target lives directly in scope s.
func (e *Evaluator) resolveTarget(ident *ast.Identifier, s *scope.Scope) (*objects.Array, string, *errs.Error) {
	name, err := e.baseIdentName(ident, s)
	if err != nil {
		return nil, "", err
	}
	if ident.Slot == nil {
		return nil, name, nil
	}

	baseVal, ok := s.LookUp(name)
	if !ok {
		return nil, "", errs.New(errs.RuntimeUndefinedName, ident.Pos.File, ident.Pos.Line, name, name)
	}
	arr, ok := baseVal.(*objects.Array)
	if !ok {
		return nil, "", errs.New(errs.RuntimeNotAnArray, ident.Pos.File, ident.Pos.Line, name, name)
	}

	cur := ident.Slot
	for cur.Slot != nil {
		memberName, err := e.baseIdentName(cur, s)
		if err != nil {
			return nil, "", err
		}
		v, ok := arr.GetMember(memberName)
		if !ok {
			return nil, "", errs.New(errs.RuntimeUndefinedName, cur.Pos.File, cur.Pos.Line, memberName, memberName)
		}
		next, ok := v.(*objects.Array)
		if !ok {
			return nil, "", errs.New(errs.RuntimeNotAnArray, cur.Pos.File, cur.Pos.Line, memberName, memberName)
		}
		arr = next
		cur = cur.Slot
	}

	finalName, err := e.baseIdentName(cur, s)
	return arr, finalName, err
}

// readTarget reads an identifier's current value, erroring if undeclared.
func (e *Evaluator) readTarget(ident *ast.Identifier, s *scope.Scope) (objects.Value, *errs.Error) {
	container, name, err := e.resolveTarget(ident, s)
	if err != nil {
		return nil, err
	}
	if container != nil {
		v, ok := container.GetMember(name)
		if !ok {
			return nil, errs.New(errs.RuntimeUndefinedName, ident.Pos.File, ident.Pos.Line, name, name)
		}
		return v, nil
	}
	v, ok := s.LookUp(name)
	if !ok {
		return nil, errs.New(errs.RuntimeUndefinedName, ident.Pos.File, ident.Pos.Line, name, name)
	}
	return v, nil
}

// assignTarget rebinds an already-declared identifier. Slot-qualified
// targets write directly into the containing array with no such-is-already
// -declared check, since array members have no redeclaration rule.
func (e *Evaluator) assignTarget(ident *ast.Identifier, val objects.Value, s *scope.Scope, pos ast.Pos) *errs.Error {
	container, name, err := e.resolveTarget(ident, s)
	if err != nil {
		return err
	}
	if container != nil {
		container.SetMember(name, val)
		return nil
	}
	return s.Assign(name, val, pos.File, pos.Line)
}

// deallocTarget is `<target> R NOOB`: it removes the binding outright
// rather than merely rebinding it to NOOB, so a later bare read of the
// name fails the same way an undeclared name would.
func (e *Evaluator) deallocTarget(ident *ast.Identifier, s *scope.Scope, pos ast.Pos) *errs.Error {
	container, name, err := e.resolveTarget(ident, s)
	if err != nil {
		return err
	}
	if container != nil {
		container.DeleteMember(name)
		return nil
	}
	return s.Deallocate(name, pos.File, pos.Line)
}

func (e *Evaluator) execPrint(n *ast.PrintStmt, s *scope.Scope) *errs.Error {
	for _, arg := range n.Args {
		v, err := e.evalExpr(arg, s)
		if err != nil {
			return err
		}
		if _, werr := io.WriteString(e.Out, v.String()); werr != nil {
			return errs.Wrap(errs.FileReadFailed, werr, n.Pos.File, n.Pos.Line, "", e.File, werr)
		}
	}
	if !n.Suppress {
		io.WriteString(e.Out, "\n")
	}
	return nil
}

func (e *Evaluator) execInput(n *ast.InputStmt, s *scope.Scope) *errs.Error {
	line, rerr := e.In.ReadString('\n')
	if rerr != nil && line == "" {
		line = ""
	}
	line = strings.TrimRight(line, "\r\n")
	return e.assignTarget(n.Target, objects.String{V: line}, s, n.Pos)
}

// execDeclare binds Target's init value (or a type's zero value) either
// into the current scope, or into a named scope/array when Scope is set.
func (e *Evaluator) execDeclare(n *ast.DeclareStmt, s *scope.Scope) *errs.Error {
	var val objects.Value = objects.Nil{}
	switch {
	case n.Init != nil:
		v, err := e.evalExpr(n.Init, s)
		if err != nil {
			return err
		}
		val = v
	case n.InitType != nil:
		val = zeroValue(*n.InitType)
	}

	if n.Scope == nil {
		name, err := e.baseIdentName(n.Target, s)
		if err != nil {
			return err
		}
		return s.Declare(name, val, n.Pos.File, n.Pos.Line)
	}

	scopeVal, err := e.evalExpr(n.Scope, s)
	if err != nil {
		return err
	}
	arr, ok := scopeVal.(*objects.Array)
	if !ok {
		return errs.New(errs.RuntimeNotAnArray, n.Pos.File, n.Pos.Line, "", "")
	}
	name, err := e.baseIdentName(n.Target, s)
	if err != nil {
		return err
	}
	arr.SetMember(name, val)
	return nil
}

func zeroValue(t ast.TypeKind) objects.Value {
	switch t {
	case ast.BoolType:
		return objects.Bool{}
	case ast.IntType:
		return objects.Int{}
	case ast.FloatType:
		return objects.Float{}
	case ast.StringType:
		return objects.String{}
	case ast.ArrayType:
		return objects.NewArray()
	default:
		return objects.Nil{}
	}
}

func (e *Evaluator) execCastStmt(n *ast.CastStmt, s *scope.Scope) *errs.Error {
	cur, err := e.readTarget(n.Target, s)
	if err != nil {
		return err
	}
	converted, err := castValue(cur, n.NewType, n.Pos.File, n.Pos.Line)
	if err != nil {
		return err
	}
	return e.assignTarget(n.Target, converted, s, n.Pos)
}

func castValue(v objects.Value, t ast.TypeKind, file string, line int) (objects.Value, *errs.Error) {
	switch t {
	case ast.NilType:
		return objects.Nil{}, nil
	case ast.BoolType:
		b, err := objects.AsBool(v, file, line)
		if err != nil {
			return nil, err
		}
		return objects.Bool{V: b}, nil
	case ast.IntType:
		i, err := objects.AsInt(v, file, line)
		if err != nil {
			return nil, err
		}
		return objects.Int{V: i}, nil
	case ast.FloatType:
		f, err := objects.AsFloat(v, file, line)
		if err != nil {
			return nil, err
		}
		return objects.Float{V: f}, nil
	case ast.StringType:
		str, err := objects.AsString(v, file, line)
		if err != nil {
			return nil, err
		}
		return objects.String{V: str}, nil
	case ast.ArrayType:
		if arr, ok := v.(*objects.Array); ok {
			return arr, nil
		}
		return nil, errs.New(errs.RuntimeBadCast, file, line, "", v.Type(), "BUKKIT")
	}
	return nil, errs.New(errs.RuntimeBadCast, file, line, "", v.Type(), "?")
}

// execFuncDef binds a Function value under Name, either in the current
// scope or inside a named scope/array.
func (e *Evaluator) execFuncDef(n *ast.FuncDefStmt, s *scope.Scope) *errs.Error {
	fn := function.New(n.Name, n.Params, n.Body, s)

	if n.Scope == nil {
		s.SetMember(n.Name, fn)
		return nil
	}
	scopeVal, err := e.evalExpr(n.Scope, s)
	if err != nil {
		return err
	}
	arr, ok := scopeVal.(*objects.Array)
	if !ok {
		return errs.New(errs.RuntimeNotAnArray, n.Pos.File, n.Pos.Line, "", "")
	}
	arr.SetMember(n.Name, fn)
	return nil
}

// execAltArrayDef runs Body in a fresh child scope, then flattens that
// scope's own bindings into a new array bound under Name (spec.md §4.4's
// alternate `OH HAI IM <name>` array-literal syntax).
func (e *Evaluator) execAltArrayDef(n *ast.AltArrayDefStmt, s *scope.Scope) *errs.Error {
	arr := objects.NewArray()
	if n.Parent != nil {
		parentVal, err := e.evalExpr(n.Parent, s)
		if err != nil {
			return err
		}
		if parentArr, ok := parentVal.(*objects.Array); ok {
			for _, name := range parentArr.Names() {
				v, _ := parentArr.GetMember(name)
				arr.SetMember(name, v)
			}
		}
	}

	inner := scope.New(s)
	if _, err := e.execBlock(n.Body, inner); err != nil {
		return err
	}
	for name, v := range inner.Export() {
		arr.SetMember(name, v)
	}

	return s.Declare(n.Name, arr, n.Pos.File, n.Pos.Line)
}
