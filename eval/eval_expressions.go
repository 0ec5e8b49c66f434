package eval

import (
	"math"
	"os/exec"

	"github.com/golci/lci/ast"
	"github.com/golci/lci/errs"
	"github.com/golci/lci/function"
	"github.com/golci/lci/objects"
	"github.com/golci/lci/scope"
)

// evalExpr dispatches on the concrete *ast.Expr variant.
func (e *Evaluator) evalExpr(expr ast.Expr, s *scope.Scope) (objects.Value, *errs.Error) {
	switch n := expr.(type) {
	case *ast.ConstExpr:
		return e.evalConst(n, s)

	case *ast.IdentExpr:
		return e.readTarget(n.Ident, s)

	case *ast.ItExpr:
		return s.It, nil

	case *ast.CastExpr:
		v, err := e.evalExpr(n.Target, s)
		if err != nil {
			return nil, err
		}
		return castValue(v, n.NewType, n.Pos.File, n.Pos.Line)

	case *ast.OpExpr:
		return e.evalOp(n, s)

	case *ast.CallExpr:
		return e.evalCall(n, s)

	case *ast.SysCmdExpr:
		return e.evalSysCmd(n, s)
	}
	return objects.Nil{}, nil
}

func (e *Evaluator) evalConst(n *ast.ConstExpr, s *scope.Scope) (objects.Value, *errs.Error) {
	switch n.Value.Kind {
	case ast.NilConst:
		return objects.Nil{}, nil
	case ast.BoolConst:
		return objects.Bool{V: n.Value.Bool}, nil
	case ast.IntConst:
		return objects.Int{V: n.Value.Int}, nil
	case ast.FloatConst:
		return objects.Float{V: n.Value.Float}, nil
	case ast.StringConst:
		out, err := e.interpolate(n.Value.Str, s, n.Pos.File, n.Pos.Line)
		if err != nil {
			return nil, err
		}
		return objects.String{V: out}, nil
	}
	return objects.Nil{}, nil
}

// evalOp evaluates every operand eagerly, then applies Op. LOLCODE has no
// short-circuiting operators in spec.md's table.
func (e *Evaluator) evalOp(n *ast.OpExpr, s *scope.Scope) (objects.Value, *errs.Error) {
	args := make([]objects.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a, s)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	file, line := n.Pos.File, n.Pos.Line

	switch n.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod, ast.OpMax, ast.OpMin:
		return numericBinOp(n.Op, args[0], args[1], file, line)

	case ast.OpAnd, ast.OpOr, ast.OpXor:
		a, err := objects.AsBool(args[0], file, line)
		if err != nil {
			return nil, err
		}
		b, err := objects.AsBool(args[1], file, line)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case ast.OpAnd:
			return objects.Bool{V: a && b}, nil
		case ast.OpOr:
			return objects.Bool{V: a || b}, nil
		default:
			return objects.Bool{V: a != b}, nil
		}

	case ast.OpEq, ast.OpNeq:
		eq, err := objects.Equal(args[0], args[1], file, line)
		if err != nil {
			return nil, err
		}
		if n.Op == ast.OpNeq {
			eq = !eq
		}
		return objects.Bool{V: eq}, nil

	case ast.OpNot:
		b, err := objects.AsBool(args[0], file, line)
		if err != nil {
			return nil, err
		}
		return objects.Bool{V: !b}, nil

	case ast.OpAllOf:
		for _, a := range args {
			b, err := objects.AsBool(a, file, line)
			if err != nil {
				return nil, err
			}
			if !b {
				return objects.Bool{V: false}, nil
			}
		}
		return objects.Bool{V: true}, nil

	case ast.OpAnyOf:
		for _, a := range args {
			b, err := objects.AsBool(a, file, line)
			if err != nil {
				return nil, err
			}
			if b {
				return objects.Bool{V: true}, nil
			}
		}
		return objects.Bool{V: false}, nil

	case ast.OpConcat:
		var out string
		for _, a := range args {
			str, err := objects.AsString(a, file, line)
			if err != nil {
				return nil, err
			}
			out += str
		}
		return objects.String{V: out}, nil
	}

	return objects.Nil{}, nil
}

// numericBinOp promotes to float arithmetic if either operand is a
// NUMBAR, otherwise does 64-bit integer arithmetic. QUOSHUNT OF integer
// division truncates toward zero, matching Go's "/" on int64.
func numericBinOp(op ast.OpKind, a, b objects.Value, file string, line int) (objects.Value, *errs.Error) {
	_, aFloat := a.(objects.Float)
	_, bFloat := b.(objects.Float)

	if aFloat || bFloat {
		af, err := objects.AsFloat(a, file, line)
		if err != nil {
			return nil, err
		}
		bf, err := objects.AsFloat(b, file, line)
		if err != nil {
			return nil, err
		}
		switch op {
		case ast.OpAdd:
			return objects.Float{V: af + bf}, nil
		case ast.OpSub:
			return objects.Float{V: af - bf}, nil
		case ast.OpMul:
			return objects.Float{V: af * bf}, nil
		case ast.OpDiv:
			if bf == 0 {
				return nil, errs.New(errs.RuntimeDivisionByZero, file, line, "")
			}
			return objects.Float{V: af / bf}, nil
		case ast.OpMod:
			if bf == 0 {
				return nil, errs.New(errs.RuntimeDivisionByZero, file, line, "")
			}
			return objects.Float{V: math.Mod(af, bf)}, nil
		case ast.OpMax:
			return objects.Float{V: math.Max(af, bf)}, nil
		default:
			return objects.Float{V: math.Min(af, bf)}, nil
		}
	}

	ai, err := objects.AsInt(a, file, line)
	if err != nil {
		return nil, err
	}
	bi, err := objects.AsInt(b, file, line)
	if err != nil {
		return nil, err
	}
	switch op {
	case ast.OpAdd:
		return objects.Int{V: ai + bi}, nil
	case ast.OpSub:
		return objects.Int{V: ai - bi}, nil
	case ast.OpMul:
		return objects.Int{V: ai * bi}, nil
	case ast.OpDiv:
		if bi == 0 {
			return nil, errs.New(errs.RuntimeDivisionByZero, file, line, "")
		}
		return objects.Int{V: ai / bi}, nil
	case ast.OpMod:
		if bi == 0 {
			return nil, errs.New(errs.RuntimeDivisionByZero, file, line, "")
		}
		return objects.Int{V: ai % bi}, nil
	case ast.OpMax:
		if ai > bi {
			return objects.Int{V: ai}, nil
		}
		return objects.Int{V: bi}, nil
	default:
		if ai < bi {
			return objects.Int{V: ai}, nil
		}
		return objects.Int{V: bi}, nil
	}
}

// evalCall resolves the function named in either the current scope chain
// or a named array, checks arity, and runs its body in a fresh scope
// parented at the function's defining scope (lexical, not dynamic, scoping).
// A native binding (spec.md §3's binding(native-fn-pointer)) is invoked
// directly instead, since it has no AST body or defining scope to run in.
func (e *Evaluator) evalCall(n *ast.CallExpr, s *scope.Scope) (objects.Value, *errs.Error) {
	callee, err := e.lookUpCallable(n, s)
	if err != nil {
		return nil, err
	}

	args := make([]objects.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a, s)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *function.Function:
		if len(args) != len(fn.Params) {
			return nil, errs.New(errs.RuntimeWrongArgCount, n.Pos.File, n.Pos.Line, n.Name, n.Name, len(fn.Params), len(args))
		}
		return e.callFunctionValue(fn, args, n.Pos)
	case *objects.Native:
		if len(args) != fn.Arity {
			return nil, errs.New(errs.RuntimeWrongArgCount, n.Pos.File, n.Pos.Line, n.Name, n.Name, fn.Arity, len(args))
		}
		return fn.Fn(args, n.Pos.File, n.Pos.Line)
	default:
		return nil, errs.New(errs.RuntimeUndefinedFunction, n.Pos.File, n.Pos.Line, n.Name, n.Name)
	}
}

// callFunctionValue runs fn's body with args bound to its parameters, in a
// fresh scope parented at fn's defining scope. Falling off the end of the
// body returns Nil.
func (e *Evaluator) callFunctionValue(fn *function.Function, args []objects.Value, pos ast.Pos) (objects.Value, *errs.Error) {
	callScope := scope.New(fn.Scp)
	for i, param := range fn.Params {
		if err := callScope.Declare(param, args[i], pos.File, pos.Line); err != nil {
			return nil, err
		}
	}

	f, err := e.execBlock(fn.Body, callScope)
	if err != nil {
		return nil, err
	}
	if f.kind == flowReturn {
		return f.value, nil
	}
	return objects.Nil{}, nil
}

// lookUpCallable resolves n.Name to either a user-defined function or a
// native binding, in the current scope chain or a named array.
func (e *Evaluator) lookUpCallable(n *ast.CallExpr, s *scope.Scope) (objects.Value, *errs.Error) {
	var val objects.Value
	var ok bool

	if n.Scope == nil {
		val, ok = s.LookUp(n.Name)
	} else {
		scopeVal, err := e.evalExpr(n.Scope, s)
		if err != nil {
			return nil, err
		}
		arr, isArr := scopeVal.(*objects.Array)
		if !isArr {
			return nil, errs.New(errs.RuntimeNotAnArray, n.Pos.File, n.Pos.Line, "", "")
		}
		val, ok = arr.GetMember(n.Name)
	}
	if !ok {
		return nil, errs.New(errs.RuntimeUndefinedFunction, n.Pos.File, n.Pos.Line, n.Name, n.Name)
	}
	switch val.(type) {
	case *function.Function, *objects.Native:
		return val, nil
	default:
		return nil, errs.New(errs.RuntimeUndefinedFunction, n.Pos.File, n.Pos.Line, n.Name, n.Name)
	}
}

// evalSysCmd runs I DUZ <cmd> through the shell, gated by config opt-in.
func (e *Evaluator) evalSysCmd(n *ast.SysCmdExpr, s *scope.Scope) (objects.Value, *errs.Error) {
	if !e.Cfg.AllowSystemCommands {
		return nil, errs.New(errs.RuntimeSystemCommandDisabled, n.Pos.File, n.Pos.Line, "")
	}
	cmdVal, err := e.evalExpr(n.Cmd, s)
	if err != nil {
		return nil, err
	}
	cmdStr, err := objects.AsString(cmdVal, n.Pos.File, n.Pos.Line)
	if err != nil {
		return nil, err
	}

	out, runErr := exec.Command("sh", "-c", cmdStr).CombinedOutput()
	if runErr != nil {
		return nil, errs.Wrap(errs.RuntimeSystemCommandFailed, runErr, n.Pos.File, n.Pos.Line, cmdStr, runErr)
	}
	return objects.String{V: string(out)}, nil
}
