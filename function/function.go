// Package function implements the user-defined function value: a name,
// its parameter list, its body, and the scope it closes over.
package function

import (
	"fmt"

	"github.com/golci/lci/ast"
	"github.com/golci/lci/objects"
	"github.com/golci/lci/scope"
)

// Function is a HOW IZ definition captured as a value, resolved by name
// at call time against whichever scope it was registered in.
type Function struct {
	Name   string
	Params []string
	Body   *ast.Block
	Scp    *scope.Scope
}

// New builds a Function, implementing objects.Value so it can be stored,
// passed, and returned like any other runtime value.
func New(name string, params []string, body *ast.Block, definingScope *scope.Scope) *Function {
	return &Function{Name: name, Params: params, Body: body, Scp: definingScope}
}

func (f *Function) Type() objects.Kind { return objects.FuncKind }
func (f *Function) String() string     { return fmt.Sprintf("<function %s/%d>", f.Name, len(f.Params)) }
func (f *Function) Inspect() string    { return f.String() }
