// Package scope implements the lexical environment LOLCODE programs run
// in: a name-to-value map with a parent pointer for chain lookup, plus
// the per-scope implicit variable IT that every expression statement and
// bare-expression evaluation updates.
package scope

import (
	"github.com/golci/lci/errs"
	"github.com/golci/lci/objects"
)

// Scope is one lexical environment. Redeclaring a name already bound in
// this exact scope (not an ancestor) is an error; shadowing an ancestor's
// binding by declaring the same name in a child scope is allowed.
//
// Function definitions live in the same vars map as ordinary bindings:
// function.Function implements objects.Value, so "look up the function
// definition by name in the named scope" (spec.md §4.4) is just LookUp.
type Scope struct {
	vars   map[string]objects.Value
	Parent *Scope
	It     objects.Value
}

// New creates a scope chained to parent (nil for the root/global scope).
func New(parent *Scope) *Scope {
	return &Scope{
		vars:   make(map[string]objects.Value),
		Parent: parent,
		It:     objects.Nil{},
	}
}

// Declare binds name to v in this scope. Redeclaration in the same scope
// is an error per spec.md §4.4.
func (s *Scope) Declare(name string, v objects.Value, file string, line int) *errs.Error {
	if _, ok := s.vars[name]; ok {
		return errs.New(errs.RuntimeRedefinition, file, line, name, name)
	}
	s.vars[name] = v
	return nil
}

// LookUp walks the scope chain from s to the root looking for name.
func (s *Scope) LookUp(name string) (objects.Value, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign rebinds name to v at whichever scope in the chain already
// declared it. It is an error to assign to an undeclared name.
func (s *Scope) Assign(name string, v objects.Value, file string, line int) *errs.Error {
	for cur := s; cur != nil; cur = cur.Parent {
		if _, ok := cur.vars[name]; ok {
			cur.vars[name] = v
			return nil
		}
	}
	return errs.New(errs.RuntimeUndefinedName, file, line, name, name)
}

// Deallocate removes name from whichever scope in the chain declared it.
func (s *Scope) Deallocate(name string, file string, line int) *errs.Error {
	for cur := s; cur != nil; cur = cur.Parent {
		if _, ok := cur.vars[name]; ok {
			delete(cur.vars, name)
			return nil
		}
	}
	return errs.New(errs.RuntimeUndefinedName, file, line, name, name)
}

// SetMember and GetMember give Scope the same shape as objects.Array, so
// eval's declare/function-def logic can target "the named scope" (spec.md
// §4.4) whether that scope is a real lexical Scope or an associative
// array value, without a type switch at every call site.
func (s *Scope) SetMember(name string, v objects.Value) { s.vars[name] = v }
func (s *Scope) GetMember(name string) (objects.Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Export snapshots this scope's own bindings (not its ancestors'), used by
// OH HAI IM to flatten a block's declarations into an associative array.
func (s *Scope) Export() map[string]objects.Value {
	out := make(map[string]objects.Value, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}
