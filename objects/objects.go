// Package objects defines the dynamically typed value union every
// LOLCODE expression evaluates to, and the coercion table spec.md §4.4
// requires between its five primitive kinds.
package objects

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golci/lci/errs"
)

// Kind tags the runtime type of a Value.
type Kind int

const (
	NilKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	FuncKind
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case NilKind:
		return "NOOB"
	case BoolKind:
		return "TROOF"
	case IntKind:
		return "NUMBR"
	case FloatKind:
		return "NUMBAR"
	case StringKind:
		return "YARN"
	case FuncKind:
		return "FUNCTION"
	case ArrayKind:
		return "BUKKIT"
	default:
		return "?"
	}
}

// Value is any runtime value: nil, boolean, integer, float, string,
// function reference (implemented by the function package), or
// associative array.
type Value interface {
	Type() Kind
	String() string  // VISIBLE-facing rendering
	Inspect() string // debug rendering, includes the kind
}

// Nil is the NOOB value.
type Nil struct{}

func (Nil) Type() Kind        { return NilKind }
func (Nil) String() string    { return "" }
func (Nil) Inspect() string   { return "NOOB" }

// Bool is a TROOF value.
type Bool struct{ V bool }

func (b Bool) Type() Kind { return BoolKind }
func (b Bool) String() string {
	if b.V {
		return "WIN"
	}
	return "FAIL"
}
func (b Bool) Inspect() string { return b.String() }

// Int is a NUMBR value (64-bit signed).
type Int struct{ V int64 }

func (i Int) Type() Kind      { return IntKind }
func (i Int) String() string  { return strconv.FormatInt(i.V, 10) }
func (i Int) Inspect() string { return i.String() }

// Float is a NUMBAR value (64-bit, rendered to two decimal places per
// classic LOLCODE NUMBAR-to-YARN formatting).
type Float struct{ V float64 }

func (f Float) Type() Kind      { return FloatKind }
func (f Float) String() string  { return strconv.FormatFloat(f.V, 'f', 2, 64) }
func (f Float) Inspect() string { return f.String() }

// String is a YARN value. Its contents have already had interpolation
// and escapes expanded by the time it exists as a runtime Value.
type String struct{ V string }

func (s String) Type() Kind      { return StringKind }
func (s String) String() string  { return s.V }
func (s String) Inspect() string { return `"` + s.V + `"` }

// Array is the single associative-array value: elements accessed by
// either a positional integer key or a named slot key, per spec.md §4.4's
// scope-or-array declaration target.
type Array struct {
	order []string
	slots map[string]Value
}

// NewArray returns an empty array value.
func NewArray() *Array {
	return &Array{slots: make(map[string]Value)}
}

func (a *Array) Type() Kind { return ArrayKind }
func (a *Array) String() string {
	return a.Inspect()
}
func (a *Array) Inspect() string {
	parts := make([]string, 0, len(a.order))
	for _, k := range a.order {
		parts = append(parts, fmt.Sprintf("%s: %s", k, a.slots[k].Inspect()))
	}
	return "BUKKIT{" + strings.Join(parts, ", ") + "}"
}

// GetMember looks up a named slot.
func (a *Array) GetMember(name string) (Value, bool) {
	v, ok := a.slots[name]
	return v, ok
}

// SetMember binds or rebinds a named slot, preserving insertion order.
func (a *Array) SetMember(name string, v Value) {
	if _, exists := a.slots[name]; !exists {
		a.order = append(a.order, name)
	}
	a.slots[name] = v
}

// Names returns slot names in insertion order.
func (a *Array) Names() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// DeleteMember removes a named slot, if present.
func (a *Array) DeleteMember(name string) {
	if _, exists := a.slots[name]; !exists {
		return
	}
	delete(a.slots, name)
	for i, k := range a.order {
		if k == name {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// float32Epsilon is the machine epsilon at float32 width, used for
// switch-case literal comparison and general float equality (spec.md's
// Open Question: "choose one width and document it").
var float32Epsilon = float64(math.Nextafter32(1, 2) - 1)

// AsBool implements the as-boolean row of spec.md §4.4's coercion table.
// NOOB has no boolean representation: every column of the table errors on
// Nil, so an uninitialized I HAS A used as a guard fails loudly instead of
// acting like an implicit FAIL.
func AsBool(v Value, file string, line int) (bool, *errs.Error) {
	switch t := v.(type) {
	case Bool:
		return t.V, nil
	case Int:
		return t.V != 0, nil
	case Float:
		return t.V != 0, nil
	case String:
		return t.V != "", nil
	default:
		return false, errs.New(errs.RuntimeBooleanCast, file, line, "", v.Type())
	}
}

// AsInt implements the as-integer row. NOOB errors, per spec.md §4.4.
func AsInt(v Value, file string, line int) (int64, *errs.Error) {
	switch t := v.(type) {
	case Bool:
		if t.V {
			return 1, nil
		}
		return 0, nil
	case Int:
		return t.V, nil
	case Float:
		return int64(t.V), nil
	case String:
		n, err := strconv.ParseInt(strings.TrimSpace(t.V), 10, 64)
		if err != nil {
			return 0, errs.New(errs.RuntimeIntegerCast, file, line, t.V, v.Type())
		}
		return n, nil
	default:
		return 0, errs.New(errs.RuntimeIntegerCast, file, line, "", v.Type())
	}
}

// AsFloat implements the as-float row. NOOB errors, per spec.md §4.4.
func AsFloat(v Value, file string, line int) (float64, *errs.Error) {
	switch t := v.(type) {
	case Bool:
		if t.V {
			return 1, nil
		}
		return 0, nil
	case Int:
		return float64(t.V), nil
	case Float:
		return t.V, nil
	case String:
		f, err := strconv.ParseFloat(strings.TrimSpace(t.V), 64)
		if err != nil {
			return 0, errs.New(errs.RuntimeFloatCast, file, line, t.V, v.Type())
		}
		return f, nil
	default:
		return 0, errs.New(errs.RuntimeFloatCast, file, line, "", v.Type())
	}
}

// AsString implements the as-string row. NOOB errors, per spec.md §4.4,
// unlike VISIBLE's own print path, which renders NOOB as the empty string.
func AsString(v Value, file string, line int) (string, *errs.Error) {
	switch v.(type) {
	case Bool, Int, Float, String:
		return v.String(), nil
	default:
		return "", errs.New(errs.RuntimeBadCast, file, line, "", v.Type(), "YARN")
	}
}

// Native is a Go-implemented function bound into a scope by a
// binding(native-fn-pointer) statement rather than a HOW IZ I definition.
// It carries its own arity check and runs without a child AST scope.
type Native struct {
	Name  string
	Arity int
	Fn    func(args []Value, file string, line int) (Value, *errs.Error)
}

func (n *Native) Type() Kind      { return FuncKind }
func (n *Native) String() string  { return "<native " + n.Name + ">" }
func (n *Native) Inspect() string { return n.String() }

// Equal implements BOTH SAEM / DIFFRINT: same-kind comparison, floats
// compared within float32Epsilon, cross-kind comparison is an error.
func Equal(a, b Value, file string, line int) (bool, *errs.Error) {
	if a.Type() != b.Type() {
		return false, errs.New(errs.RuntimeIncomparableTypes, file, line, "", a.Type(), b.Type())
	}
	switch av := a.(type) {
	case Nil:
		return true, nil
	case Bool:
		return av.V == b.(Bool).V, nil
	case Int:
		return av.V == b.(Int).V, nil
	case Float:
		bv := b.(Float).V
		return math.Abs(av.V-bv) <= float32Epsilon, nil
	case String:
		return av.V == b.(String).V, nil
	default:
		return a == b, nil
	}
}
