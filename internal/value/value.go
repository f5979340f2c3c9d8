/*
File    : gomix-script/internal/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value implements the runtime value model shared between the
// interpreter and any embedded host native function (spec.md §3, §4.3).
//
// Number, String, Fn and Undefined are plain (non-pointer) types: copying
// one of them — an assignment, a function argument, a table insert — copies
// its contents, matching spec.md's "Primitives are value-typed" rule.
// Table and Array are always held behind a pointer; copying the pointer
// copies only the shared handle, so two holders of the same *Table observe
// each other's writes.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags which variant of the runtime value a Value holds.
type Kind string

const (
	KindUndefined Kind = "undefined"
	KindNumber    Kind = "number"
	KindString    Kind = "string"
	KindTable     Kind = "table"
	KindArray     Kind = "array"
	KindFn        Kind = "fn"
	KindNativeFn  Kind = "nativefn"
)

// Value is the tagged union every script value and host-exchanged value
// implements.
type Value interface {
	Kind() Kind
}

// Undefined is the placeholder value used for not-yet-assigned variables
// and members (spec.md §4.4 "materialize on miss").
type Undefined struct{}

func (Undefined) Kind() Kind { return KindUndefined }

// Number is a 32-bit float primitive.
type Number struct{ V float32 }

func (Number) Kind() Kind { return KindNumber }

// String is a text primitive. Script strings never carry escape sequences
// (spec.md §4.1 rule 4); this type just wraps whatever text was scanned.
type String struct{ V string }

func (String) Kind() Kind { return KindString }

// Fn is a script function value: a pointer into the parser's function
// table, resolved by the interpreter at call time (spec.md §3).
type Fn struct{ ID int }

func (Fn) Kind() Kind { return KindFn }

// Table is an unordered, string-keyed, reference-shared map value. Order
// records insertion order purely for deterministic `print` rendering —
// spec.md explicitly does not require tables to preserve insertion order.
type Table struct {
	Members map[string]Value
	Order   []string
}

func NewTable() *Table {
	return &Table{Members: make(map[string]Value)}
}

func (*Table) Kind() Kind { return KindTable }

// Get returns the current value of a member and whether it exists.
func (t *Table) Get(name string) (Value, bool) {
	v, ok := t.Members[name]
	return v, ok
}

// Set writes a member, recording first-seen insertion order.
func (t *Table) Set(name string, v Value) {
	if _, exists := t.Members[name]; !exists {
		t.Order = append(t.Order, name)
	}
	t.Members[name] = v
}

// Ensure returns a member's current value, materializing it as Undefined
// if absent (spec.md §4.4 MemberAccess semantics).
func (t *Table) Ensure(name string) Value {
	if v, ok := t.Members[name]; ok {
		return v
	}
	t.Set(name, Undefined{})
	return Undefined{}
}

// Array is an ordered, zero-indexed, reference-shared sequence value.
type Array struct {
	Elements []Value
}

func NewArray() *Array {
	return &Array{}
}

func (*Array) Kind() Kind { return KindArray }

// NativeFn wraps a host callable; NativeFunc reports success with its bool.
type (
	NativeFunc func(args []Value, ex Executor) (Value, bool)
	Executor   interface {
		NewNumber(v float32) Value
		NewString(v string) Value
		NewTable() *Table
		NewArray() *Array
		Call(fn Value, args []Value) (Value, error)
	}
	NativeFn struct {
		Name string
		Func NativeFunc
	}
)

func (NativeFn) Kind() Kind { return KindNativeFn }

// FormatShort renders a number the way string+number concatenation does:
// a compact decimal with no forced trailing zeros (spec.md §4.4's "short
// decimal representation", left unpinned by spec.md and fixed here — see
// DESIGN.md).
func FormatShort(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// FormatLong renders a number the way `print` does: a fixed six-decimal
// form (spec.md §6, pinned by scenario S1: `7.000000`).
func FormatLong(v float32) string {
	return fmt.Sprintf("%f", v)
}

// Render produces the human-readable text `print` writes for any Value,
// including the multi-line bracketed form for tables and arrays (spec.md
// §6). Members/elements are rendered recursively.
func Render(v Value) string {
	var sb strings.Builder
	render(&sb, v)
	return sb.String()
}

func render(sb *strings.Builder, v Value) {
	switch val := v.(type) {
	case Undefined:
		sb.WriteString("<undefined>")
	case Number:
		sb.WriteString(FormatLong(val.V))
	case String:
		sb.WriteString(val.V)
	case Fn:
		fmt.Fprintf(sb, "<function %d>", val.ID)
	case NativeFn:
		fmt.Fprintf(sb, "<native %s>", val.Name)
	case *Table:
		sb.WriteString("{\n")
		for _, name := range val.Order {
			fmt.Fprintf(sb, "%s = ", name)
			render(sb, val.Members[name])
			sb.WriteString("\n")
		}
		sb.WriteString("}")
	case *Array:
		sb.WriteString("[\n")
		for _, elem := range val.Elements {
			render(sb, elem)
			sb.WriteString("\n")
		}
		sb.WriteString("]")
	default:
		sb.WriteString("<unknown>")
	}
}
