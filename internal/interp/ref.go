/*
File    : gomix-script/internal/interp/ref.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/gomix-script/internal/scope"
	"github.com/akashmaji946/gomix-script/internal/value"
)

// ref is a live, assignable storage location: a variable binding, a table
// member, or an array element. Assign evaluates its target to a ref and
// writes through it (spec.md §4.4); MemberAccess and ArrayIndexing return
// a ref for exactly the same reason, so reads and writes share one path.
type ref interface {
	get() value.Value
	set(value.Value)
}

type identRef struct {
	scope *scope.Scope
	key   string
}

func (r identRef) get() value.Value  { return r.scope.Get(r.key) }
func (r identRef) set(v value.Value) { r.scope.Set(r.key, v) }

type memberRef struct {
	table *value.Table
	name  string
}

func (r memberRef) get() value.Value  { v, _ := r.table.Get(r.name); return v }
func (r memberRef) set(v value.Value) { r.table.Set(r.name, v) }

type elemRef struct {
	array *value.Array
	index int
}

func (r elemRef) get() value.Value  { return r.array.Elements[r.index] }
func (r elemRef) set(v value.Value) { r.array.Elements[r.index] = v }
