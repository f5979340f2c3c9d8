/*
File    : gomix-script/internal/interp/executor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/gomix-script/internal/gomixerr"
	"github.com/akashmaji946/gomix-script/internal/srcloc"
	"github.com/akashmaji946/gomix-script/internal/value"
)

// executor implements value.Executor, giving a native function the same
// value-construction and call-back machinery the interpreter itself uses
// (spec.md §4.3).
type executor struct {
	ev *Evaluator
}

func (x *executor) NewNumber(v float32) value.Value { return value.Number{V: v} }
func (x *executor) NewString(v string) value.Value  { return value.String{V: v} }
func (x *executor) NewTable() *value.Table          { return value.NewTable() }
func (x *executor) NewArray() *value.Array          { return value.NewArray() }

// Call invokes a script Fn or NativeFn value from native code, e.g. a
// host-provided `array_each(a, fn(v){...})`.
func (x *executor) Call(fn value.Value, args []value.Value) (value.Value, error) {
	return x.ev.Call(fn, args)
}

// Call is the public entry point an embedding host program uses to invoke
// a script-side function value obtained from the Evaluator's scope (e.g.
// a callback the script registered by name). It is the same machinery
// evalFnCall and the native Executor use internally, exposed for embedders
// (spec.md §6 host bridge).
func (ev *Evaluator) Call(fn value.Value, args []value.Value) (value.Value, error) {
	switch f := fn.(type) {
	case value.Fn:
		return ev.callScriptFn(f, args, srcloc.Location{})
	case value.NativeFn:
		return ev.callNativeFn(f, args, srcloc.Location{})
	default:
		return nil, gomixerr.NewEval(srcloc.Location{}, "call to non-callable value of kind %s", fn.Kind())
	}
}
