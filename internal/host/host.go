/*
File    : gomix-script/internal/host/host.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package host implements the native-function bridge described by
// spec.md §4.5 and the stdlib surface named in §6: array_size, array_push
// and the two array_pop overloads. A host embedding registers these (or
// its own natives built the same way) on an *interp.Evaluator before
// running a script.
package host

import (
	"github.com/akashmaji946/gomix-script/internal/interp"
	"github.com/akashmaji946/gomix-script/internal/value"
)

// allStdlib is the full native registry spec.md §6 names, keyed by the
// identifier a script calls it under.
var allStdlib = map[string]value.NativeFunc{
	"array_size": arraySize,
	"array_push": arrayPush,
	"array_pop":  arrayPop,
}

// RegisterStdlib installs the array builtins spec.md §6 names as globals
// a script can call like any other function. With no names given, every
// native is registered; with names given, only those are (the host
// bridge's native-function allowlist — SPEC_FULL.md's AMBIENT STACK
// config bullet), and an unknown name is ignored rather than an error,
// since it cannot name a call the script could otherwise make.
func RegisterStdlib(ev *interp.Evaluator, names ...string) {
	if len(names) == 0 {
		for name, fn := range allStdlib {
			ev.RegisterNative(name, fn)
		}
		return
	}
	for _, name := range names {
		if fn, ok := allStdlib[name]; ok {
			ev.RegisterNative(name, fn)
		}
	}
}

func arraySize(args []value.Value, ex value.Executor) (value.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	arr, ok := args[0].(*value.Array)
	if !ok {
		return nil, false
	}
	return ex.NewNumber(float32(len(arr.Elements))), true
}

func arrayPush(args []value.Value, ex value.Executor) (value.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	arr, ok := args[0].(*value.Array)
	if !ok {
		return nil, false
	}
	arr.Elements = append(arr.Elements, args[1])
	return ex.NewNumber(float32(len(arr.Elements))), true
}

// arrayPop implements both overloads named in spec.md §6:
//   - array_pop(a)    — removes and returns the last element.
//   - array_pop(a, i) — removes and returns the element at index i.
func arrayPop(args []value.Value, ex value.Executor) (value.Value, bool) {
	if len(args) != 1 && len(args) != 2 {
		return nil, false
	}
	arr, ok := args[0].(*value.Array)
	if !ok || len(arr.Elements) == 0 {
		return nil, false
	}

	idx := len(arr.Elements) - 1
	if len(args) == 2 {
		idxNum, ok := args[1].(value.Number)
		if !ok {
			return nil, false
		}
		idx = int(idxNum.V)
		if idx < 0 || idx >= len(arr.Elements) {
			return nil, false
		}
	}

	popped := arr.Elements[idx]
	arr.Elements = append(arr.Elements[:idx], arr.Elements[idx+1:]...)
	return popped, true
}
