/*
File    : gomix-script/internal/interp/interp.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp implements the tree-walking interpreter: it evaluates an
// AST produced by the parser package against a scope and a function table,
// producing print side effects and per-expression values (spec.md §4.4).
//
// Eval dispatches on concrete node type with a type switch rather than a
// visitor, matching spec.md's design note on closed-sum ASTs: the node set
// is fixed, so a single match per evaluation site is simpler than a
// double-dispatch Accept/Visit pair.
package interp

import (
	"io"
	"os"

	"github.com/akashmaji946/gomix-script/internal/gomixerr"
	"github.com/akashmaji946/gomix-script/internal/parser"
	"github.com/akashmaji946/gomix-script/internal/scope"
	"github.com/akashmaji946/gomix-script/internal/value"
)

// ctx is the evaluation context threaded through one function activation.
// Returning/Result implement spec.md's "forced_result": once Returning is
// set, every enclosing StatementList/If/While/For stops evaluating further
// statements and propagates Result upward until the function boundary,
// where FnCall resets the context for the next activation.
type ctx struct {
	Returning bool
	Result    value.Value
}

// Evaluator walks an AST, holding the state a single script run needs:
// the function table assigned by the parser, the flat scope, the native
// function registry, and the writer `print` writes to.
type Evaluator struct {
	Functions map[int]*parser.FnDeclNode
	Scope     *scope.Scope
	Natives   map[string]value.NativeFn
	Writer    io.Writer

	nextFnID int
}

// New returns an Evaluator ready to run a program produced alongside
// functions by parser.Parse. Output defaults to os.Stdout.
func New(functions map[int]*parser.FnDeclNode) *Evaluator {
	ev := &Evaluator{
		Functions: functions,
		Scope:     scope.New(),
		Natives:   make(map[string]value.NativeFn),
		Writer:    os.Stdout,
	}
	for id := range functions {
		if id >= ev.nextFnID {
			ev.nextFnID = id + 1
		}
	}
	return ev
}

// Absorb merges a fresh batch of function declarations (as returned by a
// new parser.Parse call) into this evaluator's function table, renumbering
// them past any id already in use. This lets a REPL parse one line per
// call while keeping function ids globally unique across the session —
// a fresh *parser.Parser otherwise starts counting from zero every time.
func (ev *Evaluator) Absorb(fns map[int]*parser.FnDeclNode) {
	for _, decl := range fns {
		id := ev.nextFnID
		ev.nextFnID++
		decl.FnID = id
		ev.Functions[id] = decl
	}
}

// RegisterNative installs a host native function under name, resolved by
// the script as an ordinary identifier (spec.md §4.5) — the binding lives
// in the same global scope an assignment would use, so FnCall's normal
// callee evaluation finds it without any special-casing.
func (ev *Evaluator) RegisterNative(name string, fn value.NativeFunc) {
	nf := value.NativeFn{Name: name, Func: fn}
	ev.Natives[name] = nf
	ev.Scope.Set(name, nf)
}

// Run evaluates a full program's statement list at the top level, where
// the scope stack starts and ends empty (globals live in the outermost
// scope — spec.md §4.2).
func (ev *Evaluator) Run(program *parser.StatementListNode) error {
	_, err := ev.Eval(program, &ctx{})
	return err
}

// Eval is the central dispatcher. It returns the node's value and, for
// StatementList/If/While/For, may instead be short-circuited by a pending
// `return` recorded on ctx.
func (ev *Evaluator) Eval(node parser.Node, c *ctx) (value.Value, error) {
	switch n := node.(type) {
	case *parser.NumberNode:
		return value.Number{V: n.Value}, nil
	case *parser.StringNode:
		return value.String{V: n.Value}, nil
	case *parser.IdentifierNode:
		key := ev.Scope.Resolve(n.Name)
		return ev.Scope.Get(key), nil
	case *parser.FnDeclNode:
		return value.Fn{ID: n.FnID}, nil
	case *parser.MemberAccessNode:
		return ev.evalMemberAccess(n, c)
	case *parser.TableMakerNode:
		return ev.evalTableMaker(n, c)
	case *parser.ArrayMakerNode:
		return ev.evalArrayMaker(n, c)
	case *parser.BinOpNode:
		return ev.evalBinOp(n, c)
	case *parser.UnOpNode:
		return ev.evalUnOp(n, c)
	case *parser.AssignNode:
		return ev.evalAssign(n, c)
	case *parser.FnCallNode:
		return ev.evalFnCall(n, c)
	case *parser.ArrayIndexingNode:
		return ev.evalArrayIndexing(n, c)
	case *parser.StatementListNode:
		return ev.evalStatementList(n, c)
	case *parser.IfNode:
		return ev.evalIf(n, c)
	case *parser.WhileNode:
		return ev.evalWhile(n, c)
	case *parser.ForNode:
		return ev.evalFor(n, c)
	case *parser.PrintNode:
		return ev.evalPrint(n, c)
	case *parser.ReturnNode:
		return ev.evalReturn(n, c)
	default:
		return nil, gomixerr.NewEval(node.Loc(), "internal error: unhandled node type %T", node)
	}
}

// pushScope/popScope centralize the node-identity scope keying used by
// every construct that owns a scope (spec.md §4.4 pushScope/popScope).
func (ev *Evaluator) pushScope(node parser.Node, postfix string) {
	ev.Scope.Push(scope.NodeID(node), postfix)
}

func (ev *Evaluator) popScope(node parser.Node) error {
	return ev.Scope.Pop(node.Loc())
}
