/*
File    : gomix-script/internal/interp/interp_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/gomix-script/internal/gomixerr"
	"github.com/akashmaji946/gomix-script/internal/parser"
	"github.com/akashmaji946/gomix-script/internal/srcloc"
	"github.com/akashmaji946/gomix-script/internal/value"
)

// evalStatementList pushes a scope only when the node was parsed with its
// own-scope flag on (function bodies and the top-level program share the
// caller's freshly-pushed scope instead — spec.md §4.2/§4.4). Evaluation
// stops as soon as a nested `return` sets c.Returning, propagating its
// result without running the remaining statements.
func (ev *Evaluator) evalStatementList(n *parser.StatementListNode, c *ctx) (value.Value, error) {
	if n.NeedsOwnScope {
		ev.pushScope(n, "")
		defer ev.popScope(n)
	}
	var result value.Value = value.Undefined{}
	for _, stmt := range n.Statements {
		v, err := ev.Eval(stmt, c)
		if err != nil {
			return nil, err
		}
		result = v
		if c.Returning {
			return c.Result, nil
		}
	}
	return result, nil
}

// evalIf pushes a distinct scope prefix per branch so that variables
// declared in the true branch never leak into the false branch or vice
// versa, even though both branches are lexically attached to one IfNode.
func (ev *Evaluator) evalIf(n *parser.IfNode, c *ctx) (value.Value, error) {
	cond, err := ev.Eval(n.Cond, c)
	if err != nil {
		return nil, err
	}
	if !isFalse(cond) {
		ev.pushScope(n, "true")
		defer ev.popScope(n)
		return ev.Eval(n.Then, c)
	}
	if n.Else != nil {
		ev.pushScope(n, "false")
		defer ev.popScope(n)
		return ev.Eval(n.Else, c)
	}
	return value.Undefined{}, nil
}

// isFalse treats Number 0.0 as false and everything else (including
// non-Number values reaching a condition) as true, per spec.md §4.4.
func isFalse(v value.Value) bool {
	n, ok := v.(value.Number)
	return ok && n.V == 0
}

func (ev *Evaluator) evalWhile(n *parser.WhileNode, c *ctx) (value.Value, error) {
	ev.pushScope(n, "")
	defer ev.popScope(n)

	var result value.Value = value.Undefined{}
	for {
		cond, err := ev.Eval(n.Cond, c)
		if err != nil {
			return nil, err
		}
		if isFalse(cond) {
			break
		}
		v, err := ev.Eval(n.Body, c)
		if err != nil {
			return nil, err
		}
		result = v
		if c.Returning {
			break
		}
	}
	return result, nil
}

func (ev *Evaluator) evalFor(n *parser.ForNode, c *ctx) (value.Value, error) {
	ev.pushScope(n, "")
	defer ev.popScope(n)

	if _, err := ev.Eval(n.Init, c); err != nil {
		return nil, err
	}
	var result value.Value = value.Undefined{}
	for {
		cond, err := ev.Eval(n.Cond, c)
		if err != nil {
			return nil, err
		}
		if isFalse(cond) {
			break
		}
		v, err := ev.Eval(n.Body, c)
		if err != nil {
			return nil, err
		}
		result = v
		if c.Returning {
			break
		}
		if _, err := ev.Eval(n.Post, c); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (ev *Evaluator) evalPrint(n *parser.PrintNode, c *ctx) (value.Value, error) {
	v, err := ev.Eval(n.Expr, c)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(ev.Writer, value.Render(v))
	return v, nil
}

// evalReturn sets c.Returning/c.Result, the sticky marker every enclosing
// StatementList/If/While/For checks to short-circuit the rest of the
// current function activation (spec.md §4.4's "forced_result").
func (ev *Evaluator) evalReturn(n *parser.ReturnNode, c *ctx) (value.Value, error) {
	var v value.Value = value.Undefined{}
	if n.Expr != nil {
		var err error
		v, err = ev.Eval(n.Expr, c)
		if err != nil {
			return nil, err
		}
	}
	c.Returning = true
	c.Result = v
	return v, nil
}

func (ev *Evaluator) evalFnCall(n *parser.FnCallNode, c *ctx) (value.Value, error) {
	callee, err := ev.Eval(n.Callee, c)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := ev.Eval(a, c)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case value.Fn:
		return ev.callScriptFn(fn, args, n.Loc())
	case value.NativeFn:
		return ev.callNativeFn(fn, args, n.Loc())
	default:
		return nil, gomixerr.NewEval(n.Loc(), "call to non-callable value of kind %s", callee.Kind())
	}
}

func (ev *Evaluator) callScriptFn(fn value.Fn, args []value.Value, loc srcloc.Location) (value.Value, error) {
	decl, ok := ev.Functions[fn.ID]
	if !ok {
		return nil, gomixerr.NewEval(loc, "internal error: unknown function id %d", fn.ID)
	}
	if len(args) != len(decl.Params) {
		return nil, gomixerr.NewEval(loc, "function expects %d argument(s), got %d", len(decl.Params), len(args))
	}

	ev.pushScope(decl, "")
	for i, param := range decl.Params {
		ev.Scope.Set(ev.Scope.AssignKey(param), args[i])
	}
	callCtx := &ctx{}
	_, err := ev.Eval(decl.Body, callCtx)
	if popErr := ev.popScope(decl); popErr != nil && err == nil {
		err = popErr
	}
	if err != nil {
		return nil, err
	}
	if callCtx.Returning {
		return callCtx.Result, nil
	}
	return value.Undefined{}, nil
}

func (ev *Evaluator) callNativeFn(fn value.NativeFn, args []value.Value, loc srcloc.Location) (value.Value, error) {
	ex := &executor{ev: ev}
	result, ok := fn.Func(args, ex)
	if !ok {
		return nil, gomixerr.NewEval(loc, "native function %q failed", fn.Name)
	}
	return result, nil
}
