/*
File    : gomix-script/internal/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a token stream into an Abstract Syntax Tree (AST).
//
// The AST is modeled as a closed set of node types behind a single Node
// interface; the interpreter dispatches on concrete type with a type switch
// rather than a visitor, matching spec.md's design note 9 ("Virtual-dispatch
// AST" -> tagged variant + single match). The parser owns every node it
// creates and never frees one individually; lifetime is that of the parser
// for the duration of the script (spec.md §3).
package parser

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/gomix-script/internal/lexer"
	"github.com/akashmaji946/gomix-script/internal/srcloc"
)

// Node is the base interface every AST node implements.
type Node interface {
	// Literal renders a short, human-readable form of the node for debugging
	// (not a faithful un-parser — just enough to identify the node in logs).
	Literal() string
	// Loc returns the source location the node was parsed from.
	Loc() srcloc.Location
}

// base is embedded by every concrete node to carry its source location.
type base struct {
	Location srcloc.Location
}

func (b base) Loc() srcloc.Location { return b.Location }

// NumberNode is a numeric literal, e.g. 42, 3.14.
type NumberNode struct {
	base
	Value float32
}

func (n *NumberNode) Literal() string { return formatFloat(n.Value) }

// StringNode is a string literal, e.g. "hello".
type StringNode struct {
	base
	Value string
}

func (n *StringNode) Literal() string { return `"` + n.Value + `"` }

// IdentifierNode names a variable.
type IdentifierNode struct {
	base
	Name string
}

func (n *IdentifierNode) Literal() string { return n.Name }

// MemberAccessNode is `object.name`.
type MemberAccessNode struct {
	base
	Object Node
	Name   string
}

func (n *MemberAccessNode) Literal() string { return n.Object.Literal() + "." + n.Name }

// TableMemberInit is one `name = expr;` entry inside a table literal.
type TableMemberInit struct {
	Name string
	Expr Node
}

// TableMakerNode is `{ x = 1; y = 2; }`. Insertion order is preserved in
// Members for deterministic rendering, though spec.md does not require it.
type TableMakerNode struct {
	base
	Members []TableMemberInit
}

func (n *TableMakerNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("{")
	for _, m := range n.Members {
		sb.WriteString(m.Name)
		sb.WriteString("=")
		sb.WriteString(m.Expr.Literal())
		sb.WriteString(";")
	}
	sb.WriteString("}")
	return sb.String()
}

// ArrayMakerNode is `array{ 1, 2, 3 }`.
type ArrayMakerNode struct {
	base
	Elements []Node
}

func (n *ArrayMakerNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("array{")
	for i, e := range n.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Literal())
	}
	sb.WriteString("}")
	return sb.String()
}

// BinOpNode is a binary operator application, e.g. `a + b`.
type BinOpNode struct {
	base
	Op    lexer.Token
	Left  Node
	Right Node
}

func (n *BinOpNode) Literal() string {
	return "(" + n.Left.Literal() + " " + n.Op.Literal + " " + n.Right.Literal() + ")"
}

// UnOpNode is a prefix unary operator application, e.g. `-a`, `!a`.
type UnOpNode struct {
	base
	Op      lexer.Token
	Operand Node
}

func (n *UnOpNode) Literal() string { return n.Op.Literal + n.Operand.Literal() }

// FnCallNode is `callee(args...)`.
type FnCallNode struct {
	base
	Callee Node
	Args   []Node
}

func (n *FnCallNode) Literal() string {
	var sb strings.Builder
	sb.WriteString(n.Callee.Literal())
	sb.WriteString("(")
	for i, a := range n.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Literal())
	}
	sb.WriteString(")")
	return sb.String()
}

// ArrayIndexingNode is `array[index]`.
type ArrayIndexingNode struct {
	base
	Array Node
	Index Node
}

func (n *ArrayIndexingNode) Literal() string {
	return n.Array.Literal() + "[" + n.Index.Literal() + "]"
}

// AssignNode is `target = value`.
type AssignNode struct {
	base
	Target Node
	Value  Node
}

func (n *AssignNode) Literal() string {
	return n.Target.Literal() + " = " + n.Value.Literal()
}

// StatementListNode is a sequence of statements. NeedsOwnScope is true for
// `{ ... }` blocks and false for the top-level program and a function body's
// outermost list (the function's own scope substitutes — spec.md §4.2).
type StatementListNode struct {
	base
	Statements    []Node
	NeedsOwnScope bool
}

func (n *StatementListNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("{")
	for _, s := range n.Statements {
		sb.WriteString(s.Literal())
		sb.WriteString(";")
	}
	sb.WriteString("}")
	return sb.String()
}

// IfNode is `if cond block (else block)?`, used both as a statement and
// (via the same production) as an expression atom.
type IfNode struct {
	base
	Cond Node
	Then *StatementListNode
	Else *StatementListNode // nil when no else branch
}

func (n *IfNode) Literal() string {
	s := "if " + n.Cond.Literal() + " " + n.Then.Literal()
	if n.Else != nil {
		s += " else " + n.Else.Literal()
	}
	return s
}

// WhileNode is `while cond block`.
type WhileNode struct {
	base
	Cond Node
	Body *StatementListNode
}

func (n *WhileNode) Literal() string { return "while " + n.Cond.Literal() + " " + n.Body.Literal() }

// ForNode is `for init; cond; post block`.
type ForNode struct {
	base
	Init Node
	Cond Node
	Post Node
	Body *StatementListNode
}

func (n *ForNode) Literal() string {
	return "for " + n.Init.Literal() + "; " + n.Cond.Literal() + "; " + n.Post.Literal() + " " + n.Body.Literal()
}

// PrintNode is `print expr;`.
type PrintNode struct {
	base
	Expr Node
}

func (n *PrintNode) Literal() string { return "print " + n.Expr.Literal() }

// ReturnNode is `return expr?;`. Expr is nil for a bare `return;`.
type ReturnNode struct {
	base
	Expr Node
}

func (n *ReturnNode) Literal() string {
	if n.Expr == nil {
		return "return"
	}
	return "return " + n.Expr.Literal()
}

// FnDeclNode is a function literal `fn(params) { body }`. FnID is assigned
// by the parser at parse time, in registration order, and is how FnCall
// resolves a Fn value back to its declaration through the function table.
type FnDeclNode struct {
	base
	Params []string
	Body   *StatementListNode
	FnID   int
}

func (n *FnDeclNode) Literal() string {
	return "fn(" + strings.Join(n.Params, ", ") + ") " + n.Body.Literal()
}

// formatFloat renders an f32 compactly for AST debugging (not the runtime's
// print rendering, which spec.md §6 pins to six-decimal form).
func formatFloat(v float32) string {
	return fmt.Sprintf("%g", v)
}
