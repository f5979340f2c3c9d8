/*
File    : gomix-script/internal/interp/interp_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/gomix-script/internal/gomixerr"
	"github.com/akashmaji946/gomix-script/internal/lexer"
	"github.com/akashmaji946/gomix-script/internal/parser"
	"github.com/akashmaji946/gomix-script/internal/value"
)

// evalRef evaluates node as an lvalue, producing a live storage location
// rather than a copied value. Only Identifier, MemberAccess and
// ArrayIndexing are legal lvalues (spec.md §4.4 Assign semantics).
func (ev *Evaluator) evalRef(node parser.Node, c *ctx) (ref, error) {
	switch n := node.(type) {
	case *parser.IdentifierNode:
		key := ev.Scope.AssignKey(n.Name)
		return identRef{scope: ev.Scope, key: key}, nil

	case *parser.MemberAccessNode:
		obj, err := ev.Eval(n.Object, c)
		if err != nil {
			return nil, err
		}
		table, ok := obj.(*value.Table)
		if !ok {
			return nil, gomixerr.NewEval(n.Loc(), "member access on non-table value")
		}
		table.Ensure(n.Name)
		return memberRef{table: table, name: n.Name}, nil

	case *parser.ArrayIndexingNode:
		arr, err := ev.Eval(n.Array, c)
		if err != nil {
			return nil, err
		}
		array, ok := arr.(*value.Array)
		if !ok {
			return nil, gomixerr.NewEval(n.Loc(), "indexing on non-array value")
		}
		idxVal, err := ev.Eval(n.Index, c)
		if err != nil {
			return nil, err
		}
		idxNum, ok := idxVal.(value.Number)
		if !ok {
			return nil, gomixerr.NewEval(n.Loc(), "array index must be a number")
		}
		idx := int(idxNum.V)
		if idx < 0 || idx >= len(array.Elements) {
			return nil, gomixerr.NewEval(n.Loc(), "array index %d out of range (length %d)", idx, len(array.Elements))
		}
		return elemRef{array: array, index: idx}, nil

	default:
		return nil, gomixerr.NewEval(node.Loc(), "expression is not assignable")
	}
}

// evalMemberAccess reads through a member ref, materializing the member as
// Undefined if it does not yet exist.
func (ev *Evaluator) evalMemberAccess(n *parser.MemberAccessNode, c *ctx) (value.Value, error) {
	r, err := ev.evalRef(n, c)
	if err != nil {
		return nil, err
	}
	return r.get(), nil
}

func (ev *Evaluator) evalArrayIndexing(n *parser.ArrayIndexingNode, c *ctx) (value.Value, error) {
	r, err := ev.evalRef(n, c)
	if err != nil {
		return nil, err
	}
	return r.get(), nil
}

func (ev *Evaluator) evalTableMaker(n *parser.TableMakerNode, c *ctx) (value.Value, error) {
	table := value.NewTable()
	for _, member := range n.Members {
		v, err := ev.Eval(member.Expr, c)
		if err != nil {
			return nil, err
		}
		table.Set(member.Name, v)
	}
	return table, nil
}

func (ev *Evaluator) evalArrayMaker(n *parser.ArrayMakerNode, c *ctx) (value.Value, error) {
	array := value.NewArray()
	for _, elem := range n.Elements {
		v, err := ev.Eval(elem, c)
		if err != nil {
			return nil, err
		}
		array.Elements = append(array.Elements, v)
	}
	return array, nil
}

func (ev *Evaluator) evalAssign(n *parser.AssignNode, c *ctx) (value.Value, error) {
	target, err := ev.evalRef(n.Target, c)
	if err != nil {
		return nil, err
	}
	v, err := ev.Eval(n.Value, c)
	if err != nil {
		return nil, err
	}
	target.set(v)
	return v, nil
}

// evalBinOp implements spec.md §4.4's BinOp table: arithmetic and
// comparison between two Numbers, `+` concatenation when one side is a
// String and the other is a String or a Number (the non-string side
// renders with value.FormatShort), and `==`/`!=` between two Strings.
// Any other combination is an EvalError.
func (ev *Evaluator) evalBinOp(n *parser.BinOpNode, c *ctx) (value.Value, error) {
	left, err := ev.Eval(n.Left, c)
	if err != nil {
		return nil, err
	}
	right, err := ev.Eval(n.Right, c)
	if err != nil {
		return nil, err
	}

	if ln, lok := left.(value.Number); lok {
		if rn, rok := right.(value.Number); rok {
			return evalNumericBinOp(n, ln.V, rn.V)
		}
	}

	if isStringLike(left) || isStringLike(right) {
		switch n.Op.Type {
		case lexer.PLUS:
			if isStringOrNumber(left) && isStringOrNumber(right) {
				return value.String{V: renderConcat(left) + renderConcat(right)}, nil
			}
		case lexer.EQ, lexer.NE:
			ls, lok := left.(value.String)
			rs, rok := right.(value.String)
			if lok && rok {
				eq := ls.V == rs.V
				if n.Op.Type == lexer.NE {
					eq = !eq
				}
				return boolNumber(eq), nil
			}
		}
	}

	return nil, gomixerr.NewEval(n.Loc(), "operator %q not supported between %s and %s", n.Op.Literal, left.Kind(), right.Kind())
}

func isStringLike(v value.Value) bool {
	_, ok := v.(value.String)
	return ok
}

// isStringOrNumber reports whether v is one of the two kinds `+`
// concatenation accepts alongside a String operand (spec.md §4.4: "a
// String with a Number concatenates"; any other combination fails with
// EvalError, confirmed by original_source/main.cpp's plus handler, which
// only special-cases string+string and string+f32).
func isStringOrNumber(v value.Value) bool {
	switch v.(type) {
	case value.String, value.Number:
		return true
	default:
		return false
	}
}

func renderConcat(v value.Value) string {
	if s, ok := v.(value.String); ok {
		return s.V
	}
	return value.FormatShort(v.(value.Number).V)
}

func evalNumericBinOp(n *parser.BinOpNode, l, r float32) (value.Value, error) {
	switch n.Op.Type {
	case lexer.PLUS:
		return value.Number{V: l + r}, nil
	case lexer.MINUS:
		return value.Number{V: l - r}, nil
	case lexer.STAR:
		return value.Number{V: l * r}, nil
	case lexer.SLASH:
		return value.Number{V: l / r}, nil
	case lexer.LT:
		return boolNumber(l < r), nil
	case lexer.GT:
		return boolNumber(l > r), nil
	case lexer.LE:
		return boolNumber(l <= r), nil
	case lexer.GE:
		return boolNumber(l >= r), nil
	case lexer.EQ:
		return boolNumber(l == r), nil
	case lexer.NE:
		return boolNumber(l != r), nil
	default:
		return nil, gomixerr.NewEval(n.Loc(), "unsupported numeric operator %q", n.Op.Literal)
	}
}

func boolNumber(b bool) value.Number {
	if b {
		return value.Number{V: 1.0}
	}
	return value.Number{V: 0.0}
}

// evalUnOp implements spec.md §4.4's UnOp table: the operand must be a
// Number; `-` negates, `+` is identity, `!` is a zero-test.
func (ev *Evaluator) evalUnOp(n *parser.UnOpNode, c *ctx) (value.Value, error) {
	operand, err := ev.Eval(n.Operand, c)
	if err != nil {
		return nil, err
	}
	num, ok := operand.(value.Number)
	if !ok {
		return nil, gomixerr.NewEval(n.Loc(), "unary operator %q requires a number operand, got %s", n.Op.Literal, operand.Kind())
	}
	switch n.Op.Type {
	case lexer.MINUS:
		return value.Number{V: -num.V}, nil
	case lexer.PLUS:
		return value.Number{V: num.V}, nil
	case lexer.NOT:
		return boolNumber(num.V == 0), nil
	default:
		return nil, gomixerr.NewEval(n.Loc(), "unsupported unary operator %q", n.Op.Literal)
	}
}
