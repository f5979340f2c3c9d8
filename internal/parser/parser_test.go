/*
File    : gomix-script/internal/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/gomix-script/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*StatementListNode, map[int]*FnDeclNode) {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	root, fns, err := Parse(toks)
	require.NoError(t, err)
	return root, fns
}

func TestAdditiveIsRightLeaning(t *testing.T) {
	// 1 - 2 - 3 must parse as 1 - (2 - 3), not (1 - 2) - 3.
	root, _ := parse(t, "1 - 2 - 3;")
	require.Len(t, root.Statements, 1)
	top, ok := root.Statements[0].(*BinOpNode)
	require.True(t, ok)
	assert.Equal(t, lexer.MINUS, top.Op.Type)
	left, ok := top.Left.(*NumberNode)
	require.True(t, ok)
	assert.Equal(t, float32(1), left.Value)
	right, ok := top.Right.(*BinOpNode)
	require.True(t, ok)
	assert.Equal(t, lexer.MINUS, right.Op.Type)
}

func TestMultiplicativeIsRightLeaning(t *testing.T) {
	root, _ := parse(t, "8 / 4 / 2;")
	top, ok := root.Statements[0].(*BinOpNode)
	require.True(t, ok)
	assert.Equal(t, lexer.SLASH, top.Op.Type)
	_, leftIsNumber := top.Left.(*NumberNode)
	assert.True(t, leftIsNumber)
	_, rightIsBinOp := top.Right.(*BinOpNode)
	assert.True(t, rightIsBinOp)
}

func TestAssignIsRightAssociative(t *testing.T) {
	root, _ := parse(t, "a = b = 3;")
	top, ok := root.Statements[0].(*AssignNode)
	require.True(t, ok)
	assert.Equal(t, "a", top.Target.(*IdentifierNode).Name)
	inner, ok := top.Value.(*AssignNode)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Target.(*IdentifierNode).Name)
}

func TestComparisonAndEqualityPrecedence(t *testing.T) {
	// 1 + 2 < 4 == 1 should group as (1+2) < (4 == 1), since < binds looser
	// than == in this grammar (level 5 wraps level 4's results).
	root, _ := parse(t, "1 + 2 < 4 == 1;")
	top, ok := root.Statements[0].(*BinOpNode)
	require.True(t, ok)
	assert.Equal(t, lexer.LT, top.Op.Type)
	eq, ok := top.Right.(*BinOpNode)
	require.True(t, ok)
	assert.Equal(t, lexer.EQ, eq.Op.Type)
}

func TestPostfixChainLeftToRight(t *testing.T) {
	root, _ := parse(t, "a.b[c](d);")
	call, ok := root.Statements[0].(*FnCallNode)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
	idx, ok := call.Callee.(*ArrayIndexingNode)
	require.True(t, ok)
	member, ok := idx.Array.(*MemberAccessNode)
	require.True(t, ok)
	assert.Equal(t, "b", member.Name)
	_, objIsIdent := member.Object.(*IdentifierNode)
	assert.True(t, objIsIdent)
}

func TestUnaryIsPrefixAndRightRecursive(t *testing.T) {
	root, _ := parse(t, "- - 3;")
	outer, ok := root.Statements[0].(*UnOpNode)
	require.True(t, ok)
	assert.Equal(t, lexer.MINUS, outer.Op.Type)
	_, innerIsUnOp := outer.Operand.(*UnOpNode)
	assert.True(t, innerIsUnOp)
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	root, _ := parse(t, "(1 - 2) - 3;")
	top, ok := root.Statements[0].(*BinOpNode)
	require.True(t, ok)
	_, leftIsBinOp := top.Left.(*BinOpNode)
	assert.True(t, leftIsBinOp)
	_, rightIsNumber := top.Right.(*NumberNode)
	assert.True(t, rightIsNumber)
}

func TestTableMakerLiteral(t *testing.T) {
	root, _ := parse(t, `t = { x = 1; y = "hi"; };`)
	assign, ok := root.Statements[0].(*AssignNode)
	require.True(t, ok)
	tbl, ok := assign.Value.(*TableMakerNode)
	require.True(t, ok)
	require.Len(t, tbl.Members, 2)
	assert.Equal(t, "x", tbl.Members[0].Name)
	assert.Equal(t, "y", tbl.Members[1].Name)
}

func TestArrayMakerLiteral(t *testing.T) {
	root, _ := parse(t, `array{ 1, 2, 3 };`)
	arr, ok := root.Statements[0].(*ArrayMakerNode)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)
}

func TestEmptyArrayMaker(t *testing.T) {
	root, _ := parse(t, `array{};`)
	arr, ok := root.Statements[0].(*ArrayMakerNode)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 0)
}

func TestIfAsStatementWithElse(t *testing.T) {
	root, _ := parse(t, `if 1 { print 1; } else { print 2; }`)
	ifn, ok := root.Statements[0].(*IfNode)
	require.True(t, ok)
	require.NotNil(t, ifn.Else)
	assert.True(t, ifn.Then.NeedsOwnScope)
	assert.True(t, ifn.Else.NeedsOwnScope)
}

func TestIfAsExpressionAtom(t *testing.T) {
	root, _ := parse(t, `x = if 1 { 2; } else { 3; };`)
	assign, ok := root.Statements[0].(*AssignNode)
	require.True(t, ok)
	_, valueIsIf := assign.Value.(*IfNode)
	assert.True(t, valueIsIf)
}

func TestWhileLoop(t *testing.T) {
	root, _ := parse(t, `while 1 { print 1; }`)
	w, ok := root.Statements[0].(*WhileNode)
	require.True(t, ok)
	assert.True(t, w.Body.NeedsOwnScope)
}

func TestForLoopPostHasNoTrailingSemicolon(t *testing.T) {
	root, _ := parse(t, `for i = 0; i < 3; i = i + 1 { print i; }`)
	f, ok := root.Statements[0].(*ForNode)
	require.True(t, ok)
	_, postIsAssign := f.Post.(*AssignNode)
	assert.True(t, postIsAssign)
}

func TestReturnWithAndWithoutExpr(t *testing.T) {
	root, _ := parse(t, "return 1; return;")
	r1, ok := root.Statements[0].(*ReturnNode)
	require.True(t, ok)
	assert.NotNil(t, r1.Expr)
	r2, ok := root.Statements[1].(*ReturnNode)
	require.True(t, ok)
	assert.Nil(t, r2.Expr)
}

func TestFnLiteralRegistersInFunctionTable(t *testing.T) {
	root, fns := parse(t, `f = fn(a, b) { return a + b; };`)
	assign, ok := root.Statements[0].(*AssignNode)
	require.True(t, ok)
	decl, ok := assign.Value.(*FnDeclNode)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, decl.Params)
	assert.False(t, decl.Body.NeedsOwnScope)
	require.Contains(t, fns, decl.FnID)
	assert.Same(t, decl, fns[decl.FnID])
}

func TestMultipleFnLiteralsGetDistinctIDs(t *testing.T) {
	root, fns := parse(t, `a = fn() { return 1; }; b = fn() { return 2; };`)
	d1 := root.Statements[0].(*AssignNode).Value.(*FnDeclNode)
	d2 := root.Statements[1].(*AssignNode).Value.(*FnDeclNode)
	assert.NotEqual(t, d1.FnID, d2.FnID)
	assert.Len(t, fns, 2)
}

func TestTopLevelProgramHasNoOwnScope(t *testing.T) {
	root, _ := parse(t, `print 1;`)
	assert.False(t, root.NeedsOwnScope)
}

func TestUnterminatedBlockIsParseError(t *testing.T) {
	toks, err := lexer.Tokenize(`if 1 { print 1;`)
	require.NoError(t, err)
	_, _, err = Parse(toks)
	assert.Error(t, err)
}

func TestUnexpectedTokenIsParseError(t *testing.T) {
	toks, err := lexer.Tokenize(`) 1;`)
	require.NoError(t, err)
	_, _, err = Parse(toks)
	assert.Error(t, err)
}
