/*
File    : gomix-script/internal/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeOperators(t *testing.T) {
	tokens, err := Tokenize(`= == ! != < <= > >=`)
	require.NoError(t, err)

	want := []TokenType{ASSIGN, EQ, NOT, NE, LT, LE, GT, GE, EOF}
	got := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		got[i] = tok.Type
	}
	assert.Equal(t, want, got)
}

func TestTokenizeKeywordsAndIdentifiers(t *testing.T) {
	tokens, err := Tokenize(`fn if else while for return print array boo`)
	require.NoError(t, err)

	want := []TokenType{FN, IF, ELSE, WHILE, FOR, RETURN, PRINT, ARRAY, IDENTIFIER, EOF}
	for i, tok := range tokens {
		assert.Equal(t, want[i], tok.Type, "token %d", i)
	}
}

func TestTokenizeNumber(t *testing.T) {
	tokens, err := Tokenize(`3.14 42`)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.InDelta(t, float32(3.14), tokens[0].Number, 0.0001)
	assert.Equal(t, NUMBER, tokens[1].Type)
	assert.Equal(t, float32(42), tokens[1].Number)
}

func TestTokenizeString(t *testing.T) {
	tokens, err := Tokenize(`"hello, world"`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hello, world", tokens[0].Literal)
}

func TestTokenizeComment(t *testing.T) {
	tokens, err := Tokenize("x = 1; // trailing comment\ny = 2;")
	require.NoError(t, err)
	// comment must be fully skipped, not emitted as a token
	for _, tok := range tokens {
		assert.NotContains(t, tok.Literal, "trailing")
	}
}

func TestTokenizeUnterminatedStringIsLexError(t *testing.T) {
	_, err := Tokenize(`"never closed`)
	require.Error(t, err)
}

func TestTokenizeInvalidByteIsLexError(t *testing.T) {
	_, err := Tokenize("x = @;")
	require.Error(t, err)
}

func TestTokenizeLineAndColumnAdvanceMonotonically(t *testing.T) {
	tokens, err := Tokenize("a\nbb ccc")
	require.NoError(t, err)
	require.Len(t, tokens, 4) // a, bb, ccc, EOF
	assert.Equal(t, 1, tokens[0].Loc.Line)
	assert.Equal(t, 2, tokens[1].Loc.Line)
	assert.Less(t, tokens[1].Loc.Column, tokens[2].Loc.Column)
}

func TestStreamAlwaysEndsInEOF(t *testing.T) {
	tokens, err := Tokenize(`print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, EOF, tokens[len(tokens)-1].Type)
}
