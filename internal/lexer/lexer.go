/*
File    : gomix-script/internal/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"

	"github.com/akashmaji946/gomix-script/internal/gomixerr"
)

// Lexer scans a single source buffer byte by byte and hands out tokens on
// demand. It never looks ahead more than two characters (spec.md §4.1) and
// never mutates its input.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// New creates a Lexer positioned at the first byte of src, line 1 column 1.
func New(src string) *Lexer {
	lex := &Lexer{
		Src:       src,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
	if lex.SrcLength > 0 {
		lex.Current = src[0]
	}
	return lex
}

// loc returns the location of the byte the lexer is currently sitting on.
func (lex *Lexer) loc() Location {
	return Location{Line: lex.Line, Column: lex.Column}
}

// Peek looks at the next byte without consuming it, or 0 past the end.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves one byte forward, tracking line/column as it goes. Newlines
// are recognized by the callers (IgnoreWhitespaceAndComments, readString) so
// Column resets cleanly.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
		return
	}
	lex.Current = lex.Src[lex.Position]
}

// IgnoreWhitespaceAndComments skips spaces, tabs, newlines and `// ...`
// line comments, leaving Current on the next meaningful byte (or 0 at EOF).
func (lex *Lexer) IgnoreWhitespaceAndComments() {
	for {
		switch {
		case lex.Current == '\n':
			lex.Line++
			lex.Column = 0 // Advance() below brings it to 1
			lex.Advance()
		case isWhitespace(lex.Current):
			lex.Advance()
		case lex.Current == '/' && lex.Peek() == '/':
			for lex.Current != '\n' && lex.Current != 0 {
				lex.Advance()
			}
		default:
			return
		}
	}
}

// Next returns the next token in the stream, or an EOF token once the
// source is exhausted. It fails with a LexError if a byte cannot start any
// token (spec.md §4.1).
func (lex *Lexer) Next() (Token, error) {
	lex.IgnoreWhitespaceAndComments()
	start := lex.loc()

	switch c := lex.Current; {
	case c == 0:
		return NewToken(EOF, "", start), nil

	case isDigit(c):
		return lex.readNumber(start), nil

	case isLetter(c):
		return lex.readIdentifier(start), nil

	case c == '"':
		return lex.readString(start)

	case c == '=':
		return lex.twoChar(start, '=', EQ, ASSIGN, "==", "="), nil
	case c == '!':
		return lex.twoChar(start, '=', NE, NOT, "!=", "!"), nil
	case c == '<':
		return lex.twoChar(start, '=', LE, LT, "<=", "<"), nil
	case c == '>':
		return lex.twoChar(start, '=', GE, GT, ">=", ">"), nil

	default:
		if typ, ok := singleCharTokens[c]; ok {
			lex.Advance()
			return NewToken(typ, string(c), start), nil
		}
		lex.Advance()
		return Token{}, gomixerr.NewLex(start, "unexpected byte %q", c)
	}
}

// singleCharTokens maps bytes that are always exactly one token wide.
var singleCharTokens = map[byte]TokenType{
	'.': DOT, ',': COMMA, ';': SEMICOLON,
	'+': PLUS, '-': MINUS, '*': STAR, '/': SLASH,
	'(': LPAREN, ')': RPAREN,
	'{': LBRACE, '}': RBRACE,
	'[': LBRACKET, ']': RBRACKET,
}

// twoChar handles the `= vs ==`, `! vs !=`, `< vs <=`, `> vs >=` tie-break:
// the two-character form always wins when the second byte matches next.
func (lex *Lexer) twoChar(start Location, second byte, wide, narrow TokenType, wideLit, narrowLit string) Token {
	if lex.Peek() == second {
		lex.Advance()
		lex.Advance()
		return NewToken(wide, wideLit, start)
	}
	lex.Advance()
	return NewToken(narrow, narrowLit, start)
}

// readNumber scans an integer with an optional single `.` fractional part
// into an f32. No exponents, no sign (spec.md §4.1 rule 7).
func (lex *Lexer) readNumber(start Location) Token {
	begin := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}
	if lex.Current == '.' && isDigit(lex.Peek()) {
		lex.Advance()
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}
	text := lex.Src[begin:lex.Position]
	var value float32
	fmt.Sscanf(text, "%g", &value)
	tok := NewToken(NUMBER, text, start)
	tok.Number = value
	return tok
}

// readIdentifier scans a run of letters/digits/underscore starting with a
// letter or underscore, then reclassifies it as a keyword if it matches one.
func (lex *Lexer) readIdentifier(start Location) Token {
	begin := lex.Position
	for isLetter(lex.Current) || isDigit(lex.Current) {
		lex.Advance()
	}
	text := lex.Src[begin:lex.Position]
	return NewToken(lookupIdent(text), text, start)
}

// readString consumes a `"`-delimited literal. No escape sequences are
// recognized; the closing quote is consumed.
func (lex *Lexer) readString(start Location) (Token, error) {
	lex.Advance() // opening quote
	begin := lex.Position
	for lex.Current != '"' {
		if lex.Current == 0 {
			return Token{}, gomixerr.NewLex(start, "unterminated string literal")
		}
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}
		lex.Advance()
	}
	text := lex.Src[begin:lex.Position]
	lex.Advance() // closing quote
	return NewToken(STRING, text, start), nil
}

func isWhitespace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' }
func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// Tokenize runs Next until EOF, collecting the full sequence. The returned
// slice always ends with an EOF token (spec.md §8 invariant 1).
func Tokenize(src string) ([]Token, error) {
	lex := New(src)
	var tokens []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
