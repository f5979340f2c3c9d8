/*
File    : gomix-script/internal/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomix-script/internal/gomixerr"
	"github.com/akashmaji946/gomix-script/internal/lexer"
)

// Parser is a recursive-descent parser with a precedence ladder for
// expressions and postfix composition for call/index/member (spec.md §4.2).
// It holds references into the token buffer and never mutates it.
type Parser struct {
	tokens []lexer.Token
	pos    int

	// Functions maps every fn-as-expression's assigned id to its declaration,
	// in registration order. The interpreter resolves Fn values through it.
	Functions map[int]*FnDeclNode
	nextFnID  int
}

// New builds a Parser over an already-tokenized source. tokens must end
// with an EOF token (as lexer.Tokenize guarantees).
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens:    tokens,
		Functions: make(map[int]*FnDeclNode),
	}
}

// Parse parses a full program: a statement list with its own-scope flag off
// (globals live in the outermost scope). Fails with a ParseError on the
// first unexpected token or malformed production.
func Parse(tokens []lexer.Token) (*StatementListNode, map[int]*FnDeclNode, error) {
	p := New(tokens)
	root, err := p.parseProgram()
	if err != nil {
		return nil, nil, err
	}
	return root, p.Functions, nil
}

func (p *Parser) cur() lexer.Token  { return p.tokens[p.pos] }
func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches kind, else raises a
// ParseError carrying the offending token's location (spec.md §4.2).
func (p *Parser) expect(kind lexer.TokenType) (lexer.Token, error) {
	if p.cur().Type != kind {
		return lexer.Token{}, gomixerr.NewParse(p.cur().Loc, "expected %s, got %s %q", kind, p.cur().Type, p.cur().Literal)
	}
	return p.advance(), nil
}

func (p *Parser) at(kind lexer.TokenType) bool { return p.cur().Type == kind }

// parseProgram = StatementList with own-scope off.
func (p *Parser) parseProgram() (*StatementListNode, error) {
	loc := p.cur().Loc
	var stmts []Node
	for !p.at(lexer.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &StatementListNode{base: base{loc}, Statements: stmts, NeedsOwnScope: false}, nil
}

// parseBlock = `{` statement* `}`, own-scope on.
func (p *Parser) parseBlock() (*StatementListNode, error) {
	open, err := p.expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}
	var stmts []Node
	for !p.at(lexer.RBRACE) {
		if p.at(lexer.EOF) {
			return nil, gomixerr.NewParse(p.cur().Loc, "unterminated block, expected }")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &StatementListNode{base: base{open.Loc}, Statements: stmts, NeedsOwnScope: true}, nil
}

// parseStatement = block | singleStatement.
func (p *Parser) parseStatement() (Node, error) {
	switch p.cur().Type {
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.RETURN:
		return p.parseReturn()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parsePrint() (Node, error) {
	tok, _ := p.expect(lexer.PRINT)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &PrintNode{base: base{tok.Loc}, Expr: expr}, nil
}

// parseIf = `if` expr block (`else` block)?. Used both as a statement and,
// via the same production, as an expression atom (spec.md §4.2).
func (p *Parser) parseIf() (*IfNode, error) {
	tok, _ := p.expect(lexer.IF)
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock *StatementListNode
	if p.at(lexer.ELSE) {
		p.advance()
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &IfNode{base: base{tok.Loc}, Cond: cond, Then: then, Else: elseBlock}, nil
}

func (p *Parser) parseWhile() (Node, error) {
	tok, _ := p.expect(lexer.WHILE)
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &WhileNode{base: base{tok.Loc}, Cond: cond, Body: body}, nil
}

// parseFor = `for` expr `;` expr `;` expr block — the post-expression is
// NOT terminated by `;`, it is followed directly by the block.
func (p *Parser) parseFor() (Node, error) {
	tok, _ := p.expect(lexer.FOR)
	init, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	post, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ForNode{base: base{tok.Loc}, Init: init, Cond: cond, Post: post, Body: body}, nil
}

func (p *Parser) parseReturn() (Node, error) {
	tok, _ := p.expect(lexer.RETURN)
	var expr Node
	if !p.at(lexer.SEMICOLON) {
		var err error
		expr, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &ReturnNode{base: base{tok.Loc}, Expr: expr}, nil
}

func (p *Parser) parseExprStatement() (Node, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return expr, nil
}
