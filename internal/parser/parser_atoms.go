/*
File    : gomix-script/internal/parser/parser_atoms.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomix-script/internal/gomixerr"
	"github.com/akashmaji946/gomix-script/internal/lexer"
)

// parseAtom handles the level-0 productions: number, string, identifier,
// `(` expr `)`, tableMaker, arrayMaker, if-as-expression, fn-as-expression.
func (p *Parser) parseAtom() (Node, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		return &NumberNode{base: base{tok.Loc}, Value: tok.Number}, nil

	case lexer.STRING:
		p.advance()
		return &StringNode{base: base{tok.Loc}, Value: tok.Literal}, nil

	case lexer.IDENTIFIER:
		p.advance()
		return &IdentifierNode{base: base{tok.Loc}, Name: tok.Literal}, nil

	case lexer.LPAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.LBRACE:
		return p.parseTableMaker()

	case lexer.ARRAY:
		return p.parseArrayMaker()

	case lexer.IF:
		return p.parseIf()

	case lexer.FN:
		return p.parseFnLiteral()

	default:
		return nil, gomixerr.NewParse(tok.Loc, "unexpected token %s %q", tok.Type, tok.Literal)
	}
}

// parseTableMaker = `{` ( identifier `=` expr `;` )* `}`.
func (p *Parser) parseTableMaker() (Node, error) {
	open, err := p.expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}
	var members []TableMemberInit
	for !p.at(lexer.RBRACE) {
		name, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.ASSIGN); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		members = append(members, TableMemberInit{Name: name.Literal, Expr: expr})
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &TableMakerNode{base: base{open.Loc}, Members: members}, nil
}

// parseArrayMaker = `array` `{` ( expr ( `,` expr )* )? `}`.
func (p *Parser) parseArrayMaker() (Node, error) {
	tok, err := p.expect(lexer.ARRAY)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	var elements []Node
	if !p.at(lexer.RBRACE) {
		for {
			elem, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)
			if !p.at(lexer.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &ArrayMakerNode{base: base{tok.Loc}, Elements: elements}, nil
}

// parseFnLiteral = `fn` `(` ( identifier ( `,` identifier )* )? `)` block.
// The FnDecl is assigned the next function id and recorded in the function
// table. The body's outermost StatementList has its own-scope flag forced
// off, since the function call's fresh scope substitutes for it.
func (p *Parser) parseFnLiteral() (Node, error) {
	tok, err := p.expect(lexer.FN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	if !p.at(lexer.RPAREN) {
		for {
			name, err := p.expect(lexer.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			params = append(params, name.Literal)
			if !p.at(lexer.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	body.NeedsOwnScope = false

	decl := &FnDeclNode{base: base{tok.Loc}, Params: params, Body: body, FnID: p.nextFnID}
	p.Functions[p.nextFnID] = decl
	p.nextFnID++
	return decl, nil
}
