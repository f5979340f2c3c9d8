/*
File    : gomix-script/internal/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Implements the precedence ladder from spec.md §4.2:

	6  =                        assignment, right-associative
	5  < >                      left-associative
	4  == != <= >=               left-associative, grouped together
	3  + -                      right-recursive on the right operand
	2  * /                      right-recursive on the right operand
	1  unary + - !               prefix
	0  atoms + postfix chain
*/
package parser

import "github.com/akashmaji946/gomix-script/internal/lexer"

// parseExpr is the entry point for any expression context.
func (p *Parser) parseExpr() (Node, error) {
	return p.parseAssign()
}

// level 6: assignment. The right operand is parsed by parseAssign again (the
// full expression grammar), making `a = b = c` right-associative.
func (p *Parser) parseAssign() (Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if p.at(lexer.ASSIGN) {
		tok := p.advance()
		right, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		return &AssignNode{base: base{tok.Loc}, Target: left, Value: right}, nil
	}
	return left, nil
}

// level 5: < and >, left-associative.
func (p *Parser) parseComparison() (Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.LT) || p.at(lexer.GT) {
		op := p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &BinOpNode{base: base{op.Loc}, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// level 4: == != <= >=, grouped at one level, left-associative.
func (p *Parser) parseEquality() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.EQ) || p.at(lexer.NE) || p.at(lexer.LE) || p.at(lexer.GE) {
		op := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &BinOpNode{base: base{op.Loc}, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// level 3: + -. Recurses on the same level for the right operand, producing
// a right-leaning tree: `1 - 2 - 3` parses as `1 - (2 - 3)` (spec.md §4.2).
func (p *Parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	if p.at(lexer.PLUS) || p.at(lexer.MINUS) {
		op := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &BinOpNode{base: base{op.Loc}, Op: op, Left: left, Right: right}, nil
	}
	return left, nil
}

// level 2: * /. Same right-recursive shape as level 3.
func (p *Parser) parseMultiplicative() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.at(lexer.STAR) || p.at(lexer.SLASH) {
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		return &BinOpNode{base: base{op.Loc}, Op: op, Left: left, Right: right}, nil
	}
	return left, nil
}

// level 1: prefix + - !.
func (p *Parser) parseUnary() (Node, error) {
	if p.at(lexer.PLUS) || p.at(lexer.MINUS) || p.at(lexer.NOT) {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnOpNode{base: base{op.Loc}, Op: op, Operand: operand}, nil
	}
	return p.parsePostfix()
}

// parsePostfix applies zero or more of call/index/member to an atom, left
// to right, so `a.b[c](d)` parses as FnCall(Index(Member(a,b), c), [d]).
func (p *Parser) parsePostfix() (Node, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Type {
		case lexer.LPAREN:
			expr, err = p.parseCallArgs(expr)
		case lexer.LBRACKET:
			expr, err = p.parseIndex(expr)
		case lexer.DOT:
			expr, err = p.parseMember(expr)
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseCallArgs(callee Node) (Node, error) {
	open, err := p.expect(lexer.LPAREN)
	if err != nil {
		return nil, err
	}
	var args []Node
	if !p.at(lexer.RPAREN) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.at(lexer.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return &FnCallNode{base: base{open.Loc}, Callee: callee, Args: args}, nil
}

func (p *Parser) parseIndex(array Node) (Node, error) {
	open, err := p.expect(lexer.LBRACKET)
	if err != nil {
		return nil, err
	}
	index, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &ArrayIndexingNode{base: base{open.Loc}, Array: array, Index: index}, nil
}

func (p *Parser) parseMember(object Node) (Node, error) {
	dot, err := p.expect(lexer.DOT)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return &MemberAccessNode{base: base{dot.Loc}, Object: object, Name: name.Literal}, nil
}
