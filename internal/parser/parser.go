// Package parser turns a token stream into a typed ast.StatementList via
// recursive descent for statements and Pratt-style precedence climbing
// for expressions.
package parser

import (
	"strconv"

	"github.com/nibscript/nib/internal/ast"
	"github.com/nibscript/nib/internal/errors"
	"github.com/nibscript/nib/internal/lexer"
	"github.com/nibscript/nib/internal/token"
)

// Parser consumes tokens from a *lexer.Lexer one at a time, keeping a
// single token of lookahead.
type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token
}

// New creates a Parser reading from l and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
	for p.peek.Type == token.COMMENT {
		p.peek = p.l.NextToken()
	}
}

// ParseProgram consumes every statement until EOF. Parsing stops at the
// first error, per the "no recovery" policy.
func (p *Parser) ParseProgram() (ast.StatementList, *errors.Error) {
	// Prime cur past any leading comment token produced before New's
	// second p.next() call.
	for p.cur.Type == token.COMMENT {
		p.next()
	}

	var stmts ast.StatementList
	for p.cur.Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) expect(tt token.Type) (token.Token, *errors.Error) {
	if p.cur.Type != tt {
		if p.cur.Type == token.EOF {
			return token.Token{}, errors.New(errors.UnexpectedEOF, p.cur.Pos, "EOF", "expected "+tt.String())
		}
		return token.Token{}, errors.New(errors.UnexpectedTokenType, p.cur.Pos, p.cur.Literal, "expected "+tt.String()+", found "+p.cur.Type.String())
	}
	tok := p.cur
	p.next()
	return tok, nil
}

func (p *Parser) consumeOptionalSemicolon() {
	if p.cur.Type == token.SEMICOLON {
		p.next()
	}
}

// parseStatement dispatches on lookahead: `return`, a type keyword
// (Assignment), or otherwise an expression statement.
func (p *Parser) parseStatement() (ast.Statement, *errors.Error) {
	switch {
	case p.cur.Type == token.RETURN:
		return p.parseReturn()
	case token.IsTypeKeyword(p.cur.Type):
		return p.parseAssignment()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseReturn() (ast.Statement, *errors.Error) {
	pos := p.cur.Pos
	p.next() // consume 'return'
	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	p.consumeOptionalSemicolon()
	return &ast.Return{Position: pos, Value: value}, nil
}

func (p *Parser) parseAssignment() (ast.Statement, *errors.Error) {
	pos := p.cur.Pos
	declaredType := ast.TypeFromKeyword(p.cur.Type)
	p.next() // consume type keyword

	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}

	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	p.consumeOptionalSemicolon()

	return &ast.Assignment{
		Position:     pos,
		DeclaredType: declaredType,
		Name:         nameTok.Literal,
		Value:        value,
	}, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, *errors.Error) {
	pos := p.cur.Pos
	expr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	p.consumeOptionalSemicolon()
	return &ast.ExpressionStatement{Position: pos, Expr: expr}, nil
}

// parseExpression implements precedence climbing: parse a prefix/primary
// form, then repeatedly fold infix operators whose precedence is at least
// minPrec.
func (p *Parser) parseExpression(minPrec int) (ast.Expression, *errors.Error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		if p.cur.Type == token.CONS {
			if precCons < minPrec {
				break
			}
			pos := p.cur.Pos
			p.next()
			right, err := p.parseExpression(precCons) // right-associative: recurse at same prec
			if err != nil {
				return nil, err
			}
			left = &ast.ConsExpression{Position: pos, Head: left, Tail: right}
			continue
		}

		prec := precedenceOf(p.cur.Type)
		if prec == lowest || prec < minPrec {
			break
		}
		opTok := p.cur
		p.next()
		right, err := p.parseExpression(prec + 1) // left-associative: recurse one tighter
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{
			Position: opTok.Pos,
			Left:     left,
			Operator: lexemes[opTok.Type],
			Right:    right,
		}
	}

	return left, nil
}

// parsePrimary parses a prefix form and then any chain of postfix calls,
// since calls bind tighter than every binary operator.
func (p *Parser) parsePrimary() (ast.Expression, *errors.Error) {
	expr, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for p.cur.Type == token.LPAREN {
		expr, err = p.parseCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) parsePrefix() (ast.Expression, *errors.Error) {
	switch p.cur.Type {
	case token.INT:
		return p.parseIntLiteral()
	case token.FLOAT:
		return p.parseFloatLiteral()
	case token.STRING:
		return p.parseStringLiteral()
	case token.TRUE, token.FALSE:
		return p.parseBoolLiteral()
	case token.IDENT:
		return p.parseIdentifier()
	case token.LPAREN:
		return p.parseParenOrUnit()
	case token.FN:
		return p.parseFunctionLiteral()
	case token.IF:
		return p.parseIfExpression()
	case token.LBRACKET:
		return p.parseListLiteral()
	case token.EOF:
		return nil, errors.New(errors.UnexpectedEOF, p.cur.Pos, "EOF", "expected an expression")
	default:
		return nil, errors.New(errors.UnexpectedTokenType, p.cur.Pos, p.cur.Literal, "unexpected token in expression position: "+p.cur.Type.String())
	}
}

func (p *Parser) parseIntLiteral() (ast.Expression, *errors.Error) {
	pos := p.cur.Pos
	v, convErr := strconv.ParseInt(p.cur.Literal, 10, 32)
	if convErr != nil {
		return nil, errors.New(errors.InvalidIntLiteral, pos, p.cur.Literal, convErr.Error())
	}
	p.next()
	return &ast.IntLiteral{Position: pos, Value: int32(v)}, nil
}

func (p *Parser) parseFloatLiteral() (ast.Expression, *errors.Error) {
	pos := p.cur.Pos
	v, convErr := strconv.ParseFloat(p.cur.Literal, 32)
	if convErr != nil {
		return nil, errors.New(errors.InvalidFloatLiteral, pos, p.cur.Literal, convErr.Error())
	}
	p.next()
	return &ast.FloatLiteral{Position: pos, Value: float32(v)}, nil
}

func (p *Parser) parseStringLiteral() (ast.Expression, *errors.Error) {
	lit := &ast.StringLiteral{Position: p.cur.Pos, Value: p.cur.Literal}
	p.next()
	return lit, nil
}

func (p *Parser) parseBoolLiteral() (ast.Expression, *errors.Error) {
	lit := &ast.BoolLiteral{Position: p.cur.Pos, Value: p.cur.Type == token.TRUE}
	p.next()
	return lit, nil
}

func (p *Parser) parseIdentifier() (ast.Expression, *errors.Error) {
	ident := &ast.Identifier{Position: p.cur.Pos, Name: p.cur.Literal}
	p.next()
	return ident, nil
}

// parseParenOrUnit distinguishes `()` (UnitLiteral) from `(e)` (Paren).
func (p *Parser) parseParenOrUnit() (ast.Expression, *errors.Error) {
	pos := p.cur.Pos
	p.next() // consume '('
	if p.cur.Type == token.RPAREN {
		p.next()
		return &ast.UnitLiteral{Position: pos}, nil
	}
	inner, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Paren{Position: pos, Inner: inner}, nil
}

func (p *Parser) parseListLiteral() (ast.Expression, *errors.Error) {
	pos := p.cur.Pos
	p.next() // consume '['

	var items []ast.Expression
	for p.cur.Type != token.RBRACKET {
		item, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if p.cur.Type == token.COMMA {
			p.next()
			continue // allows a trailing comma before ']'
		}
		break
	}

	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ListLiteral{Position: pos, Items: items}, nil
}

func (p *Parser) parseCall(callee ast.Expression) (ast.Expression, *errors.Error) {
	pos := p.cur.Pos
	p.next() // consume '('

	var args []ast.Expression
	for p.cur.Type != token.RPAREN {
		arg, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.cur.Type == token.COMMA {
			p.next()
			continue
		}
		break
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CallExpression{Position: pos, Callee: callee, Args: args}, nil
}
