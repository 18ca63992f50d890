package parser

import (
	"github.com/nibscript/nib/internal/ast"
	"github.com/nibscript/nib/internal/errors"
	"github.com/nibscript/nib/internal/token"
)

// parseIfExpression parses `if (cond) branch (else branch)?`.
func (p *Parser) parseIfExpression() (ast.Expression, *errors.Error) {
	pos := p.cur.Pos
	p.next() // consume 'if'

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	then, err := p.parseBranch()
	if err != nil {
		return nil, err
	}

	var elseBranch ast.Statement
	if p.cur.Type == token.ELSE {
		p.next()
		elseBranch, err = p.parseBranch()
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfExpression{Position: pos, Condition: cond, Then: then, Else: elseBranch}, nil
}

// parseBranch parses a single statement or a `{ statement* }` block,
// accepted interchangeably for symmetry with function-body parsing.
func (p *Parser) parseBranch() (ast.Statement, *errors.Error) {
	if p.cur.Type == token.LBRACE {
		pos := p.cur.Pos
		body, err := p.parseBraceBody()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStatement{Position: pos, Body: body}, nil
	}
	return p.parseStatement()
}
