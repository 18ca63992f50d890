package parser

import (
	"github.com/nibscript/nib/internal/ast"
	"github.com/nibscript/nib/internal/errors"
	"github.com/nibscript/nib/internal/token"
)

// parseFunctionLiteral parses `fn (params) -> type { statements }` and
// then rewrites a trailing expression statement into a Return, per
// spec.md's implicit-return rule.
func (p *Parser) parseFunctionLiteral() (ast.Expression, *errors.Error) {
	pos := p.cur.Pos
	p.next() // consume 'fn'

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var params []ast.Param
	for p.cur.Type != token.RPAREN {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if p.cur.Type == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.ARROW); err != nil {
		return nil, err
	}

	if !token.IsTypeKeyword(p.cur.Type) {
		return nil, errors.New(errors.UnexpectedTokenType, p.cur.Pos, p.cur.Literal, "expected a return type")
	}
	returnType := ast.TypeFromKeyword(p.cur.Type)
	p.next()

	body, err := p.parseBraceBody()
	if err != nil {
		return nil, err
	}

	body, rewriteErr := rewriteImplicitReturn(body)
	if rewriteErr != nil {
		return nil, rewriteErr
	}

	return &ast.FunctionLiteral{
		Position:   pos,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}, nil
}

func (p *Parser) parseParam() (ast.Param, *errors.Error) {
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return ast.Param{}, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return ast.Param{}, err
	}
	if !token.IsTypeKeyword(p.cur.Type) {
		return ast.Param{}, errors.New(errors.UnexpectedTokenType, p.cur.Pos, p.cur.Literal, "expected a parameter type")
	}
	paramType := ast.TypeFromKeyword(p.cur.Type)
	pos := p.cur.Pos
	p.next()
	return ast.Param{Position: pos, Name: nameTok.Literal, Type: paramType}, nil
}

// parseBraceBody parses `{ statement* }`, used by both function bodies
// and explicit if-branch blocks.
func (p *Parser) parseBraceBody() (ast.StatementList, *errors.Error) {
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	var stmts ast.StatementList
	for p.cur.Type != token.RBRACE {
		if p.cur.Type == token.EOF {
			return nil, errors.New(errors.UnexpectedEOF, p.cur.Pos, "EOF", "expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.next() // consume '}'
	return stmts, nil
}

// rewriteImplicitReturn applies spec.md's function-body rule: a body
// ending in an Assignment is rejected, a body ending in an
// ExpressionStatement is rewritten in place to a Return, and a body
// already ending in Return is left unchanged.
func rewriteImplicitReturn(body ast.StatementList) (ast.StatementList, *errors.Error) {
	if len(body) == 0 {
		return nil, errors.New(errors.FunctionShouldEndWithReturn, token.Position{}, "", "function body must not be empty")
	}

	last := body[len(body)-1]
	switch n := last.(type) {
	case *ast.Return:
		return body, nil
	case *ast.ExpressionStatement:
		body[len(body)-1] = &ast.Return{Position: n.Position, Value: n.Expr}
		return body, nil
	default:
		return nil, errors.New(errors.FunctionShouldEndWithReturn, last.Pos(), "", "function body must end with a return or an expression, not an assignment")
	}
}
