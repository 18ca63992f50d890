package ast

import "github.com/nibscript/nib/internal/token"

// Assignment binds Name to the value of Value, whose runtime type must
// equal DeclaredType.
type Assignment struct {
	Position     token.Position
	DeclaredType Type
	Name         string
	Value        Expression
}

func (n *Assignment) Pos() token.Position { return n.Position }
func (n *Assignment) statementNode()      {}

// Return produces Value and unwinds to the enclosing function frame.
type Return struct {
	Position token.Position
	Value    Expression
}

func (n *Return) Pos() token.Position { return n.Position }
func (n *Return) statementNode()      {}

// ExpressionStatement evaluates Expr purely for its value (or, if it is
// the implicit-return rewrite target, its value becomes the enclosing
// function's result).
type ExpressionStatement struct {
	Position token.Position
	Expr     Expression
}

func (n *ExpressionStatement) Pos() token.Position { return n.Position }
func (n *ExpressionStatement) statementNode()      {}

// BlockStatement wraps a brace-delimited `{ statement* }` form used as an
// if-branch (function bodies are a plain StatementList), so it can appear
// wherever a single
// Statement is expected while still running its own StatementList via a
// nested Frame.
type BlockStatement struct {
	Position token.Position
	Body     StatementList
}

func (n *BlockStatement) Pos() token.Position { return n.Position }
func (n *BlockStatement) statementNode()      {}
