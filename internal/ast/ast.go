// Package ast defines the typed syntax tree produced by the parser: one
// node type per grammar production in spec.md §2/§6, each carrying a
// source position. For most nodes that is the position of the first
// token; BinaryExpression and ConsExpression carry the operator token's
// position, CallExpression the position of its '(', and Param the
// position of its type keyword.
package ast

import "github.com/nibscript/nib/internal/token"

// Node is implemented by every statement and expression node.
type Node interface {
	Pos() token.Position
}

// Statement is implemented by Assignment, Return, ExpressionStatement,
// and BlockStatement.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression-producing node.
type Expression interface {
	Node
	expressionNode()
}

// StatementList is a top-level program or a function body: a flat
// sequence of statements.
type StatementList []Statement

// Identifier names a bound symbol.
type Identifier struct {
	Position token.Position
	Name     string
}

func (i *Identifier) Pos() token.Position { return i.Position }
func (i *Identifier) expressionNode()     {}
