package ast

import "github.com/nibscript/nib/internal/token"

// Param is one `identifier: type` entry in a function literal's parameter
// list.
type Param struct {
	Position token.Position
	Name     string
	Type     Type
}

// FunctionLiteral is `fn (params) -> type { body }`. By the time the
// parser returns one, Body's last statement is always a *Return: either
// the user wrote one, or the parser rewrote a trailing expression
// statement into one.
type FunctionLiteral struct {
	Position   token.Position
	Params     []Param
	ReturnType Type
	Body       StatementList
}

func (n *FunctionLiteral) Pos() token.Position { return n.Position }
func (n *FunctionLiteral) expressionNode()     {}

// CallExpression is `callee(args...)`. Calls bind tighter than any binary
// operator, so Callee may itself be a CallExpression (curried calls) or
// any other expression producing a function value.
type CallExpression struct {
	Position token.Position
	Callee   Expression
	Args     []Expression
}

func (n *CallExpression) Pos() token.Position { return n.Position }
func (n *CallExpression) expressionNode()     {}

// Paren records an explicit `(e)` grouping. It evaluates e unchanged and
// exists only so `()` (UnitLiteral) and `(e)` remain distinguishable in
// the tree.
type Paren struct {
	Position token.Position
	Inner    Expression
}

func (n *Paren) Pos() token.Position { return n.Position }
func (n *Paren) expressionNode()     {}

// BinaryExpression is `left Operator right`. Operator is the token
// lexeme (e.g. "+", "&&", "=="), not a TokenType, so evaluator dispatch
// and AST printing share one source of truth.
type BinaryExpression struct {
	Position token.Position
	Left     Expression
	Operator string
	Right    Expression
}

func (n *BinaryExpression) Pos() token.Position { return n.Position }
func (n *BinaryExpression) expressionNode()     {}

// IfExpression is `if (cond) then (else else)?`. Then and Else are each a
// single Statement — a BlockStatement when the source used braces, any
// other Statement otherwise — so if-as-expression and if-as-statement
// share one node.
type IfExpression struct {
	Position  token.Position
	Condition Expression
	Then      Statement
	Else      Statement // nil if no else branch
}

func (n *IfExpression) Pos() token.Position { return n.Position }
func (n *IfExpression) expressionNode()     {}

// ListLiteral is `[a, b, c]`, evaluating to Cons(a, Cons(b, Cons(c, Nil))).
type ListLiteral struct {
	Position token.Position
	Items    []Expression
}

func (n *ListLiteral) Pos() token.Position { return n.Position }
func (n *ListLiteral) expressionNode()     {}

// ConsExpression is `head :: tail`, right-associative.
type ConsExpression struct {
	Position token.Position
	Head     Expression
	Tail     Expression
}

func (n *ConsExpression) Pos() token.Position { return n.Position }
func (n *ConsExpression) expressionNode()     {}
