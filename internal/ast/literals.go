package ast

import "github.com/nibscript/nib/internal/token"

// IntLiteral is an i32 literal.
type IntLiteral struct {
	Position token.Position
	Value    int32
}

func (n *IntLiteral) Pos() token.Position { return n.Position }
func (n *IntLiteral) expressionNode()     {}

// FloatLiteral is an f32 literal.
type FloatLiteral struct {
	Position token.Position
	Value    float32
}

func (n *FloatLiteral) Pos() token.Position { return n.Position }
func (n *FloatLiteral) expressionNode()     {}

// BoolLiteral is the `true` or `false` keyword-literal.
type BoolLiteral struct {
	Position token.Position
	Value    bool
}

func (n *BoolLiteral) Pos() token.Position { return n.Position }
func (n *BoolLiteral) expressionNode()     {}

// StringLiteral is a double-quoted string literal.
type StringLiteral struct {
	Position token.Position
	Value    string
}

func (n *StringLiteral) Pos() token.Position { return n.Position }
func (n *StringLiteral) expressionNode()     {}

// UnitLiteral is the `()` literal, distinct from Paren(e).
type UnitLiteral struct {
	Position token.Position
}

func (n *UnitLiteral) Pos() token.Position { return n.Position }
func (n *UnitLiteral) expressionNode()     {}
