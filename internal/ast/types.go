package ast

import "github.com/nibscript/nib/internal/token"

// Type is one of the seven declared/inferred value types of the core
// language.
type Type int

const (
	I32 Type = iota
	F32
	Bool
	String
	Function
	Unit
	List
)

var typeNames = [...]string{"i32", "f32", "bool", "string", "function", "unit", "list"}

func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// TypeFromKeyword maps a lexed type keyword token to its ast.Type. The
// caller must have already checked token.IsTypeKeyword.
func TypeFromKeyword(tt token.Type) Type {
	switch tt {
	case token.I32:
		return I32
	case token.F32:
		return F32
	case token.BOOLTYPE:
		return Bool
	case token.STRTYPE:
		return String
	case token.FUNCTYPE:
		return Function
	case token.UNIT:
		return Unit
	case token.LISTTYPE:
		return List
	default:
		panic("ast: TypeFromKeyword called with a non-type-keyword token")
	}
}
