package parser

import "github.com/nibscript/nib/internal/token"

const (
	lowest = iota
	precCons
	precOr
	precAnd
	precEquality
	precComparison
	precAdditive
	precMultiplicative
)

// precedences maps a binary/cons operator token to its climbing
// precedence. Tokens absent from this table never start an infix
// operation (a call's leading LPAREN is handled separately, and '=' / '!'
// never appear here since they are not binary operators).
var precedences = map[token.Type]int{
	token.CONS:    precCons,
	token.OR:      precOr,
	token.AND:     precAnd,
	token.EQ:      precEquality,
	token.NEQ:     precEquality,
	token.LT:      precComparison,
	token.LTE:     precComparison,
	token.GT:      precComparison,
	token.GTE:     precComparison,
	token.PLUS:    precAdditive,
	token.MINUS:   precAdditive,
	token.STAR:    precMultiplicative,
	token.SLASH:   precMultiplicative,
	token.PERCENT: precMultiplicative,
}

var lexemes = map[token.Type]string{
	token.OR:      "||",
	token.AND:     "&&",
	token.EQ:      "==",
	token.NEQ:     "!=",
	token.LT:      "<",
	token.LTE:     "<=",
	token.GT:      ">",
	token.GTE:     ">=",
	token.PLUS:    "+",
	token.MINUS:   "-",
	token.STAR:    "*",
	token.SLASH:   "/",
	token.PERCENT: "%",
}

func precedenceOf(tt token.Type) int {
	if p, ok := precedences[tt]; ok {
		return p
	}
	return lowest
}
