package lexer

import (
	"testing"

	"github.com/nibscript/nib/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `i32 x = 5;
	x = x + 10;
	if (x >= 10) { x } else { 0 }
	`

	tests := []struct {
		expectedLiteral string
		expectedType    token.Type
	}{
		{"i32", token.I32},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"5", token.INT},
		{";", token.SEMICOLON},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"x", token.IDENT},
		{"+", token.PLUS},
		{"10", token.INT},
		{";", token.SEMICOLON},
		{"if", token.IF},
		{"(", token.LPAREN},
		{"x", token.IDENT},
		{">=", token.GTE},
		{"10", token.INT},
		{")", token.RPAREN},
		{"{", token.LBRACE},
		{"x", token.IDENT},
		{"}", token.RBRACE},
		{"else", token.ELSE},
		{"{", token.LBRACE},
		{"0", token.INT},
		{"}", token.RBRACE},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTypeKeywords(t *testing.T) {
	input := "i32 f32 bool string function unit list fn return true false"

	tests := []struct {
		expectedLiteral string
		expectedType    token.Type
	}{
		{"i32", token.I32},
		{"f32", token.F32},
		{"bool", token.BOOLTYPE},
		{"string", token.STRTYPE},
		{"function", token.FUNCTYPE},
		{"unit", token.UNIT},
		{"list", token.LISTTYPE},
		{"fn", token.FN},
		{"return", token.RETURN},
		{"true", token.TRUE},
		{"false", token.FALSE},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s", i, tt.expectedType, tok.Type)
		}
	}
}

func TestOperators(t *testing.T) {
	input := ":: || && == != <= >= -> + - * / % !"

	tests := []token.Type{
		token.CONS, token.OR, token.AND, token.EQ, token.NEQ, token.LTE, token.GTE,
		token.ARROW, token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.BANG,
		token.EOF,
	}

	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s", i, want, tok.Type)
		}
	}
}

func TestStringLiteral(t *testing.T) {
	l := New(`"hello world"`)
	tok := l.NextToken()
	if tok.Type != token.STRING || tok.Literal != "hello world" {
		t.Fatalf("got %s %q", tok.Type, tok.Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"oops`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors()))
	}
}

func TestFloatLiteral(t *testing.T) {
	l := New("3.14")
	tok := l.NextToken()
	if tok.Type != token.FLOAT || tok.Literal != "3.14" {
		t.Fatalf("got %s %q", tok.Type, tok.Literal)
	}
}

func TestLineComment(t *testing.T) {
	l := New("// a comment\ni32 x = 1;")
	tok := l.NextToken()
	if tok.Type != token.I32 {
		t.Fatalf("expected comment to be skipped, got %s", tok.Type)
	}
}

func TestPreserveComments(t *testing.T) {
	l := New("// a comment\ni32", WithPreserveComments(true))
	tok := l.NextToken()
	if tok.Type != token.COMMENT || tok.Literal != " a comment" {
		t.Fatalf("got %s %q", tok.Type, tok.Literal)
	}
}

func TestBareAmpersandIsIllegal(t *testing.T) {
	l := New("&")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors()))
	}
}

func TestPositions(t *testing.T) {
	l := New("i32 x\n= 1;")
	first := l.NextToken()
	if first.Pos.Line != 1 || first.Pos.Column != 1 {
		t.Fatalf("expected (1,1), got (%d,%d)", first.Pos.Line, first.Pos.Column)
	}
}
