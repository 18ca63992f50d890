package ast

import (
	"testing"

	"github.com/nibscript/nib/internal/token"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{I32, "i32"},
		{F32, "f32"},
		{Bool, "bool"},
		{String, "string"},
		{Function, "function"},
		{Unit, "unit"},
		{List, "list"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestTypeFromKeyword(t *testing.T) {
	tests := []struct {
		tt   token.Type
		want Type
	}{
		{token.I32, I32},
		{token.F32, F32},
		{token.BOOLTYPE, Bool},
		{token.STRTYPE, String},
		{token.FUNCTYPE, Function},
		{token.UNIT, Unit},
		{token.LISTTYPE, List},
	}
	for _, tt := range tests {
		if got := TypeFromKeyword(tt.tt); got != tt.want {
			t.Errorf("TypeFromKeyword(%s) = %v, want %v", tt.tt, got, tt.want)
		}
	}
}

func TestTypeFromKeywordPanicsOnNonType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-type keyword")
		}
	}()
	TypeFromKeyword(token.IDENT)
}
