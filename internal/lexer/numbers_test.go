package lexer

import (
	"testing"

	"github.com/nibscript/nib/internal/token"
)

func TestParseI32(t *testing.T) {
	v, err := parseI32("2147483647")
	if err != nil || v != 2147483647 {
		t.Fatalf("got %d, %v", v, err)
	}
}

func TestParseI32Overflow(t *testing.T) {
	if _, err := parseI32("99999999999999999999"); err == nil {
		t.Fatal("expected an overflow error")
	}
}

func TestOverflowingIntLiteralIsIllegal(t *testing.T) {
	l := New("99999999999999999999")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors()))
	}
}
