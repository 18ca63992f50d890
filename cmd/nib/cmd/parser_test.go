package cmd

import (
	"strings"
	"testing"
)

func TestParserCommandPrintsIndentedAST(t *testing.T) {
	oldEval := evalExpr
	defer func() { evalExpr = oldEval }()
	evalExpr = "i32 x = 1 + 2;"

	out, err := captureStdout(t, func() error {
		return runParser(parserCmd, nil)
	})
	if err != nil {
		t.Fatalf("runParser failed: %v", err)
	}
	if !strings.Contains(out, "Assignment i32 x =") {
		t.Fatalf("expected an Assignment line, got %q", out)
	}
	if !strings.Contains(out, "Binary(+)") {
		t.Fatalf("expected a Binary(+) line, got %q", out)
	}
}

func TestParserCommandReportsParseErrors(t *testing.T) {
	oldEval := evalExpr
	defer func() { evalExpr = oldEval }()
	evalExpr = "i32 x = ;"

	_, err := captureStdout(t, func() error {
		return runParser(parserCmd, nil)
	})
	if err == nil {
		t.Fatal("expected a parse failure")
	}
}
