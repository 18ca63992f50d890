package printer_test

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/nibscript/nib/internal/lexer"
	"github.com/nibscript/nib/internal/parser"
	"github.com/nibscript/nib/internal/printer"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func printProgram(t *testing.T, src string) string {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %s", err.Format())
	}
	return printer.Print(prog)
}

func TestPrintAssignmentAndBinary(t *testing.T) {
	out := printProgram(t, "i32 x = 1 + 2 * 3;")
	snaps.MatchSnapshot(t, out)
}

func TestPrintFunctionLiteral(t *testing.T) {
	out := printProgram(t, "function fact = fn (n: i32) -> i32 { if (n <= 1) { 1 } else { n * fact(n - 1) } };")
	snaps.MatchSnapshot(t, out)
}

func TestPrintListAndCons(t *testing.T) {
	out := printProgram(t, "list xs = 1 :: [2, 3];")
	snaps.MatchSnapshot(t, out)
}
