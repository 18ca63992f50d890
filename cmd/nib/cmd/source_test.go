package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSourceCommandPrintsInlineSourceVerbatim(t *testing.T) {
	oldEval := evalExpr
	defer func() { evalExpr = oldEval }()
	evalExpr = "i32 x = 1;"

	out, err := captureStdout(t, func() error {
		return runSource(sourceCmd, nil)
	})
	if err != nil {
		t.Fatalf("runSource failed: %v", err)
	}
	if out != "i32 x = 1;" {
		t.Fatalf("got %q", out)
	}
}

func TestSourceCommandPrintsFileVerbatim(t *testing.T) {
	oldEval := evalExpr
	defer func() { evalExpr = oldEval }()
	evalExpr = ""

	dir := t.TempDir()
	path := filepath.Join(dir, "prog.nib")
	if err := os.WriteFile(path, []byte("i32 y = 2;"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := captureStdout(t, func() error {
		return runSource(sourceCmd, []string{path})
	})
	if err != nil {
		t.Fatalf("runSource failed: %v", err)
	}
	if out != "i32 y = 2;" {
		t.Fatalf("got %q", out)
	}
}
