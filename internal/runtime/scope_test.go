package runtime

import (
	"testing"

	"github.com/nibscript/nib/internal/ast"
	"github.com/nibscript/nib/internal/token"
)

func TestDefineAndLookup(t *testing.T) {
	s := NewScope()
	s.Define("x", Symbol{DeclaredType: ast.I32, Value: &IntValue{Value: 5}})

	sym, ok := s.Lookup("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if sym.Value.(*IntValue).Value != 5 {
		t.Fatalf("got %v", sym.Value)
	}
}

func TestExtendShadowsParent(t *testing.T) {
	root := NewScope()
	root.Define("x", Symbol{DeclaredType: ast.I32, Value: &IntValue{Value: 1}})

	child := root.Extend()
	child.Define("x", Symbol{DeclaredType: ast.I32, Value: &IntValue{Value: 2}})

	sym, _ := child.Lookup("x")
	if sym.Value.(*IntValue).Value != 2 {
		t.Fatalf("expected child binding to shadow, got %v", sym.Value)
	}

	parentSym, _ := root.Lookup("x")
	if parentSym.Value.(*IntValue).Value != 1 {
		t.Fatalf("expected parent binding unaffected, got %v", parentSym.Value)
	}
}

func TestLookupMissReturnsFalse(t *testing.T) {
	s := NewScope()
	if _, ok := s.Lookup("nope"); ok {
		t.Fatal("expected lookup miss")
	}
}

func TestLateInitRecursiveBinding(t *testing.T) {
	root := NewScope()
	handle := root.BeginLateInit("fact", token.Synthetic, ast.Function)

	// Before Complete, the name is already bound, but the cell holds no
	// value yet.
	sym, ok := root.Lookup("fact")
	if !ok {
		t.Fatal("expected fact to be bound before Complete")
	}
	if sym.Value != nil {
		t.Fatal("expected the late-init cell's value to be unset before Complete")
	}

	closure := &FunctionValue{Closure: &Closure{Env: root}}
	handle.Complete(closure)

	sym, _ = root.Lookup("fact")
	if sym.Value != closure {
		t.Fatal("expected Complete to patch the cell in place")
	}
}

func TestExtendManyBindsAllPairs(t *testing.T) {
	root := NewScope()
	child := root.ExtendMany(map[string]Symbol{
		"a": {DeclaredType: ast.I32, Value: &IntValue{Value: 1}},
		"b": {DeclaredType: ast.I32, Value: &IntValue{Value: 2}},
	})
	if _, ok := child.Lookup("a"); !ok {
		t.Fatal("expected a to be bound")
	}
	if _, ok := child.Lookup("b"); !ok {
		t.Fatal("expected b to be bound")
	}
}
