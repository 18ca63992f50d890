package runtime

import (
	"github.com/nibscript/nib/internal/ast"
	"github.com/nibscript/nib/internal/token"
)

// Symbol is a single bound entry in a Scope.
type Symbol struct {
	Position     token.Position
	DeclaredType ast.Type
	Value        Value
}

// cell is the interior-mutable single-writer box a Scope's map holds.
// Outside the late-init patch window (see BeginLateInit), its contents
// are never mutated again.
type cell struct {
	symbol Symbol
	ready  bool
}

// Scope is a persistent, parent-linked environment. Extend returns a new
// child scope; lookups walk from a scope up through its parent chain,
// so shadowing in a child is invisible to its parent and visible to
// further children.
type Scope struct {
	symbols map[string]*cell
	parent  *Scope
}

// NewScope creates a root scope with no parent. The interpreter
// pre-populates one of these with the standard library before running
// any user source.
func NewScope() *Scope {
	return &Scope{symbols: make(map[string]*cell)}
}

// Extend returns a new child scope whose lookups fall back to s.
func (s *Scope) Extend() *Scope {
	return &Scope{symbols: make(map[string]*cell), parent: s}
}

// ExtendMany returns a new child scope with every (name, symbol) pair in
// bindings already defined. Used to build a callee's scope from its
// closure's captured environment plus its bound arguments in one step.
func (s *Scope) ExtendMany(bindings map[string]Symbol) *Scope {
	child := s.Extend()
	for name, sym := range bindings {
		child.Define(name, sym)
	}
	return child
}

// Define binds name to sym in s directly (not via the late-init
// protocol). Used for every non-function Assignment and for native
// stdlib bindings in the root scope.
func (s *Scope) Define(name string, sym Symbol) {
	s.symbols[name] = &cell{symbol: sym, ready: true}
}

// LateInitHandle lets the evaluator patch a cell's value exactly once,
// after the defining expression has been evaluated in a scope that
// already contains the binding — the mechanism that makes recursive
// function bindings possible without mutable globals.
type LateInitHandle struct {
	c *cell
}

// BeginLateInit binds name in s to an as-yet-incomplete cell and returns
// a handle to complete it. A Lookup of name before Complete is called
// finds the binding with a nil Value. A function literal's body is not
// executed until the function is called, by which point Complete has
// always run; the evaluator rejects any other read of the name in that
// window (such as a right-hand side that passes the name to a call).
func (s *Scope) BeginLateInit(name string, pos token.Position, declaredType ast.Type) *LateInitHandle {
	c := &cell{symbol: Symbol{Position: pos, DeclaredType: declaredType}, ready: false}
	s.symbols[name] = c
	return &LateInitHandle{c: c}
}

// Complete performs the single permitted write to a late-init cell.
func (h *LateInitHandle) Complete(v Value) {
	h.c.symbol.Value = v
	h.c.ready = true
}

// Lookup walks the scope chain from s to the root, returning the nearest
// binding. The second return is false if name is unbound anywhere in the
// chain.
func (s *Scope) Lookup(name string) (Symbol, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if c, ok := cur.symbols[name]; ok {
			return c.symbol, true
		}
	}
	return Symbol{}, false
}

// Closure pairs a function literal with the scope in effect when it was
// evaluated, giving it proper lexical capture.
type Closure struct {
	Fn  *ast.FunctionLiteral
	Env *Scope
}
