// Package evaluator is the tree-walking interpreter: statement and
// expression dispatch, the call protocol, and the dynamic type checks
// spec.md requires at assignment, call, and return boundaries.
//
// Every expression evaluates to an ExecResult, not a bare Value, because
// an if-expression's branch is a Statement and may itself contain a
// `return` — which must unwind through however many levels of nested
// expression evaluation separate it from the enclosing function call's
// Frame. Propagating the tri-valued result uniformly, rather than only
// at the statement level spec.md's prose describes, is how that unwind
// reaches the call boundary correctly.
package evaluator

import (
	"bufio"
	"io"

	"github.com/nibscript/nib/internal/ast"
	"github.com/nibscript/nib/internal/builtins"
	"github.com/nibscript/nib/internal/errors"
	"github.com/nibscript/nib/internal/runtime"
	"github.com/nibscript/nib/internal/token"
)

// Evaluator holds the I/O the standard library binds against and any
// debugging flags the CLI sets.
type Evaluator struct {
	Out   io.Writer
	In    *bufio.Reader
	Trace bool
}

// New creates an Evaluator writing to out and reading `read()` lines
// from in.
func New(out io.Writer, in io.Reader) *Evaluator {
	return &Evaluator{Out: out, In: bufio.NewReader(in)}
}

// RootScope builds a fresh root scope pre-populated with the standard
// library bindings.
func (e *Evaluator) RootScope() *runtime.Scope {
	scope := runtime.NewScope()
	builtins.Install(scope, e.Out, e.In)
	return scope
}

// RunProgram evaluates a full program: the top-level statement list is
// run like any other statement list (see Frame's design note), yielding
// either a produced value or Unit. A `return` reaching the root is
// InvalidReturnLocation, since there is no enclosing call to catch it.
func (e *Evaluator) RunProgram(prog ast.StatementList) (runtime.Value, *errors.Error) {
	scope := e.RootScope()
	result, err := e.Run(NewFrame(prog), scope)
	if err != nil {
		return nil, err
	}
	if result.IsReturned() {
		return nil, errors.New(errors.InvalidReturnLocation, result.Pos, "return", "a return statement at the top level has no enclosing function to return from")
	}
	return result.Value, nil
}

// execStatement runs a single statement against scope, returning its
// ExecResult and the scope subsequent statements in the same list should
// see (Assignment extends it; every other statement kind leaves it
// unchanged).
func (e *Evaluator) execStatement(stmt ast.Statement, scope *runtime.Scope) (ExecResult, *runtime.Scope, *errors.Error) {
	switch n := stmt.(type) {
	case *ast.Assignment:
		return e.execAssignment(n, scope)

	case *ast.Return:
		result, err := e.evalExpression(n.Value, scope)
		if err != nil {
			return ExecResult{}, scope, err
		}
		if result.IsReturned() {
			return result, scope, nil
		}
		return Returned(result.Value, n.Position), scope, nil

	case *ast.ExpressionStatement:
		result, err := e.evalExpression(n.Expr, scope)
		if err != nil {
			return ExecResult{}, scope, err
		}
		return result, scope, nil

	case *ast.BlockStatement:
		result, err := e.Run(NewFrame(n.Body), scope.Extend())
		if err != nil {
			return ExecResult{}, scope, err
		}
		return result, scope, nil

	default:
		return ExecResult{}, scope, errors.New(errors.UnexpectedStatementType, stmt.Pos(), "", "unrecognised statement node")
	}
}

func (e *Evaluator) execAssignment(a *ast.Assignment, scope *runtime.Scope) (ExecResult, *runtime.Scope, *errors.Error) {
	if a.DeclaredType == ast.Function {
		return e.execFunctionAssignment(a, scope)
	}

	result, err := e.evalExpression(a.Value, scope)
	if err != nil {
		return ExecResult{}, scope, err
	}
	if result.IsReturned() {
		return result, scope, nil
	}

	if result.Value.TypeOf() != a.DeclaredType {
		return ExecResult{}, scope, typeMismatch(a.Position, a.DeclaredType, result.Value)
	}

	next := scope.Extend()
	next.Define(a.Name, runtime.Symbol{Position: a.Position, DeclaredType: a.DeclaredType, Value: result.Value})
	return Unit(), next, nil
}

// execFunctionAssignment implements the late-init-cell recursion
// protocol: bind the name to an incomplete cell first, evaluate the RHS
// in a scope that already contains that binding (so a reference to its
// own name inside the function body resolves once the function is
// later called), then patch the cell with the resulting closure.
func (e *Evaluator) execFunctionAssignment(a *ast.Assignment, scope *runtime.Scope) (ExecResult, *runtime.Scope, *errors.Error) {
	next := scope.Extend()
	handle := next.BeginLateInit(a.Name, a.Position, ast.Function)

	result, err := e.evalExpression(a.Value, next)
	if err != nil {
		return ExecResult{}, scope, err
	}
	if result.IsReturned() {
		return result, scope, nil
	}

	if result.Value.TypeOf() != ast.Function {
		return ExecResult{}, scope, typeMismatch(a.Position, ast.Function, result.Value)
	}

	handle.Complete(result.Value)
	return Unit(), next, nil
}

func typeMismatch(pos token.Position, declared ast.Type, got runtime.Value) *errors.Error {
	return errors.New(errors.TypeMismatch, pos, runtime.TypeName(got),
		"expected "+declared.String()+", found "+got.TypeOf().String())
}
