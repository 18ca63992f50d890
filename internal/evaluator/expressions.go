package evaluator

import (
	"github.com/nibscript/nib/internal/ast"
	"github.com/nibscript/nib/internal/errors"
	"github.com/nibscript/nib/internal/runtime"
)

// evalExpression dispatches on the concrete expression node type. It
// returns an ExecResult rather than a bare Value so a `return` buried
// inside an if-branch can unwind through it uniformly with statement
// execution (see the package doc comment).
func (e *Evaluator) evalExpression(expr ast.Expression, scope *runtime.Scope) (ExecResult, *errors.Error) {
	switch n := expr.(type) {
	case *ast.IntLiteral:
		return ValueResult(&runtime.IntValue{Value: n.Value}), nil

	case *ast.FloatLiteral:
		return ValueResult(&runtime.FloatValue{Value: n.Value}), nil

	case *ast.BoolLiteral:
		return ValueResult(&runtime.BoolValue{Value: n.Value}), nil

	case *ast.StringLiteral:
		return ValueResult(&runtime.StringValue{Value: n.Value}), nil

	case *ast.UnitLiteral:
		return ValueResult(runtime.TheUnit), nil

	case *ast.Identifier:
		sym, ok := scope.Lookup(n.Name)
		if !ok {
			return ExecResult{}, errors.New(errors.InvalidSymbol, n.Position, n.Name, "no binding for identifier in scope")
		}
		if sym.Value == nil {
			// A late-init cell read before Complete (e.g. `function f = g(f)`).
			return ExecResult{}, errors.New(errors.InvalidSymbol, n.Position, n.Name, "binding is used before its value is initialised")
		}
		return ValueResult(sym.Value), nil

	case *ast.Paren:
		return e.evalExpression(n.Inner, scope)

	case *ast.FunctionLiteral:
		return ValueResult(&runtime.FunctionValue{Closure: &runtime.Closure{Fn: n, Env: scope}}), nil

	case *ast.ListLiteral:
		return e.evalListLiteral(n, scope)

	case *ast.ConsExpression:
		return e.evalCons(n, scope)

	case *ast.BinaryExpression:
		return e.evalBinary(n, scope)

	case *ast.IfExpression:
		return e.evalIf(n, scope)

	case *ast.CallExpression:
		return e.evalCall(n, scope)

	default:
		return ExecResult{}, errors.New(errors.UnexpectedExecResult, expr.Pos(), "", "unrecognised expression node")
	}
}

func (e *Evaluator) evalListLiteral(n *ast.ListLiteral, scope *runtime.Scope) (ExecResult, *errors.Error) {
	items := make([]runtime.Value, 0, len(n.Items))
	for _, item := range n.Items {
		result, err := e.evalExpression(item, scope)
		if err != nil {
			return ExecResult{}, err
		}
		if result.IsReturned() {
			return result, nil
		}
		items = append(items, result.Value)
	}
	return ValueResult(&runtime.ListValue{List: runtime.FromSlice(items)}), nil
}

func (e *Evaluator) evalCons(n *ast.ConsExpression, scope *runtime.Scope) (ExecResult, *errors.Error) {
	head, err := e.evalExpression(n.Head, scope)
	if err != nil {
		return ExecResult{}, err
	}
	if head.IsReturned() {
		return head, nil
	}

	tail, err := e.evalExpression(n.Tail, scope)
	if err != nil {
		return ExecResult{}, err
	}
	if tail.IsReturned() {
		return tail, nil
	}

	tailList, ok := tail.Value.(*runtime.ListValue)
	if !ok {
		return ExecResult{}, errors.New(errors.InvalidOperand, n.Position, runtime.TypeName(tail.Value), "cons requires a list tail")
	}

	return ValueResult(&runtime.ListValue{List: runtime.Cons(head.Value, tailList.List)}), nil
}
