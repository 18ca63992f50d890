package evaluator

import (
	"github.com/nibscript/nib/internal/ast"
	"github.com/nibscript/nib/internal/errors"
	"github.com/nibscript/nib/internal/runtime"
)

// evalIf evaluates the condition, requires it to be Bool, then runs
// exactly one branch. With no else, the false path produces Unit — the
// statement-context reading of spec.md §4.6. The parser accepts a missing
// else in every context, including where the if's value is used; there
// the resulting Unit, like any branch value, is checked only against the
// enclosing assignment's or function's declared type, not here.
func (e *Evaluator) evalIf(n *ast.IfExpression, scope *runtime.Scope) (ExecResult, *errors.Error) {
	cond, err := e.evalExpression(n.Condition, scope)
	if err != nil {
		return ExecResult{}, err
	}
	if cond.IsReturned() {
		return cond, nil
	}

	condVal, ok := cond.Value.(*runtime.BoolValue)
	if !ok {
		return ExecResult{}, errors.New(errors.TypeMismatch, n.Condition.Pos(), runtime.TypeName(cond.Value), "if condition must be bool")
	}

	var branch ast.Statement
	if condVal.Value {
		branch = n.Then
	} else {
		branch = n.Else
	}
	if branch == nil {
		return Unit(), nil
	}

	result, _, err := e.execStatement(branch, scope)
	if err != nil {
		return ExecResult{}, err
	}
	return result, nil
}
