package evaluator

import (
	"strconv"

	"github.com/nibscript/nib/internal/ast"
	"github.com/nibscript/nib/internal/errors"
	"github.com/nibscript/nib/internal/runtime"
)

// evalCall implements the call protocol of spec.md §4.7: evaluate the
// callee, dispatch on its runtime kind, evaluate arguments left to right
// in the caller's scope, and for a user closure run its body in a scope
// built from the closure's captured environment extended with the bound
// parameters.
func (e *Evaluator) evalCall(n *ast.CallExpression, scope *runtime.Scope) (ExecResult, *errors.Error) {
	callee, err := e.evalExpression(n.Callee, scope)
	if err != nil {
		return ExecResult{}, err
	}
	if callee.IsReturned() {
		return callee, nil
	}

	args := make([]runtime.Value, 0, len(n.Args))
	for _, argExpr := range n.Args {
		result, err := e.evalExpression(argExpr, scope)
		if err != nil {
			return ExecResult{}, err
		}
		if result.IsReturned() {
			return result, nil
		}
		args = append(args, result.Value)
	}

	switch fn := callee.Value.(type) {
	case *runtime.FunctionValue:
		return e.callClosure(n, fn, args)

	case *runtime.NativeFunctionValue:
		v, err := fn.Fn(n.Position, args)
		if err != nil {
			return ExecResult{}, err
		}
		return ValueResult(v), nil

	default:
		// Calling a non-function is benign per spec.md §4.7.
		return Unit(), nil
	}
}

func (e *Evaluator) callClosure(site *ast.CallExpression, fn *runtime.FunctionValue, args []runtime.Value) (ExecResult, *errors.Error) {
	lit := fn.Closure.Fn
	if len(args) != len(lit.Params) {
		return ExecResult{}, errors.New(errors.InvalidParams, site.Position, "", "expected "+strconv.Itoa(len(lit.Params))+" argument(s), got "+strconv.Itoa(len(args)))
	}

	bindings := make(map[string]runtime.Symbol, len(args))
	for i, param := range lit.Params {
		if args[i].TypeOf() != param.Type {
			return ExecResult{}, errors.New(errors.TypeMismatch, site.Position, runtime.TypeName(args[i]), "parameter '"+param.Name+"' expects "+param.Type.String())
		}
		bindings[param.Name] = runtime.Symbol{Position: param.Position, DeclaredType: param.Type, Value: args[i]}
	}

	callScope := fn.Closure.Env.ExtendMany(bindings)
	result, err := e.Run(NewFrame(lit.Body), callScope)
	if err != nil {
		return ExecResult{}, err
	}
	if !result.IsReturned() {
		// Unreachable: the parser rejects a function body that does not
		// end in a Return, so a call's frame always exits via Returned.
		return ExecResult{}, errors.New(errors.UnexpectedExecResult, site.Position, "", "function body completed without returning")
	}

	if result.Value.TypeOf() != lit.ReturnType {
		return ExecResult{}, errors.New(errors.TypeMismatch, result.Pos, runtime.TypeName(result.Value), "function declared to return "+lit.ReturnType.String())
	}
	return ValueResult(result.Value), nil
}
