package evaluator

import (
	"github.com/nibscript/nib/internal/ast"
	"github.com/nibscript/nib/internal/errors"
	"github.com/nibscript/nib/internal/runtime"
	"github.com/nibscript/nib/internal/token"
)

// evalBinary evaluates both operands strictly, left then right — even
// for `&& ||`, per spec.md §4.4's explicit non-short-circuit requirement
// — then dispatches on the operator lexeme.
func (e *Evaluator) evalBinary(n *ast.BinaryExpression, scope *runtime.Scope) (ExecResult, *errors.Error) {
	left, err := e.evalExpression(n.Left, scope)
	if err != nil {
		return ExecResult{}, err
	}
	if left.IsReturned() {
		return left, nil
	}

	right, err := e.evalExpression(n.Right, scope)
	if err != nil {
		return ExecResult{}, err
	}
	if right.IsReturned() {
		return right, nil
	}

	v, opErr := applyBinary(n.Position, n.Operator, left.Value, right.Value)
	if opErr != nil {
		return ExecResult{}, opErr
	}
	return ValueResult(v), nil
}

// applyBinary is the pure operator table: strict arithmetic on matching
// numeric types, comparisons promoted to f32, and non-short-circuit
// boolean operators. It never looks at scope.
func applyBinary(pos token.Position, op string, l, r runtime.Value) (runtime.Value, *errors.Error) {
	switch op {
	case "%":
		li, lok := l.(*runtime.IntValue)
		ri, rok := r.(*runtime.IntValue)
		if !lok || !rok {
			return nil, operandError(pos, l, r, "% requires both operands i32")
		}
		if ri.Value == 0 {
			return nil, errors.New(errors.InvalidOperand, pos, "0", "modulo by zero")
		}
		return &runtime.IntValue{Value: li.Value % ri.Value}, nil

	case "+", "-", "*", "/":
		return applyArithmetic(pos, op, l, r)

	case "<", "<=", ">", ">=", "==", "!=":
		return applyComparison(pos, op, l, r)

	case "&&", "||":
		lb, lok := l.(*runtime.BoolValue)
		rb, rok := r.(*runtime.BoolValue)
		if !lok || !rok {
			return nil, operandError(pos, l, r, op+" requires both operands bool")
		}
		if op == "&&" {
			return &runtime.BoolValue{Value: lb.Value && rb.Value}, nil
		}
		return &runtime.BoolValue{Value: lb.Value || rb.Value}, nil

	default:
		return nil, errors.New(errors.InvalidOperator, pos, op, "unrecognised binary operator")
	}
}

func applyArithmetic(pos token.Position, op string, l, r runtime.Value) (runtime.Value, *errors.Error) {
	if li, ok := l.(*runtime.IntValue); ok {
		ri, ok := r.(*runtime.IntValue)
		if !ok {
			return nil, operandError(pos, l, r, op+" requires both operands the same numeric type")
		}
		return intArithmetic(pos, op, li.Value, ri.Value)
	}
	if lf, ok := l.(*runtime.FloatValue); ok {
		rf, ok := r.(*runtime.FloatValue)
		if !ok {
			return nil, operandError(pos, l, r, op+" requires both operands the same numeric type")
		}
		return floatArithmetic(op, lf.Value, rf.Value), nil
	}
	return nil, operandError(pos, l, r, op+" requires numeric operands")
}

func intArithmetic(pos token.Position, op string, l, r int32) (runtime.Value, *errors.Error) {
	switch op {
	case "+":
		return &runtime.IntValue{Value: l + r}, nil
	case "-":
		return &runtime.IntValue{Value: l - r}, nil
	case "*":
		return &runtime.IntValue{Value: l * r}, nil
	case "/":
		if r == 0 {
			return nil, errors.New(errors.InvalidOperand, pos, "0", "integer division by zero")
		}
		return &runtime.IntValue{Value: l / r}, nil
	}
	panic("unreachable arithmetic operator")
}

// floatArithmetic never errors: division by zero follows IEEE-754 and
// produces inf/nan, per spec.md §4.4.
func floatArithmetic(op string, l, r float32) runtime.Value {
	switch op {
	case "+":
		return &runtime.FloatValue{Value: l + r}
	case "-":
		return &runtime.FloatValue{Value: l - r}
	case "*":
		return &runtime.FloatValue{Value: l * r}
	case "/":
		return &runtime.FloatValue{Value: l / r}
	}
	panic("unreachable arithmetic operator")
}

// applyComparison promotes both operands to f32 before comparing, per
// spec.md §4.4. Equality is extended to Bool and String (an explicit
// generalisation beyond the numeric-only reference requirement): two
// Bools or two Strings compare directly, while any other non-numeric
// operand still raises InvalidOperand.
func applyComparison(pos token.Position, op string, l, r runtime.Value) (runtime.Value, *errors.Error) {
	if op == "==" || op == "!=" {
		if eq, ok := nonNumericEquality(l, r); ok {
			if op == "==" {
				return &runtime.BoolValue{Value: eq}, nil
			}
			return &runtime.BoolValue{Value: !eq}, nil
		}
	}

	lf, lok := asFloat32(l)
	rf, rok := asFloat32(r)
	if !lok || !rok {
		return nil, operandError(pos, l, r, op+" requires numeric operands")
	}

	var result bool
	switch op {
	case "<":
		result = lf < rf
	case "<=":
		result = lf <= rf
	case ">":
		result = lf > rf
	case ">=":
		result = lf >= rf
	case "==":
		result = lf == rf
	case "!=":
		result = lf != rf
	}
	return &runtime.BoolValue{Value: result}, nil
}

func nonNumericEquality(l, r runtime.Value) (bool, bool) {
	switch lv := l.(type) {
	case *runtime.BoolValue:
		rv, ok := r.(*runtime.BoolValue)
		return ok && lv.Value == rv.Value, ok
	case *runtime.StringValue:
		rv, ok := r.(*runtime.StringValue)
		return ok && lv.Value == rv.Value, ok
	default:
		return false, false
	}
}

func asFloat32(v runtime.Value) (float32, bool) {
	switch n := v.(type) {
	case *runtime.IntValue:
		return float32(n.Value), true
	case *runtime.FloatValue:
		return n.Value, true
	default:
		return 0, false
	}
}

func operandError(pos token.Position, l, r runtime.Value, msg string) *errors.Error {
	found := runtime.TypeName(l) + "/" + runtime.TypeName(r)
	return errors.New(errors.InvalidOperand, pos, found, msg)
}
