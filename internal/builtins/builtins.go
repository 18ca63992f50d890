// Package builtins installs the standard library's native bindings into
// a fresh root scope, grounded on the teacher's builtins_io.go and
// builtins_core.go pattern of one Go function per native binding bound
// under its source name.
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nibscript/nib/internal/ast"
	"github.com/nibscript/nib/internal/errors"
	"github.com/nibscript/nib/internal/runtime"
	"github.com/nibscript/nib/internal/token"
)

// Install binds print, println, read, floor, assert, new_list, head,
// tail, length, and panic into scope, closing over out/in for the
// I/O-performing bindings.
func Install(scope *runtime.Scope, out io.Writer, in *bufio.Reader) {
	bind(scope, "print", printFn(out))
	bind(scope, "println", printlnFn(out))
	bind(scope, "read", readFn(out, in))
	bind(scope, "floor", floorFn)
	bind(scope, "assert", assertFn)
	bind(scope, "new_list", newListFn)
	bind(scope, "head", headFn)
	bind(scope, "tail", tailFn)
	bind(scope, "length", lengthFn)
	bind(scope, "panic", panicFn)
}

func bind(scope *runtime.Scope, name string, fn runtime.NativeFunc) {
	scope.Define(name, runtime.Symbol{
		DeclaredType: ast.Function,
		Value:        &runtime.NativeFunctionValue{Name: name, Fn: fn},
	})
}

func printFn(out io.Writer) runtime.NativeFunc {
	return func(pos token.Position, args []runtime.Value) (runtime.Value, *errors.Error) {
		for _, v := range args {
			fmt.Fprint(out, v.Display())
		}
		return runtime.TheUnit, nil
	}
}

func printlnFn(out io.Writer) runtime.NativeFunc {
	return func(pos token.Position, args []runtime.Value) (runtime.Value, *errors.Error) {
		for _, v := range args {
			fmt.Fprint(out, v.Display())
		}
		fmt.Fprintln(out)
		return runtime.TheUnit, nil
	}
}

func readFn(out io.Writer, in *bufio.Reader) runtime.NativeFunc {
	return func(pos token.Position, args []runtime.Value) (runtime.Value, *errors.Error) {
		if f, ok := out.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return nil, errors.New(errors.StdRead, pos, "", err.Error())
		}
		return &runtime.StringValue{Value: line}, nil
	}
}

func floorFn(pos token.Position, args []runtime.Value) (runtime.Value, *errors.Error) {
	f, err := requireFloat(pos, args, 0, "floor")
	if err != nil {
		return nil, err
	}
	return &runtime.IntValue{Value: int32(f)}, nil
}

func assertFn(pos token.Position, args []runtime.Value) (runtime.Value, *errors.Error) {
	if len(args) < 1 {
		return nil, errors.New(errors.StdMissingArgs, pos, "", "assert requires at least a condition argument")
	}
	cond, ok := args[0].(*runtime.BoolValue)
	if !ok {
		return nil, errors.New(errors.InvalidOperand, pos, runtime.TypeName(args[0]), "assert condition must be bool")
	}
	if cond.Value {
		return runtime.TheUnit, nil
	}
	msg := "assertion failed"
	if len(args) > 1 {
		if s, ok := args[1].(*runtime.StringValue); ok {
			msg = s.Value
		}
	}
	return nil, errors.New(errors.StdAssertionFailure, pos, "", msg)
}

func newListFn(pos token.Position, args []runtime.Value) (runtime.Value, *errors.Error) {
	return &runtime.ListValue{}, nil
}

func headFn(pos token.Position, args []runtime.Value) (runtime.Value, *errors.Error) {
	lst, err := requireList(pos, args, 0, "head")
	if err != nil {
		return nil, err
	}
	if lst.List == nil {
		return nil, errors.New(errors.EmptyList, pos, "", "head of an empty list")
	}
	return lst.List.Head, nil
}

func tailFn(pos token.Position, args []runtime.Value) (runtime.Value, *errors.Error) {
	lst, err := requireList(pos, args, 0, "tail")
	if err != nil {
		return nil, err
	}
	if lst.List == nil {
		return nil, errors.New(errors.EmptyList, pos, "", "tail of an empty list")
	}
	return &runtime.ListValue{List: lst.List.Tail}, nil
}

func lengthFn(pos token.Position, args []runtime.Value) (runtime.Value, *errors.Error) {
	lst, err := requireList(pos, args, 0, "length")
	if err != nil {
		return nil, err
	}
	if lst.List == nil {
		return &runtime.IntValue{Value: 0}, nil
	}
	return &runtime.IntValue{Value: int32(lst.List.Length)}, nil
}

func panicFn(pos token.Position, args []runtime.Value) (runtime.Value, *errors.Error) {
	msg := "panic: unconditional abort"
	if len(args) > 0 {
		parts := make([]string, len(args))
		for i, v := range args {
			parts[i] = v.Display()
		}
		msg = "panic: " + strings.Join(parts, " ")
	}
	return nil, errors.New(errors.Default, pos, "", msg)
}

func requireFloat(pos token.Position, args []runtime.Value, idx int, name string) (float32, *errors.Error) {
	if idx >= len(args) {
		return 0, errors.New(errors.StdMissingArgs, pos, "", name+" requires an argument")
	}
	f, ok := args[idx].(*runtime.FloatValue)
	if !ok {
		return 0, errors.New(errors.InvalidOperand, pos, runtime.TypeName(args[idx]), name+" requires a f32 argument")
	}
	return f.Value, nil
}

func requireList(pos token.Position, args []runtime.Value, idx int, name string) (*runtime.ListValue, *errors.Error) {
	if idx >= len(args) {
		return nil, errors.New(errors.StdMissingArgs, pos, "", name+" requires an argument")
	}
	lst, ok := args[idx].(*runtime.ListValue)
	if !ok {
		return nil, errors.New(errors.InvalidOperand, pos, runtime.TypeName(args[idx]), name+" requires a list argument")
	}
	return lst, nil
}
