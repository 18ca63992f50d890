package runtime

import (
	"testing"

	"github.com/nibscript/nib/internal/ast"
)

func TestDisplayForms(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"int", &IntValue{Value: 42}, "42"},
		{"float", &FloatValue{Value: 3.5}, "3.5"},
		{"bool true", &BoolValue{Value: true}, "true"},
		{"bool false", &BoolValue{Value: false}, "false"},
		{"string", &StringValue{Value: "hi"}, "hi"},
		{"unit", TheUnit, "[unit]"},
		{"function", &FunctionValue{}, "[function]"},
		{"native function", &NativeFunctionValue{Name: "print"}, "[native function]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Display(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListDisplay(t *testing.T) {
	lst := &ListValue{List: FromSlice([]Value{&IntValue{Value: 1}, &IntValue{Value: 2}})}
	if got := lst.Display(); got != "[1 2]" {
		t.Fatalf("got %q", got)
	}
}

func TestEmptyListDisplay(t *testing.T) {
	lst := &ListValue{}
	if got := lst.Display(); got != "[]" {
		t.Fatalf("got %q", got)
	}
}

func TestTypeOf(t *testing.T) {
	if (&IntValue{}).TypeOf() != ast.I32 {
		t.Fatal("expected I32")
	}
	if (&ListValue{}).TypeOf() != ast.List {
		t.Fatal("expected List")
	}
}
