package runtime

import "testing"

func TestConsAndLength(t *testing.T) {
	lst := Cons(&IntValue{Value: 1}, Cons(&IntValue{Value: 2}, nil))
	if lst.Length != 2 {
		t.Fatalf("expected length 2, got %d", lst.Length)
	}
	if lst.Tail.Length != 1 {
		t.Fatalf("expected tail length 1, got %d", lst.Tail.Length)
	}
}

func TestNilListLengthIsZero(t *testing.T) {
	var lst *ListVal
	if lst.len() != 0 {
		t.Fatalf("expected 0, got %d", lst.len())
	}
}

func TestFromSlicePreservesOrder(t *testing.T) {
	items := []Value{&IntValue{Value: 1}, &IntValue{Value: 2}, &IntValue{Value: 3}}
	lst := FromSlice(items)
	if lst.Length != 3 {
		t.Fatalf("expected length 3, got %d", lst.Length)
	}
	if lst.Head.(*IntValue).Value != 1 {
		t.Fatalf("expected head 1, got %v", lst.Head)
	}
	if lst.Tail.Head.(*IntValue).Value != 2 {
		t.Fatalf("expected second 2, got %v", lst.Tail.Head)
	}
}

func TestFromSliceEmpty(t *testing.T) {
	if FromSlice(nil) != nil {
		t.Fatal("expected nil for an empty slice")
	}
}
