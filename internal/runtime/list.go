package runtime

// ListVal is an immutable singly linked cons list. A nil *ListVal
// represents Nil; a non-nil one is a Cons cell. Cons/tail share
// structure, and Length is cached on the node so length(list) is O(1).
type ListVal struct {
	Head   Value
	Tail   *ListVal
	Length int
}

// Cons prepends head onto tail, producing a new node whose Length is
// tail's Length plus one. tail may be nil (the empty list).
func Cons(head Value, tail *ListVal) *ListVal {
	return &ListVal{Head: head, Tail: tail, Length: tail.len() + 1}
}

// len returns 0 for a nil receiver (the empty list) without panicking,
// since Nil is represented as a nil pointer rather than a sentinel value.
func (l *ListVal) len() int {
	if l == nil {
		return 0
	}
	return l.Length
}

// FromSlice builds a cons list from items in order, so
// FromSlice([a, b, c]) == Cons(a, Cons(b, Cons(c, nil))).
func FromSlice(items []Value) *ListVal {
	var tail *ListVal
	for i := len(items) - 1; i >= 0; i-- {
		tail = Cons(items[i], tail)
	}
	return tail
}
