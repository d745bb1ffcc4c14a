package slist

// Iterator is a forward cursor over a [List]. It references a node and owns
// nothing; copying an iterator copies the reference, never the element. The
// zero Iterator is the end cursor, and iterators compare equal with ==
// exactly when they reference the same node. Comparing iterators taken from
// different lists is meaningless but not detected.
//
// A mutating list operation other than InsertAfter never invalidates
// iterators to surviving elements; an iterator to a removed element must not
// be used again.
type Iterator[T any] struct {
	n *node[T]
}

// Ok reports whether the iterator references a node, making it usable as a
// loop condition:
//
//	for it := l.Begin(); it.Ok(); it = it.Next() { ... }
func (it Iterator[T]) Ok() bool {
	return it.n != nil
}

// Next returns the iterator advanced by one position. Advancing the end
// iterator panics. Advancing the last element's iterator yields the end
// iterator.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		panic("slist: Next on end iterator")
	}
	return Iterator[T]{n: it.n.next}
}

// Value returns the referenced element. It panics on the end iterator.
func (it Iterator[T]) Value() T {
	if it.n == nil {
		panic("slist: Value on end iterator")
	}
	return it.n.value
}

// Ref returns a pointer to the referenced element's storage, valid until the
// element is removed. It panics on the end iterator.
func (it Iterator[T]) Ref() *T {
	if it.n == nil {
		panic("slist: Ref on end iterator")
	}
	return &it.n.value
}

// Set replaces the referenced element. It panics on the end iterator.
func (it Iterator[T]) Set(v T) {
	if it.n == nil {
		panic("slist: Set on end iterator")
	}
	it.n.value = v
}
