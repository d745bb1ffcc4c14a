// Package slist implements a generic singly-linked list with a tracked tail
// for O(1) insertion at both ends and iterator-addressed insertion and
// removal after any position.
//
// The list embeds a sentinel node one step before the logical head, so
// inserting or erasing at the front is the same operation as anywhere else
// (see [List.BeforeBegin]). The zero List is an empty list ready for use.
package slist

import (
	"fmt"
	"iter"
	"strings"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly-linked list of T. It owns every node reachable from its
// sentinel; nodes are allocated one per insertion and become garbage on
// removal. List is not safe for concurrent use.
type List[T any] struct {
	head node[T] // sentinel; head.next is the first real node
	tail *node[T]
	size int
}

// New returns an empty list. &List[T]{} works just as well.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of builds a list holding values in the given order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Collect builds a list from seq, preserving its order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// insertAfterNode is the single insertion primitive: every mutating
// operation that adds a node goes through it, so the tail invariant is
// maintained in one place. prev is the sentinel or a real node of this list.
func (l *List[T]) insertAfterNode(prev *node[T], v T) *node[T] {
	n := &node[T]{value: v, next: prev.next}
	prev.next = n
	// new last node
	if n.next == nil {
		l.tail = n
	}
	l.size++
	return n
}

// eraseAfterNode is the single removal primitive, the counterpart of
// insertAfterNode. prev.next must be non-nil.
func (l *List[T]) eraseAfterNode(prev *node[T]) *node[T] {
	victim := prev.next
	prev.next = victim.next
	victim.next = nil
	if l.tail == victim {
		if prev == &l.head {
			// list is now empty
			l.tail = nil
		} else {
			l.tail = prev
		}
	}
	l.size--
	return prev.next
}

// PushFront inserts v as the new first element.
func (l *List[T]) PushFront(v T) {
	l.insertAfterNode(&l.head, v)
}

// PushBack appends v after the last element.
func (l *List[T]) PushBack(v T) {
	prev := l.tail
	// empty list
	if prev == nil {
		prev = &l.head
	}
	l.insertAfterNode(prev, v)
}

// Front returns the first element. It panics if the list is empty.
func (l *List[T]) Front() T {
	if l.head.next == nil {
		panic("slist: Front on empty list")
	}
	return l.head.next.value
}

// PopFront removes the first element. It panics if the list is empty.
func (l *List[T]) PopFront() {
	if l.head.next == nil {
		panic("slist: PopFront on empty list")
	}
	l.eraseAfterNode(&l.head)
}

// InsertAfter inserts v after pos and returns an iterator to the new
// element. pos must reference the sentinel or an element of this list;
// inserting after the end iterator panics.
func (l *List[T]) InsertAfter(pos Iterator[T], v T) Iterator[T] {
	if pos.n == nil {
		panic("slist: InsertAfter on end iterator")
	}
	return Iterator[T]{n: l.insertAfterNode(pos.n, v)}
}

// EraseAfter removes the element after pos and returns an iterator to the
// element that now follows pos, or the end iterator. pos must have a
// successor; erasing after the last element or the end iterator panics.
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if pos.n == nil {
		panic("slist: EraseAfter on end iterator")
	}
	if pos.n.next == nil {
		panic("slist: EraseAfter at end of list")
	}
	return Iterator[T]{n: l.eraseAfterNode(pos.n)}
}

// Clear removes every element. Calling Clear on an empty list is a no-op.
func (l *List[T]) Clear() {
	// unlink iteratively; a recursive teardown would overflow the stack on
	// long lists
	for l.head.next != nil {
		n := l.head.next
		l.head.next = n.next
		n.next = nil
	}
	l.tail = nil
	l.size = 0
}

// Swap exchanges the contents of l and other in O(1). No element is copied.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.tail, other.tail = other.tail, l.tail
	l.size, other.size = other.size, l.size
}

// Clone returns a deep copy of the list: same values in the same order,
// backed by freshly allocated nodes.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for n := l.head.next; n != nil; n = n.next {
		c.PushBack(n.value)
	}
	return c
}

// Assign replaces the contents of l with a deep copy of other. It is
// copy-and-swap: the copy is built first, so l is untouched until the copy
// exists, and assigning a list to itself leaves it unchanged.
func (l *List[T]) Assign(other *List[T]) {
	tmp := other.Clone()
	l.Swap(tmp)
}

// BeforeBegin returns an iterator referencing the sentinel, one step before
// the first element. It is the pos argument that makes InsertAfter and
// EraseAfter operate at the front of the list. The sentinel holds no value;
// do not dereference the returned iterator.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{n: &l.head}
}

// Begin returns an iterator to the first element, or the end iterator if the
// list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.next}
}

// End returns the past-the-end iterator. It is the zero Iterator.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// All returns an iterator over the element values in list order, for use
// with a range statement. The list must not be structurally modified during
// the walk.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice returns the elements in list order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// String renders the list as [v1 v2 ... vn].
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head.next; n != nil; n = n.next {
		if n != l.head.next {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.value)
	}
	b.WriteByte(']')
	return b.String()
}
