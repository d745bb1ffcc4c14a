package slist

import "cmp"

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.size != b.size {
		return false
	}
	x, y := a.head.next, b.head.next
	for x != nil {
		if x.value != y.value {
			return false
		}
		x, y = x.next, y.next
	}
	return true
}

// EqualFunc is like [Equal] but compares elements with eq, allowing lists of
// different element types.
func EqualFunc[T1, T2 any](a *List[T1], b *List[T2], eq func(T1, T2) bool) bool {
	if a.size != b.size {
		return false
	}
	x, y := a.head.next, b.head.next
	for x != nil {
		if !eq(x.value, y.value) {
			return false
		}
		x, y = x.next, y.next
	}
	return true
}

// Compare lexicographically compares the elements of a and b, returning -1
// when a sorts before b, +1 when after, and 0 when the lists are equal.
// A list that is a prefix of a longer one sorts first.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like [Compare] but compares element pairs with cmp, which
// must return a negative, zero, or positive result in the manner of
// [cmp.Compare].
func CompareFunc[T1, T2 any](a *List[T1], b *List[T2], cmp func(T1, T2) int) int {
	x, y := a.head.next, b.head.next
	for x != nil && y != nil {
		if c := cmp(x.value, y.value); c != 0 {
			return c
		}
		x, y = x.next, y.next
	}
	switch {
	case x != nil:
		return +1
	case y != nil:
		return -1
	}
	return 0
}

// Less reports whether a sorts lexicographically before b. The remaining
// orderings are sign tests on [Compare]: a <= b is Compare(a, b) <= 0, and
// so on.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}
