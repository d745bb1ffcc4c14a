package slist_test

import (
	"fmt"

	"github.com/KlimchukKS/slist"
)

func Example() {
	// Create a new list and put some numbers in it.
	l := slist.New[int]()
	l.PushBack(2)
	l.PushBack(3)
	l.PushFront(1)

	// Insert before the first element via the sentinel position.
	l.InsertAfter(l.BeforeBegin(), 0)

	// Iterate through the list and print its contents.
	for v := range l.All() {
		fmt.Println(v)
	}

	// Output:
	// 0
	// 1
	// 2
	// 3
}

func ExampleList_EraseAfter() {
	l := slist.Of("a", "b", "c")

	// Drop the element after the head, then the head itself.
	l.EraseAfter(l.Begin())
	l.PopFront()

	fmt.Println(l, l.Len())
	// Output:
	// [c] 1
}

func ExampleIterator() {
	l := slist.Of(1, 2, 3)

	for it := l.Begin(); it.Ok(); it = it.Next() {
		it.Set(it.Value() * 10)
	}

	fmt.Println(l)
	// Output:
	// [10 20 30]
}
