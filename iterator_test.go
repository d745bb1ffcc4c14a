package slist

import (
	"slices"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestIterator(t *testing.T) {
	t.Run("ZeroValueIsEnd", func(t *testing.T) {
		var it Iterator[int]
		l := New[int]()

		check.True(t, !it.Ok())
		check.True(t, it == l.End())
	})

	t.Run("BeginOnEmptyEqualsEnd", func(t *testing.T) {
		l := New[int]()

		check.True(t, l.Begin() == l.End())
		check.True(t, !l.Begin().Ok())
	})

	t.Run("Traversal", func(t *testing.T) {
		l := Of(10, 20, 30)

		var got []int
		for it := l.Begin(); it.Ok(); it = it.Next() {
			got = append(got, it.Value())
		}

		check.True(t, slices.Equal([]int{10, 20, 30}, got))
	})

	t.Run("BeforeBeginNextIsBegin", func(t *testing.T) {
		l := Of(1)

		check.True(t, l.BeforeBegin().Next() == l.Begin())
	})

	t.Run("EqualityIsNodeIdentity", func(t *testing.T) {
		l := Of(1, 1) // equal values, distinct nodes

		check.True(t, l.Begin() == l.Begin())
		check.True(t, l.Begin() != l.Begin().Next())

		cp := l.Begin()
		check.True(t, cp == l.Begin())
	})

	t.Run("CopyDoesNotDuplicateElement", func(t *testing.T) {
		l := Of(1)
		a := l.Begin()
		b := a

		b.Set(42)

		assert.Equal(t, 42, a.Value())
		check.Equal(t, 1, l.Len())
	})

	t.Run("RefMutatesInPlace", func(t *testing.T) {
		l := Of(1, 2, 3)

		*l.Begin().Next().Ref() = 20

		check.True(t, slices.Equal([]int{1, 20, 3}, l.Slice()))
	})

	t.Run("SurvivesUnrelatedMutation", func(t *testing.T) {
		l := Of(1, 2, 3)
		it := l.Begin().Next() // 2

		l.PushFront(0)
		l.PushBack(4)

		check.Equal(t, 2, it.Value())
		check.Equal(t, 3, it.Next().Value())
	})

	t.Run("EndPreconditionsPanic", func(t *testing.T) {
		var it Iterator[int]

		mustPanic(t, func() { it.Next() })
		mustPanic(t, func() { it.Value() })
		mustPanic(t, func() { it.Ref() })
		mustPanic(t, func() { it.Set(1) })
	})

	t.Run("LastNextIsEnd", func(t *testing.T) {
		l := Of(1)

		check.True(t, l.Begin().Next() == l.End())
		mustPanic(t, func() { l.Begin().Next().Next() })
	})
}
