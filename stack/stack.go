package stack

import (
	"github.com/navijation/structures/util"
)

// Stack is a LIFO sequence over a slice; the top of the stack is the end of
// the slice.
type Stack[T any] struct {
	items []T
}

func New[T any](items ...T) Stack[T] {
	return Stack[T]{items: items}
}

func (me *Stack[T]) Size() int {
	return len(me.items)
}

func (me *Stack[T]) IsEmpty() bool {
	return len(me.items) == 0
}

func (me *Stack[T]) Push(value T) {
	me.items = append(me.items, value)
}

func (me *Stack[T]) Pop() util.Optional[T] {
	if len(me.items) == 0 {
		return util.None[T]()
	}

	out := me.items[len(me.items)-1]
	me.items = me.items[:len(me.items)-1]
	return util.Some(out)
}

func (me *Stack[T]) Peek() util.Optional[T] {
	if len(me.items) == 0 {
		return util.None[T]()
	}
	return util.Some(me.items[len(me.items)-1])
}
