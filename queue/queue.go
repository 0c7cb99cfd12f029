package queue

import (
	"github.com/navijation/structures/util"
)

// compactionThreshold is the minimum number of dequeued slots before the
// backing slice is compacted.
const compactionThreshold = 16

// Queue is a FIFO sequence over a slice. Dequeuing advances a head index
// rather than shifting elements; once at least half the backing slice is
// dead space it is compacted, keeping Dequeue amortized O(1).
type Queue[T any] struct {
	items []T
	head  int
}

func New[T any](items ...T) Queue[T] {
	return Queue[T]{items: items}
}

func (me *Queue[T]) Size() int {
	return len(me.items) - me.head
}

func (me *Queue[T]) IsEmpty() bool {
	return me.Size() == 0
}

func (me *Queue[T]) Enqueue(value T) {
	me.items = append(me.items, value)
}

func (me *Queue[T]) Dequeue() util.Optional[T] {
	if me.head >= len(me.items) {
		return util.None[T]()
	}

	out := me.items[me.head]
	var zero T
	me.items[me.head] = zero
	me.head++

	if me.head >= compactionThreshold && me.head*2 >= len(me.items) {
		me.items = util.CloneSlice(me.items[me.head:])
		me.head = 0
	}

	return util.Some(out)
}

func (me *Queue[T]) Peek() util.Optional[T] {
	if me.head >= len(me.items) {
		return util.None[T]()
	}
	return util.Some(me.items[me.head])
}
