package heap

import (
	"github.com/navijation/structures/util"
)

// Heap is a binary heap over a dense slice, ordered by a predicate supplied
// at construction. before(a, b) reports whether a should rank above b, so
// ">" over a naturally ordered type yields a max-heap and "<" a min-heap; any
// strict weak ordering over a custom type works. A predicate that is not a
// strict weak ordering leaves the arrangement unspecified, but operations
// never panic.
//
// Children of the element at index i live at 2i+1 and 2i+2; no child ever
// ranks above its parent. Indices are transient and may shift after any
// mutation.
type Heap[T any] struct {
	before func(a, b T) bool
	nodes  []T
}

func New[T any](before func(a, b T) bool) Heap[T] {
	return Heap[T]{before: before}
}

// From builds a heap from an unordered slice using bottom-up heapify, sifting
// down every internal node from the last to the first. Total cost is O(n),
// as opposed to the O(n log n) of pushing each element. The input slice is
// copied, never aliased.
func From[T any](elements []T, before func(a, b T) bool) Heap[T] {
	out := Heap[T]{
		before: before,
		nodes:  util.CloneSlice(elements),
	}
	for i := len(out.nodes)/2 - 1; i >= 0; i-- {
		out.siftDown(i, len(out.nodes))
	}
	return out
}

func (me *Heap[T]) Size() int {
	return len(me.nodes)
}

func (me *Heap[T]) IsEmpty() bool {
	return len(me.nodes) == 0
}

// Peek returns the root element without removing it, or None when the heap
// is empty.
func (me *Heap[T]) Peek() util.Optional[T] {
	if len(me.nodes) == 0 {
		return util.None[T]()
	}
	return util.Some(me.nodes[0])
}

// Items returns a level-order snapshot of the heap's contents.
func (me *Heap[T]) Items() []T {
	return util.CloneSlice(me.nodes)
}

// Push appends the value and sifts it up toward the root. O(log n).
func (me *Heap[T]) Push(value T) {
	me.nodes = append(me.nodes, value)
	me.siftUp(len(me.nodes) - 1)
}

// PushAll pushes each value one at a time, costing O(n log n) for n values.
// Heapify is reserved for initial bulk construction via From.
func (me *Heap[T]) PushAll(values ...T) {
	for _, value := range values {
		me.Push(value)
	}
}

// Pop removes and returns the root element, or None when the heap is empty.
// The last element moves into the root slot and sifts down. O(log n).
func (me *Heap[T]) Pop() util.Optional[T] {
	switch len(me.nodes) {
	case 0:
		return util.None[T]()
	case 1:
		out := me.nodes[0]
		me.nodes = me.nodes[:0]
		return util.Some(out)
	}

	out := me.nodes[0]
	last := len(me.nodes) - 1
	me.nodes[0] = me.nodes[last]
	me.nodes = me.nodes[:last]
	me.siftDown(0, last)
	return util.Some(out)
}

// RemoveAt removes and returns the element at an arbitrary index. An
// out-of-bounds index returns None and leaves the heap unchanged. The element
// swaps with the last slot, then sifts down and up; at most one direction
// actually moves it. O(log n).
func (me *Heap[T]) RemoveAt(index int) util.Optional[T] {
	if index < 0 || index >= len(me.nodes) {
		return util.None[T]()
	}

	size := len(me.nodes) - 1
	if index != size {
		me.nodes[index], me.nodes[size] = me.nodes[size], me.nodes[index]
		me.siftDown(index, size)
		me.siftUp(index)
	}

	out := me.nodes[size]
	me.nodes = me.nodes[:size]
	return util.Some(out)
}

// Replace removes the element at index and pushes value in its stead,
// returning the removed element, or None without mutating when the index is
// out of bounds. It is a literal RemoveAt followed by Push, so the resulting
// layout is exactly that of the two-step sequence.
func (me *Heap[T]) Replace(index int, value T) util.Optional[T] {
	removed, exists := me.RemoveAt(index).Unpack()
	if !exists {
		return util.None[T]()
	}

	me.Push(value)
	return util.Some(removed)
}

// siftUp floats the element at index toward the root. Parents shift down
// into the vacated slots and the element is written once at the end.
func (me *Heap[T]) siftUp(index int) {
	child := index
	value := me.nodes[child]
	parent := (child - 1) / 2

	for child > 0 && me.before(value, me.nodes[parent]) {
		me.nodes[child] = me.nodes[parent]
		child = parent
		parent = (child - 1) / 2
	}

	me.nodes[child] = value
}

// siftDown sinks the element at index over nodes[:end]. The left child is
// tested before the right, and ties keep the incumbent, so the first
// satisfying candidate wins.
func (me *Heap[T]) siftDown(index, end int) {
	for {
		left := 2*index + 1
		right := left + 1
		first := index

		if left < end && me.before(me.nodes[left], me.nodes[first]) {
			first = left
		}
		if right < end && me.before(me.nodes[right], me.nodes[first]) {
			first = right
		}
		if first == index {
			return
		}

		me.nodes[index], me.nodes[first] = me.nodes[first], me.nodes[index]
		index = first
	}
}
