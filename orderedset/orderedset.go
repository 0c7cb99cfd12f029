package orderedset

import (
	"slices"

	"github.com/navijation/structures/util"
)

// OrderedSet keeps unique elements in a dense slice sorted by a three-way
// comparator fixed at construction. Lookups and insert positions come from
// binary search, so Contains and IndexOf are O(log n); Insert and Remove pay
// O(n) for the slice shift. Elements comparing equal are considered the same
// member regardless of other fields.
type OrderedSet[T any] struct {
	compare func(a, b T) int
	items   []T
}

func New[T any](compare func(a, b T) int, items ...T) OrderedSet[T] {
	out := OrderedSet[T]{compare: compare}
	for _, item := range items {
		out.Insert(item)
	}
	return out
}

func (me *OrderedSet[T]) Size() int {
	return len(me.items)
}

func (me *OrderedSet[T]) IsEmpty() bool {
	return len(me.items) == 0
}

// Insert adds the value, reporting whether it was added; an equal member
// already present keeps its place and Insert reports false.
func (me *OrderedSet[T]) Insert(value T) bool {
	index, exists := slices.BinarySearchFunc(me.items, value, me.compare)
	if exists {
		return false
	}

	me.items = slices.Insert(me.items, index, value)
	return true
}

// Remove deletes the member equal to value, reporting whether it was present.
func (me *OrderedSet[T]) Remove(value T) bool {
	index, exists := slices.BinarySearchFunc(me.items, value, me.compare)
	if !exists {
		return false
	}

	me.items = slices.Delete(me.items, index, index+1)
	return true
}

func (me *OrderedSet[T]) Contains(value T) bool {
	_, exists := slices.BinarySearchFunc(me.items, value, me.compare)
	return exists
}

// IndexOf returns the sorted position of the member equal to value.
func (me *OrderedSet[T]) IndexOf(value T) util.Optional[int] {
	index, exists := slices.BinarySearchFunc(me.items, value, me.compare)
	if !exists {
		return util.None[int]()
	}
	return util.Some(index)
}

// At returns the member at a sorted position, or None out of bounds.
func (me *OrderedSet[T]) At(index int) util.Optional[T] {
	if index < 0 || index >= len(me.items) {
		return util.None[T]()
	}
	return util.Some(me.items[index])
}

func (me *OrderedSet[T]) Min() util.Optional[T] {
	return me.At(0)
}

func (me *OrderedSet[T]) Max() util.Optional[T] {
	return me.At(len(me.items) - 1)
}

// Items returns a snapshot of the members in sorted order.
func (me *OrderedSet[T]) Items() []T {
	return util.CloneSlice(me.items)
}
