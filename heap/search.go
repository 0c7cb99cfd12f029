package heap

import (
	"github.com/navijation/structures/util"
)

// IndexOf returns the index of the first element equal to node. The heap
// property only orders parent/child pairs, so lookup by value cannot beat a
// linear scan. O(n).
func IndexOf[T comparable](me *Heap[T], node T) util.Optional[int] {
	for i, existing := range me.nodes {
		if existing == node {
			return util.Some(i)
		}
	}
	return util.None[int]()
}

// RemoveValue removes the first element equal to value, or returns None when
// no element matches. O(n).
func RemoveValue[T comparable](me *Heap[T], value T) util.Optional[T] {
	index, exists := IndexOf(me, value).Unpack()
	if !exists {
		return util.None[T]()
	}
	return me.RemoveAt(index)
}
