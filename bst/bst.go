package bst

import (
	"iter"

	"github.com/navijation/structures/util"
)

// Tree is a plain binary search tree ordered by a three-way comparator.
// There is no rebalancing, so sorted insertion degrades it to a linked list;
// it exists as the textbook structure, not a production index. Values
// comparing equal go to the right subtree, so duplicates are kept.
type Tree[T any] struct {
	compare func(a, b T) int
	root    *node[T]
	size    int
}

type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

func New[T any](compare func(a, b T) int, values ...T) Tree[T] {
	out := Tree[T]{compare: compare}
	for _, value := range values {
		out.Insert(value)
	}
	return out
}

func (me *Tree[T]) Size() int {
	return me.size
}

func (me *Tree[T]) IsEmpty() bool {
	return me.size == 0
}

func (me *Tree[T]) Insert(value T) {
	next := &node[T]{value: value}
	me.size++

	if me.root == nil {
		me.root = next
		return
	}

	current := me.root
	for {
		if me.compare(value, current.value) < 0 {
			if current.left == nil {
				current.left = next
				return
			}
			current = current.left
		} else {
			if current.right == nil {
				current.right = next
				return
			}
			current = current.right
		}
	}
}

func (me *Tree[T]) Contains(value T) bool {
	current := me.root
	for current != nil {
		comparison := me.compare(value, current.value)
		if comparison == 0 {
			return true
		}
		if comparison < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}
	return false
}

func (me *Tree[T]) Min() util.Optional[T] {
	if me.root == nil {
		return util.None[T]()
	}

	current := me.root
	for current.left != nil {
		current = current.left
	}
	return util.Some(current.value)
}

func (me *Tree[T]) Max() util.Optional[T] {
	if me.root == nil {
		return util.None[T]()
	}

	current := me.root
	for current.right != nil {
		current = current.right
	}
	return util.Some(current.value)
}

// Remove deletes one node whose value compares equal, reporting whether one
// was found. A node with two children swaps in its in-order successor and
// the successor's node is spliced out instead.
func (me *Tree[T]) Remove(value T) bool {
	var parent *node[T]
	current := me.root

	for current != nil {
		comparison := me.compare(value, current.value)
		if comparison == 0 {
			break
		}
		parent = current
		if comparison < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}
	if current == nil {
		return false
	}

	if current.left != nil && current.right != nil {
		successorParent := current
		successor := current.right
		for successor.left != nil {
			successorParent = successor
			successor = successor.left
		}
		current.value = successor.value
		parent = successorParent
		current = successor
	}

	child := current.left
	if child == nil {
		child = current.right
	}

	switch {
	case parent == nil:
		me.root = child
	case parent.left == current:
		parent.left = child
	default:
		parent.right = child
	}

	me.size--
	return true
}

// Height is the number of nodes on the longest root-to-leaf path; an empty
// tree has height 0.
func (me *Tree[T]) Height() int {
	return height(me.root)
}

// InOrder yields the values in sorted order.
func (me *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		inOrder(me.root, yield)
	}
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

func inOrder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.value) && inOrder(n.right, yield)
}
