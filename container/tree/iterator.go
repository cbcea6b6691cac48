package tree

import (
	"cmp"
	"iter"
)

// Iterator walks a tree in non-decreasing order, producing one value
// per call to Next. It keeps an explicit stack of ancestors whose
// values have not been produced yet, so the walk can be suspended
// between calls without recursion or coroutine machinery.
//
// An Iterator is single pass and cannot be reset; obtain a fresh one
// from Tree.Ascend for every walk. The tree must not be structurally
// mutated while an iterator is in use.
type Iterator[T cmp.Ordered] struct {
	curr   *Node[T]
	stack  []*Node[T]
	goLeft bool
}

// Ascend returns a new iterator positioned before the lowest value in
// the tree. Every call starts an independent walk from the root.
func (t *Tree[T]) Ascend() *Iterator[T] {
	return &Iterator[T]{curr: t.root, goLeft: true}
}

// Next produces the next value of the walk. It returns false once
// every value has been produced.
func (it *Iterator[T]) Next() (T, bool) {
	if it.curr == nil {
		if len(it.stack) == 0 {
			var zero T
			return zero, false
		}

		// return to the nearest ancestor whose value is still
		// pending; its left subtree has already been produced
		it.curr = it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		it.goLeft = false
	}

	for it.goLeft && it.curr.left != nil {
		it.stack = append(it.stack, it.curr)
		it.curr = it.curr.left
	}

	v := it.curr.value

	if it.curr.right != nil {
		it.curr = it.curr.right
		it.goLeft = true
	} else {
		it.curr = nil
	}

	return v, true
}

// All returns a lazy sequence of the tree's values in non-decreasing
// order. Each call to All starts an independent single pass walk.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Ascend()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns a lazy sequence of the tree's values in
// non-increasing order, the mirror image of All.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*Node[T]

		for curr := t.root; curr != nil || len(stack) > 0; {
			for curr != nil {
				stack = append(stack, curr)
				curr = curr.right
			}

			curr = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(curr.value) {
				return
			}
			curr = curr.left
		}
	}
}
