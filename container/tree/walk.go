package tree

// Order selects the sequence in which Traverse visits nodes
type Order int

const (
	// PreOrder visits a node before either of its subtrees
	PreOrder Order = iota

	// PostOrder visits a node after both of its subtrees
	PostOrder

	// InOrder visits a node between its left and right subtrees,
	// which produces values in non-decreasing order
	InOrder
)

// Traverse visits every value in the tree exactly once in the given
// order, invoking fn on each. Walks never mutate the tree, so a panic
// raised by fn propagates immediately and leaves the tree valid.
func (t *Tree[T]) Traverse(fn func(T), order Order) {
	switch order {
	case PreOrder:
		t.PreOrderWalk(fn)
	case PostOrder:
		t.PostOrderWalk(fn)
	default:
		t.InOrderWalk(fn)
	}
}

// InOrderWalk implements an in order walk on the tree using an
// explicit stack of unvisited ancestors instead of recursion, so the
// walk cannot exhaust the call stack on a degenerate tree.
func (t *Tree[T]) InOrderWalk(fn func(T)) {
	t.root.InOrderWalk(fn)
}

// PreOrderWalk implements a pre order walk on the tree using an
// explicit stack instead of recursion.
func (t *Tree[T]) PreOrderWalk(fn func(T)) {
	t.root.PreOrderWalk(fn)
}

// PostOrderWalk implements a post order walk on the tree using an
// explicit stack instead of recursion.
func (t *Tree[T]) PostOrderWalk(fn func(T)) {
	t.root.PostOrderWalk(fn)
}

// InOrderWalk implements an in order walk on the subtree
func (n *Node[T]) InOrderWalk(fn func(T)) {
	var stack []*Node[T]

	for curr := n; curr != nil || len(stack) > 0; {
		for curr != nil {
			stack = append(stack, curr)
			curr = curr.left
		}

		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(curr.value)
		curr = curr.right
	}
}

// PreOrderWalk implements a pre order walk on the subtree
func (n *Node[T]) PreOrderWalk(fn func(T)) {
	if n == nil {
		return
	}

	stack := []*Node[T]{n}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(curr.value)

		// push right first so the left subtree is visited first
		if curr.right != nil {
			stack = append(stack, curr.right)
		}
		if curr.left != nil {
			stack = append(stack, curr.left)
		}
	}
}

// PostOrderWalk implements a post order walk on the subtree
func (n *Node[T]) PostOrderWalk(fn func(T)) {
	var stack []*Node[T]
	var last *Node[T]

	for curr := n; curr != nil || len(stack) > 0; {
		for curr != nil {
			stack = append(stack, curr)
			curr = curr.left
		}

		peek := stack[len(stack)-1]
		if peek.right != nil && last != peek.right {
			curr = peek.right
		} else {
			fn(peek.value)
			last = peek
			stack = stack[:len(stack)-1]
		}
	}
}
