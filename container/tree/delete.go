package tree

// Remove deletes the first node with value equal to v found on the
// descent from the root. It reports whether a node was removed; the
// tree is left untouched when no match exists.
func (t *Tree[T]) Remove(v T) bool {
	n, parent, wentLeft := t.find(v)
	if n == nil {
		return false
	}

	var repl *Node[T]

	switch {
	case n.right == nil:
		// the left child, if any, takes the node's place
		repl = n.left
	case n.right.left == nil:
		// the right child takes the node's place and inherits the
		// node's left subtree
		repl = n.right
		repl.left = n.left
	default:
		// splice the in order successor out of the right subtree and
		// move it into the node's place. The successor has no left
		// child, so detaching it only rewires its parent's left slot
		// to the successor's right subtree.
		sp := n.right
		s := sp.left
		for s.left != nil {
			sp = s
			s = s.left
		}

		sp.left = s.right
		s.left = n.left
		s.right = n.right
		repl = s
	}

	t.transplant(parent, wentLeft, repl)
	t.len--
	return true
}

// transplant links repl into the child slot the removed node
// occupied. The slot is chosen from the branch direction recorded
// during the search, not from a comparison against the removed value,
// which would be unreliable with duplicates on the search path.
func (t *Tree[T]) transplant(parent *Node[T], wentLeft bool, repl *Node[T]) {
	switch {
	case parent == nil:
		t.root = repl
	case wentLeft:
		parent.left = repl
	default:
		parent.right = repl
	}
}
