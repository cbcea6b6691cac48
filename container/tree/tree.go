// Package tree provides an in-memory ordered container backed by an
// unbalanced binary search tree. How balanced the branches of the
// tree are depends exclusively on the order of the add and remove
// operations performed on it.
package tree

import "cmp"

// Node of a tree. A node owns its children exclusively and links only
// point downward, so the structure cannot alias subtrees or form
// cycles. The value is set on creation and never changes.
type Node[T cmp.Ordered] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// Value returns the value held by the node
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the node's left child
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the node's right child
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Compare orders the node's value against v. It returns
//
//	-1 if the node's value is lower than v
//	 0 if the node's value is equal to v
//	 1 if the node's value is higher than v
func (n *Node[T]) Compare(v T) int {
	return cmp.Compare(n.value, v)
}

// Min returns the node in the subtree of the
// lowest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Min() *Node[T] {
	curr := n

	for curr != nil && curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree of the
// highest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Max() *Node[T] {
	curr := n

	for curr != nil && curr.right != nil {
		curr = curr.right
	}

	return curr
}

// Find returns the first node in the subtree that contains a value
// equal to the one provided, following the natural descent path
func (n *Node[T]) Find(v T) *Node[T] {
	for curr := n; curr != nil; {
		switch c := curr.Compare(v); {
		case c > 0:
			curr = curr.left
		case c < 0:
			curr = curr.right
		default:
			return curr
		}
	}

	return nil
}

// Count returns the number of occurrences of v in the subtree.
// Values equal to an existing node are always routed to its right
// subtree on insertion, so every duplicate of v lies on the single
// descent path that keeps going right on a match.
func (n *Node[T]) Count(v T) (count int) {
	for curr := n; curr != nil; {
		switch c := curr.Compare(v); {
		case c > 0:
			curr = curr.left
		case c < 0:
			curr = curr.right
		default:
			count++
			curr = curr.right
		}
	}

	return count
}

// Higher returns the node in the subtree that has the
// smallest order which is higher than or equal to v
func (n *Node[T]) Higher(v T) *Node[T] {
	var higher *Node[T]

	for curr := n; curr != nil; {
		if curr.Compare(v) >= 0 {
			higher = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return higher
}

// Lower returns the node in the subtree that has the
// highest order which is lower than or equal to v
func (n *Node[T]) Lower(v T) *Node[T] {
	var lower *Node[T]

	for curr := n; curr != nil; {
		if curr.Compare(v) <= 0 {
			lower = curr
			curr = curr.right
		} else {
			curr = curr.left
		}
	}

	return lower
}

// Tree represents an unbalanced binary search tree. For every node,
// values in its left subtree are strictly lower than the node's value
// and values in its right subtree are higher or equal, so an in order
// walk produces a non-decreasing sequence.
//
// A Tree performs no internal synchronization; the caller must have
// exclusive access to it for the duration of every call.
type Tree[T cmp.Ordered] struct {
	root *Node[T]
	len  int
}

// New creates an empty tree
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of nodes in the tree
func (t *Tree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Clear resets the tree to empty, releasing ownership of every node
func (t *Tree[T]) Clear() {
	t.root = nil
	t.len = 0
}

// Min returns the node in the tree with the
// lowest value. It returns nil if the tree
// is empty
func (t *Tree[T]) Min() *Node[T] {
	return t.root.Min()
}

// Max returns the node in the tree with the
// highest value. It returns nil if the tree
// is empty
func (t *Tree[T]) Max() *Node[T] {
	return t.root.Max()
}

// Higher returns the node in the tree that has the
// smallest order which is higher than or equal to v
func (t *Tree[T]) Higher(v T) *Node[T] {
	return t.root.Higher(v)
}

// Lower returns the node in the tree that has the
// highest order which is lower than or equal to v
func (t *Tree[T]) Lower(v T) *Node[T] {
	return t.root.Lower(v)
}

// Contains returns true if the tree contains at
// least one node with value v
func (t *Tree[T]) Contains(v T) bool {
	return t.root.Find(v) != nil
}

// Count returns the number of occurrences of v
// in the tree
func (t *Tree[T]) Count(v T) int {
	return t.root.Count(v)
}

// Find returns the first node in the tree that
// contains a value equal to the one provided
func (t *Tree[T]) Find(v T) *Node[T] {
	return t.root.Find(v)
}

// Add inserts v into the tree by preserving the binary search tree
// properties but without applying any balancing algorithm. Values
// equal to an existing node are routed to its right subtree, so
// duplicates are kept. The descent is iterative and reaches as deep
// as the current height of the insertion path.
//
// Every value of T participates in a total order: for floating point
// types a NaN orders below every other value and equal to another
// NaN, so adding one never fails.
func (t *Tree[T]) Add(v T) {
	n := &Node[T]{value: v}
	t.len++

	if t.root == nil {
		t.root = n
		return
	}

	for curr := t.root; ; {
		if curr.Compare(v) > 0 {
			if curr.left == nil {
				curr.left = n
				return
			}
			curr = curr.left
		} else {
			if curr.right == nil {
				curr.right = n
				return
			}
			curr = curr.right
		}
	}
}

// find locates the first node matching v on the natural descent path.
// It also reports the matched node's parent and whether the final
// step from that parent went left, which Remove needs to relink the
// tree. The recorded direction is authoritative: it must not be
// re-derived by comparison, since a duplicate of v may sit on the
// search path.
func (t *Tree[T]) find(v T) (n, parent *Node[T], wentLeft bool) {
	for curr := t.root; curr != nil; {
		c := curr.Compare(v)
		if c == 0 {
			return curr, parent, wentLeft
		}

		parent = curr
		if wentLeft = c > 0; wentLeft {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return nil, nil, false
}
