// Package bintree implements the owned binary tree node.
package bintree

// Node is one vertex of an owned binary tree. Value is freely mutable;
// the child slots are private so that children can only come into
// existence through InsertLeft/InsertRight, keeping every tree acyclic.
type Node[T any] struct {
	Value T

	left  *Node[T]
	right *Node[T]
}

// New constructs a single node holding value, with no children.
func New[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Left returns the left child, or nil when absent.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}

	return n.left
}

// Right returns the right child, or nil when absent.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}

	return n.right
}

// InsertLeft allocates a new node holding value and installs it as the
// left child, replacing (and dropping) any subtree previously in that
// slot. It returns the new child, so trees can be built by chaining.
func (n *Node[T]) InsertLeft(value T) *Node[T] {
	child := New(value)
	n.left = child

	return child
}

// InsertRight allocates a new node holding value and installs it as the
// right child, replacing (and dropping) any subtree previously in that
// slot. It returns the new child.
func (n *Node[T]) InsertRight(value T) *Node[T] {
	child := New(value)
	n.right = child

	return child
}

// IsLeaf reports whether both children are absent. A nil node is not a
// leaf; it is no node at all.
func (n *Node[T]) IsLeaf() bool {
	if n == nil {
		return false
	}

	return n.left == nil && n.right == nil
}

// Height returns the number of nodes on the longest chain from this node
// down to a leaf: 1 + max(height of children). A leaf has height 1, a nil
// node has height 0.
//
// Complexity: O(n) over the subtree.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}

	lh := n.left.Height()
	rh := n.right.Height()
	if lh > rh {
		return 1 + lh
	}

	return 1 + rh
}

// NodeCount returns the number of nodes in this subtree, the node itself
// included. A nil node counts 0.
//
// Complexity: O(n) over the subtree.
func (n *Node[T]) NodeCount() int {
	if n == nil {
		return 0
	}

	return 1 + n.left.NodeCount() + n.right.NodeCount()
}

// Inorder returns the subtree's values in left, self, right order. The
// sequence is materialized eagerly into a fresh slice; a nil node yields
// nil.
//
// Complexity: O(n) time and space over the subtree.
func (n *Node[T]) Inorder() []T {
	if n == nil {
		return nil
	}

	out := make([]T, 0, n.NodeCount())
	n.appendInorder(&out)

	return out
}

func (n *Node[T]) appendInorder(out *[]T) {
	if n == nil {
		return
	}
	n.left.appendInorder(out)
	*out = append(*out, n.Value)
	n.right.appendInorder(out)
}

// Preorder returns the subtree's values in self, left, right order,
// materialized eagerly.
//
// Complexity: O(n) time and space over the subtree.
func (n *Node[T]) Preorder() []T {
	if n == nil {
		return nil
	}

	out := make([]T, 0, n.NodeCount())
	n.appendPreorder(&out)

	return out
}

func (n *Node[T]) appendPreorder(out *[]T) {
	if n == nil {
		return
	}
	*out = append(*out, n.Value)
	n.left.appendPreorder(out)
	n.right.appendPreorder(out)
}

// Postorder returns the subtree's values in left, right, self order,
// materialized eagerly.
//
// Complexity: O(n) time and space over the subtree.
func (n *Node[T]) Postorder() []T {
	if n == nil {
		return nil
	}

	out := make([]T, 0, n.NodeCount())
	n.appendPostorder(&out)

	return out
}

func (n *Node[T]) appendPostorder(out *[]T) {
	if n == nil {
		return
	}
	n.left.appendPostorder(out)
	n.right.appendPostorder(out)
	*out = append(*out, n.Value)
}
