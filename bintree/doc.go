// Package bintree provides an owned binary tree with eager traversals.
//
// Overview:
//
//   - Node[T] owns zero, one, or two children. Children exist only
//     because InsertLeft/InsertRight created them; subtrees can never be
//     reattached from elsewhere, so a tree is acyclic by construction and
//     a whole subtree dies with the reference that owns it.
//   - InsertLeft and InsertRight overwrite: an existing child in that slot
//     is replaced and dropped, not pushed down.
//   - Inorder, Preorder, and Postorder materialize the full value sequence
//     eagerly; Height counts nodes on the longest root-to-leaf chain
//     (a lone node has height 1).
//
// When to use:
//
//   - Expression shapes, decision structures, and teaching-grade tree
//     algorithms where explicit ownership beats a generic graph.
//
// Performance and complexity:
//
//   - InsertLeft/InsertRight, IsLeaf, Left/Right: O(1).
//   - Height, NodeCount, all traversals: O(n) over the subtree.
//
// All read-only methods tolerate a nil receiver (Height 0, NodeCount 0,
// empty traversals), which keeps recursion over optional children free of
// special cases. Node is not safe for concurrent mutation.
package bintree
