package bvh

import (
	"github.com/joshuapare/bvhkit/aabb"
)

// nodeKind tags the two node variants stored in a Tree's arena.
type nodeKind uint8

const (
	kindLeaf nodeKind = iota + 1
	kindInternal
)

// node is one arena slot. Leaves use box and payload; internal nodes use box,
// left and right. Children always sit after their parent in the arena, so the
// arena holds no cycles and no shared subtrees.
type node[T comparable] struct {
	box     aabb.Box
	kind    nodeKind
	left    int32
	right   int32
	payload T
}

// Tree is an immutable bounding-volume hierarchy over payloads of type T.
//
// A Tree is produced only by the Build functions and exposes no mutation
// methods, so any number of goroutines may traverse the same Tree at once.
// The zero value and a nil *Tree are both empty trees.
type Tree[T comparable] struct {
	nodes []node[T] // pre-order arena, root at index 0
	depth int       // depth of the deepest node, root = 0
}

// Empty reports whether the tree has no root.
func (t *Tree[T]) Empty() bool {
	return t == nil || len(t.nodes) == 0
}

// Len returns the number of leaves, which equals the number of objects the
// tree was built from.
func (t *Tree[T]) Len() int {
	if t.Empty() {
		return 0
	}
	// A strict binary tree with n leaves has 2n-1 nodes.
	return (len(t.nodes) + 1) / 2
}

// NodeCount returns the number of leaf and internal nodes.
func (t *Tree[T]) NodeCount() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Depth returns the depth of the deepest leaf (0 for a single leaf). It is
// 0 for an empty tree.
func (t *Tree[T]) Depth() int {
	if t == nil {
		return 0
	}
	return t.depth
}

// Bounds returns the root's bounding volume. ok is false for an empty tree.
func (t *Tree[T]) Bounds() (aabb.Box, bool) {
	if t.Empty() {
		return aabb.Box{}, false
	}
	return t.nodes[0].box, true
}

// Root returns a read-only view of the root node. ok is false for an empty tree.
func (t *Tree[T]) Root() (Node[T], bool) {
	if t.Empty() {
		return Node[T]{}, false
	}
	return Node[T]{tree: t, index: 0}, true
}

// Node is a read-only handle to a node inside a Tree. It is a small value
// and may be copied freely; it stays valid for the lifetime of the Tree.
type Node[T comparable] struct {
	tree  *Tree[T]
	index int32
}

func (n Node[T]) slot() *node[T] {
	return &n.tree.nodes[n.index]
}

// IsLeaf reports whether n is a leaf.
func (n Node[T]) IsLeaf() bool {
	return n.slot().kind == kindLeaf
}

// Box returns the node's bounding volume.
func (n Node[T]) Box() aabb.Box {
	return n.slot().box
}

// Payload returns the object stored in a leaf. ok is false for internal nodes.
func (n Node[T]) Payload() (payload T, ok bool) {
	s := n.slot()
	if s.kind != kindLeaf {
		return payload, false
	}
	return s.payload, true
}

// Children returns the two children of an internal node. ok is false for leaves.
func (n Node[T]) Children() (left, right Node[T], ok bool) {
	s := n.slot()
	if s.kind != kindInternal {
		return Node[T]{}, Node[T]{}, false
	}
	return Node[T]{tree: n.tree, index: s.left}, Node[T]{tree: n.tree, index: s.right}, true
}

// Stats summarizes the shape of a Tree.
type Stats struct {
	Leaves        int
	InternalNodes int
	MaxDepth      int
	Bounds        aabb.Box
	Empty         bool
}

// Stats counts the tree's nodes by kind.
func (t *Tree[T]) Stats() Stats {
	if t.Empty() {
		return Stats{Empty: true}
	}
	s := Stats{MaxDepth: t.depth, Bounds: t.nodes[0].box}
	for i := range t.nodes {
		switch t.nodes[i].kind {
		case kindLeaf:
			s.Leaves++
		case kindInternal:
			s.InternalNodes++
		}
	}
	return s
}
