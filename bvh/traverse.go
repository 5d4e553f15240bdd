package bvh

import (
	"iter"

	"github.com/joshuapare/bvhkit/aabb"
)

// initialStackCapacity is the minimum pre-allocated traversal stack. A
// median-split tree over n objects is about log2(n) deep and the pre-order
// stack never holds more than depth+1 entries, so this covers most trees
// without growing.
const initialStackCapacity = 64

// Visitor receives one Step call per visited node.
//
// For an internal node isLeaf is false, payload is the zero value of T, and
// the return value decides whether the node's children are visited. For a
// leaf isLeaf is true, payload is the leaf's object, and the return value is
// ignored.
type Visitor[T comparable] interface {
	Step(box aabb.Box, payload T, isLeaf bool) bool
}

// VisitorFunc adapts an ordinary function to the Visitor interface.
type VisitorFunc[T comparable] func(box aabb.Box, payload T, isLeaf bool) bool

// Step calls f(box, payload, isLeaf).
func (f VisitorFunc[T]) Step(box aabb.Box, payload T, isLeaf bool) bool {
	return f(box, payload, isLeaf)
}

// Traverse walks t depth-first, pre-order, left child before right, calling
// v.Step for each visited node. An internal node whose Step returns false is
// pruned: none of its descendants are visited. Leaves are always reported
// once reached.
//
// Returning false only prunes the current subtree. To stop the whole walk,
// keep a done flag in the visitor, return false for every internal node once
// it is set, and ignore any leaf calls that still arrive.
//
// Traversing an empty or nil tree makes no calls.
//
// Example:
//
//	probe := mgl64.Vec3{0.5, 0.5, 0.5}
//	tree.Traverse(bvh.VisitorFunc[string](func(box aabb.Box, name string, isLeaf bool) bool {
//	    if !box.Contains(probe) {
//	        return false
//	    }
//	    if isLeaf {
//	        fmt.Println("hit", name)
//	    }
//	    return true
//	}))
func (t *Tree[T]) Traverse(v Visitor[T]) {
	if t.Empty() {
		return
	}

	stack := make([]int32, 0, max(initialStackCapacity, t.depth+1))
	stack = append(stack, 0)

	var none T
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[i]
		if n.kind == kindLeaf {
			v.Step(n.box, n.payload, true)
			continue
		}
		if v.Step(n.box, none, false) {
			// Right first so that left is popped next.
			stack = append(stack, n.right, n.left)
		}
	}
}

// TraverseFunc is Traverse with a plain function visitor.
func (t *Tree[T]) TraverseFunc(fn func(box aabb.Box, payload T, isLeaf bool) bool) {
	t.Traverse(VisitorFunc[T](fn))
}

// Traverse walks t with v. It is the function form of (*Tree).Traverse.
func Traverse[T comparable](t *Tree[T], v Visitor[T]) {
	t.Traverse(v)
}

// All returns an iterator over every leaf's payload and bounding volume in
// traversal order. Breaking out of the range loop stops the walk.
//
// Example:
//
//	for name, box := range tree.All() {
//	    fmt.Println(name, box)
//	}
func (t *Tree[T]) All() iter.Seq2[T, aabb.Box] {
	return func(yield func(T, aabb.Box) bool) {
		if t.Empty() {
			return
		}
		stack := make([]int32, 0, max(initialStackCapacity, t.depth+1))
		stack = append(stack, 0)
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			n := &t.nodes[i]
			if n.kind == kindLeaf {
				if !yield(n.payload, n.box) {
					return
				}
				continue
			}
			stack = append(stack, n.right, n.left)
		}
	}
}
