// Package bvh implements a bounding-volume hierarchy: a binary spatial index
// built once over a fixed set of objects, each annotated with an axis-aligned
// bounding box, and walked with caller-supplied visitors that prune subtrees.
//
// # Overview
//
// The package has two halves:
//   - Build: a recursive median split over the objects' box centers
//   - Traverse: a pruning depth-first walk driven by a Visitor
//
// Everything geometric (corner storage, union, centers) lives in package
// aabb. This package never intersects rays or shapes itself; callers encode
// their query in the visitor.
//
// # Quick Start
//
//	tree, err := bvh.BuildOrdered(map[string]aabb.Box{
//	    "A": aabb.New(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
//	    "B": aabb.New(mgl64.Vec3{2, 0, 0}, mgl64.Vec3{3, 1, 1}),
//	})
//	if err != nil {
//	    return err
//	}
//
//	probe := mgl64.Vec3{0.5, 0.5, 0.5}
//	tree.TraverseFunc(func(box aabb.Box, name string, isLeaf bool) bool {
//	    if !box.Contains(probe) {
//	        return false // prune
//	    }
//	    if isLeaf {
//	        fmt.Println("candidate:", name)
//	    }
//	    return true
//	})
//
// # Construction
//
// For a range of n objects:
//  1. n == 0: no node (only possible at the top level; yields an empty Tree)
//  2. n == 1: a leaf holding the object and its box
//  3. otherwise:
//     a. fold every box with Combine into the node's box
//     b. pick the longest axis of that box; ties go to x, then y, then z
//     c. stable-sort the range by box center along that axis
//     d. split at n/2; the right half gets the extra object when n is odd
//     e. recurse on both halves and wrap them in an internal node
//
// The result is balanced by count, not by volume, with depth ceil(log2 n).
//
// Objects whose centers are exactly equal on the split axis keep their input
// order. For BuildEntries that is slice order; for Build it is map iteration
// order, which Go leaves unspecified. Pass WithTieBreak, or use BuildOrdered
// for ordered identifier types, to get the same tree on every run.
//
// # Storage
//
// Nodes live in a single arena slice in pre-order:
//
//	index: 0         1        2         3        4
//	       Internal  Leaf(A)  Internal  Leaf(B)  Leaf(C)
//	       L=1 R=2            L=3 R=4
//
// A node's children always have larger indices than the node itself, so the
// arena cannot contain cycles or shared subtrees, and nothing stores a parent
// reference. A tree over n objects has exactly 2n-1 nodes.
//
// # Traversal Protocol
//
// Traverse visits nodes depth-first, pre-order, left before right:
//   - internal node: Step(box, zero, false); children are visited only if
//     Step returns true
//   - leaf: Step(box, payload, true); the return value is ignored
//
// Returning false prunes the current subtree only. There is no abort signal;
// see Traverse for the done-flag pattern.
//
// The walk is iterative over an explicit stack, so deep trees never grow the
// goroutine stack.
//
// # Validation
//
// By default Build rejects boxes with NaN or infinite coordinates and boxes
// whose lower corner exceeds the upper corner on some axis. The error matches
// types.ErrInvalidVolume:
//
//	_, err := bvh.Build(boxes)
//	if errors.Is(err, types.ErrInvalidVolume) {
//	    // bad input
//	}
//
// Zero-extent boxes (points) are accepted. WithoutValidation skips the check.
//
// Verify re-checks a built tree's structural invariants; it is mostly useful
// in tests.
//
// # Thread Safety
//
// A Tree is immutable once Build returns. Any number of goroutines may call
// Traverse, All, Stats and Verify on the same Tree concurrently. Visitors that
// share mutable state across goroutines must synchronize it themselves.
//
// Build copies its input before sorting, but the caller must not modify the
// input map or slice while Build is running.
package bvh
