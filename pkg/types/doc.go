// Package types holds the error taxonomy shared by the bvhkit packages.
//
// Errors carry a stable ErrKind so callers can branch on intent rather than
// message text:
//
//	tree, err := bvh.Build(boxes)
//	if errors.Is(err, types.ErrInvalidVolume) {
//	    // reject the input
//	}
//
// Traversal never returns errors; only construction and scene loading do.
//
// This package has no dependencies beyond the standard library.
package types
