// Package scene loads scene files: named axis-aligned boxes that a BVH is
// built over.
//
// A scene file is YAML (JSON documents are accepted too, since JSON is a
// subset of YAML):
//
//	objects:
//	  - name: A
//	    lower: [0, 0, 0]
//	    upper: [1, 1, 1]
//
// Files may start with a UTF-8 or UTF-16 byte order mark. Box corners are not
// validated here; bvh.Build does that so callers can opt out with
// bvh.WithoutValidation.
package scene
