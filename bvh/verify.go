package bvh

import (
	"fmt"
)

// ValidationError describes the first structural invariant a Tree violates.
type ValidationError struct {
	Check   string // name of the failed check, e.g. "Enclosure"
	Message string
	Node    int // arena index of the offending node, -1 if not node-specific
	Depth   int
}

func (e *ValidationError) Error() string {
	if e.Node >= 0 {
		return fmt.Sprintf("%s at node %d (depth %d): %s", e.Check, e.Node, e.Depth, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Check, e.Message)
}

type verifyConfig struct {
	expectedLeaves int // -1 means unchecked
}

// VerifyOption configures Verify.
type VerifyOption func(*verifyConfig)

// WithExpectedLeaves makes Verify also require exactly n leaves.
func WithExpectedLeaves(n int) VerifyOption {
	return func(c *verifyConfig) {
		c.expectedLeaves = n
	}
}

// Verify checks the tree's structural invariants and returns a
// *ValidationError for the first violation, or nil:
//   - every internal node has exactly two children, stored after it in the arena
//   - every node is reachable exactly once from the root
//   - every internal node's box encloses both children's boxes
//   - no payload appears in more than one leaf
//
// Trees returned by Build always pass; Verify exists for tests and for
// callers that want to assert it cheaply.
func (t *Tree[T]) Verify(opts ...VerifyOption) error {
	cfg := verifyConfig{expectedLeaves: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if t.Empty() {
		if cfg.expectedLeaves > 0 {
			return &ValidationError{
				Check:   "LeafCount",
				Message: fmt.Sprintf("empty tree, expected %d leaves", cfg.expectedLeaves),
				Node:    -1,
			}
		}
		return nil
	}

	type frame struct {
		index int32
		depth int
	}

	visited := make([]bool, len(t.nodes))
	payloads := make(map[T]int32, t.Len())
	leaves := 0
	stack := []frame{{index: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[f.index] {
			return &ValidationError{Check: "Ownership", Message: "node reached twice", Node: int(f.index), Depth: f.depth}
		}
		visited[f.index] = true
		n := &t.nodes[f.index]

		switch n.kind {
		case kindLeaf:
			leaves++
			if prev, dup := payloads[n.payload]; dup {
				return &ValidationError{
					Check:   "UniquePayload",
					Message: fmt.Sprintf("payload %v also stored at node %d", n.payload, prev),
					Node:    int(f.index),
					Depth:   f.depth,
				}
			}
			payloads[n.payload] = f.index

		case kindInternal:
			for _, child := range [2]int32{n.left, n.right} {
				if child <= f.index || int(child) >= len(t.nodes) {
					return &ValidationError{
						Check:   "ChildIndex",
						Message: fmt.Sprintf("child index %d out of range (%d, %d)", child, f.index, len(t.nodes)),
						Node:    int(f.index),
						Depth:   f.depth,
					}
				}
				if !n.box.ContainsBox(t.nodes[child].box) {
					return &ValidationError{
						Check:   "Enclosure",
						Message: fmt.Sprintf("box %s does not enclose child %d box %s", n.box, child, t.nodes[child].box),
						Node:    int(f.index),
						Depth:   f.depth,
					}
				}
			}
			stack = append(stack, frame{n.right, f.depth + 1}, frame{n.left, f.depth + 1})

		default:
			return &ValidationError{
				Check:   "NodeKind",
				Message: fmt.Sprintf("unknown node kind %d", n.kind),
				Node:    int(f.index),
				Depth:   f.depth,
			}
		}
	}

	for i, ok := range visited {
		if !ok {
			return &ValidationError{Check: "Ownership", Message: "node unreachable from root", Node: i, Depth: -1}
		}
	}

	if cfg.expectedLeaves >= 0 && leaves != cfg.expectedLeaves {
		return &ValidationError{
			Check:   "LeafCount",
			Message: fmt.Sprintf("got %d leaves, expected %d", leaves, cfg.expectedLeaves),
			Node:    -1,
		}
	}
	return nil
}
