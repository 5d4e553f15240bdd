package bvh

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/joshuapare/bvhkit/aabb"
	"github.com/joshuapare/bvhkit/pkg/types"
)

// Entry pairs an object identifier with its bounding volume.
type Entry[T comparable] struct {
	Key T
	Box aabb.Box
}

// Build constructs a Tree from a map of object identifiers to bounding
// volumes.
//
// Objects whose centers tie exactly on a split axis keep the order in which
// the map yielded them, so two builds of the same map may differ in how such
// ties are arranged. Use WithTieBreak or BuildOrdered for a reproducible
// layout.
//
// Unless WithoutValidation is given, every box is checked first and the first
// invalid one aborts the build with an error matching types.ErrInvalidVolume.
//
// Example:
//
//	tree, err := bvh.Build(map[string]aabb.Box{
//	    "A": aabb.New(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
//	    "B": aabb.New(mgl64.Vec3{2, 0, 0}, mgl64.Vec3{3, 1, 1}),
//	})
func Build[T comparable](entries map[T]aabb.Box, opts ...Option) (*Tree[T], error) {
	list := make([]Entry[T], 0, len(entries))
	for k, b := range entries {
		list = append(list, Entry[T]{Key: k, Box: b})
	}
	return build(list, opts)
}

// BuildEntries constructs a Tree from a slice. Objects whose centers tie on a
// split axis keep their slice order. Identifiers must be unique; a repeated
// identifier fails with an error matching types.ErrDuplicate.
func BuildEntries[T comparable](entries []Entry[T], opts ...Option) (*Tree[T], error) {
	seen := make(map[T]struct{}, len(entries))
	for i, e := range entries {
		if _, dup := seen[e.Key]; dup {
			return nil, types.Errorf(types.ErrKindDuplicate, "bvh: entry %d: identifier %v already present", i, e.Key)
		}
		seen[e.Key] = struct{}{}
	}
	return build(slices.Clone(entries), opts)
}

// BuildOrdered is Build for identifiers with a natural order. Ties between
// equal centers are broken by identifier, so the result does not depend on
// map iteration order. A WithTieBreak option passed by the caller overrides
// the natural order.
func BuildOrdered[T cmp.Ordered](entries map[T]aabb.Box, opts ...Option) (*Tree[T], error) {
	opts = append([]Option{WithTieBreak(cmp.Compare[T])}, opts...)
	return Build(entries, opts...)
}

// item is an entry with its center precomputed, so sorting at every level
// does not recompute it.
type item[T comparable] struct {
	key    T
	box    aabb.Box
	center mgl64.Vec3
}

type builder[T comparable] struct {
	items    []item[T]
	nodes    []node[T]
	tieBreak func(a, b T) int
	maxDepth int
}

// build owns entries; callers pass a slice nobody else holds.
func build[T comparable](entries []Entry[T], opts []Option) (*Tree[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var tieBreak func(a, b T) int
	if cfg.tieBreak != nil {
		fn, ok := cfg.tieBreak.(func(a, b T) int)
		if !ok {
			var zero T
			return nil, fmt.Errorf("bvh: tie-break %T does not compare %T identifiers", cfg.tieBreak, zero)
		}
		tieBreak = fn
	}

	if cfg.validate {
		for _, e := range entries {
			if err := e.Box.Validate(); err != nil {
				return nil, types.Wrap(types.ErrKindInvalidVolume, err, "bvh: object %v", e.Key)
			}
		}
	}

	if len(entries) == 0 {
		cfg.logger.Debug("bvh build complete", "objects", 0)
		return &Tree[T]{}, nil
	}

	start := time.Now()
	b := &builder[T]{
		items:    make([]item[T], len(entries)),
		nodes:    make([]node[T], 0, 2*len(entries)-1),
		tieBreak: tieBreak,
	}
	for i, e := range entries {
		b.items[i] = item[T]{key: e.Key, box: e.Box, center: e.Box.Center()}
	}
	b.subdivide(0, len(b.items), 0)

	t := &Tree[T]{nodes: b.nodes, depth: b.maxDepth}
	if cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		cfg.logger.Debug("bvh build complete",
			"objects", len(entries),
			"nodes", len(t.nodes),
			"depth", t.depth,
			"bounds", t.nodes[0].box.String(),
			"elapsed", time.Since(start),
		)
	}
	return t, nil
}

// subdivide appends the subtree for items[imin:imax] to the arena and returns
// the index of its root. The range is never empty.
func (b *builder[T]) subdivide(imin, imax, depth int) int32 {
	idx := int32(len(b.nodes))
	b.maxDepth = max(b.maxDepth, depth)

	if imax-imin == 1 {
		it := b.items[imin]
		b.nodes = append(b.nodes, node[T]{box: it.box, kind: kindLeaf, payload: it.key})
		return idx
	}

	span := b.items[imin:imax]
	bounds := span[0].box
	for _, it := range span[1:] {
		bounds = bounds.Combine(it.box)
	}
	axis := bounds.LongestAxis()

	slices.SortStableFunc(span, func(x, y item[T]) int {
		if c := cmp.Compare(x.center[axis], y.center[axis]); c != 0 {
			return c
		}
		if b.tieBreak != nil {
			return b.tieBreak(x.key, y.key)
		}
		return 0
	})

	b.nodes = append(b.nodes, node[T]{box: bounds, kind: kindInternal})

	// Odd counts put the extra object on the right.
	isplit := imin + (imax-imin)/2
	left := b.subdivide(imin, isplit, depth+1)
	right := b.subdivide(isplit, imax, depth+1)
	b.nodes[idx].left = left
	b.nodes[idx].right = right
	return idx
}
