package testutil

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/joshuapare/bvhkit/aabb"
)

// Box is shorthand for aabb.New with explicit coordinates.
func Box(x0, y0, z0, x1, y1, z1 float64) aabb.Box {
	return aabb.New(mgl64.Vec3{x0, y0, z0}, mgl64.Vec3{x1, y1, z1})
}

// GridScene returns nx*ny*nz unit boxes on an integer lattice with spacing 2,
// keyed "x,y,z".
func GridScene(nx, ny, nz int) map[string]aabb.Box {
	out := make(map[string]aabb.Box, nx*ny*nz)
	for x := range nx {
		for y := range ny {
			for z := range nz {
				fx, fy, fz := float64(2*x), float64(2*y), float64(2*z)
				out[fmt.Sprintf("%d,%d,%d", x, y, z)] = Box(fx, fy, fz, fx+1, fy+1, fz+1)
			}
		}
	}
	return out
}

// RandomScene returns n boxes keyed 0..n-1 inside the cube [0, extent)^3,
// each with sides up to maxSize. The same seed always yields the same scene.
func RandomScene(seed uint64, n int, extent, maxSize float64) map[int]aabb.Box {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make(map[int]aabb.Box, n)
	for i := range n {
		lo := mgl64.Vec3{r.Float64() * extent, r.Float64() * extent, r.Float64() * extent}
		size := mgl64.Vec3{r.Float64() * maxSize, r.Float64() * maxSize, r.Float64() * maxSize}
		out[i] = aabb.New(lo, lo.Add(size))
	}
	return out
}

// Step is one recorded visitor call.
type Step[T comparable] struct {
	Box     aabb.Box
	Payload T
	IsLeaf  bool
}

// Recorder is a visitor that records every call and answers internal nodes
// with Descend (nil means always descend). It satisfies bvh.Visitor and may
// be shared between goroutines.
type Recorder[T comparable] struct {
	Descend func(box aabb.Box) bool

	mu    sync.Mutex
	steps []Step[T]
}

// Step records the call.
func (r *Recorder[T]) Step(box aabb.Box, payload T, isLeaf bool) bool {
	r.mu.Lock()
	r.steps = append(r.steps, Step[T]{Box: box, Payload: payload, IsLeaf: isLeaf})
	r.mu.Unlock()
	if isLeaf || r.Descend == nil {
		return true
	}
	return r.Descend(box)
}

// Steps returns a copy of the recorded calls in order.
func (r *Recorder[T]) Steps() []Step[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Step[T](nil), r.steps...)
}

// Leaves returns the payloads of the recorded leaf calls in order.
func (r *Recorder[T]) Leaves() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []T
	for _, s := range r.steps {
		if s.IsLeaf {
			out = append(out, s.Payload)
		}
	}
	return out
}
