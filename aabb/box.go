// Package aabb provides the axis-aligned bounding box used as the bounding
// volume of every node in a bvh.Tree.
//
// Box is a plain value. Combine and Union return new boxes and never modify
// their operands, so a box can be shared between an input map and the nodes
// built from it.
package aabb

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/joshuapare/bvhkit/pkg/types"
)

// Box is an axis-aligned bounding box described by its lower and upper corners.
type Box struct {
	Lower mgl64.Vec3
	Upper mgl64.Vec3
}

// New returns the box spanning lower to upper. The corners are stored as given;
// use Validate to reject inverted or non-finite input.
func New(lower, upper mgl64.Vec3) Box {
	return Box{Lower: lower, Upper: upper}
}

// FromPoint returns the zero-extent box located at p.
func FromPoint(p mgl64.Vec3) Box {
	return Box{Lower: p, Upper: p}
}

// Combine returns the smallest box enclosing both b and other.
func (b Box) Combine(other Box) Box {
	return Box{
		Lower: mgl64.Vec3{
			math.Min(b.Lower[0], other.Lower[0]),
			math.Min(b.Lower[1], other.Lower[1]),
			math.Min(b.Lower[2], other.Lower[2]),
		},
		Upper: mgl64.Vec3{
			math.Max(b.Upper[0], other.Upper[0]),
			math.Max(b.Upper[1], other.Upper[1]),
			math.Max(b.Upper[2], other.Upper[2]),
		},
	}
}

// Union folds Combine over boxes. ok is false when boxes is empty.
func Union(boxes ...Box) (Box, bool) {
	if len(boxes) == 0 {
		return Box{}, false
	}
	u := boxes[0]
	for _, b := range boxes[1:] {
		u = u.Combine(b)
	}
	return u, true
}

// Center returns the midpoint of the lower and upper corners.
func (b Box) Center() mgl64.Vec3 {
	return b.Lower.Add(b.Upper).Mul(0.5)
}

// Extent returns Upper - Lower.
func (b Box) Extent() mgl64.Vec3 {
	return b.Upper.Sub(b.Lower)
}

// LongestAxis returns the axis with the greatest extent. When two or more axes
// tie, the first of x, y, z wins.
func (b Box) LongestAxis() Axis {
	e := b.Extent()
	axis := AxisX
	if e[1] > e[axis] {
		axis = AxisY
	}
	if e[2] > e[axis] {
		axis = AxisZ
	}
	return axis
}

// Contains reports whether p lies inside b, boundary included.
func (b Box) Contains(p mgl64.Vec3) bool {
	return p[0] >= b.Lower[0] && p[0] <= b.Upper[0] &&
		p[1] >= b.Lower[1] && p[1] <= b.Upper[1] &&
		p[2] >= b.Lower[2] && p[2] <= b.Upper[2]
}

// ContainsBox reports whether other lies entirely inside b.
func (b Box) ContainsBox(other Box) bool {
	return b.Contains(other.Lower) && b.Contains(other.Upper)
}

// Intersects reports whether b and other share at least one point.
func (b Box) Intersects(other Box) bool {
	return b.Lower[0] <= other.Upper[0] && b.Upper[0] >= other.Lower[0] &&
		b.Lower[1] <= other.Upper[1] && b.Upper[1] >= other.Lower[1] &&
		b.Lower[2] <= other.Upper[2] && b.Upper[2] >= other.Lower[2]
}

// Validate returns an error of kind types.ErrKindInvalidVolume if any
// coordinate is NaN or infinite, or if Lower exceeds Upper on any axis.
// Zero-extent boxes are valid.
func (b Box) Validate() error {
	for i := range 3 {
		axis := Axis(i)
		if !finite(b.Lower[i]) || !finite(b.Upper[i]) {
			return types.Errorf(types.ErrKindInvalidVolume,
				"non-finite %s coordinate in %s", axis, b)
		}
		if b.Lower[i] > b.Upper[i] {
			return types.Errorf(types.ErrKindInvalidVolume,
				"inverted %s extent: lower %g > upper %g", axis, b.Lower[i], b.Upper[i])
		}
	}
	return nil
}

// String formats the box as (x,y,z)-(x,y,z).
func (b Box) String() string {
	return formatPoint(b.Lower) + "-" + formatPoint(b.Upper)
}

func formatPoint(p mgl64.Vec3) string {
	return "(" + strconv.FormatFloat(p[0], 'f', -1, 64) + "," +
		strconv.FormatFloat(p[1], 'f', -1, 64) + "," +
		strconv.FormatFloat(p[2], 'f', -1, 64) + ")"
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Axis identifies a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String implements the Stringer interface for Axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}
