package aabb

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bvhkit/pkg/types"
)

func box(x0, y0, z0, x1, y1, z1 float64) Box {
	return New(mgl64.Vec3{x0, y0, z0}, mgl64.Vec3{x1, y1, z1})
}

func TestCombine_ReturnsEnclosingBox(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(2, -1, 0, 3, 1, 4)

	got := a.Combine(b)

	require.Equal(t, box(0, -1, 0, 3, 1, 4), got)
	require.True(t, got.ContainsBox(a))
	require.True(t, got.ContainsBox(b))
}

func TestCombine_DoesNotMutateOperands(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(5, 5, 5, 6, 6, 6)
	aBefore, bBefore := a, b

	_ = a.Combine(b)
	_ = b.Combine(a)

	require.Equal(t, aBefore, a)
	require.Equal(t, bBefore, b)
}

func TestUnion(t *testing.T) {
	_, ok := Union()
	require.False(t, ok)

	single, ok := Union(box(1, 2, 3, 4, 5, 6))
	require.True(t, ok)
	require.Equal(t, box(1, 2, 3, 4, 5, 6), single)

	u, ok := Union(box(0, 0, 0, 1, 1, 1), box(2, 0, 0, 3, 1, 1), box(-1, -1, -1, 0, 0, 0))
	require.True(t, ok)
	require.Equal(t, box(-1, -1, -1, 3, 1, 1), u)
}

func TestCenterAndExtent(t *testing.T) {
	b := box(0, 0, 0, 10, 20, 30)

	require.Equal(t, mgl64.Vec3{5, 10, 15}, b.Center())
	require.Equal(t, mgl64.Vec3{10, 20, 30}, b.Extent())
}

func TestLongestAxis(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want Axis
	}{
		{name: "x longest", box: box(0, 0, 0, 4, 2, 1), want: AxisX},
		{name: "y longest", box: box(0, 0, 0, 1, 4, 2), want: AxisY},
		{name: "z longest", box: box(0, 0, 0, 1, 2, 4), want: AxisZ},
		{name: "all tie picks x", box: box(0, 0, 0, 3, 3, 3), want: AxisX},
		{name: "y and z tie picks y", box: box(0, 0, 0, 1, 5, 5), want: AxisY},
		{name: "x and z tie picks x", box: box(0, 0, 0, 5, 1, 5), want: AxisX},
		{name: "zero extent picks x", box: FromPoint(mgl64.Vec3{1, 2, 3}), want: AxisX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.box.LongestAxis())
		})
	}
}

func TestContainsAndIntersects(t *testing.T) {
	b := box(0, 0, 0, 1, 1, 1)

	assert.True(t, b.Contains(mgl64.Vec3{0.5, 0.5, 0.5}))
	assert.True(t, b.Contains(mgl64.Vec3{1, 1, 1}), "boundary is inside")
	assert.False(t, b.Contains(mgl64.Vec3{1.5, 0.5, 0.5}))

	assert.True(t, b.Intersects(box(1, 1, 1, 2, 2, 2)), "touching corners intersect")
	assert.True(t, b.Intersects(box(0.5, -1, 0.5, 0.6, 2, 0.6)))
	assert.False(t, b.Intersects(box(2, 0, 0, 3, 1, 1)))
	assert.False(t, box(2, 0, 0, 3, 1, 1).Intersects(b))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		box     Box
		wantErr bool
	}{
		{name: "unit box", box: box(0, 0, 0, 1, 1, 1)},
		{name: "zero extent", box: FromPoint(mgl64.Vec3{3, 3, 3})},
		{name: "negative coordinates", box: box(-3, -3, -3, -2, -2, -2)},
		{name: "inverted x", box: box(1, 0, 0, 0, 1, 1), wantErr: true},
		{name: "inverted z", box: box(-2, -2, -2, -3, -3, -3), wantErr: true},
		{name: "NaN lower", box: box(math.NaN(), 0, 0, 1, 1, 1), wantErr: true},
		{name: "Inf upper", box: box(0, 0, 0, 1, math.Inf(1), 1), wantErr: true},
		{name: "-Inf lower", box: box(0, 0, math.Inf(-1), 1, 1, 1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.box.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.ErrorIs(t, err, types.ErrInvalidVolume)
		})
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "(0,0,0)-(3,1,1.5)", box(0, 0, 0, 3, 1, 1.5).String())
	require.Equal(t, "y", AxisY.String())
	require.Equal(t, "Axis(7)", Axis(7).String())
}
