package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bvhkit/aabb"
	"github.com/joshuapare/bvhkit/bvh"
	"github.com/joshuapare/bvhkit/internal/testutil"
	"github.com/joshuapare/bvhkit/pkg/types"
)

func TestLoad_TwoBoxes(t *testing.T) {
	path := testutil.SceneCopy(t, testutil.TestSceneTwoBoxes)

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, sc.Path)
	require.Equal(t, 2, sc.Len())

	assert.Equal(t, "A", sc.Objects[0].Name)
	assert.Equal(t, testutil.Box(0, 0, 0, 1, 1, 1), sc.Objects[0].Box)
	assert.Equal(t, "B", sc.Objects[1].Name)
	assert.Equal(t, testutil.Box(2, 0, 0, 3, 1, 1), sc.Objects[1].Box)
}

func TestLoad_UTF16MatchesUTF8(t *testing.T) {
	plain, err := Load(testutil.ResolveTestPath(t, testutil.TestSceneTwoBoxes))
	require.NoError(t, err)
	wide, err := Load(testutil.ResolveTestPath(t, testutil.TestSceneUTF16))
	require.NoError(t, err)

	assert.Equal(t, plain.Objects, wide.Objects)
}

func TestLoad_JSON(t *testing.T) {
	sc, err := Load(testutil.ResolveTestPath(t, testutil.TestSceneCity))
	require.NoError(t, err)
	require.Equal(t, 16, sc.Len())

	tree, err := sc.Build()
	require.NoError(t, err)
	require.NoError(t, tree.Verify(bvh.WithExpectedLeaves(16)))

	bounds, ok := tree.Bounds()
	require.True(t, ok)
	assert.Equal(t, testutil.Box(0, 0, 0, 110, 110, 30), bounds)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, sc.Len())

	tree, err := sc.Build()
	require.NoError(t, err)
	assert.True(t, tree.Empty())
}

func TestParse_UTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, "objects:\n  - {name: A, lower: [0,0,0], upper: [1,1,1]}\n"...)
	sc, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 1, sc.Len())
	assert.Equal(t, "A", sc.Objects[0].Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind error
	}{
		{
			name: "malformed yaml",
			data: "objects: [",
			kind: types.ErrFormat,
		},
		{
			name: "unknown field",
			data: "objects:\n  - {name: A, lower: [0,0,0], upper: [1,1,1], color: red}\n",
			kind: types.ErrFormat,
		},
		{
			name: "missing name",
			data: "objects:\n  - {lower: [0,0,0], upper: [1,1,1]}\n",
			kind: types.ErrFormat,
		},
		{
			name: "short lower",
			data: "objects:\n  - {name: A, lower: [0,0], upper: [1,1,1]}\n",
			kind: types.ErrFormat,
		},
		{
			name: "missing upper",
			data: "objects:\n  - {name: A, lower: [0,0,0]}\n",
			kind: types.ErrFormat,
		},
		{
			name: "duplicate name",
			data: "objects:\n  - {name: A, lower: [0,0,0], upper: [1,1,1]}\n  - {name: A, lower: [2,0,0], upper: [3,1,1]}\n",
			kind: types.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var te *types.Error
			require.True(t, errors.As(err, &te))
		})
	}
}

func TestParse_InvertedBoxLeftToBuild(t *testing.T) {
	data := "objects:\n  - {name: A, lower: [1,1,1], upper: [0,0,0]}\n"
	sc, err := Parse([]byte(data))
	require.NoError(t, err)

	_, err = sc.Build()
	require.ErrorIs(t, err, types.ErrInvalidVolume)

	tree, err := sc.Build(bvh.WithoutValidation())
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Len())
}

func TestScene_BoxesEntriesLookup(t *testing.T) {
	sc, err := Load(testutil.ResolveTestPath(t, testutil.TestSceneDiagonal))
	require.NoError(t, err)

	boxes := sc.Boxes()
	require.Len(t, boxes, 3)
	assert.Equal(t, testutil.Box(2, 2, 2, 3, 3, 3), boxes["B"])

	entries := sc.Entries()
	require.Len(t, entries, 3)
	for i, want := range []string{"A", "B", "C"} {
		assert.Equal(t, want, entries[i].Key)
	}

	box, err := sc.Lookup("C")
	require.NoError(t, err)
	assert.True(t, box.Contains(mgl64.Vec3{4.5, 4.5, 4.5}))

	_, err = sc.Lookup("Z")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestScene_BuildDiagonalOrder(t *testing.T) {
	sc, err := Load(testutil.ResolveTestPath(t, testutil.TestSceneDiagonal))
	require.NoError(t, err)

	tree, err := sc.Build()
	require.NoError(t, err)

	var got []string
	for name := range tree.All() {
		got = append(got, name)
	}
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestScene_EntriesIndependentCopy(t *testing.T) {
	sc, err := Parse([]byte("objects:\n  - {name: A, lower: [0,0,0], upper: [1,1,1]}\n"))
	require.NoError(t, err)

	entries := sc.Entries()
	entries[0].Box = aabb.Box{}
	assert.Equal(t, testutil.Box(0, 0, 0, 1, 1, 1), sc.Objects[0].Box)
}
