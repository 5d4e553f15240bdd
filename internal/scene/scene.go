package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/bvhkit/aabb"
	"github.com/joshuapare/bvhkit/bvh"
	"github.com/joshuapare/bvhkit/internal/mmfile"
	"github.com/joshuapare/bvhkit/pkg/types"
)

// Object is one named box of a scene.
type Object struct {
	Name string
	Box  aabb.Box
}

// Scene is the parsed contents of a scene file, in file order.
type Scene struct {
	Path    string
	Objects []Object
}

type rawObject struct {
	Name  string    `yaml:"name"`
	Lower []float64 `yaml:"lower"`
	Upper []float64 `yaml:"upper"`
}

type rawScene struct {
	Objects []rawObject `yaml:"objects"`
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, types.Wrap(types.ErrKindNotFound, err, "scene: %s", path)
		}
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer release()

	// Parse copies everything it keeps, so the mapping can go away afterwards.
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.Path = path
	return sc, nil
}

// Parse decodes scene data. Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, types.Wrap(types.ErrKindFormat, err, "scene: decode text")
	}

	var raw rawScene
	dec := yaml.NewDecoder(bytes.NewReader(text))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, types.Wrap(types.ErrKindFormat, err, "scene: parse")
	}

	sc := &Scene{Objects: make([]Object, 0, len(raw.Objects))}
	seen := make(map[string]int, len(raw.Objects))
	for i, ro := range raw.Objects {
		if ro.Name == "" {
			return nil, types.Errorf(types.ErrKindFormat, "scene: object %d has no name", i)
		}
		if prev, dup := seen[ro.Name]; dup {
			return nil, types.Errorf(types.ErrKindDuplicate,
				"scene: object %q at index %d duplicates index %d", ro.Name, i, prev)
		}
		seen[ro.Name] = i

		lower, err := vec3(ro.Lower)
		if err != nil {
			return nil, types.Wrap(types.ErrKindFormat, err, "scene: object %q lower", ro.Name)
		}
		upper, err := vec3(ro.Upper)
		if err != nil {
			return nil, types.Wrap(types.ErrKindFormat, err, "scene: object %q upper", ro.Name)
		}
		sc.Objects = append(sc.Objects, Object{Name: ro.Name, Box: aabb.New(lower, upper)})
	}
	return sc, nil
}

// Len returns the number of objects.
func (s *Scene) Len() int { return len(s.Objects) }

// Boxes returns the objects keyed by name.
func (s *Scene) Boxes() map[string]aabb.Box {
	m := make(map[string]aabb.Box, len(s.Objects))
	for _, o := range s.Objects {
		m[o.Name] = o.Box
	}
	return m
}

// Entries returns the objects as build entries in file order.
func (s *Scene) Entries() []bvh.Entry[string] {
	out := make([]bvh.Entry[string], len(s.Objects))
	for i, o := range s.Objects {
		out[i] = bvh.Entry[string]{Key: o.Name, Box: o.Box}
	}
	return out
}

// Lookup returns the box of the named object.
func (s *Scene) Lookup(name string) (aabb.Box, error) {
	for _, o := range s.Objects {
		if o.Name == name {
			return o.Box, nil
		}
	}
	return aabb.Box{}, types.Errorf(types.ErrKindNotFound, "scene: no object named %q", name)
}

// Build builds a tree over the scene's objects in file order.
func (s *Scene) Build(opts ...bvh.Option) (*bvh.Tree[string], error) {
	return bvh.BuildEntries(s.Entries(), opts...)
}

func vec3(v []float64) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("want 3 coordinates, got %d", len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// decodeText converts BOM-marked UTF-16 or UTF-8 input to plain UTF-8.
// Input without a BOM passes through unchanged.
func decodeText(data []byte) ([]byte, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	return out, err
}
