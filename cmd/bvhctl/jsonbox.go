package main

import (
	"github.com/joshuapare/bvhkit/aabb"
)

// jsonBox is the JSON shape of a box in command output.
type jsonBox struct {
	Lower [3]float64 `json:"lower"`
	Upper [3]float64 `json:"upper"`

	box aabb.Box
}

func newJSONBox(b aabb.Box) *jsonBox {
	return &jsonBox{Lower: b.Lower, Upper: b.Upper, box: b}
}
