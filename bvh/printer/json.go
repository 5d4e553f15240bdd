package printer

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/bvhkit/aabb"
	"github.com/joshuapare/bvhkit/bvh"
)

// jsonBox represents a bounding volume in JSON format.
type jsonBox struct {
	Lower [3]float64 `json:"lower"`
	Upper [3]float64 `json:"upper"`
}

// jsonNode represents one tree node in JSON format. Leaves carry a payload,
// internal nodes carry children; Leaves is set only on truncated nodes.
type jsonNode struct {
	Box     *jsonBox  `json:"box,omitempty"`
	Payload any       `json:"payload,omitempty"`
	Leaves  int       `json:"leaves,omitempty"`
	Left    *jsonNode `json:"left,omitempty"`
	Right   *jsonNode `json:"right,omitempty"`
}

func (p *Printer[T]) printJSON() error {
	var doc *jsonNode
	if root, ok := p.tree.Root(); ok {
		doc = p.buildJSON(root, 0)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

func (p *Printer[T]) buildJSON(n bvh.Node[T], depth int) *jsonNode {
	out := &jsonNode{}
	if p.opts.ShowBoxes {
		out.Box = toJSONBox(n.Box())
	}

	if payload, ok := n.Payload(); ok {
		out.Payload = payload
		return out
	}

	if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
		out.Leaves = leafCount(n)
		return out
	}

	left, right, _ := n.Children()
	out.Left = p.buildJSON(left, depth+1)
	out.Right = p.buildJSON(right, depth+1)
	return out
}

func toJSONBox(b aabb.Box) *jsonBox {
	return &jsonBox{Lower: b.Lower, Upper: b.Upper}
}
