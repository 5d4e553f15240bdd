package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/bvhkit/bvh"
)

func (p *Printer[T]) printText() error {
	root, ok := p.tree.Root()
	if !ok {
		_, err := fmt.Fprintln(p.writer, "(empty)")
		return err
	}
	return p.printNodeText(root, 0)
}

// printNodeText prints n and, within MaxDepth, its descendants.
func (p *Printer[T]) printNodeText(n bvh.Node[T], depth int) error {
	indent := ""
	if !p.opts.LeavesOnly {
		indent = strings.Repeat(" ", depth*p.opts.IndentSize)
	}

	if payload, ok := n.Payload(); ok {
		line := fmt.Sprintf("%sleaf %v", indent, payload)
		if p.opts.ShowBoxes {
			line += " " + n.Box().String()
		}
		_, err := fmt.Fprintln(p.writer, line)
		return err
	}

	left, right, _ := n.Children()
	truncated := p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth

	if !p.opts.LeavesOnly {
		line := indent + "internal"
		if p.opts.ShowBoxes {
			line += " " + n.Box().String()
		}
		if truncated {
			line += fmt.Sprintf(" [%d leaves]", leafCount(n))
		}
		if _, err := fmt.Fprintln(p.writer, line); err != nil {
			return err
		}
	}
	if truncated {
		return nil
	}

	if err := p.printNodeText(left, depth+1); err != nil {
		return err
	}
	return p.printNodeText(right, depth+1)
}
