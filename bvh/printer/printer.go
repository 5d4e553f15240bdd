// Package printer renders the structure of a bvh.Tree for inspection.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/bvhkit/bvh"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs one indented line per node.
	FormatText Format = "text"

	// FormatJSON outputs the tree as nested JSON objects.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how deep the printer descends (0 = unlimited).
	// Internal nodes at the limit are printed with their leaf count only.
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowBoxes includes each node's bounding volume.
	// Default: true
	ShowBoxes bool

	// LeavesOnly prints only leaves, without indentation (text format only).
	// Default: false
	LeavesOnly bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   DefaultMaxDepth,
		ShowBoxes:  true,
	}
}

// Printer writes a tree to an io.Writer.
type Printer[T comparable] struct {
	opts   Options
	writer io.Writer
	tree   *bvh.Tree[T]
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(tree, os.Stdout, printer.DefaultOptions())
//	if err := p.Print(); err != nil {
//	    return err
//	}
func New[T comparable](tree *bvh.Tree[T], w io.Writer, opts Options) *Printer[T] {
	return &Printer[T]{
		tree:   tree,
		writer: w,
		opts:   opts,
	}
}

// Print writes the whole tree. An empty tree prints as "(empty)" in text
// format and null in JSON.
func (p *Printer[T]) Print() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON()
	case FormatText, "":
		return p.printText()
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}

// leafCount counts the leaves below n.
func leafCount[T comparable](n bvh.Node[T]) int {
	left, right, ok := n.Children()
	if !ok {
		return 1
	}
	return leafCount(left) + leafCount(right)
}
