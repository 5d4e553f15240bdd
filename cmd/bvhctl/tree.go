package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bvhkit/bvh/printer"
	"github.com/joshuapare/bvhkit/internal/writer"
)

var (
	treeDepth      int
	treeIndent     int
	treeNoBoxes    bool
	treeLeavesOnly bool
	treeOutput     string
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth to display (0 = unlimited)")
	cmd.Flags().IntVar(&treeIndent, "indent", printer.DefaultIndentSize, "Spaces per indent level")
	cmd.Flags().BoolVar(&treeNoBoxes, "no-boxes", false, "Hide bounding boxes")
	cmd.Flags().BoolVar(&treeLeavesOnly, "leaves", false, "Print leaves only, in traversal order")
	cmd.Flags().StringVarP(&treeOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <scene>",
		Short: "Print the hierarchy",
		Long: `The tree command prints the bounding volume hierarchy built over a
scene, one node per line, children indented under their parent.

Example:
  bvhctl tree diagonal.yaml
  bvhctl tree city.json --depth 2
  bvhctl tree city.json --leaves --no-boxes
  bvhctl tree city.json --json -o city-tree.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
}

func runTree(args []string) error {
	_, tree, err := loadTree(args[0])
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = treeDepth
	opts.IndentSize = treeIndent
	opts.ShowBoxes = !treeNoBoxes
	opts.LeavesOnly = treeLeavesOnly
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	if treeOutput == "" {
		return printer.New(tree, os.Stdout, opts).Print()
	}

	var buf bytes.Buffer
	if err := printer.New(tree, &buf, opts).Print(); err != nil {
		return err
	}
	if err := (&writer.FileWriter{Path: treeOutput}).WriteAll(buf.Bytes()); err != nil {
		return err
	}
	printVerbose("Wrote %s\n", treeOutput)
	return nil
}
