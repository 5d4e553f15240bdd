package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <scene>",
		Short: "Show scene and tree summary",
		Long: `The info command loads a scene, builds its tree, and prints the object
count, node count, depth, root bounds, and the axis the root splits on.

Example:
  bvhctl info city.json
  bvhctl info city.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
}

type infoResult struct {
	Scene   string   `json:"scene"`
	Objects int      `json:"objects"`
	Nodes   int      `json:"nodes"`
	Depth   int      `json:"depth"`
	Bounds  *jsonBox `json:"bounds,omitempty"`
	Axis    string   `json:"split_axis,omitempty"`
}

func runInfo(args []string) error {
	sc, tree, err := loadTree(args[0])
	if err != nil {
		return err
	}

	res := infoResult{
		Scene:   args[0],
		Objects: sc.Len(),
		Nodes:   tree.NodeCount(),
		Depth:   tree.Depth(),
	}
	if bounds, ok := tree.Bounds(); ok {
		res.Bounds = newJSONBox(bounds)
		if tree.Len() > 1 {
			res.Axis = bounds.LongestAxis().String()
		}
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("Scene:   %s\n", res.Scene)
	printInfo("Objects: %d\n", res.Objects)
	printInfo("Nodes:   %d\n", res.Nodes)
	printInfo("Depth:   %d\n", res.Depth)
	if res.Bounds == nil {
		printInfo("Bounds:  (empty)\n")
		return nil
	}
	printInfo("Bounds:  %s\n", res.Bounds.box)
	if res.Axis != "" {
		printInfo("Split:   %s\n", res.Axis)
	}
	return nil
}
