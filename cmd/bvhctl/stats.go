package main

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bvhkit/bvh"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <scene>",
		Short: "Show detailed tree statistics",
		Long: `The stats command builds the tree for a scene and reports node counts
by kind, the depth range of its leaves, and how many leaves sit at each depth.

Example:
  bvhctl stats city.json
  bvhctl stats city.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
}

type treeStats struct {
	Scene         string      `json:"scene"`
	Leaves        int         `json:"leaves"`
	InternalNodes int         `json:"internal_nodes"`
	MinLeafDepth  int         `json:"min_leaf_depth"`
	MaxLeafDepth  int         `json:"max_leaf_depth"`
	MeanLeafDepth float64     `json:"mean_leaf_depth"`
	LeavesByDepth map[int]int `json:"leaves_by_depth"`
	Bounds        *jsonBox    `json:"bounds,omitempty"`
}

func runStats(args []string) error {
	_, tree, err := loadTree(args[0])
	if err != nil {
		return err
	}

	stats := collectStats(tree)
	stats.Scene = args[0]

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("Scene:          %s\n", stats.Scene)
	printInfo("Leaves:         %d\n", stats.Leaves)
	printInfo("Internal nodes: %d\n", stats.InternalNodes)
	if stats.Leaves == 0 {
		return nil
	}
	printInfo("Leaf depth:     min %d, max %d, mean %.2f\n",
		stats.MinLeafDepth, stats.MaxLeafDepth, stats.MeanLeafDepth)
	printInfo("Bounds:         %s\n", stats.Bounds.box)
	printInfo("\nLeaves by depth:\n")
	depths := make([]int, 0, len(stats.LeavesByDepth))
	for d := range stats.LeavesByDepth {
		depths = append(depths, d)
	}
	slices.Sort(depths)
	for _, d := range depths {
		printInfo("  %3d: %d\n", d, stats.LeavesByDepth[d])
	}
	return nil
}

// collectStats walks the tree through its node views.
func collectStats(tree *bvh.Tree[string]) treeStats {
	s := tree.Stats()
	out := treeStats{
		Leaves:        s.Leaves,
		InternalNodes: s.InternalNodes,
		LeavesByDepth: make(map[int]int),
	}
	if s.Empty {
		return out
	}
	out.Bounds = newJSONBox(s.Bounds)

	type frame struct {
		n     bvh.Node[string]
		depth int
	}
	root, _ := tree.Root()
	stack := []frame{{root, 0}}
	out.MinLeafDepth = -1
	total := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if left, right, ok := f.n.Children(); ok {
			stack = append(stack, frame{right, f.depth + 1}, frame{left, f.depth + 1})
			continue
		}
		out.LeavesByDepth[f.depth]++
		total += f.depth
		if out.MinLeafDepth < 0 || f.depth < out.MinLeafDepth {
			out.MinLeafDepth = f.depth
		}
		out.MaxLeafDepth = max(out.MaxLeafDepth, f.depth)
	}
	out.MeanLeafDepth = float64(total) / float64(s.Leaves)
	return out
}
