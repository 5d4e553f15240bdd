package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/joshuapare/bvhkit/aabb"
)

var (
	queryPoint string
	queryBox   string
)

func init() {
	cmd := newQueryCmd()
	cmd.Flags().StringVar(&queryPoint, "point", "", "Probe point as x,y,z")
	cmd.Flags().StringVar(&queryBox, "box", "", "Probe box as x0,y0,z0,x1,y1,z1")
	cmd.MarkFlagsMutuallyExclusive("point", "box")
	cmd.MarkFlagsOneRequired("point", "box")
	rootCmd.AddCommand(cmd)
}

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <scene>",
		Short: "List objects whose boxes contain a point or overlap a box",
		Long: `The query command walks the tree, skipping every subtree whose bounds
miss the probe, and prints the objects whose own boxes match it.

Example:
  bvhctl query city.json --point 10,10,1
  bvhctl query city.json --box 0,0,0,45,45,10 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args)
		},
	}
}

type queryMatch struct {
	Name string   `json:"name"`
	Box  *jsonBox `json:"box"`
}

type queryResult struct {
	Scene   string       `json:"scene"`
	Probe   string       `json:"probe"`
	Visited int          `json:"visited"`
	Matches []queryMatch `json:"matches"`
}

func runQuery(args []string) error {
	hit, probe, err := parseProbe(queryPoint, queryBox)
	if err != nil {
		return err
	}

	_, tree, err := loadTree(args[0])
	if err != nil {
		return err
	}

	res := queryResult{Scene: args[0], Probe: probe, Matches: []queryMatch{}}
	tree.TraverseFunc(func(box aabb.Box, name string, isLeaf bool) bool {
		res.Visited++
		if !hit(box) {
			return false
		}
		if isLeaf {
			res.Matches = append(res.Matches, queryMatch{Name: name, Box: newJSONBox(box)})
		}
		return true
	})

	if jsonOut {
		return printJSON(res)
	}

	printVerbose("Visited %d of %d nodes\n", res.Visited, tree.NodeCount())
	if len(res.Matches) == 0 {
		printInfo("No objects match %s\n", res.Probe)
		return nil
	}
	for _, m := range res.Matches {
		printInfo("%s\t%s\n", m.Name, m.Box.box)
	}
	return nil
}

// parseProbe returns the predicate for --point or --box and a label for it.
func parseProbe(point, box string) (func(aabb.Box) bool, string, error) {
	switch {
	case point != "" && box != "":
		return nil, "", fmt.Errorf("--point and --box are mutually exclusive")
	case point != "":
		v, err := parseFloats(point, 3)
		if err != nil {
			return nil, "", fmt.Errorf("invalid --point: %w", err)
		}
		p := mgl64.Vec3{v[0], v[1], v[2]}
		return func(b aabb.Box) bool { return b.Contains(p) }, fmt.Sprintf("point (%g,%g,%g)", p[0], p[1], p[2]), nil
	case box != "":
		v, err := parseFloats(box, 6)
		if err != nil {
			return nil, "", fmt.Errorf("invalid --box: %w", err)
		}
		q := aabb.New(mgl64.Vec3{v[0], v[1], v[2]}, mgl64.Vec3{v[3], v[4], v[5]})
		if err := q.Validate(); err != nil {
			return nil, "", fmt.Errorf("invalid --box: %w", err)
		}
		return func(b aabb.Box) bool { return b.Intersects(q) }, "box " + q.String(), nil
	default:
		return nil, "", fmt.Errorf("one of --point or --box is required")
	}
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
