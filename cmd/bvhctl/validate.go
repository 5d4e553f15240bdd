package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bvhkit/bvh"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scene>",
		Short: "Check a scene and its tree for errors",
		Long: `The validate command loads a scene, builds its tree, and checks the
tree's structural invariants: every object in exactly one leaf, every
internal node enclosing its children, no shared or dangling nodes.

Example:
  bvhctl validate city.json
  bvhctl validate city.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

type validateResult struct {
	Scene   string `json:"scene"`
	Valid   bool   `json:"valid"`
	Objects int    `json:"objects"`
	Check   string `json:"check,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runValidate(args []string) error {
	sc, tree, err := loadTree(args[0])
	if err != nil {
		return err
	}

	res := validateResult{Scene: args[0], Objects: sc.Len(), Valid: true}
	verr := tree.Verify(bvh.WithExpectedLeaves(sc.Len()))
	if verr != nil {
		res.Valid = false
		res.Error = verr.Error()
		var ve *bvh.ValidationError
		if errors.As(verr, &ve) {
			res.Check = ve.Check
		}
	}

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else if res.Valid {
		printInfo("OK: %s (%d objects)\n", res.Scene, res.Objects)
	}

	if verr != nil {
		return fmt.Errorf("validation failed: %w", verr)
	}
	return nil
}
