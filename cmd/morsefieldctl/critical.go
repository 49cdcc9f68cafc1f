package main

import (
	"github.com/spf13/cobra"

	"github.com/morsefield/kernel/internal/field/solver"
)

func criticalPointCmd() *cobra.Command {
	var exprPath string
	var x, y, z float64
	cmd := &cobra.Command{
		Use:   "critical-point",
		Short: "Refine a nearby critical point by damped Newton iteration",
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := readExpr(exprPath)
			if err != nil {
				return err
			}
			p, found := solver.Refine(expr, x, y, z, cfg.SolverSettings())
			if !found {
				return writeJSON(map[string]any{"found": false})
			}
			return writeJSON(map[string]any{
				"found": true,
				"x":     p.X,
				"y":     p.Y,
				"z":     p.Z,
				"f":     p.F,
				"index": p.Index,
			})
		},
	}
	cmd.Flags().StringVar(&exprPath, "expr", "-", "path to an expression JSON document, or - for stdin")
	cmd.Flags().Float64Var(&x, "x", 0, "initial x coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "initial y coordinate")
	cmd.Flags().Float64Var(&z, "z", 0, "initial z coordinate")
	return cmd
}
