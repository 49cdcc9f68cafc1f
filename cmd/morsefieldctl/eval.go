package main

import (
	"github.com/spf13/cobra"

	"github.com/morsefield/kernel/internal/field"
)

func evalCmd() *cobra.Command {
	var exprPath string
	var x, y, z float64
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate an expression at a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := readExpr(exprPath)
			if err != nil {
				return err
			}
			return writeJSON(map[string]float64{"value": field.Eval(expr, x, y, z)})
		},
	}
	cmd.Flags().StringVar(&exprPath, "expr", "-", "path to an expression JSON document, or - for stdin")
	cmd.Flags().Float64Var(&x, "x", 0, "x coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "y coordinate")
	cmd.Flags().Float64Var(&z, "z", 0, "z coordinate")
	return cmd
}

func gradientCmd() *cobra.Command {
	var exprPath string
	var x, y, z float64
	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Evaluate an expression and its gradient at a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := readExpr(exprPath)
			if err != nil {
				return err
			}
			f, g := field.Gradient(expr, x, y, z)
			return writeJSON(map[string]any{
				"value": f,
				"grad":  [3]float64{g.X, g.Y, g.Z},
			})
		},
	}
	cmd.Flags().StringVar(&exprPath, "expr", "-", "path to an expression JSON document, or - for stdin")
	cmd.Flags().Float64Var(&x, "x", 0, "x coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "y coordinate")
	cmd.Flags().Float64Var(&z, "z", 0, "z coordinate")
	return cmd
}
