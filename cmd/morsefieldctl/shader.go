package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morsefield/kernel/internal/field/shader"
)

func shaderCmd() *cobra.Command {
	var exprPath string
	cmd := &cobra.Command{
		Use:   "shader",
		Short: "Emit GLSL-dialect shader source for an expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := readExpr(exprPath)
			if err != nil {
				return err
			}
			fmt.Println(shader.Emit(expr))
			return nil
		},
	}
	cmd.Flags().StringVar(&exprPath, "expr", "-", "path to an expression JSON document, or - for stdin")
	return cmd
}
