package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morsefield/kernel/internal/protocol"
	"github.com/morsefield/kernel/internal/topology"
)

func topologyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topology",
		Short: "Encode expressions to, and decode them from, topology programs",
	}
	cmd.AddCommand(topologyEncodeCmd(), topologyDecodeCmd(), topologySceneCmd())
	return cmd
}

func topologyEncodeCmd() *cobra.Command {
	var exprPath string
	var asDot bool
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode an expression into a topology program",
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := readExpr(exprPath)
			if err != nil {
				return err
			}
			prog := topology.Encode(expr)
			if asDot {
				out, err := prog.Dot()
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			}
			return writeJSON(prog)
		},
	}
	cmd.Flags().StringVar(&exprPath, "expr", "-", "path to an expression JSON document, or - for stdin")
	cmd.Flags().BoolVar(&asDot, "dot", false, "emit GraphViz DOT source instead of JSON")
	return cmd
}

func topologyDecodeCmd() *cobra.Command {
	var progPath string
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a topology program back into an expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openInput(progPath)
			if err != nil {
				return err
			}
			defer r.Close()

			var prog topology.Program
			if err := json.NewDecoder(r).Decode(&prog); err != nil {
				return fmt.Errorf("morsefieldctl: decoding topology program: %w", err)
			}
			if err := topology.Validate(prog); err != nil {
				return err
			}
			expr, err := topology.Decode(prog)
			if err != nil {
				return err
			}
			return writeJSON(protocol.ExprToWire(expr))
		},
	}
	cmd.Flags().StringVar(&progPath, "program", "-", "path to a topology program JSON document, or - for stdin")
	return cmd
}

func topologySceneCmd() *cobra.Command {
	var scene string
	var outerR, innerR, halfH float64
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Build a topology program for a named scene",
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := topology.FromScene(scene, topology.SceneParams{OuterR: outerR, InnerR: innerR, HalfH: halfH})
			return writeJSON(prog)
		},
	}
	cmd.Flags().StringVar(&scene, "scene", "tube", "scene name (tube, gear-bushing)")
	cmd.Flags().Float64Var(&outerR, "outer-r", 0, "outer radius override")
	cmd.Flags().Float64Var(&innerR, "inner-r", 0, "inner radius override")
	cmd.Flags().Float64Var(&halfH, "half-h", 0, "half-height override")
	return cmd
}
