// Command morsefieldctl is the CLI front end for the implicit-field
// kernel: it evaluates expressions, refines critical points, emits
// shader source, and encodes/decodes topology programs, all against the
// same internal/field and internal/topology packages the protocol
// server uses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morsefield/kernel/internal/config"
)

var (
	cfgFile string
	debug   bool
	cfg     config.Config
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "morsefieldctl",
		Short:         "Evaluate, differentiate, and render implicit-field expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("morsefieldctl: loading config: %w", err)
			}
			if debug {
				loaded.Debug = true
			}
			cfg = loaded
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a config file (YAML, TOML, JSON)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		evalCmd(),
		gradientCmd(),
		criticalPointCmd(),
		shaderCmd(),
		topologyCmd(),
		serveCmd(),
	)
	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
