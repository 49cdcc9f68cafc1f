// Package config loads the kernel collaborators' runtime configuration
// (listen address, debug flag, default solver budgets) via viper,
// layering environment variables and an optional config file over the
// package's built-in numeric defaults.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/morsefield/kernel/internal/field/solver"
)

// Config is the resolved runtime configuration for the CLI and the
// protocol server.
type Config struct {
	ListenAddr     string
	Debug          bool
	MaxNewtonIters int
	GradTol        float64
	HessianEps     float64
	PivotFloor     float64
	MaxJacobiSweep int
	JacobiFloor    float64
}

// SolverSettings projects the solver-relevant fields into a
// solver.Settings.
func (c Config) SolverSettings() solver.Settings {
	return solver.Settings{
		MaxNewtonIters: c.MaxNewtonIters,
		GradTol:        c.GradTol,
		HessianEps:     c.HessianEps,
		PivotFloor:     c.PivotFloor,
		MaxJacobiSweep: c.MaxJacobiSweep,
		JacobiFloor:    c.JacobiFloor,
	}
}

// Load resolves configuration from (in ascending priority) built-in
// defaults, an optional file at path (if non-empty), and MORSEFIELD_*
// environment variables.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("morsefield")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", "127.0.0.1:8787")
	v.SetDefault("debug", false)
	v.SetDefault("max_newton_iters", solver.DefaultMaxNewtonIters)
	v.SetDefault("grad_tol", solver.DefaultGradTol)
	v.SetDefault("hessian_eps", solver.DefaultHessianEps)
	v.SetDefault("pivot_floor", solver.DefaultPivotFloor)
	v.SetDefault("max_jacobi_sweep", solver.DefaultMaxJacobiSweep)
	v.SetDefault("jacobi_floor", solver.DefaultJacobiFloor)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	return Config{
		ListenAddr:     v.GetString("listen_addr"),
		Debug:          v.GetBool("debug"),
		MaxNewtonIters: v.GetInt("max_newton_iters"),
		GradTol:        v.GetFloat64("grad_tol"),
		HessianEps:     v.GetFloat64("hessian_eps"),
		PivotFloor:     v.GetFloat64("pivot_floor"),
		MaxJacobiSweep: v.GetInt("max_jacobi_sweep"),
		JacobiFloor:    v.GetFloat64("jacobi_floor"),
	}, nil
}
