package config

import (
	"testing"

	"github.com/morsefield/kernel/internal/field/solver"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.ListenAddr == "" {
		t.Fatal("ListenAddr default is empty")
	}
	if cfg.MaxNewtonIters != solver.DefaultMaxNewtonIters {
		t.Fatalf("MaxNewtonIters = %d, want %d", cfg.MaxNewtonIters, solver.DefaultMaxNewtonIters)
	}
}

func TestSolverSettingsProjection(t *testing.T) {
	cfg := Config{
		MaxNewtonIters: 10,
		GradTol:        1e-6,
		HessianEps:     1e-3,
		PivotFloor:     1e-10,
		MaxJacobiSweep: 12,
		JacobiFloor:    1e-8,
	}
	s := cfg.SolverSettings()
	if s.MaxNewtonIters != 10 || s.GradTol != 1e-6 || s.HessianEps != 1e-3 ||
		s.PivotFloor != 1e-10 || s.MaxJacobiSweep != 12 || s.JacobiFloor != 1e-8 {
		t.Fatalf("SolverSettings() = %+v, did not project all fields", s)
	}
}
