package solver

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/morsefield/kernel/internal/field"
)

func TestRefineSphereMinimum(t *testing.T) {
	p, ok := Refine(field.Sphere(1), 0.3, 0.2, 0.1, Settings{})
	if !ok {
		t.Fatal("Refine did not converge")
	}
	if !scalar.EqualWithinAbs(p.X, 0, 1e-5) || !scalar.EqualWithinAbs(p.Y, 0, 1e-5) || !scalar.EqualWithinAbs(p.Z, 0, 1e-5) {
		t.Fatalf("critical point = (%v,%v,%v), want origin", p.X, p.Y, p.Z)
	}
	if p.Index != 0 {
		t.Fatalf("Morse index = %d, want 0 (minimum)", p.Index)
	}
}

func TestRefineIsFixedPoint(t *testing.T) {
	// Refining an already-converged critical point should return
	// (approximately) the same point on a second pass.
	expr := field.Sphere(1)
	p1, ok := Refine(expr, 0.4, -0.3, 0.2, Settings{})
	if !ok {
		t.Fatal("first refine did not converge")
	}
	p2, ok := Refine(expr, p1.X, p1.Y, p1.Z, Settings{})
	if !ok {
		t.Fatal("second refine did not converge")
	}
	if !scalar.EqualWithinAbs(p1.X, p2.X, 1e-6) || !scalar.EqualWithinAbs(p1.Y, p2.Y, 1e-6) || !scalar.EqualWithinAbs(p1.Z, p2.Z, 1e-6) {
		t.Fatalf("refine is not a fixed point: %v vs %v", p1, p2)
	}
}

func TestMorseIndexSaddle(t *testing.T) {
	// f = x^2 - y^2 has a saddle at the origin: Hessian diag(2, -2, 0).
	h := mat3{{2, 0, 0}, {0, -2, 0}, {0, 0, 0}}
	idx := MorseIndex(h, Settings{})
	if idx != 1 {
		t.Fatalf("MorseIndex(diag(2,-2,0)) = %d, want 1", idx)
	}
}

func TestMorseIndexMaximum(t *testing.T) {
	h := mat3{{-3, 0, 0}, {0, -1, 0}, {0, 0, -2}}
	idx := MorseIndex(h, Settings{})
	if idx != 3 {
		t.Fatalf("MorseIndex(all negative) = %d, want 3", idx)
	}
}

func TestSolveGaussJordanIdentity(t *testing.T) {
	a := mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	b := [3]float64{3, -2, 5}
	got, ok := solveGaussJordan(a, b, DefaultPivotFloor)
	if !ok {
		t.Fatal("solve failed on identity matrix")
	}
	if got != b {
		t.Fatalf("solveGaussJordan(I, b) = %v, want %v", got, b)
	}
}

func TestSolveGaussJordanSingular(t *testing.T) {
	a := mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}
	_, ok := solveGaussJordan(a, [3]float64{1, 2, 3}, DefaultPivotFloor)
	if ok {
		t.Fatal("solveGaussJordan reported success on a singular matrix")
	}
}

func TestRefineConstantFieldDoesNotPanic(t *testing.T) {
	// A constant field has zero gradient everywhere; Newton's first
	// convergence check should fire immediately since |g| = 0 < GradTol,
	// and the resulting Hessian is singular for MorseIndex purposes but
	// Refine itself must not panic regardless.
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Refine panicked: %v", r)
		}
	}()
	_, _ = Refine(field.Const{Value: 1}, 0, 0, 0, Settings{MaxNewtonIters: 3})
}

func TestHessianFiniteDifferenceSymmetry(t *testing.T) {
	h := Hessian(field.Sphere(1), 0.2, 0.3, 0.1, DefaultHessianEps)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.EqualWithinAbs(h[i][j], h[j][i], 1e-3) {
				t.Fatalf("Hessian not symmetric at [%d][%d]=%v vs [%d][%d]=%v", i, j, h[i][j], j, i, h[j][i])
			}
		}
	}
	// The sphere's Hessian should be ~2*I away from numerical noise.
	if !scalar.EqualWithinAbs(h[0][0], 2, 1e-2) {
		t.Fatalf("h[0][0] = %v, want ~2", h[0][0])
	}
}

func TestIsFinite3(t *testing.T) {
	if !isFinite3(1, 2, 3) {
		t.Fatal("isFinite3(1,2,3) = false, want true")
	}
	if isFinite3(math.Inf(1), 0, 0) {
		t.Fatal("isFinite3 with +Inf = true, want false")
	}
	if isFinite3(math.NaN(), 0, 0) {
		t.Fatal("isFinite3 with NaN = true, want false")
	}
}
