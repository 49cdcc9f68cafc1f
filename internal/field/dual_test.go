package field

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// finiteDiffGradient computes a central-difference gradient independent of
// EvalDual, used as a reference oracle for Gradient.
func finiteDiffGradient(expr Expr, x, y, z, h float64) (float64, float64, float64) {
	gx := (Eval(expr, x+h, y, z) - Eval(expr, x-h, y, z)) / (2 * h)
	gy := (Eval(expr, x, y+h, z) - Eval(expr, x, y-h, z)) / (2 * h)
	gz := (Eval(expr, x, y, z+h) - Eval(expr, x, y, z-h)) / (2 * h)
	return gx, gy, gz
}

func TestGradientMatchesFiniteDifference(t *testing.T) {
	exprs := []Expr{
		Sphere(1.3),
		Torus(1, 0.3),
		SmoothUnion(Sphere(1), Translate{Sphere(1), 1.5, 0, 0}, 0.3),
		Mul{Sin{X{}}, Cos{Y{}}},
		Exp{Neg{Add{Mul{X{}, X{}}, Mul{Z{}, Z{}}}}},
		RotateZ{X{}, 37},
		RotateZ{Torus(1, 0.3), 37},
	}
	points := [][3]float64{{0.3, 0.4, 0.5}, {-0.7, 0.1, -0.2}, {1.1, -1.1, 0.05}}
	for ei, expr := range exprs {
		for _, p := range points {
			x, y, z := p[0], p[1], p[2]
			f, g := Gradient(expr, x, y, z)
			if want := Eval(expr, x, y, z); !scalar.EqualWithinAbs(f, want, 1e-9) {
				t.Fatalf("expr %d: value mismatch got %v want %v", ei, f, want)
			}
			fx, fy, fz := finiteDiffGradient(expr, x, y, z, 1e-5)
			if !scalar.EqualWithinAbs(g.X, fx, 1e-4) || !scalar.EqualWithinAbs(g.Y, fy, 1e-4) ||
				!scalar.EqualWithinAbs(g.Z, fz, 1e-4) {
				t.Fatalf("expr %d at %v: gradient (%v,%v,%v) vs finite diff (%v,%v,%v)",
					ei, p, g.X, g.Y, g.Z, fx, fy, fz)
			}
		}
	}
}

func TestGradientConstantIsZero(t *testing.T) {
	_, g := Gradient(Const{7}, 1, 2, 3)
	if g.X != 0 || g.Y != 0 || g.Z != 0 {
		t.Fatalf("gradient of constant = %v, want zero vector", g)
	}
}

func TestGradientCoordinateUnitVectors(t *testing.T) {
	_, gx := Gradient(X{}, 1, 2, 3)
	if gx.X != 1 || gx.Y != 0 || gx.Z != 0 {
		t.Fatalf("gradient of X = %v, want (1,0,0)", gx)
	}
	_, gy := Gradient(Y{}, 1, 2, 3)
	if gy.X != 0 || gy.Y != 1 || gy.Z != 0 {
		t.Fatalf("gradient of Y = %v, want (0,1,0)", gy)
	}
}

func TestGradientRotateZTransformsBackToWorldFrame(t *testing.T) {
	// RotateZ{X{}, 90} has true value h(x,y,z) = y, so its gradient must be
	// (0,1,0) in the unrotated frame, not the rotated leaf's own (1,0,0).
	expr := RotateZ{X{}, 90}
	f, g := Gradient(expr, 1, 2, 3)
	if want := Eval(expr, 1, 2, 3); !scalar.EqualWithinAbs(f, want, 1e-9) {
		t.Fatalf("value mismatch got %v want %v", f, want)
	}
	if !scalar.EqualWithinAbs(g.X, 0, 1e-9) || !scalar.EqualWithinAbs(g.Y, 1, 1e-9) ||
		!scalar.EqualWithinAbs(g.Z, 0, 1e-9) {
		t.Fatalf("gradient of RotateZ{X,90} = %v, want (0,1,0)", g)
	}
}

func TestGradientSmoothVsSharpSeam(t *testing.T) {
	// Far from the seam, SMin's gradient should match whichever branch wins.
	a := Sphere(1)
	b := Translate{Sphere(1), 5, 0, 0}
	smooth := SmoothUnion(a, b, 0.05)
	_, ga := Gradient(a, 0, 0, 0)
	_, gs := Gradient(smooth, 0, 0, 0)
	if !scalar.EqualWithinAbs(ga.X, gs.X, 1e-6) {
		t.Fatalf("far from seam: smooth gradient %v should match sharp branch %v", gs, ga)
	}
}
