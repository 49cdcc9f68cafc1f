// Package solver implements Morse-theoretic critical-point refinement:
// damped Newton iteration on the field gradient followed by a
// finite-difference Hessian and a cyclic-Jacobi eigen-classification of
// its index. It never panics; failure is reported as a boolean, treating
// numeric non-convergence as data rather than an error.
package solver

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/morsefield/kernel/internal/field"
)

// Defaults for the Newton loop and Jacobi sweep.
const (
	DefaultMaxNewtonIters = 24
	DefaultGradTol        = 1e-8
	DefaultHessianEps     = 1e-4
	DefaultPivotFloor     = 1e-12
	DefaultMaxJacobiSweep = 24
	DefaultJacobiFloor    = 1e-10
)

// Point is a refined critical point: coordinates, field value, and
// Morse index (the count of strictly negative Hessian eigenvalues; 0 is
// a minimum, 3 a maximum, 1 or 2 a saddle).
type Point struct {
	X, Y, Z float64
	F       float64
	Index   int
}

// Settings overrides the defaults above; the zero value uses them all.
type Settings struct {
	MaxNewtonIters int
	GradTol        float64
	HessianEps     float64
	PivotFloor     float64
	MaxJacobiSweep int
	JacobiFloor    float64
}

func (s Settings) withDefaults() Settings {
	if s.MaxNewtonIters == 0 {
		s.MaxNewtonIters = DefaultMaxNewtonIters
	}
	if s.GradTol == 0 {
		s.GradTol = DefaultGradTol
	}
	if s.HessianEps == 0 {
		s.HessianEps = DefaultHessianEps
	}
	if s.PivotFloor == 0 {
		s.PivotFloor = DefaultPivotFloor
	}
	if s.MaxJacobiSweep == 0 {
		s.MaxJacobiSweep = DefaultMaxJacobiSweep
	}
	if s.JacobiFloor == 0 {
		s.JacobiFloor = DefaultJacobiFloor
	}
	return s
}

// mat3 is a 3x3 matrix, row-major. The Hessian is not assumed symmetric
// going into the linear solve; Gauss-Jordan operates on it as given.
type mat3 [3][3]float64

// vecAt returns component i (0=X, 1=Y, 2=Z) of v.
func vecAt(v r3.Vec, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hessian returns the central finite-difference Hessian of expr's
// gradient at (x, y, z) with step eps: H[i][j] = (∂_j f at +eps·e_i - at
// -eps·e_i) / (2 eps).
func Hessian(expr field.Expr, x, y, z, eps float64) mat3 {
	g := func(px, py, pz float64) r3.Vec {
		_, grad := field.Gradient(expr, px, py, pz)
		return grad
	}
	gxp, gxm := g(x+eps, y, z), g(x-eps, y, z)
	gyp, gym := g(x, y+eps, z), g(x, y-eps, z)
	gzp, gzm := g(x, y, z+eps), g(x, y, z-eps)

	var h mat3
	for j := 0; j < 3; j++ {
		h[0][j] = (vecAt(gxp, j) - vecAt(gxm, j)) / (2 * eps)
		h[1][j] = (vecAt(gyp, j) - vecAt(gym, j)) / (2 * eps)
		h[2][j] = (vecAt(gzp, j) - vecAt(gzm, j)) / (2 * eps)
	}
	return h
}

// solveGaussJordan solves a·x = b by Gauss-Jordan elimination with
// partial pivoting: if the largest available pivot magnitude in a
// column falls below pivotFloor, the system is declared singular.
func solveGaussJordan(a mat3, b [3]float64, pivotFloor float64) ([3]float64, bool) {
	for i := 0; i < 3; i++ {
		pivot := i
		for r := i + 1; r < 3; r++ {
			if math.Abs(a[r][i]) > math.Abs(a[pivot][i]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][i]) < pivotFloor {
			return [3]float64{}, false
		}
		if pivot != i {
			a[i], a[pivot] = a[pivot], a[i]
			b[i], b[pivot] = b[pivot], b[i]
		}
		d := a[i][i]
		for c := i; c < 3; c++ {
			a[i][c] /= d
		}
		b[i] /= d
		for r := 0; r < 3; r++ {
			if r == i {
				continue
			}
			f := a[r][i]
			for c := i; c < 3; c++ {
				a[r][c] -= f * a[i][c]
			}
			b[r] -= f * b[i]
		}
	}
	return b, true
}

// jacobiEigenvalues returns the three eigenvalues of the (assumed
// symmetric-in-practice) matrix a, computed by cyclic Jacobi rotation.
// Each sweep picks the off-diagonal entry of largest magnitude; the
// sweep stops early once that magnitude falls below floor. a is passed
// by value, so the rotations act on a copy and the caller's matrix is
// left unchanged.
func jacobiEigenvalues(a mat3, maxSweeps int, floor float64) [3]float64 {
	for sweep := 0; sweep < maxSweeps; sweep++ {
		p, q := 0, 1
		max := math.Abs(a[0][1])
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				if math.Abs(a[i][j]) > max {
					max = math.Abs(a[i][j])
					p, q = i, j
				}
			}
		}
		if max < floor {
			break
		}
		app, aqq, apq := a[p][p], a[q][q], a[p][q]
		phi := 0.5 * math.Atan2(2*apq, aqq-app)
		c, s := math.Cos(phi), math.Sin(phi)
		for r := 0; r < 3; r++ {
			arp, arq := a[r][p], a[r][q]
			a[r][p] = c*arp - s*arq
			a[r][q] = s*arp + c*arq
		}
		for col := 0; col < 3; col++ {
			apc, aqc := a[p][col], a[q][col]
			a[p][col] = c*apc - s*aqc
			a[q][col] = s*apc + c*aqc
		}
	}
	return [3]float64{a[0][0], a[1][1], a[2][2]}
}

// MorseIndex returns the count of strictly negative eigenvalues of h.
func MorseIndex(h mat3, s Settings) int {
	s = s.withDefaults()
	eigs := jacobiEigenvalues(h, s.MaxJacobiSweep, s.JacobiFloor)
	idx := 0
	for _, e := range eigs {
		if e < 0 {
			idx++
		}
	}
	return idx
}

// Refine runs damped Newton on the gradient of expr starting from
// (x0, y0, z0), classifying the resulting critical point's Morse index
// on convergence. It returns (Point{}, false) on non-convergence:
// iteration budget exhausted, singular Hessian, or a non-finite
// coordinate — never an error or a panic.
func Refine(expr field.Expr, x0, y0, z0 float64, settings Settings) (Point, bool) {
	s := settings.withDefaults()
	x, y, z := x0, y0, z0
	for iter := 0; iter < s.MaxNewtonIters; iter++ {
		f, g := field.Gradient(expr, x, y, z)
		gn := math.Sqrt(g.X*g.X + g.Y*g.Y + g.Z*g.Z)
		if gn < s.GradTol {
			h := Hessian(expr, x, y, z, s.HessianEps)
			return Point{X: x, Y: y, Z: z, F: f, Index: MorseIndex(h, s)}, true
		}
		h := Hessian(expr, x, y, z, s.HessianEps)
		delta, ok := solveGaussJordan(h, [3]float64{-g.X, -g.Y, -g.Z}, s.PivotFloor)
		if !ok {
			return Point{}, false
		}
		x += delta[0]
		y += delta[1]
		z += delta[2]
		if !isFinite3(x, y, z) {
			return Point{}, false
		}
	}
	return Point{}, false
}

func isFinite3(x, y, z float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x) &&
		!math.IsInf(y, 0) && !math.IsNaN(y) &&
		!math.IsInf(z, 0) && !math.IsNaN(z)
}
