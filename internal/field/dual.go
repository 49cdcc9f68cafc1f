package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Dual is the forward-mode automatic-differentiation carrier: a value
// paired with its partial derivatives with respect to (x, y, z). It is
// transient, constructed fresh for every subexpression during a single
// gradient evaluation. The shape mirrors gonum's num/dual.Number (value
// + derivative magnitude), widened from a single derivative component to
// the 3-wide gradient this kernel needs; see the dual* helpers and
// EvalDual below for the chain rules, which are dual.Mul/dual.Div/dual.Sin/dual.Cos/dual.Exp
// applied component-wise across the three partials.
type Dual struct {
	V float64
	G r3.Vec
}

func dualConst(v float64) Dual { return Dual{V: v} }

func dualAdd(a, b Dual) Dual {
	return Dual{V: a.V + b.V, G: r3.Add(a.G, b.G)}
}

func dualSub(a, b Dual) Dual {
	return Dual{V: a.V - b.V, G: r3.Sub(a.G, b.G)}
}

func dualMul(a, b Dual) Dual {
	return Dual{
		V: a.V * b.V,
		G: r3.Add(r3.Scale(b.V, a.G), r3.Scale(a.V, b.G)),
	}
}

func dualDiv(a, b Dual) Dual {
	return Dual{
		V: a.V / b.V,
		G: r3.Scale(1/(b.V*b.V), r3.Sub(r3.Scale(b.V, a.G), r3.Scale(a.V, b.G))),
	}
}

func dualNeg(a Dual) Dual {
	return Dual{V: -a.V, G: r3.Scale(-1, a.G)}
}

func dualSin(a Dual) Dual {
	return Dual{V: math.Sin(a.V), G: r3.Scale(math.Cos(a.V), a.G)}
}

func dualCos(a Dual) Dual {
	return Dual{V: math.Cos(a.V), G: r3.Scale(-math.Sin(a.V), a.G)}
}

func dualExp(a Dual) Dual {
	e := math.Exp(a.V)
	return Dual{V: e, G: r3.Scale(e, a.G)}
}

// lerpGrad linearly interpolates two child gradients by fraction h, the
// rule SMin/SMax follow: h is treated as locally constant with respect
// to differentiation even though it comes from a clamp.
func lerpGrad(ga, gb r3.Vec, h float64) r3.Vec {
	return r3.Add(r3.Scale(1-h, gb), r3.Scale(h, ga))
}

// EvalDual evaluates expr at (x, y, z) carrying value and gradient
// together. Min/Max pass the winning child's dual through
// unmodified: the gradient is undefined at the seam, and the seam is
// measure zero, so there is no linear blending there (unlike SMin/SMax,
// which always linearly interpolate child gradients by the clamp
// fraction h, treating h as locally constant — the clamp's distributional
// derivative at the endpoints is intentionally not modeled).
func EvalDual(expr Expr, x, y, z float64) Dual {
	switch e := expr.(type) {
	case Const:
		return dualConst(e.Value)
	case X:
		return Dual{V: x, G: r3.Vec{1, 0, 0}}
	case Y:
		return Dual{V: y, G: r3.Vec{0, 1, 0}}
	case Z:
		return Dual{V: z, G: r3.Vec{0, 0, 1}}
	case Add:
		return dualAdd(EvalDual(e.L, x, y, z), EvalDual(e.R, x, y, z))
	case Sub:
		return dualSub(EvalDual(e.L, x, y, z), EvalDual(e.R, x, y, z))
	case Mul:
		return dualMul(EvalDual(e.L, x, y, z), EvalDual(e.R, x, y, z))
	case Div:
		return dualDiv(EvalDual(e.L, x, y, z), EvalDual(e.R, x, y, z))
	case Neg:
		return dualNeg(EvalDual(e.A, x, y, z))
	case Sin:
		return dualSin(EvalDual(e.A, x, y, z))
	case Cos:
		return dualCos(EvalDual(e.A, x, y, z))
	case Exp:
		return dualExp(EvalDual(e.A, x, y, z))
	case Min:
		da, db := EvalDual(e.L, x, y, z), EvalDual(e.R, x, y, z)
		if da.V < db.V {
			return da
		}
		return db
	case Max:
		da, db := EvalDual(e.L, x, y, z), EvalDual(e.R, x, y, z)
		if da.V > db.V {
			return da
		}
		return db
	case SMin:
		da, db := EvalDual(e.A, x, y, z), EvalDual(e.B, x, y, z)
		h := smoothMinFraction(da.V, db.V, e.K)
		return Dual{V: smoothBlend(da.V, db.V, e.K, h, -1), G: lerpGrad(da.G, db.G, h)}
	case SMax:
		da, db := EvalDual(e.A, x, y, z), EvalDual(e.B, x, y, z)
		h := smoothMaxFraction(da.V, db.V, e.K)
		return Dual{V: smoothBlend(da.V, db.V, e.K, h, +1), G: lerpGrad(da.G, db.G, h)}
	case Translate:
		return EvalDual(e.A, x-e.Dx, y-e.Dy, z-e.Dz)
	case RotateZ:
		rx, ry := rotateZInto(x, y, e.Deg)
		d := EvalDual(e.A, rx, ry, z)
		a := -e.Deg * math.Pi / 180
		c, s := math.Cos(a), math.Sin(a)
		gx := c*d.G.X + s*d.G.Y
		gy := -s*d.G.X + c*d.G.Y
		return Dual{V: d.V, G: r3.Vec{X: gx, Y: gy, Z: d.G.Z}}
	default:
		panic("field: unsupported expression node in EvalDual")
	}
}

// Gradient returns the value and 3-vector gradient of expr at (x, y, z).
func Gradient(expr Expr, x, y, z float64) (float64, r3.Vec) {
	d := EvalDual(expr, x, y, z)
	return d.V, d.G
}
