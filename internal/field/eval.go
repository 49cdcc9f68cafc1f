package field

import "math"

// Eval computes f(x,y,z) for expr by pure recursive descent. Division
// does not check the denominator; IEEE semantics (±Inf, NaN) propagate
// to the caller. Min and Max use total floating-point ordering; their
// behaviour at NaN is unspecified, matching math.Min/math.Max.
func Eval(expr Expr, x, y, z float64) float64 {
	switch e := expr.(type) {
	case Const:
		return e.Value
	case X:
		return x
	case Y:
		return y
	case Z:
		return z
	case Add:
		return Eval(e.L, x, y, z) + Eval(e.R, x, y, z)
	case Sub:
		return Eval(e.L, x, y, z) - Eval(e.R, x, y, z)
	case Mul:
		return Eval(e.L, x, y, z) * Eval(e.R, x, y, z)
	case Div:
		return Eval(e.L, x, y, z) / Eval(e.R, x, y, z)
	case Neg:
		return -Eval(e.A, x, y, z)
	case Sin:
		return math.Sin(Eval(e.A, x, y, z))
	case Cos:
		return math.Cos(Eval(e.A, x, y, z))
	case Exp:
		return math.Exp(Eval(e.A, x, y, z))
	case Min:
		return math.Min(Eval(e.L, x, y, z), Eval(e.R, x, y, z))
	case Max:
		return math.Max(Eval(e.L, x, y, z), Eval(e.R, x, y, z))
	case SMin:
		va, vb := Eval(e.A, x, y, z), Eval(e.B, x, y, z)
		h := smoothMinFraction(va, vb, e.K)
		return smoothBlend(va, vb, e.K, h, -1)
	case SMax:
		va, vb := Eval(e.A, x, y, z), Eval(e.B, x, y, z)
		h := smoothMaxFraction(va, vb, e.K)
		return smoothBlend(va, vb, e.K, h, +1)
	case Translate:
		return Eval(e.A, x-e.Dx, y-e.Dy, z-e.Dz)
	case RotateZ:
		rx, ry := rotateZInto(x, y, e.Deg)
		return Eval(e.A, rx, ry, z)
	default:
		panic("field: unsupported expression node in Eval")
	}
}

// rotateZInto rotates (x, y) by -deg degrees about the z axis, applying
// the same sign convention as the shader emitter (shader.go) and the
// topology decoder's rotate_z node: the rotation is inverted so that
// rotating the *expression* by deg appears, under evaluation, as the
// input point rotated by -deg.
func rotateZInto(x, y, deg float64) (float64, float64) {
	a := -deg * math.Pi / 180
	c, s := math.Cos(a), math.Sin(a)
	return c*x - s*y, s*x + c*y
}
