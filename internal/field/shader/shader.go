// Package shader emits implicit-field expressions as shading-language
// source. The emitter is a pure recursive string builder: it never
// introduces helper variables or common-subexpression elimination, so
// its output is a pure function of the input tree.
package shader

import (
	"fmt"
	"math"
	"strings"

	"github.com/morsefield/kernel/internal/field"
)

// Emit returns a single GLSL-dialect function
//
//	float sdf(vec3 p) { return <expr>; }
//
// for expr. Literal constants are formatted with at least twelve
// significant digits.
func Emit(expr field.Expr) string {
	var b strings.Builder
	b.WriteString("float sdf(vec3 p) {\n  return ")
	b.WriteString(emit(expr, "p.x", "p.y", "p.z"))
	b.WriteString(";\n}")
	return b.String()
}

func lit(v float64) string {
	return fmt.Sprintf("%.12g", v)
}

func emit(expr field.Expr, x, y, z string) string {
	switch e := expr.(type) {
	case field.Const:
		return lit(e.Value)
	case field.X:
		return x
	case field.Y:
		return y
	case field.Z:
		return z
	case field.Add:
		return fmt.Sprintf("(%s + %s)", emit(e.L, x, y, z), emit(e.R, x, y, z))
	case field.Sub:
		return fmt.Sprintf("(%s - %s)", emit(e.L, x, y, z), emit(e.R, x, y, z))
	case field.Mul:
		return fmt.Sprintf("(%s * %s)", emit(e.L, x, y, z), emit(e.R, x, y, z))
	case field.Div:
		return fmt.Sprintf("(%s / %s)", emit(e.L, x, y, z), emit(e.R, x, y, z))
	case field.Neg:
		return fmt.Sprintf("(-%s)", emit(e.A, x, y, z))
	case field.Sin:
		return fmt.Sprintf("sin(%s)", emit(e.A, x, y, z))
	case field.Cos:
		return fmt.Sprintf("cos(%s)", emit(e.A, x, y, z))
	case field.Exp:
		return fmt.Sprintf("exp(%s)", emit(e.A, x, y, z))
	case field.Min:
		return fmt.Sprintf("min(%s, %s)", emit(e.L, x, y, z), emit(e.R, x, y, z))
	case field.Max:
		return fmt.Sprintf("max(%s, %s)", emit(e.L, x, y, z), emit(e.R, x, y, z))
	case field.SMin:
		return emitSmooth(e.A, e.B, e.K, x, y, z, "-")
	case field.SMax:
		return emitSmooth(e.A, e.B, e.K, x, y, z, "+")
	case field.Translate:
		nx := fmt.Sprintf("(%s - %s)", x, lit(e.Dx))
		ny := fmt.Sprintf("(%s - %s)", y, lit(e.Dy))
		nz := fmt.Sprintf("(%s - %s)", z, lit(e.Dz))
		return emit(e.A, nx, ny, nz)
	case field.RotateZ:
		a := -e.Deg * math.Pi / 180
		c, s := lit(math.Cos(a)), lit(math.Sin(a))
		nx := fmt.Sprintf("(%s*%s - %s*%s)", c, x, s, y)
		ny := fmt.Sprintf("(%s*%s + %s*%s)", s, x, c, y)
		return emit(e.A, nx, ny, z)
	default:
		panic("shader: unsupported expression node")
	}
}

// emitSmooth builds the closed-form blend
//
//	mix(b, a, h) ± k*h*(1-h)
//
// where h is the clamped blend fraction, using clamp and mix the way
// the shading language itself provides them. sign is "-" for SMin and
// "+" for SMax, matching the two CSG blend formulas.
func emitSmooth(a, b field.Expr, k float64, x, y, z, sign string) string {
	as, bs := emit(a, x, y, z), emit(b, x, y, z)
	kl := lit(k)
	hSign := "+"
	if sign == "+" {
		hSign = "-"
	}
	h := fmt.Sprintf("clamp(0.5 %s 0.5*((%s)-(%s))/%s, 0.0, 1.0)", hSign, bs, as, kl)
	return fmt.Sprintf("(mix(%s, %s, %s) %s %s*%s*(1.0-%s))", bs, as, h, sign, kl, h, h)
}
