// Package field implements the implicit-geometry expression algebra and
// the interpreters that evaluate it: pointwise value, forward-mode
// gradient, and interval-bound enclosure. The algebra is a closed set of
// node kinds; every interpreter is a pure function of (expression, point)
// with no shared state, so callers may run them concurrently over the
// same tree.
package field

// Expr is a node in the implicit-field expression tree. Children are
// owned exclusively by their parent: the in-memory form is a tree, never
// a DAG. Sharing is only expressible through the topology program
// (internal/topology). Interpreters dispatch over the concrete node
// types by type switch rather than through a method on Expr.
type Expr interface{}

// Const is a literal scalar leaf.
type Const struct{ Value float64 }

// X, Y, Z are the coordinate leaves.
type (
	X struct{}
	Y struct{}
	Z struct{}
)

// Add, Sub, Mul, Div are the binary arithmetic nodes.
type (
	Add struct{ L, R Expr }
	Sub struct{ L, R Expr }
	Mul struct{ L, R Expr }
	Div struct{ L, R Expr }
)

// Neg, Sin, Cos, Exp are the unary nodes.
type (
	Neg struct{ A Expr }
	Sin struct{ A Expr }
	Cos struct{ A Expr }
	Exp struct{ A Expr }
)

// Min and Max are the sharp CSG operators: union and intersection.
// Subtraction has no dedicated node; it is built as Max(a, Neg(b)).
type (
	Min struct{ L, R Expr }
	Max struct{ L, R Expr }
)

// SMin and SMax are the polynomial-blend smooth CSG operators with blend
// radius K. K must be strictly positive; the blend fraction is computed
// by smoothMinFraction/smoothMaxFraction and the blend by smoothBlend
// (csg.go), shared by the value and gradient interpreters. The interval
// interpreter bounds them like Min/Max.
type (
	SMin struct {
		A, B Expr
		K    float64
	}
	SMax struct {
		A, B Expr
		K    float64
	}
)

// Translate substitutes (x-Dx, y-Dy, z-Dz) into A.
type Translate struct {
	A          Expr
	Dx, Dy, Dz float64
}

// RotateZ substitutes a rotation of the (x,y) plane by Deg degrees into
// A. It extends the original closed algebra but is accepted uniformly
// by every interpreter and the topology codec, favoring uniform support
// over rejection.
type RotateZ struct {
	A   Expr
	Deg float64
}

// C is shorthand for a constant leaf, mirroring the short constructor
// names (add, sub, mul, ...) the algebra exposes for every operator.
func C(v float64) Expr { return Const{v} }

func AddOf(l, r Expr) Expr { return Add{l, r} }
func SubOf(l, r Expr) Expr { return Sub{l, r} }
func MulOf(l, r Expr) Expr { return Mul{l, r} }
func DivOf(l, r Expr) Expr { return Div{l, r} }
func NegOf(a Expr) Expr    { return Neg{a} }
func SinOf(a Expr) Expr    { return Sin{a} }
func CosOf(a Expr) Expr    { return Cos{a} }
func ExpOf(a Expr) Expr    { return Exp{a} }

// Union is the sharp CSG union: Min(a, b).
func Union(a, b Expr) Expr { return Min{a, b} }

// Intersect is the sharp CSG intersection: Max(a, b).
func Intersect(a, b Expr) Expr { return Max{a, b} }

// Difference is Max(a, Neg(b)): the points in a that are not in b.
func Difference(a, b Expr) Expr { return Max{a, Neg{b}} }

// SmoothUnion and SmoothIntersect build the polynomial-blend CSG
// operators with blend radius k. k must be > 0.
func SmoothUnion(a, b Expr, k float64) Expr     { return SMin{a, b, k} }
func SmoothIntersect(a, b Expr, k float64) Expr { return SMax{a, b, k} }

// TranslateOf shifts a by (dx, dy, dz).
func TranslateOf(a Expr, dx, dy, dz float64) Expr { return Translate{a, dx, dy, dz} }

// RotateZOf rotates a about the z axis by deg degrees.
func RotateZOf(a Expr, deg float64) Expr { return RotateZ{a, deg} }
