package shader

import (
	"strings"
	"testing"

	"github.com/morsefield/kernel/internal/field"
)

func TestEmitWrapsInSDFFunction(t *testing.T) {
	got := Emit(field.Sphere(1))
	if !strings.HasPrefix(got, "float sdf(vec3 p) {\n  return ") {
		t.Fatalf("Emit output does not start with the expected function header: %q", got)
	}
	if !strings.HasSuffix(got, ";\n}") {
		t.Fatalf("Emit output does not end with the expected closing brace: %q", got)
	}
}

func TestEmitCoordinates(t *testing.T) {
	got := Emit(field.X{})
	if !strings.Contains(got, "p.x") {
		t.Fatalf("Emit(X) = %q, want reference to p.x", got)
	}
}

func TestEmitArithmeticOperators(t *testing.T) {
	cases := []struct {
		expr field.Expr
		want string
	}{
		{field.Add{field.X{}, field.Y{}}, "(p.x + p.y)"},
		{field.Sub{field.X{}, field.Y{}}, "(p.x - p.y)"},
		{field.Mul{field.X{}, field.Y{}}, "(p.x * p.y)"},
		{field.Div{field.X{}, field.Y{}}, "(p.x / p.y)"},
		{field.Min{field.X{}, field.Y{}}, "min(p.x, p.y)"},
		{field.Max{field.X{}, field.Y{}}, "max(p.x, p.y)"},
	}
	for _, c := range cases {
		got := emit(c.expr, "p.x", "p.y", "p.z")
		if got != c.want {
			t.Errorf("emit(%T) = %q, want %q", c.expr, got, c.want)
		}
	}
}

func TestEmitLiteralPrecision(t *testing.T) {
	got := lit(1.0 / 3.0)
	if len(strings.TrimPrefix(got, "0.")) < 12 {
		t.Fatalf("lit(1/3) = %q, want at least 12 significant digits", got)
	}
}

func TestEmitSmoothContainsMixAndClamp(t *testing.T) {
	got := Emit(field.SmoothUnion(field.Sphere(1), field.Translate{field.Sphere(1), 1, 0, 0}, 0.3))
	if !strings.Contains(got, "mix(") || !strings.Contains(got, "clamp(") {
		t.Fatalf("smooth union emission missing mix/clamp: %q", got)
	}
}

func TestEmitTranslateShiftsCoordinates(t *testing.T) {
	got := Emit(field.Translate{field.X{}, 2, 0, 0})
	if !strings.Contains(got, "p.x - 2") {
		t.Fatalf("Emit(Translate) = %q, want a p.x - 2 substitution", got)
	}
}

func TestEmitDoesNotPanicOnEveryNodeKind(t *testing.T) {
	exprs := []field.Expr{
		field.Const{1}, field.X{}, field.Y{}, field.Z{},
		field.Add{field.X{}, field.Y{}}, field.Sub{field.X{}, field.Y{}},
		field.Mul{field.X{}, field.Y{}}, field.Div{field.X{}, field.Y{}},
		field.Neg{field.X{}}, field.Sin{field.X{}}, field.Cos{field.X{}}, field.Exp{field.X{}},
		field.Min{field.X{}, field.Y{}}, field.Max{field.X{}, field.Y{}},
		field.SMin{field.X{}, field.Y{}, 0.5}, field.SMax{field.X{}, field.Y{}, 0.5},
		field.Translate{field.X{}, 1, 2, 3},
		field.RotateZ{field.X{}, 45},
	}
	for _, e := range exprs {
		_ = Emit(e)
	}
}
