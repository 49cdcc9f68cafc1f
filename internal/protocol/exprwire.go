package protocol

import (
	"fmt"

	"github.com/morsefield/kernel/internal/field"
)

// ExprWire is the JSON-serialisable mirror of field.Expr: a tagged node
// with an operator string, a fixed set of optional numeric parameters,
// and a list of children. Op names match the topology codec's operator
// vocabulary so the same string constants describe both wire shapes.
type ExprWire struct {
	Op       string      `json:"op"`
	Value    float64     `json:"value,omitempty"`
	K        float64     `json:"k,omitempty"`
	Dx       float64     `json:"dx,omitempty"`
	Dy       float64     `json:"dy,omitempty"`
	Dz       float64     `json:"dz,omitempty"`
	Deg      float64     `json:"deg,omitempty"`
	Children []*ExprWire `json:"children,omitempty"`
}

// ToExpr converts a wire expression into a field.Expr, rejecting unknown
// operators and nodes with fewer children than their operator takes.
// Children beyond an operator's arity are ignored, not rejected.
func (w *ExprWire) ToExpr() (field.Expr, error) {
	if w == nil {
		return nil, fmt.Errorf("protocol: nil expression node")
	}
	child := func(i int) (field.Expr, error) {
		if i >= len(w.Children) {
			return nil, fmt.Errorf("protocol: op %q missing child %d", w.Op, i)
		}
		return w.Children[i].ToExpr()
	}
	switch w.Op {
	case "const":
		return field.Const{Value: w.Value}, nil
	case "x":
		return field.X{}, nil
	case "y":
		return field.Y{}, nil
	case "z":
		return field.Z{}, nil
	case "add", "sub", "mul", "div", "min", "max":
		a, err := child(0)
		if err != nil {
			return nil, err
		}
		b, err := child(1)
		if err != nil {
			return nil, err
		}
		return binaryWireExpr(w.Op, a, b), nil
	case "neg", "sin", "cos", "exp":
		a, err := child(0)
		if err != nil {
			return nil, err
		}
		return unaryWireExpr(w.Op, a), nil
	case "smin", "smax":
		a, err := child(0)
		if err != nil {
			return nil, err
		}
		b, err := child(1)
		if err != nil {
			return nil, err
		}
		if w.Op == "smin" {
			return field.SMin{A: a, B: b, K: w.K}, nil
		}
		return field.SMax{A: a, B: b, K: w.K}, nil
	case "translate":
		a, err := child(0)
		if err != nil {
			return nil, err
		}
		return field.Translate{A: a, Dx: w.Dx, Dy: w.Dy, Dz: w.Dz}, nil
	case "rotate_z":
		a, err := child(0)
		if err != nil {
			return nil, err
		}
		return field.RotateZ{A: a, Deg: w.Deg}, nil
	default:
		return nil, fmt.Errorf("protocol: unsupported expression op %q", w.Op)
	}
}

func binaryWireExpr(op string, a, b field.Expr) field.Expr {
	switch op {
	case "add":
		return field.Add{L: a, R: b}
	case "sub":
		return field.Sub{L: a, R: b}
	case "mul":
		return field.Mul{L: a, R: b}
	case "div":
		return field.Div{L: a, R: b}
	case "min":
		return field.Min{L: a, R: b}
	default:
		return field.Max{L: a, R: b}
	}
}

func unaryWireExpr(op string, a field.Expr) field.Expr {
	switch op {
	case "neg":
		return field.Neg{A: a}
	case "sin":
		return field.Sin{A: a}
	case "cos":
		return field.Cos{A: a}
	default:
		return field.Exp{A: a}
	}
}

// ExprToWire walks a field.Expr and produces its wire mirror. It is the
// inverse of ToExpr and, like the topology encoder, never deduplicates
// shared structure.
func ExprToWire(expr field.Expr) *ExprWire {
	switch e := expr.(type) {
	case field.Const:
		return &ExprWire{Op: "const", Value: e.Value}
	case field.X:
		return &ExprWire{Op: "x"}
	case field.Y:
		return &ExprWire{Op: "y"}
	case field.Z:
		return &ExprWire{Op: "z"}
	case field.Add:
		return binary("add", e.L, e.R)
	case field.Sub:
		return binary("sub", e.L, e.R)
	case field.Mul:
		return binary("mul", e.L, e.R)
	case field.Div:
		return binary("div", e.L, e.R)
	case field.Min:
		return binary("min", e.L, e.R)
	case field.Max:
		return binary("max", e.L, e.R)
	case field.Neg:
		return unary("neg", e.A)
	case field.Sin:
		return unary("sin", e.A)
	case field.Cos:
		return unary("cos", e.A)
	case field.Exp:
		return unary("exp", e.A)
	case field.SMin:
		w := binary("smin", e.A, e.B)
		w.K = e.K
		return w
	case field.SMax:
		w := binary("smax", e.A, e.B)
		w.K = e.K
		return w
	case field.Translate:
		w := unary("translate", e.A)
		w.Dx, w.Dy, w.Dz = e.Dx, e.Dy, e.Dz
		return w
	case field.RotateZ:
		w := unary("rotate_z", e.A)
		w.Deg = e.Deg
		return w
	default:
		panic("protocol: unsupported expression node in ExprToWire")
	}
}

func unary(op string, a field.Expr) *ExprWire {
	return &ExprWire{Op: op, Children: []*ExprWire{ExprToWire(a)}}
}

func binary(op string, a, b field.Expr) *ExprWire {
	return &ExprWire{Op: op, Children: []*ExprWire{ExprToWire(a), ExprToWire(b)}}
}
