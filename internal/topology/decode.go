package topology

import (
	"github.com/morsefield/kernel/internal/field"
)

// Decode materialises Program back into an expression tree. Nodes are
// visited in listed order, each built into the id-keyed table built as
// decoding proceeds; since every input lookup fails with a
// DecodeError if the id hasn't been built yet, a node listed out of
// topological order is rejected the same way a genuinely missing input
// would be.
//
// Beyond the operators Encode produces, Decode additionally accepts
// operator tags it never emits itself: the high-level primitives
// sphere/cylinder/box/torus, and the boolean aliases
// union/intersect/difference, which expand to their algebraic min/max
// forms.
func Decode(p Program) (field.Expr, error) {
	built := make(map[string]field.Expr, len(p.Nodes))
	for _, n := range p.Nodes {
		e, err := decodeNode(n, built)
		if err != nil {
			return nil, err
		}
		built[n.ID] = e
	}
	e, ok := built[p.Root]
	if !ok {
		return nil, errMissingRoot(p.Root)
	}
	return e, nil
}

func param(n Node, key string) (float64, bool) {
	v, ok := n.Params[key]
	return v, ok
}

func requireParam(n Node, key string) (float64, error) {
	v, ok := param(n, key)
	if !ok {
		return 0, errParam(n.ID, n.Op, key)
	}
	return v, nil
}

func input(n Node, built map[string]field.Expr, i int) (field.Expr, error) {
	id := n.Inputs[i]
	e, ok := built[id]
	if !ok {
		return nil, errMissingInput(n.ID, n.Op, id)
	}
	return e, nil
}

func requireArity(n Node, want int) error {
	if len(n.Inputs) != want {
		return errArity(n.ID, n.Op, want, len(n.Inputs))
	}
	return nil
}

func decodeNode(n Node, built map[string]field.Expr) (field.Expr, error) {
	switch n.Op {
	case "const":
		v, err := requireParam(n, "value")
		if err != nil {
			return nil, err
		}
		return field.Const{Value: v}, nil
	case "x":
		return field.X{}, nil
	case "y":
		return field.Y{}, nil
	case "z":
		return field.Z{}, nil
	case "add", "sub", "mul", "div", "min", "max", "union", "intersect":
		if err := requireArity(n, 2); err != nil {
			return nil, err
		}
		a, err := input(n, built, 0)
		if err != nil {
			return nil, err
		}
		b, err := input(n, built, 1)
		if err != nil {
			return nil, err
		}
		return binaryExpr(n.Op, a, b), nil
	case "difference":
		if err := requireArity(n, 2); err != nil {
			return nil, err
		}
		a, err := input(n, built, 0)
		if err != nil {
			return nil, err
		}
		b, err := input(n, built, 1)
		if err != nil {
			return nil, err
		}
		return field.Difference(a, b), nil
	case "neg", "sin", "cos", "exp":
		if err := requireArity(n, 1); err != nil {
			return nil, err
		}
		a, err := input(n, built, 0)
		if err != nil {
			return nil, err
		}
		return unaryExpr(n.Op, a), nil
	case "smin", "smax":
		if err := requireArity(n, 2); err != nil {
			return nil, err
		}
		a, err := input(n, built, 0)
		if err != nil {
			return nil, err
		}
		b, err := input(n, built, 1)
		if err != nil {
			return nil, err
		}
		k, err := requireParam(n, "k")
		if err != nil {
			return nil, err
		}
		if n.Op == "smin" {
			return field.SMin{A: a, B: b, K: k}, nil
		}
		return field.SMax{A: a, B: b, K: k}, nil
	case "translate":
		if err := requireArity(n, 1); err != nil {
			return nil, err
		}
		a, err := input(n, built, 0)
		if err != nil {
			return nil, err
		}
		dx, err := requireParam(n, "dx")
		if err != nil {
			return nil, err
		}
		dy, err := requireParam(n, "dy")
		if err != nil {
			return nil, err
		}
		dz, err := requireParam(n, "dz")
		if err != nil {
			return nil, err
		}
		return field.Translate{A: a, Dx: dx, Dy: dy, Dz: dz}, nil
	case "rotate_z":
		if err := requireArity(n, 1); err != nil {
			return nil, err
		}
		a, err := input(n, built, 0)
		if err != nil {
			return nil, err
		}
		deg, err := requireParam(n, "deg")
		if err != nil {
			return nil, err
		}
		return field.RotateZ{A: a, Deg: deg}, nil
	case "sphere":
		r, err := requireParam(n, "r")
		if err != nil {
			return nil, err
		}
		return field.Sphere(r), nil
	case "cylinder":
		r, err := requireParam(n, "r")
		if err != nil {
			return nil, err
		}
		h, err := requireParam(n, "h")
		if err != nil {
			return nil, err
		}
		return field.Cylinder(r, h), nil
	case "box":
		sx, err := requireParam(n, "sx")
		if err != nil {
			return nil, err
		}
		sy, err := requireParam(n, "sy")
		if err != nil {
			return nil, err
		}
		sz, err := requireParam(n, "sz")
		if err != nil {
			return nil, err
		}
		return field.Box(sx, sy, sz), nil
	case "torus":
		majorR, err := requireParam(n, "major_r")
		if err != nil {
			return nil, err
		}
		minorR, err := requireParam(n, "minor_r")
		if err != nil {
			return nil, err
		}
		return field.Torus(majorR, minorR), nil
	default:
		return nil, errUnsupportedOp(n.ID, n.Op)
	}
}

func binaryExpr(op string, a, b field.Expr) field.Expr {
	switch op {
	case "add":
		return field.Add{L: a, R: b}
	case "sub":
		return field.Sub{L: a, R: b}
	case "mul":
		return field.Mul{L: a, R: b}
	case "div":
		return field.Div{L: a, R: b}
	case "min", "union":
		return field.Min{L: a, R: b}
	case "max", "intersect":
		return field.Max{L: a, R: b}
	default:
		panic("topology: unreachable binary op " + op)
	}
}

func unaryExpr(op string, a field.Expr) field.Expr {
	switch op {
	case "neg":
		return field.Neg{A: a}
	case "sin":
		return field.Sin{A: a}
	case "cos":
		return field.Cos{A: a}
	case "exp":
		return field.Exp{A: a}
	default:
		panic("topology: unreachable unary op " + op)
	}
}
