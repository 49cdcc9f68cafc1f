package topology

import (
	"fmt"

	"github.com/morsefield/kernel/internal/field"
)

// Encode walks expr depth-first, post-order, minting a fresh id ("n0",
// "n1", ...) for every visited subexpression. The root id is the id of
// the last node minted (the tree's top). The encoder never deduplicates
// shared structure — the in-memory form is a tree — so the resulting
// program is always tree-shaped even though Program itself allows
// sharing by id.
func Encode(expr field.Expr) Program {
	p := newProgram()
	counter := 0
	p.Root = walk(expr, &p.Nodes, &counter)
	return p
}

func mintID(counter *int) string {
	id := fmt.Sprintf("n%d", *counter)
	*counter++
	return id
}

func walk(expr field.Expr, nodes *[]Node, counter *int) string {
	switch e := expr.(type) {
	case field.Const:
		return leaf(nodes, counter, "const", map[string]float64{"value": e.Value})
	case field.X:
		return leaf(nodes, counter, "x", nil)
	case field.Y:
		return leaf(nodes, counter, "y", nil)
	case field.Z:
		return leaf(nodes, counter, "z", nil)
	case field.Add:
		return binary(e.L, e.R, nodes, counter, "add", nil)
	case field.Sub:
		return binary(e.L, e.R, nodes, counter, "sub", nil)
	case field.Mul:
		return binary(e.L, e.R, nodes, counter, "mul", nil)
	case field.Div:
		return binary(e.L, e.R, nodes, counter, "div", nil)
	case field.Min:
		return binary(e.L, e.R, nodes, counter, "min", nil)
	case field.Max:
		return binary(e.L, e.R, nodes, counter, "max", nil)
	case field.Neg:
		return unary(e.A, nodes, counter, "neg", nil)
	case field.Sin:
		return unary(e.A, nodes, counter, "sin", nil)
	case field.Cos:
		return unary(e.A, nodes, counter, "cos", nil)
	case field.Exp:
		return unary(e.A, nodes, counter, "exp", nil)
	case field.SMin:
		return binary(e.A, e.B, nodes, counter, "smin", map[string]float64{"k": e.K})
	case field.SMax:
		return binary(e.A, e.B, nodes, counter, "smax", map[string]float64{"k": e.K})
	case field.Translate:
		return unary(e.A, nodes, counter, "translate", map[string]float64{
			"dx": e.Dx, "dy": e.Dy, "dz": e.Dz,
		})
	case field.RotateZ:
		return unary(e.A, nodes, counter, "rotate_z", map[string]float64{"deg": e.Deg})
	default:
		panic("topology: unsupported expression node in Encode")
	}
}

func leaf(nodes *[]Node, counter *int, op string, params map[string]float64) string {
	id := mintID(counter)
	*nodes = append(*nodes, Node{ID: id, Op: op, Params: params})
	return id
}

func unary(a field.Expr, nodes *[]Node, counter *int, op string, params map[string]float64) string {
	ai := walk(a, nodes, counter)
	id := mintID(counter)
	*nodes = append(*nodes, Node{ID: id, Op: op, Inputs: []string{ai}, Params: params})
	return id
}

func binary(a, b field.Expr, nodes *[]Node, counter *int, op string, params map[string]float64) string {
	ai := walk(a, nodes, counter)
	bi := walk(b, nodes, counter)
	id := mintID(counter)
	*nodes = append(*nodes, Node{ID: id, Op: op, Inputs: []string{ai, bi}, Params: params})
	return id
}
