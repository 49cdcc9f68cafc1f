package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Interval is a closed real interval [Lo, Hi], with Lo <= Hi or ±Inf
// permitted at either end.
type Interval struct {
	Lo, Hi float64
}

func ivConst(v float64) Interval { return Interval{v, v} }

func ivAdd(a, b Interval) Interval { return Interval{a.Lo + b.Lo, a.Hi + b.Hi} }
func ivSub(a, b Interval) Interval { return Interval{a.Lo - b.Hi, a.Hi - b.Lo} }

func ivMul(a, b Interval) Interval {
	p := [4]float64{a.Lo * b.Lo, a.Lo * b.Hi, a.Hi * b.Lo, a.Hi * b.Hi}
	return corners(p)
}

func ivDiv(a, b Interval) Interval {
	if b.Lo <= 0 && b.Hi >= 0 {
		return Interval{math.Inf(-1), math.Inf(1)}
	}
	p := [4]float64{a.Lo / b.Lo, a.Lo / b.Hi, a.Hi / b.Lo, a.Hi / b.Hi}
	return corners(p)
}

func corners(p [4]float64) Interval {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range p {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return Interval{lo, hi}
}

func ivNeg(a Interval) Interval { return Interval{-a.Hi, -a.Lo} }

func ivExp(a Interval) Interval { return Interval{math.Exp(a.Lo), math.Exp(a.Hi)} }

// trig enclosures are always the conservative [-1, 1]; no range
// reduction is performed. This is intentional coarseness preserved
// across implementations, not a missing feature.
var ivTrig = Interval{-1, 1}

func ivMin(a, b Interval) Interval { return Interval{math.Min(a.Lo, b.Lo), math.Min(a.Hi, b.Hi)} }
func ivMax(a, b Interval) Interval { return Interval{math.Max(a.Lo, b.Lo), math.Max(a.Hi, b.Hi)} }

// EvalInterval returns a conservative enclosure of expr over the box
// (x, y, z). Sharp and smooth CSG variants are bounded identically here
// (endpoint-wise min/max of the child enclosures): the blend radius does
// not narrow the bound. Translate recurses without shifting the box —
// callers who want a tight bound must shift the input box themselves;
// this coarseness is part of the contract and must not be "fixed"
// unilaterally.
func EvalInterval(expr Expr, x, y, z Interval) Interval {
	switch e := expr.(type) {
	case Const:
		return ivConst(e.Value)
	case X:
		return x
	case Y:
		return y
	case Z:
		return z
	case Add:
		return ivAdd(EvalInterval(e.L, x, y, z), EvalInterval(e.R, x, y, z))
	case Sub:
		return ivSub(EvalInterval(e.L, x, y, z), EvalInterval(e.R, x, y, z))
	case Mul:
		return ivMul(EvalInterval(e.L, x, y, z), EvalInterval(e.R, x, y, z))
	case Div:
		return ivDiv(EvalInterval(e.L, x, y, z), EvalInterval(e.R, x, y, z))
	case Neg:
		return ivNeg(EvalInterval(e.A, x, y, z))
	case Sin, Cos:
		return ivTrig
	case Exp:
		return ivExp(EvalInterval(e.A, x, y, z))
	case Min:
		return ivMin(EvalInterval(e.L, x, y, z), EvalInterval(e.R, x, y, z))
	case Max:
		return ivMax(EvalInterval(e.L, x, y, z), EvalInterval(e.R, x, y, z))
	case SMin:
		return ivMin(EvalInterval(e.A, x, y, z), EvalInterval(e.B, x, y, z))
	case SMax:
		return ivMax(EvalInterval(e.A, x, y, z), EvalInterval(e.B, x, y, z))
	case Translate:
		return EvalInterval(e.A, x, y, z)
	case RotateZ:
		return EvalInterval(e.A, x, y, z)
	default:
		panic("field: unsupported expression node in EvalInterval")
	}
}

// EvalIntervalBox is a convenience wrapper taking the box as a gonum
// spatial/r3.Box, decomposed into per-axis intervals.
func EvalIntervalBox(expr Expr, box r3.Box) Interval {
	x := Interval{box.Min.X, box.Max.X}
	y := Interval{box.Min.Y, box.Max.Y}
	z := Interval{box.Min.Z, box.Max.Z}
	return EvalInterval(expr, x, y, z)
}
