package field

// The primitive constructors return sign-predicate expressions, not
// signed-distance functions: f<0 strictly inside, f>0 strictly outside,
// f=0 on the boundary. None of them are metrically accurate away from
// the surface.

func sq(e Expr) Expr { return Mul{e, e} }

// Sphere returns x²+y²+z²-r².
func Sphere(r float64) Expr {
	return Sub{Add{Add{sq(X{}), sq(Y{})}, sq(Z{})}, C(r * r)}
}

// zSlab returns max(z0-z, z-z1), the sign predicate for z constrained
// to [z0, z1] when used inside an intersection.
func zSlab(z0, z1 float64) Expr {
	return Max{Sub{C(z0), Z{}}, Sub{Z{}, C(z1)}}
}

// Cylinder returns max(x²+y²-r², zSlab(0, h)): an infinite cylinder
// of radius r capped to height h spanning z∈[0,h] — not centred on the
// origin the way Sphere and Box are.
func Cylinder(r, h float64) Expr {
	radial := Sub{Add{sq(X{}), sq(Y{})}, C(r * r)}
	return Max{radial, zSlab(0, h)}
}

// Box returns the max over the six axis-aligned half-space residuals of
// a box with side lengths (sx, sy, sz) centred at the origin.
func Box(sx, sy, sz float64) Expr {
	hx, hy, hz := sx/2, sy/2, sz/2
	xSlab := Max{Sub{C(-hx), X{}}, Sub{X{}, C(hx)}}
	ySlab := Max{Sub{C(-hy), Y{}}, Sub{Y{}, C(hy)}}
	zSlabE := Max{Sub{C(-hz), Z{}}, Sub{Z{}, C(hz)}}
	return Max{Max{xSlab, ySlab}, zSlabE}
}

// Torus returns the algebraic (non-distance) form
// (q-(R²+r²))²-4R²(x²+y²), q = x²+y²+z², for a torus with major radius R
// and minor (tube) radius r.
func Torus(majorR, minorR float64) Expr {
	q := Add{Add{sq(X{}), sq(Y{})}, sq(Z{})}
	shifted := Sub{q, C(majorR*majorR + minorR*minorR)}
	return Sub{sq(shifted), Mul{C(4 * majorR * majorR), Add{sq(X{}), sq(Y{})}}}
}

// Tube returns the intersection of the outer disk, the inner anti-disk,
// and a z-cap: a hollow cylindrical shell of outer radius outer, inner
// radius inner, and half-height halfH, centred at the origin.
func Tube(outer, inner, halfH float64) Expr {
	r2 := Add{sq(X{}), sq(Y{})}
	outerShell := Sub{r2, C(outer * outer)}
	innerShell := Sub{C(inner * inner), r2}
	caps := Sub{sq(Z{}), C(halfH * halfH)}
	return Max{Max{outerShell, innerShell}, caps}
}
