// Package curve implements an elliptic curve in long Weierstrass form,
// its affine group law, and the rational line function Miller's algorithm
// is built on. Curve is generic over the field element type so the same
// code serves both Fp and Fq (package field) -- the spec's
// "EllipticCurve<F>" made concrete via Go's generics.
package curve

import (
	"io"

	"github.com/eth2030/ecc-pairings/ecerr"
	"github.com/eth2030/ecc-pairings/field"
)

// Curve is an elliptic curve in long Weierstrass form:
//
//	y^2 + a1*x*y + a3*y = x^3 + a2*x^2 + a4*x + a6
//
// over a field whose elements satisfy field.Elem[E]. The spec's six-slot
// Weierstrass coefficient array carries an unused a5 -- this type exposes
// only the five coefficients that actually appear in the equation.
type Curve[E field.Elem[E]] struct {
	a1, a2, a3, a4, a6 E
}

// New constructs the curve y^2 + a1 xy + a3 y = x^3 + a2 x^2 + a4 x + a6.
func New[E field.Elem[E]](a1, a2, a3, a4, a6 E) *Curve[E] {
	return &Curve[E]{a1: a1, a2: a2, a3: a3, a4: a4, a6: a6}
}

// Coefficients returns the five long-Weierstrass coefficients (a1, a2,
// a3, a4, a6).
func (c *Curve[E]) Coefficients() (a1, a2, a3, a4, a6 E) {
	return c.a1, c.a2, c.a3, c.a4, c.a6
}

// Point is a point on a curve, in affine coordinates, or the identity
// (point at infinity). It does not carry a reference to its curve: every
// operation that needs the group law receives the Curve explicitly, which
// breaks what would otherwise be a cyclic ownership graph between a curve
// and the points that live on it.
type Point[E any] struct {
	infinity bool
	x, y     E
}

// Infinity returns the identity element of the group. It is the zero
// value of Point[E] with infinity set, so the exported constructor exists
// mainly for clarity at call sites.
func Infinity[E any]() Point[E] {
	return Point[E]{infinity: true}
}

// Affine constructs the affine point (x, y). The caller is responsible
// for ensuring it lies on the intended curve; IsOnCurve can verify this.
func Affine[E any](x, y E) Point[E] {
	return Point[E]{x: x, y: y}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point[E]) IsInfinity() bool { return p.infinity }

// XY returns the affine coordinates of p. Calling it on the point at
// infinity returns the zero values of E.
func (p Point[E]) XY() (x, y E) { return p.x, p.y }

// Equal reports structural equality: two affine points are equal iff
// their coordinates are equal, and Infinity equals only Infinity.
func Equal[E field.Elem[E]](p, q Point[E]) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// IsOnCurve reports whether p satisfies the curve equation. The point at
// infinity is always on the curve by convention.
func (c *Curve[E]) IsOnCurve(p Point[E]) bool {
	if p.infinity {
		return true
	}
	x, y := p.x, p.y
	lhs := y.Square().Add(y.Mul(x.Mul(c.a1))).Add(y.Mul(c.a3))
	rhs := x.Mul(x).Mul(x).Add(x.Square().Mul(c.a2)).Add(x.Mul(c.a4)).Add(c.a6)
	return lhs.Equal(rhs)
}

// RandomPoint samples a uniform x and solves the curve equation for y via
// the quadratic formula, resampling x whenever the discriminant is not a
// square. The result satisfies IsOnCurve by construction.
func (c *Curve[E]) RandomPoint(rng io.Reader) (Point[E], error) {
	var zero Point[E]
	for {
		x, err := c.a1.Sample(rng)
		if err != nil {
			return zero, err
		}

		// b = a1*x + a3 ; c = -(x^3 + a2*x^2 + a4*x + a6) ; delta = b^2 - 4c
		bb := c.lineCoeffB(x)
		cc := c.randomC(x)
		delta := bb.Square().Add(cc.ZMul(-4))

		if !field.IsSquare[E](delta) {
			continue
		}
		sq, err := field.Sqrt[E](delta, rng)
		if err != nil {
			// delta was reported square; a Sqrt failure here would be a
			// bug in IsSquare/Sqrt, not caller data -- surface it rather
			// than looping forever.
			return zero, err
		}

		two := bb.One().ZMul(2)
		half, err := two.Invert()
		if err != nil {
			return zero, err
		}
		y := half.Mul(bb.Neg().Add(sq))
		return Affine(x, y), nil
	}
}

// lineCoeffB computes b = a1*x + a3, the linear coefficient of the
// quadratic-in-y curve equation at a given x.
func (c *Curve[E]) lineCoeffB(x E) E {
	return x.Mul(c.a1).Add(c.a3)
}

// randomC computes c = -(x^3 + a2*x^2 + a4*x + a6), the constant term of
// the quadratic-in-y curve equation at a given x.
func (c *Curve[E]) randomC(x E) E {
	return x.Mul(x).Mul(x).Add(x.Square().Mul(c.a2)).Add(x.Mul(c.a4)).Add(c.a6).Neg()
}

// Invert returns the additive inverse of p within the group: (x, -y - a1 x - a3).
// Fails with ecerr.InvalidInput for the point at infinity.
func (c *Curve[E]) Invert(p Point[E]) (Point[E], error) {
	var zero Point[E]
	if p.infinity {
		return zero, ecerr.NewInvalidInput("cannot invert the point at infinity")
	}
	newY := c.a3.Add(c.a1.Mul(p.x)).Add(p.y).Neg()
	return Affine(p.x, newY), nil
}

// Add returns P + Q under the group law, handling the point at infinity,
// the P = -Q case (result is infinity), and doubling (delegated to
// Double) before falling through to the general chord formula.
func (c *Curve[E]) Add(p, q Point[E]) (Point[E], error) {
	if p.infinity {
		return q, nil
	}
	if q.infinity {
		return p, nil
	}

	xp, yp := p.x, p.y
	xq, yq := q.x, q.y

	if xp.Equal(xq) && yp.Add(yq).Add(c.a1.Mul(xq)).Add(c.a3).IsZero() {
		return Infinity[E](), nil
	}

	if xp.Equal(xq) {
		return c.Double(p)
	}

	// Distinct x: lambda = (yQ - yP)/(xQ - xP), nu = (yP*xQ - yQ*xP)/(xQ - xP)
	denom := xq.Sub(xp)
	lambdaNum := yq.Sub(yp)
	nuNum := yp.Mul(xq).Sub(yq.Mul(xp))

	lambda, err := lambdaNum.Div(denom)
	if err != nil {
		return Infinity[E](), err
	}
	nu, err := nuNum.Div(denom)
	if err != nil {
		return Infinity[E](), err
	}

	return c.assemble(lambda, nu, xp, xq), nil
}

// Double returns 2P under the group law.
func (c *Curve[E]) Double(p Point[E]) (Point[E], error) {
	if p.infinity {
		return p, nil
	}
	x, y := p.x, p.y

	denom := y.ZMul(2).Add(c.a1.Mul(x)).Add(c.a3)
	if denom.IsZero() {
		return Infinity[E](), nil
	}

	// lambda = (3x^2 + 2 a2 x + a4 - a1 y) / (2y + a1 x + a3)
	lambdaNum := x.Square().ZMul(3).Add(c.a2.Mul(x).ZMul(2)).Add(c.a4).Sub(c.a1.Mul(y))
	// nu = (-x^3 + a4 x + 2 a6 - a3 y) / (2y + a1 x + a3)
	nuNum := x.Mul(x).Mul(x).Neg().Add(c.a4.Mul(x)).Add(c.a6.ZMul(2)).Sub(c.a3.Mul(y))

	lambda, err := lambdaNum.Div(denom)
	if err != nil {
		return Infinity[E](), err
	}
	nu, err := nuNum.Div(denom)
	if err != nil {
		return Infinity[E](), err
	}

	return c.assemble(lambda, nu, x, x), nil
}

// assemble computes the third point of the chord/tangent with slope
// lambda and intercept nu through the curve at x-coordinates xp, xq:
//
//	xR = lambda^2 + a1*lambda - a2 - xP - xQ
//	yR = -(lambda + a1)*xR - nu - a3
func (c *Curve[E]) assemble(lambda, nu, xp, xq E) Point[E] {
	xr := lambda.Square().Add(c.a1.Mul(lambda)).Sub(c.a2).Sub(xp).Sub(xq)
	yr := lambda.Add(c.a1).Mul(xr).Neg().Sub(nu).Sub(c.a3)
	return Affine(xr, yr)
}

// Line evaluates the rational line function through P and Q (or the
// tangent at P if P = Q, or the vertical line if the chord/tangent is
// undefined) at R. R must not be the point at infinity.
func (c *Curve[E]) Line(p, q, r Point[E]) (E, error) {
	var zero E
	if r.infinity {
		return zero, ecerr.NewInvalidInput("R must not be the point at infinity")
	}
	xr, yr := r.x, r.y

	switch {
	case p.infinity && q.infinity:
		return xr.One(), nil
	case p.infinity && !q.infinity:
		return xr.Sub(q.x), nil
	case !p.infinity && q.infinity:
		return xr.Sub(p.x), nil
	}

	xp, yp := p.x, p.y
	xq, yq := q.x, q.y

	if !xp.Equal(xq) {
		// P != Q, distinct x: chord.
		s, err := yq.Sub(yp).Div(xq.Sub(xp))
		if err != nil {
			return zero, err
		}
		return yr.Sub(yp).Sub(s.Mul(xr.Sub(xp))), nil
	}

	if !yp.Equal(yq) {
		// P != Q, same x: vertical line.
		return xr.Sub(xp), nil
	}

	// P = Q: tangent, unless the tangent denominator vanishes.
	denom := yp.ZMul(2).Add(c.a1.Mul(xp)).Add(c.a3)
	if denom.IsZero() {
		return xr.Sub(xp), nil
	}
	num := xp.Square().ZMul(3).Add(c.a2.Mul(xp).ZMul(2)).Sub(c.a1.Mul(yp)).Add(c.a4)
	s, err := num.Div(denom)
	if err != nil {
		return zero, err
	}
	return yr.Sub(yp).Sub(s.Mul(xr.Sub(xp))), nil
}
