// Package pairing implements Miller's algorithm and the three bilinear
// pairings built on top of it: Weil, reduced Tate, and (modified) Ate.
package pairing

import (
	"io"

	"github.com/eth2030/ecc-pairings/bigint"
	"github.com/eth2030/ecc-pairings/curve"
	"github.com/eth2030/ecc-pairings/ecerr"
	"github.com/eth2030/ecc-pairings/field"
	"github.com/eth2030/ecc-pairings/log"
)

var pairingLog = log.Default().Module("pairing")

// Miller evaluates f_{n,P}(Q), the Miller function for P whose divisor is
// n(P) - ([n]P) - (n-1)(O), at Q. Negative n is supported: the spec's
// convention evaluates Q instead against the inverse of the positive-n
// function, which is exactly what the Ate pairing needs when its loop
// parameter t-1 is negative.
//
// Fails with ecerr.InvalidInput if P or Q is the point at infinity.
// Division-by-zero inside the loop (a caller-data problem -- e.g. a Q
// chosen so a vertical line passes through its own x-coordinate) surfaces
// as ecerr.NoInverse.
func Miller[E field.Elem[E]](c *curve.Curve[E], p, q curve.Point[E], n bigint.Int) (E, error) {
	var zero E
	if p.IsInfinity() {
		return zero, ecerr.NewInvalidInput("P must not be the point at infinity")
	}
	if q.IsInfinity() {
		return zero, ecerr.NewInvalidInput("Q must not be the point at infinity")
	}
	if n.IsZero() {
		return oneOf(c), nil
	}

	sign := n.IsPositive()
	bits := n.Abs().Bits() // LSB first; bits[len-1] is the MSB, always true.

	f := oneOf(c)
	v := p
	i := len(bits) - 1

	if i > 0 {
		i--
		for {
			s, err := c.Double(v)
			if err != nil {
				return zero, err
			}
			negS := s
			if !s.IsInfinity() {
				if negS, err = c.Invert(s); err != nil {
					return zero, err
				}
			}
			ell, err := c.Line(v, v, q)
			if err != nil {
				return zero, err
			}
			vee, err := c.Line(s, negS, q)
			if err != nil {
				return zero, err
			}
			ratio, err := ell.Div(vee)
			if err != nil {
				return zero, err
			}
			f = f.Square().Mul(ratio)
			v = s

			if bits[i] {
				s, err := c.Add(v, p)
				if err != nil {
					return zero, err
				}
				negS := s
				if !s.IsInfinity() {
					if negS, err = c.Invert(s); err != nil {
						return zero, err
					}
				}
				ell, err := c.Line(v, p, q)
				if err != nil {
					return zero, err
				}
				vee, err := c.Line(s, negS, q)
				if err != nil {
					return zero, err
				}
				ratio, err := ell.Div(vee)
				if err != nil {
					return zero, err
				}
				f = f.Mul(ratio)
				v = s
			}

			if i == 0 {
				break
			}
			i--
		}
	}

	if !sign {
		negV := v
		if !v.IsInfinity() {
			var err error
			if negV, err = c.Invert(v); err != nil {
				return zero, err
			}
		}
		vee, err := c.Line(v, negV, q)
		if err != nil {
			return zero, err
		}
		inv, err := f.Mul(vee).Invert()
		if err != nil {
			return zero, err
		}
		f = inv
	}

	return f, nil
}

// oneOf returns the multiplicative identity of the field the curve's
// coefficients live in -- used to seed the Miller accumulator without
// requiring a throwaway element from the caller.
func oneOf[E field.Elem[E]](c *curve.Curve[E]) E {
	a1, _, _, _, _ := c.Coefficients()
	return a1.One()
}

// randomSource is the default entropy source for the reduced Tate
// pairing's pole-avoidance fallback. It is a package variable rather than
// a parameter threaded through every call so Weil/Ate callers that never
// hit a pole don't need to carry one around; swap it via SetRandomSource
// for deterministic tests.
var randomSource io.Reader

// SetRandomSource overrides the entropy source used internally by
// TatePairing's pole-avoidance resampling. Pass nil to restore the
// default (crypto/rand.Reader).
func SetRandomSource(rng io.Reader) { randomSource = rng }
