// Package field implements the two finite-field layers the pairing engine
// is built on: a prime field Fp and its degree-N algebraic extension
// Fq = Fp[X]/(I(X)). Both are value types that carry a pointer back to the
// field object they belong to, since Go has no const-generic parameter
// that could pin P or N into the type itself the way Rust's
// PrimeField<const P: u32> does; mixing elements from two different field
// instances is a programming error and panics rather than returning an
// error, the same way indexing a slice out of bounds panics.
//
// Pow, ZPow, Sqrt, and IsSquare share one algorithmic shape across Fp and
// Fq (the spec calls this out explicitly), so they're implemented once
// here as generic functions over the Elem constraint and the two concrete
// field types each provide only the handful of primitive operations the
// generic code is built from.
package field

import (
	"fmt"
	"io"
	"math/big"

	"github.com/eth2030/ecc-pairings/bigint"
	"github.com/eth2030/ecc-pairings/ecerr"
)

// Elem is the capability set the curve, Miller, and pairing layers need
// from a field element, regardless of whether the concrete field is a
// PrimeField or an ExtensionField. E is always a concrete element type
// (*FpElem or *FqElem) satisfying Elem[E] -- a self-referencing generic
// constraint, the idiomatic Go stand-in for the spec's "monomorphise per
// concrete field" instruction.
type Elem[E any] interface {
	Zero() E
	One() E
	IsZero() bool
	Equal(y E) bool
	Add(y E) E
	Neg() E
	Sub(y E) E
	Mul(y E) E
	Square() E
	ZMul(k int64) E
	Invert() (E, error)
	Div(y E) (E, error)
	Sample(rng io.Reader) (E, error)
	Degree() int
	Order() *big.Int
	BaseOrder() *big.Int
}

// Pow computes x^e via iterative square-and-multiply, halving e at each
// step. Requires e >= 0; negative exponents must go through Invert first
// (ZPow does this automatically for the small-exponent case).
func Pow[E Elem[E]](x E, e bigint.Int) E {
	if e.Sign() < 0 {
		panic("field: Pow requires a non-negative exponent")
	}
	result := x.One()
	base := x
	for _, bit := range e.Bits() {
		if bit {
			result = result.Mul(base)
		}
		base = base.Square()
	}
	return result
}

// ZPow computes x^k for a native (small) exponent, including negative
// exponents via Invert. By convention ZPow(zero, 0) = one, and
// ZPow(zero, k) for k < 0 fails with ecerr.NoInverse.
func ZPow[E Elem[E]](x E, k int64) (E, error) {
	var zero E
	if k < 0 {
		inv, err := x.Invert()
		if err != nil {
			return zero, err
		}
		return ZPow(inv, -k)
	}
	if k == 0 {
		return x.One(), nil
	}
	if k == 1 {
		return x, nil
	}
	if k%2 == 1 {
		lo, err := ZPow(x, (k-1)/2)
		if err != nil {
			return zero, err
		}
		hi, err := ZPow(x, (k+1)/2)
		if err != nil {
			return zero, err
		}
		return lo.Mul(hi), nil
	}
	half, err := ZPow(x, k/2)
	if err != nil {
		return zero, err
	}
	return half.Mul(half), nil
}

// IsSquare reports whether x has a square root in its field, via the
// Legendre-symbol generalisation x^((order-1)/2) == 1. Zero is considered
// a square (its root is zero).
func IsSquare[E Elem[E]](x E) bool {
	if x.IsZero() {
		return true
	}
	half := new(big.Int).Rsh(new(big.Int).Sub(x.Order(), big.NewInt(1)), 1)
	return Pow(x, bigint.FromBigInt(half)).Equal(x.One())
}

// Sqrt computes a square root of x via Tonelli-Shanks, generalised to the
// field's full order q = p^N (so it doubles as the extension-field
// algorithm the spec asks for). sqrt(0) = 0 by convention, checked before
// entering the main loop. rng supplies the random non-residue search; it
// need not be cryptographically secure (see RandomElement's docs on the
// concrete field types for the security-sensitive case).
func Sqrt[E Elem[E]](x E, rng io.Reader) (E, error) {
	var zero E
	if x.IsZero() {
		return x.Zero(), nil
	}
	if !IsSquare(x) {
		return zero, ecerr.NonQuadraticResidue
	}

	qMinus1 := new(big.Int).Sub(x.Order(), big.NewInt(1))

	// Write order - 1 = Q * 2^S with Q odd.
	q := new(big.Int).Set(qMinus1)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// Find a quadratic non-residue by sampling uniformly at random.
	half := new(big.Int).Rsh(qMinus1, 1)
	z := x.One()
	for {
		cand, err := x.Sample(rng)
		if err != nil {
			return zero, err
		}
		if cand.IsZero() {
			continue
		}
		if !Pow(cand, bigint.FromBigInt(half)).Equal(x.One()) {
			z = cand
			break
		}
	}

	m := s
	c := Pow(z, bigint.FromBigInt(q))
	t := Pow(x, bigint.FromBigInt(q))
	qPlus1Over2 := new(big.Int).Rsh(new(big.Int).Add(q, big.NewInt(1)), 1)
	r := Pow(x, bigint.FromBigInt(qPlus1Over2))

	one := x.One()
	zeroElem := x.Zero()
	for !t.Equal(one) && !t.Equal(zeroElem) {
		// Find the least i in [1, m) with t^(2^i) = 1, by repeated squaring.
		i := 1
		tt := t.Square()
		for !tt.Equal(one) {
			i++
			if i >= m {
				return zero, fmt.Errorf("field: tonelli-shanks failed to converge")
			}
			tt = tt.Square()
		}

		b := c
		for j := 0; j < m-i-1; j++ {
			b = b.Square()
		}

		m = i
		c = b.Square()
		t = t.Mul(c)
		r = r.Mul(b)
	}

	if t.Equal(zeroElem) {
		return x.Zero(), nil
	}
	return r, nil
}
