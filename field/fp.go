package field

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/eth2030/ecc-pairings/bigint"
	"github.com/eth2030/ecc-pairings/ecerr"
)

// Fp is a prime field of order P. P is a construction-time parameter: Go
// has no way to pin it into the type itself, so every element of this
// field carries a pointer back to its Fp and all-cross field arithmetic
// is rejected at runtime (see FpElem.sameField).
type Fp struct {
	p *big.Int
}

// NewFp constructs the prime field of order p. p is trusted to be prime;
// this is not checked (the spec leaves primality validation to the
// caller, the same way it leaves curve-membership checks to the caller).
func NewFp(p *big.Int) *Fp {
	return &Fp{p: new(big.Int).Set(p)}
}

// P returns the field's modulus.
func (f *Fp) P() *big.Int { return new(big.Int).Set(f.p) }

// Zero returns the additive identity of f.
func (f *Fp) Zero() *FpElem { return &FpElem{field: f, v: new(big.Int)} }

// One returns the multiplicative identity of f.
func (f *Fp) One() *FpElem { return &FpElem{field: f, v: big.NewInt(1)} }

// Element builds the field element congruent to v modulo P, canonicalised
// into [0, P).
func (f *Fp) Element(v *big.Int) *FpElem {
	r := new(big.Int).Mod(v, f.p)
	return &FpElem{field: f, v: r}
}

// ElementInt64 is a convenience wrapper around Element for small literals.
func (f *Fp) ElementInt64(v int64) *FpElem {
	return f.Element(big.NewInt(v))
}

// RandomElement draws a uniform element of f using rng as the entropy
// source. Pass crypto/rand.Reader for cryptographic use; a deterministic
// io.Reader (e.g. seeded with math/rand) is appropriate for tests and
// reproducible simulations, never for key material.
func (f *Fp) RandomElement(rng io.Reader) (*FpElem, error) {
	v, err := rand.Int(rng, f.p)
	if err != nil {
		return nil, ecerr.NewInvalidInput("random source failure: " + err.Error())
	}
	return &FpElem{field: f, v: v}, nil
}

// FpElem is an element of a Fp, represented as the canonical non-negative
// residue in [0, P).
type FpElem struct {
	field *Fp
	v     *big.Int
}

func (x *FpElem) sameField(y *FpElem) {
	if x.field != y.field {
		panic("field: operands belong to different Fp instances")
	}
}

// Field returns the Fp this element belongs to.
func (x *FpElem) Field() *Fp { return x.field }

// Value returns the canonical non-negative representative in [0, P).
func (x *FpElem) Value() *big.Int { return new(big.Int).Set(x.v) }

// Zero returns the additive identity of x's field.
func (x *FpElem) Zero() *FpElem { return x.field.Zero() }

// One returns the multiplicative identity of x's field.
func (x *FpElem) One() *FpElem { return x.field.One() }

// IsZero reports whether x is the additive identity.
func (x *FpElem) IsZero() bool { return x.v.Sign() == 0 }

// Equal reports structural equality of the canonical representatives.
func (x *FpElem) Equal(y *FpElem) bool {
	x.sameField(y)
	return x.v.Cmp(y.v) == 0
}

// Add returns x + y mod P.
func (x *FpElem) Add(y *FpElem) *FpElem {
	x.sameField(y)
	return x.field.Element(new(big.Int).Add(x.v, y.v))
}

// Neg returns -x mod P.
func (x *FpElem) Neg() *FpElem {
	if x.v.Sign() == 0 {
		return x.Zero()
	}
	return &FpElem{field: x.field, v: new(big.Int).Sub(x.field.p, x.v)}
}

// Sub returns x - y mod P.
func (x *FpElem) Sub(y *FpElem) *FpElem { return x.Add(y.Neg()) }

// Mul returns x * y mod P.
func (x *FpElem) Mul(y *FpElem) *FpElem {
	x.sameField(y)
	return x.field.Element(new(big.Int).Mul(x.v, y.v))
}

// Square returns x^2 mod P.
func (x *FpElem) Square() *FpElem { return x.Mul(x) }

// ZMul returns x added to itself |k| times, with the sign of k, computed
// via a widened multiply followed by a single reduction rather than a
// repeated-addition loop.
func (x *FpElem) ZMul(k int64) *FpElem {
	r := new(big.Int).Mul(x.v, big.NewInt(k))
	return x.field.Element(r)
}

// Invert returns x^-1 via Fermat's little theorem (x^(P-2)); fails with
// ecerr.NoInverse for x = 0.
func (x *FpElem) Invert() (*FpElem, error) {
	if x.v.Sign() == 0 {
		return nil, ecerr.NoInverse
	}
	exp := new(big.Int).Sub(x.field.p, big.NewInt(2))
	return Pow(x, bigint.FromBigInt(exp)), nil
}

// Div returns x / y; fails with ecerr.NoInverse for y = 0.
func (x *FpElem) Div(y *FpElem) (*FpElem, error) {
	x.sameField(y)
	inv, err := y.Invert()
	if err != nil {
		return nil, err
	}
	return x.Mul(inv), nil
}

// Sample draws a fresh uniform element of x's field, used internally by
// Tonelli-Shanks to search for a quadratic non-residue.
func (x *FpElem) Sample(rng io.Reader) (*FpElem, error) { return x.field.RandomElement(rng) }

// Degree returns 1: a prime field is its own degree-1 extension of itself.
func (x *FpElem) Degree() int { return 1 }

// Order returns the field's order, P.
func (x *FpElem) Order() *big.Int { return x.field.P() }

// BaseOrder returns the order of the base prime field, also P.
func (x *FpElem) BaseOrder() *big.Int { return x.field.P() }

// Pow returns x^e for e >= 0.
func (x *FpElem) Pow(e bigint.Int) *FpElem { return Pow[*FpElem](x, e) }

// ZPow returns x^k, including negative k via Invert.
func (x *FpElem) ZPow(k int64) (*FpElem, error) { return ZPow[*FpElem](x, k) }

// IsSquare reports whether x is a quadratic residue.
func (x *FpElem) IsSquare() bool { return IsSquare[*FpElem](x) }

// Sqrt returns a square root of x via Tonelli-Shanks, or
// ecerr.NonQuadraticResidue if none exists.
func (x *FpElem) Sqrt(rng io.Reader) (*FpElem, error) { return Sqrt[*FpElem](x, rng) }
