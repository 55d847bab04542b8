package field

import (
	"io"
	"math/big"

	"github.com/eth2030/ecc-pairings/bigint"
	"github.com/eth2030/ecc-pairings/ecerr"
)

// Fq is the degree-N algebraic extension Fp[X]/(I(X)) of a prime field,
// where I(X) = X^N - sum_k Coeffs[k]*X^k is a fixed monic reduction
// polynomial. Irreducibility of I is a construction-time precondition the
// caller is responsible for; it is not checked here.
type Fq struct {
	base   *Fp
	coeffs []*big.Int // I(X) = X^N - sum coeffs[k]*X^k, length N
	n      int
}

// NewFq builds the extension field Fp[X]/(I(X)). reductionCoeffs holds the
// N coefficients i_0..i_{N-1} of I(X) = X^N - sum i_k X^k, low degree
// first. The slice is copied.
func NewFq(base *Fp, reductionCoeffs []*big.Int) *Fq {
	n := len(reductionCoeffs)
	if n == 0 {
		panic("field: extension degree must be at least 1")
	}
	coeffs := make([]*big.Int, n)
	for i, c := range reductionCoeffs {
		coeffs[i] = base.Element(c).Value()
	}
	return &Fq{base: base, coeffs: coeffs, n: n}
}

// Base returns the underlying prime field.
func (f *Fq) Base() *Fp { return f.base }

// Degree returns N, the degree of the extension.
func (f *Fq) Degree() int { return f.n }

// Order returns P^N.
func (f *Fq) Order() *big.Int {
	return new(big.Int).Exp(f.base.p, big.NewInt(int64(f.n)), nil)
}

// Zero returns the additive identity of f.
func (f *Fq) Zero() *FqElem {
	coords := make([]*big.Int, f.n)
	for i := range coords {
		coords[i] = new(big.Int)
	}
	return &FqElem{field: f, coords: coords}
}

// One returns the multiplicative identity of f.
func (f *Fq) One() *FqElem {
	e := f.Zero()
	e.coords[0] = big.NewInt(1)
	return e
}

// Element builds the field element with the given coefficients, low
// degree first. len(coords) must equal N.
func (f *Fq) Element(coords []*big.Int) *FqElem {
	if len(coords) != f.n {
		panic("field: coefficient vector must have length N")
	}
	c := make([]*big.Int, f.n)
	for i, v := range coords {
		c[i] = f.base.Element(v).Value()
	}
	return &FqElem{field: f, coords: c}
}

// RandomElement draws a uniform element of f by sampling N independent
// coordinates in Fp, using rng as the entropy source.
func (f *Fq) RandomElement(rng io.Reader) (*FqElem, error) {
	coords := make([]*big.Int, f.n)
	for i := range coords {
		c, err := f.base.RandomElement(rng)
		if err != nil {
			return nil, err
		}
		coords[i] = c.Value()
	}
	return &FqElem{field: f, coords: coords}, nil
}

// FqElem is an element of a Fq, represented as a length-N coefficient
// vector over Fp (low degree first).
type FqElem struct {
	field  *Fq
	coords []*big.Int
}

func (x *FqElem) sameField(y *FqElem) {
	if x.field != y.field {
		panic("field: operands belong to different Fq instances")
	}
}

// Field returns the Fq this element belongs to.
func (x *FqElem) Field() *Fq { return x.field }

// Coords returns a copy of the coefficient vector, low degree first.
func (x *FqElem) Coords() []*big.Int {
	out := make([]*big.Int, len(x.coords))
	for i, c := range x.coords {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

// Zero returns the additive identity of x's field.
func (x *FqElem) Zero() *FqElem { return x.field.Zero() }

// One returns the multiplicative identity of x's field.
func (x *FqElem) One() *FqElem { return x.field.One() }

// IsZero reports whether every coefficient is zero.
func (x *FqElem) IsZero() bool {
	for _, c := range x.coords {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// Equal reports coefficient-wise equality.
func (x *FqElem) Equal(y *FqElem) bool {
	x.sameField(y)
	for i := range x.coords {
		if x.coords[i].Cmp(y.coords[i]) != 0 {
			return false
		}
	}
	return true
}

// Add returns x + y, coefficient-wise in Fp.
func (x *FqElem) Add(y *FqElem) *FqElem {
	x.sameField(y)
	p := x.field.base.p
	out := make([]*big.Int, x.field.n)
	for i := range out {
		out[i] = new(big.Int).Mod(new(big.Int).Add(x.coords[i], y.coords[i]), p)
	}
	return &FqElem{field: x.field, coords: out}
}

// Neg returns -x, coefficient-wise in Fp.
func (x *FqElem) Neg() *FqElem {
	p := x.field.base.p
	out := make([]*big.Int, x.field.n)
	for i, c := range x.coords {
		if c.Sign() == 0 {
			out[i] = new(big.Int)
			continue
		}
		out[i] = new(big.Int).Sub(p, c)
	}
	return &FqElem{field: x.field, coords: out}
}

// Sub returns x - y.
func (x *FqElem) Sub(y *FqElem) *FqElem { return x.Add(y.Neg()) }

// ZMul returns x added to itself |k| times, with the sign of k, computed
// coefficient-wise.
func (x *FqElem) ZMul(k int64) *FqElem {
	p := x.field.base.p
	out := make([]*big.Int, x.field.n)
	for i, c := range x.coords {
		out[i] = new(big.Int).Mod(new(big.Int).Mul(c, big.NewInt(k)), p)
	}
	return &FqElem{field: x.field, coords: out}
}

// Mul multiplies x and y as polynomials modulo I, via schoolbook
// multiplication into a degree-(2N-2) buffer followed by reduction.
// Reduction folds the high coefficients down one at a time, highest
// degree first: X^l (for l >= N) contributes coeffs[k]*q[l] to the
// coefficient of X^(l-N+k), since X^N == sum coeffs[k]*X^k (mod I).
// Processing from the top means a fold that lands back above degree N-1
// is itself folded again on a later iteration of the same loop.
func (x *FqElem) Mul(y *FqElem) *FqElem {
	x.sameField(y)
	n := x.field.n
	p := x.field.base.p
	i := x.field.coeffs

	buf := make([]*big.Int, 2*n-1)
	for k := range buf {
		buf[k] = new(big.Int)
	}
	for a := 0; a < n; a++ {
		if x.coords[a].Sign() == 0 {
			continue
		}
		for b := 0; b < n; b++ {
			if y.coords[b].Sign() == 0 {
				continue
			}
			buf[a+b].Add(buf[a+b], new(big.Int).Mul(x.coords[a], y.coords[b]))
		}
	}

	for l := 2*n - 2; l >= n; l-- {
		if buf[l].Sign() == 0 {
			continue
		}
		for k := 0; k < n; k++ {
			term := new(big.Int).Mul(buf[l], i[k])
			buf[l-n+k].Add(buf[l-n+k], term)
		}
		buf[l] = new(big.Int)
	}

	out := make([]*big.Int, n)
	for k := 0; k < n; k++ {
		out[k] = new(big.Int).Mod(buf[k], p)
	}
	return &FqElem{field: x.field, coords: out}
}

// Square returns x * x.
func (x *FqElem) Square() *FqElem { return x.Mul(x) }

// Invert returns x^-1 via Fermat's little theorem raised to the field's
// full order (x^(q-2) with q = P^N); fails with ecerr.NoInverse for x = 0.
func (x *FqElem) Invert() (*FqElem, error) {
	if x.IsZero() {
		return nil, ecerr.NoInverse
	}
	exp := new(big.Int).Sub(x.field.Order(), big.NewInt(2))
	return Pow(x, bigint.FromBigInt(exp)), nil
}

// Div returns x / y; fails with ecerr.NoInverse for y = 0.
func (x *FqElem) Div(y *FqElem) (*FqElem, error) {
	x.sameField(y)
	inv, err := y.Invert()
	if err != nil {
		return nil, err
	}
	return x.Mul(inv), nil
}

// Sample draws a fresh uniform element of x's field.
func (x *FqElem) Sample(rng io.Reader) (*FqElem, error) { return x.field.RandomElement(rng) }

// Degree returns N.
func (x *FqElem) Degree() int { return x.field.n }

// Order returns P^N.
func (x *FqElem) Order() *big.Int { return x.field.Order() }

// BaseOrder returns P, the order of the base prime field.
func (x *FqElem) BaseOrder() *big.Int { return x.field.base.P() }

// Pow returns x^e for e >= 0.
func (x *FqElem) Pow(e bigint.Int) *FqElem { return Pow[*FqElem](x, e) }

// ZPow returns x^k, including negative k via Invert.
func (x *FqElem) ZPow(k int64) (*FqElem, error) { return ZPow[*FqElem](x, k) }

// IsSquare reports whether x is a quadratic residue.
func (x *FqElem) IsSquare() bool { return IsSquare[*FqElem](x) }

// Sqrt returns a square root of x via Tonelli-Shanks over the field's
// full order q = P^N, or ecerr.NonQuadraticResidue if none exists.
func (x *FqElem) Sqrt(rng io.Reader) (*FqElem, error) { return Sqrt[*FqElem](x, rng) }
