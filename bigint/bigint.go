// Package bigint adapts Go's math/big.Int to the narrow arbitrary-precision
// integer contract the field and pairing layers are built against: signed
// values, truncating division, small-modulus reduction, and a canonical
// least-significant-first bit decomposition.
//
// Everything here is a thin, allocation-per-call wrapper. Callers that need
// raw math/big access (for curve parameters, embedding-degree arithmetic,
// and the like) are free to reach for *big.Int directly -- Int.Raw exposes
// the underlying value for exactly that purpose.
package bigint

import "math/big"

// Int is an immutable signed arbitrary-precision integer. Every operation
// returns a new Int; the receiver is never mutated.
type Int struct {
	v *big.Int
}

// Zero is the additive identity.
func Zero() Int { return Int{big.NewInt(0)} }

// One is the multiplicative identity.
func One() Int { return Int{big.NewInt(1)} }

// FromInt64 builds an Int from a native signed integer.
func FromInt64(x int64) Int { return Int{big.NewInt(x)} }

// FromBigInt wraps an existing *big.Int. The argument is copied; later
// mutation of x by the caller does not affect the returned Int.
func FromBigInt(x *big.Int) Int { return Int{new(big.Int).Set(x)} }

// FromString parses a base-10 (or 0x-prefixed) string into an Int.
func FromString(s string) (Int, bool) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Int{}, false
	}
	return Int{v}, true
}

// Raw returns the underlying *big.Int. The returned value must not be
// mutated by the caller.
func (x Int) Raw() *big.Int { return x.v }

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return x.v == nil || x.v.Sign() == 0 }

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Int) Sign() int {
	if x.v == nil {
		return 0
	}
	return x.v.Sign()
}

// IsOdd reports the parity of x.
func (x Int) IsOdd() bool {
	if x.v == nil {
		return false
	}
	return x.v.Bit(0) == 1
}

// IsPositive reports whether x is strictly greater than zero.
func (x Int) IsPositive() bool { return x.Sign() > 0 }

// Equal reports structural equality.
func (x Int) Equal(y Int) bool { return x.norm().Cmp(y.norm()) == 0 }

// Cmp compares x and y, returning -1, 0, or +1.
func (x Int) Cmp(y Int) int { return x.norm().Cmp(y.norm()) }

// Abs returns |x|.
func (x Int) Abs() Int { return Int{new(big.Int).Abs(x.norm())} }

// Neg returns -x.
func (x Int) Neg() Int { return Int{new(big.Int).Neg(x.norm())} }

// Add returns x + y.
func (x Int) Add(y Int) Int { return Int{new(big.Int).Add(x.norm(), y.norm())} }

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return Int{new(big.Int).Sub(x.norm(), y.norm())} }

// Mul returns x * y.
func (x Int) Mul(y Int) Int { return Int{new(big.Int).Mul(x.norm(), y.norm())} }

// MulSmall returns x * k for a native int64 multiplier.
func (x Int) MulSmall(k int64) Int {
	return Int{new(big.Int).Mul(x.norm(), big.NewInt(k))}
}

// DivTrunc returns the truncated quotient x / y (rounding toward zero, as
// Rust's integer division does). Panics if y is zero -- a precondition
// violation, not a data error.
func (x Int) DivTrunc(y Int) Int {
	if y.IsZero() {
		panic("bigint: division by zero")
	}
	q, _ := new(big.Int).QuoRem(x.norm(), y.norm(), new(big.Int))
	return Int{q}
}

// ModSmall reduces x modulo a small positive modulus, returning a
// non-negative remainder in [0, m).
func (x Int) ModSmall(m uint64) uint64 {
	if m == 0 {
		panic("bigint: modulus must be positive")
	}
	r := new(big.Int).Mod(x.norm(), new(big.Int).SetUint64(m))
	return r.Uint64()
}

// Pow returns x raised to the (non-negative) power e. This is ordinary
// integer exponentiation, not modular -- it is used by the pairing layer
// to compute exponents such as (q^k - 1)/n, not to exponentiate field
// elements.
func (x Int) Pow(e Int) Int {
	if e.Sign() < 0 {
		panic("bigint: negative exponent")
	}
	return Int{new(big.Int).Exp(x.norm(), e.norm(), nil)}
}

// Bits returns the least-significant-first bit decomposition of |x|. The
// representation is canonical: non-zero values have no trailing false bits
// (the final entry, the most significant bit, is always true); zero is
// represented by the empty slice.
func (x Int) Bits() []bool {
	v := new(big.Int).Abs(x.norm())
	n := v.BitLen()
	if n == 0 {
		return nil
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = v.Bit(i) == 1
	}
	return bits
}

// norm returns the backing *big.Int, treating the zero value of Int as 0.
func (x Int) norm() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return x.v
}

// String renders x in base 10.
func (x Int) String() string { return x.norm().String() }
