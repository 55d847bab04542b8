package pairing

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/eth2030/ecc-pairings/bigint"
	"github.com/eth2030/ecc-pairings/curve"
	"github.com/eth2030/ecc-pairings/ecerr"
	"github.com/eth2030/ecc-pairings/field"
)

// WeilPairing computes e_W(P, Q, n). No validation is performed that P
// and Q actually have order dividing n, or that they lie on the same
// curve -- as with Miller, malformed input yields an undefined result
// rather than an error (the spec's non-goal on membership checks).
func WeilPairing[E field.Elem[E]](c *curve.Curve[E], p, q curve.Point[E], n bigint.Int) (E, error) {
	if curve.Equal[E](p, q) || p.IsInfinity() || q.IsInfinity() {
		return oneOf(c), nil
	}

	fPQ, err := Miller(c, p, q, n)
	if err != nil {
		return fPQ, err
	}
	fQP, err := Miller(c, q, p, n)
	if err != nil {
		return fQP, err
	}
	ratio, err := fPQ.Div(fQP)
	if err != nil {
		return ratio, err
	}

	// The standard (-1)^n sign correction.
	if n.IsOdd() {
		return ratio.Neg(), nil
	}
	return ratio, nil
}

// TatePairing computes the reduced Tate pairing e_T(P, Q, n, k), where k
// is the embedding degree and q = |Fp| is the base field's size (read off
// the field's BaseOrder). If the direct Miller evaluation hits a pole,
// the pole is moved by translating Q by a random point R and recursing;
// this is a Las Vegas algorithm that terminates with probability 1, since
// the set of problematic R is a proper subvariety of the curve.
// Persistent failures point to malformed input, most often P not
// actually being of order n.
func TatePairing[E field.Elem[E]](c *curve.Curve[E], p, q curve.Point[E], n bigint.Int, k bigint.Int) (E, error) {
	baseOrder := oneOf(c).BaseOrder()

	m, err := Miller(c, p, q, n)
	if err == nil {
		e := tateExponent(baseOrder, k, n)
		return field.Pow(m, e), nil
	}
	if !errors.Is(err, ecerr.NoInverse) {
		// Not a pole: P or Q was the point at infinity, a genuine caller
		// error that resampling Q can never fix.
		var zero E
		return zero, err
	}

	pairingLog.Debug("tate pairing hit a pole, moving Q by a random point", "reason", err.Error())

	rng := randomSource
	if rng == nil {
		rng = rand.Reader
	}
	r, rerr := c.RandomPoint(rng)
	if rerr != nil {
		var zero E
		return zero, rerr
	}

	qPlusR, aerr := c.Add(q, r)
	if aerr != nil {
		var zero E
		return zero, aerr
	}

	fQR, terr := TatePairing(c, p, qPlusR, n, k)
	if terr != nil {
		return fQR, terr
	}
	fR, terr := TatePairing(c, p, r, n, k)
	if terr != nil {
		return fR, terr
	}
	return fQR.Div(fR)
}

// AtePairing computes the modified Ate pairing e_A(P, Q, n, k, t-1),
// where t is the trace of Frobenius over the base field and traceMinus1
// is t-1, the loop parameter fed to Miller. P and Q, k, and n carry the
// same preconditions the spec lists: P in ker(Frobenius - 1), Q in
// ker(Frobenius - q), both of order n, on the same curve -- none of which
// is checked here.
func AtePairing[E field.Elem[E]](c *curve.Curve[E], p, q curve.Point[E], n bigint.Int, k bigint.Int, traceMinus1 bigint.Int) (E, error) {
	baseOrder := oneOf(c).BaseOrder()

	m, err := Miller(c, q, p, traceMinus1)
	if err != nil {
		return m, err
	}
	e := tateExponent(baseOrder, k, n)
	return field.Pow(m, e), nil
}

// tateExponent computes e = (q^k - 1) / n, the final exponentiation
// shared by the reduced Tate and Ate pairings.
func tateExponent(baseOrder *big.Int, k bigint.Int, n bigint.Int) bigint.Int {
	qk := bigint.FromBigInt(baseOrder).Pow(k)
	return qk.Sub(bigint.One()).DivTrunc(n)
}
