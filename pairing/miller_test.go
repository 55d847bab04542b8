package pairing

import (
	"errors"
	"math/big"
	"testing"

	"github.com/eth2030/ecc-pairings/bigint"
	"github.com/eth2030/ecc-pairings/curve"
	"github.com/eth2030/ecc-pairings/ecerr"
	"github.com/eth2030/ecc-pairings/field"
)

// order13Curve builds the spec's S2 curve y^2 = x^3 + x + 6 over Fp<11>.
func order13Curve() (*field.Fp, *curve.Curve[*field.FpElem]) {
	fp := field.NewFp(big.NewInt(11))
	zero := fp.Zero()
	one := fp.One()
	a6 := fp.ElementInt64(6)
	c := curve.New(zero, zero, zero, one, a6)
	return fp, c
}

func TestMillerWithNEqualsOneReturnsOne(t *testing.T) {
	fp, c := order13Curve()
	p := curve.Affine(fp.ElementInt64(2), fp.ElementInt64(7))
	q := curve.Affine(fp.ElementInt64(2), fp.ElementInt64(7))

	f, err := Miller(c, p, q, bigint.One())
	if err != nil {
		t.Fatalf("Miller(n=1) failed: %v", err)
	}
	if !f.Equal(f.One()) {
		t.Fatalf("Miller(n=1) = %s, want 1", f.Value())
	}
}

func TestMillerInfinityPIsInvalidInput(t *testing.T) {
	_, c := order13Curve()
	fp := field.NewFp(big.NewInt(11))
	q := curve.Affine(fp.ElementInt64(2), fp.ElementInt64(7))
	inf := curve.Infinity[*field.FpElem]()

	if _, err := Miller(c, inf, q, bigint.FromInt64(5)); !errors.Is(err, ecerr.InvalidInput) {
		t.Fatalf("Miller(Infinity, Q, n) error = %v, want InvalidInput", err)
	}
}

func TestLineInfinityRIsInvalidInput(t *testing.T) {
	fp, c := order13Curve()
	p := curve.Affine(fp.ElementInt64(2), fp.ElementInt64(7))
	if _, err := c.Line(p, p, curve.Infinity[*field.FpElem]()); !errors.Is(err, ecerr.InvalidInput) {
		t.Fatal("line(P,Q,Infinity) should fail with InvalidInput")
	}
}

func TestInvertInfinityIsInvalidInput(t *testing.T) {
	_, c := order13Curve()
	if _, err := c.Invert(curve.Infinity[*field.FpElem]()); !errors.Is(err, ecerr.InvalidInput) {
		t.Fatal("invert(Infinity) should fail with InvalidInput")
	}
}

func TestDivByZeroIsNoInverse(t *testing.T) {
	fp := field.NewFp(big.NewInt(11))
	a := fp.ElementInt64(4)
	if _, err := a.Div(fp.Zero()); !errors.Is(err, ecerr.NoInverse) {
		t.Fatal("div(a, 0) should fail with NoInverse")
	}
}
