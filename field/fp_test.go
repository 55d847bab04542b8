package field

import (
	"errors"
	"math/big"
	"testing"

	"github.com/eth2030/ecc-pairings/bigint"
	"github.com/eth2030/ecc-pairings/ecerr"
	"github.com/eth2030/ecc-pairings/randtest"
)

// TestFp5Arithmetic covers the concrete Fp<5> scenario: add(3,4)=2,
// mul(3,4)=2, invert(3)=2, sqrt(4) in {2,3}, sqrt(2) fails.
func TestFp5Arithmetic(t *testing.T) {
	fp := NewFp(big.NewInt(5))

	a := fp.ElementInt64(3)
	b := fp.ElementInt64(4)

	if got := a.Add(b); !got.Equal(fp.ElementInt64(2)) {
		t.Fatalf("3 + 4 mod 5 = %s, want 2", got.Value())
	}
	if got := a.Mul(b); !got.Equal(fp.ElementInt64(2)) {
		t.Fatalf("3 * 4 mod 5 = %s, want 2", got.Value())
	}

	inv, err := a.Invert()
	if err != nil {
		t.Fatalf("invert(3) failed: %v", err)
	}
	if !inv.Equal(fp.ElementInt64(2)) {
		t.Fatalf("invert(3) = %s, want 2", inv.Value())
	}

	rng := randtest.Seeded("fp5-sqrt")
	root, err := fp.ElementInt64(4).Sqrt(rng)
	if err != nil {
		t.Fatalf("sqrt(4) failed: %v", err)
	}
	if !(root.Equal(fp.ElementInt64(2)) || root.Equal(fp.ElementInt64(3))) {
		t.Fatalf("sqrt(4) = %s, want 2 or 3", root.Value())
	}

	_, err = fp.ElementInt64(2).Sqrt(rng)
	if !errors.Is(err, ecerr.NonQuadraticResidue) {
		t.Fatalf("sqrt(2) error = %v, want NonQuadraticResidue", err)
	}
}

func TestFpDivByZero(t *testing.T) {
	fp := NewFp(big.NewInt(11))
	a := fp.ElementInt64(3)
	zero := fp.Zero()
	if _, err := a.Div(zero); !errors.Is(err, ecerr.NoInverse) {
		t.Fatalf("div by zero error = %v, want NoInverse", err)
	}
	if _, err := zero.Invert(); !errors.Is(err, ecerr.NoInverse) {
		t.Fatal("invert(0) should fail with NoInverse")
	}
}

func TestFpSqrtZero(t *testing.T) {
	fp := NewFp(big.NewInt(11))
	rng := randtest.Seeded("fp11-sqrt-zero")
	root, err := fp.Zero().Sqrt(rng)
	if err != nil {
		t.Fatalf("sqrt(0) failed: %v", err)
	}
	if !root.IsZero() {
		t.Fatalf("sqrt(0) = %s, want 0", root.Value())
	}
}

func TestFpPowIdentities(t *testing.T) {
	fp := NewFp(big.NewInt(13))
	a := fp.ElementInt64(7)

	if got := a.Pow(bigint.Zero()); !got.Equal(fp.One()) {
		t.Fatalf("7^0 = %s, want 1", got.Value())
	}
	if got := a.Pow(bigint.One()); !got.Equal(a) {
		t.Fatalf("7^1 = %s, want 7", got.Value())
	}

	m := bigint.FromInt64(3)
	n := bigint.FromInt64(4)
	lhs := a.Pow(m.Add(n))
	rhs := a.Pow(m).Mul(a.Pow(n))
	if !lhs.Equal(rhs) {
		t.Fatalf("a^(m+n) = %s, a^m * a^n = %s, want equal", lhs.Value(), rhs.Value())
	}
}

func TestFpZPowNegative(t *testing.T) {
	fp := NewFp(big.NewInt(11))
	a := fp.ElementInt64(3)

	inv, err := a.ZPow(-1)
	if err != nil {
		t.Fatalf("3^-1 failed: %v", err)
	}
	want, err := a.Invert()
	if err != nil {
		t.Fatalf("invert(3) failed: %v", err)
	}
	if !inv.Equal(want) {
		t.Fatalf("3^-1 = %s, want %s", inv.Value(), want.Value())
	}

	if _, err := fp.Zero().ZPow(-1); !errors.Is(err, ecerr.NoInverse) {
		t.Fatal("0^-1 should fail with NoInverse")
	}
}

func TestFpCrossFieldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("mixing elements from two different Fp instances should panic")
		}
	}()
	a := NewFp(big.NewInt(11)).ElementInt64(3)
	b := NewFp(big.NewInt(13)).ElementInt64(3)
	a.Add(b)
}

func TestFpFieldAxioms(t *testing.T) {
	fp := NewFp(big.NewInt(17))
	rng := randtest.Seeded("fp17-axioms")

	a, err := fp.RandomElement(rng)
	if err != nil {
		t.Fatalf("random element failed: %v", err)
	}
	b, err := fp.RandomElement(rng)
	if err != nil {
		t.Fatalf("random element failed: %v", err)
	}
	c, err := fp.RandomElement(rng)
	if err != nil {
		t.Fatalf("random element failed: %v", err)
	}

	if !a.Add(b).Equal(b.Add(a)) {
		t.Fatal("addition should commute")
	}
	if !a.Add(b).Add(c).Equal(a.Add(b.Add(c))) {
		t.Fatal("addition should associate")
	}
	if !a.Mul(b).Equal(b.Mul(a)) {
		t.Fatal("multiplication should commute")
	}
	if !a.Add(fp.Zero()).Equal(a) {
		t.Fatal("a + 0 = a")
	}
	if !a.Mul(fp.One()).Equal(a) {
		t.Fatal("a * 1 = a")
	}
	if !a.Add(a.Neg()).IsZero() {
		t.Fatal("a + (-a) = 0")
	}
	if !a.IsZero() {
		inv, err := a.Invert()
		if err != nil {
			t.Fatalf("invert failed: %v", err)
		}
		if !a.Mul(inv).Equal(fp.One()) {
			t.Fatal("a * a^-1 = 1")
		}
	}
}
