package bigint

import (
	"math/big"
	"testing"
)

func TestZeroOneBasics(t *testing.T) {
	if !Zero().IsZero() {
		t.Fatal("Zero() should be zero")
	}
	if One().IsZero() {
		t.Fatal("One() should not be zero")
	}
	if One().Sign() != 1 {
		t.Fatalf("One().Sign() = %d, want 1", One().Sign())
	}
	if Zero().Sign() != 0 {
		t.Fatalf("Zero().Sign() = %d, want 0", Zero().Sign())
	}
}

func TestAddSubMul(t *testing.T) {
	a := FromInt64(7)
	b := FromInt64(3)

	if got := a.Add(b); !got.Equal(FromInt64(10)) {
		t.Fatalf("7 + 3 = %s, want 10", got)
	}
	if got := a.Sub(b); !got.Equal(FromInt64(4)) {
		t.Fatalf("7 - 3 = %s, want 4", got)
	}
	if got := a.Mul(b); !got.Equal(FromInt64(21)) {
		t.Fatalf("7 * 3 = %s, want 21", got)
	}
	if got := a.MulSmall(-2); !got.Equal(FromInt64(-14)) {
		t.Fatalf("7 * -2 = %s, want -14", got)
	}
}

func TestDivTruncAndModSmall(t *testing.T) {
	a := FromInt64(-7)
	b := FromInt64(2)
	if got := a.DivTrunc(b); !got.Equal(FromInt64(-3)) {
		t.Fatalf("-7 / 2 (trunc) = %s, want -3", got)
	}
	if got := FromInt64(7).ModSmall(3); got != 1 {
		t.Fatalf("7 mod 3 = %d, want 1", got)
	}
}

func TestDivTruncByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("DivTrunc by zero should panic")
		}
	}()
	FromInt64(1).DivTrunc(Zero())
}

func TestPow(t *testing.T) {
	got := FromInt64(3).Pow(FromInt64(4))
	if !got.Equal(FromInt64(81)) {
		t.Fatalf("3^4 = %s, want 81", got)
	}
	if got := FromInt64(5).Pow(Zero()); !got.Equal(One()) {
		t.Fatalf("5^0 = %s, want 1", got)
	}
}

func TestPowNegativeExponentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Pow with negative exponent should panic")
		}
	}()
	FromInt64(2).Pow(FromInt64(-1))
}

func TestBitsCanonical(t *testing.T) {
	if bits := Zero().Bits(); len(bits) != 0 {
		t.Fatalf("Bits() of zero = %v, want empty", bits)
	}
	// 13 = 0b1101, LSB first: true, false, true, true
	want := []bool{true, false, true, true}
	got := FromInt64(13).Bits()
	if len(got) != len(want) {
		t.Fatalf("Bits(13) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bits(13)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if !got[len(got)-1] {
		t.Fatal("the MSB bit must be true by canonicalisation")
	}
}

func TestIsOddAndAbs(t *testing.T) {
	if !FromInt64(-3).IsOdd() {
		t.Fatal("-3 should be odd")
	}
	if FromInt64(4).IsOdd() {
		t.Fatal("4 should be even")
	}
	if got := FromInt64(-5).Abs(); !got.Equal(FromInt64(5)) {
		t.Fatalf("abs(-5) = %s, want 5", got)
	}
}

func TestFromBigIntRoundTrip(t *testing.T) {
	b := big.NewInt(123456789)
	x := FromBigInt(b)
	if x.Raw().Cmp(b) != 0 {
		t.Fatalf("FromBigInt round trip failed: got %s, want %s", x.Raw(), b)
	}
}

func TestCmp(t *testing.T) {
	if FromInt64(3).Cmp(FromInt64(5)) >= 0 {
		t.Fatal("3 should be less than 5")
	}
	if FromInt64(5).Cmp(FromInt64(5)) != 0 {
		t.Fatal("5 should equal 5")
	}
}
