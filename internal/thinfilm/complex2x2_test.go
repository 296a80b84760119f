package thinfilm

import (
	"math/cmplx"
	"testing"
)

func matClose(a, b Mat2c, tol float64) bool {
	return cmplx.Abs(a.M00-b.M00) <= tol && cmplx.Abs(a.M01-b.M01) <= tol &&
		cmplx.Abs(a.M10-b.M10) <= tol && cmplx.Abs(a.M11-b.M11) <= tol
}

func TestI2Mul(t *testing.T) {
	m := Mat2c{1 + 2i, 3, -1i, 0.5}
	if got := I2().Mul(m); got != m {
		t.Fatalf("I*m != m: %+v", got)
	}
	if got := m.Mul(I2()); got != m {
		t.Fatalf("m*I != m: %+v", got)
	}
}

func TestMulRowByColumn(t *testing.T) {
	a := Mat2c{1, 2, 3, 4}
	b := Mat2c{5, 6, 7, 8}
	want := Mat2c{19, 22, 43, 50}
	if got := a.Mul(b); got != want {
		t.Fatalf("a*b = %+v, want %+v", got, want)
	}
	// and the other order differs
	if got := b.Mul(a); got == want {
		t.Fatalf("b*a unexpectedly equals a*b")
	}
}

func TestComplexProduct(t *testing.T) {
	a := Mat2c{1i, 0, 0, -1i}
	b := Mat2c{0, 1, 1, 0}
	want := Mat2c{0, 1i, -1i, 0}
	if got := a.Mul(b); !matClose(got, want, 0) {
		t.Fatalf("a*b = %+v, want %+v", got, want)
	}
}

func TestScaleDivRoundTrip(t *testing.T) {
	m := Mat2c{1 + 1i, 2, 3 - 0.5i, 4i}
	s := complex(0.25, -3)
	if got := m.Scale(s).Div(s); !matClose(got, m, 1e-15) {
		t.Fatalf("scale/div round trip drifted: %+v", got)
	}
	if got := m.Scale(2).M01; got != 4 {
		t.Fatalf("Scale(2).M01 = %v, want 4", got)
	}
}
