package thinfilm

import (
	"math"
	"testing"
)

func TestConstantIndex(t *testing.T) {
	c := Constant(complex(0.77, 5.94))
	for _, lam := range []Real{1, 500, 1e6} {
		n, err := c.IndexAt(lam)
		if err != nil {
			t.Fatal(err)
		}
		if n != complex(0.77, 5.94) {
			t.Fatalf("IndexAt(%g) = %v", lam, n)
		}
	}
}

func TestCauchyBK7(t *testing.T) {
	// BK7-like Cauchy coefficients with the wavelength in micrometres
	c := NewCauchy(1.5046, 0.00420, 0)
	n, err := c.IndexAt(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if imag(n) != 0 {
		t.Fatalf("Cauchy index must be real, got %v", n)
	}
	if math.Abs(real(n)-1.5214) > 1e-12 {
		t.Fatalf("n(0.5um) = %.6f, want 1.5214", real(n))
	}
	// dispersion is normal: n falls with wavelength
	n2, err := c.IndexAt(0.7)
	if err != nil {
		t.Fatal(err)
	}
	if real(n2) >= real(n) {
		t.Fatalf("n(0.7um) = %.6f >= n(0.5um) = %.6f", real(n2), real(n))
	}
	if _, err := c.IndexAt(0); err == nil {
		t.Fatal("zero wavelength accepted")
	}
	if _, err := c.IndexAt(-1); err == nil {
		t.Fatal("negative wavelength accepted")
	}
}

func TestSellmeierBK7(t *testing.T) {
	// Schott N-BK7, wavelength in micrometres
	s := &Sellmeier{
		B: [3]Real{1.03961212, 0.231792344, 1.01046945},
		C: [3]Real{0.00600069867, 0.0200179144, 103.560653},
	}
	n, err := s.IndexAt(0.5876)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(real(n)-1.5168) > 1e-4 {
		t.Fatalf("n_d = %.6f, want 1.5168", real(n))
	}
	if imag(n) != 0 {
		t.Fatalf("Sellmeier index must be real, got %v", n)
	}
	// a resonance pole is a domain error, not a crash
	pole := &Sellmeier{B: [3]Real{1, 0, 0}, C: [3]Real{0.25, 0, 0}}
	if _, err := pole.IndexAt(0.5); err == nil {
		t.Fatal("resonance pole accepted")
	}
	if _, err := s.IndexAt(0); err == nil {
		t.Fatal("zero wavelength accepted")
	}
}

func TestTableInterpolation(t *testing.T) {
	tab, err := NewTable(
		[]Real{400, 500, 600},
		[]complex128{complex(1.40, 0.1), complex(1.50, 0.2), complex(1.44, 0.4)},
	)
	if err != nil {
		t.Fatal(err)
	}
	// exact sample
	n, err := tab.IndexAt(500)
	if err != nil {
		t.Fatal(err)
	}
	if n != complex(1.50, 0.2) {
		t.Fatalf("IndexAt(500) = %v", n)
	}
	// midpoint
	n, err = tab.IndexAt(450)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(real(n)-1.45) > 1e-12 || math.Abs(imag(n)-0.15) > 1e-12 {
		t.Fatalf("IndexAt(450) = %v, want 1.45+0.15i", n)
	}
	// endpoints included, outside refused
	if _, err := tab.IndexAt(400); err != nil {
		t.Fatal(err)
	}
	if _, err := tab.IndexAt(600); err != nil {
		t.Fatal(err)
	}
	if _, err := tab.IndexAt(399.999); err == nil {
		t.Fatal("below-range wavelength accepted")
	}
	if _, err := tab.IndexAt(600.001); err == nil {
		t.Fatal("above-range wavelength accepted")
	}
}

func TestTableValidation(t *testing.T) {
	if _, err := NewTable([]Real{500}, []complex128{1.5}); err == nil {
		t.Fatal("single-sample table accepted")
	}
	if _, err := NewTable([]Real{500, 400}, []complex128{1.5, 1.4}); err == nil {
		t.Fatal("descending wavelengths accepted")
	}
	if _, err := NewTable([]Real{400, 500}, []complex128{1.5}); err == nil {
		t.Fatal("length mismatch accepted")
	}
}

func TestTableIsImmutableCopy(t *testing.T) {
	lams := []Real{400, 500}
	ns := []complex128{1.4, 1.5}
	tab, err := NewTable(lams, ns)
	if err != nil {
		t.Fatal(err)
	}
	lams[0] = 999
	ns[0] = 999
	if _, err := tab.IndexAt(400); err != nil {
		t.Fatalf("table aliased its input slices: %v", err)
	}
}
