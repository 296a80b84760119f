package thinfilm

import (
	"fmt"
	"math"
)

// Dispersion supplies the complex refractive index n' + i*n'' of a medium
// at a vacuum wavelength. Implementations are immutable after construction
// and safe for concurrent use; a model may be shared between stacks.
//
// The wavelength unit is whatever the model's coefficients were built for
// and must match the unit of the layer thicknesses (nm by convention).
type Dispersion interface {
	IndexAt(lambda Real) (complex128, error)
}

// Constant is a wavelength-independent refractive index.
type Constant complex128

func (c Constant) IndexAt(Real) (complex128, error) { return complex128(c), nil }

// Cauchy is Cauchy's equation n(lambda) = A + B/lambda^2 + C/lambda^4.
// B and C carry the wavelength unit squared and to the fourth power.
// The imaginary part is always zero.
type Cauchy struct {
	A, B, C Real
}

func NewCauchy(a, b, c Real) *Cauchy { return &Cauchy{A: a, B: b, C: c} }

func (c *Cauchy) IndexAt(lambda Real) (complex128, error) {
	if !(lambda > 0) {
		return 0, fmt.Errorf("cauchy: wavelength must be positive, got %g", lambda)
	}
	l2 := lambda * lambda
	return complex(c.A+c.B/l2+c.C/(l2*l2), 0), nil
}

// Sellmeier is the three-term Sellmeier equation
// n^2 = 1 + sum B_i*lambda^2 / (lambda^2 - C_i), C_i in wavelength unit
// squared. Valid only away from the resonances C_i.
type Sellmeier struct {
	B [3]Real
	C [3]Real
}

func (s *Sellmeier) IndexAt(lambda Real) (complex128, error) {
	if !(lambda > 0) {
		return 0, fmt.Errorf("sellmeier: wavelength must be positive, got %g", lambda)
	}
	l2 := lambda * lambda
	n2 := 1.0
	for i := 0; i < 3; i++ {
		den := l2 - s.C[i]
		if den == 0 {
			return 0, fmt.Errorf("sellmeier: resonance pole at wavelength %g", lambda)
		}
		n2 += s.B[i] * l2 / den
	}
	if n2 < 0 {
		return 0, fmt.Errorf("sellmeier: n^2 = %g < 0 at wavelength %g", n2, lambda)
	}
	return complex(math.Sqrt(n2), 0), nil
}
