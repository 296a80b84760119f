package thinfilm

import (
	"math"
)

type Real = float64

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// absSq is |z|^2 without the square root.
func absSq(z complex128) Real {
	return real(z)*real(z) + imag(z)*imag(z)
}
