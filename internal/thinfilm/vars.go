package thinfilm

import "log"

var (
	Debug = false // set to true for verbose debug output

	// warnf receives non-fatal diagnostics (gain media, branch
	// inconsistencies, opacity clamp). Numerical paths never read it.
	warnf = log.Printf

	// Compile time checks to ensure that the dispersion interface is implemented by all required types
	_ Dispersion = Constant(0)
	_ Dispersion = (*Cauchy)(nil)
	_ Dispersion = (*Sellmeier)(nil)
	_ Dispersion = (*Table)(nil)
)
