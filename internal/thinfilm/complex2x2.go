package thinfilm

// Mat2c is a 2x2 matrix over complex128. It is a plain value type:
// operations return fresh values, nothing mutates in place.
type Mat2c struct {
	M00, M01, M10, M11 complex128
}

// I2 returns the identity matrix.
func I2() Mat2c { return Mat2c{1, 0, 0, 1} }

// Mul returns the matrix product a*b.
func (a Mat2c) Mul(b Mat2c) Mat2c {
	return Mat2c{
		a.M00*b.M00 + a.M01*b.M10,
		a.M00*b.M01 + a.M01*b.M11,
		a.M10*b.M00 + a.M11*b.M10,
		a.M10*b.M01 + a.M11*b.M11,
	}
}

// Scale returns s*a.
func (a Mat2c) Scale(s complex128) Mat2c {
	return Mat2c{s * a.M00, s * a.M01, s * a.M10, s * a.M11}
}

// Div returns a/s.
func (a Mat2c) Div(s complex128) Mat2c {
	return Mat2c{a.M00 / s, a.M01 / s, a.M10 / s, a.M11 / s}
}
