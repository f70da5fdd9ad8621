package fft

// Go's real, imag, and complex builtins require a single core type, which
// the Complex constraint's type set (complex64 and complex128) does not
// have. These helpers type-switch through any(), mirroring the pattern
// used for generic complex construction elsewhere in the ecosystem.

// MkComplex builds a C from real and imaginary float64 components.
func MkComplex[C Complex](re, im float64) C {
	var zero C
	switch any(zero).(type) {
	case complex64:
		v, _ := any(complex(float32(re), float32(im))).(C)
		return v
	case complex128:
		v, _ := any(complex(re, im)).(C)
		return v
	default:
		panic("fft: unsupported complex type")
	}
}

// Real returns the real component of v as a float64.
func Real[C Complex](v C) float64 {
	switch x := any(v).(type) {
	case complex64:
		return float64(real(x))
	case complex128:
		return real(x)
	default:
		panic("fft: unsupported complex type")
	}
}

// Conj returns the complex conjugate of v.
func Conj[C Complex](v C) C {
	switch x := any(v).(type) {
	case complex64:
		r, _ := any(complex(real(x), -imag(x))).(C)
		return r
	case complex128:
		r, _ := any(complex(real(x), -imag(x))).(C)
		return r
	default:
		panic("fft: unsupported complex type")
	}
}

// MkFloat converts a float64 to F. Unlike real/imag/complex, ordinary
// numeric conversion is permitted directly on a type parameter.
func MkFloat[F Float](v float64) F {
	return F(v)
}
