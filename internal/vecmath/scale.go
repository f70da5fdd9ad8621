package vecmath

// scalarOf converts a real scale factor to T. A non-constant float64 is
// not directly convertible to a complex type, so complex members of
// Number's type set are built through complex(), mirroring the fft
// package's MkComplex.
func scalarOf[T Number](scale float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		v, _ := any(float32(scale)).(T)
		return v
	case float64:
		v, _ := any(scale).(T)
		return v
	case complex64:
		v, _ := any(complex(float32(scale), 0)).(T)
		return v
	case complex128:
		v, _ := any(complex(scale, 0)).(T)
		return v
	default:
		panic("vecmath: unsupported scalar type")
	}
}

// ScaleBlockInPlace multiplies each element by a real scalar in place:
// dst[i] *= scale.
func ScaleBlockInPlace[T Number](dst []T, scale float64) {
	s := scalarOf[T](scale)
	for i := range dst {
		dst[i] *= s
	}
}
