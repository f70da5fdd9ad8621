// Package fft provides a radix-2 decimation-in-time FFT over power-of-two
// sizes, plus a real-input wrapper that exploits Hermitian symmetry.
//
// [Plan] owns precomputed twiddle and bit-reversal tables for a fixed
// transform size and transforms complex sequences in place:
//
//	plan, err := fft.NewPlan[complex128](order)
//	err = plan.Transform(x, fft.Forward)
//
// [RealPlan] wraps an inner [Plan] and stores only the first N/2+1 bins of
// a real-input spectrum, since the remainder is the conjugate reflection of
// the stored half:
//
//	rp, err := fft.NewRealPlan[float64, complex128](order)
//	err = rp.R2C(timeDomain, spectrum)
//	err = rp.C2R(spectrum, timeDomain)
//
// Neither plan normalizes; callers divide by the transform size as needed.
package fft
