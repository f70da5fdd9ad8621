package conv

import "math/rand/v2"

// makeNoiseSignal creates a deterministic signal using a fixed-seed
// generator, matching the teacher's makePartitionedTestSignal pattern.
func makeNoiseSignal(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, 0))
	sig := make([]float64, n)
	for i := range sig {
		sig[i] = rng.Float64()*2 - 1
	}
	return sig
}

// maxAbsDiff returns the largest absolute elementwise difference between a
// and b. Panics if the lengths differ.
func maxAbsDiff(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("conv: maxAbsDiff length mismatch")
	}
	var max float64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

// directConvolve computes the full linear convolution of signal and kernel
// by direct time-domain summation, used as ground truth in equivalence
// tests.
func directConvolve(signal, kernel []float64) []float64 {
	out := make([]float64, len(signal)+len(kernel)-1)
	for i, s := range signal {
		if s == 0 {
			continue
		}
		for j, k := range kernel {
			out[i+j] += s * k
		}
	}
	return out
}
