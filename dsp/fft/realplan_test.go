package fft

import (
	"math"
	"math/rand/v2"
	"testing"
)

func makeRealNoise(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, 0))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()*2 - 1
	}
	return x
}

func TestRealPlanHermitianReflection(t *testing.T) {
	const order = 8
	rp, err := NewRealPlan[float64, complex128](order)
	if err != nil {
		t.Fatalf("NewRealPlan: %v", err)
	}

	x := makeRealNoise(rp.Size(), 7)
	spectrum := make([]complex128, rp.SpectrumSize())
	if err := rp.R2C(x, spectrum); err != nil {
		t.Fatalf("R2C: %v", err)
	}

	full := make([]complex128, rp.Size())
	copy(full[:rp.SpectrumSize()], spectrum)
	for i := rp.SpectrumSize(); i < rp.Size(); i++ {
		full[i] = Conj[complex128](full[rp.Size()-i])
	}

	// The reconstructed upper half must equal the conjugate reflection of
	// the stored lower half.
	for i := rp.SpectrumSize(); i < rp.Size(); i++ {
		mirror := full[rp.Size()-i]
		want := Conj[complex128](mirror)
		if full[i] != want {
			t.Errorf("bin %d: got %v, want conjugate reflection %v", i, full[i], want)
		}
	}
}

func TestRealPlanRoundTrip(t *testing.T) {
	for order := 3; order <= 12; order++ {
		rp, err := NewRealPlan[float64, complex128](order)
		if err != nil {
			t.Fatalf("order %d: NewRealPlan: %v", order, err)
		}

		x := makeRealNoise(rp.Size(), uint64(order)+17)
		spectrum := make([]complex128, rp.SpectrumSize())
		if err := rp.R2C(x, spectrum); err != nil {
			t.Fatalf("order %d: R2C: %v", order, err)
		}

		out := make([]float64, rp.Size())
		if err := rp.C2R(spectrum, out); err != nil {
			t.Fatalf("order %d: C2R: %v", order, err)
		}

		var maxErr float64
		n := float64(rp.Size())
		for i := range out {
			diff := out[i]/n - x[i]
			if math.Abs(diff) > maxErr {
				maxErr = math.Abs(diff)
			}
		}
		if maxErr > 1e-10 {
			t.Errorf("order %d: max round-trip error %g exceeds tolerance", order, maxErr)
		}
	}
}

func TestRealPlanSizes(t *testing.T) {
	rp, err := NewRealPlan[float32, complex64](5)
	if err != nil {
		t.Fatalf("NewRealPlan: %v", err)
	}
	if got, want := rp.Size(), 32; got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
	if got, want := rp.SpectrumSize(), 17; got != want {
		t.Errorf("SpectrumSize() = %d, want %d", got, want)
	}
}
