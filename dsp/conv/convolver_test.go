package conv

import "testing"

func TestConvolverIdentityImpulse(t *testing.T) {
	const blockSize = 256
	const partitions = 10

	impulse := make([]float64, 1)
	impulse[0] = 1

	parts, err := Partition(impulse, blockSize)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	// Pad out to the requested partition count with zero partitions so the
	// FDL ring has the advertised depth.
	for len(parts) < partitions {
		parts = append(parts, make([]float64, blockSize))
	}

	c := NewConvolver[float64, complex128](StyleSave)
	if err := c.LoadFilter(parts); err != nil {
		t.Fatalf("LoadFilter: %v", err)
	}

	signal := makeNoiseSignal(blockSize*4, 5)
	out := make([]float64, len(signal))
	for i := 0; i < len(signal); i += blockSize {
		block := make([]float64, blockSize)
		copy(block, signal[i:i+blockSize])
		c.Process(block)
		copy(out[i:i+blockSize], block)
	}

	// After the first block, an identity impulse must reproduce the input
	// exactly (within rounding).
	if diff := maxAbsDiff(out[blockSize:], signal[blockSize:]); diff > 1e-5 {
		t.Errorf("identity impulse: max abs diff after first block %g, want <= 1e-5", diff)
	}
}

func TestConvolverMatchesDirectConvolution(t *testing.T) {
	const blockSize = 128
	filterLens := []int{127, 128, 129, 130, 256, 512, 1024}

	for _, filterLen := range filterLens {
		impulse := makeNoiseSignal(filterLen, uint64(filterLen))
		signalBlocks := 8 + (filterLen+blockSize-1)/blockSize
		signal := makeNoiseSignal(blockSize*signalBlocks, uint64(filterLen)+1000)

		partitions, err := Partition(impulse, blockSize)
		if err != nil {
			t.Fatalf("filterLen %d: Partition: %v", filterLen, err)
		}

		c := NewConvolver[float64, complex128](StyleSave)
		if err := c.LoadFilter(partitions); err != nil {
			t.Fatalf("filterLen %d: LoadFilter: %v", filterLen, err)
		}

		out := make([]float64, len(signal))
		for i := 0; i < len(signal); i += blockSize {
			block := make([]float64, blockSize)
			copy(block, signal[i:i+blockSize])
			c.Process(block)
			copy(out[i:i+blockSize], block)
		}

		want := directConvolve(signal, impulse)

		p := c.Partitions()
		warmup := p * blockSize
		if warmup >= len(out) {
			t.Fatalf("filterLen %d: warmup %d exceeds output length %d", filterLen, warmup, len(out))
		}

		if diff := maxAbsDiff(out[warmup:], want[warmup:len(out)]); diff > 1e-5 {
			t.Errorf("filterLen %d: max abs diff after warmup %g, want <= 1e-5", filterLen, diff)
		}
	}
}

func TestConvolverPanicsOnBadBlockSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched block size")
		}
	}()

	partitions, err := Partition(makeNoiseSignal(64, 1), 64)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	c := NewConvolver[float64, complex128](StyleSave)
	if err := c.LoadFilter(partitions); err != nil {
		t.Fatalf("LoadFilter: %v", err)
	}
	c.Process(make([]float64, 32))
}

func TestLoadFilterRejectsNonPowerOfTwo(t *testing.T) {
	c := NewConvolver[float64, complex128](StyleSave)
	bad := [][]float64{make([]float64, 100)}
	if err := c.LoadFilter(bad); err == nil {
		t.Fatal("expected error for non-power-of-two partition length")
	}
}

func TestLoadFilterRejectsShapeMismatch(t *testing.T) {
	c := NewConvolver[float64, complex128](StyleSave)
	bad := [][]float64{make([]float64, 64), make([]float64, 32)}
	if err := c.LoadFilter(bad); err == nil {
		t.Fatal("expected error for inconsistent partition lengths")
	}
}
