package conv

import (
	"github.com/cwbudde/algo-convolver/dsp/fft"
	"github.com/cwbudde/algo-convolver/internal/vecmath"
)

// Copy copies src into dst. Panics if the lengths differ.
func Copy[T any](dst, src []T) {
	if len(dst) != len(src) {
		panic("conv: slice length mismatch")
	}
	copy(dst, src)
}

// Fill sets every element of dst to v.
func Fill[T any](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// ShiftLeft moves x[n:] to x[0:], leaving x[len(x)-n:] undefined (it is
// overwritten by the caller before being read).
func ShiftLeft[F fft.Float](x []F, n int) {
	copy(x, x[n:])
}

// Scale multiplies every bin of dst by the real scalar factor, in place.
func Scale[C fft.Complex](dst []C, factor float64) {
	vecmath.ScaleBlockInPlace(dst, factor)
}

// MultiplySumColumns accumulates
// acc[k] += Σ_r fdl.Row((Head()−r) mod P)[k] · filter[r][k]
// over the ring, pairing the newest FDL row with filter partition 0, the
// next-newest with partition 1, and so on, per the ring-aligned ordering of
// the partitioned convolver.
func MultiplySumColumns[C fft.Complex](acc []C, fdl *FDL[C], filter [][]C) {
	p := fdl.Partitions()
	head := fdl.Head()
	for r := 0; r < p; r++ {
		row := ((head-r)%p + p) % p
		vecmath.MulAccumulate(acc, fdl.Row(row), filter[r])
	}
}
