package conv

import (
	"fmt"

	"github.com/cwbudde/algo-convolver/dsp/fft"
)

// Convolver is a uniformly-partitioned frequency-domain convolver. It
// drives an [Overlap] strategy over an [FDL] of past input spectra,
// multiply-accumulating against a caller-supplied partitioned filter on
// every block.
type Convolver[F fft.Float, C fft.Complex] struct {
	style     OverlapStyle
	overlap   Overlap[F, C]
	blockSize int
	filter    [][]C // [P][K]
	fdl       *FDL[C]
	accum     []C // length K

	spectrumFn func(spectrum []C) // built on the first Process call, then reused
}

// NewConvolver creates a Convolver that will use the given Overlap
// strategy once a filter is loaded. The convolver performs no work until
// LoadFilter is called.
func NewConvolver[F fft.Float, C fft.Complex](style OverlapStyle) *Convolver[F, C] {
	return &Convolver[F, C]{style: style}
}

// LoadFilter validates and transforms a [P][B] matrix of time-domain
// filter partitions (as produced by [Partition]), allocating every buffer
// Process will need. B must be a power of two and every partition must
// have the same length.
func (c *Convolver[F, C]) LoadFilter(partitions [][]F) error {
	if len(partitions) == 0 {
		return ErrEmptyImpulseResponse
	}

	blockSize := len(partitions[0])
	if blockSize == 0 || blockSize&(blockSize-1) != 0 {
		return fmt.Errorf("%w: partition length must be a power of two, got %d", ErrInvalidBlockSize, blockSize)
	}
	for i, row := range partitions {
		if len(row) != blockSize {
			return fmt.Errorf("%w: partition %d has length %d, want %d", ErrShapeMismatch, i, len(row), blockSize)
		}
	}

	var ov Overlap[F, C]
	var err error
	switch c.style {
	case StyleAdd:
		ov, err = newOverlapAdd[F, C](blockSize)
	default:
		ov, err = newOverlapSave[F, C](blockSize)
	}
	if err != nil {
		return err
	}

	plan := ov.Plan()
	k := plan.SpectrumSize()
	p := len(partitions)

	// Each impulse partition is placed in the lower half of the 2B window.
	// A partition's DFT is then the spectrum of an impulse response with no
	// net circular shift, so convolving against it leaves the overlap
	// layer's save/tail half aligned with the un-delayed output: shifting
	// the partition into the upper half instead multiplies every spectrum
	// by (-1)^k, a circular shift of B samples that would pull the output
	// back by one whole block.
	filter := make([][]C, p)
	scratch := make([]F, 2*blockSize)
	for i, row := range partitions {
		clear(scratch)
		copy(scratch[:blockSize], row)
		filter[i] = make([]C, k)
		if err := plan.R2C(scratch, filter[i]); err != nil {
			return fmt.Errorf("conv: filter partition %d transform failed: %w", i, err)
		}
	}

	c.overlap = ov
	c.blockSize = blockSize
	c.filter = filter
	c.fdl = newFDL[C](p, k)
	c.accum = make([]C, k)
	return nil
}

// Process convolves block in place. len(block) must equal BlockSize();
// calling Process before LoadFilter, or with a mismatched block, is a
// programmer error and panics.
func (c *Convolver[F, C]) Process(block []F) {
	if c.overlap == nil {
		panic("conv: Process called before LoadFilter")
	}
	if len(block) != c.blockSize {
		panic(fmt.Sprintf("conv: block length %d != configured block size %d", len(block), c.blockSize))
	}

	if c.spectrumFn == nil {
		c.spectrumFn = func(spectrum []C) {
			normFactor := 1.0 / float64(2*c.blockSize)
			Scale(spectrum, normFactor)
			c.fdl.Write(spectrum)

			Fill(c.accum, 0)
			MultiplySumColumns(c.accum, c.fdl, c.filter)
			c.fdl.Advance()

			Copy(spectrum, c.accum)
		}
	}
	c.overlap.Process(block, c.spectrumFn)
}

// BlockSize returns B, or 0 if no filter has been loaded.
func (c *Convolver[F, C]) BlockSize() int { return c.blockSize }

// Partitions returns P, or 0 if no filter has been loaded.
func (c *Convolver[F, C]) Partitions() int {
	if c.fdl == nil {
		return 0
	}
	return c.fdl.Partitions()
}

// Reset clears all internal state (the FDL and the Overlap layer's window
// and/or tail) without discarding the loaded filter.
func (c *Convolver[F, C]) Reset() {
	if c.overlap != nil {
		c.overlap.Reset()
	}
	if c.fdl != nil {
		c.fdl.Reset()
	}
}
