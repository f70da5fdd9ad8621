package conv

import (
	"fmt"
	"math/bits"

	"github.com/cwbudde/algo-convolver/dsp/fft"
	"github.com/cwbudde/algo-convolver/internal/vecmath"
)

// OverlapAdd implements the overlap-add block assembly technique: each
// block is zero-padded to the analysis window with no retained history,
// and the inverse transform's overlapping tail is carried forward and
// added into the next block's output.
type OverlapAdd[F fft.Float, C fft.Complex] struct {
	blockSize int
	window    []F // length 2B; window[0:B) = block, window[B:2B) = 0
	scratch   []F // length 2B inverse scratch
	tail      []F // length B, carried from the previous block
	spectrum  []C // length K, reused across calls
	plan      *fft.RealPlan[F, C]
}

func newOverlapAdd[F fft.Float, C fft.Complex](blockSize int) (*OverlapAdd[F, C], error) {
	if blockSize <= 0 || blockSize&(blockSize-1) != 0 {
		return nil, fmt.Errorf("%w: block size must be a power of two, got %d", ErrInvalidBlockSize, blockSize)
	}
	order := bits.Len(uint(blockSize))
	plan, err := fft.NewRealPlan[F, C](order)
	if err != nil {
		return nil, err
	}
	return &OverlapAdd[F, C]{
		blockSize: blockSize,
		window:    make([]F, 2*blockSize),
		scratch:   make([]F, 2*blockSize),
		tail:      make([]F, blockSize),
		spectrum:  make([]C, plan.SpectrumSize()),
		plan:      plan,
	}, nil
}

func (o *OverlapAdd[F, C]) BlockSize() int            { return o.blockSize }
func (o *OverlapAdd[F, C]) SpectrumSize() int         { return len(o.spectrum) }
func (o *OverlapAdd[F, C]) Plan() *fft.RealPlan[F, C] { return o.plan }

// Process zero-pads block into the analysis window, forward-transforms,
// hands the spectrum to callback, inverse transforms the result, adds it
// to the carried tail, emits the sum into block, and stores the new tail.
func (o *OverlapAdd[F, C]) Process(block []F, callback func(spectrum []C)) {
	b := o.blockSize
	if len(block) != b {
		panic(fmt.Sprintf("conv: overlap-add block length %d != block size %d", len(block), b))
	}

	Copy(o.window[:b], block)
	clear(o.window[b:])

	if err := o.plan.R2C(o.window, o.spectrum); err != nil {
		panic(err)
	}

	callback(o.spectrum)

	if err := o.plan.C2R(o.spectrum, o.scratch); err != nil {
		panic(err)
	}

	vecmath.AddBlock(block, o.scratch[:b], o.tail)
	Copy(o.tail, o.scratch[b:])
}

func (o *OverlapAdd[F, C]) Reset() {
	clear(o.window)
	clear(o.tail)
}

// NumOverlaps returns the smallest number of transform passes whose
// combined length covers B + L − 1, for a filter of length filterLen
// convolved in blocks of blockSize: ⌈(filterLen + blockSize − 1) / blockSize⌉.
func NumOverlaps(blockSize, filterLen int) int {
	if blockSize <= 0 {
		panic("conv: blockSize must be positive")
	}
	return (filterLen + 2*blockSize - 2) / blockSize
}
