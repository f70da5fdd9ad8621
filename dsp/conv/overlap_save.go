package conv

import (
	"fmt"
	"math/bits"

	"github.com/cwbudde/algo-convolver/dsp/fft"
)

// OverlapSave implements the overlap-save block assembly technique: a
// persistent window retains the previous block, so the current block's
// linear convolution falls entirely within the save half of the inverse
// transform.
type OverlapSave[F fft.Float, C fft.Complex] struct {
	blockSize int
	window    []F // length 2B; window[0:B) is the previous block
	scratch   []F // length 2B inverse scratch
	spectrum  []C // length K, reused across calls
	plan      *fft.RealPlan[F, C]
}

func newOverlapSave[F fft.Float, C fft.Complex](blockSize int) (*OverlapSave[F, C], error) {
	if blockSize <= 0 || blockSize&(blockSize-1) != 0 {
		return nil, fmt.Errorf("%w: block size must be a power of two, got %d", ErrInvalidBlockSize, blockSize)
	}
	order := bits.Len(uint(blockSize)) // log2(2*blockSize)
	plan, err := fft.NewRealPlan[F, C](order)
	if err != nil {
		return nil, err
	}
	return &OverlapSave[F, C]{
		blockSize: blockSize,
		window:    make([]F, 2*blockSize),
		scratch:   make([]F, 2*blockSize),
		spectrum:  make([]C, plan.SpectrumSize()),
		plan:      plan,
	}, nil
}

func (o *OverlapSave[F, C]) BlockSize() int            { return o.blockSize }
func (o *OverlapSave[F, C]) SpectrumSize() int         { return len(o.spectrum) }
func (o *OverlapSave[F, C]) Plan() *fft.RealPlan[F, C] { return o.plan }

// Process shifts the window left by B, copies block into the vacated upper
// half, forward-transforms, hands the spectrum to callback, inverse
// transforms the result, and writes the save half back into block.
func (o *OverlapSave[F, C]) Process(block []F, callback func(spectrum []C)) {
	b := o.blockSize
	if len(block) != b {
		panic(fmt.Sprintf("conv: overlap-save block length %d != block size %d", len(block), b))
	}

	ShiftLeft(o.window, b)
	Copy(o.window[b:], block)

	if err := o.plan.R2C(o.window, o.spectrum); err != nil {
		panic(err)
	}

	callback(o.spectrum)

	if err := o.plan.C2R(o.spectrum, o.scratch); err != nil {
		panic(err)
	}

	Copy(block, o.scratch[b:])
}

func (o *OverlapSave[F, C]) Reset() {
	clear(o.window)
}
