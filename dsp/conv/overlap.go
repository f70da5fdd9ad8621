package conv

import "github.com/cwbudde/algo-convolver/dsp/fft"

// Overlap couples block-based time-domain I/O to the FFT's frequency-domain
// workspace. Process assembles a 2B-sized analysis window from block,
// forward-transforms it, invokes callback with a mutable view of the
// resulting spectrum, inverse-transforms whatever callback left behind, and
// writes B time-domain samples back into block. [OverlapSave] and
// [OverlapAdd] differ only in how the window is assembled and how the
// inverse result is emitted.
type Overlap[F fft.Float, C fft.Complex] interface {
	Process(block []F, callback func(spectrum []C))

	// BlockSize returns B.
	BlockSize() int

	// SpectrumSize returns K = B+1.
	SpectrumSize() int

	// Plan returns the real FFT plan of size 2B used internally, so callers
	// (the partitioned convolver) can transform filter partitions with it
	// instead of constructing a second plan of the same size.
	Plan() *fft.RealPlan[F, C]

	Reset()
}

// OverlapStyle selects which Overlap implementation a Convolver drives.
type OverlapStyle int

const (
	// StyleSave selects Overlap-Save.
	StyleSave OverlapStyle = iota
	// StyleAdd selects Overlap-Add.
	StyleAdd
)
