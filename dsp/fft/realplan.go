package fft

import "fmt"

// RealPlan wraps an inner complex [Plan] of size N, exposing forward and
// backward transforms over real time-domain data. Only the N/2+1
// non-redundant bins of a real spectrum are stored; the remaining bins are
// the conjugate reflection of the stored half.
type RealPlan[F Float, C Complex] struct {
	size         int
	spectrumSize int
	inner        *Plan[C]
	scratch      []C
}

// NewRealPlan constructs a plan whose time-domain length is N = 2^order and
// whose spectrum length is N/2+1.
func NewRealPlan[F Float, C Complex](order int) (*RealPlan[F, C], error) {
	inner, err := NewPlan[C](order)
	if err != nil {
		return nil, err
	}
	n := inner.Size()
	return &RealPlan[F, C]{
		size:         n,
		spectrumSize: n/2 + 1,
		inner:        inner,
		scratch:      make([]C, n),
	}, nil
}

// Size returns the time-domain length N.
func (p *RealPlan[F, C]) Size() int { return p.size }

// SpectrumSize returns N/2+1.
func (p *RealPlan[F, C]) SpectrumSize() int { return p.spectrumSize }

// R2C copies in (length N) into the complex workspace, runs the forward
// transform, and writes the Hermitian half [0, N/2+1) to out. No
// normalization is applied.
func (p *RealPlan[F, C]) R2C(in []F, out []C) error {
	if len(in) != p.size {
		return fmt.Errorf("%w: time-domain size %d, got %d", ErrLengthMismatch, p.size, len(in))
	}
	if len(out) != p.spectrumSize {
		return fmt.Errorf("%w: spectrum size %d, got %d", ErrLengthMismatch, p.spectrumSize, len(out))
	}

	for i, v := range in {
		p.scratch[i] = MkComplex[C](float64(v), 0)
	}

	if err := p.inner.Transform(p.scratch, Forward); err != nil {
		return err
	}
	copy(out, p.scratch[:p.spectrumSize])
	return nil
}

// C2R reconstructs the upper half of the spectrum by conjugate reflection
// of in (length N/2+1), runs the backward transform, and writes the real
// parts to out (length N). No normalization is applied; callers divide by
// N themselves.
func (p *RealPlan[F, C]) C2R(in []C, out []F) error {
	if len(in) != p.spectrumSize {
		return fmt.Errorf("%w: spectrum size %d, got %d", ErrLengthMismatch, p.spectrumSize, len(in))
	}
	if len(out) != p.size {
		return fmt.Errorf("%w: time-domain size %d, got %d", ErrLengthMismatch, p.size, len(out))
	}

	copy(p.scratch[:p.spectrumSize], in)
	for i := p.spectrumSize; i < p.size; i++ {
		p.scratch[i] = Conj[C](p.scratch[p.size-i])
	}

	if err := p.inner.Transform(p.scratch, Backward); err != nil {
		return err
	}
	for i := range out {
		out[i] = MkFloat[F](Real(p.scratch[i]))
	}
	return nil
}
