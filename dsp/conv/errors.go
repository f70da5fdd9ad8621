package conv

import "errors"

var (
	// ErrEmptyImpulseResponse is returned when Partition or LoadFilter is
	// given an empty impulse response.
	ErrEmptyImpulseResponse = errors.New("conv: empty impulse response")

	// ErrInvalidBlockSize is returned when a block size is zero, negative,
	// or not a power of two.
	ErrInvalidBlockSize = errors.New("conv: invalid block size")

	// ErrShapeMismatch is returned when filter partitions have inconsistent
	// lengths, or the channels of a multi-channel impulse differ in length.
	ErrShapeMismatch = errors.New("conv: shape mismatch")
)
