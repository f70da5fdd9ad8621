package conv

import (
	"fmt"

	"github.com/cwbudde/algo-convolver/dsp/fft"
)

// Partition splits a single-channel impulse response into P = ⌈L/B⌉
// contiguous partitions of length blockSize, zero-padding the last
// partition if L is not a multiple of blockSize. The result is ready to
// pass to [Convolver.LoadFilter].
func Partition[F fft.Float](impulse []F, blockSize int) ([][]F, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBlockSize, blockSize)
	}
	if len(impulse) == 0 {
		return nil, ErrEmptyImpulseResponse
	}

	p := (len(impulse) + blockSize - 1) / blockSize
	out := make([][]F, p)
	for i := range out {
		row := make([]F, blockSize)
		start := i * blockSize
		end := min(start+blockSize, len(impulse))
		copy(row, impulse[start:end])
		out[i] = row
	}
	return out, nil
}

// PartitionChannels applies [Partition] independently to each channel of a
// multi-channel impulse response, producing a [channels][P][B] matrix.
// Every channel must have the same length.
func PartitionChannels[F fft.Float](impulse [][]F, blockSize int) ([][][]F, error) {
	if len(impulse) == 0 {
		return nil, ErrEmptyImpulseResponse
	}

	want := len(impulse[0])
	out := make([][][]F, len(impulse))
	for c, channel := range impulse {
		if len(channel) != want {
			return nil, fmt.Errorf("%w: channel %d has length %d, want %d", ErrShapeMismatch, c, len(channel), want)
		}
		partitions, err := Partition(channel, blockSize)
		if err != nil {
			return nil, err
		}
		out[c] = partitions
	}
	return out, nil
}
