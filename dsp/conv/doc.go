// Package conv implements uniformly-partitioned frequency-domain
// convolution: a long impulse response is split into equal-length
// partitions, each transformed once at load time, and convolved against a
// streaming signal block by block with bounded per-block work.
//
// [Convolver] drives an [Overlap] strategy (Overlap-Save or Overlap-Add)
// over a frequency-domain delay line ([FDL]) of past input spectra:
//
//	c := conv.NewConvolver[float64, complex128](conv.StyleSave)
//	if err := c.LoadFilter(partitions); err != nil { ... }
//	c.Process(block) // block is convolved in place
//
// Filter partitions are produced ahead of time with [Partition]:
//
//	partitions, err := conv.Partition(impulse, blockSize)
//
// Process performs no allocation and no I/O; it is safe to call from a
// real-time audio thread. A single [Convolver] is not safe for concurrent
// use, but independent instances (e.g. one per channel) require no
// coordination.
package conv
