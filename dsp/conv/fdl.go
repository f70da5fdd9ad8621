package conv

import "github.com/cwbudde/algo-convolver/dsp/fft"

// FDL is the frequency-domain delay line: a fixed-shape [P, K] ring of the
// most recent P input spectra. Head points at the slot that will be
// overwritten by the next block; it is never rotated into, only indexed
// around.
type FDL[C fft.Complex] struct {
	rows [][]C
	head int
}

func newFDL[C fft.Complex](partitions, bins int) *FDL[C] {
	rows := make([][]C, partitions)
	for i := range rows {
		rows[i] = make([]C, bins)
	}
	return &FDL[C]{rows: rows}
}

// Partitions returns P.
func (d *FDL[C]) Partitions() int { return len(d.rows) }

// Bins returns K.
func (d *FDL[C]) Bins() int {
	if len(d.rows) == 0 {
		return 0
	}
	return len(d.rows[0])
}

// Head returns the index of the slot the next Write fills. Between a Write
// and the following Advance, that slot holds the most recently written
// spectrum.
func (d *FDL[C]) Head() int { return d.head }

// Row returns the spectrum stored at the given absolute index.
func (d *FDL[C]) Row(index int) []C { return d.rows[index] }

// Write copies spectrum into the row at Head, without advancing Head.
func (d *FDL[C]) Write(spectrum []C) {
	Copy(d.rows[d.head], spectrum)
}

// Advance moves Head to the next slot, mod Partitions().
func (d *FDL[C]) Advance() {
	d.head = (d.head + 1) % len(d.rows)
}

// Reset zeroes every row and resets Head to 0.
func (d *FDL[C]) Reset() {
	for _, row := range d.rows {
		clear(row)
	}
	d.head = 0
}
