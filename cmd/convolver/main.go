// Command convolver applies a WAV impulse response to a WAV signal using
// uniformly-partitioned frequency-domain convolution.
//
// Usage:
//
//	convolver <signal.wav> <filter.wav> <output.wav>
//
// Exits 0 on success, nonzero on channel-count or sample-rate mismatch
// between the signal and filter, or on any I/O failure.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-convolver/dsp/conv"
	"github.com/cwbudde/algo-convolver/internal/wavio"
)

const blockSize = 512

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: convolver <signal.wav> <filter.wav> <output.wav>\n")
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1), flag.Arg(2)); err != nil {
		fmt.Fprintf(os.Stderr, "convolver: %v\n", err)
		os.Exit(1)
	}
}

func run(signalPath, filterPath, outputPath string) error {
	signal, signalRate, err := wavio.Load(signalPath)
	if err != nil {
		return fmt.Errorf("loading signal: %w", err)
	}
	filter, filterRate, err := wavio.Load(filterPath)
	if err != nil {
		return fmt.Errorf("loading filter: %w", err)
	}

	if len(signal) != len(filter) {
		fmt.Printf("channel mismatch: signal = %d, filter = %d\n", len(signal), len(filter))
		return fmt.Errorf("channel mismatch")
	}
	if signalRate != filterRate {
		fmt.Printf("sample-rate mismatch: signal = %d, filter = %d\n", signalRate, filterRate)
		return fmt.Errorf("sample-rate mismatch")
	}

	fmt.Printf("Filter: %d channel(s), %d frames (%.2f sec) at %d Hz\n",
		len(filter), len(filter[0]), float64(len(filter[0]))/float64(filterRate), filterRate)
	fmt.Printf("Signal: %d channel(s), %d frames (%.2f sec) at %d Hz\n",
		len(signal), len(signal[0]), float64(len(signal[0]))/float64(signalRate), signalRate)

	normalizeToUnitPeak(filter)

	partitions, err := conv.PartitionChannels(filter, blockSize)
	if err != nil {
		return fmt.Errorf("partitioning filter: %w", err)
	}

	output := make([][]float64, len(signal))
	for ch := range signal {
		output[ch] = convolveChannel(signal[ch], partitions[ch])
	}

	normalizeToUnitPeak(output)

	if err := wavio.Save(outputPath, output, signalRate); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// convolveChannel filters one channel independently of the others,
// streaming it through a fresh convolver loaded with that channel's
// pre-computed filter partitions, in fixed-size blocks and zero-padding
// the final partial block.
func convolveChannel(signal []float64, partitions [][]float64) []float64 {
	c := conv.NewConvolver[float64, complex128](conv.StyleSave)
	if err := c.LoadFilter(partitions); err != nil {
		panic(fmt.Sprintf("convolver: loading filter: %v", err))
	}

	out := make([]float64, len(signal))
	block := make([]float64, blockSize)
	for i := 0; i < len(signal); i += blockSize {
		end := min(i+blockSize, len(signal))
		clear(block)
		copy(block, signal[i:end])
		c.Process(block)
		copy(out[i:end], block[:end-i])
	}
	return out
}

// normalizeToUnitPeak scales every channel of buf so its combined peak
// absolute sample is 1.0, mirroring the original tool's
// normalize_impulse/normalize_peak steps.
func normalizeToUnitPeak(buf [][]float64) {
	peak := peakAbs(buf)
	if peak == 0 {
		return
	}
	for _, channel := range buf {
		for i, v := range channel {
			channel[i] = v / peak
		}
	}
}

func peakAbs(buf [][]float64) float64 {
	var peak float64
	for _, channel := range buf {
		for _, v := range channel {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
	}
	return peak
}
