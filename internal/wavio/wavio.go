// Package wavio adapts github.com/Foxenfurter/foxAudioLib's WAV
// decoder/encoder to the channel-major [][]float64 shape the convolution
// engine's CLI harness reads and writes. It is the only package in this
// module that performs file I/O; dsp/fft and dsp/conv never import it.
package wavio

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Foxenfurter/foxAudioLib/foxAudioDecoder/foxWavReader"
	"github.com/Foxenfurter/foxAudioLib/foxAudioEncoder/foxWavEncoder"
)

// Load reads a WAV file and returns its samples as one []float64 per
// channel, plus the file's sample rate.
func Load(path string) (samples [][]float64, sampleRate int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: open %s: %w", path, err)
	}
	defer f.Close()

	return decode(f, path)
}

func decode(r io.Reader, path string) ([][]float64, int, error) {
	var reader foxWavReader.WavReader
	reader.Input = r

	if err := reader.DecodeWavHeader(); err != nil {
		return nil, 0, fmt.Errorf("wavio: decode header of %s: %w", path, err)
	}

	channels := make([][]float64, reader.NumChannels)

	samplesCh := make(chan [][]float64, 64)
	var decodeErr error
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(samplesCh)
		if err := reader.DecodeInput(samplesCh); err != nil {
			decodeErr = err
		}
	}()

	for chunk := range samplesCh {
		for c := range channels {
			if c < len(chunk) {
				channels[c] = append(channels[c], chunk[c]...)
			}
		}
	}
	wg.Wait()

	if decodeErr != nil {
		return nil, 0, fmt.Errorf("wavio: decode %s: %w", path, decodeErr)
	}

	return channels, reader.SampleRate, nil
}

// Save writes samples (one []float64 per channel, all the same length) to
// a 24-bit PCM WAV file at the given sample rate.
func Save(path string, samples [][]float64, sampleRate int) error {
	if len(samples) == 0 {
		return fmt.Errorf("wavio: no channels to write")
	}

	const bitDepth = 24
	numFrames := len(samples[0])

	enc := foxWavEncoder.FoxEncoder{
		SampleRate:  sampleRate,
		BitDepth:    bitDepth,
		NumChannels: len(samples),
		Size:        int64(numFrames) * int64(len(samples)) * int64(bitDepth/8),
	}

	header, err := enc.EncodeHeader()
	if err != nil {
		return fmt.Errorf("wavio: encode header: %w", err)
	}

	data, err := enc.EncodeData(samples)
	if err != nil {
		return fmt.Errorf("wavio: encode data: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(header); err != nil {
		return fmt.Errorf("wavio: write header to %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("wavio: write data to %s: %w", path, err)
	}
	return nil
}
