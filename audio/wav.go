package audio

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func decodeWAV(r io.ReadSeeker) (*File, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: wav header", ErrInvalidFile)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: read PCM data: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, fmt.Errorf("%w: wav: %d channels", ErrInvalidFile, channels)
	}
	data := buf.Data
	// Drop a trailing partial channel group left by a truncated data chunk.
	data = data[:len(data)-len(data)%channels]

	samples := make([]float64, len(data))
	toFloat(samples, data, bitDepth)

	return &File{
		Source:   NewSliceSource(samples, int(dec.SampleRate), channels),
		format:   FormatWAV,
		bitDepth: bitDepth,
	}, nil
}

// toFloat scales integer PCM to [-1, 1). 8-bit WAV data is unsigned.
func toFloat(dst []float64, src []int, bitDepth int) {
	if bitDepth == 8 {
		for i, v := range src {
			dst[i] = float64(v-128) / 128
		}
		return
	}
	scale := 1 / math.Ldexp(1, bitDepth-1)
	for i, v := range src {
		dst[i] = float64(v) * scale
	}
}

// WriteWAV encodes interleaved samples in [-1, 1] as integer PCM. Values
// outside that range are clipped. bitDepth must be 16, 24 or 32.
func WriteWAV(w io.WriteSeeker, samples []float64, sampleRate, channels, bitDepth int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wav sample rate must be > 0: %d", sampleRate)
	}
	if channels <= 0 {
		return fmt.Errorf("wav channels must be > 0: %d", channels)
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("wav sample count %d is not a multiple of %d channels", len(samples), channels)
	}
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("wav bit depth must be 16, 24 or 32: %d", bitDepth)
	}

	peak := math.Ldexp(1, bitDepth-1) - 1
	data := make([]int, len(samples))
	for i, v := range samples {
		v = math.Max(-1, math.Min(1, v))
		data[i] = int(math.Round(v * peak))
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize: %w", err)
	}
	return nil
}
