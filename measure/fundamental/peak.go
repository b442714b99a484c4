package fundamental

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fundamental/dsp/core"
	"github.com/cwbudde/algo-fundamental/dsp/spectrum"
)

// Estimate is the dominant bin of one spectrum.
type Estimate struct {
	// Bin is the peak bin index, or -1 if there was nothing to select.
	Bin int
	// Frequency is Bin*BucketWidth in Hz, or 0 for Bin <= 0.
	Frequency float64
	// Magnitude is |X[Bin]| (linear).
	Magnitude float64
	// Amplitude is 20*log10(Magnitude), or -Inf when Frequency is 0.
	Amplitude float64
}

// PeakExtractor maps a complex spectrum to its dominant frequency bin.
// It owns a magnitude scratch buffer and is not safe for concurrent use.
type PeakExtractor struct {
	nyquist int
	size    int
	mag     []float64
}

// NewPeakExtractor returns an extractor for spectra of spectrumSize bins
// computed at sampleRate Hz.
func NewPeakExtractor(sampleRate, spectrumSize int) (*PeakExtractor, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if spectrumSize < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameSize, spectrumSize)
	}
	return &PeakExtractor{
		nyquist: sampleRate / 2,
		size:    spectrumSize,
		mag:     make([]float64, spectrum.UsableBins(spectrumSize)),
	}, nil
}

// BucketWidth returns the width in Hz of one bin of a spectrum of the
// configured size.
func (e *PeakExtractor) BucketWidth() float64 {
	return bucketWidth(e.nyquist, spectrum.UsableBins(e.size))
}

// Extract selects the peak bin over the lower len(spec)/2 bins of spec.
// The upper half mirrors the lower half and is ignored.
func (e *PeakExtractor) Extract(spec []complex128) Estimate {
	usable := spectrum.UsableBins(len(spec))
	if usable == 0 {
		return Estimate{Bin: -1, Amplitude: math.Inf(-1)}
	}

	if cap(e.mag) < usable {
		e.mag = make([]float64, usable)
	}
	mag := e.mag[:usable]
	spectrum.MagnitudeInto(mag, spec)

	bin := spectrum.PeakBin(mag)
	if bin < 0 {
		return Estimate{Bin: -1, Amplitude: math.Inf(-1)}
	}

	est := Estimate{Bin: bin, Magnitude: mag[bin], Amplitude: math.Inf(-1)}
	if bin > 0 {
		est.Frequency = float64(bin) * bucketWidth(e.nyquist, usable)
	}
	if est.Frequency != 0 {
		est.Amplitude = core.LinearToDB(est.Magnitude)
	}
	return est
}

func bucketWidth(nyquist, usable int) float64 {
	if usable <= 0 {
		return 0
	}
	return float64(nyquist) / float64(usable)
}
