package transform

import (
	"fmt"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
)

// Backend names accepted by BackendByName.
const (
	BackendAuto    = "auto"
	BackendAlgoFFT = "algofft"
	BackendGoDSP   = "godsp"
)

// Backend computes the full complex spectrum of exactly Size real samples.
//
// dst[0:Size/2] holds the non-negative frequencies in ascending order and the
// remainder their mirrored negative-frequency image.
type Backend interface {
	Size() int
	Forward(dst []complex128, src []float64) error
}

// AlgoFFT is a Backend over a precomputed algo-fft plan. Plans are only
// created for power-of-two sizes.
type AlgoFFT struct {
	plan *algofft.Plan[complex128]
	in   []complex128
}

// NewAlgoFFT plans a forward transform of size samples.
func NewAlgoFFT(size int) (*AlgoFFT, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: %d", ErrWindowTooSmall, size)
	}
	if !isPowerOf2(size) {
		return nil, fmt.Errorf("transform: algo-fft backend requires a power-of-two size: %d", size)
	}
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}
	return &AlgoFFT{plan: plan, in: make([]complex128, size)}, nil
}

// Size returns the transform size.
func (a *AlgoFFT) Size() int { return len(a.in) }

// Forward transforms src into dst.
func (a *AlgoFFT) Forward(dst []complex128, src []float64) error {
	if len(src) != len(a.in) || len(dst) != len(a.in) {
		return fmt.Errorf("%w: src=%d dst=%d size=%d", ErrSizeMismatch, len(src), len(dst), len(a.in))
	}
	for i, v := range src {
		a.in[i] = complex(v, 0)
	}
	return a.plan.Forward(dst, a.in)
}

// GoDSP is a Backend over go-dsp's real-input FFT. It accepts any size.
type GoDSP struct {
	size int
}

// NewGoDSP returns a go-dsp backend for size samples.
func NewGoDSP(size int) (*GoDSP, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: %d", ErrWindowTooSmall, size)
	}
	return &GoDSP{size: size}, nil
}

// Size returns the transform size.
func (g *GoDSP) Size() int { return g.size }

// Forward transforms src into dst.
func (g *GoDSP) Forward(dst []complex128, src []float64) error {
	if len(src) != g.size || len(dst) != g.size {
		return fmt.Errorf("%w: src=%d dst=%d size=%d", ErrSizeMismatch, len(src), len(dst), g.size)
	}
	copy(dst, fft.FFTReal(src))
	return nil
}

// BackendByName creates the named backend for size samples. BackendAuto
// (and the empty name) selects algo-fft for power-of-two sizes and go-dsp
// otherwise.
func BackendByName(name string, size int) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendAuto:
		if isPowerOf2(size) {
			return NewAlgoFFT(size)
		}
		return NewGoDSP(size)
	case BackendAlgoFFT:
		return NewAlgoFFT(size)
	case BackendGoDSP:
		return NewGoDSP(size)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
