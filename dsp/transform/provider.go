package transform

import (
	"fmt"

	"github.com/cwbudde/algo-fundamental/dsp/buffer"
)

// Option configures a Provider.
type Option func(*Provider)

// WithBackend sets the FFT backend. Its size must match the provider size.
func WithBackend(b Backend) Option {
	return func(p *Provider) {
		if b != nil {
			p.backend = b
		}
	}
}

// Provider buffers interleaved frames and yields one spectrum per window.
type Provider struct {
	size     int
	channels int
	backend  Backend
	pending  *buffer.Buffer
}

// New returns a Provider producing spectra of size bins from input with the
// given channel count. The default backend is BackendByName(BackendAuto, size).
func New(size, channels int, opts ...Option) (*Provider, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: %d", ErrWindowTooSmall, size)
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	p := &Provider{
		size:     size,
		channels: channels,
		pending:  buffer.New(2 * size),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	if p.backend == nil {
		b, err := BackendByName(BackendAuto, size)
		if err != nil {
			return nil, err
		}
		p.backend = b
	}
	if p.backend.Size() != size {
		return nil, fmt.Errorf("%w: backend=%d provider=%d", ErrSizeMismatch, p.backend.Size(), size)
	}

	return p, nil
}

// Size returns the transform window size.
func (p *Provider) Size() int { return p.size }

// Channels returns the number of interleaved input channels.
func (p *Provider) Channels() int { return p.channels }

// Add queues interleaved samples. Each group of Channels samples is averaged
// into one window sample. len(samples) must be a multiple of Channels.
func (p *Provider) Add(samples []float64) error {
	if len(samples)%p.channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrChannelMismatch, len(samples), p.channels)
	}

	if p.channels == 1 {
		p.pending.Append(samples...)
		return nil
	}

	scale := 1 / float64(p.channels)
	for i := 0; i < len(samples); i += p.channels {
		sum := 0.0
		for _, v := range samples[i : i+p.channels] {
			sum += v
		}
		p.pending.Append(sum * scale)
	}
	return nil
}

// Ready reports whether a full window is queued.
func (p *Provider) Ready() bool {
	return p.pending.Len() >= p.size
}

// TrySpectrum transforms the oldest complete window into dst and consumes it.
// It returns false without touching dst when no full window has been
// accumulated since the last extraction.
func (p *Provider) TrySpectrum(dst []complex128) (bool, error) {
	if !p.Ready() {
		return false, nil
	}
	if len(dst) != p.size {
		return false, fmt.Errorf("%w: dst=%d size=%d", ErrSizeMismatch, len(dst), p.size)
	}

	err := p.backend.Forward(dst, p.pending.Peek(p.size))
	p.pending.Discard(p.size)
	if err != nil {
		return false, fmt.Errorf("transform: forward FFT: %w", err)
	}
	return true, nil
}
