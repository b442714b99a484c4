package fundamental

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-fundamental/dsp/core"
	"github.com/cwbudde/algo-fundamental/dsp/transform"
)

// SpectrumProvider turns frames into complex spectra of Size bins.
//
// Add queues one frame of interleaved samples. TrySpectrum writes a spectrum
// into dst and reports true once a full window has been queued since the
// last extraction.
type SpectrumProvider interface {
	Size() int
	Add(samples []float64) error
	TrySpectrum(dst []complex128) (bool, error)
}

// ProviderFactory creates a SpectrumProvider for size bins over channels
// interleaved channels.
type ProviderFactory func(size, channels int) (SpectrumProvider, error)

// TransformProvider returns a ProviderFactory backed by transform.New using
// the named FFT backend.
func TransformProvider(backend string) ProviderFactory {
	return func(size, channels int) (SpectrumProvider, error) {
		b, err := transform.BackendByName(backend, size)
		if err != nil {
			return nil, err
		}
		return transform.New(size, channels, transform.WithBackend(b))
	}
}

// Config holds Analyzer parameters.
type Config struct {
	FrameSize   int
	Backend     string
	NewProvider ProviderFactory
	Logger      logrus.FieldLogger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 1024-sample frames on the automatic FFT backend.
func DefaultConfig() Config {
	return Config{
		FrameSize: core.DefaultProcessorConfig().FrameSize,
		Backend:   transform.BackendAuto,
	}
}

// WithFrameSize sets the samples per channel in one frame. The value is
// validated by NewAnalyzer.
func WithFrameSize(n int) Option {
	return func(cfg *Config) {
		cfg.FrameSize = n
	}
}

// WithBackendName selects the FFT backend by name (see
// transform.BackendByName). It is ignored when a provider factory is set.
func WithBackendName(name string) Option {
	return func(cfg *Config) {
		cfg.Backend = name
	}
}

// WithProviderFactory replaces the FFT-backed spectrum provider.
func WithProviderFactory(f ProviderFactory) Option {
	return func(cfg *Config) {
		cfg.NewProvider = f
	}
}

// WithLogger sets the debug logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.NewProvider == nil {
		cfg.NewProvider = TransformProvider(cfg.Backend)
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}
	return cfg
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
