package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fundamental/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{cfg: core.ApplyProcessorOptions(opts...)}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Samples returns the number of samples per channel in seconds of signal at
// the configured sample rate, rounded to the nearest whole sample.
func (g *Generator) Samples(seconds float64) (int, error) {
	if seconds <= 0 {
		return 0, fmt.Errorf("duration must be > 0: %f", seconds)
	}
	return int(math.Round(seconds * g.cfg.SampleRate)), nil
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Silence generates samples zeros.
func (g *Generator) Silence(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("silence samples must be > 0: %d", samples)
	}
	return make([]float64, samples), nil
}

// Spread copies a mono signal into every channel of an interleaved buffer.
func Spread(mono []float64, channels int) ([]float64, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("channels must be > 0: %d", channels)
	}
	if channels == 1 {
		return append([]float64(nil), mono...), nil
	}
	out := make([]float64, len(mono)*channels)
	for i, v := range mono {
		for c := range channels {
			out[i*channels+c] = v
		}
	}
	return out, nil
}
