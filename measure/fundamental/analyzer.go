package fundamental

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-fundamental/dsp/frame"
)

// Analyzer runs frame-wise fundamental estimation over sample sources.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer returns an Analyzer for the given options.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	cfg := ApplyOptions(opts...)
	if cfg.FrameSize < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameSize, cfg.FrameSize)
	}
	return &Analyzer{cfg: cfg}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Run reads src to exhaustion and calls emit with one Record per complete
// frame, in frame order. A trailing partial frame is dropped.
//
// Source parameters are validated before the first read. Read, transform
// and emit errors stop the run and are returned wrapped.
func (a *Analyzer) Run(src frame.Source, emit func(Record) error) error {
	if src == nil {
		return errNilSource
	}
	size := a.cfg.FrameSize
	sampleRate := src.SampleRate()
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	channels := src.Channels()
	if channels < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	clock, err := frame.NewClock(sampleRate, size)
	if err != nil {
		return err
	}
	extractor, err := NewPeakExtractor(sampleRate, size)
	if err != nil {
		return err
	}
	seg, err := frame.NewSegmenter(src, size)
	if err != nil {
		return err
	}
	provider, err := a.cfg.NewProvider(size, channels)
	if err != nil {
		return fmt.Errorf("spectrum provider: %w", err)
	}
	if provider.Size() != size {
		return fmt.Errorf("%w: provider=%d frame=%d", ErrProviderSize, provider.Size(), size)
	}

	log := a.cfg.Logger.WithFields(logrus.Fields{
		"component":   "fundamental",
		"frame_size":  size,
		"sample_rate": sampleRate,
		"channels":    channels,
	})
	log.WithField("bucket_width", extractor.BucketWidth()).Debug("analysis started")

	samples := make([]float64, seg.FrameLen())
	spec := make([]complex128, size)
	records := 0
	for {
		f, err := seg.Next(samples)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if err := provider.Add(f.Samples); err != nil {
			return fmt.Errorf("frame %d: %w", f.Index, err)
		}
		ready, err := provider.TrySpectrum(spec)
		if err != nil {
			return fmt.Errorf("frame %d: %w", f.Index, err)
		}
		if !ready {
			continue
		}

		est := extractor.Extract(spec)
		rec := Record{
			Time:      clock.At(f.Index),
			Frequency: est.Frequency,
			Amplitude: est.Amplitude,
		}
		if err := emit(rec); err != nil {
			return fmt.Errorf("frame %d: %w", f.Index, err)
		}
		records++
	}

	log.WithField("records", records).Debug("analysis finished")
	return nil
}

// Analyze collects all records of src.
//
// If the run fails, Analyze returns the records produced before the failure
// together with the error. A failure during validation or on the first frame
// therefore returns a nil slice.
func (a *Analyzer) Analyze(src frame.Source) ([]Record, error) {
	var out []Record
	if src != nil && src.Length() > 0 && a.cfg.FrameSize > 0 {
		if ch := src.Channels(); ch > 0 {
			out = make([]Record, 0, src.Length()/int64(a.cfg.FrameSize*ch))
		}
	}
	err := a.Run(src, func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil && len(out) == 0 {
		return nil, err
	}
	return out, err
}

// Analyze is a one-shot helper for NewAnalyzer(opts...).Analyze(src).
func Analyze(src frame.Source, opts ...Option) ([]Record, error) {
	a, err := NewAnalyzer(opts...)
	if err != nil {
		return nil, err
	}
	return a.Analyze(src)
}
