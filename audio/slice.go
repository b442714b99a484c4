package audio

import "io"

// SliceSource is an in-memory frame.Source over interleaved samples.
type SliceSource struct {
	samples    []float64
	sampleRate int
	channels   int
	pos        int
}

// NewSliceSource returns a source reading samples. The slice is not copied.
func NewSliceSource(samples []float64, sampleRate, channels int) *SliceSource {
	return &SliceSource{samples: samples, sampleRate: sampleRate, channels: channels}
}

func (s *SliceSource) SampleRate() int { return s.sampleRate }
func (s *SliceSource) Channels() int   { return s.channels }
func (s *SliceSource) Length() int64   { return int64(len(s.samples)) }
func (s *SliceSource) Position() int64 { return int64(s.pos) }

// Read copies the next samples into dst.
func (s *SliceSource) Read(dst []float64) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}
	n := copy(dst, s.samples[s.pos:])
	s.pos += n
	return n, nil
}
