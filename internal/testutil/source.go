package testutil

import "io"

// Source is an in-memory sample stream with optional read fault injection.
// Its method set satisfies frame.Source.
type Source struct {
	samples    []float64
	sampleRate int
	channels   int
	pos        int

	// UnknownLength makes Length report -1.
	UnknownLength bool
	// MaxRead caps the samples returned per Read call when > 0.
	MaxRead int
	// FailAt makes Read return Err once the position reaches it, if Err is set.
	FailAt int
	Err    error
}

// NewSource returns a Source over interleaved samples.
func NewSource(samples []float64, sampleRate, channels int) *Source {
	return &Source{samples: samples, sampleRate: sampleRate, channels: channels}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Position() int64 { return int64(s.pos) }

func (s *Source) Length() int64 {
	if s.UnknownLength {
		return -1
	}
	return int64(len(s.samples))
}

func (s *Source) Read(dst []float64) (int, error) {
	if s.Err != nil && s.pos >= s.FailAt {
		return 0, s.Err
	}
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}
	end := len(s.samples)
	if s.Err != nil && s.FailAt > s.pos && s.FailAt < end {
		end = s.FailAt
	}
	if s.MaxRead > 0 && s.pos+s.MaxRead < end {
		end = s.pos + s.MaxRead
	}
	n := copy(dst, s.samples[s.pos:end])
	s.pos += n
	return n, nil
}
