package frame

import (
	"errors"
	"fmt"
	"io"
)

// Frame is one block of interleaved samples taken from a Source.
type Frame struct {
	// Index is the 0-based sequence number of the frame.
	Index int
	// Samples aliases the buffer passed to Segmenter.Next.
	Samples []float64
}

// Segmenter pulls consecutive frames from a Source.
type Segmenter struct {
	src      Source
	size     int
	channels int
	next     int
	done     bool
}

// NewSegmenter returns a Segmenter producing frames of size samples per
// channel from src.
func NewSegmenter(src Source, size int) (*Segmenter, error) {
	if src == nil {
		return nil, errNilSource
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameSize, size)
	}
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	return &Segmenter{src: src, size: size, channels: channels}, nil
}

// Size returns the frame size in samples per channel.
func (s *Segmenter) Size() int { return s.size }

// FrameLen returns the number of interleaved samples in one frame.
func (s *Segmenter) FrameLen() int { return s.size * s.channels }

// Next reads the next frame into dst, which must hold at least FrameLen
// samples. It returns io.EOF when fewer than FrameLen samples remain; the
// remainder is dropped. The returned Samples alias dst and are only valid
// until the next call.
func (s *Segmenter) Next(dst []float64) (Frame, error) {
	if s.done {
		return Frame{}, io.EOF
	}

	need := s.FrameLen()
	if len(dst) < need {
		return Frame{}, fmt.Errorf("%w: %d < %d", errShortBuffer, len(dst), need)
	}
	dst = dst[:need]

	if total := s.src.Length(); total >= 0 && total-s.src.Position() < int64(need) {
		s.done = true
		return Frame{}, io.EOF
	}

	n, err := readFull(s.src, dst)
	if n < need {
		s.done = true
		if err == nil || errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("read frame %d: %w", s.next, err)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		s.done = true
		return Frame{}, fmt.Errorf("read frame %d: %w", s.next, err)
	}

	f := Frame{Index: s.next, Samples: dst}
	s.next++
	return f, nil
}

// readFull reads until dst is full or the source fails. A read that makes
// no progress without an error is reported as io.ErrNoProgress.
func readFull(src Source, dst []float64) (int, error) {
	n := 0
	for n < len(dst) {
		m, err := src.Read(dst[n:])
		n += m
		if err != nil {
			return n, err
		}
		if m == 0 {
			return n, io.ErrNoProgress
		}
	}
	return n, nil
}
