package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
)

const (
	mp3Channels       = 2
	mp3BytesPerSample = 2
)

// mp3Stream decodes 16-bit little-endian stereo PCM on demand.
type mp3Stream struct {
	dec        *mp3.Decoder
	sampleRate int
	length     int64
	pos        int64
	raw        []byte
}

func decodeMP3(r io.Reader) (*File, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: mp3: %w", ErrInvalidFile, err)
	}
	length := int64(-1)
	if n := dec.Length(); n >= 0 {
		length = n / mp3BytesPerSample
	}
	s := &mp3Stream{dec: dec, sampleRate: dec.SampleRate(), length: length}
	return &File{Source: s, format: FormatMP3, bitDepth: 16, streaming: true}, nil
}

func (s *mp3Stream) SampleRate() int { return s.sampleRate }
func (s *mp3Stream) Channels() int   { return mp3Channels }
func (s *mp3Stream) Length() int64   { return s.length }
func (s *mp3Stream) Position() int64 { return s.pos }

func (s *mp3Stream) Read(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	need := len(dst) * mp3BytesPerSample
	if cap(s.raw) < need {
		s.raw = make([]byte, need)
	}
	raw := s.raw[:need]

	m, err := io.ReadFull(s.dec, raw)
	n := m / mp3BytesPerSample
	for i := range n {
		dst[i] = float64(int16(binary.LittleEndian.Uint16(raw[2*i:]))) / 32768
	}
	s.pos += int64(n)

	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	default:
		return n, fmt.Errorf("mp3: decode: %w", err)
	}
}
