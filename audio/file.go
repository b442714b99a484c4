package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-fundamental/dsp/frame"
)

// Supported container formats.
const (
	FormatWAV = "wav"
	FormatMP3 = "mp3"
)

// File is a decoded audio file. It implements frame.Source.
type File struct {
	frame.Source

	format   string
	bitDepth int

	// streaming sources keep reading from the opened file.
	streaming bool
	closer    io.Closer
}

var _ frame.Source = (*File)(nil)

// Open decodes the file at path, choosing the decoder by extension.
func Open(path string) (*File, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	f, err := Decode(fh, format)
	if err != nil {
		_ = fh.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !f.streaming {
		_ = fh.Close()
		return f, nil
	}
	f.closer = fh
	return f, nil
}

// Decode reads audio of the given format ("wav" or "mp3") from r. WAV data
// is decoded fully up front. MP3 data is decoded on demand from r, which
// must stay open until the File is closed.
func Decode(r io.ReadSeeker, format string) (*File, error) {
	switch strings.ToLower(format) {
	case FormatWAV:
		return decodeWAV(r)
	case FormatMP3:
		return decodeMP3(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Format returns the container format name.
func (f *File) Format() string { return f.format }

// BitDepth returns the source bits per sample.
func (f *File) BitDepth() int { return f.bitDepth }

// Duration returns the stream length in seconds, or -1 if unknown.
func (f *File) Duration() float64 {
	n := f.Length()
	if n < 0 || f.SampleRate() <= 0 || f.Channels() <= 0 {
		return -1
	}
	return float64(n) / float64(f.Channels()) / float64(f.SampleRate())
}

// Close releases the underlying file, if any.
func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	err := f.closer.Close()
	f.closer = nil
	return err
}

// SupportedFormat reports whether path has an extension Open can decode.
func SupportedFormat(path string) bool {
	_, err := formatOf(path)
	return err == nil
}

func formatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case FormatWAV, FormatMP3:
		return ext, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
