package fundamental

import (
	"errors"

	"github.com/cwbudde/algo-fundamental/dsp/frame"
)

var (
	// ErrInvalidSampleRate reports a non-positive source sample rate.
	ErrInvalidSampleRate = frame.ErrInvalidSampleRate
	// ErrInvalidChannels reports a non-positive source channel count.
	ErrInvalidChannels = frame.ErrInvalidChannels
	// ErrInvalidFrameSize reports a frame size below 2.
	ErrInvalidFrameSize = errors.New("frame size must be >= 2")
	// ErrProviderSize reports a spectrum provider whose size differs from
	// the frame size.
	ErrProviderSize = errors.New("spectrum provider size does not match frame size")

	errNilSource = errors.New("source must not be nil")
)
