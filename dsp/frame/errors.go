package frame

import "errors"

var (
	// ErrInvalidSampleRate reports a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be > 0")
	// ErrInvalidFrameSize reports a non-positive frame size.
	ErrInvalidFrameSize = errors.New("frame size must be > 0")
	// ErrInvalidChannels reports a non-positive channel count.
	ErrInvalidChannels = errors.New("channel count must be > 0")

	errNilSource   = errors.New("frame source must not be nil")
	errNegIndex    = errors.New("frame index must be >= 0")
	errShortBuffer = errors.New("frame buffer too short")
)
