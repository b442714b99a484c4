package transform

import "errors"

var (
	// ErrWindowTooSmall reports a transform size below 2, which leaves no
	// usable spectrum bins.
	ErrWindowTooSmall = errors.New("transform size must be >= 2")
	// ErrInvalidChannels reports a non-positive channel count.
	ErrInvalidChannels = errors.New("channel count must be >= 1")
	// ErrChannelMismatch reports input that does not hold whole channel groups.
	ErrChannelMismatch = errors.New("sample count is not a multiple of the channel count")
	// ErrSizeMismatch reports buffers that do not match the transform size.
	ErrSizeMismatch = errors.New("buffer length does not match transform size")
	// ErrUnknownBackend reports an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown transform backend")
)
