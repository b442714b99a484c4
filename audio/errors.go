package audio

import "errors"

var (
	// ErrUnsupportedFormat reports a file type no decoder handles.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrInvalidFile reports data the selected decoder cannot parse.
	ErrInvalidFile = errors.New("invalid audio file")
)
