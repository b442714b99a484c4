package frame

import "fmt"

// Clock maps frame indices to elapsed seconds.
type Clock struct {
	period float64
}

// NewClock returns a Clock for frames of frameSize samples per channel at
// sampleRate Hz.
func NewClock(sampleRate, frameSize int) (Clock, error) {
	if sampleRate <= 0 {
		return Clock{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if frameSize <= 0 {
		return Clock{}, fmt.Errorf("%w: %d", ErrInvalidFrameSize, frameSize)
	}
	return Clock{period: float64(frameSize) / float64(sampleRate)}, nil
}

// Period returns the duration of one frame in seconds.
func (c Clock) Period() float64 { return c.period }

// At returns the start time in seconds of the frame with the given index.
//
//	t = index * (frameSize / sampleRate)
func (c Clock) At(index int) float64 {
	return float64(index) * c.period
}

// Timestamp returns the start time in seconds of frame index.
// Frame 0 always starts at 0.
func Timestamp(index, sampleRate, frameSize int) (float64, error) {
	if index < 0 {
		return 0, fmt.Errorf("%w: %d", errNegIndex, index)
	}
	c, err := NewClock(sampleRate, frameSize)
	if err != nil {
		return 0, err
	}
	return c.At(index), nil
}
