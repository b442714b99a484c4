package buffer

// Buffer is a first-in first-out queue of samples.
//
// The zero value is an empty buffer ready for use.
type Buffer struct {
	samples []float64
}

// New returns an empty Buffer with room for capacity samples.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{samples: make([]float64, 0, capacity)}
}

// Len returns the number of queued samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Append queues samples at the tail.
func (b *Buffer) Append(samples ...float64) {
	b.samples = append(b.samples, samples...)
}

// Peek returns the n oldest samples without consuming them.
// It returns nil if fewer than n samples are queued. The returned slice
// aliases internal storage and is valid until the next mutating call.
func (b *Buffer) Peek(n int) []float64 {
	if n < 0 || n > len(b.samples) {
		return nil
	}
	return b.samples[:n]
}

// Discard drops the n oldest samples. n is clamped to [0, Len()].
func (b *Buffer) Discard(n int) {
	if n <= 0 {
		return
	}
	if n >= len(b.samples) {
		b.samples = b.samples[:0]
		return
	}
	rest := copy(b.samples, b.samples[n:])
	b.samples = b.samples[:rest]
}
