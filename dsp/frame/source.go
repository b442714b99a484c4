package frame

// Source is a readable stream of interleaved, normalized samples.
//
// It mirrors what an audio decoder exposes: format attributes, the total
// stream length and the current read position, both counted in interleaved
// samples. Length returns -1 when the total is not known up front.
type Source interface {
	SampleRate() int
	Channels() int
	Length() int64
	Position() int64

	// Read fills dst with the next samples and advances the position. It
	// returns the number of samples written and io.EOF once exhausted.
	Read(dst []float64) (int, error)
}
