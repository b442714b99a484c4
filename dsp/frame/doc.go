// Package frame splits an interleaved sample stream into fixed-size,
// contiguous, non-overlapping frames and maps frame indices to elapsed time.
//
// A frame holds frameSize samples per channel. A trailing partial frame
// cannot complete an analysis window and is dropped without error.
package frame
