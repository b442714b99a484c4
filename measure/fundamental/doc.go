// Package fundamental estimates the dominant frequency of successive audio
// frames.
//
// For each complete, non-overlapping frame of a frame.Source an Analyzer
// computes the spectrum, picks the bin of greatest magnitude over the
// non-mirrored half and reports it as a Record of start time (seconds),
// frequency (Hz) and amplitude (dB).
//
// Bin k maps to k*bucketWidth Hz where
//
//	bucketWidth = (sampleRate/2) / (frameSize/2)
//
// and sampleRate/2 uses integer division. A peak in bin 0 (DC, or a silent
// frame) is reported as frequency 0 and amplitude -Inf. Such frames are kept
// in the output. No window function, overlap or noise floor is applied.
package fundamental
