// Package audio decodes audio files into normalized interleaved float64
// samples exposed as a frame.Source.
//
// WAV files are decoded with github.com/go-audio/wav and MP3 files with
// github.com/hajimehoshi/go-mp3. Samples are scaled to [-1, 1) and keep the
// file's native channel count. MP3 output is always 16-bit stereo.
package audio
