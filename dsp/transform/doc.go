// Package transform adapts fixed-size FFT primitives to a frame-fed
// spectrum provider.
//
// A Provider accumulates interleaved samples, combines channels into a single
// stream and hands out one full complex spectrum per completed window. The
// FFT itself is delegated to a Backend; two are provided, one over
// github.com/MeKo-Christian/algo-fft plans and one over
// github.com/mjibson/go-dsp/fft.
//
// No window function is applied: each window is transformed as-is
// (rectangular framing).
package transform
