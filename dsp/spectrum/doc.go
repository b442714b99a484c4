// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package intentionally does not implement FFT itself. It operates on
// complex spectrum bins produced by external FFT backends and provides
// magnitude extraction and peak selection over the one-sided (non-mirrored)
// half of a full spectrum.
package spectrum
