package spectrum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// UsableBins returns the number of non-mirrored bins of a full spectrum of
// length n. The upper half of a real-input transform is the conjugate image
// of the lower half and carries no additional information.
func UsableBins(n int) int {
	if n <= 0 {
		return 0
	}
	return n / 2
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	MagnitudeInto(out, in)
	return out
}

// MagnitudeInto computes |X[k]| = sqrt(re[k]^2 + im[k]^2) for the first
// len(dst) bins of in and writes them to dst.
//
// This function uses SIMD-optimized implementations when available (AVX2, SSE2, NEON).
// Scratch buffers are pooled internally, so in steady state it does not allocate.
// len(in) must be >= len(dst).
func MagnitudeInto(dst []float64, in []complex128) {
	n := len(dst)
	if n == 0 {
		return
	}
	in = in[:n]

	re, im, buf := getScratch(n)
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}

// PeakBin returns the index of the largest value in mag.
//
// Ties resolve to the lowest index: a later bin replaces the current peak only
// when it is strictly greater. NaN values are never selected. It returns -1 if
// mag is empty or holds only NaN.
func PeakBin(mag []float64) int {
	best := -1
	for i, v := range mag {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || v > mag[best] {
			best = i
		}
	}
	return best
}
