package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fundamental/dsp/core"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair is not core.NearlyEqual within eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !core.NearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v, eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireNegInf fails t unless v is negative infinity.
func RequireNegInf(t *testing.T, v float64) {
	t.Helper()
	if !math.IsInf(v, -1) {
		t.Fatalf("got %v, want -Inf", v)
	}
}
