package fundamental

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-fundamental/dsp/core"
	"github.com/cwbudde/algo-fundamental/internal/testutil"
)

// stubProvider returns spectrum for every added frame.
type stubProvider struct {
	size     int
	spectrum []complex128
	added    [][]float64
	pending  int
	addErr   error
}

func (s *stubProvider) Size() int { return s.size }

func (s *stubProvider) Add(samples []float64) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.added = append(s.added, append([]float64(nil), samples...))
	s.pending++
	return nil
}

func (s *stubProvider) TrySpectrum(dst []complex128) (bool, error) {
	if s.pending == 0 {
		return false, nil
	}
	s.pending--
	copy(dst, s.spectrum)
	return true, nil
}

func stubFactory(p *stubProvider) ProviderFactory {
	return func(size, channels int) (SpectrumProvider, error) {
		if p.size == 0 {
			p.size = size
		}
		return p, nil
	}
}

func TestNewAnalyzerFrameSize(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if _, err := NewAnalyzer(WithFrameSize(n)); !errors.Is(err, ErrInvalidFrameSize) {
			t.Fatalf("frame size %d err=%v want ErrInvalidFrameSize", n, err)
		}
	}
	a, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}
	if a.Config().FrameSize != 1024 {
		t.Fatalf("default FrameSize=%d want 1024", a.Config().FrameSize)
	}
}

func TestRunRejectsBadSource(t *testing.T) {
	a, err := NewAnalyzer(WithFrameSize(4))
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}

	emitted := 0
	emit := func(Record) error { emitted++; return nil }

	if err := a.Run(testutil.NewSource(make([]float64, 16), 0, 1), emit); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("sampleRate=0 err=%v want ErrInvalidSampleRate", err)
	}
	if err := a.Run(testutil.NewSource(make([]float64, 16), 8000, 0), emit); !errors.Is(err, ErrInvalidChannels) {
		t.Fatalf("channels=0 err=%v want ErrInvalidChannels", err)
	}
	if err := a.Run(nil, emit); err == nil {
		t.Fatal("nil source expected error")
	}
	if emitted != 0 {
		t.Fatalf("emitted=%d records on configuration error", emitted)
	}

	recs, err := Analyze(testutil.NewSource(make([]float64, 16), 0, 1), WithFrameSize(4))
	if err == nil || recs != nil {
		t.Fatalf("Analyze = %v, %v; want nil records and an error", recs, err)
	}
}

func TestRecordCountAndTimestamps(t *testing.T) {
	const n = 8
	for _, length := range []int{0, 1, n - 1, n, n + 1, 3 * n, 3*n + 5, 10 * n} {
		p := &stubProvider{spectrum: make([]complex128, n)}
		recs, err := Analyze(testutil.NewSource(make([]float64, length), 8000, 1),
			WithFrameSize(n), WithProviderFactory(stubFactory(p)))
		if err != nil {
			t.Fatalf("L=%d: Analyze error: %v", length, err)
		}
		if len(recs) != length/n {
			t.Fatalf("L=%d: records=%d want=%d", length, len(recs), length/n)
		}
		for i, r := range recs {
			if want := float64(i) * (float64(n) / 8000); r.Time != want {
				t.Fatalf("L=%d: record %d time=%v want=%v", length, i, r.Time, want)
			}
		}
	}
}

func TestThreeFramesOfSilence(t *testing.T) {
	const n = 1024
	recs, err := Analyze(testutil.NewSource(testutil.Silence(3*n), 44100, 1), WithFrameSize(n))
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("records=%d want=3", len(recs))
	}
	period := float64(n) / 44100
	for i, r := range recs {
		if r.Time != float64(i)*period {
			t.Fatalf("record %d time=%v want=%v", i, r.Time, float64(i)*period)
		}
		if r.Frequency != 0 {
			t.Fatalf("record %d frequency=%v want 0", i, r.Frequency)
		}
		testutil.RequireNegInf(t, r.Amplitude)
	}
	if !(recs[0].Time < recs[1].Time && recs[1].Time < recs[2].Time) {
		t.Fatalf("timestamps not increasing: %+v", recs)
	}
}

func TestSineTracksFrequency(t *testing.T) {
	const (
		n          = 1024
		sampleRate = 44100
	)
	signal := testutil.Concat(
		testutil.DeterministicSine(440, sampleRate, 0.5, n),
		testutil.Silence(n),
		testutil.DeterministicSine(440, sampleRate, 0.5, n),
	)
	for _, backend := range []string{"algofft", "godsp"} {
		recs, err := Analyze(testutil.NewSource(signal, sampleRate, 1),
			WithFrameSize(n), WithBackendName(backend))
		if err != nil {
			t.Fatalf("%s: Analyze error: %v", backend, err)
		}
		if len(recs) != 3 {
			t.Fatalf("%s: records=%d want=3", backend, len(recs))
		}
		width := float64(sampleRate/2) / (n / 2)
		if recs[0].Frequency != 10*width {
			t.Fatalf("%s: frequency=%v want=%v", backend, recs[0].Frequency, 10*width)
		}
		if math.IsInf(recs[0].Amplitude, 0) {
			t.Fatalf("%s: amplitude=%v want finite", backend, recs[0].Amplitude)
		}
		if recs[1].Frequency != 0 || !math.IsInf(recs[1].Amplitude, -1) {
			t.Fatalf("%s: silent frame=%+v", backend, recs[1])
		}
	}
}

func TestStereoIsCombined(t *testing.T) {
	const n = 64
	left := testutil.DeterministicSine(2000, 8000, 0.5, n)
	stereo := testutil.Interleave(left, left)

	mono, err := Analyze(testutil.NewSource(left, 8000, 1), WithFrameSize(n))
	if err != nil {
		t.Fatalf("mono Analyze error: %v", err)
	}
	both, err := Analyze(testutil.NewSource(stereo, 8000, 2), WithFrameSize(n))
	if err != nil {
		t.Fatalf("stereo Analyze error: %v", err)
	}
	if len(mono) != 1 || len(both) != 1 {
		t.Fatalf("records mono=%d stereo=%d want 1", len(mono), len(both))
	}
	if mono[0].Frequency != both[0].Frequency {
		t.Fatalf("frequency mono=%v stereo=%v", mono[0].Frequency, both[0].Frequency)
	}
	if !core.NearlyEqual(mono[0].Amplitude, both[0].Amplitude, 1e-9) {
		t.Fatalf("amplitude mono=%v stereo=%v", mono[0].Amplitude, both[0].Amplitude)
	}
}

func TestStubSpectrumDrivesRecords(t *testing.T) {
	p := &stubProvider{spectrum: []complex128{0, 0, 0, 2, 0, 0, 0, 0}}
	recs, err := Analyze(testutil.NewSource(make([]float64, 16), 8000, 1),
		WithFrameSize(8), WithProviderFactory(stubFactory(p)))
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if len(p.added) != 2 || len(p.added[0]) != 8 {
		t.Fatalf("provider saw %d frames", len(p.added))
	}
	want := Record{Time: 0.001, Frequency: 3000, Amplitude: 20 * math.Log10(2)}
	if recs[1].Time != want.Time || recs[1].Frequency != want.Frequency ||
		!core.NearlyEqual(recs[1].Amplitude, want.Amplitude, 1e-12) {
		t.Fatalf("record=%+v want=%+v", recs[1], want)
	}
}

func TestDeterministic(t *testing.T) {
	signal := testutil.Concat(
		testutil.DeterministicSine(1000, 22050, 0.3, 2000),
		testutil.DeterministicSine(3000, 22050, 0.8, 2000),
	)
	var outputs [2]bytes.Buffer
	for i := range outputs {
		recs, err := Analyze(testutil.NewSource(signal, 22050, 1), WithFrameSize(256))
		if err != nil {
			t.Fatalf("Analyze error: %v", err)
		}
		if err := WriteCSV(&outputs[i], recs); err != nil {
			t.Fatalf("WriteCSV error: %v", err)
		}
	}
	if !bytes.Equal(outputs[0].Bytes(), outputs[1].Bytes()) {
		t.Fatal("runs produced different output")
	}
}

func TestReadErrorKeepsEarlierRecords(t *testing.T) {
	boom := errors.New("decode failed")
	src := testutil.NewSource(make([]float64, 40), 8000, 1)
	src.FailAt = 20
	src.Err = boom

	recs, err := Analyze(src, WithFrameSize(8))
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v want boom", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records=%d want=2", len(recs))
	}
}

func TestFirstFrameErrorReturnsNoRecords(t *testing.T) {
	boom := errors.New("decode failed")
	src := testutil.NewSource(make([]float64, 40), 8000, 1)
	src.FailAt = 4
	src.Err = boom

	recs, err := Analyze(src, WithFrameSize(8))
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v want boom", err)
	}
	if recs != nil {
		t.Fatalf("records=%v want nil", recs)
	}
}

func TestEmitErrorStopsRun(t *testing.T) {
	a, err := NewAnalyzer(WithFrameSize(4))
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}
	stop := errors.New("stop")
	calls := 0
	err = a.Run(testutil.NewSource(make([]float64, 40), 8000, 1), func(Record) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("err=%v calls=%d want stop, 1", err, calls)
	}
}

func TestProviderErrors(t *testing.T) {
	src := func() *testutil.Source { return testutil.NewSource(make([]float64, 16), 8000, 1) }

	if _, err := Analyze(src(), WithFrameSize(8), WithBackendName("nope")); err == nil {
		t.Fatal("unknown backend expected error")
	}

	wrong := &stubProvider{size: 4}
	if _, err := Analyze(src(), WithFrameSize(8), WithProviderFactory(stubFactory(wrong))); !errors.Is(err, ErrProviderSize) {
		t.Fatalf("err=%v want ErrProviderSize", err)
	}

	boom := errors.New("boom")
	failing := &stubProvider{addErr: boom}
	if _, err := Analyze(src(), WithFrameSize(8), WithProviderFactory(stubFactory(failing))); !errors.Is(err, boom) {
		t.Fatalf("err=%v want boom", err)
	}
}

func TestRunLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)

	if _, err := Analyze(testutil.NewSource(make([]float64, 16), 8000, 1), WithFrameSize(8), WithLogger(l)); err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"analysis started", "analysis finished", "records=2", "frame_size=8"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %q", out, want)
		}
	}
}
