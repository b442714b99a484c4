package frame

import (
	"errors"
	"math"
	"testing"
)

func TestTimestampFirstFrameIsZero(t *testing.T) {
	for _, sr := range []int{1, 8000, 44100, 96000} {
		got, err := Timestamp(0, sr, 1024)
		if err != nil {
			t.Fatalf("Timestamp error: %v", err)
		}
		if got != 0 {
			t.Fatalf("Timestamp(0, %d, 1024)=%v want=0", sr, got)
		}
	}
}

func TestTimestampLinear(t *testing.T) {
	one, err := Timestamp(1, 44100, 1024)
	if err != nil {
		t.Fatalf("Timestamp error: %v", err)
	}
	if math.Abs(one-1024.0/44100.0) > 1e-15 {
		t.Fatalf("Timestamp(1)=%v want=%v", one, 1024.0/44100.0)
	}
	for k := 0; k < 1000; k += 37 {
		got, err := Timestamp(k, 44100, 1024)
		if err != nil {
			t.Fatalf("Timestamp error: %v", err)
		}
		if got != float64(k)*one {
			t.Fatalf("Timestamp(%d)=%v want=%v", k, got, float64(k)*one)
		}
	}
}

func TestTimestampErrors(t *testing.T) {
	if _, err := Timestamp(3, 0, 1024); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("err=%v want ErrInvalidSampleRate", err)
	}
	if _, err := Timestamp(3, -44100, 1024); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("err=%v want ErrInvalidSampleRate", err)
	}
	if _, err := Timestamp(3, 44100, 0); !errors.Is(err, ErrInvalidFrameSize) {
		t.Fatalf("err=%v want ErrInvalidFrameSize", err)
	}
	if _, err := Timestamp(-1, 44100, 1024); err == nil {
		t.Fatal("expected error for negative index")
	}
}

func TestClockPeriod(t *testing.T) {
	c, err := NewClock(8000, 800)
	if err != nil {
		t.Fatalf("NewClock error: %v", err)
	}
	if c.Period() != 0.1 {
		t.Fatalf("Period=%v want=0.1", c.Period())
	}
	if c.At(3) != 3*c.Period() {
		t.Fatalf("At(3)=%v", c.At(3))
	}
}
