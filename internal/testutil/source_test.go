package testutil

import (
	"errors"
	"io"
	"testing"
)

func TestSourceReadsAll(t *testing.T) {
	src := NewSource([]float64{1, 2, 3}, 8000, 1)
	buf := make([]float64, 2)

	n, err := src.Read(buf)
	if n != 2 || err != nil {
		t.Fatalf("Read = %d, %v; want 2, nil", n, err)
	}
	n, err = src.Read(buf)
	if n != 1 || err != nil {
		t.Fatalf("Read = %d, %v; want 1, nil", n, err)
	}
	if _, err = src.Read(buf); !errors.Is(err, io.EOF) {
		t.Fatalf("Read err = %v, want EOF", err)
	}
	if src.Position() != src.Length() {
		t.Fatalf("Position = %d, want %d", src.Position(), src.Length())
	}
}

func TestSourceFaults(t *testing.T) {
	boom := errors.New("boom")
	src := NewSource([]float64{1, 2, 3, 4}, 8000, 1)
	src.FailAt = 3
	src.Err = boom

	buf := make([]float64, 4)
	n, err := src.Read(buf)
	if n != 3 || err != nil {
		t.Fatalf("Read = %d, %v; want 3, nil", n, err)
	}
	if _, err = src.Read(buf); !errors.Is(err, boom) {
		t.Fatalf("Read err = %v, want boom", err)
	}
}

func TestSourceUnknownLengthAndMaxRead(t *testing.T) {
	src := NewSource([]float64{1, 2, 3}, 8000, 1)
	src.UnknownLength = true
	src.MaxRead = 1
	if src.Length() != -1 {
		t.Fatalf("Length = %d, want -1", src.Length())
	}
	n, _ := src.Read(make([]float64, 3))
	if n != 1 {
		t.Fatalf("Read = %d, want 1", n)
	}
}
