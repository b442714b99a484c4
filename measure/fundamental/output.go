package fundamental

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FormatFloat formats v in plain decimal notation with the fewest digits
// that parse back to v. Infinities are written as "Infinity" and "-Infinity".
func FormatFloat(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsInf(v, 1):
		return "Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CSVWriter writes records as "timestamp,frequency,amplitude" lines without
// a header row.
type CSVWriter struct {
	w   *csv.Writer
	row [3]string
}

// NewCSVWriter returns a CSVWriter writing to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// Write buffers one record.
func (c *CSVWriter) Write(r Record) error {
	c.row[0] = FormatFloat(r.Time)
	c.row[1] = FormatFloat(r.Frequency)
	c.row[2] = FormatFloat(r.Amplitude)
	return c.w.Write(c.row[:])
}

// Flush writes buffered records and reports any write error.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

// WriteCSV writes all records to w.
func WriteCSV(w io.Writer, records []Record) error {
	cw := NewCSVWriter(w)
	for _, r := range records {
		if err := cw.Write(r); err != nil {
			return err
		}
	}
	return cw.Flush()
}

// WriteYAML writes records as a YAML sequence.
func WriteYAML(w io.Writer, records []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if records == nil {
		records = []Record{}
	}
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
