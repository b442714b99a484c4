package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fundamental/audio"
	"github.com/cwbudde/algo-fundamental/measure/fundamental"
)

var errUsage = errors.New("provide a valid music file location (mp3, wav, or m4a)")

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Write per-frame fundamental frequency estimates",
		Long: `Analyzes every complete frame of the input and writes one
"timestamp,frequency,amplitude" line per frame, without a header row.
A trailing partial frame is dropped.

Examples:
  fundamental analyze song.wav
  fundamental analyze -o - song.mp3
  fundamental analyze --format yaml -o song.yaml song.wav`,
		Args: exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd, args[0])
		},
	}

	cmd.Flags().StringP("output", "o", "", `output file (default is <input>.csv, "-" for stdout)`)
	cmd.Flags().String("format", formatCSV, "output format (csv, yaml)")
	cmd.Flags().Int("frame-size", 1024, "samples per channel in one frame")
	cmd.Flags().String("backend", "auto", "FFT backend (auto, algofft, godsp)")
	return cmd
}

func exactlyOneFile(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	return nil
}

// openInput checks that path exists and decodes it.
func openInput(path string) (*audio.File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not find file: %q", path)
		}
		return nil, err
	}
	return audio.Open(path)
}

func (a *app) runAnalyze(cmd *cobra.Command, path string) error {
	cfg := a.cfg
	if err := cfg.Validate(); err != nil {
		return err
	}

	src, err := openInput(path)
	if err != nil {
		return err
	}
	defer src.Close()

	log := a.log.WithFields(logrus.Fields{
		"input":       path,
		"format":      src.Format(),
		"sample_rate": src.SampleRate(),
		"channels":    src.Channels(),
		"frame_size":  cfg.FrameSize,
		"backend":     cfg.Backend,
	})
	log.Debug("decoded input")

	start := time.Now()
	records, err := fundamental.Analyze(src,
		fundamental.WithFrameSize(cfg.FrameSize),
		fundamental.WithBackendName(cfg.Backend),
		fundamental.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", path, err)
	}

	output := cfg.Output
	if output == "" {
		output = defaultOutput(path, cfg.Format)
	}
	if err := writeRecords(cmd.OutOrStdout(), output, cfg.Format, records); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"records": len(records),
		"output":  output,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("analysis complete")
	return nil
}

func defaultOutput(input, format string) string {
	ext := ".csv"
	if format == formatYAML {
		ext = ".yaml"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

func writeRecords(stdout io.Writer, output, format string, records []fundamental.Record) error {
	write := fundamental.WriteCSV
	if format == formatYAML {
		write = fundamental.WriteYAML
	}

	if output == "-" {
		return write(stdout, records)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f, records); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	return nil
}
