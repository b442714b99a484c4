package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-fundamental/dsp/frame"
	"github.com/cwbudde/algo-fundamental/measure/fundamental"
)

// sourceInfo is the info command output.
type sourceInfo struct {
	Path        string  `yaml:"path"`
	Format      string  `yaml:"format"`
	SampleRate  int     `yaml:"sample_rate"`
	Channels    int     `yaml:"channels"`
	BitDepth    int     `yaml:"bit_depth"`
	Samples     int64   `yaml:"samples"`
	Duration    float64 `yaml:"duration_seconds"`
	FrameSize   int     `yaml:"frame_size"`
	Frames      int64   `yaml:"frames"`
	FramePeriod float64 `yaml:"frame_period_seconds"`
	BucketWidth float64 `yaml:"bucket_width_hz"`
}

func newInfoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print stream metadata as YAML",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInfo(cmd, args[0])
		},
	}
	cmd.Flags().Int("frame-size", 1024, "samples per channel in one frame")
	return cmd
}

func (a *app) runInfo(cmd *cobra.Command, path string) error {
	size := a.cfg.FrameSize

	src, err := openInput(path)
	if err != nil {
		return err
	}
	defer src.Close()

	clock, err := frame.NewClock(src.SampleRate(), size)
	if err != nil {
		return err
	}
	extractor, err := fundamental.NewPeakExtractor(src.SampleRate(), size)
	if err != nil {
		return err
	}

	info := sourceInfo{
		Path:        path,
		Format:      src.Format(),
		SampleRate:  src.SampleRate(),
		Channels:    src.Channels(),
		BitDepth:    src.BitDepth(),
		Samples:     src.Length(),
		Duration:    src.Duration(),
		FrameSize:   size,
		Frames:      -1,
		FramePeriod: clock.Period(),
		BucketWidth: extractor.BucketWidth(),
	}
	if info.Samples >= 0 {
		info.Frames = info.Samples / int64(size*src.Channels())
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(info); err != nil {
		return err
	}
	return enc.Close()
}
