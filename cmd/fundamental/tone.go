package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fundamental/audio"
	"github.com/cwbudde/algo-fundamental/dsp/core"
	"github.com/cwbudde/algo-fundamental/dsp/signal"
)

func newToneCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Write a sine test tone as WAV",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			configNamespace: "tone",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTone()
		},
	}

	cmd.Flags().Float64("frequency", 440, "tone frequency in Hz")
	cmd.Flags().Float64("duration", 1, "tone length in seconds")
	cmd.Flags().Int("sample-rate", 44100, "sample rate in Hz")
	cmd.Flags().Float64("amplitude", 0.5, "peak amplitude in (0, 1]")
	cmd.Flags().Int("bit-depth", 16, "PCM bit depth (16, 24, 32)")
	cmd.Flags().Int("channels", 1, "number of identical channels")
	cmd.Flags().StringP("output", "o", "tone.wav", "output WAV file")
	return cmd
}

func (a *app) runTone() error {
	cfg, err := loadToneConfig(a.v)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g := signal.NewGenerator(core.WithSampleRate(float64(cfg.SampleRate)))
	n, err := g.Samples(cfg.Duration)
	if err != nil {
		return err
	}
	mono, err := g.Sine(cfg.Frequency, cfg.Amplitude, n)
	if err != nil {
		return err
	}
	samples, err := signal.Spread(mono, cfg.Channels)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := audio.WriteWAV(f, samples, cfg.SampleRate, cfg.Channels, cfg.BitDepth); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", cfg.Output, err)
	}

	a.log.WithFields(logrus.Fields{
		"output":      cfg.Output,
		"frequency":   cfg.Frequency,
		"sample_rate": cfg.SampleRate,
		"samples":     n,
	}).Info("tone written")
	return nil
}
