package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-fundamental/dsp/transform"
)

// Output formats accepted by analyze.
const (
	formatCSV  = "csv"
	formatYAML = "yaml"
)

// Config is the merged flag, environment and file configuration.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Verbose  bool   `mapstructure:"verbose"`

	FrameSize int    `mapstructure:"frame_size"`
	Backend   string `mapstructure:"backend"`
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
}

// ToneConfig holds the tone command settings, read from the tone section.
type ToneConfig struct {
	Frequency  float64 `mapstructure:"frequency"`
	Duration   float64 `mapstructure:"duration"`
	SampleRate int     `mapstructure:"sample_rate"`
	Amplitude  float64 `mapstructure:"amplitude"`
	BitDepth   int     `mapstructure:"bit_depth"`
	Channels   int     `mapstructure:"channels"`
	Output     string  `mapstructure:"output"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("verbose", false)
	v.SetDefault("frame_size", 1024)
	v.SetDefault("backend", transform.BackendAuto)
	v.SetDefault("format", formatCSV)
}

func loadConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	return cfg, nil
}

// Validate checks the analysis settings.
func (c *Config) Validate() error {
	if c.FrameSize < 2 {
		return fmt.Errorf("frame size must be >= 2: %d", c.FrameSize)
	}
	switch c.Format {
	case formatCSV, formatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want csv or yaml)", c.Format)
	}
	return nil
}

func loadToneConfig(v *viper.Viper) (*ToneConfig, error) {
	var settings struct {
		Tone ToneConfig `mapstructure:"tone"`
	}
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode tone configuration: %w", err)
	}
	return &settings.Tone, nil
}

// Validate checks the tone settings.
func (c *ToneConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %d", c.SampleRate)
	}
	if c.Frequency <= 0 || c.Frequency >= float64(c.SampleRate)/2 {
		return fmt.Errorf("frequency must be in (0, %d): %g", c.SampleRate/2, c.Frequency)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be > 0: %g", c.Duration)
	}
	if c.Amplitude <= 0 || c.Amplitude > 1 {
		return fmt.Errorf("amplitude must be in (0, 1]: %g", c.Amplitude)
	}
	if c.Channels <= 0 {
		return fmt.Errorf("channels must be > 0: %d", c.Channels)
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}
