package fundamental

// Record is the estimate for one frame.
type Record struct {
	// Time is the frame start in seconds.
	Time float64 `yaml:"time"`
	// Frequency is the dominant frequency in Hz.
	Frequency float64 `yaml:"frequency"`
	// Amplitude is the dominant bin magnitude in dB, -Inf for silence.
	Amplitude float64 `yaml:"amplitude"`
}
