// Command fundamental reports the dominant frequency of successive audio
// frames.
//
// Usage:
//
//	fundamental [flags] <command> [args]
//
// Commands:
//
//	analyze <file>  write time,frequency,amplitude records for each frame
//	info <file>     print stream metadata as YAML
//	tone            write a sine test tone as WAV
//
// Examples:
//
//	fundamental analyze song.wav
//	fundamental analyze -o - --format yaml song.mp3
//	fundamental analyze --frame-size 2048 --backend godsp song.wav
//	fundamental tone --frequency 440 --duration 2 -o a4.wav
//
// Settings can also come from FUNDAMENTAL_* environment variables or a
// fundamental.yaml file in the working directory or
// $HOME/.config/fundamental. Tone settings live under a tone section
// (FUNDAMENTAL_TONE_OUTPUT, tone.sample_rate, ...).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
