package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns a text logger on w. verbose forces debug level.
func newLogger(w io.Writer, level string, verbose bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if verbose {
		lvl = logrus.DebugLevel
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return l, nil
}
