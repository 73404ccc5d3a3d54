package ui

import (
	"fmt"
	"io"
	"os"
)

// StderrReporter writes leveled lines to a writer, stderr by default
type StderrReporter struct {
	Out io.Writer
}

func NewStderrReporter() *StderrReporter {
	return &StderrReporter{Out: os.Stderr}
}

// Infof writes an info line
func (r *StderrReporter) Infof(format string, args ...interface{}) {
	r.printf("INFO", format, args...)
}

// Warnf writes a warning line
func (r *StderrReporter) Warnf(format string, args ...interface{}) {
	r.printf("WARN", format, args...)
}

// Errorf writes an error line
func (r *StderrReporter) Errorf(format string, args ...interface{}) {
	r.printf("ERROR", format, args...)
}

func (r *StderrReporter) printf(level, format string, args ...interface{}) {
	fmt.Fprintf(r.Out, "%s: %s\n", level, fmt.Sprintf(format, args...))
}
