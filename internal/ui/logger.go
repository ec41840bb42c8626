package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// ConsoleLogger prints parser warnings in yellow
type ConsoleLogger struct {
	out  io.Writer
	warn *color.Color
}

// NewConsoleLogger creates a logger writing to stderr
func NewConsoleLogger() *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stderr)
}

// NewConsoleLoggerTo creates a logger writing to out
func NewConsoleLoggerTo(out io.Writer) *ConsoleLogger {
	return &ConsoleLogger{out: out, warn: color.New(color.FgYellow)}
}

// Warnf prints one warning line
func (l *ConsoleLogger) Warnf(format string, args ...any) {
	l.warn.Fprintf(l.out, "⚠ "+format+"\n", args...)
}
