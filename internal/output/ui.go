// Package output provides colored progress output for the CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// UI writes progress and diagnostics to the terminal.
type UI struct {
	Out    io.Writer
	ErrOut io.Writer
}

// New creates a UI with default stdout/stderr writers.
func New() *UI {
	return &UI{
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

var (
	infoPrefix    = color.New(color.FgHiBlue).Sprint("i")
	successPrefix = color.New(color.FgHiGreen).Sprint("✓")
	warningPrefix = color.New(color.FgHiYellow).Sprint("⚠")
	errorPrefix   = color.New(color.FgHiRed).Sprint("✗")
)

// Infof prints a progress message to stdout.
func (u *UI) Infof(format string, a ...any) {
	fmt.Fprintf(u.Out, "%s %s\n", infoPrefix, fmt.Sprintf(format, a...))
}

// Successf prints a success message to stdout.
func (u *UI) Successf(format string, a ...any) {
	fmt.Fprintf(u.Out, "%s %s\n", successPrefix, fmt.Sprintf(format, a...))
}

// Warnf prints a warning to stderr.
func (u *UI) Warnf(format string, a ...any) {
	fmt.Fprintf(u.ErrOut, "%s %s\n", warningPrefix, fmt.Sprintf(format, a...))
}

// Errorf prints an error to stderr.
func (u *UI) Errorf(format string, a ...any) {
	fmt.Fprintf(u.ErrOut, "%s %s\n", errorPrefix, fmt.Sprintf(format, a...))
}
