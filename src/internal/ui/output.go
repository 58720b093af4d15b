// Package ui provides colored console output utilities for the nvmw CLI
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	successColor  = color.New(color.FgGreen, color.Bold)
	errorColor    = color.New(color.FgRed, color.Bold)
	warningColor  = color.New(color.FgYellow, color.Bold)
	infoColor     = color.New(color.FgCyan)
	progressColor = color.New(color.FgBlue)

	successSymbol = "✓"
	errorSymbol   = "✗"
	warningSymbol = "⚠"
	infoSymbol    = "→"
)

// quietMode suppresses all decorated output. It is enabled when the CLI
// prints machine-readable JSON on stdout.
var quietMode bool

// SetQuiet enables or disables decorated output
func SetQuiet(quiet bool) {
	quietMode = quiet
}

// IsQuiet reports whether decorated output is suppressed
func IsQuiet() bool {
	return quietMode
}

// Success prints a success message in green with a checkmark
func Success(format string, args ...interface{}) {
	if quietMode {
		return
	}
	_, _ = successColor.Printf("%s %s\n", successSymbol, fmt.Sprintf(format, args...))
}

// Error prints an error message in red with an X
func Error(format string, args ...interface{}) {
	if quietMode {
		return
	}
	_, _ = errorColor.Printf("%s %s\n", errorSymbol, fmt.Sprintf(format, args...))
}

// Warning prints a warning message in yellow with a warning symbol
func Warning(format string, args ...interface{}) {
	if quietMode {
		return
	}
	_, _ = warningColor.Printf("%s %s\n", warningSymbol, fmt.Sprintf(format, args...))
}

// Info prints an info message in cyan with an arrow
func Info(format string, args ...interface{}) {
	if quietMode {
		return
	}
	_, _ = infoColor.Printf("%s %s\n", infoSymbol, fmt.Sprintf(format, args...))
}

// Progress prints an indented progress message in blue
func Progress(format string, args ...interface{}) {
	if quietMode {
		return
	}
	_, _ = progressColor.Printf("  %s %s\n", infoSymbol, fmt.Sprintf(format, args...))
}

// Printf prints a regular message without color (no newline)
func Printf(format string, args ...interface{}) {
	if quietMode {
		return
	}
	fmt.Printf(format, args...)
}

// Header prints a bold header message
func Header(format string, args ...interface{}) {
	if quietMode {
		return
	}
	_, _ = color.New(color.Bold).Println(fmt.Sprintf(format, args...))
}

// Highlight returns text in a highlighted color
func Highlight(text string) string {
	return color.New(color.FgCyan, color.Bold).Sprint(text)
}

// HighlightVersion returns a version string in a highlighted color
func HighlightVersion(version string) string {
	return color.New(color.FgMagenta, color.Bold).Sprint(version)
}
