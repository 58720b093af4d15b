package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps briandowns/spinner with our color scheme. In quiet mode it
// is inert so JSON output on stdout stays clean.
type Spinner struct {
	spinner *spinner.Spinner
	quiet   bool
}

// NewSpinner creates a new spinner with a message
func NewSpinner(message string) *Spinner {
	s := spinner.New(
		spinner.CharSets[14], // dots style
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+message),
		spinner.WithWriter(os.Stderr),
	)
	return &Spinner{spinner: s, quiet: quietMode}
}

// Start starts the spinner
func (s *Spinner) Start() {
	if s.quiet {
		return
	}
	s.spinner.Start()
}

// Stop stops the spinner
func (s *Spinner) Stop() {
	if s.quiet {
		return
	}
	s.spinner.Stop()
}

// Success stops the spinner and shows a success message
func (s *Spinner) Success(message string) {
	s.Stop()
	Success("%s", message)
}

// Error stops the spinner and shows an error message
func (s *Spinner) Error(message string) {
	s.Stop()
	Error("%s", message)
}

// WithSpinner runs fn while a spinner is shown. The spinner is stopped
// silently; callers report the result themselves.
func WithSpinner(message string, fn func()) {
	s := NewSpinner(message)
	s.Start()
	defer s.Stop()
	fn()
}
