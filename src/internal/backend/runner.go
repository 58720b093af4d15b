// Package backend runs the external nvm and node executables. Commands are
// always started from an argument vector; nothing is interpreted by a shell.
package backend

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/nvmw/nvmw/src/internal/ui"
)

var (
	// ErrNotFound is wrapped when the executable is not on PATH.
	ErrNotFound = errors.New("executable not found")

	// ErrTimeout is wrapped when a command outlives its context deadline.
	ErrTimeout = errors.New("command timed out")
)

// Runner starts an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ProcessError describes a command that could not be started or exited
// with a non-zero status.
type ProcessError struct {
	Command  string
	Args     []string
	ExitCode int // -1 when the process never ran to completion
	Output   string
	Err      error
}

func (e *ProcessError) Error() string {
	line := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s: exit status %d", line, e.ExitCode)
	}
	return fmt.Sprintf("%s: %v", line, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Env, when non-nil, replaces the inherited environment.
	Env []string
}

// NewExecRunner returns a Runner that inherits the current environment.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args and waits for it to exit. The process is
// killed when ctx is done.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	ui.Debug("exec: %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	if r.Env != nil {
		cmd.Env = r.Env
	}

	output, err := cmd.CombinedOutput()
	if err == nil {
		return output, nil
	}

	perr := &ProcessError{
		Command:  name,
		Args:     args,
		ExitCode: -1,
		Output:   strings.TrimSpace(string(output)),
		Err:      err,
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		perr.Err = fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.Is(ctx.Err(), context.Canceled):
		perr.Err = fmt.Errorf("%w: %v", context.Canceled, err)
	case errors.Is(err, exec.ErrNotFound):
		perr.Err = fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
	case errors.As(err, &exitErr):
		perr.ExitCode = exitErr.ExitCode()
	}

	ui.Debug("exec failed: %v (output: %q)", perr, perr.Output)
	return output, perr
}
