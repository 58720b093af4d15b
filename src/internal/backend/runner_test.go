package backend

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

// TestHelperProcess is not a real test. It is re-executed by helperRunner
// to stand in for nvm and node.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("NVMW_WANT_HELPER_PROCESS") != "1" {
		return
	}
	defer os.Exit(0)

	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		os.Exit(2)
	}
	args = args[1:]

	switch args[0] {
	case "echo":
		fmt.Print(strings.Join(args[1:], "|"))
	case "fail":
		fmt.Print("something went wrong")
		os.Exit(3)
	case "sleep":
		time.Sleep(10 * time.Second)
	}
}

// helperRunner runs the test binary itself as the child process.
func helperRunner() *ExecRunner {
	return &ExecRunner{Env: append(os.Environ(), "NVMW_WANT_HELPER_PROCESS=1")}
}

func runHelper(ctx context.Context, r *ExecRunner, args ...string) ([]byte, error) {
	full := append([]string{"-test.run=TestHelperProcess", "--"}, args...)
	return r.Run(ctx, os.Args[0], full...)
}

func TestExecRunner_ArgumentsAreNotInterpreted(t *testing.T) {
	out, err := runHelper(context.Background(), helperRunner(), "echo", "20.0.0; rm -rf /", "$(whoami)")
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	// Each argument must arrive verbatim as a single argv entry
	want := "20.0.0; rm -rf /|$(whoami)"
	if string(out) != want {
		t.Errorf("Run() output = %q, want %q", out, want)
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	out, err := runHelper(context.Background(), helperRunner(), "fail")
	if err == nil {
		t.Fatal("Run() expected error for non-zero exit")
	}

	var perr *ProcessError
	if !errors.As(err, &perr) {
		t.Fatalf("Run() error = %T, want *ProcessError", err)
	}
	if perr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", perr.ExitCode)
	}
	if perr.Output != "something went wrong" {
		t.Errorf("Output = %q, want %q", perr.Output, "something went wrong")
	}
	if string(out) != "something went wrong" {
		t.Errorf("Run() output = %q", out)
	}
}

func TestExecRunner_Timeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := runHelper(ctx, helperRunner(), "sleep")
	if err == nil {
		t.Fatal("Run() expected timeout error")
	}
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Run() error = %v, want ErrTimeout", err)
	}
}

func TestExecRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runHelper(ctx, helperRunner(), "echo", "x")
	if err == nil {
		t.Fatal("Run() expected error for canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestExecRunner_NotFound(t *testing.T) {
	_, err := NewExecRunner().Run(context.Background(), "nvmw-definitely-not-installed")
	if err == nil {
		t.Fatal("Run() expected error for missing executable")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Run() error = %v, want ErrNotFound", err)
	}

	var perr *ProcessError
	if errors.As(err, &perr) && perr.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", perr.ExitCode)
	}
}

func TestProcessError_Error(t *testing.T) {
	exited := &ProcessError{Command: "nvm", Args: []string{"use", "20.0.0"}, ExitCode: 1}
	if got := exited.Error(); got != "nvm use 20.0.0: exit status 1" {
		t.Errorf("Error() = %q", got)
	}

	notRun := &ProcessError{Command: "node", Args: []string{"-v"}, ExitCode: -1, Err: ErrNotFound}
	if got := notRun.Error(); !strings.Contains(got, "executable not found") {
		t.Errorf("Error() = %q, want mention of missing executable", got)
	}
}
