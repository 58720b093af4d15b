package nvm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nvmw/nvmw/src/internal/backend"
)

// fakeBackend simulates nvm-windows and node against a temporary NVM_HOME.
type fakeBackend struct {
	t       *testing.T
	home    string
	current string // version node -v reports, without "v"

	nodeMissing bool
	failures    map[string]error // nvm subcommand -> error

	calls     [][]string
	deadlines map[string]time.Duration // subcommand -> remaining time at call
}

func newFakeBackend(t *testing.T, installed ...string) *fakeBackend {
	t.Helper()
	f := &fakeBackend{
		t:         t,
		home:      t.TempDir(),
		failures:  map[string]error{},
		deadlines: map[string]time.Duration{},
	}
	for _, v := range installed {
		f.mkdir(v)
	}
	return f
}

func (f *fakeBackend) mkdir(v string) {
	f.t.Helper()
	if err := os.MkdirAll(filepath.Join(f.home, "v"+v), 0755); err != nil {
		f.t.Fatal(err)
	}
}

func (f *fakeBackend) homeFunc() (string, error) {
	return f.home, nil
}

func (f *fakeBackend) exitError(name string, args []string, output string) error {
	return &backend.ProcessError{Command: name, Args: args, ExitCode: 1, Output: output, Err: errors.New("exit status 1")}
}

func (f *fakeBackend) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))

	if name == "node" {
		if f.nodeMissing {
			return nil, &backend.ProcessError{Command: name, Args: args, ExitCode: -1, Err: backend.ErrNotFound}
		}
		if f.current == "" {
			return []byte("'node' is not recognized"), f.exitError(name, args, "")
		}
		return []byte("v" + f.current + "\r\n"), nil
	}

	if len(args) == 0 {
		return []byte("Running version 1.1.12."), nil
	}
	if deadline, ok := ctx.Deadline(); ok {
		f.deadlines[args[0]] = time.Until(deadline)
	}
	if err := f.failures[args[0]]; err != nil {
		return []byte("backend exploded"), err
	}

	dir := func(v string) string { return filepath.Join(f.home, "v"+v) }

	switch args[0] {
	case "use":
		if _, err := os.Stat(dir(args[1])); err != nil {
			return []byte(fmt.Sprintf("node v%s is not installed", args[1])), f.exitError(name, args, "")
		}
		f.current = args[1]
	case "install":
		f.mkdir(args[1])
	case "uninstall":
		if err := os.RemoveAll(dir(args[1])); err != nil {
			return nil, err
		}
		if f.current == args[1] {
			f.current = ""
		}
	case "proxy":
		content := fmt.Sprintf("root: %s\r\nproxy: %s\r\n", f.home, args[1])
		if err := os.WriteFile(filepath.Join(f.home, "settings.txt"), []byte(content), 0644); err != nil {
			return nil, err
		}
	}
	return []byte("ok"), nil
}

func (f *fakeBackend) nvmCalls() [][]string {
	var calls [][]string
	for _, c := range f.calls {
		if c[0] == "nvm" {
			calls = append(calls, c)
		}
	}
	return calls
}
