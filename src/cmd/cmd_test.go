package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvmw/nvmw/src/internal/backend"
	"github.com/nvmw/nvmw/src/internal/catalog"
	"github.com/nvmw/nvmw/src/internal/nvm"
	"github.com/nvmw/nvmw/src/internal/proxy"
	"github.com/nvmw/nvmw/src/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// fakeNVM simulates nvm-windows and node against a temporary NVM_HOME.
type fakeNVM struct {
	t       *testing.T
	home    string
	current string
	fail    map[string]bool
	calls   int
}

func newFakeNVM(t *testing.T, installed ...string) *fakeNVM {
	t.Helper()
	f := &fakeNVM{t: t, home: t.TempDir(), fail: map[string]bool{}}
	for _, v := range installed {
		if err := os.MkdirAll(filepath.Join(f.home, "v"+v), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return f
}

func (f *fakeNVM) homeFunc() (string, error) {
	return f.home, nil
}

func (f *fakeNVM) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls++
	exitErr := &backend.ProcessError{Command: name, Args: args, ExitCode: 1, Err: errors.New("exit status 1")}

	if name == "node" {
		if f.current == "" {
			return nil, exitErr
		}
		return []byte("v" + f.current + "\n"), nil
	}
	if f.fail[args[0]] {
		return []byte("failed"), exitErr
	}

	dir := filepath.Join(f.home, "v"+args[len(args)-1])
	switch args[0] {
	case "use":
		if _, err := os.Stat(dir); err != nil {
			return nil, exitErr
		}
		f.current = args[1]
	case "install":
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	case "uninstall":
		if err := os.RemoveAll(dir); err != nil {
			return nil, err
		}
	case "proxy":
		content := fmt.Sprintf("root: %s\nproxy: %s\n", f.home, args[1])
		if err := os.WriteFile(filepath.Join(f.home, "settings.txt"), []byte(content), 0644); err != nil {
			return nil, err
		}
	}
	return []byte("ok"), nil
}

// useFake points every command at f and source for the rest of the test.
func useFake(t *testing.T, f *fakeNVM, source catalog.Source) {
	t.Helper()
	previous := newManager
	newManager = func() (*nvm.Manager, error) {
		return nvm.New(nvm.Options{
			Runner:  f,
			Home:    f.homeFunc,
			Proxies: proxy.NewSettingsFileStore(f.homeFunc),
			Catalog: source,
		}), nil
	}
	t.Cleanup(func() {
		newManager = previous
		ui.SetQuiet(false)
	})
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI with args and returns what it wrote and its exit code.
func execute(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})

	code := run(args)
	return out.String(), code
}

func TestCommandsRegistered(t *testing.T) {
	expected := []string{"list", "current", "use", "install", "uninstall", "proxy", "recommend", "version"}

	for _, name := range expected {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestUnknownCommandExitCode(t *testing.T) {
	useFake(t, newFakeNVM(t), nil)

	if _, code := execute(t, "", "frobnicate"); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	out, code := execute(t, "", "version", "--json")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	var got map[string]string
	decodeJSON(t, out, &got)
	if got["version"] != Version {
		t.Errorf("version = %q, want %q", got["version"], Version)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestCurrentCommand_JSONWriteError(t *testing.T) {
	f := newFakeNVM(t)
	useFake(t, f, nil)
	resetFlags(rootCmd)

	rootCmd.SetOut(failingWriter{})
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	rootCmd.SetArgs([]string{"current", "--json"})

	err := rootCmd.Execute()
	if err == nil || errors.Is(err, errFailed) {
		t.Errorf("Execute() error = %v, want the write error", err)
	}
}
