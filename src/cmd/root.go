// Package cmd implements the CLI commands for nvmw
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/nvmw/nvmw/src/internal/tui"
	"github.com/nvmw/nvmw/src/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose    bool
	jsonOutput bool
)

// errFailed is returned by commands whose outcome already reported the
// failure. It only sets the exit code.
var errFailed = errors.New("operation failed")

var rootCmd = &cobra.Command{
	Use:           "nvmw",
	Short:         "Node.js version manager for nvm-windows",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.CheckVerboseEnv()
		ui.SetQuiet(jsonOutput)
	},
}

func Execute() {
	// Check for --version before Cobra parses
	for _, arg := range os.Args[1:] {
		if arg == "--version" {
			versionCmd.Run(versionCmd, []string{})
			return
		}
	}

	os.Exit(run(os.Args[1:]))
}

// run executes the command line and returns the process exit code.
func run(args []string) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			ui.SetQuiet(false)
			ui.Error("%v", err)
		}
		return 1
	}
	return 0
}

func init() {
	// Hide the completion command until we implement it
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	// Set custom usage and help functions with TUI table for commands
	rootCmd.SetUsageFunc(customUsage)
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		_ = customUsage(cmd)
	})
}

func customUsage(cmd *cobra.Command) error {
	const tableWidth = 80

	out := cmd.OutOrStdout()

	headerTable := tui.NewTable("")
	headerTable.SetTitle(cmd.Short)
	headerTable.HideHeader()
	headerTable.SetMinWidth(tableWidth)
	headerTable.AddRow("nvmw drives nvm-windows: list, switch, install and remove Node.js versions,")
	headerTable.AddRow("manage the download proxy and browse the official release index.")

	_, _ = fmt.Fprintln(out, headerTable.Render())
	_, _ = fmt.Fprintln(out)

	table := tui.NewTable("Command", "Description")
	table.SetTitle("Available Commands")
	table.SetMinWidth(tableWidth)

	commands := cmd.Commands()
	if cmd.HasParent() && len(commands) == 0 {
		table.AddRow(cmd.UseLine(), cmd.Short)
	}
	for _, c := range commands {
		if c.Hidden || c.Name() == "completion" || c.Name() == "help" {
			continue
		}
		table.AddRow(c.Name(), c.Short)
	}
	_, _ = fmt.Fprintln(out, table.Render())

	if cmd.Long != "" && cmd.HasParent() {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, cmd.Long)
	}

	flags := tui.NewTable("Flag", "Description")
	flags.SetTitle("Flags")
	flags.SetMinWidth(tableWidth)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		flags.AddRow("--"+f.Name, f.Usage)
	})
	cmd.InheritedFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		flags.AddRow("--"+f.Name, f.Usage)
	})
	if flags.RowCount() > 0 {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, flags.Render())
	}

	return nil
}
