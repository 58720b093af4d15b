package cmd

import (
	"fmt"

	"github.com/nvmw/nvmw/src/internal/ui"
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the Node.js version in use",
	Long: `Show the version printed by "node -v".

Examples:
  nvmw current
  nvmw current --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		current, err := manager.CurrentVersion(cmd.Context())
		if err != nil {
			ui.Debug("%v", err)
			if jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), map[string]string{"version": ""}); err != nil {
					return err
				}
			} else {
				ui.Warning("No Node.js version is in use")
				ui.Info("Select one with: nvmw use <version>")
			}
			return errFailed
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), map[string]string{"version": current})
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", ui.Highlight("Node.js"), ui.HighlightVersion("v"+current))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
