package cmd

import (
	"fmt"

	"github.com/nvmw/nvmw/src/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed Node.js versions",
	Long: `List the Node.js versions installed under NVM_HOME, newest first.
The version reported by "node -v" is marked as in use.

Examples:
  nvmw list
  nvmw list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		records := manager.ListInstalled(cmd.Context())
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), records)
		}

		if len(records) == 0 {
			ui.Info("No versions installed")
			ui.Info("Install one with: nvmw install <version>")
			return nil
		}
		ui.Header("Installed Node.js versions:")
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderInstalled(records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
