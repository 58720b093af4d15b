package cmd

import (
	"context"

	"github.com/nvmw/nvmw/src/internal/nvm"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall <version>",
	Aliases: []string{"remove", "rm"},
	Short:   "Remove an installed Node.js version",
	Long: `Remove a Node.js version with "nvm uninstall".

Examples:
  nvmw uninstall 18.16.0
  nvmw remove v16.20.2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(cmd, "Removing Node.js "+args[0]+"...",
			func(ctx context.Context, m *nvm.Manager) nvm.Outcome[string] {
				return m.Remove(ctx, args[0])
			})
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
