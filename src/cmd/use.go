package cmd

import (
	"context"

	"github.com/nvmw/nvmw/src/internal/nvm"
	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use <version>",
	Short: "Switch to an installed Node.js version",
	Long: `Activate an installed Node.js version with "nvm use".

The version must be a plain major.minor.patch, with or without a leading v.

Examples:
  nvmw use 20.11.1
  nvmw use v18.16.0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(cmd, "Switching to Node.js "+args[0]+"...",
			func(ctx context.Context, m *nvm.Manager) nvm.Outcome[string] {
				return m.Activate(ctx, args[0])
			})
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
