package cmd

import (
	"context"

	"github.com/nvmw/nvmw/src/internal/nvm"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install <version>",
	Short: "Install a Node.js version",
	Long: `Install a Node.js version with "nvm install". nvm downloads the release
through its configured mirror and proxy.

Examples:
  nvmw install 20.11.1
  nvmw install v18.16.0 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(cmd, "Installing Node.js "+args[0]+"...",
			func(ctx context.Context, m *nvm.Manager) nvm.Outcome[string] {
				return m.Install(ctx, args[0])
			})
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
