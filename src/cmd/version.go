package cmd

import (
	"fmt"

	"github.com/nvmw/nvmw/src/internal/tui"
	"github.com/spf13/cobra"
)

// Version can be set at build time using ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the nvmw version",
	Long:  `Display the current version of nvmw.`,
	Run: func(cmd *cobra.Command, args []string) {
		if jsonOutput {
			_ = writeJSON(cmd.OutOrStdout(), map[string]string{"version": Version})
			return
		}
		content := fmt.Sprintf("nvmw %s", tui.RenderVersion(Version))
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderInfoBox(content))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
