package cmd

import (
	"fmt"

	"github.com/nvmw/nvmw/src/internal/nvm"
	"github.com/nvmw/nvmw/src/internal/proxy"
	"github.com/nvmw/nvmw/src/internal/ui"
	"github.com/spf13/cobra"
)

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Show or change the download proxy",
	Long: `Show the proxy nvm downloads through, as recorded in NVM_HOME\settings.txt.

Examples:
  nvmw proxy
  nvmw proxy set 10.0.0.1 8080
  nvmw proxy clear`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		cfg := manager.GetProxy(cmd.Context())
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), cfg)
		}
		if !cfg.IsSet() {
			ui.Info("No proxy configured")
			return nil
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", ui.Highlight("Proxy"), cfg.URL())
		return nil
	},
}

var proxySetCmd = &cobra.Command{
	Use:   "set <host> <port>",
	Short: "Route nvm downloads through http://<host>:<port>",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProxy(cmd, args[0], args[1])
	},
}

var proxyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Stop using a proxy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProxy(cmd, "", "")
	},
}

func setProxy(cmd *cobra.Command, host, port string) error {
	manager, err := newManager()
	if err != nil {
		return err
	}

	var outcome nvm.Outcome[proxy.Config]
	ui.WithSpinner("Updating nvm proxy...", func() {
		outcome = manager.SetProxy(cmd.Context(), host, port)
	})
	if jsonOutput {
		if err := writeJSON(cmd.OutOrStdout(), outcome); err != nil {
			return err
		}
		return outcomeError(outcome)
	}
	if err := report(outcome); err != nil {
		return err
	}
	showStoredProxy(cmd, manager)
	return nil
}

// showStoredProxy reads the proxy back from nvm's settings after a change.
func showStoredProxy(cmd *cobra.Command, manager *nvm.Manager) {
	stored := manager.GetProxy(cmd.Context())
	ui.Debug("Stored proxy: %s", stored)
	if stored.IsSet() {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", ui.Highlight("Proxy"), stored.URL())
	}
}

func init() {
	proxyCmd.AddCommand(proxySetCmd)
	proxyCmd.AddCommand(proxyClearCmd)
	rootCmd.AddCommand(proxyCmd)
}
