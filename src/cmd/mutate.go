package cmd

import (
	"context"
	"fmt"

	"github.com/nvmw/nvmw/src/internal/nvm"
	"github.com/nvmw/nvmw/src/internal/ui"
	"github.com/spf13/cobra"
)

// runMutation runs one of use/install/uninstall behind a spinner, then
// reads the installed versions back from nvm so what is shown reflects
// the backend rather than what the command asked for.
func runMutation(cmd *cobra.Command, message string, op func(context.Context, *nvm.Manager) nvm.Outcome[string]) error {
	manager, err := newManager()
	if err != nil {
		return err
	}

	spinner := ui.NewSpinner(message)
	spinner.Start()
	outcome := op(cmd.Context(), manager)
	if outcome.Success {
		spinner.Success(outcome.Message)
	} else {
		spinner.Error(outcome.Message)
		if outcome.Err != nil {
			ui.Debug("%v", outcome.Err)
		}
	}

	result := mutationResult{Success: outcome.Success, Message: outcome.Message}
	if outcome.Success {
		result.Version = outcome.Payload
		result.Installed = manager.ListInstalled(cmd.Context())
	}

	if jsonOutput {
		if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else if len(result.Installed) > 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderInstalled(result.Installed))
	}
	return outcomeError(outcome)
}
