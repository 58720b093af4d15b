package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nvmw/nvmw/src/internal/nvm"
	"github.com/nvmw/nvmw/src/internal/tui"
	"github.com/nvmw/nvmw/src/internal/ui"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// report prints an outcome's message and maps failure to errFailed.
func report[T any](outcome nvm.Outcome[T]) error {
	if !outcome.Success {
		ui.Error("%s", outcome.Message)
		if outcome.Err != nil {
			ui.Debug("%v", outcome.Err)
		}
		return errFailed
	}
	ui.Success("%s", outcome.Message)
	return nil
}

// mutationResult is the JSON shape of use/install/uninstall: the outcome
// plus the installed versions read back afterwards.
type mutationResult struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Version   string              `json:"payload,omitempty"`
	Installed []nvm.VersionRecord `json:"installed,omitempty"`
}

// renderInstalled renders installed versions as a table, marking the
// active one.
func renderInstalled(records []nvm.VersionRecord) string {
	table := tui.NewTable("", "Version", "Status")
	table.SetTitle("Node.js")
	for _, r := range records {
		if r.Active {
			table.AddActiveRow(tui.GetCheckMark(), "v"+r.Version, "in use")
		} else {
			table.AddRow("", "v"+r.Version, "")
		}
	}
	return table.Render()
}

func outcomeError[T any](outcome nvm.Outcome[T]) error {
	if outcome.Success {
		return nil
	}
	return errFailed
}
