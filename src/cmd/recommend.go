package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nvmw/nvmw/src/internal/catalog"
	"github.com/nvmw/nvmw/src/internal/nvm"
	"github.com/nvmw/nvmw/src/internal/tui"
	"github.com/nvmw/nvmw/src/internal/ui"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:     "recommend",
	Aliases: []string{"list-available"},
	Short:   "List Node.js releases available to install",
	Long: `Download the Node.js release index and list the releases, newest first.
The index is fetched through the proxy nvm is configured with.
Installed versions are marked with a ✓ indicator.

Without --page the list is shown one page at a time; press Enter for the
next page or q to quit.

Examples:
  nvmw recommend
  nvmw recommend --lts
  nvmw recommend --filter v20. --page 2 --per-page 10
  nvmw recommend --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ltsOnly, _ := cmd.Flags().GetBool("lts")
		filter, _ := cmd.Flags().GetString("filter")
		page, _ := cmd.Flags().GetInt("page")
		perPage, _ := cmd.Flags().GetInt("per-page")

		manager, err := newManager()
		if err != nil {
			return err
		}

		ui.Progress("Fetching available versions...")
		outcome := manager.FetchRecommended(cmd.Context())
		if !outcome.Success {
			if jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), outcome); err != nil {
					return err
				}
			}
			return report(outcome)
		}

		entries := outcome.Payload
		if ltsOnly {
			entries = catalog.FilterLTS(entries)
		}
		entries = catalog.Filter(entries, filter)

		if jsonOutput {
			p := catalog.Paginate(len(entries), page, perPage)
			if !cmd.Flags().Changed("page") {
				p = catalog.Paginate(len(entries), 1, 0)
			}
			outcome.Payload = entries[p.Start:p.End]
			return writeJSON(cmd.OutOrStdout(), outcome)
		}

		if len(entries) == 0 {
			ui.Warning("No versions match filter: %s", filter)
			return nil
		}

		installed := installedSet(manager.ListInstalled(cmd.Context()))
		out := cmd.OutOrStdout()

		if cmd.Flags().Changed("page") {
			p := catalog.Paginate(len(entries), page, perPage)
			_, _ = fmt.Fprintln(out, renderReleases(entries[p.Start:p.End], installed))
			ui.Info("Page %d of %d (%d releases)", p.Number, p.Total, len(entries))
			for _, hint := range pageHints(p) {
				ui.Info("%s", hint)
			}
			return nil
		}

		browseReleases(out, cmd.InOrStdin(), entries, perPage, installed)
		ui.Info("Install a version with: nvmw install <version>")
		return nil
	},
}

// browseReleases shows entries a page at a time until the list ends or
// the user quits.
func browseReleases(out io.Writer, in io.Reader, entries []catalog.Entry, perPage int, installed map[string]bool) {
	reader := bufio.NewReader(in)

	for n := 1; ; n++ {
		p := catalog.Paginate(len(entries), n, perPage)

		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, renderReleases(entries[p.Start:p.End], installed))

		if !p.HasNext() {
			_, _ = fmt.Fprintln(out)
			ui.Success("Showing all %d version(s)", len(entries))
			return
		}

		ui.Printf("Showing %d of %d. Press Enter for more (q to quit): ", p.End, len(entries))
		input, err := reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))
		if err != nil || input == "q" || input == "quit" {
			return
		}
	}
}

// pageHints names the flags that reach the neighbouring pages.
func pageHints(p catalog.Page) []string {
	var hints []string
	if p.HasPrev() {
		hints = append(hints, fmt.Sprintf("Previous page: --page %d", p.Number-1))
	}
	if p.HasNext() {
		hints = append(hints, fmt.Sprintf("Next page: --page %d", p.Number+1))
	}
	return hints
}

func renderReleases(entries []catalog.Entry, installed map[string]bool) string {
	table := tui.NewTable("", "Version", "npm", "Date", "LTS", "Notes")
	table.SetTitle("Node.js releases")

	for _, e := range entries {
		marker := ""
		if installed[strings.TrimPrefix(e.Version, "v")] {
			marker = tui.GetCheckMark()
		}
		notes := ""
		if e.Security {
			notes = "security"
		}
		table.AddRow(marker, e.Version, e.NpmVersion, e.Date, e.LTS, notes)
	}
	return table.Render()
}

func installedSet(records []nvm.VersionRecord) map[string]bool {
	set := make(map[string]bool, len(records))
	for _, r := range records {
		set[r.Version] = true
	}
	return set
}

func init() {
	recommendCmd.Flags().Bool("lts", false, "Only show LTS releases")
	recommendCmd.Flags().StringP("filter", "f", "", "Filter versions by substring (e.g., 'v20.' for Node.js 20.x)")
	recommendCmd.Flags().IntP("page", "p", 1, "Show only this page")
	recommendCmd.Flags().IntP("per-page", "l", 20, "Number of versions to show per page")
	rootCmd.AddCommand(recommendCmd)
}
