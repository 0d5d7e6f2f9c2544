// Package clean implements the clean command: it deduplicates and
// normalizes the raw records into the cleaned JSON and CSV artifacts.
package clean

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/cleverscrape/cmd/common"
	"github.com/jonesrussell/cleverscrape/internal/clean"
)

// Command returns the clean command for use in the root command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Clean and flatten the raw scrape output",
		Long: `This command reads the raw record file, removes duplicates, normalizes
text, prices, and image lists, and writes the cleaned JSON and CSV artifacts.

A missing raw record file aborts the run without writing outputs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			entries, err := clean.Load(deps.Config.Output.Raw)
			if err != nil {
				return err
			}

			items, stats := clean.Process(entries, deps.Logger)

			if err := clean.WriteJSON(deps.Config.Output.CleanedJSON, items); err != nil {
				return err
			}
			if err := clean.WriteCSV(deps.Config.Output.CleanedCSV, items); err != nil {
				return err
			}

			deps.Logger.Info("Cleaned artifacts written",
				"json", deps.Config.Output.CleanedJSON,
				"csv", deps.Config.Output.CleanedCSV,
			)
			renderStats(stats)
			return nil
		},
	}
}

// renderStats prints the cleaning run summary as a table.
func renderStats(stats clean.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Input", "Cleaned", "Duplicates Removed", "With Images"})
	t.AppendRow(table.Row{stats.Input, stats.Cleaned, stats.Removed, stats.WithImages})

	t.Render()
}
