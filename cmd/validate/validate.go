// Package validate implements the validate command: a read-only
// cross-check of the cleaned JSON and CSV artifacts.
package validate

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/cleverscrape/cmd/common"
	"github.com/jonesrussell/cleverscrape/internal/validate"
)

// Command returns the validate command for use in the root command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the cleaned output artifacts",
		Long: `This command loads the cleaned JSON and CSV artifacts, reports items
missing required fields, and compares the row counts of the two files.
It never modifies anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			jsonPath := deps.Config.Output.CleanedJSON
			csvPath := deps.Config.Output.CleanedCSV

			jsonReport, jsonErr := validate.CheckJSON(jsonPath)
			if jsonErr != nil {
				fmt.Printf("JSON check failed: %v\n", jsonErr)
			} else {
				renderJSONReport(jsonPath, jsonReport)
			}

			csvReport, csvErr := validate.CheckCSV(csvPath, jsonPath)
			if csvErr != nil {
				fmt.Printf("CSV check failed: %v\n", csvErr)
			} else {
				renderCSVReport(csvPath, csvReport)
			}

			return nil
		},
	}
}

// renderJSONReport prints the per-field missing-value counts.
func renderJSONReport(path string, report *validate.JSONReport) {
	fmt.Printf("Loaded %d items from %s\n", report.Total, path)

	if report.Complete() {
		fmt.Println("All required fields are present")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Field", "Missing Values"})
	for _, field := range validate.RequiredFields {
		if n := report.Missing[field]; n > 0 {
			t.AppendRow(table.Row{field, n})
		}
	}
	t.Render()
}

// renderCSVReport prints the row-count comparison.
func renderCSVReport(path string, report *validate.CSVReport) {
	fmt.Printf("Loaded %d rows from %s\n", report.Rows, path)
	if report.Match() {
		fmt.Println("CSV and JSON item counts match")
	} else {
		fmt.Printf("Count mismatch: CSV rows %d, JSON items %d\n", report.Rows, report.JSONItems)
	}
}
