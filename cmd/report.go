package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tablewise/tablewise/internal/profile"
	"github.com/tablewise/tablewise/internal/report"
	"github.com/tablewise/tablewise/internal/source"
)

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Generate a markdown analysis report",
	Long: `Profile a delimited file and assemble a markdown report with
summary metrics, quality breakdown, outliers, schema, statistics, and
visualization recommendations.

Examples:
  tablewise report sales.csv
  tablewise report sales.csv -o sales-report.md`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()

		res, err := source.LoadCSV(args[0])
		if err != nil {
			log.Fatalf("Failed to load %s: %v", args[0], err)
		}

		ctx := profile.NewContext(res.Table)
		content := report.Build(ctx, report.Options{
			Source:      args[0],
			PreviewRows: settings.PreviewRows,
		})

		if reportOutput != "" {
			if err := os.WriteFile(reportOutput, []byte(content), 0o644); err != nil {
				log.Fatalf("Failed to write report: %v", err)
			}
			fmt.Printf("Report saved to %s\n", reportOutput)
		} else {
			fmt.Print(content)
		}

		store := historyStore(settings)
		if err := store.Append("report", args[0], "", ctx.QualityText()); err != nil {
			log.Printf("Failed to record history: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "",
		"Output file to save the report (default: stdout)")
}
