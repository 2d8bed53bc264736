package cmd

import (
	"fmt"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tablewise/tablewise/internal/profile"
	"github.com/tablewise/tablewise/internal/source"
)

var (
	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	fairStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	poorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show dataset overview with quality diagnostics",
	Long: `Load a delimited file and print its profile: dimensions, data
quality score, per-column types and statistics, detected outliers, a data
preview, and visualization recommendations.

Examples:
  tablewise info sales.csv
  tablewise info --config my.yaml data/orders.csv`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()

		res, err := source.LoadCSV(args[0])
		if err != nil {
			log.Fatalf("Failed to load %s: %v", args[0], err)
		}

		ctx := profile.NewContext(res.Table)
		fmt.Printf("\nDataset: %s\n", args[0])
		fmt.Printf("  Rows: %s  |  Columns: %d  |  Delimiter: %q  |  Encoding: %s\n",
			humanize.Comma(int64(res.Table.NumRows())), res.Table.NumColumns(),
			res.Delimiter, res.Encoding)
		printOverview(ctx, settings.PreviewRows)

		store := historyStore(settings)
		if err := store.Append("info", args[0], "", ctx.QualityText()); err != nil {
			log.Printf("Failed to record history: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func qualityBadge(score float64) string {
	switch {
	case score >= 80:
		return goodStyle.Render(fmt.Sprintf("%v/100", score))
	case score >= 60:
		return fairStyle.Render(fmt.Sprintf("%v/100", score))
	default:
		return poorStyle.Render(fmt.Sprintf("%v/100", score))
	}
}

// printOverview writes the shared profile summary used by info and db.
func printOverview(ctx *profile.Context, previewRows int) {
	q := ctx.Quality()
	fmt.Printf("  Quality: %s (completeness:%v consistency:%v validity:%v)\n\n",
		qualityBadge(q.Overall), q.Completeness, q.Consistency, q.Validity)

	fmt.Println("Columns:")
	stats := ctx.Stats()
	for _, ct := range ctx.Types() {
		line := fmt.Sprintf("  %s (%s)  [%s cardinality, %d distinct]",
			ct.Name, ct.Type, ct.Cardinality, ct.Unique)
		if ct.Empty > 0 {
			line += fmt.Sprintf("  empty:%d (%v%%)", ct.Empty, ct.EmptyPct)
		}
		if s, ok := stats[ct.Index]; ok {
			line += fmt.Sprintf("  min=%v max=%v mean=%v std=%v", s.Min, s.Max, s.Mean, s.StdDev)
		}
		fmt.Println(line)
	}

	outliers := ctx.Outliers()
	if len(outliers) > 0 {
		fmt.Println("\nOutliers (IQR method):")
		for _, ct := range ctx.Types() {
			o, ok := outliers[ct.Index]
			if !ok {
				continue
			}
			fmt.Printf("  %s: %d outliers (%v%%), normal range [%v, %v]\n",
				ct.Name, o.Count, o.Percentage, o.LowerBound, o.UpperBound)
		}
	}

	n := previewRows
	if rows := ctx.Table().NumRows(); rows < n {
		n = rows
	}
	fmt.Printf("\nPreview (first %d rows):\n%s\n", n, ctx.Preview(previewRows))

	if suggestions := ctx.Suggestions(); len(suggestions) > 0 {
		fmt.Println("\nRecommended visualizations:")
		for i, s := range suggestions {
			if i >= 3 {
				break
			}
			fmt.Printf("  %d. %s (%s): %s\n", i+1, s.Chart, s.Priority, s.Reason)
		}
	}
	fmt.Println()
}
