package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tablewise/tablewise/internal/profile"
	"github.com/tablewise/tablewise/internal/source"
)

var (
	scanDir       string
	scanRecursive bool
	scanVerbose   bool
	scanMinSize   int64
	scanMaxSize   int64
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a directory and profile every CSV file",
	Long: `Scan a directory for CSV files and print a per-file quality
summary: row count, quality score, and flagged columns`,
	Run: func(cmd *cobra.Command, args []string) {
		files, err := source.Discover(scanDir, "csv", source.DiscoverOptions{
			Recursive: scanRecursive,
			MinSize:   scanMinSize,
			MaxSize:   scanMaxSize,
		})
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}
		if len(files) == 0 {
			fmt.Printf("No CSV files found in %s\n", scanDir)
			return
		}

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription("[cyan][reset] Profiling files..."),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)

		for _, file := range files {
			bar.Add(1)

			res, err := source.LoadCSV(file.Path)
			if err != nil {
				log.Printf("Failed to load %s: %v", file.Path, err)
				continue
			}

			ctx := profile.NewContext(res.Table)
			q := ctx.Quality()
			fmt.Printf("\nFile: %s (%s)\n", file.Path, humanize.Bytes(uint64(file.Size)))
			fmt.Printf("- Rows: %s\n", humanize.Comma(int64(res.Table.NumRows())))
			fmt.Printf("- Quality: %v/100 (completeness:%v consistency:%v validity:%v)\n",
				q.Overall, q.Completeness, q.Consistency, q.Validity)
			if n := len(ctx.Outliers()); n > 0 {
				fmt.Printf("- Columns with outliers: %d\n", n)
			}

			if scanVerbose {
				for _, ct := range ctx.Types() {
					fmt.Printf("\nColumn: %s\n", ct.Name)
					fmt.Printf("  Type: %s\n", ct.Type)
					fmt.Printf("  Empty: %d (%v%%)\n", ct.Empty, ct.EmptyPct)
					fmt.Printf("  Distinct: %d (%s cardinality)\n", ct.Unique, ct.Cardinality)
				}
			}
		}

		bar.Finish()
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVarP(&scanDir, "dir", "d", "",
		"Directory to scan (required)")
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false,
		"Search directories recursively")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false,
		"Display per-column details")
	scanCmd.Flags().Int64Var(&scanMinSize, "min-size", 0,
		"Minimum file size in bytes")
	scanCmd.Flags().Int64Var(&scanMaxSize, "max-size", 0,
		"Maximum file size in bytes")

	scanCmd.MarkFlagRequired("dir")
}
