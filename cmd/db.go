package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tablewise/tablewise/internal/profile"
	"github.com/tablewise/tablewise/internal/source"
)

var (
	dbTable string
	dbSQL   string
	dbLimit int
)

var dbCmd = &cobra.Command{
	Use:   "db [sqlite-file]",
	Short: "Profile a SQLite table or query result",
	Long: `Open a SQLite database and profile one table or the result of a
SQL query. Without --table or --sql, lists the available tables.

Examples:
  tablewise db app.sqlite
  tablewise db app.sqlite --table orders
  tablewise db app.sqlite --sql "SELECT region, amount FROM orders"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()

		db, err := source.OpenDB(args[0])
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		ctx := context.Background()

		if dbTable == "" && dbSQL == "" {
			tables, err := db.Tables(ctx)
			if err != nil {
				log.Fatalf("Failed to list tables: %v", err)
			}
			if len(tables) == 0 {
				fmt.Println("No tables found")
				return
			}
			fmt.Printf("Tables in %s:\n", args[0])
			for _, name := range tables {
				count, err := db.TableRowCount(ctx, name)
				if err != nil {
					log.Printf("Failed to count rows of %s: %v", name, err)
					continue
				}
				fmt.Printf("  %s (%s rows)\n", name, humanize.Comma(int64(count)))
			}
			return
		}

		limit := dbLimit
		if limit <= 0 {
			limit = settings.RowLimit
		}

		var query string
		var tbl *profile.Context
		switch {
		case dbSQL != "":
			query = dbSQL
			loaded, err := db.Query(ctx, dbSQL)
			if err != nil {
				log.Fatalf("Query failed: %v", err)
			}
			tbl = profile.NewContext(loaded)
		default:
			query = dbTable
			loaded, err := db.QueryTable(ctx, dbTable, limit)
			if err != nil {
				log.Fatalf("Failed to load table %s: %v", dbTable, err)
			}
			tbl = profile.NewContext(loaded)
		}

		fmt.Printf("\nSource: %s (%s)\n", args[0], query)
		fmt.Printf("  Rows: %s  |  Columns: %d  (row limit %d)\n",
			humanize.Comma(int64(tbl.Table().NumRows())), tbl.Table().NumColumns(), limit)
		printOverview(tbl, settings.PreviewRows)

		store := historyStore(settings)
		if err := store.Append("db", args[0], query, tbl.QualityText()); err != nil {
			log.Printf("Failed to record history: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.Flags().StringVarP(&dbTable, "table", "t", "",
		"Table to profile")
	dbCmd.Flags().StringVarP(&dbSQL, "sql", "s", "",
		"SQL query whose result is profiled")
	dbCmd.Flags().IntVarP(&dbLimit, "limit", "l", 0,
		"Maximum rows loaded from a table (default from config)")
}
