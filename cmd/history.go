package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"
)

var historyClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded profiling actions",
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()
		store := historyStore(settings)

		if historyClear {
			if err := store.Clear(); err != nil {
				log.Fatalf("Failed to clear history: %v", err)
			}
			fmt.Println("History cleared")
			return
		}

		entries := store.Load()
		if len(entries) == 0 {
			fmt.Println("No history recorded")
			return
		}

		shown := entries
		if len(shown) > 20 {
			shown = shown[len(shown)-20:]
		}
		fmt.Printf("History (last %d entries):\n", len(shown))
		for _, e := range shown {
			query := e.Query
			if len(query) > 50 {
				query = query[:50]
			}
			fmt.Printf("  [%s] %s on %s", e.Timestamp.Format("2006-01-02 15:04:05"),
				e.Action, filepath.Base(e.Source))
			if query != "" {
				fmt.Printf(": %s", query)
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyClear, "clear", false,
		"Clear recorded history")
}
