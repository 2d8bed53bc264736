package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tablewise/tablewise/internal/config"
	"github.com/tablewise/tablewise/internal/history"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tablewise",
	Short: "Tabular data profiling CLI",
	Long: `Profile CSV files and SQLite tables: column types, statistics,
outliers, data quality scoring, and visualization recommendations`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.tablewise/config.yaml)")
}

// loadSettings resolves configuration for a command, exiting on a broken
// config file.
func loadSettings() *config.Settings {
	settings, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return settings
}

// historyStore opens the history store under the configured state dir.
func historyStore(settings *config.Settings) *history.Store {
	dir, err := settings.StatePath()
	if err != nil {
		log.Fatalf("Failed to resolve state directory: %v", err)
	}
	return history.NewStore(dir, settings.HistorySize)
}
