// Package config loads tablewise settings from file, environment, and
// defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings controls the application shell. The profiling engine's own
// thresholds are fixed design constants and deliberately absent here.
type Settings struct {
	// RowLimit bounds rows loaded from a database table before profiling.
	RowLimit int `mapstructure:"row_limit" yaml:"row_limit"`
	// PreviewRows is the number of rows shown in data previews.
	PreviewRows int `mapstructure:"preview_rows" yaml:"preview_rows"`
	// HistorySize is the number of history entries retained.
	HistorySize int `mapstructure:"history_size" yaml:"history_size"`
	// StateDir overrides where history and logs are kept.
	StateDir string `mapstructure:"state_dir" yaml:"state_dir"`
}

// Load reads configuration with precedence: explicit file > env > config
// file in ~/.tablewise > defaults.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("TABLEWISE")
	v.AutomaticEnv()

	v.SetDefault("row_limit", 1000)
	v.SetDefault("preview_rows", 5)
	v.SetDefault("history_size", 100)
	v.SetDefault("state_dir", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".tablewise"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			// Missing default config is fine; only malformed files error.
			if err := v.ReadInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					return nil, fmt.Errorf("read config: %w", err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &s, nil
}

// Save writes settings to path, or to ~/.tablewise/config.yaml when path
// is empty, creating the directory as needed.
func Save(s *Settings, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tablewise")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// StatePath resolves the state directory, defaulting to ~/.tablewise.
func (s *Settings) StatePath() (string, error) {
	if s.StateDir != "" {
		return s.StateDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".tablewise"), nil
}
