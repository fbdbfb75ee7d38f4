// Package main provides the entry point for the skilltree CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/skilltree/internal/config"
	"github.com/jonathan/skilltree/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skilltree",
	Short: "Interactive career skill-tree navigator",
	Long:  "skilltree renders a radial tree of careers, credentials, and skills, evaluates which nodes your profile qualifies for, and generates plaintext resume drafts.",
}

var (
	cfgFile     string
	dataDir     string
	verboseFlag bool
	jsonLogFlag bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding persisted state (default ~/.skilltree)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print detailed output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogFlag, "json", false, "JSON format for logging")
}

// loadConfig merges the optional config file with flag and built-in defaults.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return cfg, err
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if verboseFlag {
		cfg.Verbose = true
	}
	if jsonLogFlag {
		cfg.LogJSON = true
	}

	return cfg.MergeWithDefaults(config.Config{
		DataDir: config.DefaultDataDir(),
		Port:    8080,
	}), nil
}

// openBackend opens the file-backed store under the configured data dir.
func openBackend(cfg *config.Config) (store.Backend, error) {
	backend, err := store.NewFileBackend(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}
	return backend, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
