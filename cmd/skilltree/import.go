package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skilltree/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a custom graph JSON file, replacing the stored one",
	Long:  "Validates the file's structural contract and, on success, fully replaces the persisted custom graph. A rejected file leaves the existing custom graph untouched.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := openBackend(&cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	g, err := store.NewCustomGraphStore(backend).Import(data)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d custom nodes and %d edges.\n", len(g.Nodes), len(g.Edges))
	return nil
}
