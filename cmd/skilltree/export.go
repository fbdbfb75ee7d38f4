package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skilltree/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the custom graph as a JSON file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "skilltree-custom.json", "Output file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := openBackend(&cfg)
	if err != nil {
		return err
	}

	data, err := store.NewCustomGraphStore(backend).Export()
	if errors.Is(err, store.ErrNoCustomGraph) {
		fmt.Println("No custom graph to export.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to export custom graph: %w", err)
	}

	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("Custom graph exported to %s\n", exportOut)
	return nil
}
