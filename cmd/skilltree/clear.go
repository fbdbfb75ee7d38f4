package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/skilltree/internal/store"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the entire stored custom graph",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := openBackend(&cfg)
	if err != nil {
		return err
	}

	if err := store.NewCustomGraphStore(backend).Clear(); err != nil {
		return err
	}
	fmt.Println("Custom graph cleared.")
	return nil
}
