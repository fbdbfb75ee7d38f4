package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skilltree/internal/graph"
	"github.com/jonathan/skilltree/internal/resume"
	"github.com/jonathan/skilltree/internal/store"
	"github.com/jonathan/skilltree/internal/types"
)

var (
	resumeTarget string
	resumeNotes  string
	resumeOut    string
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Generate a plaintext resume draft from your profile",
	RunE:  runResume,
}

func init() {
	resumeCmd.Flags().StringVarP(&resumeTarget, "target", "t", "", "Target career node id for the summary line")
	resumeCmd.Flags().StringVar(&resumeNotes, "notes", "", "Free-text notes appended to the summary")
	resumeCmd.Flags().StringVarP(&resumeOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(resumeCmd)
}

func runResume(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := openBackend(&cfg)
	if err != nil {
		return err
	}

	profile, err := store.NewProfileStore(backend).Load()
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	custom, err := store.NewCustomGraphStore(backend).Load()
	if err != nil {
		return fmt.Errorf("failed to load custom graph: %w", err)
	}

	nodes, _ := graph.Build(custom)
	index := graph.Lookup(nodes)
	doc := resume.Generate(profile, resumeTarget, resumeNotes, func(id string) *types.GraphNode {
		return index[id]
	})

	if resumeOut == "" {
		fmt.Print(doc)
		return nil
	}
	if err := os.WriteFile(resumeOut, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write resume: %w", err)
	}
	fmt.Printf("Resume written to %s\n", resumeOut)
	return nil
}
