package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skilltree/internal/eval"
	"github.com/jonathan/skilltree/internal/filter"
	"github.com/jonathan/skilltree/internal/graph"
	"github.com/jonathan/skilltree/internal/observability"
	"github.com/jonathan/skilltree/internal/store"
)

var (
	evalQuery      string
	evalCategory   string
	evalShowLocked bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the skill tree against your stored profile",
	Long:  "Builds the merged tree, evaluates every node against the persisted profile, applies the given filters, and prints status counts plus a per-career verdict.",
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalQuery, "query", "q", "", "Text filter over titles, subtitles, and tags")
	evalCmd.Flags().StringVar(&evalCategory, "category", filter.CategoryAll, "Category filter (category id or 'all')")
	evalCmd.Flags().BoolVar(&evalShowLocked, "show-locked", true, "Include locked nodes in the output")
	rootCmd.AddCommand(evalCmd)
}

func runEval(_ *cobra.Command, _ []string) error {
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

	nodes, edges := graph.Build(custom)
	annotated := eval.Annotate(nodes, profile)
	view := filter.Apply(annotated, edges, filter.Query{
		Text:       evalQuery,
		Category:   evalCategory,
		ShowLocked: evalShowLocked,
	})

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintView(&view)
		return nil
	}
	printer.PrintCounts(view.Counts)
	return nil
}
