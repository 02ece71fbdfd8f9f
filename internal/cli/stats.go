package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/project-lexicon/internal/config"
	"github.com/mvp-joe/project-lexicon/internal/hierarchy"
	"github.com/mvp-joe/project-lexicon/internal/storage"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics about the extracted record collection",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	outputDir := resolvePath(rootDir, cfg.Output.Dir)
	records, err := storage.LoadRecords(outputDir)
	if err != nil {
		return err
	}
	summary, err := storage.LoadSummary(outputDir)
	if err != nil {
		return err
	}

	stats := hierarchy.NewExplorer(records).Stats()

	if summary.Project.Name != "" {
		fmt.Printf("Project:    %s %s\n", summary.Project.Name, summary.Project.Version)
	}
	if summary.GeneratedAt != "" {
		fmt.Printf("Extracted:  %s (run %s)\n", summary.GeneratedAt, summary.RunID)
	}
	fmt.Printf("Records:    %s\n", formatNumber(stats.TotalRecords))
	if summary.ExcludedCount > 0 {
		fmt.Printf("Excluded:   %s\n", formatNumber(summary.ExcludedCount))
	}
	fmt.Printf("Documented: %s\n", formatNumber(stats.Documented))
	fmt.Printf("Modules:    %s\n", formatNumber(stats.ModuleCount))
	fmt.Printf("Max depth:  %d\n", stats.MaxDepth)

	tokens := 0
	for _, rec := range records {
		tokens += len(rec.SearchTokens)
	}
	fmt.Printf("Tokens:     %s\n", formatNumber(tokens))

	// Per-kind counts, largest first.
	kinds := make([]string, 0, len(stats.ByKind))
	for kind := range stats.ByKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if stats.ByKind[kinds[i]] != stats.ByKind[kinds[j]] {
			return stats.ByKind[kinds[i]] > stats.ByKind[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	fmt.Println("\nBy kind:")
	for _, kind := range kinds {
		fmt.Printf("  %-18s %s\n", kind, formatNumber(stats.ByKind[kind]))
	}
	return nil
}
