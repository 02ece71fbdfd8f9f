package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/project-lexicon/internal/config"
	"github.com/mvp-joe/project-lexicon/internal/search"
	"github.com/mvp-joe/project-lexicon/internal/storage"
)

var (
	searchLimit    int
	searchKinds    []string
	searchSemantic bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search extracted records by keyword or semantic similarity",
	Long: `Search runs a query over the extracted record collection.

Keyword mode (default) uses bleve QueryString syntax: field scoping
(name:Client), boolean operators, "quoted phrases", wildcards, and fuzzy
matching. Semantic mode embeds the query and ranks records by vector
similarity.

Examples:
  lexicon search "retry backoff"
  lexicon search --kind Class --kind Interface "client"
  lexicon search --semantic "how do I open a connection"
`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum results (default from config)")
	searchCmd.Flags().StringArrayVarP(&searchKinds, "kind", "k", nil, "Filter by declaration kind (repeatable)")
	searchCmd.Flags().BoolVarP(&searchSemantic, "semantic", "s", false, "Use semantic (vector) search")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, cfg, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	limit := searchLimit
	if limit <= 0 {
		limit = cfg.Search.Limit
	}
	options := &search.Options{
		Limit:    limit,
		Kinds:    searchKinds,
		MinScore: cfg.Search.MinScore,
	}

	results, err := svc.Search(ctx, args[0], options, searchSemantic)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return nil
	}

	for i, r := range results {
		fmt.Printf("%2d. %s  (%s, score %.3f)\n", i+1, r.Record.FullPath, r.Record.Kind, r.Score)
		if summary := r.Record.Documentation.Summary; summary != "" {
			fmt.Printf("    %s\n", firstLine(summary))
		}
		for _, h := range r.Highlights {
			fmt.Printf("    … %s\n", stripTags(h))
		}
	}
	fmt.Printf("\n%d result(s)\n", len(results))
	return nil
}

// loadService builds the search stack from the persisted record artifacts.
func loadService(ctx context.Context) (*search.Service, *config.Config, error) {
	rootDir, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	records, err := storage.LoadRecords(resolvePath(rootDir, cfg.Output.Dir))
	if err != nil {
		return nil, nil, err
	}

	svc, err := search.NewService(ctx, records, search.ServiceConfig{
		Dimensions:    cfg.Search.Dimensions,
		CacheCapacity: cfg.Storage.CacheCapacity,
	})
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

// firstLine trims a summary to its first line for list output.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// stripTags removes the <em> highlight markers bleve inserts.
func stripTags(s string) string {
	s = strings.ReplaceAll(s, "<em>", "")
	return strings.ReplaceAll(s, "</em>", "")
}
