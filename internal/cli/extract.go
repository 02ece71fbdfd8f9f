package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/project-lexicon/internal/config"
	"github.com/mvp-joe/project-lexicon/internal/extract"
	"github.com/mvp-joe/project-lexicon/internal/storage"
	"github.com/mvp-joe/project-lexicon/internal/typedoc"
	"github.com/mvp-joe/project-lexicon/internal/watcher"
)

var (
	quietFlag bool
	watchFlag bool
	inputFlag string
	outFlag   string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract normalized records from a declaration document",
	Long: `Extract walks the declaration document and produces one normalized
record per documented symbol, plus a derived lookup index and run summary.

Artifacts written to the output directory:
  records.json      full records, including original node references
  records.min.json  reduced records (node references stripped)
  index.json        lookup index (id:, path:, token: keys)
  summary.json      run summary (timestamp, count, project)

Examples:
  # Extract using .lexicon/config.yml
  lexicon extract

  # Extract a specific document
  lexicon extract --input api/docs.json

  # Re-extract whenever the document changes
  lexicon extract --watch
`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	extractCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch the document and re-extract on change")
	extractCmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Declaration document path (overrides config)")
	extractCmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output directory (overrides config)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling extraction...")
		cancel()
	}()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if inputFlag != "" {
		cfg.Input.Document = inputFlag
	}
	if outFlag != "" {
		cfg.Output.Dir = outFlag
	}

	progress := NewCLIProgressReporter(quietFlag)

	runOnce := func(ctx context.Context) error {
		return runExtraction(cfg, rootDir, progress)
	}

	if err := runOnce(ctx); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}

	// Watch mode: re-extract on every debounced document change.
	docPath := resolvePath(rootDir, cfg.Input.Document)
	w, err := watcher.New(docPath, func(ctx context.Context) {
		if err := runOnce(ctx); err != nil {
			log.Printf("Warning: re-extraction failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create document watcher: %w", err)
	}
	defer w.Stop()

	w.Start(ctx)
	if !quietFlag {
		log.Printf("Watching %s for changes (Ctrl+C to stop)...", cfg.Input.Document)
	}
	<-ctx.Done()
	return nil
}

// runExtraction performs one full extraction run: load, walk, persist.
func runExtraction(cfg *config.Config, rootDir string, progress ProgressReporter) error {
	start := time.Now()

	docPath := resolvePath(rootDir, cfg.Input.Document)
	progress.OnLoadStart(cfg.Input.Document)
	doc, err := typedoc.LoadDocument(docPath)
	if err != nil {
		return err
	}

	excludes, err := extract.CompileExcludes(cfg.Paths.Exclude)
	if err != nil {
		return err
	}

	progress.OnWalkStart(countNodes(&doc.Declaration) - 1) // root is not a record

	walker := extract.NewWalker(extract.NewExtractor(),
		extract.WithExcludeGlobs(excludes...),
		extract.WithProgress(func(node *typedoc.Declaration) {
			progress.OnNodeExtracted(node.Name)
		}),
	)
	result := walker.Walk(doc)

	index := extract.BuildLookupIndex(result.Records)
	summary := extract.NewRunSummary(doc, result)

	outputDir := resolvePath(rootDir, cfg.Output.Dir)
	writer, err := storage.NewArtifactWriter(outputDir)
	if err != nil {
		return err
	}
	if err := writer.WriteAll(result.Records, index, summary); err != nil {
		return err
	}

	if cfg.Storage.SQLite {
		db, err := storage.OpenDB(filepath.Join(outputDir, cfg.Storage.Database))
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.ReplaceRecords(result.Records); err != nil {
			return err
		}
	}

	progress.OnComplete(result, summary, time.Since(start))
	return nil
}

// countNodes counts the declarations in a subtree, root included.
func countNodes(node *typedoc.Declaration) int {
	if node == nil {
		return 0
	}
	count := 1
	for _, child := range node.Children {
		count += countNodes(child)
	}
	return count
}

// resolvePath makes a config-relative path absolute against the root.
func resolvePath(rootDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}
