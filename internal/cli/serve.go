package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/project-lexicon/internal/config"
	"github.com/mvp-joe/project-lexicon/internal/extract"
	"github.com/mvp-joe/project-lexicon/internal/mcp"
	"github.com/mvp-joe/project-lexicon/internal/storage"
	"github.com/mvp-joe/project-lexicon/internal/watcher"
)

var serveWatch bool

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for declaration search",
	Long: `Serve starts the Model Context Protocol (MCP) server that lets
LLM-powered coding assistants search and look up extracted declarations.

The server:
- Loads extracted records from the output directory
- Provides lexicon_search (keyword or semantic) and lexicon_lookup tools
- Communicates via stdio (standard MCP transport)

Example:
  lexicon serve
  lexicon serve --watch   # reload records when the document is re-extracted`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "Reload records when the artifact directory changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, cfg, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	fmt.Fprintf(os.Stderr, "Lexicon MCP Server\n")
	fmt.Fprintf(os.Stderr, "Records: %s\n\n", cfg.Output.Dir)

	srv, err := mcp.NewServer(nil, svc)
	if err != nil {
		return err
	}

	if serveWatch {
		rootDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		recordsPath := filepath.Join(resolvePath(rootDir, cfg.Output.Dir), storage.RecordsFile)

		w, err := watcher.New(recordsPath, func(ctx context.Context) {
			reloadService(ctx, svc, cfg, rootDir)
		})
		if err != nil {
			return fmt.Errorf("failed to create records watcher: %w", err)
		}
		defer w.Stop()
		w.Start(ctx)
	}

	return srv.Serve(ctx)
}

// serviceRebuilder is the slice of the search service the reload path needs.
type serviceRebuilder interface {
	Rebuild(ctx context.Context, records []*extract.Record) error
}

// reloadService swaps freshly extracted records into the running service.
func reloadService(ctx context.Context, svc serviceRebuilder, cfg *config.Config, rootDir string) {
	records, err := storage.LoadRecords(resolvePath(rootDir, cfg.Output.Dir))
	if err != nil {
		log.Printf("Warning: reload skipped: %v", err)
		return
	}
	if err := svc.Rebuild(ctx, records); err != nil {
		log.Printf("Warning: reload failed: %v", err)
		return
	}
	log.Printf("Reloaded %d records", len(records))
}
