package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/project-lexicon/internal/extract"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <path-or-id>",
	Short: "Look up one record by dotted full path or numeric id",
	Long: `Lookup resolves a single extracted record and prints it as JSON.

Examples:
  lexicon lookup api.Client.connect
  lexicon lookup 42
`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, _, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	var (
		rec *extract.Record
		ok  bool
	)
	if id, err := strconv.Atoi(args[0]); err == nil {
		rec, ok = svc.LookupByID(id)
	} else {
		rec, ok = svc.LookupByPath(args[0])
	}
	if !ok {
		return fmt.Errorf("no record matching %q", args[0])
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec.Reduced())
}
