package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/project-lexicon/internal/extract"
	"github.com/mvp-joe/project-lexicon/internal/hierarchy"
)

var treeDepth int

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Print the declaration hierarchy",
	Long: `Tree prints the extracted declaration hierarchy, optionally rooted at
one record's dotted full path.

Examples:
  lexicon tree
  lexicon tree api.Client
  lexicon tree --depth 2
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().IntVarP(&treeDepth, "depth", "d", 0, "Maximum depth to print (0 = unlimited)")
}

func runTree(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, _, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	explorer := svc.Explorer()

	var roots []*extract.Record
	if len(args) == 1 {
		rec, ok := svc.LookupByPath(args[0])
		if !ok {
			return fmt.Errorf("no record at path %q", args[0])
		}
		roots = []*extract.Record{rec}
	} else {
		roots = explorer.Roots()
	}

	for _, root := range roots {
		printTree(os.Stdout, explorer, root, "", treeDepth)
	}
	return nil
}

// printTree writes one subtree with box-drawing connectors.
func printTree(w io.Writer, explorer hierarchy.Explorer, rec *extract.Record, prefix string, depth int) {
	fmt.Fprintf(w, "%s%s (%s)\n", prefix, rec.Name, rec.Kind)
	if depth == 1 {
		return
	}

	children := explorer.Children(rec.ID)
	for i, child := range children {
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(children)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		nextDepth := depth
		if depth > 0 {
			nextDepth = depth - 1
		}
		printChild(w, explorer, child, prefix+connector, childPrefix, nextDepth)
	}
}

func printChild(w io.Writer, explorer hierarchy.Explorer, rec *extract.Record, linePrefix, childPrefix string, depth int) {
	fmt.Fprintf(w, "%s%s (%s)\n", linePrefix, rec.Name, rec.Kind)
	if depth == 1 {
		return
	}

	children := explorer.Children(rec.ID)
	for i, child := range children {
		connector := "├── "
		nextPrefix := childPrefix + "│   "
		if i == len(children)-1 {
			connector = "└── "
			nextPrefix = childPrefix + "    "
		}

		nextDepth := depth
		if depth > 0 {
			nextDepth = depth - 1
		}
		printChild(w, explorer, child, childPrefix+connector, nextPrefix, nextDepth)
	}
}
