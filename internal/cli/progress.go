package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/project-lexicon/internal/extract"
)

// ProgressReporter receives extraction lifecycle events.
type ProgressReporter interface {
	OnLoadStart(document string)
	OnWalkStart(totalNodes int)
	OnNodeExtracted(name string)
	OnComplete(result *extract.Result, summary extract.RunSummary, elapsed time.Duration)
}

// CLIProgressReporter implements progress reporting with a progress bar.
type CLIProgressReporter struct {
	quiet     bool
	walkBar   *progressbar.ProgressBar
	startTime time.Time
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (c *CLIProgressReporter) OnLoadStart(document string) {
	if c.quiet {
		return
	}
	log.Printf("Loading declaration document %s...", document)
}

func (c *CLIProgressReporter) OnWalkStart(totalNodes int) {
	if c.quiet {
		return
	}
	c.walkBar = progressbar.NewOptions(totalNodes,
		progressbar.OptionSetDescription("Extracting declarations"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("decls/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *CLIProgressReporter) OnNodeExtracted(name string) {
	if c.quiet {
		return
	}
	if c.walkBar != nil {
		c.walkBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnComplete(result *extract.Result, summary extract.RunSummary, elapsed time.Duration) {
	if c.quiet {
		return
	}
	if c.walkBar != nil {
		c.walkBar.Finish()
		c.walkBar = nil
	}

	fmt.Println()
	fmt.Printf("✓ Extraction complete: %s records in %.1fs\n",
		formatNumber(summary.RecordCount), elapsed.Seconds())
	if summary.Project.Name != "" {
		fmt.Printf("  Project:  %s %s\n", summary.Project.Name, summary.Project.Version)
	}
	if result.Excluded > 0 {
		fmt.Printf("  Excluded: %d (matched exclude patterns)\n", result.Excluded)
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("  Warnings: %d (nodes skipped)\n", len(result.Warnings))
	}
}

// formatNumber renders n with thousands separators.
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	var result string
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}
	return result
}
