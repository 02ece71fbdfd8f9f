package extract

import (
	"time"

	"github.com/google/uuid"

	"github.com/mvp-joe/project-lexicon/internal/typedoc"
)

// RunSummary describes one completed extraction run.
type RunSummary struct {
	RunID         string  `json:"run_id"`
	GeneratedAt   string  `json:"generated_at"`
	RecordCount   int     `json:"record_count"`
	ExcludedCount int     `json:"excluded_count,omitempty"`
	Project       Project `json:"project"`
}

// Project carries the input document's metadata, uninterpreted.
type Project struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// NewRunSummary stamps a summary for a finished run.
func NewRunSummary(doc *typedoc.Document, result *Result) RunSummary {
	summary := RunSummary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if result != nil {
		summary.RecordCount = len(result.Records)
		summary.ExcludedCount = result.Excluded
	}
	if doc != nil {
		summary.Project = Project{Name: doc.ProjectName(), Version: doc.PackageVersion}
	}
	return summary
}
