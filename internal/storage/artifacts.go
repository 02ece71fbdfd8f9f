// Package storage persists extraction runs: the four JSON artifacts
// (records, reduced records, lookup index, run summary) written atomically
// to an output directory, and an optional SQLite database with an FTS5
// index for full-text queries over the same records.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvp-joe/project-lexicon/internal/extract"
)

// Artifact file names inside the output directory.
const (
	RecordsFile        = "records.json"
	ReducedRecordsFile = "records.min.json"
	IndexFile          = "index.json"
	SummaryFile        = "summary.json"
)

// ArtifactWriter writes run artifacts atomically using the temp → rename
// pattern, so readers never observe a partially written file.
type ArtifactWriter struct {
	outputDir string
	tempDir   string
}

// NewArtifactWriter prepares an output directory and a clean temp area.
func NewArtifactWriter(outputDir string) (*ArtifactWriter, error) {
	tempDir := filepath.Join(outputDir, ".tmp")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Clean up stale temp files from interrupted runs.
	if err := os.RemoveAll(tempDir); err != nil {
		return nil, fmt.Errorf("failed to clean temp directory: %w", err)
	}
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &ArtifactWriter{
		outputDir: outputDir,
		tempDir:   tempDir,
	}, nil
}

// WriteAll writes the four run artifacts: full records, reduced records,
// lookup index, and run summary.
func (w *ArtifactWriter) WriteAll(records []*extract.Record, index map[string]any, summary extract.RunSummary) error {
	if err := w.WriteRecords(records); err != nil {
		return err
	}
	if err := w.WriteIndex(index); err != nil {
		return err
	}
	return w.WriteSummary(summary)
}

// WriteRecords writes the full record collection and its reduced variant.
// The full form is indented for inspection; the reduced form is compact
// and drops the original node references.
func (w *ArtifactWriter) WriteRecords(records []*extract.Record) error {
	if err := w.writeJSON(RecordsFile, records, true); err != nil {
		return err
	}

	reduced := make([]extract.Record, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		reduced = append(reduced, rec.Reduced())
	}
	return w.writeJSON(ReducedRecordsFile, reduced, false)
}

// WriteIndex writes the lookup index.
func (w *ArtifactWriter) WriteIndex(index map[string]any) error {
	return w.writeJSON(IndexFile, index, false)
}

// WriteSummary writes the run summary.
func (w *ArtifactWriter) WriteSummary(summary extract.RunSummary) error {
	return w.writeJSON(SummaryFile, summary, true)
}

func (w *ArtifactWriter) writeJSON(filename string, v any, indent bool) error {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filename, err)
	}

	tempPath := filepath.Join(w.tempDir, filename)
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	finalPath := filepath.Join(w.outputDir, filename)
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// LoadRecords reads the full record collection from an output directory.
func LoadRecords(outputDir string) ([]*extract.Record, error) {
	data, err := os.ReadFile(filepath.Join(outputDir, RecordsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no records at %s, run 'lexicon extract' first", outputDir)
		}
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	var records []*extract.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal records: %w", err)
	}
	return records, nil
}

// LoadSummary reads the run summary from an output directory. A missing
// summary returns a zero value, not an error.
func LoadSummary(outputDir string) (extract.RunSummary, error) {
	var summary extract.RunSummary
	data, err := os.ReadFile(filepath.Join(outputDir, SummaryFile))
	if err != nil {
		if os.IsNotExist(err) {
			return summary, nil
		}
		return summary, fmt.Errorf("failed to read summary: %w", err)
	}
	if err := json.Unmarshal(data, &summary); err != nil {
		return summary, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return summary, nil
}
