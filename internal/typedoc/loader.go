package typedoc

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadDocument reads and parses a declaration document from disk. A missing
// or malformed document is fatal to the run, so errors here are returned to
// the caller rather than degraded.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration document: %w", err)
	}
	return ParseDocument(data)
}

// ParseDocument parses an already-read declaration document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse declaration document: %w", err)
	}
	if doc.Name == "" && len(doc.Children) == 0 {
		return nil, fmt.Errorf("declaration document is empty")
	}
	return &doc, nil
}
