package search

import (
	"context"
	"fmt"

	"github.com/mvp-joe/project-lexicon/internal/extract"
	"github.com/mvp-joe/project-lexicon/internal/hierarchy"
)

// Service bundles the keyword searcher, the semantic searcher, the
// hierarchy explorer, and the lookup cache behind one rebuildable facade.
// The CLI and the MCP server both sit on top of it.
type Service struct {
	keyword  KeywordSearcher
	semantic SemanticSearcher
	explorer hierarchy.Explorer
	lookup   *Lookup
}

// ServiceConfig tunes service construction.
type ServiceConfig struct {
	Dimensions    int // embedding vector dimensions
	CacheCapacity int // lookup cache entries
}

// NewService builds the full search stack over a record collection.
func NewService(ctx context.Context, records []*extract.Record, cfg ServiceConfig) (*Service, error) {
	keyword, err := NewKeywordSearcher(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyword searcher: %w", err)
	}

	semantic, err := NewSemanticSearcher(ctx, records, cfg.Dimensions)
	if err != nil {
		keyword.Close()
		return nil, fmt.Errorf("failed to create semantic searcher: %w", err)
	}

	explorer := hierarchy.NewExplorer(records)
	lookup, err := NewLookup(explorer, cfg.CacheCapacity)
	if err != nil {
		keyword.Close()
		semantic.Close()
		return nil, err
	}

	return &Service{
		keyword:  keyword,
		semantic: semantic,
		explorer: explorer,
		lookup:   lookup,
	}, nil
}

// Search routes a query to the semantic or keyword searcher.
func (s *Service) Search(ctx context.Context, query string, options *Options, semantic bool) ([]*Result, error) {
	if semantic {
		return s.semantic.Search(ctx, query, options)
	}
	return s.keyword.Search(ctx, query, options)
}

// LookupByID resolves a record by id.
func (s *Service) LookupByID(id int) (*extract.Record, bool) {
	return s.lookup.ByID(id)
}

// LookupByPath resolves a record by dotted full path.
func (s *Service) LookupByPath(path string) (*extract.Record, bool) {
	return s.lookup.ByPath(path)
}

// Explorer exposes hierarchy queries over the current record collection.
func (s *Service) Explorer() hierarchy.Explorer {
	return s.explorer
}

// Rebuild atomically replaces every component's view of the records.
// Queries running concurrently see either the old or the new collection,
// never a mix within one component.
func (s *Service) Rebuild(ctx context.Context, records []*extract.Record) error {
	if err := s.keyword.Rebuild(ctx, records); err != nil {
		return fmt.Errorf("failed to rebuild keyword index: %w", err)
	}
	if err := s.semantic.Rebuild(ctx, records); err != nil {
		return fmt.Errorf("failed to rebuild semantic index: %w", err)
	}
	s.explorer.Rebuild(records)
	s.lookup.Invalidate()
	return nil
}

// Close releases all components.
func (s *Service) Close() error {
	s.lookup.Close()
	if err := s.semantic.Close(); err != nil {
		return err
	}
	return s.keyword.Close()
}
