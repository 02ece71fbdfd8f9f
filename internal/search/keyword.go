package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/mvp-joe/project-lexicon/internal/extract"
)

// KeywordSearcher is full-text search over extracted records using bleve
// QueryString syntax: field scoping, boolean operators, phrases, wildcards,
// and fuzzy matching all work.
type KeywordSearcher interface {
	// Search executes a keyword query. Options may be nil.
	Search(ctx context.Context, queryStr string, options *Options) ([]*Result, error)

	// Rebuild atomically replaces the index contents with a fresh record
	// collection. Used by watch mode after a re-extraction.
	Rebuild(ctx context.Context, records []*extract.Record) error

	// Close releases the index.
	Close() error
}

// keywordSearcher implements KeywordSearcher with an in-memory bleve index
// plus an id → record map for hit resolution.
type keywordSearcher struct {
	mu    sync.RWMutex // protects index and byID during rebuild
	index bleve.Index
	byID  map[string]*extract.Record
}

// NewKeywordSearcher builds an in-memory keyword index over the records.
func NewKeywordSearcher(ctx context.Context, records []*extract.Record) (KeywordSearcher, error) {
	index, byID, err := buildKeywordIndex(ctx, records)
	if err != nil {
		return nil, err
	}
	return &keywordSearcher{index: index, byID: byID}, nil
}

func buildKeywordIndex(ctx context.Context, records []*extract.Record) (bleve.Index, map[string]*extract.Record, error) {
	index, err := bleve.NewMemOnly(buildRecordMapping())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	byID := make(map[string]*extract.Record, len(records))
	if err := indexRecords(ctx, index, records, byID); err != nil {
		index.Close()
		return nil, nil, fmt.Errorf("failed to index records: %w", err)
	}
	return index, byID, nil
}

// buildRecordMapping creates the index mapping for record documents.
func buildRecordMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()

	// Documentation text (primary search target) - standard analyzer
	textMapping := bleve.NewTextFieldMapping()
	textMapping.Analyzer = "standard"
	textMapping.Store = true
	textMapping.Index = true
	textMapping.IncludeTermVectors = true // enable phrase search and highlighting

	// Name field (searchable, boost applied at query assembly)
	nameMapping := bleve.NewTextFieldMapping()
	nameMapping.Analyzer = "standard"
	nameMapping.Store = true
	nameMapping.Index = true

	// Kind field (filterable) - keyword analyzer for exact matching
	kindMapping := bleve.NewTextFieldMapping()
	kindMapping.Analyzer = "keyword"
	kindMapping.Store = true
	kindMapping.Index = true

	// Full path (filterable/searchable)
	pathMapping := bleve.NewTextFieldMapping()
	pathMapping.Analyzer = "standard"
	pathMapping.Store = true
	pathMapping.Index = true

	// Signatures (searchable)
	sigMapping := bleve.NewTextFieldMapping()
	sigMapping.Analyzer = "standard"
	sigMapping.Store = true
	sigMapping.Index = true

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("name", nameMapping)
	docMapping.AddFieldMappingsAt("full_path", pathMapping)
	docMapping.AddFieldMappingsAt("kind", kindMapping)
	docMapping.AddFieldMappingsAt("text", textMapping)
	docMapping.AddFieldMappingsAt("signatures", sigMapping)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// indexRecords adds records to the bleve index in batches.
func indexRecords(ctx context.Context, index bleve.Index, records []*extract.Record, byID map[string]*extract.Record) error {
	const batchSize = 1000

	batch := index.NewBatch()
	for i, rec := range records {
		if rec == nil {
			continue
		}
		// Check cancellation periodically
		if i%batchSize == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		docID := strconv.Itoa(rec.ID)
		byID[docID] = rec
		if err := batch.Index(docID, recordToDocument(rec)); err != nil {
			return fmt.Errorf("failed to add record %d to batch: %w", rec.ID, err)
		}

		if batch.Size() >= batchSize {
			if err := index.Batch(batch); err != nil {
				return fmt.Errorf("failed to execute batch: %w", err)
			}
			batch = index.NewBatch()
		}
	}

	if batch.Size() > 0 {
		if err := index.Batch(batch); err != nil {
			return fmt.Errorf("failed to execute final batch: %w", err)
		}
	}
	return nil
}

// recordToDocument converts a record to a bleve document.
func recordToDocument(rec *extract.Record) map[string]interface{} {
	signatures := make([]string, 0, len(rec.Signatures))
	for _, sig := range rec.Signatures {
		signatures = append(signatures, sig.Signature)
	}

	text := rec.Documentation.Summary
	if rec.Documentation.Description != "" {
		text += "\n" + rec.Documentation.Description
	}

	return map[string]interface{}{
		"name":       rec.Name,
		"full_path":  rec.FullPath,
		"kind":       rec.Kind,
		"text":       text,
		"signatures": strings.Join(signatures, "\n"),
	}
}

// Search executes a keyword search using bleve QueryStringQuery syntax.
func (s *keywordSearcher) Search(ctx context.Context, queryStr string, options *Options) ([]*Result, error) {
	options = options.normalized()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var queries []query.Query
	queries = append(queries, bleve.NewQueryStringQuery(queryStr))

	// Kind filter: OR across requested kinds, AND with the main query.
	if len(options.Kinds) > 0 {
		kindQueries := make([]query.Query, 0, len(options.Kinds))
		for _, kind := range options.Kinds {
			kq := bleve.NewTermQuery(kind)
			kq.SetField("kind")
			kindQueries = append(kindQueries, kq)
		}
		queries = append(queries, bleve.NewDisjunctionQuery(kindQueries...))
	}

	var finalQuery query.Query
	if len(queries) == 1 {
		finalQuery = queries[0]
	} else {
		finalQuery = bleve.NewConjunctionQuery(queries...)
	}

	searchRequest := bleve.NewSearchRequestOptions(finalQuery, options.Limit, 0, false)
	highlightStyle := "html" // <em> tags around matches
	searchRequest.Highlight = bleve.NewHighlight()
	searchRequest.Highlight.Style = &highlightStyle
	searchRequest.Highlight.Fields = []string{"text", "signatures"}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	results := make([]*Result, 0, len(searchResult.Hits))
	for _, hit := range searchResult.Hits {
		rec, ok := s.byID[hit.ID]
		if !ok {
			continue
		}
		results = append(results, &Result{
			Record:     rec,
			Score:      hit.Score,
			Highlights: extractHighlights(hit.Fragments),
		})
	}
	return results, nil
}

// extractHighlights flattens bleve fragments, keeping at most 3 snippets
// per result to avoid overwhelming the consumer.
func extractHighlights(fragments map[string][]string) []string {
	var highlights []string
	for _, snippets := range fragments {
		highlights = append(highlights, snippets...)
	}
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}
	return highlights
}

// Rebuild atomically replaces the index with a fresh record collection.
func (s *keywordSearcher) Rebuild(ctx context.Context, records []*extract.Record) error {
	index, byID, err := buildKeywordIndex(ctx, records)
	if err != nil {
		return err
	}

	s.mu.Lock()
	old := s.index
	s.index = index
	s.byID = byID
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

// Close releases resources held by the searcher.
func (s *keywordSearcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index != nil {
		err := s.index.Close()
		s.index = nil
		return err
	}
	return nil
}
