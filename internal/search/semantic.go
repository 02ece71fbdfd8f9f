package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/philippgille/chromem-go"

	"github.com/mvp-joe/project-lexicon/internal/extract"
)

const (
	// resultMultiplier controls over-fetching for post-filtering headroom.
	// We fetch 2x the requested limit so enough results survive the kind
	// and score filters.
	resultMultiplier = 2

	collectionName = "lexicon"
)

// SemanticSearcher is vector similarity search over extracted records.
type SemanticSearcher interface {
	// Search executes a semantic query. Options may be nil.
	Search(ctx context.Context, queryStr string, options *Options) ([]*Result, error)

	// Rebuild atomically replaces the collection with a fresh record set.
	Rebuild(ctx context.Context, records []*extract.Record) error

	// Close releases resources.
	Close() error
}

// semanticSearcher implements SemanticSearcher using chromem-go.
type semanticSearcher struct {
	db         *chromem.DB
	embedder   chromem.EmbeddingFunc
	mu         sync.RWMutex // protects collection and byID during rebuild
	collection *chromem.Collection
	byID       map[string]*extract.Record
}

// NewSemanticSearcher builds an in-memory vector collection over the
// records, embedded with the deterministic hash embedder.
func NewSemanticSearcher(ctx context.Context, records []*extract.Record, dimensions int) (SemanticSearcher, error) {
	s := &semanticSearcher{
		db:       chromem.NewDB(),
		embedder: NewHashEmbedder(dimensions),
	}
	if err := s.Rebuild(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return s, nil
}

// Rebuild populates a new collection and swaps it in atomically.
func (s *semanticSearcher) Rebuild(ctx context.Context, records []*extract.Record) error {
	// CreateCollection replaces any existing collection of the same name.
	collection, err := s.db.CreateCollection(collectionName, nil, s.embedder)
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	byID := make(map[string]*extract.Record, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		docID := strconv.Itoa(rec.ID)
		byID[docID] = rec

		doc := chromem.Document{
			ID:      docID,
			Content: embedText(rec),
			Metadata: map[string]string{
				"kind":      rec.Kind,
				"full_path": rec.FullPath,
			},
		}
		if err := collection.AddDocument(ctx, doc); err != nil {
			return fmt.Errorf("failed to add record %d: %w", rec.ID, err)
		}
	}

	s.mu.Lock()
	s.collection = collection
	s.byID = byID
	s.mu.Unlock()
	return nil
}

// embedText assembles the text a record is embedded under: identity first,
// then the documentation and signatures.
func embedText(rec *extract.Record) string {
	var b strings.Builder
	b.WriteString(rec.Name)
	b.WriteString(" ")
	b.WriteString(rec.FullPath)
	b.WriteString(" ")
	b.WriteString(rec.Kind)
	if rec.Documentation.Summary != "" {
		b.WriteString("\n")
		b.WriteString(rec.Documentation.Summary)
	}
	if rec.Documentation.Description != "" {
		b.WriteString("\n")
		b.WriteString(rec.Documentation.Description)
	}
	for _, sig := range rec.Signatures {
		b.WriteString("\n")
		b.WriteString(sig.Signature)
	}
	return b.String()
}

// Query executes a semantic search for the given query string.
func (s *semanticSearcher) Search(ctx context.Context, queryStr string, options *Options) ([]*Result, error) {
	options = options.normalized()

	s.mu.RLock()
	collection := s.collection
	byID := s.byID
	s.mu.RUnlock()

	if collection == nil {
		return nil, fmt.Errorf("collection not initialized")
	}
	if collection.Count() == 0 {
		return nil, nil
	}

	// Native WHERE filtering handles a single kind; multiple kinds are
	// post-filtered below.
	var whereFilter map[string]string
	if len(options.Kinds) == 1 {
		whereFilter = map[string]string{"kind": options.Kinds[0]}
	}

	// Over-fetch for post-filtering headroom; chromem rejects nResults
	// above the collection size.
	nResults := options.Limit * resultMultiplier
	if count := collection.Count(); nResults > count {
		nResults = count
	}

	docs, err := collection.Query(ctx, queryStr, nResults, whereFilter, nil)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	results := make([]*Result, 0, options.Limit)
	for _, doc := range docs {
		if len(options.Kinds) > 1 && !matchesKind(options.Kinds, doc.Metadata["kind"]) {
			continue
		}
		if options.MinScore > 0 && float64(doc.Similarity) < options.MinScore {
			continue
		}
		rec, ok := byID[doc.ID]
		if !ok {
			continue
		}
		results = append(results, &Result{
			Record: rec,
			Score:  float64(doc.Similarity),
		})
		if len(results) >= options.Limit {
			break
		}
	}
	return results, nil
}

// Close releases resources. chromem's in-memory DB has nothing to flush;
// dropping the references is enough.
func (s *semanticSearcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection = nil
	s.byID = nil
	return nil
}
