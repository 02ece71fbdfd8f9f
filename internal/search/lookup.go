package search

import (
	"fmt"
	"strconv"

	"github.com/maypok86/otter"

	"github.com/mvp-joe/project-lexicon/internal/extract"
	"github.com/mvp-joe/project-lexicon/internal/hierarchy"
)

// Lookup resolves records by id or dotted full path through an otter cache
// in front of the hierarchy explorer. Cache keys reuse the artifact index
// namespaces ("id:", "path:") so a cache dump reads like the lookup index.
type Lookup struct {
	cache    otter.Cache[string, *extract.Record]
	explorer hierarchy.Explorer
}

// NewLookup builds a lookup cache over an explorer. Capacity <= 0 falls
// back to a small default.
func NewLookup(explorer hierarchy.Explorer, capacity int) (*Lookup, error) {
	if capacity <= 0 {
		capacity = 1024
	}
	cache, err := otter.MustBuilder[string, *extract.Record](capacity).
		Cost(func(key string, value *extract.Record) uint32 { return 1 }).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup cache: %w", err)
	}
	return &Lookup{cache: cache, explorer: explorer}, nil
}

// ByID resolves a record by id.
func (l *Lookup) ByID(id int) (*extract.Record, bool) {
	key := "id:" + strconv.Itoa(id)
	if rec, ok := l.cache.Get(key); ok {
		return rec, true
	}
	rec, ok := l.explorer.Record(id)
	if !ok {
		return nil, false
	}
	l.cache.Set(key, rec)
	return rec, true
}

// ByPath resolves a record by its dotted full path.
func (l *Lookup) ByPath(path string) (*extract.Record, bool) {
	key := "path:" + path
	if rec, ok := l.cache.Get(key); ok {
		return rec, true
	}
	rec, ok := l.explorer.ByPath(path)
	if !ok {
		return nil, false
	}
	l.cache.Set(key, rec)
	return rec, true
}

// Invalidate drops every cached entry. Called after a rebuild so stale
// records cannot be served.
func (l *Lookup) Invalidate() {
	l.cache.Clear()
}

// Close releases the cache.
func (l *Lookup) Close() {
	l.cache.Close()
}
