// Package search provides keyword and semantic search over extracted
// declaration records, plus a cached lookup path for id and full-path
// resolution. The keyword side is a bleve in-memory index; the semantic
// side is a chromem-go vector collection fed by a deterministic local
// embedder, so no model download is needed.
package search

import (
	"github.com/mvp-joe/project-lexicon/internal/extract"
)

// Options controls a single search call. A nil Options means defaults.
type Options struct {
	Limit    int      // maximum results (1-100)
	Kinds    []string // filter by declaration kind, OR logic; empty means all
	MinScore float64  // semantic only: drop results below this similarity
}

// DefaultOptions returns the default search options.
func DefaultOptions() *Options {
	return &Options{
		Limit: 15,
	}
}

// normalized applies defaults and clamps the limit.
func (o *Options) normalized() *Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.Limit <= 0 || out.Limit > 100 {
		out.Limit = 15
	}
	return &out
}

// Result is one search hit.
type Result struct {
	Record     *extract.Record `json:"record"`
	Score      float64         `json:"score"`
	Highlights []string        `json:"highlights,omitempty"` // keyword search only
}

// matchesKind reports whether a record passes the kind filter.
func matchesKind(kinds []string, kind string) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
