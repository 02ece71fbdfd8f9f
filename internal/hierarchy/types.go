// Package hierarchy answers structural questions about an extracted record
// collection: children, subtrees, ancestor chains, roots, and tree-level
// statistics. It keeps an in-memory directed graph of parent/child links
// plus reverse indexes for O(1) lookups, and supports atomic rebuilds so
// watch mode can swap in fresh extractions.
package hierarchy

import (
	"github.com/mvp-joe/project-lexicon/internal/extract"
)

// DefaultDepth bounds subtree traversal when the caller does not specify
// a depth. Depth <= 0 on the call means unlimited.
const DefaultDepth = 0

// RecordWithDepth is one subtree result with its distance from the
// queried node (direct children are depth 1).
type RecordWithDepth struct {
	Record *extract.Record `json:"record"`
	Depth  int             `json:"depth"`
}

// Stats summarizes one record collection.
type Stats struct {
	TotalRecords int            `json:"total_records"`
	ByKind       map[string]int `json:"by_kind"`
	Documented   int            `json:"documented"`
	ModuleCount  int            `json:"module_count"`
	MaxDepth     int            `json:"max_depth"`
}

// Explorer provides hierarchy queries over a record collection.
type Explorer interface {
	// Record resolves a record by id.
	Record(id int) (*extract.Record, bool)

	// ByPath resolves a record by its dotted full path.
	ByPath(path string) (*extract.Record, bool)

	// Children returns the direct children of a record, in record order.
	Children(id int) []*extract.Record

	// Descendants returns the subtree under a record in pre-order, each
	// entry tagged with its depth. Depth <= 0 traverses without limit.
	Descendants(id int, depth int) []RecordWithDepth

	// Ancestors returns the chain from a record's parent up to its root,
	// nearest first.
	Ancestors(id int) []*extract.Record

	// Roots returns the top-level records, in record order.
	Roots() []*extract.Record

	// Stats summarizes the collection.
	Stats() Stats

	// Rebuild atomically replaces the collection.
	Rebuild(records []*extract.Record)
}
