package hierarchy

import (
	"strings"
	"sync"

	"github.com/dominikbraun/graph"

	"github.com/mvp-joe/project-lexicon/internal/extract"
)

// explorer implements Explorer with an in-memory graph and reverse indexes.
// The graph is the vertex store: every id lookup resolves through it. The
// side indexes exist only for what the graph cannot give us cheaply: path
// lookup, insertion-ordered child lists, and upward parent hops.
type explorer struct {
	mu sync.RWMutex // protects graph and indexes

	graph graph.Graph[int, *extract.Record]

	records  []*extract.Record
	byPath   map[string]*extract.Record
	children map[int][]int
	parents  map[int]int
	roots    []int
}

// NewExplorer builds an explorer over a record collection.
func NewExplorer(records []*extract.Record) Explorer {
	e := &explorer{}
	e.Rebuild(records)
	return e
}

// Rebuild replaces the graph and all indexes under the write lock.
func (e *explorer) Rebuild(records []*extract.Record) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.graph = graph.New(func(r *extract.Record) int { return r.ID }, graph.Directed())
	e.records = e.records[:0]
	e.byPath = make(map[string]*extract.Record, len(records))
	e.children = make(map[int][]int)
	e.parents = make(map[int]int)
	e.roots = nil

	for _, rec := range records {
		if rec == nil {
			continue
		}
		// First record wins on duplicate ids or paths. AddVertex rejects a
		// second vertex with the same hash.
		if err := e.graph.AddVertex(rec); err != nil {
			continue
		}
		e.records = append(e.records, rec)
		if _, dup := e.byPath[rec.FullPath]; !dup {
			e.byPath[rec.FullPath] = rec
		}
	}

	for _, rec := range e.records {
		pid := rec.Hierarchy.ParentID
		// Records whose parent was not extracted (the project root, or a
		// skipped node) are roots of the forest. A self-parent is treated
		// the same rather than looping.
		if pid == nil || *pid == rec.ID {
			e.roots = append(e.roots, rec.ID)
			continue
		}
		if _, err := e.graph.Vertex(*pid); err != nil {
			e.roots = append(e.roots, rec.ID)
			continue
		}
		_ = e.graph.AddEdge(*pid, rec.ID)
		e.children[*pid] = append(e.children[*pid], rec.ID)
		e.parents[rec.ID] = *pid
	}
}

func (e *explorer) Record(id int) (*extract.Record, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	rec, err := e.graph.Vertex(id)
	if err != nil {
		return nil, false
	}
	return rec, true
}

func (e *explorer) ByPath(path string) (*extract.Record, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	rec, ok := e.byPath[path]
	return rec, ok
}

func (e *explorer) Children(id int) []*extract.Record {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.resolve(e.children[id])
}

func (e *explorer) Roots() []*extract.Record {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.resolve(e.roots)
}

// resolve maps ids to graph vertices. Caller holds the lock.
func (e *explorer) resolve(ids []int) []*extract.Record {
	if len(ids) == 0 {
		return nil
	}
	records := make([]*extract.Record, 0, len(ids))
	for _, id := range ids {
		if rec, err := e.graph.Vertex(id); err == nil {
			records = append(records, rec)
		}
	}
	return records
}

func (e *explorer) Descendants(id int, depth int) []RecordWithDepth {
	e.mu.RLock()
	defer e.mu.RUnlock()

	unlimited := depth <= 0

	var results []RecordWithDepth
	visited := make(map[int]int) // id -> depth at which it was first visited

	var traverse func(id, currentDepth int)
	traverse = func(id, currentDepth int) {
		if !unlimited && currentDepth > depth {
			return
		}
		if prevDepth, seen := visited[id]; seen && prevDepth <= currentDepth {
			return
		}
		visited[id] = currentDepth

		for _, childID := range e.children[id] {
			rec, err := e.graph.Vertex(childID)
			if err != nil {
				continue
			}
			results = append(results, RecordWithDepth{Record: rec, Depth: currentDepth})
			if unlimited || currentDepth < depth {
				traverse(childID, currentDepth+1)
			}
		}
	}

	traverse(id, 1)
	return results
}

func (e *explorer) Ancestors(id int) []*extract.Record {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var ancestors []*extract.Record
	seen := map[int]bool{id: true}
	current := id
	for {
		pid, ok := e.parents[current]
		if !ok || seen[pid] {
			return ancestors
		}
		seen[pid] = true
		if rec, err := e.graph.Vertex(pid); err == nil {
			ancestors = append(ancestors, rec)
		}
		current = pid
	}
}

func (e *explorer) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stats := Stats{ByKind: make(map[string]int)}
	for _, rec := range e.records {
		stats.TotalRecords++
		stats.ByKind[rec.Kind]++
		if rec.Documentation.Summary != "" {
			stats.Documented++
		}
		if rec.Kind == "Module" || rec.Kind == "Namespace" {
			stats.ModuleCount++
		}
		// Path depth is authoritative and needs no traversal.
		if d := strings.Count(rec.FullPath, ".") + 1; d > stats.MaxDepth {
			stats.MaxDepth = d
		}
	}
	return stats
}
