package hierarchy

// Test Plan:
// 1. Roots, children, and lookup by id/path
// 2. Descendants: pre-order, depth tagging, depth limits
// 3. Ancestors: nearest-first chain to the root
// 4. Stats over kinds, documentation, and path depth
// 5. Rebuild swaps the collection atomically
// 6. Duplicate ids keep the first record
// 7. Malformed parent links (missing parent, self-parent) degrade to roots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/project-lexicon/internal/extract"
)

func intp(i int) *int { return &i }

func rec(id int, name, kind, path string, parentID *int) *extract.Record {
	return &extract.Record{
		ID:       id,
		Name:     name,
		Kind:     kind,
		FullPath: path,
		Hierarchy: extract.Hierarchy{
			ParentID: parentID,
		},
	}
}

func sampleRecords() []*extract.Record {
	f := rec(3, "f", "Method", "m.A.f", intp(2))
	f.Documentation.Summary = "Renders the widget."
	return []*extract.Record{
		rec(1, "m", "Module", "m", intp(0)), // parent 0 is the project root, never a record
		rec(2, "A", "Class", "m.A", intp(1)),
		f,
		rec(4, "B", "Interface", "m.B", intp(1)),
		rec(5, "z", "Variable", "z", intp(0)),
	}
}

func names(records []*extract.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestExplorerLookups(t *testing.T) {
	t.Parallel()

	e := NewExplorer(sampleRecords())

	found, ok := e.Record(2)
	require.True(t, ok)
	assert.Equal(t, "A", found.Name)

	found, ok = e.ByPath("m.A.f")
	require.True(t, ok)
	assert.Equal(t, "f", found.Name)

	_, ok = e.Record(99)
	assert.False(t, ok)
	_, ok = e.ByPath("no.such.path")
	assert.False(t, ok)
}

func TestExplorerRootsAndChildren(t *testing.T) {
	t.Parallel()

	e := NewExplorer(sampleRecords())

	assert.Equal(t, []string{"m", "z"}, names(e.Roots()))
	assert.Equal(t, []string{"A", "B"}, names(e.Children(1)))
	assert.Empty(t, e.Children(5))
}

func TestExplorerDescendants(t *testing.T) {
	t.Parallel()

	e := NewExplorer(sampleRecords())

	full := e.Descendants(1, 0)
	require.Len(t, full, 3)
	assert.Equal(t, "A", full[0].Record.Name)
	assert.Equal(t, 1, full[0].Depth)
	assert.Equal(t, "f", full[1].Record.Name)
	assert.Equal(t, 2, full[1].Depth)
	assert.Equal(t, "B", full[2].Record.Name)
	assert.Equal(t, 1, full[2].Depth)

	direct := e.Descendants(1, 1)
	require.Len(t, direct, 2)
	assert.Equal(t, "A", direct[0].Record.Name)
	assert.Equal(t, "B", direct[1].Record.Name)

	assert.Empty(t, e.Descendants(5, 0))
}

func TestExplorerAncestors(t *testing.T) {
	t.Parallel()

	e := NewExplorer(sampleRecords())

	assert.Equal(t, []string{"A", "m"}, names(e.Ancestors(3)))
	assert.Empty(t, e.Ancestors(1))
}

func TestExplorerStats(t *testing.T) {
	t.Parallel()

	stats := NewExplorer(sampleRecords()).Stats()

	assert.Equal(t, 5, stats.TotalRecords)
	assert.Equal(t, 1, stats.ByKind["Module"])
	assert.Equal(t, 1, stats.ByKind["Class"])
	assert.Equal(t, 1, stats.Documented)
	assert.Equal(t, 1, stats.ModuleCount)
	assert.Equal(t, 3, stats.MaxDepth)
}

func TestExplorerRebuild(t *testing.T) {
	t.Parallel()

	e := NewExplorer(sampleRecords())
	require.Len(t, e.Roots(), 2)

	e.Rebuild([]*extract.Record{rec(7, "solo", "Function", "solo", nil)})

	assert.Equal(t, []string{"solo"}, names(e.Roots()))
	_, ok := e.Record(1)
	assert.False(t, ok)
}

func TestExplorerDuplicateIDsFirstWins(t *testing.T) {
	t.Parallel()

	first := rec(1, "first", "Class", "pkg.first", nil)
	e := NewExplorer([]*extract.Record{
		first,
		rec(1, "shadow", "Interface", "pkg.shadow", nil), // same vertex id, rejected
		rec(2, "child", "Method", "pkg.first.child", intp(1)),
	})

	found, ok := e.Record(1)
	require.True(t, ok)
	assert.Same(t, first, found)
	_, ok = e.ByPath("pkg.shadow")
	assert.False(t, ok)

	assert.Equal(t, []string{"child"}, names(e.Children(1)))
	assert.Equal(t, 2, e.Stats().TotalRecords)
}

func TestExplorerMalformedParents(t *testing.T) {
	t.Parallel()

	e := NewExplorer([]*extract.Record{
		rec(1, "orphan", "Class", "orphan", intp(42)), // parent never extracted
		rec(2, "self", "Class", "self", intp(2)),      // claims itself
	})

	assert.Equal(t, []string{"orphan", "self"}, names(e.Roots()))
	assert.Empty(t, e.Ancestors(2))
	assert.Empty(t, e.Descendants(2, 0))
}
