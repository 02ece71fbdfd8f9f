package search

// Test Plan:
// 1. Lookup resolves by id and path, caches hits, and misses cleanly
// 2. Service routes keyword vs semantic queries
// 3. Service rebuild refreshes search, hierarchy, and lookup together

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/project-lexicon/internal/extract"
	"github.com/mvp-joe/project-lexicon/internal/hierarchy"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), testRecords(), ServiceConfig{Dimensions: 128, CacheCapacity: 16})
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestLookupByIDAndPath(t *testing.T) {
	t.Parallel()

	explorer := hierarchy.NewExplorer(testRecords())
	lookup, err := NewLookup(explorer, 16)
	require.NoError(t, err)
	t.Cleanup(lookup.Close)

	rec, ok := lookup.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "connect", rec.Name)

	// Second call is served from the cache and must match.
	again, ok := lookup.ByID(2)
	require.True(t, ok)
	assert.Same(t, rec, again)

	rec, ok = lookup.ByPath("api.RetryPolicy")
	require.True(t, ok)
	assert.Equal(t, 3, rec.ID)

	_, ok = lookup.ByID(999)
	assert.False(t, ok)
	_, ok = lookup.ByPath("no.such.path")
	assert.False(t, ok)
}

func TestLookupInvalidate(t *testing.T) {
	t.Parallel()

	explorer := hierarchy.NewExplorer(testRecords())
	lookup, err := NewLookup(explorer, 16)
	require.NoError(t, err)
	t.Cleanup(lookup.Close)

	_, ok := lookup.ByID(1)
	require.True(t, ok)

	explorer.Rebuild([]*extract.Record{{ID: 1, Name: "renamed", FullPath: "renamed"}})
	lookup.Invalidate()

	rec, ok := lookup.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "renamed", rec.Name)
}

func TestServiceSearchRouting(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	keyword, err := svc.Search(context.Background(), "retry", nil, false)
	require.NoError(t, err)
	assert.NotEmpty(t, keyword)

	semantic, err := svc.Search(context.Background(), "retry", nil, true)
	require.NoError(t, err)
	assert.NotEmpty(t, semantic)
}

func TestServiceRebuild(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	replacement := []*extract.Record{
		{
			ID:       42,
			Name:     "Tokenizer",
			Kind:     "Class",
			FullPath: "lexer.Tokenizer",
			Documentation: extract.Documentation{
				Summary: "Splits source text into tokens",
			},
		},
	}
	require.NoError(t, svc.Rebuild(context.Background(), replacement))

	rec, ok := svc.LookupByPath("lexer.Tokenizer")
	require.True(t, ok)
	assert.Equal(t, 42, rec.ID)

	_, ok = svc.LookupByID(1)
	assert.False(t, ok)

	results, err := svc.Search(context.Background(), "tokens", nil, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 42, results[0].Record.ID)

	assert.Equal(t, 1, svc.Explorer().Stats().TotalRecords)
}
