package search

// Test Plan:
// 1. Hash embedder is deterministic, unit-length, and dimension-stable
// 2. Semantic search ranks the record sharing the query's vocabulary first
// 3. Kind filters apply (native single-kind and post-filtered multi-kind)
// 4. MinScore drops weak matches
// 5. Rebuild swaps the collection; empty collection returns no results

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEmbedderDeterministic(t *testing.T) {
	t.Parallel()

	embed := NewHashEmbedder(64)

	a, err := embed(context.Background(), "retry connection backoff")
	require.NoError(t, err)
	b, err := embed(context.Background(), "retry connection backoff")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	var norm float64
	for _, v := range a {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, norm, 1e-5)
}

func TestHashEmbedderEmptyText(t *testing.T) {
	t.Parallel()

	embed := NewHashEmbedder(16)
	vec, err := embed(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, vec, 16)
}

func newTestSemanticSearcher(t *testing.T) SemanticSearcher {
	t.Helper()
	s, err := NewSemanticSearcher(context.Background(), testRecords(), 256)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSemanticSearchRanksSharedVocabularyFirst(t *testing.T) {
	t.Parallel()

	s := newTestSemanticSearcher(t)

	results, err := s.Search(context.Background(), "connection retry backoff", nil)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "api.Client.connect", results[0].Record.FullPath)
	assert.Greater(t, results[0].Score, 0.0)
}

func TestSemanticSearchKindFilter(t *testing.T) {
	t.Parallel()

	s := newTestSemanticSearcher(t)

	results, err := s.Search(context.Background(), "retry", &Options{Kinds: []string{"Interface"}})
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, "Interface", r.Record.Kind)
	}

	results, err = s.Search(context.Background(), "retry", &Options{Kinds: []string{"Interface", "Method"}})
	require.NoError(t, err)
	for _, r := range results {
		assert.Contains(t, []string{"Interface", "Method"}, r.Record.Kind)
	}
}

func TestSemanticSearchMinScore(t *testing.T) {
	t.Parallel()

	s := newTestSemanticSearcher(t)

	results, err := s.Search(context.Background(), "connection retry backoff", &Options{Limit: 10, MinScore: 0.99})
	require.NoError(t, err)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Score, 0.99)
	}
}

func TestSemanticSearchRebuild(t *testing.T) {
	t.Parallel()

	s := newTestSemanticSearcher(t)

	require.NoError(t, s.Rebuild(context.Background(), nil))

	results, err := s.Search(context.Background(), "retry", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNormalizeZeroVector(t *testing.T) {
	t.Parallel()

	vec := make([]float32, 8)
	normalize(vec)
	for _, v := range vec {
		assert.False(t, math.IsNaN(float64(v)))
		assert.Zero(t, v)
	}
}
