package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLookupIndexKeys(t *testing.T) {
	t.Parallel()

	records := []*Record{
		{ID: 1, Name: "Widget", Kind: "Class", FullPath: "widgets.Widget", SearchTokens: []string{"Widget", "render"}},
		{ID: 2, Name: "render", Kind: "Method", FullPath: "widgets.Widget.render", SearchTokens: []string{"render"}},
	}

	index := BuildLookupIndex(records)

	ref, ok := index["id:1"].(IndexRef)
	require.True(t, ok)
	assert.Equal(t, IndexRef{Name: "Widget", Kind: "Class", FullPath: "widgets.Widget"}, ref)

	assert.Equal(t, 1, index["path:widgets.Widget"])
	assert.Equal(t, 2, index["path:widgets.Widget.render"])

	// Token keys are lowercased; ids append in processing order.
	assert.Equal(t, []int{1}, index["token:widget"])
	assert.Equal(t, []int{1, 2}, index["token:render"])
	assert.NotContains(t, index, "token:Widget")
}

func TestBuildLookupIndexPathCollision(t *testing.T) {
	t.Parallel()

	records := []*Record{
		{ID: 10, Name: "dup", Kind: "Function", FullPath: "pkg.dup"},
		{ID: 11, Name: "dup", Kind: "Function", FullPath: "pkg.dup"},
	}

	index := BuildLookupIndex(records)

	// First writer wins; both ids stay reachable by id key.
	assert.Equal(t, 10, index["path:pkg.dup"])
	assert.Contains(t, index, "id:10")
	assert.Contains(t, index, "id:11")
}

func TestBuildLookupIndexEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, BuildLookupIndex(nil))
	assert.Empty(t, BuildLookupIndex([]*Record{nil}))
}
