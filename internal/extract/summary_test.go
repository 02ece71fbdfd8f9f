package extract

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/project-lexicon/internal/typedoc"
)

func TestNewRunSummary(t *testing.T) {
	t.Parallel()

	doc := &typedoc.Document{PackageName: "@acme/widget-kit", PackageVersion: "2.1.0"}
	doc.Name = "widget-kit"

	result := &Result{
		Records:  []*Record{{ID: 1}, {ID: 2}},
		Excluded: 3,
	}
	summary := NewRunSummary(doc, result)

	_, err := uuid.Parse(summary.RunID)
	require.NoError(t, err)

	_, err = time.Parse(time.RFC3339, summary.GeneratedAt)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.RecordCount)
	assert.Equal(t, 3, summary.ExcludedCount)
	assert.Equal(t, "@acme/widget-kit", summary.Project.Name)
	assert.Equal(t, "2.1.0", summary.Project.Version)
}

func TestNewRunSummaryFallbacks(t *testing.T) {
	t.Parallel()

	doc := &typedoc.Document{}
	doc.Name = "bare"
	assert.Equal(t, "bare", NewRunSummary(doc, &Result{}).Project.Name)

	empty := NewRunSummary(nil, nil)
	assert.Empty(t, empty.Project.Name)
	assert.Zero(t, empty.RecordCount)
}
