package typedoc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the document loader:
// - Loads and decodes a realistic document with nested declarations
// - Template literal tail pairs decode from [type, string] arrays
// - Literal values decode as string/number/bool/null/bigint shapes
// - Missing files and malformed JSON are fatal errors
// - Empty documents are rejected

func TestLoadDocument_Sample(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocument(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)

	assert.Equal(t, "@acme/widget-kit", doc.PackageName)
	assert.Equal(t, "2.4.1", doc.PackageVersion)
	assert.Equal(t, "@acme/widget-kit", doc.ProjectName())
	assert.Equal(t, KindProject, doc.Kind)
	require.Len(t, doc.Children, 1)

	mod := doc.Children[0]
	assert.Equal(t, "widgets", mod.Name)
	assert.Equal(t, KindModule, mod.Kind)
	require.Len(t, mod.Children, 4)

	widget := mod.Children[0]
	assert.Equal(t, "Widget", widget.Name)
	assert.Equal(t, KindClass, widget.Kind)
	assert.True(t, widget.Flags.IsAbstract)
	require.Len(t, widget.Sources, 1)
	assert.Equal(t, "src/widget.ts", widget.Sources[0].FileName)
	assert.Equal(t, 14, widget.Sources[0].Line)
	assert.Equal(t, 13, widget.Sources[0].Character)
}

func TestLoadDocument_TemplateLiteralTail(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocument(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)

	opts := doc.Children[0].Children[1]
	require.Equal(t, "WidgetOptions", opts.Name)
	theme := opts.Children[0]
	require.NotNil(t, theme.Type)
	assert.Equal(t, TypeTemplateLiteral, theme.Type.Kind)
	assert.Equal(t, "theme-", theme.Type.Head)
	require.Len(t, theme.Type.Tail, 1)
	assert.Equal(t, TypeUnion, theme.Type.Tail[0].Type.Kind)
	assert.Equal(t, "", theme.Type.Tail[0].Text)
}

func TestLoadDocument_LiteralValues(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocument(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)

	opts := doc.Children[0].Children[1]
	maxNodes := opts.Children[1]
	require.NotNil(t, maxNodes.Type)
	assert.Equal(t, TypeLiteral, maxNodes.Type.Kind)

	// Bigint literals decode as a map with value/negative keys.
	big, ok := maxNodes.Type.Value.(map[string]any)
	require.True(t, ok, "bigint literal should decode to a map, got %T", maxNodes.Type.Value)
	assert.Equal(t, "9007199254740993", big["value"])
	assert.Equal(t, false, big["negative"])
}

func TestParseDocument_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument([]byte(`{"id": 0, "name": [}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestParseDocument_Empty(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument([]byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadDocument_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadDocument(filepath.Join("testdata", "does-not-exist.json"))
	require.Error(t, err)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Class", KindClass.String())
	assert.Equal(t, "GetSignature", KindGetSignature.String())
	assert.Equal(t, "Kind(12345)", Kind(12345).String())
}

func TestKindIsModuleLike(t *testing.T) {
	t.Parallel()

	assert.True(t, KindProject.IsModuleLike())
	assert.True(t, KindModule.IsModuleLike())
	assert.True(t, KindNamespace.IsModuleLike())
	assert.False(t, KindClass.IsModuleLike())
	assert.False(t, KindFunction.IsModuleLike())
}
