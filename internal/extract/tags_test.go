package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/project-lexicon/internal/render"
	"github.com/mvp-joe/project-lexicon/internal/typedoc"
)

func textPart(s string) typedoc.CommentPart {
	return typedoc.CommentPart{Kind: typedoc.PartText, Text: s}
}

func blockTag(tag, name, text string) typedoc.BlockTag {
	return typedoc.BlockTag{Tag: tag, Name: name, Content: []typedoc.CommentPart{textPart(text)}}
}

func TestCategorizeTagsPartition(t *testing.T) {
	t.Parallel()

	node := &typedoc.Declaration{
		Name: "connect",
		Kind: typedoc.KindFunction,
		Comment: &typedoc.Comment{
			BlockTags: []typedoc.BlockTag{
				blockTag("@param", "x", "the input"),
				blockTag("@custom", "", "anything at all"),
			},
		},
		Signatures: []*typedoc.Signature{{
			Parameters: []*typedoc.Parameter{param("x", intrinsicType("number"))},
			Type:       intrinsicType("void"),
		}},
	}

	set := CategorizeTags(node)

	require.Len(t, set.Params, 1)
	assert.Equal(t, "x", set.Params[0].Name)
	assert.Equal(t, "number", set.Params[0].Type)
	assert.Equal(t, "the input", set.Params[0].Description)

	require.Contains(t, set.Custom, "@custom")
	assert.Equal(t, []string{"anything at all"}, set.Custom["@custom"])
}

func TestCategorizeTagsAllCategories(t *testing.T) {
	t.Parallel()

	node := &typedoc.Declaration{
		Name: "render",
		Kind: typedoc.KindMethod,
		Comment: &typedoc.Comment{
			BlockTags: []typedoc.BlockTag{
				blockTag("@tutorial", "", "getting-started"),
				blockTag("@tutorials", "", "advanced"),
				blockTag("@see", "", "Widget"),
				blockTag("@throws", "", "RangeError on negative input"),
				blockTag("@throw", "", "TypeError on null input"),
				blockTag("@returns", "", "the frame handle"),
				blockTag("@typeParam", "T", "element type"),
				blockTag("@template", "U", "result type"),
			},
		},
		Signatures: []*typedoc.Signature{{
			Type: &typedoc.Type{Kind: typedoc.TypeReference, Name: "Promise", TypeArguments: []*typedoc.Type{intrinsicType("number")}},
		}},
	}

	set := CategorizeTags(node)

	assert.Equal(t, []string{"getting-started", "advanced"}, set.Tutorials)
	assert.Equal(t, []string{"Widget"}, set.See)
	assert.Equal(t, []string{"RangeError on negative input", "TypeError on null input"}, set.Throws)

	require.Len(t, set.Returns, 1)
	assert.Equal(t, "Promise<number>", set.Returns[0].Type)
	assert.Equal(t, "the frame handle", set.Returns[0].Description)

	require.Len(t, set.TypeParams, 2)
	assert.Equal(t, TypeParamTag{Name: "T", Description: "element type"}, set.TypeParams[0])
	assert.Equal(t, TypeParamTag{Name: "U", Description: "result type"}, set.TypeParams[1])
}

func TestCategorizeTagsExamples(t *testing.T) {
	t.Parallel()

	code := "```ts\nconst w = new Widget();\n```"
	prose := "Widgets come in several sizes."

	node := &typedoc.Declaration{
		Name: "Widget",
		Kind: typedoc.KindClass,
		Comment: &typedoc.Comment{
			BlockTags: []typedoc.BlockTag{
				blockTag("@example", "", code),
				blockTag("@example", "", prose),
			},
		},
	}

	set := CategorizeTags(node)

	require.Len(t, set.Examples, 2)
	assert.True(t, set.Examples[0].IsCode)
	assert.Equal(t, render.LanguageCode, set.Examples[0].Language)
	assert.False(t, set.Examples[1].IsCode)
	assert.Equal(t, render.LanguagePlain, set.Examples[1].Language)

	// Fenced blocks across all examples accumulate into one flat list.
	assert.Equal(t, []string{"const w = new Widget();"}, set.CodeBlocks)
}

func TestCategorizeTagsCustomBagIsOpen(t *testing.T) {
	t.Parallel()

	node := &typedoc.Declaration{
		Name: "thing",
		Kind: typedoc.KindVariable,
		Comment: &typedoc.Comment{
			BlockTags: []typedoc.BlockTag{
				blockTag("@internal", "", "not public API"),
				blockTag("@internal", "", "subject to change"),
				blockTag("@anythingGoes", "", "kept verbatim"),
			},
		},
	}

	set := CategorizeTags(node)

	assert.Equal(t, []string{"not public API", "subject to change"}, set.Custom["@internal"])
	assert.Equal(t, []string{"kept verbatim"}, set.Custom["@anythingGoes"])
}

func TestCategorizeTagsParamFallsBackToOwnParameters(t *testing.T) {
	t.Parallel()

	node := &typedoc.Declaration{
		Name: "options",
		Kind: typedoc.KindVariable,
		Comment: &typedoc.Comment{
			BlockTags: []typedoc.BlockTag{
				blockTag("@param", "depth", "recursion depth"),
				blockTag("@param", "missing", "no such parameter"),
			},
		},
		Parameters: []*typedoc.Parameter{param("depth", intrinsicType("number"))},
	}

	set := CategorizeTags(node)

	require.Len(t, set.Params, 2)
	assert.Equal(t, "number", set.Params[0].Type)
	assert.Equal(t, "", set.Params[1].Type)
}

func TestCategorizeTagsNilComment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TagSet{}, CategorizeTags(&typedoc.Declaration{Name: "bare"}))
	assert.Equal(t, TagSet{}, CategorizeTags(nil))
}
