package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFencedCodeBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "single block with language hint",
			text:     "```ts\nconst w = new Widget();\nw.render();\n```",
			expected: []string{"const w = new Widget();\nw.render();"},
		},
		{
			name:     "block without hint",
			text:     "Before\n```\nfoo()\n```\nAfter",
			expected: []string{"foo()"},
		},
		{
			name:     "multiple blocks in order",
			text:     "```js\nfirst\n```\nprose\n```ts\nsecond\n```",
			expected: []string{"first", "second"},
		},
		{
			name:     "unrecognized hint is content",
			text:     "```mermaid\ngraph TD\n```",
			expected: []string{"mermaid\ngraph TD"},
		},
		{
			name:     "unclosed fence runs to end",
			text:     "```ts\nconst x = 1",
			expected: []string{"const x = 1"},
		},
		{
			name:     "no fences",
			text:     "Plain prose without any code.",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FencedCodeBlocks(tt.text))
		})
	}
}

func TestFencedCodeBlocksFreshScan(t *testing.T) {
	t.Parallel()

	// Each call re-scans from the start.
	text := "```ts\nfoo()\n```"
	first := FencedCodeBlocks(text)
	second := FencedCodeBlocks(text)
	assert.Equal(t, first, second)
}

func TestLooksLikeCode(t *testing.T) {
	t.Parallel()

	assert.True(t, LooksLikeCode("const x = 1"))
	assert.True(t, LooksLikeCode("function greet() {}"))
	assert.True(t, LooksLikeCode("items.map(x => x.id)"))
	assert.True(t, LooksLikeCode("await widget.render()"))
	assert.True(t, LooksLikeCode("import { Widget } from './widget'"))
	assert.True(t, LooksLikeCode("```\nanything\n```"))

	assert.False(t, LooksLikeCode("A short sentence of prose."))
	assert.False(t, LooksLikeCode("See the user guide for details."))
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "code keywords", text: "const x = 1;", expected: LanguageCode},
		{name: "arrow token", text: "x => x + 1", expected: LanguageCode},
		{name: "html comment", text: "<!-- rendered output -->", expected: LanguageMarkup},
		{name: "tag marker", text: "@param x the input", expected: LanguageCode},
		{name: "plain prose", text: "Just a description.", expected: LanguagePlain},
		// The keyword check precedes the markup check.
		{name: "html comment with braces", text: "<!-- {placeholder} -->", expected: LanguageCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, DetectLanguage(tt.text))
		})
	}
}
