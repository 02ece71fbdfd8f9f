package typedoc

import "encoding/json"

// Comment part kinds as they appear in the "kind" discriminator field.
const (
	PartText      = "text"
	PartCode      = "code"
	PartInlineTag = "inline-tag"
)

// Inline tag names with dedicated rendering rules.
const (
	TagLink      = "@link"
	TagLinkCode  = "@linkcode"
	TagLinkPlain = "@linkplain"
	TagTutorial  = "@tutorial"
)

// CommentPart is one segment of rich comment text: plain text, inline code,
// or an inline reference tag such as {@link Target}.
type CommentPart struct {
	Kind string `json:"kind"`
	Text string `json:"text"`

	// Inline-tag fields. Target is a cross-reference identifier (numeric id
	// or URL string) carried through uninterpreted.
	Tag    string          `json:"tag,omitempty"`
	Name   string          `json:"name,omitempty"`
	Target json.RawMessage `json:"target,omitempty"`
}

// BlockTag is a structured documentation annotation (@param, @example, ...)
// attached to a comment. Name carries the subject for tags that have one
// (@param x, @typeParam T).
type BlockTag struct {
	Tag     string        `json:"tag"`
	Name    string        `json:"name,omitempty"`
	Content []CommentPart `json:"content,omitempty"`
}

// Comment is the documentation block attached to a declaration. Each section
// is an ordered sequence of parts; all sections are optional.
type Comment struct {
	Summary      []CommentPart `json:"summary,omitempty"`
	Description  []CommentPart `json:"description,omitempty"`
	Remarks      []CommentPart `json:"remarks,omitempty"`
	Deprecated   []CommentPart `json:"deprecated,omitempty"`
	License      []CommentPart `json:"license,omitempty"`
	Copyright    []CommentPart `json:"copyright,omitempty"`
	Since        []CommentPart `json:"since,omitempty"`
	BlockTags    []BlockTag    `json:"blockTags,omitempty"`
	ModifierTags []string      `json:"modifierTags,omitempty"`
}

// TagsNamed returns the block tags whose tag name matches any of the given
// names, preserving document order. A nil comment yields nil.
func (c *Comment) TagsNamed(names ...string) []BlockTag {
	if c == nil {
		return nil
	}
	var out []BlockTag
	for _, bt := range c.BlockTags {
		for _, name := range names {
			if bt.Tag == name {
				out = append(out, bt)
				break
			}
		}
	}
	return out
}
