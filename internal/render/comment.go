package render

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/mvp-joe/project-lexicon/internal/typedoc"
)

// Parts flattens an ordered comment-part sequence into display text. Text
// parts pass through verbatim, code parts are wrapped in single backticks,
// and inline reference tags render per tag kind. A nil or empty sequence
// renders as the empty string.
func Parts(parts []typedoc.CommentPart) string {
	if len(parts) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range parts {
		switch p.Kind {
		case typedoc.PartText:
			sb.WriteString(p.Text)
		case typedoc.PartCode:
			sb.WriteString("`")
			sb.WriteString(p.Text)
			sb.WriteString("`")
		case typedoc.PartInlineTag:
			sb.WriteString(inlineTag(p))
		default:
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// inlineTag renders one inline reference tag. Link tags become markdown
// links, plain links keep just their display text, tutorials get a labeled
// bracket form, and anything else degrades to its text or name.
func inlineTag(p typedoc.CommentPart) string {
	display := p.Text
	if display == "" {
		display = p.Name
	}

	switch p.Tag {
	case typedoc.TagLink, typedoc.TagLinkCode:
		target := linkTarget(p.Target)
		if target == "" {
			target = display
		}
		return "[" + display + "](" + target + ")"
	case typedoc.TagLinkPlain:
		return display
	case typedoc.TagTutorial:
		name := p.Name
		if name == "" {
			name = p.Text
		}
		return "[Tutorial: " + name + "]"
	default:
		return display
	}
}

// linkTarget stringifies a link target, which arrives either as a numeric
// declaration id or as an external URL string. Unresolvable targets yield
// an empty string so the caller can fall back to the display text.
func linkTarget(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

// Authors collects the rendered content of every @author block tag on a
// comment. Comments without author tags yield an empty list.
func Authors(c *typedoc.Comment) []string {
	if c == nil {
		return nil
	}
	var authors []string
	for _, tag := range c.BlockTags {
		if tag.Tag != "@author" {
			continue
		}
		if name := strings.TrimSpace(Parts(tag.Content)); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}
