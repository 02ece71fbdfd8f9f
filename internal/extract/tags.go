package extract

import (
	"strings"

	"github.com/mvp-joe/project-lexicon/internal/render"
	"github.com/mvp-joe/project-lexicon/internal/typedoc"
)

// CategorizeTags partitions a declaration's block tags into the tag set.
// Recognized tag names get dedicated categories; every other tag
// accumulates under its literal name in the custom bag. Examples are
// additionally classified as code or prose, tagged with a best-effort
// language, and mined for fenced code blocks.
func CategorizeTags(node *typedoc.Declaration) TagSet {
	var set TagSet
	if node == nil || node.Comment == nil {
		return set
	}

	returnType := firstReturnType(node)

	for _, tag := range node.Comment.BlockTags {
		text := strings.TrimSpace(render.Parts(tag.Content))

		switch tag.Tag {
		case "@example":
			set.Examples = append(set.Examples, Example{
				Text:     text,
				IsCode:   render.LooksLikeCode(text),
				Language: render.DetectLanguage(text),
			})
			set.CodeBlocks = append(set.CodeBlocks, render.FencedCodeBlocks(text)...)
		case "@tutorial", "@tutorials":
			set.Tutorials = append(set.Tutorials, text)
		case "@see":
			set.See = append(set.See, text)
		case "@throws", "@throw":
			set.Throws = append(set.Throws, text)
		case "@returns", "@return":
			set.Returns = append(set.Returns, ReturnTag{Type: returnType, Description: text})
		case "@param":
			set.Params = append(set.Params, ParamTag{
				Name:        tag.Name,
				Type:        parameterType(node, tag.Name),
				Description: text,
			})
		case "@typeParam", "@template":
			set.TypeParams = append(set.TypeParams, TypeParamTag{Name: tag.Name, Description: text})
		default:
			if set.Custom == nil {
				set.Custom = make(map[string][]string)
			}
			set.Custom[tag.Tag] = append(set.Custom[tag.Tag], text)
		}
	}
	return set
}

// firstReturnType renders the return type of the first overload, the best
// available type slot for @returns tags.
func firstReturnType(node *typedoc.Declaration) string {
	if len(node.Signatures) > 0 && node.Signatures[0] != nil && node.Signatures[0].Type != nil {
		return render.Type(node.Signatures[0].Type)
	}
	return ""
}

// parameterType resolves a @param tag against the declaration's value
// parameters by name: the first overload's parameters first, then the
// declaration's own.
func parameterType(node *typedoc.Declaration, name string) string {
	if len(node.Signatures) > 0 && node.Signatures[0] != nil {
		for _, p := range node.Signatures[0].Parameters {
			if p != nil && p.Name == name && p.Type != nil {
				return render.Type(p.Type)
			}
		}
	}
	for _, p := range node.Parameters {
		if p != nil && p.Name == name && p.Type != nil {
			return render.Type(p.Type)
		}
	}
	return ""
}
