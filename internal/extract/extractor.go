// Package extract turns a parsed declaration tree into normalized records:
// one record per declaration, carrying rendered documentation, signatures,
// categorized tags, hierarchy, and derived search tokens. The walker
// traverses the tree and isolates per-node failures; the lookup index and
// run summary are derived from the finished record collection.
package extract

import (
	"errors"
	"fmt"

	"github.com/mvp-joe/project-lexicon/internal/render"
	"github.com/mvp-joe/project-lexicon/internal/typedoc"
)

// Ancestry is the walk context for one node: the dotted path of its
// ancestors, its parent node, and its nearest module-like ancestor.
type Ancestry struct {
	Path   string
	Parent *typedoc.Declaration
	Module *typedoc.Declaration
}

// Extractor builds one record from one declaration. The walker catches
// errors and panics at its boundary, so implementations may fail freely on
// malformed nodes.
type Extractor interface {
	Extract(node *typedoc.Declaration, anc Ancestry) (*Record, error)
}

type recordExtractor struct{}

// NewExtractor returns the standard record extractor.
func NewExtractor() Extractor {
	return &recordExtractor{}
}

func (e *recordExtractor) Extract(node *typedoc.Declaration, anc Ancestry) (*Record, error) {
	if node == nil {
		return nil, errors.New("nil declaration")
	}
	if node.Name == "" {
		return nil, fmt.Errorf("declaration %d has no name", node.ID)
	}

	fullPath := node.Name
	if anc.Path != "" {
		fullPath = anc.Path + "." + node.Name
	}

	rec := &Record{
		ID:            node.ID,
		Name:          node.Name,
		Kind:          node.Kind.String(),
		FullPath:      fullPath,
		Documentation: extractDocumentation(node.Comment),
		TypeInfo:      extractTypeInfo(node),
		Signatures:    extractSignatures(node),
		Parameters:    extractParameters(node.Parameters),
		Tags:          CategorizeTags(node),
		Hierarchy:     extractHierarchy(node, anc),
		Source:        extractSource(node.Sources),
		Modifiers:     extractModifiers(node.Flags),
		DefaultValue:  node.DefaultValue,
		Node:          node,
	}
	rec.SearchTokens = searchTokens(rec)
	return rec, nil
}

func extractDocumentation(c *typedoc.Comment) Documentation {
	if c == nil {
		return Documentation{}
	}
	return Documentation{
		Summary:     render.Parts(c.Summary),
		Description: render.Parts(c.Description),
		Remarks:     render.Parts(c.Remarks),
		Deprecated:  render.Parts(c.Deprecated),
		License:     render.Parts(c.License),
		Copyright:   render.Parts(c.Copyright),
		Since:       render.Parts(c.Since),
		Authors:     render.Authors(c),
	}
}

// extractTypeInfo renders the declaration's own type and its inheritance
// lists. A declaration without an own type keeps the slot empty rather
// than degrading to "any".
func extractTypeInfo(node *typedoc.Declaration) TypeInfo {
	var info TypeInfo
	if node.Type != nil {
		info.Type = render.Type(node.Type)
	}
	for _, t := range node.ExtendedTypes {
		info.Extends = append(info.Extends, render.Type(t))
	}
	for _, t := range node.ImplementedTypes {
		info.Implements = append(info.Implements, render.Type(t))
	}
	return info
}

// extractSignatures renders the overload list, then appends getter, setter,
// and index signatures, in that order.
func extractSignatures(node *typedoc.Declaration) []SignatureRecord {
	var sigs []SignatureRecord
	for _, sig := range node.Signatures {
		if sig == nil {
			continue
		}
		name := sig.Name
		if name == "" {
			name = node.Name
		}
		sigs = append(sigs, SignatureRecord{
			Name:       name,
			Signature:  BuildSignature(node.Name, sig),
			Parameters: extractParameters(sig.Parameters),
		})
	}
	if node.GetSignature != nil {
		sigs = append(sigs, AccessorSignature(node, AccessorGetter))
	}
	if node.SetSignature != nil {
		sigs = append(sigs, AccessorSignature(node, AccessorSetter))
	}
	if node.IndexSignature != nil {
		sigs = append(sigs, SignatureRecord{
			Name:      "index",
			Signature: IndexSignatureString(node.IndexSignature),
		})
	}
	return sigs
}

func extractHierarchy(node *typedoc.Declaration, anc Ancestry) Hierarchy {
	var h Hierarchy
	if anc.Parent != nil {
		id := anc.Parent.ID
		h.ParentID = &id
		h.ParentName = anc.Parent.Name
		h.ParentKind = anc.Parent.Kind.String()
	}
	for _, child := range node.Children {
		if child != nil {
			h.ChildIDs = append(h.ChildIDs, child.ID)
		}
	}
	if anc.Module != nil {
		id := anc.Module.ID
		h.ModuleID = &id
		h.ModuleName = anc.Module.Name
	}
	return h
}

// SourceUnknown is the sentinel filename for declarations without source
// information.
const SourceUnknown = "unknown"

func extractSource(sources []typedoc.Source) Source {
	if len(sources) == 0 {
		return Source{FileName: SourceUnknown}
	}
	s := sources[0]
	name := s.FileName
	if name == "" {
		name = SourceUnknown
	}
	return Source{
		FileName:    name,
		Line:        s.Line,
		EndPosition: s.Character,
		URL:         s.URL,
	}
}

func extractModifiers(f typedoc.Flags) Modifiers {
	return Modifiers{
		IsAbstract:  f.IsAbstract,
		IsAsync:     f.IsAsync,
		IsConst:     f.IsConst,
		IsReadonly:  f.IsReadonly,
		IsOptional:  f.IsOptional,
		IsStatic:    f.IsStatic,
		IsPrivate:   f.IsPrivate,
		IsProtected: f.IsProtected,
		IsPublic:    f.IsPublic,
		IsExternal:  f.IsExternal,
	}
}
