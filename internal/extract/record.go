package extract

import (
	"github.com/mvp-joe/project-lexicon/internal/typedoc"
)

// Record is the normalized, serializable output for one declaration.
type Record struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	FullPath string `json:"full_path"`

	Documentation Documentation     `json:"documentation"`
	TypeInfo      TypeInfo          `json:"type_info"`
	Signatures    []SignatureRecord `json:"signatures,omitempty"`
	Parameters    []Parameter       `json:"parameters,omitempty"`
	Tags          TagSet            `json:"tags"`
	Hierarchy     Hierarchy         `json:"hierarchy"`
	Source        Source            `json:"source"`
	Modifiers     Modifiers         `json:"modifiers"`
	DefaultValue  string            `json:"default_value,omitempty"`
	SearchTokens  []string          `json:"search_tokens,omitempty"`

	// Node is the original declaration, kept for traceability. The reduced
	// form strips it.
	Node *typedoc.Declaration `json:"node,omitempty"`
}

// Reduced returns a copy of the record without the original node reference.
func (r Record) Reduced() Record {
	r.Node = nil
	return r
}

// Documentation holds the rendered comment content of a declaration.
type Documentation struct {
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	Remarks     string   `json:"remarks,omitempty"`
	Deprecated  string   `json:"deprecated,omitempty"`
	License     string   `json:"license,omitempty"`
	Copyright   string   `json:"copyright,omitempty"`
	Since       string   `json:"since,omitempty"`
	Authors     []string `json:"authors,omitempty"`
}

// TypeInfo holds the rendered type relationships of a declaration.
type TypeInfo struct {
	Type       string   `json:"type,omitempty"`
	Extends    []string `json:"extends,omitempty"`
	Implements []string `json:"implements,omitempty"`
}

// SignatureRecord pairs one rendered signature with the parameters it
// binds. Overloads keep the declaration's name; synthesized accessor and
// index entries are named after their form.
type SignatureRecord struct {
	Name       string      `json:"name"`
	Signature  string      `json:"signature"`
	Parameters []Parameter `json:"parameters,omitempty"`
}

// Parameter is one rendered value parameter.
type Parameter struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Optional     bool   `json:"optional,omitempty"`
	Rest         bool   `json:"rest,omitempty"`
	DefaultValue string `json:"default_value,omitempty"`
	Description  string `json:"description,omitempty"`
}

// TagSet is the categorized view of a comment's block tags. Tags without a
// dedicated category land in Custom keyed by their literal tag name, so
// producers can introduce new tags without a schema change.
type TagSet struct {
	Examples   []Example           `json:"examples,omitempty"`
	CodeBlocks []string            `json:"code_blocks,omitempty"`
	Tutorials  []string            `json:"tutorials,omitempty"`
	See        []string            `json:"see,omitempty"`
	Throws     []string            `json:"throws,omitempty"`
	Returns    []ReturnTag         `json:"returns,omitempty"`
	Params     []ParamTag          `json:"params,omitempty"`
	TypeParams []TypeParamTag      `json:"type_params,omitempty"`
	Custom     map[string][]string `json:"custom,omitempty"`
}

// Example is one @example tag with its code classification.
type Example struct {
	Text     string `json:"text"`
	IsCode   bool   `json:"is_code"`
	Language string `json:"language"`
}

// ReturnTag pairs a @returns description with the rendered return type of
// the first overload, when one exists.
type ReturnTag struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// ParamTag is one @param tag resolved against the declaration's value
// parameters.
type ParamTag struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// TypeParamTag is one @typeParam or @template tag.
type TypeParamTag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Hierarchy summarizes a record's position in the declaration tree.
// Pointer ids distinguish "absent" from id zero, which the project root
// legitimately uses.
type Hierarchy struct {
	ParentID   *int   `json:"parent_id,omitempty"`
	ParentName string `json:"parent_name,omitempty"`
	ParentKind string `json:"parent_kind,omitempty"`
	ChildIDs   []int  `json:"child_ids,omitempty"`
	ModuleID   *int   `json:"module_id,omitempty"`
	ModuleName string `json:"module_name,omitempty"`
}

// Source is the recorded source location. EndPosition carries the input's
// second numeric position verbatim; producers disagree on whether it is an
// end line or a column.
type Source struct {
	FileName    string `json:"file_name"`
	Line        int    `json:"line"`
	EndPosition int    `json:"end_position"`
	URL         string `json:"url,omitempty"`
}

// Modifiers mirrors the declaration's boolean modifier flags.
type Modifiers struct {
	IsAbstract  bool `json:"is_abstract,omitempty"`
	IsAsync     bool `json:"is_async,omitempty"`
	IsConst     bool `json:"is_const,omitempty"`
	IsReadonly  bool `json:"is_readonly,omitempty"`
	IsOptional  bool `json:"is_optional,omitempty"`
	IsStatic    bool `json:"is_static,omitempty"`
	IsPrivate   bool `json:"is_private,omitempty"`
	IsProtected bool `json:"is_protected,omitempty"`
	IsPublic    bool `json:"is_public,omitempty"`
	IsExternal  bool `json:"is_external,omitempty"`
}
