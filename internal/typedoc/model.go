// Package typedoc models the declaration documents that lexicon ingests: a
// tree of named, typed declarations with attached documentation, as produced
// by TypeDoc-style JSON exporters. The package only describes and loads the
// structure; all interpretation lives in internal/render and internal/extract.
package typedoc

// Flags carries the boolean modifiers a declaration may have. Absent flags
// decode to false.
type Flags struct {
	IsAbstract  bool `json:"isAbstract,omitempty"`
	IsAsync     bool `json:"isAsync,omitempty"`
	IsConst     bool `json:"isConst,omitempty"`
	IsReadonly  bool `json:"isReadonly,omitempty"`
	IsOptional  bool `json:"isOptional,omitempty"`
	IsRest      bool `json:"isRest,omitempty"`
	IsStatic    bool `json:"isStatic,omitempty"`
	IsPrivate   bool `json:"isPrivate,omitempty"`
	IsProtected bool `json:"isProtected,omitempty"`
	IsPublic    bool `json:"isPublic,omitempty"`
	IsExternal  bool `json:"isExternal,omitempty"`
}

// Source records where a declaration was written. Character is the second
// numeric source position reported by the producer; it is a column offset,
// not an end line, and is carried through without interpretation.
type Source struct {
	FileName  string `json:"fileName,omitempty"`
	Line      int    `json:"line,omitempty"`
	Character int    `json:"character,omitempty"`
	URL       string `json:"url,omitempty"`
}

// TypeParameter is one generic parameter of a declaration or signature.
// Constraint maps the producer's "type" field; Default its "default".
type TypeParameter struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name"`
	Kind       Kind   `json:"kind,omitempty"`
	Constraint *Type  `json:"type,omitempty"`
	Default    *Type  `json:"default,omitempty"`
}

// Parameter is one value parameter of a signature or function declaration.
type Parameter struct {
	ID           int      `json:"id,omitempty"`
	Name         string   `json:"name"`
	Kind         Kind     `json:"kind,omitempty"`
	Flags        Flags    `json:"flags,omitempty"`
	Type         *Type    `json:"type,omitempty"`
	DefaultValue string   `json:"defaultValue,omitempty"`
	Comment      *Comment `json:"comment,omitempty"`
}

// Signature is one callable form: a call/construct signature, an overload,
// or a get/set/index signature. Type is the return type.
type Signature struct {
	ID             int              `json:"id,omitempty"`
	Name           string           `json:"name"`
	Kind           Kind             `json:"kind,omitempty"`
	Comment        *Comment         `json:"comment,omitempty"`
	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
	Parameters     []*Parameter     `json:"parameters,omitempty"`
	Type           *Type            `json:"type,omitempty"`
}

// Declaration is one documented symbol in the input tree. Children nest
// recursively; everything else is optional and producer-dependent.
type Declaration struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Kind    Kind     `json:"kind"`
	Variant string   `json:"variant,omitempty"`
	Flags   Flags    `json:"flags,omitempty"`
	Comment *Comment `json:"comment,omitempty"`
	Type    *Type    `json:"type,omitempty"`

	Children []*Declaration `json:"children,omitempty"`

	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
	Signatures     []*Signature     `json:"signatures,omitempty"`
	GetSignature   *Signature       `json:"getSignature,omitempty"`
	SetSignature   *Signature       `json:"setSignature,omitempty"`
	IndexSignature *Signature       `json:"indexSignature,omitempty"`
	Parameters     []*Parameter     `json:"parameters,omitempty"`

	Sources          []Source `json:"sources,omitempty"`
	ExtendedTypes    []*Type  `json:"extendedTypes,omitempty"`
	ImplementedTypes []*Type  `json:"implementedTypes,omitempty"`
	DefaultValue     string   `json:"defaultValue,omitempty"`
}

// Document is a complete declaration tree plus the project metadata used in
// run summaries. The root node is itself a declaration (kind Project).
type Document struct {
	Declaration
	PackageName    string `json:"packageName,omitempty"`
	PackageVersion string `json:"packageVersion,omitempty"`
}

// ProjectName returns the best available project name: the package name when
// present, else the root declaration's name.
func (d *Document) ProjectName() string {
	if d.PackageName != "" {
		return d.PackageName
	}
	return d.Name
}
