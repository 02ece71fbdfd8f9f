package typedoc

import (
	"encoding/json"
	"fmt"
)

// Type expression kinds as they appear in the "type" discriminator field.
const (
	TypeIntrinsic        = "intrinsic"
	TypeReference        = "reference"
	TypeArray            = "array"
	TypeUnion            = "union"
	TypeIntersection     = "intersection"
	TypeLiteral          = "literal"
	TypeTuple            = "tuple"
	TypeNamedTupleMember = "namedTupleMember"
	TypeReflection       = "reflection"
	TypeOptional         = "optional"
	TypeRest             = "rest"
	TypeConditional      = "conditional"
	TypeInferred         = "inferred"
	TypeIndexedAccess    = "indexedAccess"
	TypeMapped           = "mapped"
	TypeOperator         = "typeOperator"
	TypeQuery            = "query"
	TypeTemplateLiteral  = "templateLiteral"
	TypePredicate        = "predicate"
	TypeUnknown          = "unknown"
)

// Type is one node of a type-expression tree. The union of ~17 type
// constructs is modeled as a single struct discriminated by Kind; only the
// fields relevant to a given kind are populated. Unknown or partially
// populated nodes are legal input; the renderer degrades rather than fails.
type Type struct {
	Kind string `json:"type"`

	// intrinsic, reference, inferred, predicate, unknown
	Name string `json:"name,omitempty"`

	// reference
	TypeArguments []*Type `json:"typeArguments,omitempty"`
	// Target is the cross-reference identifier (numeric id or symbol path).
	// It is carried through uninterpreted.
	Target json.RawMessage `json:"target,omitempty"`
	// Package names the module a reference points into, when known.
	Package string `json:"package,omitempty"`

	// array, optional, rest
	ElementType *Type `json:"elementType,omitempty"`

	// union, intersection
	Types []*Type `json:"types,omitempty"`

	// literal: string, float64, bool, nil, or map with "value"/"negative"
	// for arbitrary-precision integers (decoded by encoding/json into any).
	Value any `json:"value,omitempty"`

	// tuple
	Elements []*Type `json:"elements,omitempty"`

	// namedTupleMember
	Element    *Type `json:"element,omitempty"`
	IsOptional bool  `json:"isOptional,omitempty"`

	// reflection
	Declaration *Declaration `json:"declaration,omitempty"`

	// conditional
	CheckType   *Type `json:"checkType,omitempty"`
	ExtendsType *Type `json:"extendsType,omitempty"`
	TrueType    *Type `json:"trueType,omitempty"`
	FalseType   *Type `json:"falseType,omitempty"`

	// inferred
	Constraint *Type `json:"constraint,omitempty"`

	// indexedAccess
	ObjectType *Type `json:"objectType,omitempty"`
	IndexType  *Type `json:"indexType,omitempty"`

	// mapped
	Parameter        string `json:"parameter,omitempty"`
	ParameterType    *Type  `json:"parameterType,omitempty"`
	TemplateType     *Type  `json:"templateType,omitempty"`
	ReadonlyModifier string `json:"readonlyModifier,omitempty"`
	OptionalModifier string `json:"optionalModifier,omitempty"`
	NameType         *Type  `json:"nameType,omitempty"`

	// typeOperator
	Operator   string `json:"operator,omitempty"`
	TargetType *Type  `json:"targetType,omitempty"` // also predicate target

	// query
	QueryType *Type `json:"queryType,omitempty"`

	// templateLiteral
	Head string         `json:"head,omitempty"`
	Tail []TemplatePart `json:"tail,omitempty"`

	// predicate
	Asserts bool `json:"asserts,omitempty"`
}

// UnmarshalJSON decodes a type node. The "target" key is polymorphic: for
// references it is a cross-reference identifier, for type operators it is the
// operand type expression. The operand is routed into TargetType so consumers
// never touch the raw form.
func (t *Type) UnmarshalJSON(data []byte) error {
	type plain Type
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = Type(p)
	if t.Kind == TypeOperator && t.TargetType == nil && len(t.Target) > 0 {
		var operand Type
		if err := json.Unmarshal(t.Target, &operand); err == nil {
			t.TargetType = &operand
		}
	}
	return nil
}

// TemplatePart is one interpolation segment of a template-literal type: the
// interpolated type expression followed by the literal text that trails it.
// The wire form is a heterogeneous two-element array [type, string].
type TemplatePart struct {
	Type *Type
	Text string
}

// UnmarshalJSON decodes the [type, string] pair form.
func (p *TemplatePart) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("template literal part is not an array: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("template literal part has %d elements, want 2", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.Type); err != nil {
		return fmt.Errorf("template literal part type: %w", err)
	}
	if err := json.Unmarshal(raw[1], &p.Text); err != nil {
		return fmt.Errorf("template literal part text: %w", err)
	}
	return nil
}

// MarshalJSON re-encodes the pair in its wire form so documents round-trip.
func (p TemplatePart) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Type, p.Text})
}
