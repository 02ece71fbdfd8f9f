package extract

import (
	"strings"

	"github.com/mvp-joe/project-lexicon/internal/render"
	"github.com/mvp-joe/project-lexicon/internal/typedoc"
)

// Accessor kinds for AccessorSignature.
const (
	AccessorGetter = "getter"
	AccessorSetter = "setter"
)

// BuildSignature renders one call signature as
// "name<typeParams>(params): returnType".
func BuildSignature(name string, sig *typedoc.Signature) string {
	if sig == nil {
		return name + "(): any"
	}
	return name +
		TypeParameterClause(sig.TypeParameters) +
		"(" + ParameterClause(sig.Parameters) + "): " +
		render.Type(sig.Type)
}

// TypeParameterClause renders "<T extends C = D, U>" for a type-parameter
// list, or the empty string when the list is empty. The constraint and
// default clauses each appear only when set.
func TypeParameterClause(params []*typedoc.TypeParameter) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p == nil {
			continue
		}
		s := p.Name
		if p.Constraint != nil {
			s += " extends " + render.Type(p.Constraint)
		}
		if p.Default != nil {
			s += " = " + render.Type(p.Default)
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return ""
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// ParameterClause renders a comma-joined parameter list. Per parameter the
// rest marker, name, optional marker, type, and default clause appear in
// that fixed order, the markers only when the corresponding flag is set.
func ParameterClause(params []*typedoc.Parameter) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p == nil {
			continue
		}
		var sb strings.Builder
		if p.Flags.IsRest {
			sb.WriteString("...")
		}
		sb.WriteString(p.Name)
		if p.Flags.IsOptional {
			sb.WriteString("?")
		}
		sb.WriteString(": ")
		sb.WriteString(render.Type(p.Type))
		if p.DefaultValue != "" {
			sb.WriteString(" = ")
			sb.WriteString(p.DefaultValue)
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, ", ")
}

// AccessorSignature synthesizes the signature record for a property
// accessor. Getters render "get name(): type" with no parameters; setters
// render "set name(value: type): void" and carry the setter's value
// parameter.
func AccessorSignature(d *typedoc.Declaration, kind string) SignatureRecord {
	switch kind {
	case AccessorGetter:
		var ret *typedoc.Type
		if d.GetSignature != nil {
			ret = d.GetSignature.Type
		}
		return SignatureRecord{
			Name:      AccessorGetter,
			Signature: "get " + d.Name + "(): " + render.Type(ret),
		}
	case AccessorSetter:
		rec := SignatureRecord{Name: AccessorSetter}
		valueType := "any"
		if d.SetSignature != nil && len(d.SetSignature.Parameters) > 0 && d.SetSignature.Parameters[0] != nil {
			p := d.SetSignature.Parameters[0]
			valueType = render.Type(p.Type)
			rec.Parameters = []Parameter{extractParameter(p)}
		}
		rec.Signature = "set " + d.Name + "(value: " + valueType + "): void"
		return rec
	}
	return SignatureRecord{}
}

// IndexSignatureString renders "[key: type, ...]: returnType" for an index
// signature.
func IndexSignatureString(sig *typedoc.Signature) string {
	if sig == nil {
		return ""
	}
	parts := make([]string, 0, len(sig.Parameters))
	for _, p := range sig.Parameters {
		if p == nil {
			continue
		}
		parts = append(parts, p.Name+": "+render.Type(p.Type))
	}
	return "[" + strings.Join(parts, ", ") + "]: " + render.Type(sig.Type)
}

// extractParameter applies the shared parameter-extraction rule used for
// declaration parameters, signature parameters, and setter values.
func extractParameter(p *typedoc.Parameter) Parameter {
	param := Parameter{
		Name:         p.Name,
		Type:         render.Type(p.Type),
		Optional:     p.Flags.IsOptional,
		Rest:         p.Flags.IsRest,
		DefaultValue: p.DefaultValue,
	}
	if p.Comment != nil {
		param.Description = strings.TrimSpace(render.Parts(p.Comment.Summary))
	}
	return param
}

func extractParameters(params []*typedoc.Parameter) []Parameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		if p == nil {
			continue
		}
		out = append(out, extractParameter(p))
	}
	return out
}
