// Package render turns type expressions and comment content into display
// strings. Everything here is a pure function over already-parsed trees:
// malformed or unrecognized nodes degrade to fallback text, they never
// produce an error.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mvp-joe/project-lexicon/internal/typedoc"
)

// Type renders a type expression to its canonical display string. It is
// total over the type union: nil input renders as "any" and unrecognized
// kinds fall back to the node's own name or "unknown".
func Type(t *typedoc.Type) string {
	if t == nil {
		return "any"
	}

	switch t.Kind {
	case typedoc.TypeIntrinsic:
		if t.Name == "" {
			return "any"
		}
		return t.Name

	case typedoc.TypeReference:
		name := t.Name
		if name == "" {
			name = "unknown"
		}
		if len(t.TypeArguments) == 0 {
			return name
		}
		return name + "<" + joinTypes(t.TypeArguments, ", ") + ">"

	case typedoc.TypeArray:
		return Type(t.ElementType) + "[]"

	case typedoc.TypeUnion:
		return joinTypes(t.Types, " | ")

	case typedoc.TypeIntersection:
		return joinTypes(t.Types, " & ")

	case typedoc.TypeLiteral:
		return literal(t.Value)

	case typedoc.TypeTuple:
		return "[" + joinTypes(t.Elements, ", ") + "]"

	case typedoc.TypeNamedTupleMember:
		return t.Name + ": " + Type(t.Element)

	case typedoc.TypeReflection:
		return reflection(t.Declaration)

	case typedoc.TypeOptional:
		return Type(t.ElementType) + " | undefined"

	case typedoc.TypeRest:
		return "..." + Type(t.ElementType)

	case typedoc.TypeConditional:
		return fmt.Sprintf("%s extends %s ? %s : %s",
			Type(t.CheckType), Type(t.ExtendsType), Type(t.TrueType), Type(t.FalseType))

	case typedoc.TypeInferred:
		s := "infer " + t.Name
		if t.Constraint != nil {
			s += " extends " + Type(t.Constraint)
		}
		return s

	case typedoc.TypeIndexedAccess:
		return Type(t.ObjectType) + "[" + Type(t.IndexType) + "]"

	case typedoc.TypeMapped:
		return mapped(t)

	case typedoc.TypeOperator:
		return t.Operator + " " + Type(t.TargetType)

	case typedoc.TypeQuery:
		return "typeof " + Type(t.QueryType)

	case typedoc.TypeTemplateLiteral:
		return templateLiteral(t)

	case typedoc.TypePredicate:
		return predicate(t)

	default:
		if t.Name != "" {
			return t.Name
		}
		return "unknown"
	}
}

func joinTypes(types []*typedoc.Type, sep string) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = Type(t)
	}
	return strings.Join(parts, sep)
}

// literal canonicalizes a literal payload: strings are double-quoted,
// numbers and booleans use their shortest text form, absent values render
// as "null", and arbitrary-precision integers keep their bigint suffix.
func literal(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]any:
		if digits, ok := val["value"].(string); ok {
			if neg, _ := val["negative"].(bool); neg {
				return "-" + digits + "n"
			}
			return digits + "n"
		}
	}
	return fmt.Sprintf("%v", v)
}

// reflection renders an inline object or function shape. Object shapes list
// their members; function shapes render only the first call signature.
func reflection(d *typedoc.Declaration) string {
	if d == nil {
		return "{...}"
	}
	if len(d.Children) > 0 {
		members := make([]string, len(d.Children))
		for i, c := range d.Children {
			members[i] = c.Name + ": " + Type(c.Type)
		}
		return "{ " + strings.Join(members, "; ") + " }"
	}
	if len(d.Signatures) > 0 && d.Signatures[0] != nil {
		sig := d.Signatures[0]
		params := make([]string, len(sig.Parameters))
		for i, p := range sig.Parameters {
			params[i] = p.Name + ": " + Type(p.Type)
		}
		return "(" + strings.Join(params, ", ") + ") => " + Type(sig.Type)
	}
	return "{...}"
}

// mapped renders the bracketed mapped-type form. The readonly and optional
// markers are emitted verbatim as stored on the node, each only when set.
func mapped(t *typedoc.Type) string {
	var sb strings.Builder
	sb.WriteString("{ ")
	if t.ReadonlyModifier != "" {
		sb.WriteString(t.ReadonlyModifier)
		sb.WriteString(" ")
	}
	sb.WriteString("[")
	sb.WriteString(t.Parameter)
	sb.WriteString(" in ")
	sb.WriteString(Type(t.ParameterType))
	sb.WriteString("]")
	sb.WriteString(t.OptionalModifier)
	sb.WriteString(": ")
	sb.WriteString(Type(t.TemplateType))
	if t.NameType != nil {
		sb.WriteString(" as ")
		sb.WriteString(Type(t.NameType))
	}
	sb.WriteString(" }")
	return sb.String()
}

func templateLiteral(t *typedoc.Type) string {
	var sb strings.Builder
	sb.WriteString("`")
	sb.WriteString(t.Head)
	for _, part := range t.Tail {
		sb.WriteString("${")
		sb.WriteString(Type(part.Type))
		sb.WriteString("}")
		sb.WriteString(part.Text)
	}
	sb.WriteString("`")
	return sb.String()
}

func predicate(t *typedoc.Type) string {
	s := t.Name
	if t.Asserts {
		s = "asserts " + s
	}
	if t.TargetType != nil {
		s += " is " + Type(t.TargetType)
	}
	return s
}
