package typedoc

import "strconv"

// Kind identifies what sort of declaration a node is. Values match the
// reflection kind codes emitted in TypeDoc JSON documents (bit flags).
type Kind int

const (
	KindProject              Kind = 0x1
	KindModule               Kind = 0x2
	KindNamespace            Kind = 0x4
	KindEnum                 Kind = 0x8
	KindEnumMember           Kind = 0x10
	KindVariable             Kind = 0x20
	KindFunction             Kind = 0x40
	KindClass                Kind = 0x80
	KindInterface            Kind = 0x100
	KindConstructor          Kind = 0x200
	KindProperty             Kind = 0x400
	KindMethod               Kind = 0x800
	KindCallSignature        Kind = 0x1000
	KindIndexSignature       Kind = 0x2000
	KindConstructorSignature Kind = 0x4000
	KindParameter            Kind = 0x8000
	KindTypeLiteral          Kind = 0x10000
	KindTypeParameter        Kind = 0x20000
	KindAccessor             Kind = 0x40000
	KindGetSignature         Kind = 0x80000
	KindSetSignature         Kind = 0x100000
	KindTypeAlias            Kind = 0x200000
	KindReference            Kind = 0x400000
)

var kindNames = map[Kind]string{
	KindProject:              "Project",
	KindModule:               "Module",
	KindNamespace:            "Namespace",
	KindEnum:                 "Enum",
	KindEnumMember:           "EnumMember",
	KindVariable:             "Variable",
	KindFunction:             "Function",
	KindClass:                "Class",
	KindInterface:            "Interface",
	KindConstructor:          "Constructor",
	KindProperty:             "Property",
	KindMethod:               "Method",
	KindCallSignature:        "CallSignature",
	KindIndexSignature:       "IndexSignature",
	KindConstructorSignature: "ConstructorSignature",
	KindParameter:            "Parameter",
	KindTypeLiteral:          "TypeLiteral",
	KindTypeParameter:        "TypeParameter",
	KindAccessor:             "Accessor",
	KindGetSignature:         "GetSignature",
	KindSetSignature:         "SetSignature",
	KindTypeAlias:            "TypeAlias",
	KindReference:            "Reference",
}

// String returns the human-readable kind name. Unrecognized codes render as
// their decimal value so records stay serializable for any producer version.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsModuleLike reports whether declarations of this kind own a module scope
// (used when deriving the owning module of nested declarations).
func (k Kind) IsModuleLike() bool {
	return k == KindProject || k == KindModule || k == KindNamespace
}
