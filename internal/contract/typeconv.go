package contract

import (
	"strings"

	"specforge/internal/javaparser"
	"specforge/internal/model"
)

// FieldKind is the normalized category of a declared Java type
type FieldKind string

const (
	KindString        FieldKind = "string"
	KindInteger       FieldKind = "integer"
	KindNumber        FieldKind = "number"
	KindBoolean       FieldKind = "boolean"
	KindLocalDate     FieldKind = "LocalDate"
	KindLocalDateTime FieldKind = "LocalDateTime"
	KindArray         FieldKind = "array"
	KindObject        FieldKind = "object"
	KindRef           FieldKind = "ref"
)

// FieldType is a normalized type. Elem is set for arrays, Ref for references.
type FieldType struct {
	Kind FieldKind
	Elem *FieldType
	Ref  string
}

func (ft FieldType) String() string {
	switch ft.Kind {
	case KindArray:
		if ft.Elem == nil {
			return "array"
		}
		return "array<" + ft.Elem.String() + ">"
	case KindRef:
		return ft.Ref
	default:
		return string(ft.Kind)
	}
}

var scalarKinds = map[string]FieldKind{
	"String":        KindString,
	"string":        KindString,
	"UUID":          KindString,
	"Integer":       KindInteger,
	"integer":       KindInteger,
	"int":           KindInteger,
	"Long":          KindInteger,
	"long":          KindInteger,
	"Double":        KindNumber,
	"double":        KindNumber,
	"Float":         KindNumber,
	"float":         KindNumber,
	"BigDecimal":    KindNumber,
	"Boolean":       KindBoolean,
	"boolean":       KindBoolean,
	"LocalDate":     KindLocalDate,
	"LocalDateTime": KindLocalDateTime,
	"ZonedDateTime": KindLocalDateTime,
	"Date":          KindLocalDateTime,
	"Object":        KindObject,
	"void":          KindObject,
	"Void":          KindObject,
}

// NormalizeType collapses a declared type expression into a FieldType
func NormalizeType(expr string) FieldType {
	return normalizeRef(javaparser.ParseTypeRef(expr))
}

func normalizeRef(ref *javaparser.TypeRef) FieldType {
	if ref.Dims > 0 {
		elem := normalizeRef(ref.Elem())
		return FieldType{Kind: KindArray, Elem: &elem}
	}

	name := ref.SimpleName()
	if kind, ok := scalarKinds[name]; ok {
		return FieldType{Kind: kind}
	}

	if ref.Args != nil {
		switch {
		case isCollection(name):
			elem := FieldType{Kind: KindObject}
			if arg := ref.Arg(0); arg != nil {
				if arg.Name != "?" {
					elem = normalizeRef(arg)
				} else if len(arg.Args) == 1 {
					elem = normalizeRef(arg.Args[0])
				}
			}
			return FieldType{Kind: KindArray, Elem: &elem}
		case strings.HasSuffix(name, "Map"):
			return FieldType{Kind: KindObject}
		}
	}

	return FieldType{Kind: KindRef, Ref: name}
}

// isCollection matches List, Set and Collection spellings (ArrayList, HashSet, ...)
func isCollection(name string) bool {
	return strings.HasSuffix(name, "List") || strings.HasSuffix(name, "Set") || name == "Collection"
}

// ToSchema converts a normalized type to its schema
func ToSchema(ft FieldType) *model.Schema {
	switch ft.Kind {
	case KindString, KindInteger, KindNumber, KindBoolean:
		return model.TypeSchema(string(ft.Kind), "")
	case KindLocalDate:
		return model.TypeSchema("string", "date")
	case KindLocalDateTime:
		return model.TypeSchema("string", "date-time")
	case KindArray:
		if ft.Elem == nil {
			return model.ArraySchema(model.ObjectSchema(nil))
		}
		return model.ArraySchema(ToSchema(*ft.Elem))
	case KindRef:
		return model.RefSchema(ft.Ref)
	default:
		return model.ObjectSchema(nil)
	}
}

// JavaTypeSchema converts a Java type name; unknown names become references
func JavaTypeSchema(name string) *model.Schema {
	return ToSchema(NormalizeType(name))
}
