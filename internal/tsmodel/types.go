package tsmodel

import (
	"specforge/internal/javaparser"
)

var scalarTypes = map[string]string{
	"String":    "string",
	"char":      "string",
	"Character": "string",
	"UUID":      "string",

	"int":        "number",
	"Integer":    "number",
	"long":       "number",
	"Long":       "number",
	"float":      "number",
	"Float":      "number",
	"double":     "number",
	"Double":     "number",
	"short":      "number",
	"Short":      "number",
	"BigDecimal": "number",
	"BigInteger": "number",

	"boolean": "boolean",
	"Boolean": "boolean",
	"byte":    "boolean",
	"Byte":    "boolean",

	"Date":           "Date",
	"DateTime":       "Date",
	"LocalDate":      "Date",
	"LocalTime":      "Date",
	"LocalDateTime":  "Date",
	"ZonedDateTime":  "Date",
	"OffsetDateTime": "Date",
	"Time":           "Date",
	"Timestamp":      "Date",
	"Instant":        "Date",
}

// Arrays of these element types are serialized as strings
var binaryTypes = map[string]bool{
	"byte": true, "Byte": true, "char": true, "Character": true,
}

var listTypes = map[string]bool{
	"List": true, "ArrayList": true, "LinkedList": true, "Collection": true, "Iterable": true,
}

var setTypes = map[string]bool{
	"Set": true, "HashSet": true, "LinkedHashSet": true, "TreeSet": true, "SortedSet": true,
}

var mapTypes = map[string]bool{
	"Map": true, "HashMap": true, "LinkedHashMap": true, "TreeMap": true, "SortedMap": true,
}

// TSType maps a Java type to its TypeScript spelling. entities holds the
// names of known @Entity classes; any other class becomes "any".
func TSType(ref *javaparser.TypeRef, entities map[string]string) string {
	name := ref.SimpleName()

	if ref.Dims > 0 {
		if binaryTypes[name] && ref.Args == nil {
			return "string"
		}
		return TSType(ref.Elem(), entities) + "[]"
	}

	switch {
	case name == "?":
		if bound := ref.Arg(0); bound != nil {
			return TSType(bound, entities)
		}
		return "any"
	case listTypes[name]:
		if elem := ref.Arg(0); elem != nil {
			return TSType(elem, entities) + "[]"
		}
		return "Array<any>"
	case setTypes[name]:
		if elem := ref.Arg(0); elem != nil {
			return "Set<" + TSType(elem, entities) + ">"
		}
		return "Set<any>"
	case mapTypes[name]:
		key, value := "string", "any"
		if k := ref.Arg(0); k != nil {
			if mapped := TSType(k, entities); mapped == "number" {
				key = mapped
			}
		}
		if v := ref.Arg(1); v != nil {
			value = TSType(v, entities)
		}
		return "Record<" + key + ", " + value + ">"
	case name == "Optional":
		if elem := ref.Arg(0); elem != nil {
			return TSType(elem, entities)
		}
		return "any"
	}

	if ts, ok := scalarTypes[name]; ok {
		return ts
	}
	if _, ok := entities[name]; ok {
		return name
	}
	return "any"
}

// referencedEntities returns the entity names used anywhere in the type
func referencedEntities(ref *javaparser.TypeRef, entities map[string]string) []string {
	var names []string
	ref.Walk(func(r *javaparser.TypeRef) {
		name := r.SimpleName()
		if _, ok := entities[name]; ok {
			if _, scalar := scalarTypes[name]; !scalar {
				names = append(names, name)
			}
		}
	})
	return names
}
