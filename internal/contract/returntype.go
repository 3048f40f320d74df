package contract

import (
	"specforge/internal/javaparser"
	"specforge/internal/model"
)

// EnvelopeName is the wrapper component carrying status metadata and a data payload
const EnvelopeName = "GlobalResponseMessage"

var primitiveReturns = map[string]*model.Schema{
	"String":     model.TypeSchema("string", ""),
	"string":     model.TypeSchema("string", ""),
	"Integer":    model.TypeSchema("integer", ""),
	"int":        model.TypeSchema("integer", ""),
	"Long":       model.TypeSchema("integer", ""),
	"long":       model.TypeSchema("integer", ""),
	"Double":     model.TypeSchema("number", ""),
	"double":     model.TypeSchema("number", ""),
	"Float":      model.TypeSchema("number", ""),
	"float":      model.TypeSchema("number", ""),
	"BigDecimal": model.TypeSchema("number", ""),
	"Boolean":    model.TypeSchema("boolean", ""),
	"boolean":    model.TypeSchema("boolean", ""),
	"void":       model.ObjectSchema(nil),
	"Void":       model.ObjectSchema(nil),
}

// ResolveReturn maps a return-type expression to a response schema.
// When the expression uses the envelope, the second result is the schema
// its "data" property should take; it is nil otherwise.
// Resolution order: envelope, collection, page, registered component,
// primitive, then a generic object.
func ResolveReturn(expr string, components map[string]*model.Schema) (*model.Schema, *model.Schema) {
	ref := javaparser.ParseTypeRef(expr)

	var envelope *javaparser.TypeRef
	ref.Walk(func(r *javaparser.TypeRef) {
		if envelope == nil && r.SimpleName() == EnvelopeName {
			envelope = r
		}
	})
	if envelope != nil {
		var patch *model.Schema
		if inner := envelope.Arg(0); inner != nil {
			patch = payloadSchema(inner)
		}
		return model.RefSchema(EnvelopeName), patch
	}

	if elem, ok := collectionElem(ref); ok {
		return model.ArraySchema(itemSchema(elem)), nil
	}

	if ref.SimpleName() == "Page" && ref.Arg(0) != nil {
		return PageSchema(itemSchema(ref.Arg(0))), nil
	}

	if ref.Args == nil && ref.Dims == 0 {
		if _, ok := components[ref.SimpleName()]; ok {
			return model.RefSchema(ref.SimpleName()), nil
		}
		if s, ok := primitiveReturns[ref.SimpleName()]; ok {
			return s.Clone(), nil
		}
	}

	return model.ObjectSchema(nil), nil
}

// payloadSchema is the envelope data schema for its generic argument
func payloadSchema(inner *javaparser.TypeRef) *model.Schema {
	if elem, ok := collectionElem(inner); ok {
		return model.ArraySchema(itemSchema(elem))
	}
	if inner.SimpleName() == "Page" && inner.Arg(0) != nil {
		return PageSchema(itemSchema(inner.Arg(0)))
	}
	return itemSchema(inner)
}

// collectionElem returns the element type of List/Set/Collection types and arrays
func collectionElem(ref *javaparser.TypeRef) (*javaparser.TypeRef, bool) {
	if ref.Dims > 0 {
		return ref.Elem(), true
	}
	if isCollection(ref.SimpleName()) && ref.Arg(0) != nil {
		return ref.Arg(0), true
	}
	return nil, false
}

func itemSchema(ref *javaparser.TypeRef) *model.Schema {
	return ToSchema(normalizeRef(ref))
}

// PageSchema is the fixed composite for a paged result
func PageSchema(items *model.Schema) *model.Schema {
	integer := func() *model.Schema { return model.TypeSchema("integer", "") }
	boolean := func() *model.Schema { return model.TypeSchema("boolean", "") }

	return model.ObjectSchema(map[string]*model.Schema{
		"content":          model.ArraySchema(items),
		"pageable":         model.ObjectSchema(nil),
		"totalElements":    integer(),
		"totalPages":       integer(),
		"last":             boolean(),
		"size":             integer(),
		"number":           integer(),
		"sort":             model.ObjectSchema(nil),
		"numberOfElements": integer(),
		"first":            boolean(),
		"empty":            boolean(),
	})
}

// EnvelopeSchema returns a fresh envelope component with an untyped payload
func EnvelopeSchema() *model.Schema {
	return model.ObjectSchema(map[string]*model.Schema{
		"statusCode":  model.TypeSchema("integer", ""),
		"status":      model.TypeSchema("string", ""),
		"timestamp":   model.TypeSchema("string", "date-time"),
		"title":       model.TypeSchema("string", ""),
		"message":     model.ObjectSchema(nil),
		"description": model.ObjectSchema(nil),
		"isError":     model.TypeSchema("boolean", ""),
		"data":        model.ObjectSchema(nil),
	})
}
