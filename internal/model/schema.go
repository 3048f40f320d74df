package model

// SchemaRefPrefix is the JSON pointer prefix of component references
const SchemaRefPrefix = "#/components/schemas/"

// Schema is a JSON-Schema-like type description
type Schema struct {
	Ref        string             `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Type       string             `yaml:"type,omitempty" json:"type,omitempty"`
	Format     string             `yaml:"format,omitempty" json:"format,omitempty"`
	Items      *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	Properties map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// RefSchema returns a reference to a named component
func RefSchema(name string) *Schema {
	return &Schema{Ref: SchemaRefPrefix + name}
}

// TypeSchema returns a primitive schema with an optional format
func TypeSchema(typ, format string) *Schema {
	return &Schema{Type: typ, Format: format}
}

// ArraySchema returns an array-of-items schema
func ArraySchema(items *Schema) *Schema {
	return &Schema{Type: "array", Items: items}
}

// ObjectSchema returns an object schema; nil properties yields a bare {type: object}
func ObjectSchema(properties map[string]*Schema) *Schema {
	return &Schema{Type: "object", Properties: properties}
}

// RefName returns the component name a reference points to, or ""
func (s *Schema) RefName() string {
	if s == nil || len(s.Ref) <= len(SchemaRefPrefix) || s.Ref[:len(SchemaRefPrefix)] != SchemaRefPrefix {
		return ""
	}
	return s.Ref[len(SchemaRefPrefix):]
}

// Clone returns a deep copy
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	c := *s
	c.Items = s.Items.Clone()
	if s.Properties != nil {
		c.Properties = make(map[string]*Schema, len(s.Properties))
		for k, v := range s.Properties {
			c.Properties[k] = v.Clone()
		}
	}
	return &c
}

// Label renders a short human-readable form, e.g. "Widget", "string[]", "string(date)"
func (s *Schema) Label() string {
	switch {
	case s == nil:
		return ""
	case s.Ref != "":
		if name := s.RefName(); name != "" {
			return name
		}
		return s.Ref
	case s.Type == "array":
		return s.Items.Label() + "[]"
	case s.Format != "":
		return s.Type + "(" + s.Format + ")"
	}
	return s.Type
}
