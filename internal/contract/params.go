package contract

import (
	"regexp"
	"strings"
)

// Binding is where a parameter's value comes from
type Binding string

const (
	BindingNone  Binding = ""
	BindingPath  Binding = "path"
	BindingQuery Binding = "query"
	BindingBody  Binding = "body"
)

// Param is one parsed formal parameter
type Param struct {
	Binding    Binding
	Name       string
	JavaType   string // Declared type when recoverable, else "String"
	SchemaType string // string, integer, number or boolean
}

type bindingPatterns struct {
	annotation string
	binding    Binding
	typed      *regexp.Regexp // Type and name
	named      *regexp.Regexp // Name only
	quoted     *regexp.Regexp // ("name")
}

func newBindingPatterns(annotation string, binding Binding, bodyStyle bool) bindingPatterns {
	bp := bindingPatterns{
		annotation: "@" + annotation,
		binding:    binding,
		typed:      regexp.MustCompile(`@` + annotation + `(?:\(.*?\))?\s+(?:final\s+)?([\w<>\[\],.]+)\s+(\w+)`),
	}
	if !bodyStyle {
		bp.named = regexp.MustCompile(`@` + annotation + `(?:\(.*?\))?\s+(\w+)`)
		bp.quoted = regexp.MustCompile(`@` + annotation + `\("([^"]+)"\)`)
	}
	return bp
}

// Checked in order; the first annotation present decides the binding
var paramBindings = []bindingPatterns{
	newBindingPatterns("PathVariable", BindingPath, false),
	newBindingPatterns("RequestParam", BindingQuery, false),
	newBindingPatterns("RequestBody", BindingBody, true),
}

// ParseParam parses a single parameter declaration fragment.
// An empty fragment yields BindingNone. Fragments without a binding
// annotation are treated as query parameters named by their last token.
func ParseParam(fragment string) Param {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return Param{Binding: BindingNone}
	}

	param := Param{Binding: BindingQuery, JavaType: "String"}

	for _, bp := range paramBindings {
		if !strings.Contains(fragment, bp.annotation) {
			continue
		}
		param.Binding = bp.binding
		if m := bp.typed.FindStringSubmatch(fragment); m != nil {
			param.JavaType = m[1]
			param.Name = m[2]
		} else if bp.named != nil {
			if m := bp.named.FindStringSubmatch(fragment); m != nil {
				param.Name = m[1]
			} else if m := bp.quoted.FindStringSubmatch(fragment); m != nil {
				param.Name = m[1]
			}
		}
		break
	}

	// Fallback: last whitespace-delimited token
	if param.Name == "" {
		if parts := strings.Fields(fragment); len(parts) > 0 {
			param.Name = parts[len(parts)-1]
		}
	}
	param.Name = strings.Trim(param.Name, ",;")
	param.SchemaType = paramSchemaType(param.JavaType)

	return param
}

// paramSchemaType maps a declared type to a primitive by substring tests
func paramSchemaType(javaType string) string {
	switch {
	case containsAny(javaType, "Long", "Integer", "int", "long"):
		return "integer"
	case containsAny(javaType, "Double", "Float", "double", "float", "BigDecimal"):
		return "number"
	case containsAny(javaType, "Boolean", "boolean"):
		return "boolean"
	default:
		return "string"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
