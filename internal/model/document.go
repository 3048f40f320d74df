package model

// Document is an OpenAPI 3.0 contract for one controller
type Document struct {
	OpenAPI    string              `yaml:"openapi" json:"openapi"`
	Info       Info                `yaml:"info" json:"info"`
	Paths      map[string]PathItem `yaml:"paths" json:"paths"`
	Components Components          `yaml:"components" json:"components"`
}

// Info holds document metadata
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description" json:"description"`
}

// PathItem maps a lowercase HTTP verb to its operation
type PathItem map[Verb]*Operation

// Operation describes one verb on one route
type Operation struct {
	Summary     string              `yaml:"summary" json:"summary"`
	Parameters  []Parameter         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody        `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   map[string]Response `yaml:"responses" json:"responses"`
}

// Parameter is a path or query parameter
type Parameter struct {
	Name     string  `yaml:"name" json:"name"`
	In       string  `yaml:"in" json:"in"`
	Required bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Schema   *Schema `yaml:"schema" json:"schema"`
}

// RequestBody describes the operation payload
type RequestBody struct {
	Content map[string]MediaType `yaml:"content" json:"content"`
}

// MediaType wraps a schema for one content type
type MediaType struct {
	Schema *Schema `yaml:"schema" json:"schema"`
}

// Response describes one status code
type Response struct {
	Description string               `yaml:"description" json:"description"`
	Content     map[string]MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// Components holds reusable schemas
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas" json:"schemas"`
}

// OperationCount returns the number of (route, verb) entries
func (d *Document) OperationCount() int {
	n := 0
	for _, item := range d.Paths {
		n += len(item)
	}
	return n
}

// Operation looks up the operation for a route and verb
func (d *Document) Operation(path string, verb Verb) (*Operation, bool) {
	item, ok := d.Paths[path]
	if !ok {
		return nil, false
	}
	op, ok := item[verb]
	return op, ok
}
