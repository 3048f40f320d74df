package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"specforge/internal/analyzer"
	"specforge/internal/javaparser"
	"specforge/internal/logger"
	"specforge/internal/model"
)

// Format is the serialization format of generated contracts
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatYAML, "yml", "":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown contract format %q (want yaml or json)", s)
}

// Ext returns the file extension without the dot
func (f Format) Ext() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

const jsonContent = "application/json"

// Tracker receives per-file progress
type Tracker interface {
	SetTotal(total int)
	Increment() error
}

// Generator builds contract documents from controller sources
type Generator struct {
	fs       afero.Fs
	mode     DetectMode
	format   Format
	excludes []string
	tracker  Tracker
}

// NewGenerator creates a generator reading and writing through fs
func NewGenerator(fs afero.Fs, mode DetectMode, format Format) *Generator {
	return &Generator{fs: fs, mode: mode, format: format}
}

// WithExcludes sets directory patterns skipped by ProcessDirectory
func (g *Generator) WithExcludes(patterns []string) *Generator {
	g.excludes = patterns
	return g
}

// WithTracker sets the progress receiver used by ProcessDirectory
func (g *Generator) WithTracker(t Tracker) *Generator {
	g.tracker = t
	return g
}

// Generate writes the contract for one controller. Missing companion files
// are skipped; any read, parse or write failure is returned.
func (g *Generator) Generate(ctx context.Context, controllerPath, requestPath, responsePath, outputPath string) (*model.ContractResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := analyzer.ReadFile(g.fs, controllerPath)
	if err != nil {
		return nil, err
	}

	className, basePath, endpoints, err := ParseController(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", controllerPath, err)
	}

	entity := strings.TrimSuffix(className, "Controller")
	endpoints = DetectMissing(endpoints, entity, g.mode)

	doc := NewDocument(entity)
	for _, path := range []string{requestPath, responsePath} {
		if err := g.registerCompanion(doc, path); err != nil {
			return nil, err
		}
	}

	for _, ep := range endpoints {
		addOperation(doc, entity, basePath, ep)
	}

	data, err := Marshal(doc, g.format)
	if err != nil {
		return nil, fmt.Errorf("failed to encode contract for %s: %w", entity, err)
	}
	if err := analyzer.WriteFile(g.fs, outputPath, data); err != nil {
		return nil, err
	}

	result := &model.ContractResult{
		Entity:         entity,
		ControllerPath: controllerPath,
		OutputPath:     outputPath,
		BasePath:       basePath,
		Endpoints:      endpoints,
		Document:       doc,
	}
	logger.Debug("[CONTRACT] %s: %d endpoints (%d synthesized) -> %s",
		entity, len(endpoints), len(endpoints)-result.DeclaredCount(), outputPath)

	return result, nil
}

// NewDocument returns the scaffold for an entity: metadata plus the envelope
func NewDocument(entity string) *model.Document {
	return &model.Document{
		OpenAPI: "3.0.0",
		Info: model.Info{
			Title:       entity + " API",
			Version:     "1.0.0",
			Description: "API for " + entity + " operations",
		},
		Paths: make(map[string]model.PathItem),
		Components: model.Components{
			Schemas: map[string]*model.Schema{
				EnvelopeName: EnvelopeSchema(),
			},
		},
	}
}

// registerCompanion adds a request/response class as a component if the file exists
func (g *Generator) registerCompanion(doc *model.Document, path string) error {
	if path == "" {
		return nil
	}
	exists, err := analyzer.FileExists(g.fs, path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !exists {
		logger.Debug("[CONTRACT] No companion at %s", path)
		return nil
	}

	src, err := analyzer.ReadFile(g.fs, path)
	if err != nil {
		return err
	}
	name, fields, err := ParseClass(src)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	properties := make(map[string]*model.Schema, len(fields))
	for _, f := range fields {
		properties[f.Name] = ToSchema(f.Type)
	}
	doc.Components.Schemas[name] = model.ObjectSchema(properties)
	return nil
}

// addOperation resolves one endpoint into the document
func addOperation(doc *model.Document, entity, basePath string, ep model.Endpoint) {
	fullPath := basePath + ep.Path
	item, ok := doc.Paths[fullPath]
	if !ok {
		item = make(model.PathItem)
		doc.Paths[fullPath] = item
	}

	schema, patch := ResolveReturn(ep.ReturnType, doc.Components.Schemas)
	if patch != nil {
		doc.Components.Schemas[EnvelopeName].Properties["data"] = patch
	}

	op := &model.Operation{
		Summary: ep.Name,
		Responses: map[string]model.Response{
			"200": {
				Description: "Successful operation",
				Content:     map[string]model.MediaType{jsonContent: {Schema: schema}},
			},
		},
	}

	for _, fragment := range javaparser.SplitParams(ep.RawParams) {
		param := ParseParam(fragment)
		switch param.Binding {
		case BindingPath:
			op.Parameters = append(op.Parameters, model.Parameter{
				Name:     param.Name,
				In:       string(BindingPath),
				Required: true,
				Schema:   model.TypeSchema(param.SchemaType, ""),
			})
		case BindingQuery:
			op.Parameters = append(op.Parameters, model.Parameter{
				Name:   param.Name,
				In:     string(BindingQuery),
				Schema: model.TypeSchema(param.SchemaType, ""),
			})
		case BindingBody:
			// Always the entity's request component, whatever the declared type
			op.RequestBody = &model.RequestBody{
				Content: map[string]model.MediaType{jsonContent: {Schema: model.RefSchema(entity + "Request")}},
			}
		}
	}

	item[ep.Verb] = op
}

// Marshal serializes a document with two-space indentation
func Marshal(doc *model.Document, format Format) ([]byte, error) {
	if format == FormatJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
