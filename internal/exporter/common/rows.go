package common

import (
	"fmt"
	"sort"
	"strings"

	"specforge/internal/model"
)

// EndpointRow is one operation flattened for tabular reports
type EndpointRow struct {
	Entity      string
	Verb        string // Uppercase, e.g. "GET"
	Path        string // Full route including the controller base path
	Operation   string // Java method name or synthesized operation id
	Tags        string // Comma-separated classifier tags
	Params      string // e.g. "id (path), page (query), body: WidgetRequest"
	Returns     string // Response schema label
	Synthesized bool
	Contract    string // Generated document path
}

var verbOrder = map[model.Verb]int{
	model.VerbGet: 0, model.VerbPost: 1, model.VerbPut: 2, model.VerbPatch: 3, model.VerbDelete: 4,
}

// Flatten returns one row per endpoint, sorted by entity, path and verb
func Flatten(index *model.ContractIndex) []EndpointRow {
	var rows []EndpointRow
	for _, c := range index.Contracts {
		for _, ep := range c.Endpoints {
			row := EndpointRow{
				Entity:      c.Entity,
				Verb:        strings.ToUpper(string(ep.Verb)),
				Path:        c.BasePath + ep.Path,
				Operation:   ep.Name,
				Tags:        joinTags(ep.Tags),
				Synthesized: ep.Synthesized,
				Contract:    c.OutputPath,
			}
			if c.Document != nil {
				if op, ok := c.Document.Operation(row.Path, ep.Verb); ok {
					row.Params = describeParams(op)
					row.Returns = describeResponse(op)
				}
			}
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Entity != rows[j].Entity {
			return rows[i].Entity < rows[j].Entity
		}
		if rows[i].Path != rows[j].Path {
			return rows[i].Path < rows[j].Path
		}
		return verbOrder[model.Verb(strings.ToLower(rows[i].Verb))] < verbOrder[model.Verb(strings.ToLower(rows[j].Verb))]
	})
	return rows
}

// EntitySummary aggregates endpoint counts for one contract
type EntitySummary struct {
	Entity      string
	BasePath    string
	Declared    int
	Synthesized int
	Contract    string
}

// Summaries returns per-entity counts sorted by entity name
func Summaries(index *model.ContractIndex) []EntitySummary {
	out := make([]EntitySummary, 0, len(index.Contracts))
	for _, c := range index.Contracts {
		declared := c.DeclaredCount()
		out = append(out, EntitySummary{
			Entity:      c.Entity,
			BasePath:    c.BasePath,
			Declared:    declared,
			Synthesized: len(c.Endpoints) - declared,
			Contract:    c.OutputPath,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Entity < out[j].Entity })
	return out
}

func joinTags(tags model.Tags) string {
	var set []string
	for _, tag := range model.AllTags {
		if tags[tag] {
			set = append(set, string(tag))
		}
	}
	return strings.Join(set, ", ")
}

func describeParams(op *model.Operation) string {
	var parts []string
	for _, p := range op.Parameters {
		parts = append(parts, fmt.Sprintf("%s (%s)", p.Name, p.In))
	}
	if op.RequestBody != nil {
		for _, media := range op.RequestBody.Content {
			parts = append(parts, "body: "+media.Schema.Label())
		}
	}
	return strings.Join(parts, ", ")
}

func describeResponse(op *model.Operation) string {
	resp, ok := op.Responses["200"]
	if !ok {
		return ""
	}
	for _, media := range resp.Content {
		return media.Schema.Label()
	}
	return ""
}
