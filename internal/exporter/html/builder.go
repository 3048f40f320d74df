package html

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/spf13/afero"

	"specforge/internal/config"
	"specforge/internal/exporter/common"
	"specforge/internal/model"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

func (e *HTMLExporter) Name() string { return "html" }

// ReportData is the template input
type ReportData struct {
	GeneratedAt      string
	SourceRoot       string
	TotalContracts   int
	TotalEndpoints   int
	TotalSynthesized int
	Entities         []EntitySection
}

// EntitySection groups the rows of one contract
type EntitySection struct {
	Entity   string
	Contract string
	Rows     []common.EndpointRow
}

func (e *HTMLExporter) Export(fsys afero.Fs, index *model.ContractIndex, cfg *config.Config) (string, error) {
	data := BuildReportData(index)

	tmpl, err := template.New("contract-report").Funcs(template.FuncMap{
		"methodColor": getMethodColor,
		"splitTags":   splitTags,
	}).Parse(ContractReportTemplate)
	if err != nil {
		return "", err
	}

	// Create Output
	outputFile := cfg.ReportPath(".html")
	if err := fsys.MkdirAll(cfg.Contracts.OutputDir, 0755); err != nil {
		return "", err
	}
	f, err := fsys.Create(outputFile)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return "", fmt.Errorf("failed to render HTML report: %w", err)
	}
	return outputFile, nil
}

// BuildReportData groups flattened rows by entity, keeping the sort order
func BuildReportData(index *model.ContractIndex) ReportData {
	data := ReportData{
		GeneratedAt:      index.GeneratedAt.Format("2006-01-02 15:04:05"),
		SourceRoot:       index.SourceRoot,
		TotalContracts:   len(index.Contracts),
		TotalEndpoints:   index.EndpointCount(),
		TotalSynthesized: index.SynthesizedCount(),
	}

	for _, row := range common.Flatten(index) {
		n := len(data.Entities)
		if n == 0 || data.Entities[n-1].Entity != row.Entity {
			data.Entities = append(data.Entities, EntitySection{Entity: row.Entity, Contract: row.Contract})
			n++
		}
		data.Entities[n-1].Rows = append(data.Entities[n-1].Rows, row)
	}
	return data
}

// getMethodColor returns CSS color class for HTTP method
func getMethodColor(method string) string {
	switch strings.ToUpper(method) {
	case "GET":
		return "method-get"
	case "POST":
		return "method-post"
	case "PUT":
		return "method-put"
	case "DELETE":
		return "method-delete"
	case "PATCH":
		return "method-patch"
	default:
		return "method-default"
	}
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	return strings.Split(tags, ", ")
}
