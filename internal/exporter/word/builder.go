package word

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/spf13/afero"

	"specforge/internal/config"
	"specforge/internal/exporter/common"
	"specforge/internal/model"
)

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Name() string { return "word" }

func (e *WordExporter) Export(fsys afero.Fs, index *model.ContractIndex, cfg *config.Config) (string, error) {
	// 1. Build the template in memory
	templateBytes, err := buildTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to build template: %w", err)
	}

	r, err := docx.ReadDocxFromMemory(bytes.NewReader(templateBytes), int64(len(templateBytes)))
	if err != nil {
		return "", fmt.Errorf("failed to read docx template: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	// 2. Replace Summary Placeholders
	doc.Replace("{{Date}}", index.GeneratedAt.Format("2006-01-02 15:04:05"), -1)
	doc.Replace("{{TotalContracts}}", fmt.Sprintf("%d", len(index.Contracts)), -1)
	doc.Replace("{{TotalEndpoints}}", fmt.Sprintf("%d", index.EndpointCount()), -1)
	doc.Replace("{{TotalSynthesized}}", fmt.Sprintf("%d", index.SynthesizedCount()), -1)

	// 3. Inject content (the library handles XML encoding)
	doc.Replace("{{Content}}", BuildContent(index), -1)

	outFile := cfg.ReportPath(".docx")
	if err := fsys.MkdirAll(cfg.Contracts.OutputDir, 0755); err != nil {
		return "", err
	}
	f, err := fsys.Create(outFile)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := doc.Write(f); err != nil {
		return "", fmt.Errorf("failed to write Word document: %w", err)
	}
	return outFile, nil
}

// BuildContent renders the per-entity endpoint listing as plain text
func BuildContent(index *model.ContractIndex) string {
	var sb strings.Builder

	sb.WriteString("API CONTRACTS\n\n")
	for _, sum := range common.Summaries(index) {
		sb.WriteString(fmt.Sprintf("  • %s (%s): %d declared, %d synthesized\n", sum.Entity, sum.BasePath, sum.Declared, sum.Synthesized))
	}
	sb.WriteString("\n" + strings.Repeat("=", 80) + "\n\n")

	current := ""
	for _, row := range common.Flatten(index) {
		if row.Entity != current {
			if current != "" {
				sb.WriteString("\n" + strings.Repeat("-", 80) + "\n\n")
			}
			current = row.Entity
			sb.WriteString(fmt.Sprintf("%s\nContract: %s\n\n", row.Entity, row.Contract))
			sb.WriteString(fmt.Sprintf("%-8s %-40s %-25s %s\n", "Verb", "Path", "Operation", "Returns"))
		}
		buildEndpointText(&sb, row)
	}

	return sb.String()
}

// buildEndpointText writes one endpoint line plus its inputs
func buildEndpointText(sb *strings.Builder, row common.EndpointRow) {
	marker := ""
	if row.Synthesized {
		marker = " [synthesized]"
	}
	sb.WriteString(fmt.Sprintf("%-8s %-40s %-25s %s%s\n",
		row.Verb,
		truncate(row.Path, 40),
		truncate(row.Operation, 25),
		row.Returns,
		marker))
	if row.Params != "" {
		sb.WriteString(fmt.Sprintf("         └ %s\n", row.Params))
	}
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
