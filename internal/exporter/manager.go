package exporter

import (
	"strings"

	"specforge/internal/exporter/html"
	"specforge/internal/exporter/word"
)

var aliases = map[string]string{
	"xlsx": "excel",
	"docx": "word",
}

// GetExporters returns a list of Exporters based on requested formats.
// Unknown names are ignored; duplicates are collapsed.
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if canonical, ok := aliases[fmtStr]; ok {
			fmtStr = canonical
		}
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "excel":
			exporters = append(exporters, NewExcelExporter())
		case "html":
			exporters = append(exporters, html.NewHTMLExporter())
		case "word":
			exporters = append(exporters, word.NewWordExporter())
		}
	}

	return exporters
}
