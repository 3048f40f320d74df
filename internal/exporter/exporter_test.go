package exporter

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"specforge/internal/config"
	"specforge/internal/contract"
	"specforge/internal/model"
)

const widgetController = `package com.acme.widget;

@RestController
@RequestMapping("/api/widgets")
public class WidgetController {

    @GetMapping("/all")
    public ResponseEntity<GlobalResponseMessage<ArrayList<WidgetResponse>>> getAllWidgets() {
        return null;
    }
}
`

func buildIndex(t *testing.T, fs afero.Fs) *model.ContractIndex {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, "/src/widget/WidgetController.java", []byte(widgetController), 0644))

	index, err := contract.NewGenerator(fs, contract.DetectComplete, contract.FormatYAML).
		ProcessDirectory(context.Background(), "/src", "/out")
	require.NoError(t, err)
	return index
}

func testConfig() *config.Config {
	return &config.Config{
		Contracts: config.ContractsConfig{
			OutputDir:  "/out",
			ReportName: "api-contracts",
		},
	}
}

func TestGetExporters(t *testing.T) {
	exporters := GetExporters([]string{"Excel", "html", "xlsx", "docx", "pdf", " word "})
	var names []string
	for _, e := range exporters {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"excel", "html", "word"}, names)

	assert.Len(t, GetExporters([]string{"xlsx", "excel", "docx", "WORD"}), 2, "aliases collapse onto one exporter")

	assert.Empty(t, GetExporters(nil))
}

func TestExcelExport(t *testing.T) {
	fs := afero.NewMemMapFs()
	index := buildIndex(t, fs)

	path, err := NewExcelExporter().Export(fs, index, testConfig())
	require.NoError(t, err)
	assert.Equal(t, "/out/api-contracts.xlsx", path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{overviewSheet, endpointsSheet}, f.GetSheetList())

	metric, _ := f.GetCellValue(overviewSheet, "A6")
	value, _ := f.GetCellValue(overviewSheet, "B6")
	assert.Equal(t, "Total Endpoints", metric)
	assert.Equal(t, "5", value)

	entity, _ := f.GetCellValue(overviewSheet, "B11")
	synthesized, _ := f.GetCellValue(overviewSheet, "E11")
	assert.Equal(t, "Widget", entity)
	assert.Equal(t, "4", synthesized)

	rows, err := f.GetRows(endpointsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 6, "header plus five endpoints")
	assert.Equal(t, []string{"Entity", "Verb", "Path", "Operation", "Params (Input)", "Returns (Output)", "Tags", "Origin"}, rows[0])
	assert.Equal(t, "POST", rows[1][1])
	assert.Equal(t, "synthesized", rows[1][7])
	assert.Equal(t, "/api/widgets/all", rows[2][2])
	assert.Equal(t, "declared", rows[2][7])
}
