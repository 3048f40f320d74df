package word

import (
	"bytes"
	"context"
	"testing"

	"github.com/nguyenthenguyen/docx"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specforge/internal/config"
	"specforge/internal/contract"
)

const widgetController = `package com.acme.widget;

@RestController
@RequestMapping("/api/widgets")
public class WidgetController {

    @PutMapping("/{id}")
    public GlobalResponseMessage<WidgetResponse> updateWidget(@PathVariable UUID id, @RequestBody WidgetRequest request) {
        return null;
    }
}
`

func TestWordExport(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/WidgetController.java", []byte(widgetController), 0644))
	index, err := contract.NewGenerator(fs, contract.DetectComplete, contract.FormatYAML).
		ProcessDirectory(context.Background(), "/src", "/out")
	require.NoError(t, err)

	cfg := &config.Config{Contracts: config.ContractsConfig{OutputDir: "/out", ReportName: "api-contracts"}}
	path, err := NewWordExporter().Export(fs, index, cfg)
	require.NoError(t, err)
	assert.Equal(t, "/out/api-contracts.docx", path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	defer r.Close()

	content := r.Editable().GetContent()
	assert.Contains(t, content, "Contracts: 1 / Endpoints: 5 (4 synthesized)")
	assert.Contains(t, content, "/api/widgets/{id}")
	assert.Contains(t, content, "[synthesized]")
	assert.NotContains(t, content, "{{Content}}")
}

func TestBuildContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/WidgetController.java", []byte(widgetController), 0644))
	index, err := contract.NewGenerator(fs, contract.DetectTagged, contract.FormatYAML).
		ProcessDirectory(context.Background(), "/src", "/out")
	require.NoError(t, err)

	content := BuildContent(index)
	assert.Contains(t, content, "• Widget (/api/widgets): 1 declared, 0 synthesized")
	assert.Contains(t, content, "└ id (path), body: WidgetRequest")
	assert.NotContains(t, content, "[synthesized]")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
