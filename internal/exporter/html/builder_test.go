package html

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specforge/internal/config"
	"specforge/internal/contract"
)

const orderController = `package com.acme.order;

@RestController
@RequestMapping("/api/orders")
public class OrderController {

    @DeleteMapping("/{id}")
    public GlobalResponseMessage<Boolean> removeOrder(@PathVariable UUID id) {
        return null;
    }

    @GetMapping("/search")
    public List<OrderResponse> search(@RequestParam("q") String q) {
        return null;
    }
}
`

func TestHTMLExport(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/OrderController.java", []byte(orderController), 0644))
	index, err := contract.NewGenerator(fs, contract.DetectTagged, contract.FormatJSON).
		ProcessDirectory(context.Background(), "/src", "/out")
	require.NoError(t, err)

	cfg := &config.Config{Contracts: config.ContractsConfig{OutputDir: "/out", ReportName: "report"}}
	path, err := NewHTMLExporter().Export(fs, index, cfg)
	require.NoError(t, err)
	assert.Equal(t, "/out/report.html", path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	page := string(data)

	assert.Contains(t, page, `<h2 class="entity-title">Order</h2>`)
	assert.Contains(t, page, `<span class="method-badge method-delete">DELETE</span>`)
	assert.Contains(t, page, "/api/orders/search")
	assert.Contains(t, page, "OrderResponse[]")
	assert.Contains(t, page, `<span class="tag">is_search</span>`)
	// Tagged mode adds nothing here: the only CRUD tag is already present
	assert.NotContains(t, page, "SYNTHESIZED</span>")
	// Route braces survive HTML escaping
	assert.True(t, strings.Contains(page, "/api/orders/{id}"))
}

func TestBuildReportDataGroupsByEntity(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a/OrderController.java", []byte(orderController), 0644))
	require.NoError(t, afero.WriteFile(fs, "/src/b/OrderController.java", []byte(orderController), 0644))
	index, err := contract.NewGenerator(fs, contract.DetectComplete, contract.FormatYAML).
		ProcessDirectory(context.Background(), "/src", "/out")
	require.NoError(t, err)

	data := BuildReportData(index)
	assert.Equal(t, 2, data.TotalContracts)
	assert.Equal(t, 12, data.TotalEndpoints)
	assert.Equal(t, 8, data.TotalSynthesized)
	require.Len(t, data.Entities, 1, "same entity name collapses into one section")
	assert.Len(t, data.Entities[0].Rows, 12)
}
