package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"specforge/internal/model"
)

const widgetDir = "/src/com/acme/widget"

func widgetFS(t *testing.T) afero.Fs {
	return memFS(t, map[string]string{
		widgetDir + "/WidgetController.java": widgetController,
		widgetDir + "/WidgetRequest.java":    widgetRequest,
		widgetDir + "/WidgetResponse.java":   widgetResponse,
	})
}

func generateWidget(t *testing.T, fs afero.Fs, format Format) *model.ContractResult {
	t.Helper()
	g := NewGenerator(fs, DetectComplete, format)
	result, err := g.Generate(context.Background(),
		widgetDir+"/WidgetController.java",
		widgetDir+"/WidgetRequest.java",
		widgetDir+"/WidgetResponse.java",
		"/out/widget/Widget_api."+format.Ext())
	require.NoError(t, err)
	return result
}

func TestGenerateRoundTrip(t *testing.T) {
	fs := widgetFS(t)
	result := generateWidget(t, fs, FormatYAML)

	assert.Equal(t, "Widget", result.Entity)
	assert.Equal(t, "/api/widgets", result.BasePath)
	assert.Len(t, result.Endpoints, 5)
	assert.Equal(t, 1, result.DeclaredCount())

	doc := result.Document
	assert.Equal(t, 5, doc.OperationCount())
	assert.Equal(t, "3.0.0", doc.OpenAPI)
	assert.Equal(t, model.Info{Title: "Widget API", Version: "1.0.0", Description: "API for Widget operations"}, doc.Info)

	for _, key := range []struct {
		path string
		verb model.Verb
	}{
		{"/api/widgets/all", model.VerbGet},
		{"/api/widgets/{id}", model.VerbGet},
		{"/api/widgets", model.VerbPost},
		{"/api/widgets/{id}", model.VerbPut},
		{"/api/widgets/{id}", model.VerbDelete},
	} {
		op, ok := doc.Operation(key.path, key.verb)
		require.True(t, ok, "%s %s", key.verb, key.path)
		resp := op.Responses["200"]
		assert.Equal(t, "Successful operation", resp.Description)
		assert.Equal(t, model.RefSchema(EnvelopeName), resp.Content["application/json"].Schema)
	}

	getAll, _ := doc.Operation("/api/widgets/all", model.VerbGet)
	assert.Equal(t, "getAllWidgets", getAll.Summary)
	assert.Empty(t, getAll.Parameters)
	assert.Nil(t, getAll.RequestBody)

	update, _ := doc.Operation("/api/widgets/{id}", model.VerbPut)
	require.Len(t, update.Parameters, 1)
	assert.Equal(t, model.Parameter{Name: "id", In: "path", Required: true, Schema: &model.Schema{Type: "string"}}, update.Parameters[0])
	require.NotNil(t, update.RequestBody)
	assert.Equal(t, "#/components/schemas/WidgetRequest", update.RequestBody.Content["application/json"].Schema.Ref)

	// Companion components
	schemas := doc.Components.Schemas
	require.Contains(t, schemas, "WidgetRequest")
	require.Contains(t, schemas, "WidgetResponse")
	assert.Equal(t, model.ArraySchema(&model.Schema{Type: "string"}), schemas["WidgetRequest"].Properties["tags"])
	assert.Equal(t, &model.Schema{Type: "string", Format: "date-time"}, schemas["WidgetResponse"].Properties["createdAt"])

	// Written file parses back as YAML with the same shape
	data, err := afero.ReadFile(fs, "/out/widget/Widget_api.yaml")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("openapi: 3.0.0\n")))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Len(t, decoded["paths"], 3)
	assert.Contains(t, string(data), "#/components/schemas/GlobalResponseMessage")
}

func TestGenerateEnvelopeLastWriteWins(t *testing.T) {
	result := generateWidget(t, widgetFS(t), FormatYAML)

	// The synthesized delete endpoint (GlobalResponseMessage<Boolean>) resolves last
	data := result.Document.Components.Schemas[EnvelopeName].Properties["data"]
	assert.Equal(t, &model.Schema{Type: "boolean"}, data)
	assert.Len(t, result.Document.Components.Schemas[EnvelopeName].Properties, 8)
}

// The request body always references {Entity}Request, even when the
// declared body type is a different class. Kept as observed behavior.
func TestGenerateBodyAlwaysReferencesEntityRequest(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/src/order/OrderController.java": orderController,
	})
	g := NewGenerator(fs, DetectComplete, FormatYAML)
	result, err := g.Generate(context.Background(),
		"/src/order/OrderController.java", "/src/order/OrderRequest.java", "/src/order/OrderResponse.java",
		"/out/order/Order_api.yaml")
	require.NoError(t, err)

	place, ok := result.Document.Operation("/api/orders", model.VerbPost)
	require.True(t, ok)
	assert.Equal(t, "placeOrder", place.Summary)
	assert.Equal(t, "#/components/schemas/OrderRequest", place.RequestBody.Content["application/json"].Schema.Ref,
		"declared type is PlaceOrderCommand")

	search, ok := result.Document.Operation("/api/orders/search", model.VerbGet)
	require.True(t, ok)
	assert.Equal(t, []model.Parameter{
		{Name: "q", In: "query", Schema: &model.Schema{Type: "string"}},
		{Name: "page", In: "query", Schema: &model.Schema{Type: "integer"}},
	}, search.Parameters)
	assert.Equal(t, "Order", search.Responses["200"].Content["application/json"].Schema.Properties["content"].Items.RefName())

	cancel, ok := result.Document.Operation("/api/orders/{id}/cancel", model.VerbPatch)
	require.True(t, ok)
	assert.Equal(t, "orderId", cancel.Parameters[0].Name)
	assert.Equal(t, "integer", cancel.Parameters[0].Schema.Type)

	// Missing companions: only the envelope is registered
	assert.Len(t, result.Document.Components.Schemas, 1)
}

func TestGenerateJSONCompilesAsSchema(t *testing.T) {
	fs := widgetFS(t)
	generateWidget(t, fs, FormatJSON)

	data, err := afero.ReadFile(fs, "/out/widget/Widget_api.json")
	require.NoError(t, err)

	const base = "https://specforge.local/widget.json"
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	require.NoError(t, compiler.AddResource(base, bytes.NewReader(data)))

	envelope, err := compiler.Compile(base + "#/components/schemas/GlobalResponseMessage")
	require.NoError(t, err)
	_, err = compiler.Compile(base + "#/components/schemas/WidgetRequest")
	require.NoError(t, err)
	response, err := compiler.Compile(base + "#/components/schemas/WidgetResponse")
	require.NoError(t, err)

	var valid any
	require.NoError(t, json.Unmarshal([]byte(`{"statusCode": 200, "isError": false, "data": true}`), &valid))
	assert.NoError(t, envelope.Validate(valid))

	var invalid any
	require.NoError(t, json.Unmarshal([]byte(`{"statusCode": "ok"}`), &invalid))
	assert.Error(t, envelope.Validate(invalid))

	var widget any
	require.NoError(t, json.Unmarshal([]byte(`{"id": "7d3c", "price": 9.5, "tags": ["a", "b"], "active": true}`), &widget))
	assert.NoError(t, response.Validate(widget))

	var badTags any
	require.NoError(t, json.Unmarshal([]byte(`{"tags": [1, 2]}`), &badTags))
	assert.Error(t, response.Validate(badTags))
}

func TestGenerateErrors(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/src/BrokenController.java": "public interface BrokenController {}",
		"/src/OkController.java":     widgetController,
		"/src/OkRequest.java":        "not a class",
	})
	g := NewGenerator(fs, DetectComplete, FormatYAML)
	ctx := context.Background()

	_, err := g.Generate(ctx, "/src/MissingController.java", "", "", "/out/x.yaml")
	assert.Error(t, err)

	_, err = g.Generate(ctx, "/src/BrokenController.java", "", "", "/out/x.yaml")
	assert.Error(t, err)

	_, err = g.Generate(ctx, "/src/OkController.java", "/src/OkRequest.java", "", "/out/x.yaml")
	assert.Error(t, err, "a malformed companion aborts")

	exists, _ := afero.Exists(fs, "/out/x.yaml")
	assert.False(t, exists, "nothing is written on failure")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = g.Generate(cancelled, "/src/OkController.java", "", "", "/out/x.yaml")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)
	assert.Equal(t, "json", f.Ext())

	f, err = ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", f.Ext())

	_, err = ParseFormat("toml")
	assert.Error(t, err)
}
