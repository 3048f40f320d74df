package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specforge/internal/model"
)

func TestResolveReturnEnvelope(t *testing.T) {
	tests := []struct {
		expr  string
		patch *model.Schema
	}{
		{"GlobalResponseMessage<ArrayList<WidgetResponse>>", model.ArraySchema(model.RefSchema("WidgetResponse"))},
		{"GlobalResponseMessage<Set<Long>>", model.ArraySchema(&model.Schema{Type: "integer"})},
		{"GlobalResponseMessage<WidgetResponse>", model.RefSchema("WidgetResponse")},
		{"GlobalResponseMessage<Boolean>", &model.Schema{Type: "boolean"}},
		{"GlobalResponseMessage<Page<Widget>>", PageSchema(model.RefSchema("Widget"))},
		{"GlobalResponseMessage", nil},
		{"Mono<GlobalResponseMessage<Widget>>", model.RefSchema("Widget")},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			schema, patch := ResolveReturn(tt.expr, nil)
			assert.Equal(t, model.RefSchema(EnvelopeName), schema)
			assert.Equal(t, tt.patch, patch)
		})
	}
}

func TestResolveReturnPage(t *testing.T) {
	schema, patch := ResolveReturn("Page<Widget>", nil)
	require.Nil(t, patch)

	assert.Equal(t, "object", schema.Type)
	content := schema.Properties["content"]
	require.NotNil(t, content)
	assert.Equal(t, "array", content.Type)
	assert.Equal(t, "#/components/schemas/Widget", content.Items.Ref)

	for _, key := range []string{"totalElements", "totalPages", "size", "number", "numberOfElements"} {
		assert.Equal(t, "integer", schema.Properties[key].Type, key)
	}
	for _, key := range []string{"last", "first", "empty"} {
		assert.Equal(t, "boolean", schema.Properties[key].Type, key)
	}
	assert.Equal(t, "object", schema.Properties["pageable"].Type)
	assert.Equal(t, "object", schema.Properties["sort"].Type)
	assert.Len(t, schema.Properties, 11)
}

func TestResolveReturnOrder(t *testing.T) {
	components := map[string]*model.Schema{
		"WidgetResponse": model.ObjectSchema(nil),
	}

	tests := []struct {
		expr string
		want *model.Schema
	}{
		{"List<WidgetResponse>", model.ArraySchema(model.RefSchema("WidgetResponse"))},
		{"ArrayList<String>", model.ArraySchema(&model.Schema{Type: "string"})},
		{"WidgetResponse[]", model.ArraySchema(model.RefSchema("WidgetResponse"))},
		{"WidgetResponse", model.RefSchema("WidgetResponse")},
		{"String", &model.Schema{Type: "string"}},
		{"long", &model.Schema{Type: "integer"}},
		{"BigDecimal", &model.Schema{Type: "number"}},
		{"Boolean", &model.Schema{Type: "boolean"}},
		{"void", &model.Schema{Type: "object"}},
		{"UnknownThing", &model.Schema{Type: "object"}},
		{"Map<String, Object>", &model.Schema{Type: "object"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			schema, patch := ResolveReturn(tt.expr, components)
			assert.Nil(t, patch)
			assert.Equal(t, tt.want, schema)
		})
	}
}

func TestResolveReturnDoesNotShareSchemas(t *testing.T) {
	a, _ := ResolveReturn("String", nil)
	a.Format = "mutated"
	b, _ := ResolveReturn("String", nil)
	assert.Empty(t, b.Format)
}
