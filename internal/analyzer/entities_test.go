package analyzer

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEntities(t *testing.T) {
	fs := afero.NewMemMapFs()
	sources := map[string]string{
		"/src/com/acme/model/Widget.java": `package com.acme.model;

@Entity
public class Widget {
    @Id
    private UUID id;
    private String name;
    public String ignored;
}
`,
		"/src/com/acme/model/Empty.java": `package com.acme.model;

@Entity
public class Empty {
}
`,
		"/src/Loose.java": `@Entity
public class Loose {
    private String name;
}
`,
		"/src/com/acme/model/Broken.java": "package com.acme.model;\n@Entity\npublic class Broken {\n private int a;\n",
		"/src/com/acme/web/WidgetController.java": `package com.acme.web;

public class WidgetController {
    private String entityName = "@Entity";
}
`,
	}
	for path, src := range sources {
		require.NoError(t, afero.WriteFile(fs, path, []byte(src), 0644))
	}

	entities, err := FindEntities(context.Background(), fs, "/src", nil)
	require.NoError(t, err)
	require.Len(t, entities, 1, "only entities with a package and private fields are kept")

	widget := entities[0]
	assert.Equal(t, "Widget", widget.Name)
	assert.Equal(t, "com.acme.model", widget.Package)
	assert.Equal(t, "/src/com/acme/model/Widget.java", widget.Path)
	require.Len(t, widget.Fields, 2)
	assert.Equal(t, "id", widget.Fields[0].Name)
	assert.Equal(t, "UUID", widget.Fields[0].Type)
}

func TestFindEntitiesCancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/A.java", []byte("class A {}"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindEntities(ctx, fs, "/src", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
