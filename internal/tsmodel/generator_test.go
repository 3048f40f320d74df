package tsmodel

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specforge/internal/analyzer"
	"specforge/internal/javaparser"
)

const orderEntity = `package com.acme.sales;

import com.acme.catalog.Widget;

@Entity
public class Order {
    @Id
    private UUID id;
    private Customer customer;
    private List<Widget> widgets;
    private Set<String> tags;
    private Map<String, Widget> byCode;
    private BigDecimal total;
    private LocalDateTime placedAt;
    private byte[] signature;
    private Order parent;
    private Object extra;
}
`

const customerEntity = `package com.acme.sales;

@Entity
public class Customer {
    private String name;
    private boolean active;
}
`

const widgetEntity = `package com.acme.catalog;

@Entity
public class Widget {
    private Long id;
    private String name;
}
`

func writeSources(t *testing.T, fs afero.Fs) {
	t.Helper()
	for path, src := range map[string]string{
		"/src/com/acme/sales/Order.java":      orderEntity,
		"/src/com/acme/sales/Customer.java":   customerEntity,
		"/src/com/acme/catalog/Widget.java":   widgetEntity,
		"/src/com/acme/web/OrderService.java": "package com.acme.web;\npublic class OrderService { private int x; }\n",
		"/src/target/com/acme/Ghost.java":     "package com.acme;\n@Entity\npublic class Ghost { private int x; }\n",
	} {
		require.NoError(t, afero.WriteFile(fs, path, []byte(src), 0644))
	}
}

type countingTracker struct {
	total int
	count atomic.Int32
}

func (c *countingTracker) SetTotal(total int) { c.total = total }
func (c *countingTracker) Increment() error {
	c.count.Add(1)
	return nil
}

func TestGenerateModels(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSources(t, fs)

	tracker := &countingTracker{}
	written, err := NewGenerator(fs, 4).
		WithExcludes([]string{"**/target/**"}).
		WithTracker(tracker).
		Generate(context.Background(), "/src", "/out")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/out/com/acme/catalog/Widget.ts",
		"/out/com/acme/sales/Customer.ts",
		"/out/com/acme/sales/Order.ts",
	}, written)
	assert.Equal(t, 3, tracker.total)
	assert.EqualValues(t, 3, tracker.count.Load())

	order, err := afero.ReadFile(fs, "/out/com/acme/sales/Order.ts")
	require.NoError(t, err)
	assert.Equal(t, `import type { Customer } from './Customer';
import type { Widget } from '../catalog/Widget';

export interface Order {
  id: string;
  customer: Customer;
  widgets: Widget[];
  tags: Set<string>;
  byCode: Record<string, Widget>;
  total: number;
  placedAt: Date;
  signature: string;
  parent: Order;
  extra: any;
}
`, string(order))

	widget, err := afero.ReadFile(fs, "/out/com/acme/catalog/Widget.ts")
	require.NoError(t, err)
	assert.Equal(t, "export interface Widget {\n  id: number;\n  name: string;\n}\n", string(widget))
}

func TestGenerateCancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSources(t, fs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(fs, 2).Generate(ctx, "/src", "/out")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTSType(t *testing.T) {
	entities := map[string]string{"Widget": "com.acme.catalog"}

	tests := []struct {
		java string
		ts   string
	}{
		{"String", "string"},
		{"char", "string"},
		{"UUID", "string"},
		{"int", "number"},
		{"BigInteger", "number"},
		{"Byte", "boolean"},
		{"Instant", "Date"},
		{"byte[]", "string"},
		{"char[][]", "string"},
		{"String[]", "string[]"},
		{"int[][]", "number[][]"},
		{"List", "Array<any>"},
		{"Set", "Set<any>"},
		{"List<String>", "string[]"},
		{"List<List<Long>>", "number[][]"},
		{"ArrayList<Widget>", "Widget[]"},
		{"List<? extends Widget>", "Widget[]"},
		{"Map<Long, List<Widget>>", "Record<number, Widget[]>"},
		{"Map", "Record<string, any>"},
		{"Optional<Widget>", "Widget"},
		{"java.util.UUID", "string"},
		{"Gadget", "any"},
	}

	for _, tt := range tests {
		t.Run(tt.java, func(t *testing.T) {
			assert.Equal(t, tt.ts, TSType(javaparser.ParseTypeRef(tt.java), entities))
		})
	}
}

func TestRelativeDir(t *testing.T) {
	tests := []struct {
		from, to, want string
	}{
		{"com.acme.sales", "com.acme.sales", "."},
		{"com.acme.sales", "com.acme.catalog", "../catalog"},
		{"com.acme", "com.acme.sales.model", "./sales/model"},
		{"com.acme.sales.model", "com.acme", "../.."},
		{"org.other", "com.acme", "../../com/acme"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, relativeDir(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestRenderSelfReferenceHasNoImport(t *testing.T) {
	e := &analyzer.Entity{
		Name:    "Node",
		Package: "com.acme",
		Fields:  []javaparser.Field{{Name: "children", Type: "List<Node>"}},
	}
	got := Render(e, map[string]string{"Node": "com.acme"})
	assert.Equal(t, "export interface Node {\n  children: Node[];\n}\n", got)
}
