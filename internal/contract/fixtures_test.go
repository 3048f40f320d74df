package contract

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const widgetController = `package com.acme.widget;

import org.springframework.web.bind.annotation.*;

@RestController
@RequestMapping("/api/widgets")
public class WidgetController {

    private final WidgetService widgetService;

    @GetMapping("/all")
    public ResponseEntity<GlobalResponseMessage<ArrayList<WidgetResponse>>> getAllWidgets() {
        return ResponseEntity.ok(widgetService.findAll());
    }
}
`

const widgetRequest = `package com.acme.widget;

import lombok.Data;

@Data
public class WidgetRequest {
    @NotBlank
    private String name;
    private Integer quantity;
    private List<String> tags;
}
`

const widgetResponse = `package com.acme.widget;

@Data
public class WidgetResponse {
    private UUID id;
    private String name;
    private BigDecimal price;
    private LocalDateTime createdAt;
    private List<String> tags;
    private boolean active;
}
`

const orderController = `package com.acme.order;

@RestController
@RequestMapping(value = "/api/orders")
public class OrderController {

    @GetMapping("/search")
    public Page<Order> searchOrders(@RequestParam(value = "q", required = false) String q,
                                    @RequestParam(defaultValue = "0") int page) {
        return null;
    }

    @PostMapping
    public GlobalResponseMessage<OrderResponse> placeOrder(@RequestBody @Valid PlaceOrderCommand command) {
        return null;
    }

    @RequestMapping(value = "/{id}/cancel", method = RequestMethod.PATCH)
    public GlobalResponseMessage<Boolean> cancelOrder(@PathVariable("id") Long orderId) {
        return null;
    }
}
`

// memFS returns an in-memory filesystem holding the given files
func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return fs
}
