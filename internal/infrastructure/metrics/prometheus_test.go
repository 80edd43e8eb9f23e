package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magazzino-api/internal/infrastructure/metrics"
)

func TestRecorder_ContadoresDeNegocio(t *testing.T) {
	r := metrics.NewRecorder()
	r.MovementApplied("load", 7)
	r.MovementApplied("load", 3)
	r.MovementFailed("unload")
	r.PurchaseOrderConfirmed(2)
	r.PurchaseOrderFailed()

	n, err := testutil.GatherAndCount(r.Registry(),
		"magazzino_stock_movements_total",
		"magazzino_stock_moved_units_total",
		"magazzino_stock_movement_failures_total",
		"magazzino_purchase_orders_total",
		"magazzino_purchase_order_lines_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestRecorder_Handler(t *testing.T) {
	r := metrics.NewRecorder()
	r.ObserveHTTP("GET", "/api/items", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `magazzino_http_requests_total{method="GET",route="/api/items",status="200"} 1`)
}
