// Package metrics expone contadores Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/magazzino-api/internal/application/ports"
)

var _ ports.Metrics = (*Recorder)(nil)

// Recorder agrupa los collectors HTTP y de negocio sobre un registro propio.
type Recorder struct {
	registry      *prometheus.Registry
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	movements     *prometheus.CounterVec
	movedUnits    *prometheus.CounterVec
	movementFails *prometheus.CounterVec
	orders        *prometheus.CounterVec
	orderLines    prometheus.Counter
}

// NewRecorder crea el registro con los collectors del proceso y de Go ya incluidos.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "magazzino_http_requests_total",
			Help: "Total HTTP requests partitioned by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "magazzino_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "magazzino_stock_movements_total",
			Help: "Applied stock movements by direction.",
		}, []string{"direction"}),
		movedUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "magazzino_stock_moved_units_total",
			Help: "Units loaded or unloaded by direction.",
		}, []string{"direction"}),
		movementFails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "magazzino_stock_movement_failures_total",
			Help: "Stock movements that could not be applied.",
		}, []string{"direction"}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "magazzino_purchase_orders_total",
			Help: "Purchase order confirmations by outcome.",
		}, []string{"status"}),
		orderLines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "magazzino_purchase_order_lines_total",
			Help: "Lines included in confirmed purchase orders.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests, r.httpDuration,
		r.movements, r.movedUnits, r.movementFails,
		r.orders, r.orderLines,
	)
	return r
}

// Registry expone el registro (para tests).
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler devuelve el handler net/http de /metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// ObserveHTTP registra una petición atendida.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Recorder) MovementApplied(direction string, qty int) {
	r.movements.WithLabelValues(direction).Inc()
	r.movedUnits.WithLabelValues(direction).Add(float64(qty))
}

func (r *Recorder) MovementFailed(direction string) {
	r.movementFails.WithLabelValues(direction).Inc()
}

func (r *Recorder) PurchaseOrderConfirmed(lines int) {
	r.orders.WithLabelValues("sent").Inc()
	r.orderLines.Add(float64(lines))
}

func (r *Recorder) PurchaseOrderFailed() {
	r.orders.WithLabelValues("failed").Inc()
}
