// Package metrics exposes Prometheus counters for orders, conversion, the
// storage sweep, real-time events and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"printshop/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "printshop"

// Registry owns every collector of the process.
type Registry struct {
	reg *prometheus.Registry

	ordersCreated   prometheus.Counter
	conversionItems *prometheus.CounterVec
	sweepDeleted    prometheus.Counter
	eventsPublished *prometheus.CounterVec
	wsConnections   prometheus.Gauge

	requestDuration *prometheus.SummaryVec
	requestsTotal   *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,
		ordersCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders persisted.",
		}),
		conversionItems: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversion_items_total",
			Help:      "Line items seen by the conversion job, by result.",
		}, []string{"result"}),
		sweepDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_deleted_objects_total",
			Help:      "Objects removed by the storage sweep.",
		}),
		eventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Real-time events published, by event and outcome.",
		}, []string{"event", "outcome"}),
		wsConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_connections",
			Help:      "Open WebSocket connections.",
		}),
		requestDuration: factory.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:  namespace,
			Name:       "http_request_duration_seconds",
			Help:       "HTTP request duration in seconds.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, []string{"method", "path", "status_code"}),
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status_code"}),
	}
}

// NewMetrics exposes the registry as the domain metrics port.
func NewMetrics(r *Registry) service.Metrics {
	return r
}

func (r *Registry) OrderCreated() {
	r.ordersCreated.Inc()
}

func (r *Registry) ConversionItem(result string) {
	r.conversionItems.WithLabelValues(result).Inc()
}

func (r *Registry) SweepDeleted(n int) {
	r.sweepDeleted.Add(float64(n))
}

func (r *Registry) EventPublished(name service.EventName, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	r.eventsPublished.WithLabelValues(string(name), outcome).Inc()
}

func (r *Registry) WebSocketConnections(delta int) {
	r.wsConnections.Add(float64(delta))
}

// Handler serves the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Middleware records per-route latency and status counts.
func (r *Registry) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler write the final status before we read it.
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Response().Status)
		method := c.Request().Method

		r.requestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		r.requestsTotal.WithLabelValues(method, path, status).Inc()

		return nil
	}
}
