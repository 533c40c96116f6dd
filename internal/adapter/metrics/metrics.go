package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orderdesk"

type OrderMetrics struct {
	placed     prometheus.Counter
	rejected   *prometheus.CounterVec
	canceled   prometheus.Counter
	orderValue prometheus.Histogram
	orderLines prometheus.Histogram
}

func NewOrderMetrics(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &OrderMetrics{
		placed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Total number of orders placed.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_rejected_total",
			Help:      "Total number of order placements rejected, by reason.",
		}, []string{"reason"}),
		canceled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_canceled_total",
			Help:      "Total number of orders canceled.",
		}),
		orderValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_total_value",
			Help:      "Total value of placed orders.",
			Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 50000},
		}),
		orderLines: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_lines",
			Help:      "Number of lines per placed order.",
			Buckets:   []float64{1, 2, 3, 5, 10, 20, 50},
		}),
	}
	registerer.MustRegister(m.placed, m.rejected, m.canceled, m.orderValue, m.orderLines)
	return m
}

func (m *OrderMetrics) OrderPlaced(total decimal.Decimal, lines int) {
	m.placed.Inc()
	if f, ok := total.Float64(); ok {
		m.orderValue.Observe(f)
	}
	m.orderLines.Observe(float64(lines))
}

func (m *OrderMetrics) OrderRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *OrderMetrics) OrderCanceled() {
	m.canceled.Inc()
}

var _ port.OrderMetrics = (*OrderMetrics)(nil)

type ServerMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewServerMetrics(registerer prometheus.Registerer) *ServerMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &ServerMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "handler", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "handler"}),
	}
	registerer.MustRegister(m.requests, m.latency)
	return m
}

// Middleware labels requests by route template so ids do not explode cardinality.
func (m *ServerMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, handler, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(c.Request.Method, handler).Observe(time.Since(start).Seconds())
	}
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
