// Package metrics собирает Prometheus-метрики HTTP-операций.
package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sensorlist"

type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New регистрирует метрики в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"operation", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	reg.MustRegister(m.requests, m.duration)
	return m
}

// Middleware считает запросы по operation id и классу статуса (2xx, 4xx...).
func (m *Metrics) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		op := "unknown"
		if o := ctx.Operation(); o != nil && o.OperationID != "" {
			op = o.OperationID
		}

		m.requests.WithLabelValues(op, StatusClass(ctx.Status())).Inc()
		m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

func StatusClass(status int) string {
	if status == 0 {
		status = 200
	}
	return strconv.Itoa(status/100) + "xx"
}
