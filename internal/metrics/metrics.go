package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration prometheus.Histogram
	OrdersCreated   prometheus.Counter
	OrderFailures   prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bookstore_http_requests_total",
	}, []string{"method", "path", "status"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bookstore_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bookstore_orders_created_total",
	})
	orderFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bookstore_order_failures_total",
	})

	r.MustRegister(requests, duration, ordersCreated, orderFailures)

	return &Registry{
		reg:             r,
		RequestsTotal:   requests,
		RequestDuration: duration,
		OrdersCreated:   ordersCreated,
		OrderFailures:   orderFailures,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
