package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "leave_migration"

	clientRequests   = "bamboohr_client_requests"
	incomingRequests = "http_incoming_requests"
)

type Metrics interface {
	ServePrometheus() http.Handler
	ClientRequest(label *RequestInfo)
	IncomingRequest(label *RequestInfo)
}

// RequestInfo describes one finished request. Status is 0 when no response
// was received.
type RequestInfo struct {
	Method   string
	Route    string
	Status   int
	Duration time.Duration
}

type appMetrics struct {
	registry *prometheus.Registry

	clientRequests   *prometheus.SummaryVec
	incomingRequests *prometheus.SummaryVec
}

func New() Metrics {
	registry := prometheus.NewRegistry()

	m := &appMetrics{
		registry: registry,
		clientRequests: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      clientRequests,
			Help:      "Outbound calls to the BambooHR API.",
		}, []string{"method", "status"}),
		incomingRequests: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      incomingRequests,
			Help:      "Requests served by this service.",
		}, []string{"method", "route", "status"}),
	}

	registry.MustRegister(m.clientRequests, m.incomingRequests)

	return m
}

func (m *appMetrics) ServePrometheus() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *appMetrics) ClientRequest(label *RequestInfo) {
	m.clientRequests.WithLabelValues(label.Method, strconv.Itoa(label.Status)).Observe(label.Duration.Seconds())
}

func (m *appMetrics) IncomingRequest(label *RequestInfo) {
	m.incomingRequests.WithLabelValues(label.Method, label.Route, strconv.Itoa(label.Status)).Observe(label.Duration.Seconds())
}
