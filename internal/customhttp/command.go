package customhttp

import (
	"net/http"

	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/metrics"
)

type HTTPCommand interface {
	Do(req *http.Request) (resp *http.Response, err error)
}

type httpCommandFunc func(req *http.Request) (resp *http.Response, err error)

func (h httpCommandFunc) Do(req *http.Request) (resp *http.Response, err error) {
	return h(req)
}

type HTTPCommandBuilder struct {
	client  HTTPCommand
	metrics middleware
	logging middleware
}

func New(options ...func(*HTTPCommandBuilder)) *HTTPCommandBuilder {
	builder := &HTTPCommandBuilder{
		client:  http.DefaultClient,
		metrics: noOpsMiddleware(),
		logging: noOpsMiddleware(),
	}

	for _, option := range options {
		option(builder)
	}
	return builder
}

func (b *HTTPCommandBuilder) Build() HTTPCommand {
	mw := chainMiddleware(b.logging, b.metrics)
	return mw(b.client.Do)
}

// WithHTTPClient allows the user to supply their own http.Client
func WithHTTPClient(client HTTPCommand) func(*HTTPCommandBuilder) {
	return func(builder *HTTPCommandBuilder) {
		builder.client = client
	}
}

// WithMetrics records every outbound call.
func WithMetrics(m metrics.Metrics) func(*HTTPCommandBuilder) {
	return func(builder *HTTPCommandBuilder) {
		builder.metrics = metricsMiddleware(m)
	}
}

// WithRequestLogging logs method, path, status and latency of every call.
func WithRequestLogging() func(*HTTPCommandBuilder) {
	return func(builder *HTTPCommandBuilder) {
		builder.logging = loggingMiddleware()
	}
}
