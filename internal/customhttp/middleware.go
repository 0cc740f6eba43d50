package customhttp

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/metrics"
)

type middleware func(next httpCommandFunc) httpCommandFunc

func chainMiddleware(m ...middleware) middleware {
	return func(final httpCommandFunc) httpCommandFunc {
		last := final
		for i := len(m) - 1; i >= 0; i-- {
			last = m[i](last)
		}

		return func(req *http.Request) (resp *http.Response, err error) {
			return last(req)
		}
	}
}

func noOpsMiddleware() middleware {
	return func(next httpCommandFunc) httpCommandFunc {
		return func(req *http.Request) (resp *http.Response, err error) {
			return next(req)
		}
	}
}

func metricsMiddleware(m metrics.Metrics) middleware {
	return func(next httpCommandFunc) httpCommandFunc {
		return func(req *http.Request) (resp *http.Response, err error) {
			start := time.Now()
			resp, err = next(req)

			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			m.ClientRequest(&metrics.RequestInfo{
				Method:   req.Method,
				Status:   status,
				Duration: time.Since(start),
			})
			return resp, err
		}
	}
}

func loggingMiddleware() middleware {
	return func(next httpCommandFunc) httpCommandFunc {
		return func(req *http.Request) (resp *http.Response, err error) {
			start := time.Now()
			resp, err = next(req)

			fields := log.Fields{
				"method":  req.Method,
				"path":    req.URL.Path,
				"latency": time.Since(start).String(),
			}
			if resp != nil {
				fields["status"] = resp.StatusCode
			}
			log.WithContext(req.Context()).WithFields(fields).Debug("outbound request")
			return resp, err
		}
	}
}
