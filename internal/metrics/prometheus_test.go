package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestServePrometheus(t *testing.T) {
	m := New()
	m.ClientRequest(&RequestInfo{Method: http.MethodGet, Status: http.StatusOK, Duration: 20 * time.Millisecond})
	m.IncomingRequest(&RequestInfo{Method: http.MethodPost, Route: "/v1/importLeaves", Status: http.StatusCreated, Duration: time.Second})

	rec := httptest.NewRecorder()
	m.ServePrometheus().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `leave_migration_bamboohr_client_requests_count{method="GET",status="200"} 1`)
	require.Contains(t, string(body), `leave_migration_http_incoming_requests_count{method="POST",route="/v1/importLeaves",status="201"} 1`)
}
