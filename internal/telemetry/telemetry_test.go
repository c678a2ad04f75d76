package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTracingNoopWithoutEndpoint(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), "", "netinv-test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupTracingWithEndpoint(t *testing.T) {
	// Non-routable address, nothing is exported
	shutdown, err := SetupTracing(context.Background(), "http://192.0.2.1:4318", "netinv-test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	m := NewMetrics()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/elements/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := m.Middleware(mux)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/elements/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	body := scrape(t, m)
	assert.Contains(t, body, `netinv_http_requests_total{method="GET",route="GET /api/elements/{id}",status="404"} 2`)
	assert.Contains(t, body, `netinv_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, `netinv_http_request_duration_seconds_count{method="GET",route="GET /api/elements/{id}"} 2`)
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.requests.WithLabelValues("GET", "GET /api/roles", "200").Inc()

	body := scrape(t, m)
	assert.Contains(t, body, `netinv_http_requests_total{method="GET",route="GET /api/roles",status="200"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
