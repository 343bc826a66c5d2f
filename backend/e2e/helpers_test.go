// ABOUTME: Test helpers for e2e tests
// ABOUTME: Starts the full middleware stack on an httptest server

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/cache"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/config"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/handlers"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/metrics"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/middleware"
)

// testServer bundles a running server with the recorder behind /metrics.
type testServer struct {
	*httptest.Server
	metrics *metrics.Recorder
}

// newTestServer starts the API the way main wires it. sampleLimit <= 0 disables
// rate limiting.
func newTestServer(t *testing.T, origins []string, sampleLimit int) *testServer {
	t.Helper()

	c := cache.New(5 * time.Minute)
	rec := metrics.NewRecorder()
	h := handlers.NewHandler(&config.Config{MaxSampleRuns: 1000}, nil, c, rec)

	opts := handlers.RouterOptions{
		AllowedOrigins: origins,
		MetricsHandler: rec.Handler(),
	}
	if sampleLimit > 0 {
		opts.SampleLimiter = middleware.NewRateLimiter(sampleLimit, time.Minute)
	}

	srv := httptest.NewServer(h.NewServeMux(opts))
	t.Cleanup(func() {
		srv.Close()
		c.Close()
	})
	return &testServer{Server: srv, metrics: rec}
}

// postJSON posts body to path and returns the response.
func (s *testServer) postJSON(t *testing.T, path string, body interface{}) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}
	resp, err := http.Post(s.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
