package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/cache"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/config"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/metrics"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/middleware"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

const referenceBody = `{"service":[4,8,1,4,3,6,6,8],"placement":[3,3,2,1,1,0,0,0]}`

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	c := cache.New(5 * time.Minute)
	t.Cleanup(c.Close)
	return NewHandler(&config.Config{MaxSampleRuns: 500}, nil, c, metrics.NewRecorder())
}

func post(h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp
}

func TestHealthHandler(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", resp["status"])
	}
	if resp["nodes"] != float64(10) {
		t.Errorf("Expected 10 nodes, got %v", resp["nodes"])
	}
	if resp["vnf_types"] != float64(8) {
		t.Errorf("Expected 8 VNF types, got %v", resp["vnf_types"])
	}
	if _, ok := resp["cache"]; !ok {
		t.Error("Expected cache stats in health response")
	}
}

func TestHealthHandler_NoCache(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil)

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	var resp map[string]interface{}
	json.NewDecoder(w.Body).Decode(&resp)
	if _, ok := resp["cache"]; ok {
		t.Error("Expected no cache stats without a cache")
	}
	if resp["metrics"] != false {
		t.Errorf("Expected metrics false, got %v", resp["metrics"])
	}
}

func TestCapacityHandler(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Capacity(w, httptest.NewRequest(http.MethodGet, "/api/v1/capacity", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var tables models.CapacityTables
	if err := json.NewDecoder(w.Body).Decode(&tables); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if diff := cmp.Diff(models.NewReferenceModel().Tables(), tables); diff != "" {
		t.Errorf("Capacity tables mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateHandler_ReferenceScenario(t *testing.T) {
	h := newTestHandler(t)

	w := post(h.Evaluate, "/api/v1/evaluate", referenceBody)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.EvaluationResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if _, err := uuid.Parse(resp.ID); err != nil {
		t.Errorf("Expected UUID id, got %q", resp.ID)
	}
	if diff := cmp.Diff([]int{0, 2, 0, 0, 2, 0, 2, 4}, resp.Result.FirstVMIndex); diff != "" {
		t.Errorf("first_vm_index mismatch (-want +got):\n%s", diff)
	}
	if resp.Result.LinkLatency != 280 || resp.Result.CPULatency != 280 {
		t.Errorf("Expected latencies 280/280, got %v/%v", resp.Result.LinkLatency, resp.Result.CPULatency)
	}
	if resp.Result.InvalidLatency || resp.Result.ConstraintLatency != 0 {
		t.Errorf("Expected equal latencies to stay feasible, got %v/%v", resp.Result.InvalidLatency, resp.Result.ConstraintLatency)
	}
	if !resp.Result.Feasible() {
		t.Errorf("Expected feasible placement, got violations %v", resp.Result.Violations())
	}
	if resp.Bottleneck.ConstrainingResource == "" {
		t.Error("Expected a constraining resource")
	}
	if resp.Metadata.Cached {
		t.Error("First evaluation should not be cached")
	}
}

func TestEvaluateHandler_SecondRequestCached(t *testing.T) {
	h := newTestHandler(t)

	post(h.Evaluate, "/api/v1/evaluate", referenceBody)
	w := post(h.Evaluate, "/api/v1/evaluate", referenceBody)

	var resp models.EvaluationResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Metadata.Cached {
		t.Error("Expected second evaluation to be served from cache")
	}
}

func TestEvaluateHandler_InvalidInput(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name    string
		body    string
		details string
	}{
		{"malformed json", `{"service":`, ""},
		{"length mismatch", `{"service":[1,2],"placement":[0]}`, "service has 2 entries but placement has 1"},
		{"node out of range", `{"service":[1],"placement":[10]}`, "placement[0]: node 10 out of range"},
		{"sentinel vnf", `{"service":[0],"placement":[0]}`, "service[0]: VNF type 0 out of range"},
		{"empty", `{"service":[],"placement":[]}`, "service length must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(h.Evaluate, "/api/v1/evaluate", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", w.Code)
			}
			resp := decodeError(t, w)
			if resp.Code != http.StatusBadRequest {
				t.Errorf("Expected code 400, got %d", resp.Code)
			}
			if !strings.Contains(resp.Details, tt.details) {
				t.Errorf("Expected details to contain %q, got %q", tt.details, resp.Details)
			}
		})
	}
}

func TestEvaluateHandler_BodyTooLarge(t *testing.T) {
	h := newTestHandler(t)
	handler := middleware.LimitBody(64)(h.Evaluate)

	body := `{"service":[` + strings.Repeat("1,", 100) + `1],"placement":[0]}`
	w := post(handler, "/api/v1/evaluate", body)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected status 413, got %d", w.Code)
	}
}

func TestBottleneckHandler(t *testing.T) {
	h := newTestHandler(t)

	// Node 3 takes 4 + 3 + 4 VM slots against a capacity of 7
	w := post(h.Bottleneck, "/api/v1/bottleneck", `{"service":[1,2,1],"placement":[3,3,3]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var analysis models.BottleneckAnalysis
	if err := json.NewDecoder(w.Body).Decode(&analysis); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if analysis.ConstrainingResource != "VM slots" {
		t.Errorf("Expected VM slots to constrain, got %q", analysis.ConstrainingResource)
	}
	if !strings.Contains(analysis.Summary, "violated") {
		t.Errorf("Expected violation summary, got %q", analysis.Summary)
	}
}

func TestSampleHandler(t *testing.T) {
	h := newTestHandler(t)

	w := post(h.Sample, "/api/v1/sample", `{"runs":50,"service_length":4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var summary models.SampleSummary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if summary.Runs != 50 || summary.ServiceLength != 4 {
		t.Errorf("Expected 50 runs of length 4, got %+v", summary)
	}
}

func TestSampleHandler_Defaults(t *testing.T) {
	h := newTestHandler(t)

	w := post(h.Sample, "/api/v1/sample", `{"runs":10}`)

	var summary models.SampleSummary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if summary.ServiceLength != 8 {
		t.Errorf("Expected default service length 8, got %d", summary.ServiceLength)
	}
}

func TestSampleHandler_RejectsTooManyRuns(t *testing.T) {
	h := newTestHandler(t)

	w := post(h.Sample, "/api/v1/sample", `{"runs":501}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if resp := decodeError(t, w); !strings.Contains(resp.Details, "between 1 and 500") {
		t.Errorf("Expected runs bound in details, got %q", resp.Details)
	}
}

func TestSampleHandler_RejectsOversizedLength(t *testing.T) {
	h := newTestHandler(t)

	w := post(h.Sample, "/api/v1/sample", `{"runs":1,"service_length":4611686018427387904}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	if resp := decodeError(t, w); !strings.Contains(resp.Details, "between 1 and 100") {
		t.Errorf("Expected length bound in details, got %q", resp.Details)
	}

	// The sampler must still be usable afterwards
	done := make(chan int, 1)
	go func() {
		done <- post(h.Sample, "/api/v1/sample", `{"runs":1,"service_length":2}`).Code
	}()
	select {
	case code := <-done:
		if code != http.StatusOK {
			t.Errorf("Expected status 200 after rejection, got %d", code)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Sample request blocked after a rejected request")
	}
}

func TestSampleHandler_ReleasesSamplerOnError(t *testing.T) {
	h := newTestHandler(t)

	if _, err := h.runSampler(1, models.MaxSampleLength+1); !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
	if !h.samplerMu.TryLock() {
		t.Fatal("Expected sampler lock to be released")
	}
	h.samplerMu.Unlock()
}

func TestOpenAPISpecHandler(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.OpenAPISpec(w, httptest.NewRequest(http.MethodGet, "/api/v1/openapi.yaml", nil))

	if ct := w.Header().Get("Content-Type"); ct != "application/yaml" {
		t.Errorf("Expected application/yaml, got %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("openapi:")) {
		t.Error("Expected the embedded OpenAPI document")
	}
}
