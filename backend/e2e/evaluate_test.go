// ABOUTME: End-to-end tests for the evaluation endpoints
// ABOUTME: Exercises evaluation, caching and metrics through the full HTTP stack

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

func TestEvaluate_E2E_ReferenceScenario(t *testing.T) {
	srv := newTestServer(t, nil, 0)

	resp := srv.postJSON(t, "/api/v1/evaluate", models.EvaluationRequest{
		Service:   []int{4, 8, 1, 4, 3, 6, 6, 8},
		Placement: []int{3, 3, 2, 1, 1, 0, 0, 0},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header from logging middleware")
	}

	var body models.EvaluationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if diff := cmp.Diff([]int{5, 5, 4, 3, 0, 0, 0, 0, 0, 0}, body.Result.Occupancy); diff != "" {
		t.Errorf("Occupancy mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{200, 200, 200, 200, 0, 0, 0, 0, 0, 0}, body.Result.LinkUsage); diff != "" {
		t.Errorf("Link usage mismatch (-want +got):\n%s", diff)
	}
	if body.Result.Bandwidth != 100 {
		t.Errorf("Expected bandwidth 100, got %v", body.Result.Bandwidth)
	}
}

func TestEvaluate_E2E_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil, 0)

	resp, err := http.Get(srv.URL + "/api/v1/evaluate")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}

func TestEvaluate_E2E_MetricsExposed(t *testing.T) {
	srv := newTestServer(t, nil, 0)

	req := models.EvaluationRequest{Service: []int{1, 1, 1}, Placement: []int{3, 3, 3}}
	srv.postJSON(t, "/api/v1/evaluate", req)
	srv.postJSON(t, "/api/v1/evaluate", req)
	srv.postJSON(t, "/api/v1/evaluate", models.EvaluationRequest{Service: []int{9}, Placement: []int{0}})

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	text := string(data)

	for _, want := range []string{
		`vnf_placement_evaluations_total{outcome="violated"} 1`,
		`vnf_placement_evaluations_total{outcome="invalid"} 1`,
		`vnf_placement_constraint_violations_total{constraint="occupancy"} 1`,
		`vnf_placement_evaluation_cache_hits_total 1`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected metrics to contain %q", want)
		}
	}
}
