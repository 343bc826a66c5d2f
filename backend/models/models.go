// ABOUTME: Shared error values and API envelope types
// ABOUTME: JSON-serializable structures returned by the evaluator API

package models

import (
	"errors"
	"time"
)

var (
	// ErrSizeMismatch is returned when capacity tables cannot be built for the requested scale
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrInvalidInput is returned when a service or placement is malformed
	ErrInvalidInput = errors.New("invalid input")
)

// MaxSampleLength bounds the chain length of one random placement
const MaxSampleLength = 1000

// EvaluationRequest is the API input for a single evaluation.
// ServiceLength defaults to len(Service) when zero.
type EvaluationRequest struct {
	ServiceLength int   `json:"service_length,omitempty" yaml:"service_length,omitempty"`
	Service       []int `json:"service" yaml:"service"`
	Placement     []int `json:"placement" yaml:"placement"`
}

// EffectiveLength returns the number of service entries to evaluate
func (r EvaluationRequest) EffectiveLength() int {
	if r.ServiceLength > 0 {
		return r.ServiceLength
	}
	return len(r.Service)
}

// EvaluationResponse is the API response for an evaluation
type EvaluationResponse struct {
	ID         string             `json:"id"`
	Result     EvaluationResult   `json:"result"`
	Bottleneck BottleneckAnalysis `json:"bottleneck"`
	Metadata   Metadata           `json:"metadata"`
}

// SampleRequest asks for a random-placement baseline
type SampleRequest struct {
	Runs          int `json:"runs"`
	ServiceLength int `json:"service_length"`
}

// SampleSummary aggregates constraint outcomes over random placements
type SampleSummary struct {
	Runs             int     `json:"runs"`
	ServiceLength    int     `json:"service_length"`
	Feasible         int     `json:"feasible"`
	InvalidOccupancy int     `json:"invalid_occupancy"`
	InvalidBandwidth int     `json:"invalid_bandwidth"`
	InvalidLatency   int     `json:"invalid_latency"`
	FeasibleRatio    float64 `json:"feasible_ratio"`
	MeanLinkLatency  float64 `json:"mean_link_latency"`
	MeanCPULatency   float64 `json:"mean_cpu_latency"`
}

// Metadata contains response metadata
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Cached    bool      `json:"cached"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}
