// ABOUTME: Random placement sampler giving a constraint-violation baseline
// ABOUTME: Draws services and placements from an rngstream and evaluates each one

package services

import (
	"fmt"

	"github.com/iti/rngstream"
	"gonum.org/v1/gonum/stat"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

// Sampler evaluates uniformly random service chains on uniformly random nodes.
// It does not search for good placements; it only measures how often random ones
// violate each constraint.
type Sampler struct {
	engine *Engine
	rng    *rngstream.RngStream
}

// NewSampler creates a sampler with its own engine and a named random stream
func NewSampler(model *models.CapacityModel, streamName string) *Sampler {
	return &Sampler{
		engine: NewEngineForModel(model),
		rng:    rngstream.New(streamName),
	}
}

// intn returns a uniform integer in [0, n)
func (s *Sampler) intn(n int) int {
	v := int(s.rng.RandU01() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Draw produces one random request. The length is clamped to
// [0, models.MaxSampleLength].
func (s *Sampler) Draw(length int) models.EvaluationRequest {
	length = min(max(length, 0), models.MaxSampleLength)
	model := s.engine.Model()
	req := models.EvaluationRequest{
		ServiceLength: length,
		Service:       make([]int, length),
		Placement:     make([]int, length),
	}
	for i := 0; i < length; i++ {
		req.Service[i] = 1 + s.intn(model.NumVNFTypes())
		req.Placement[i] = s.intn(model.NumNodes())
	}
	return req
}

// Run evaluates runs random requests and summarizes their outcomes
func (s *Sampler) Run(runs, length int) (models.SampleSummary, error) {
	if runs <= 0 {
		return models.SampleSummary{}, fmt.Errorf("%w: runs must be positive, got %d", models.ErrInvalidInput, runs)
	}
	if length <= 0 || length > models.MaxSampleLength {
		return models.SampleSummary{}, fmt.Errorf("%w: service length must be between 1 and %d, got %d",
			models.ErrInvalidInput, models.MaxSampleLength, length)
	}

	summary := models.SampleSummary{Runs: runs, ServiceLength: length}
	linkLatency := make([]float64, 0, runs)
	cpuLatency := make([]float64, 0, runs)

	for r := 0; r < runs; r++ {
		req := s.Draw(length)
		result, err := s.engine.Evaluate(length, req.Service, req.Placement)
		if err != nil {
			return models.SampleSummary{}, err
		}

		if result.Feasible() {
			summary.Feasible++
		}
		if result.InvalidOccupancy {
			summary.InvalidOccupancy++
		}
		if result.InvalidBandwidth {
			summary.InvalidBandwidth++
		}
		if result.InvalidLatency {
			summary.InvalidLatency++
		}
		linkLatency = append(linkLatency, result.LinkLatency)
		cpuLatency = append(cpuLatency, result.CPULatency)
	}

	summary.FeasibleRatio = float64(summary.Feasible) / float64(runs)
	summary.MeanLinkLatency = stat.Mean(linkLatency, nil)
	summary.MeanCPULatency = stat.Mean(cpuLatency, nil)
	s.engine.Clear()

	return summary, nil
}
