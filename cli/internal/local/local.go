// ABOUTME: In-process evaluator with the same surface as the API client
// ABOUTME: Lets CLI commands and the TUI run without a backend

package local

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/services"
)

// DefaultSampleRuns is used when a sample request leaves Runs at zero
const DefaultSampleRuns = 1000

// Runner evaluates placements against an in-process capacity model
type Runner struct {
	evaluator *services.Evaluator

	mu      sync.Mutex
	sampler *services.Sampler
}

// New creates a runner. A nil model means the reference scenario.
func New(model *models.CapacityModel) *Runner {
	if model == nil {
		model = models.NewReferenceModel()
	}
	return &Runner{
		evaluator: services.NewEvaluator(model, nil, nil),
		sampler:   services.NewSampler(model, "cli-sampler"),
	}
}

// Capacity returns the capacity tables
func (r *Runner) Capacity(ctx context.Context) (*models.CapacityTables, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := r.evaluator.Model().Tables()
	return &t, nil
}

// Evaluate runs one evaluation and wraps it the way the API does
func (r *Runner) Evaluate(ctx context.Context, req *models.EvaluationRequest) (*models.EvaluationResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", models.ErrInvalidInput)
	}

	result, _, err := r.evaluator.Evaluate(*req)
	if err != nil {
		return nil, err
	}

	return &models.EvaluationResponse{
		ID:         uuid.NewString(),
		Result:     result,
		Bottleneck: models.AnalyzePlacement(r.evaluator.Model().Tables(), result),
		Metadata:   models.Metadata{Timestamp: time.Now()},
	}, nil
}

// Sample runs the random-placement baseline. Zero fields take defaults.
func (r *Runner) Sample(ctx context.Context, req *models.SampleRequest) (*models.SampleSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runs, length := DefaultSampleRuns, r.evaluator.Model().NumVNFTypes()
	if req != nil {
		if req.Runs != 0 {
			runs = req.Runs
		}
		if req.ServiceLength != 0 {
			length = req.ServiceLength
		}
	}

	if length > models.MaxSampleLength {
		return nil, fmt.Errorf("%w: service length must be at most %d, got %d",
			models.ErrInvalidInput, models.MaxSampleLength, length)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	summary, err := r.sampler.Run(runs, length)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Draw produces a random request of the given length. A non-positive length
// means one entry per VNF type; lengths above models.MaxSampleLength are capped.
func (r *Runner) Draw(length int) models.EvaluationRequest {
	if length <= 0 {
		length = r.evaluator.Model().NumVNFTypes()
	}
	length = min(length, models.MaxSampleLength)

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sampler.Draw(length)
}
