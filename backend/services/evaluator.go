// ABOUTME: Concurrency-safe evaluation facade used by the HTTP API
// ABOUTME: Pools placement states, caches results and records metrics

package services

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/cache"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/metrics"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

// Evaluator serves evaluations from many goroutines over one shared capacity model.
// Each pass borrows a PlacementState from a pool; states are reset before use.
type Evaluator struct {
	model   *models.CapacityModel
	states  sync.Pool
	cache   *cache.Cache
	metrics *metrics.Recorder
}

// NewEvaluator creates an evaluator. The cache and recorder are optional.
func NewEvaluator(model *models.CapacityModel, c *cache.Cache, rec *metrics.Recorder) *Evaluator {
	e := &Evaluator{
		model:   model,
		cache:   c,
		metrics: rec,
	}
	e.states.New = func() interface{} {
		return NewPlacementState(model)
	}
	return e
}

// Model returns the shared capacity model
func (e *Evaluator) Model() *models.CapacityModel {
	return e.model
}

// Evaluate runs one pass for the request. The bool reports whether the result was
// served from cache; cached results are shared and must be treated as read-only.
func (e *Evaluator) Evaluate(req models.EvaluationRequest) (models.EvaluationResult, bool, error) {
	length := req.EffectiveLength()
	if err := ValidatePlacement(e.model, length, req.Service, req.Placement); err != nil {
		e.metrics.ObserveInvalid()
		return models.EvaluationResult{}, false, err
	}

	if e.cache == nil {
		result, err := e.run(length, req.Service, req.Placement)
		return result, false, err
	}

	val, cached, err := e.cache.GetOrCompute(cacheKey(length, req.Service, req.Placement), func() (interface{}, error) {
		return e.run(length, req.Service, req.Placement)
	})
	if err != nil {
		return models.EvaluationResult{}, false, err
	}
	if cached {
		e.metrics.ObserveCacheHit()
	}
	return val.(models.EvaluationResult), cached, nil
}

// run evaluates on a pooled state
func (e *Evaluator) run(length int, service, placement []int) (models.EvaluationResult, error) {
	s := e.states.Get().(*PlacementState)
	defer e.states.Put(s)

	start := time.Now()
	result, err := evaluate(e.model, s, length, service, placement)
	if err != nil {
		return models.EvaluationResult{}, err
	}
	e.metrics.ObserveResult(result, time.Since(start))
	return result, nil
}

// cacheKey identifies an evaluation by its evaluated prefix plus the VNF types of the
// padding, which still set the charged bandwidth. Padding placements are left out.
func cacheKey(length int, service, placement []int) string {
	var sb strings.Builder
	sb.WriteString("eval:")
	for i := 0; i < length; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(service[i]))
		sb.WriteByte('@')
		sb.WriteString(strconv.Itoa(placement[i]))
	}
	if length < len(service) {
		sb.WriteByte('|')
		for i, vnf := range service[length:] {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(vnf))
		}
	}
	return sb.String()
}
