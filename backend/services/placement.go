// ABOUTME: Placement engine that allocates VM slots for a service chain
// ABOUTME: Tracks demand per node independently of the slots actually granted

package services

import (
	"log/slog"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

// Engine evaluates placements against one capacity model. It owns a single
// PlacementState and is not safe for concurrent use; build one engine per goroutine
// or use Evaluator, which pools states.
type Engine struct {
	model *models.CapacityModel
	state *PlacementState
}

// NewEngine builds the capacity model for the requested scale and an engine over it
func NewEngine(numNodes, numVNFTypes int) (*Engine, error) {
	model, err := models.NewCapacityModel(numNodes, numVNFTypes)
	if err != nil {
		return nil, err
	}
	return NewEngineForModel(model), nil
}

// NewEngineForModel creates an engine over an existing, shared capacity model
func NewEngineForModel(model *models.CapacityModel) *Engine {
	return &Engine{
		model: model,
		state: NewPlacementState(model),
	}
}

// Model returns the read-only capacity model
func (e *Engine) Model() *models.CapacityModel {
	return e.model
}

// State exposes the engine's state after the last pass
func (e *Engine) State() *PlacementState {
	return e.state
}

// Clear resets all mutable state. The engine then behaves as if freshly built.
func (e *Engine) Clear() {
	e.state.Reset()
}

// Evaluate places the first serviceLength entries of service onto placement and
// reports constraint violations. Malformed input fails with ErrInvalidInput before
// any state is touched; constraint violations are reported in the result, never
// as errors.
func (e *Engine) Evaluate(serviceLength int, service, placement []int) (models.EvaluationResult, error) {
	return evaluate(e.model, e.state, serviceLength, service, placement)
}

// evaluate runs one full pass using the given state
func evaluate(model *models.CapacityModel, s *PlacementState, serviceLength int, service, placement []int) (models.EvaluationResult, error) {
	if err := ValidatePlacement(model, serviceLength, service, placement); err != nil {
		return models.EvaluationResult{}, err
	}

	s.Reset()

	for i := 0; i < serviceLength; i++ {
		placeVNF(model, s, placement[i], service[i])
	}
	computeLinks(model, s, serviceLength, service, placement)
	computeConstraints(model, s, serviceLength, service)

	result := s.result(serviceLength, service, placement)
	slog.Debug("Placement evaluated",
		"service_length", serviceLength,
		"link_latency", result.LinkLatency,
		"cpu_latency", result.CPULatency,
		"violations", result.Violations(),
	)
	return result, nil
}

// placeVNF allocates slots for one service entry. Slots are granted only when the
// node's declared capacity has room, but demand is always added to the node's
// occupancy so overflow can be measured afterwards.
func placeVNF(model *models.CapacityModel, s *PlacementState, cpu, vnf int) {
	need := model.VNF(vnf).VMSize
	capacity := model.Node(cpu).VMCapacity

	first := models.InfeasibleVM
	if need <= capacity-s.occupied[cpu] {
		first = claimSlots(s.slots[cpu][:capacity], need, vnf)
	}

	s.occupied[cpu] += need
	s.firstVM = append(s.firstVM, first)
}

// claimSlots fills the first need free slots of row, scanning from slot 0, and
// returns the index of the first one. Filled slots never outnumber a node's
// occupancy, so a granted entry always finds need free slots within capacity.
func claimSlots(row []int, need, vnf int) int {
	first := models.InfeasibleVM
	for vm, claimed := 0, 0; claimed < need; vm++ {
		if row[vm] != emptySlot {
			continue
		}
		row[vm] = vnf
		if claimed == 0 {
			first = vm
		}
		claimed++
	}
	return first
}
