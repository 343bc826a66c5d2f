// ABOUTME: Mutable state owned by a single evaluation pass
// ABOUTME: Occupancy counters, VM slot grid, link usage and derived latency totals

package services

import "github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"

// emptySlot marks a free VM slot in the grid
const emptySlot = -1

// PlacementState is the mutable context of one evaluation. It is sized for one
// capacity model and must be reset before every pass. A state must not be used by
// two evaluations at the same time.
type PlacementState struct {
	// occupied is the running VM demand per node; it may exceed capacity
	occupied []int
	// slots is node x maxVMCapacity, holding the VNF type in each slot
	slots    [][]int
	linkUsed []float64

	firstVM     []int
	bandwidth   float64
	linkLatency float64
	cpuLatency  float64

	constraintOccupancy int
	constraintBandwidth float64
	constraintLatency   float64
	invalidOccupancy    bool
	invalidBandwidth    bool
	invalidLatency      bool
}

// NewPlacementState allocates state sized for the given model
func NewPlacementState(model *models.CapacityModel) *PlacementState {
	s := &PlacementState{
		occupied: make([]int, model.NumNodes()),
		slots:    make([][]int, model.NumNodes()),
		linkUsed: make([]float64, model.NumNodes()),
	}
	for n := range s.slots {
		s.slots[n] = make([]int, model.MaxVMCapacity())
	}
	s.Reset()
	return s
}

// Reset clears every counter and empties the slot grid
func (s *PlacementState) Reset() {
	for n := range s.occupied {
		s.occupied[n] = 0
		s.linkUsed[n] = 0
		for vm := range s.slots[n] {
			s.slots[n][vm] = emptySlot
		}
	}

	s.firstVM = s.firstVM[:0]
	s.bandwidth = 0
	s.linkLatency = 0
	s.cpuLatency = 0

	s.constraintOccupancy = 0
	s.constraintBandwidth = 0
	s.constraintLatency = 0
	s.invalidOccupancy = false
	s.invalidBandwidth = false
	s.invalidLatency = false
}

// Occupied returns the VM demand accumulated on a node
func (s *PlacementState) Occupied(node int) int {
	return s.occupied[node]
}

// Slot returns the VNF type held by a slot, or -1 when free
func (s *PlacementState) Slot(node, vm int) int {
	return s.slots[node][vm]
}

// result copies the state into a detached EvaluationResult
func (s *PlacementState) result(serviceLength int, service, placement []int) models.EvaluationResult {
	return models.EvaluationResult{
		ServiceLength: serviceLength,
		Service:       append([]int(nil), service[:serviceLength]...),
		Placement:     append([]int(nil), placement[:serviceLength]...),
		FirstVMIndex:  append([]int(nil), s.firstVM...),
		Occupancy:     append([]int(nil), s.occupied...),
		LinkUsage:     append([]float64(nil), s.linkUsed...),

		Bandwidth:   s.bandwidth,
		LinkLatency: s.linkLatency,
		CPULatency:  s.cpuLatency,

		InvalidOccupancy:    s.invalidOccupancy,
		InvalidBandwidth:    s.invalidBandwidth,
		InvalidLatency:      s.invalidLatency,
		ConstraintOccupancy: s.constraintOccupancy,
		ConstraintBandwidth: s.constraintBandwidth,
		ConstraintLatency:   s.constraintLatency,
	}
}
