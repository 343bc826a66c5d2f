// ABOUTME: Link usage and latency accumulation along a placed service chain
// ABOUTME: Charges the dominant bandwidth demand at every ingress and egress boundary

package services

import (
	"gonum.org/v1/gonum/floats"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

// computeLinks charges link usage and latency at chain boundaries.
//
// The charged bandwidth is the largest demand across the whole service, padding
// included, while boundaries are only walked over the first serviceLength entries.
//
// An entry is an ingress boundary when it is first or its node differs from the
// previous entry's, and an egress boundary when it is last or its node differs from
// the next entry's. Each boundary charges once, so a node hosting a single isolated
// hop is charged twice.
func computeLinks(model *models.CapacityModel, s *PlacementState, serviceLength int, service, placement []int) {
	demands := make([]float64, len(service))
	for i, vnf := range service {
		demands[i] = model.VNF(vnf).BandwidthDemand
	}
	s.bandwidth = floats.Max(demands)

	for i := 0; i < serviceLength; i++ {
		cpu := placement[i]

		if i == 0 || cpu != placement[i-1] {
			chargeLink(model, s, cpu)
		}
		if i == serviceLength-1 || cpu != placement[i+1] {
			chargeLink(model, s, cpu)
		}
	}
}

func chargeLink(model *models.CapacityModel, s *PlacementState, cpu int) {
	s.linkUsed[cpu] += s.bandwidth
	s.linkLatency += model.Link(cpu).Latency
}

// chainLatencyBudget sums the latency budgets of the evaluated VNFs
func chainLatencyBudget(model *models.CapacityModel, serviceLength int, service []int) float64 {
	budgets := make([]float64, serviceLength)
	for i := 0; i < serviceLength; i++ {
		budgets[i] = model.VNF(service[i]).LatencyBudget
	}
	return floats.Sum(budgets)
}
