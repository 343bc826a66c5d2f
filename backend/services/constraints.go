// ABOUTME: Constraint evaluation for occupancy, link bandwidth and latency
// ABOUTME: Violations are reported as flags and overshoot magnitudes, never as errors

package services

import "github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"

// computeConstraints compares final usage against capacity. All three checks
// always run; a violation of one kind never suppresses the others.
func computeConstraints(model *models.CapacityModel, s *PlacementState, serviceLength int, service []int) {
	for n := range s.occupied {
		capacity := model.Node(n).VMCapacity
		if s.occupied[n] > capacity {
			s.invalidOccupancy = true
			s.constraintOccupancy += s.occupied[n] - capacity
		}
	}

	for n := range s.linkUsed {
		bandwidth := model.Link(n).Bandwidth
		if s.linkUsed[n] > bandwidth {
			s.invalidBandwidth = true
			s.constraintBandwidth += s.linkUsed[n] - bandwidth
		}
	}

	s.cpuLatency = chainLatencyBudget(model, serviceLength, service)
	if s.linkLatency > s.cpuLatency {
		s.invalidLatency = true
		s.constraintLatency = s.linkLatency - s.cpuLatency
	}
}
