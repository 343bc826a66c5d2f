// ABOUTME: Result of evaluating one service placement against the capacity model
// ABOUTME: Carries per-node usage, latency totals and constraint violations

package models

// InfeasibleVM marks a service entry whose VNF did not fit on its node
const InfeasibleVM = -1

// EvaluationResult is the outcome of one evaluation pass.
// Slices are detached copies; mutating them does not affect the engine.
type EvaluationResult struct {
	ServiceLength int   `json:"service_length"`
	Service       []int `json:"service"`
	Placement     []int `json:"placement"`

	// FirstVMIndex holds the first slot granted to each entry, or InfeasibleVM
	FirstVMIndex []int `json:"first_vm_index"`
	// Occupancy is the VM demand per node, including demand that did not fit
	Occupancy []int     `json:"occupancy"`
	LinkUsage []float64 `json:"link_usage"`

	// Bandwidth is the dominant demand charged at every link boundary
	Bandwidth   float64 `json:"bandwidth"`
	LinkLatency float64 `json:"link_latency"`
	CPULatency  float64 `json:"cpu_latency"`

	InvalidOccupancy    bool    `json:"invalid_occupancy"`
	InvalidBandwidth    bool    `json:"invalid_bandwidth"`
	InvalidLatency      bool    `json:"invalid_latency"`
	ConstraintOccupancy int     `json:"constraint_occupancy"`
	ConstraintBandwidth float64 `json:"constraint_bandwidth"`
	ConstraintLatency   float64 `json:"constraint_latency"`
}

// Feasible reports whether no constraint was violated
func (r *EvaluationResult) Feasible() bool {
	return !r.InvalidOccupancy && !r.InvalidBandwidth && !r.InvalidLatency
}

// Violations lists the names of the violated constraints
func (r *EvaluationResult) Violations() []string {
	var v []string
	if r.InvalidOccupancy {
		v = append(v, "occupancy")
	}
	if r.InvalidBandwidth {
		v = append(v, "bandwidth")
	}
	if r.InvalidLatency {
		v = append(v, "latency")
	}
	return v
}
