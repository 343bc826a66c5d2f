// ABOUTME: Static capacity tables for compute nodes, node links, and VNF types
// ABOUTME: Built once from the fixed reference scenario and shared read-only

package models

import "fmt"

// Reference scenario. The tables are a fixed dataset, not parameters: a model can
// only be built for exactly this many nodes and VNF types.
var (
	referenceNodeVMs = []int{10, 9, 8, 7, 6, 6, 6, 6, 6, 6}

	referenceLinkBandwidth = []float64{1000, 1000, 500, 400, 100, 100, 100, 100, 100, 100}
	referenceLinkLatency   = []float64{30, 50, 10, 50, 50, 50, 50, 50, 50, 50}

	// Index 0 is the all-zero sentinel VNF type.
	referenceVNFSize      = []int{0, 4, 3, 3, 2, 2, 2, 1, 1}
	referenceVNFBandwidth = []float64{0, 100, 80, 60, 20, 20, 20, 20, 20}
	referenceVNFLatency   = []float64{0, 100, 80, 60, 20, 20, 20, 20, 20}
)

const (
	// ReferenceNumNodes is the node count of the reference scenario
	ReferenceNumNodes = 10
	// ReferenceNumVNFTypes is the VNF type count of the reference scenario (sentinel excluded)
	ReferenceNumVNFTypes = 8
)

// NodeSpec describes the compute capacity of one node
type NodeSpec struct {
	VMCapacity int `json:"vm_capacity" yaml:"vm_capacity"`
}

// LinkSpec describes the link attached to one node
type LinkSpec struct {
	Bandwidth float64 `json:"bandwidth" yaml:"bandwidth"`
	Latency   float64 `json:"latency" yaml:"latency"`
}

// VNFSpec describes the resource footprint of one VNF type
type VNFSpec struct {
	VMSize          int     `json:"vm_size" yaml:"vm_size"`
	BandwidthDemand float64 `json:"bandwidth_demand" yaml:"bandwidth_demand"`
	LatencyBudget   float64 `json:"latency_budget" yaml:"latency_budget"`
}

// CapacityTables is a detached copy of the capacity model, safe to hand to
// read-only consumers such as renderers and API clients.
type CapacityTables struct {
	Nodes         []NodeSpec `json:"nodes" yaml:"nodes"`
	Links         []LinkSpec `json:"links" yaml:"links"`
	VNFs          []VNFSpec  `json:"vnfs" yaml:"vnfs"`
	MaxVMCapacity int        `json:"max_vm_capacity" yaml:"max_vm_capacity"`
}

// NumNodes returns the number of nodes in the tables
func (t CapacityTables) NumNodes() int {
	return len(t.Nodes)
}

// NumVNFTypes returns the number of usable VNF types (sentinel excluded)
func (t CapacityTables) NumVNFTypes() int {
	if len(t.VNFs) == 0 {
		return 0
	}
	return len(t.VNFs) - 1
}

// CapacityModel holds the immutable node, link and VNF tables.
// It is never mutated after construction and may be shared between goroutines.
type CapacityModel struct {
	nodes         []NodeSpec
	links         []LinkSpec
	vnfs          []VNFSpec
	maxVMCapacity int
}

// NewCapacityModel builds the capacity tables for the requested scale.
// It fails with ErrSizeMismatch unless the scale matches the reference scenario.
func NewCapacityModel(numNodes, numVNFTypes int) (*CapacityModel, error) {
	if numNodes != len(referenceNodeVMs) {
		return nil, fmt.Errorf("%w: requested %d nodes, reference dataset has %d",
			ErrSizeMismatch, numNodes, len(referenceNodeVMs))
	}
	if numVNFTypes+1 != len(referenceVNFSize) {
		return nil, fmt.Errorf("%w: requested %d VNF types, reference dataset has %d",
			ErrSizeMismatch, numVNFTypes, len(referenceVNFSize)-1)
	}

	m := &CapacityModel{
		nodes: make([]NodeSpec, numNodes),
		links: make([]LinkSpec, numNodes),
		vnfs:  make([]VNFSpec, numVNFTypes+1),
	}

	for i := 0; i < numNodes; i++ {
		m.nodes[i] = NodeSpec{VMCapacity: referenceNodeVMs[i]}
		m.links[i] = LinkSpec{
			Bandwidth: referenceLinkBandwidth[i],
			Latency:   referenceLinkLatency[i],
		}
		if referenceNodeVMs[i] > m.maxVMCapacity {
			m.maxVMCapacity = referenceNodeVMs[i]
		}
	}

	for i := 0; i <= numVNFTypes; i++ {
		m.vnfs[i] = VNFSpec{
			VMSize:          referenceVNFSize[i],
			BandwidthDemand: referenceVNFBandwidth[i],
			LatencyBudget:   referenceVNFLatency[i],
		}
	}

	return m, nil
}

// NewReferenceModel builds the model for the reference scenario
func NewReferenceModel() *CapacityModel {
	m, err := NewCapacityModel(ReferenceNumNodes, ReferenceNumVNFTypes)
	if err != nil {
		// The reference sizes always match the reference tables.
		panic(err)
	}
	return m
}

// NumNodes returns the number of compute nodes
func (m *CapacityModel) NumNodes() int {
	return len(m.nodes)
}

// NumVNFTypes excludes the sentinel at index 0
func (m *CapacityModel) NumVNFTypes() int {
	return len(m.vnfs) - 1
}

// MaxVMCapacity returns the largest VM capacity of any node
func (m *CapacityModel) MaxVMCapacity() int {
	return m.maxVMCapacity
}

// Node returns the spec of node i
func (m *CapacityModel) Node(i int) NodeSpec {
	return m.nodes[i]
}

// Link returns the spec of the link attached to node i
func (m *CapacityModel) Link(i int) LinkSpec {
	return m.links[i]
}

// VNF returns the spec of VNF type i; index 0 is the all-zero sentinel
func (m *CapacityModel) VNF(i int) VNFSpec {
	return m.vnfs[i]
}

// ValidNode reports whether i indexes a node
func (m *CapacityModel) ValidNode(i int) bool {
	return i >= 0 && i < len(m.nodes)
}

// ValidVNF reports whether i indexes a placeable VNF type. The sentinel is not placeable.
func (m *CapacityModel) ValidVNF(i int) bool {
	return i >= 1 && i < len(m.vnfs)
}

// Tables returns a copy of the capacity tables
func (m *CapacityModel) Tables() CapacityTables {
	t := CapacityTables{
		Nodes:         make([]NodeSpec, len(m.nodes)),
		Links:         make([]LinkSpec, len(m.links)),
		VNFs:          make([]VNFSpec, len(m.vnfs)),
		MaxVMCapacity: m.maxVMCapacity,
	}
	copy(t.Nodes, m.nodes)
	copy(t.Links, m.links)
	copy(t.VNFs, m.vnfs)
	return t
}
