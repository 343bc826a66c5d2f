// ABOUTME: Multi-resource bottleneck analysis for an evaluated placement
// ABOUTME: Ranks VM slots, link bandwidth and latency by utilization of their budget

package models

import (
	"fmt"
	"sort"
)

// ResourceUtilization represents the utilization of a single resource type.
// Node is the hottest node for per-node resources and -1 for chain-wide ones.
type ResourceUtilization struct {
	Name           string  `json:"name"`
	Node           int     `json:"node"`
	UsedPercent    float64 `json:"used_percent"`
	TotalCapacity  float64 `json:"total_capacity"`
	UsedCapacity   float64 `json:"used_capacity"`
	Unit           string  `json:"unit"`
	IsConstraining bool    `json:"is_constraining"`
}

// BottleneckAnalysis represents the complete bottleneck analysis result
type BottleneckAnalysis struct {
	Resources            []ResourceUtilization `json:"resources"`
	ConstrainingResource string                `json:"constraining_resource"`
	Summary              string                `json:"summary"`
}

// RankResourcesByUtilization sorts resources by utilization percentage in descending order
// and marks the highest utilization resource as constraining.
func RankResourcesByUtilization(resources []ResourceUtilization) []ResourceUtilization {
	if len(resources) == 0 {
		return resources
	}

	ranked := make([]ResourceUtilization, len(resources))
	copy(ranked, resources)

	// Stable sort keeps declaration order for ties
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].UsedPercent > ranked[j].UsedPercent
	})

	for i := range ranked {
		ranked[i].IsConstraining = (i == 0)
	}

	return ranked
}

// GetConstrainingResource returns the resource with the highest utilization
func GetConstrainingResource(resources []ResourceUtilization) *ResourceUtilization {
	if len(resources) == 0 {
		return nil
	}

	ranked := RankResourcesByUtilization(resources)
	return &ranked[0]
}

// AnalyzePlacement performs bottleneck analysis on an evaluated placement
func AnalyzePlacement(tables CapacityTables, result EvaluationResult) BottleneckAnalysis {
	resources := buildResourceList(tables, result)
	ranked := RankResourcesByUtilization(resources)

	analysis := BottleneckAnalysis{
		Resources: ranked,
	}

	if len(ranked) > 0 {
		analysis.ConstrainingResource = ranked[0].Name
		analysis.Summary = buildSummary(ranked)
	}

	return analysis
}

// buildResourceList picks the hottest node for each per-node resource
func buildResourceList(tables CapacityTables, result EvaluationResult) []ResourceUtilization {
	var resources []ResourceUtilization

	if slots, ok := hottestNode(len(tables.Nodes), func(n int) (float64, float64) {
		if n >= len(result.Occupancy) {
			return 0, float64(tables.Nodes[n].VMCapacity)
		}
		return float64(result.Occupancy[n]), float64(tables.Nodes[n].VMCapacity)
	}); ok {
		slots.Name = "VM slots"
		slots.Unit = "slots"
		resources = append(resources, slots)
	}

	if bw, ok := hottestNode(len(tables.Links), func(n int) (float64, float64) {
		if n >= len(result.LinkUsage) {
			return 0, tables.Links[n].Bandwidth
		}
		return result.LinkUsage[n], tables.Links[n].Bandwidth
	}); ok {
		bw.Name = "Link bandwidth"
		bw.Unit = "Mbps"
		resources = append(resources, bw)
	}

	// Latency budget is the chain's summed VNF budgets
	if result.CPULatency > 0 {
		resources = append(resources, ResourceUtilization{
			Name:          "Latency",
			Node:          -1,
			UsedPercent:   result.LinkLatency / result.CPULatency * 100.0,
			TotalCapacity: result.CPULatency,
			UsedCapacity:  result.LinkLatency,
			Unit:          "ms",
		})
	}

	return resources
}

// hottestNode returns the node with the highest used/total ratio
func hottestNode(n int, usage func(int) (used, total float64)) (ResourceUtilization, bool) {
	best := ResourceUtilization{Node: -1}
	found := false
	for i := 0; i < n; i++ {
		used, total := usage(i)
		if total <= 0 {
			continue
		}
		pct := used / total * 100.0
		if !found || pct > best.UsedPercent {
			best = ResourceUtilization{
				Node:          i,
				UsedPercent:   pct,
				TotalCapacity: total,
				UsedCapacity:  used,
			}
			found = true
		}
	}
	return best, found
}

// buildSummary generates a human-readable summary of the bottleneck analysis
func buildSummary(ranked []ResourceUtilization) string {
	if len(ranked) == 0 {
		return "No resources to analyze."
	}

	c := ranked[0]
	where := "across the chain"
	if c.Node >= 0 {
		where = fmt.Sprintf("on node %d", c.Node)
	}
	if c.UsedPercent > 100 {
		return fmt.Sprintf("%s is violated %s at %.1f%% of capacity.", c.Name, where, c.UsedPercent)
	}
	return fmt.Sprintf("%s is your constraint %s at %.1f%% utilization.", c.Name, where, c.UsedPercent)
}
