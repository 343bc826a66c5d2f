// ABOUTME: Tests for placement bottleneck analysis
// ABOUTME: Validates resource ordering and constraining resource identification

package models

import (
	"strings"
	"testing"
)

func TestRankResourcesByUtilization_SingleResource(t *testing.T) {
	resources := []ResourceUtilization{
		{Name: "VM slots", UsedPercent: 50.0},
	}

	ranked := RankResourcesByUtilization(resources)

	if len(ranked) != 1 {
		t.Fatalf("Expected 1 resource, got %d", len(ranked))
	}
	if !ranked[0].IsConstraining {
		t.Error("Single resource should be marked as constraining")
	}
}

func TestRankResourcesByUtilization_MultipleResources(t *testing.T) {
	tests := []struct {
		name              string
		resources         []ResourceUtilization
		expectedOrder     []string
		expectedConstrain string
	}{
		{
			name: "slots highest",
			resources: []ResourceUtilization{
				{Name: "VM slots", UsedPercent: 78.0},
				{Name: "Link bandwidth", UsedPercent: 32.0},
				{Name: "Latency", UsedPercent: 45.0},
			},
			expectedOrder:     []string{"VM slots", "Latency", "Link bandwidth"},
			expectedConstrain: "VM slots",
		},
		{
			name: "ties keep declaration order",
			resources: []ResourceUtilization{
				{Name: "VM slots", UsedPercent: 50.0},
				{Name: "Link bandwidth", UsedPercent: 50.0},
				{Name: "Latency", UsedPercent: 10.0},
			},
			expectedOrder:     []string{"VM slots", "Link bandwidth", "Latency"},
			expectedConstrain: "VM slots",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := RankResourcesByUtilization(tt.resources)
			for i, name := range tt.expectedOrder {
				if ranked[i].Name != name {
					t.Errorf("Position %d: expected '%s', got '%s'", i, name, ranked[i].Name)
				}
			}
			if c := GetConstrainingResource(tt.resources); c == nil || c.Name != tt.expectedConstrain {
				t.Errorf("Expected constraining '%s', got %+v", tt.expectedConstrain, c)
			}
		})
	}
}

func TestRankResourcesByUtilization_DoesNotModifyInput(t *testing.T) {
	resources := []ResourceUtilization{
		{Name: "Latency", UsedPercent: 10.0},
		{Name: "VM slots", UsedPercent: 90.0},
	}

	RankResourcesByUtilization(resources)

	if resources[0].Name != "Latency" || resources[0].IsConstraining {
		t.Error("Input slice was modified")
	}
}

func TestGetConstrainingResource_Empty(t *testing.T) {
	if GetConstrainingResource(nil) != nil {
		t.Error("Expected nil for empty resources")
	}
}

func TestAnalyzePlacement_HottestNode(t *testing.T) {
	tables := NewReferenceModel().Tables()
	result := EvaluationResult{
		Occupancy:   []int{5, 0, 4, 3, 0, 0, 0, 0, 0, 0},
		LinkUsage:   []float64{200, 0, 200, 200, 0, 0, 0, 0, 0, 0},
		LinkLatency: 150,
		CPULatency:  300,
	}

	analysis := AnalyzePlacement(tables, result)

	if len(analysis.Resources) != 3 {
		t.Fatalf("Expected 3 resources, got %d", len(analysis.Resources))
	}
	top := analysis.Resources[0]
	// Node 3 link: 200 / 400 = 50%, node 0 slots: 5 / 10 = 50%, latency 50%.
	// Node 2 slots: 4 / 8 = 50% too; node 3 slots: 3 / 7 = 42.9%.
	if top.UsedPercent != 50.0 {
		t.Errorf("Expected top utilization 50%%, got %.1f", top.UsedPercent)
	}
	if analysis.ConstrainingResource != "VM slots" {
		t.Errorf("Expected 'VM slots' to win the tie, got '%s'", analysis.ConstrainingResource)
	}
	if top.Node != 0 {
		t.Errorf("Expected hottest slot node 0, got %d", top.Node)
	}
}

func TestAnalyzePlacement_ViolationSummary(t *testing.T) {
	tables := NewReferenceModel().Tables()
	result := EvaluationResult{
		Occupancy:   make([]int, 10),
		LinkUsage:   []float64{0, 0, 0, 0, 300, 0, 0, 0, 0, 0},
		LinkLatency: 100,
		CPULatency:  200,
	}

	analysis := AnalyzePlacement(tables, result)

	if analysis.ConstrainingResource != "Link bandwidth" {
		t.Fatalf("Expected 'Link bandwidth', got '%s'", analysis.ConstrainingResource)
	}
	if analysis.Resources[0].Node != 4 {
		t.Errorf("Expected node 4, got %d", analysis.Resources[0].Node)
	}
	if !strings.Contains(analysis.Summary, "violated on node 4") {
		t.Errorf("Expected violation summary, got '%s'", analysis.Summary)
	}
}

func TestAnalyzePlacement_NoLatencyBudget(t *testing.T) {
	tables := NewReferenceModel().Tables()

	analysis := AnalyzePlacement(tables, EvaluationResult{})

	for _, r := range analysis.Resources {
		if r.Name == "Latency" {
			t.Error("Latency should be skipped when the chain has no budget")
		}
	}
}
