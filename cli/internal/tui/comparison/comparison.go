// ABOUTME: Comparison view showing a previous and current placement evaluation
// ABOUTME: Displays metric deltas and constraints that became violated or resolved

package comparison

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/styles"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/widgets"
)

// Comparison displays two evaluations of the same capacity model
type Comparison struct {
	previous *models.EvaluationResult
	current  *models.EvaluationResult
	width    int
}

// New creates a new comparison view
func New(previous, current *models.EvaluationResult, width int) *Comparison {
	return &Comparison{
		previous: previous,
		current:  current,
		width:    width,
	}
}

type metric struct {
	name string
	unit string
	prev float64
	cur  float64
	// higherIsBetter flips the delta coloring, e.g. for the latency budget
	higherIsBetter bool
}

func metrics(prev, cur *models.EvaluationResult) []metric {
	return []metric{
		{name: "Bandwidth", unit: " Mbps", prev: prev.Bandwidth, cur: cur.Bandwidth},
		{name: "Link latency", unit: " ms", prev: prev.LinkLatency, cur: cur.LinkLatency},
		{name: "Latency budget", unit: " ms", prev: prev.CPULatency, cur: cur.CPULatency, higherIsBetter: true},
		{name: "Occupancy overshoot", unit: " slots", prev: float64(prev.ConstraintOccupancy), cur: float64(cur.ConstraintOccupancy)},
		{name: "Bandwidth overshoot", unit: " Mbps", prev: prev.ConstraintBandwidth, cur: cur.ConstraintBandwidth},
		{name: "Latency overshoot", unit: " ms", prev: prev.ConstraintLatency, cur: cur.ConstraintLatency},
	}
}

// View renders the comparison
func (c *Comparison) View() string {
	if c.previous == nil || c.current == nil {
		return "No comparison data: evaluate a second placement first"
	}

	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Placement Comparison"))
	sb.WriteString("\n")

	colWidth := max((c.width-4)/2, 30)
	col := lipgloss.NewStyle().Width(colWidth)
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		col.Render(renderResult("Previous", c.previous)),
		"  ",
		col.Render(renderResult("Current", c.current)),
	))
	sb.WriteString("\n\n")

	sb.WriteString(styles.Subtitle.Render("Changes"))
	sb.WriteString("\n")
	for _, m := range metrics(c.previous, c.current) {
		sb.WriteString(renderMetric(m))
		sb.WriteString("\n")
	}

	if notes := transitions(c.previous, c.current); len(notes) > 0 {
		sb.WriteString("\n")
		for _, n := range notes {
			sb.WriteString("  " + n + "\n")
		}
	}

	return lipgloss.NewStyle().Width(c.width).Render(sb.String())
}

func renderResult(title string, r *models.EvaluationResult) string {
	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(widgets.FeasibilityBadge(r.Feasible()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Service: %s\n", joinInts(prefix(r.Service, r.ServiceLength))))
	sb.WriteString(fmt.Sprintf("Nodes:   %s\n", joinInts(prefix(r.Placement, r.ServiceLength))))
	if v := r.Violations(); len(v) > 0 {
		sb.WriteString(fmt.Sprintf("Violated: %s\n", strings.Join(v, ", ")))
	}
	return sb.String()
}

func renderMetric(m metric) string {
	delta := m.cur - m.prev
	trend := widgets.TrendIndicator(m.cur, m.prev)
	if m.higherIsBetter {
		trend = widgets.TrendIndicator(m.prev, m.cur)
	}
	return fmt.Sprintf("  %-20s %8s → %-8s %s %s",
		m.name, amount(m.prev), amount(m.cur),
		widgets.DeltaBadge(delta, m.unit, !m.higherIsBetter), trend)
}

// transitions lists constraints that changed state between the two results
func transitions(prev, cur *models.EvaluationResult) []string {
	var notes []string

	switch {
	case prev.Feasible() && !cur.Feasible():
		notes = append(notes, widgets.StatusText("placement became infeasible", widgets.StatusCritical))
	case !prev.Feasible() && cur.Feasible():
		notes = append(notes, widgets.StatusText("placement is now feasible", widgets.StatusOK))
	}

	checks := []struct {
		name     string
		was, now bool
	}{
		{"occupancy", prev.InvalidOccupancy, cur.InvalidOccupancy},
		{"bandwidth", prev.InvalidBandwidth, cur.InvalidBandwidth},
		{"latency", prev.InvalidLatency, cur.InvalidLatency},
	}
	for _, ch := range checks {
		switch {
		case !ch.was && ch.now:
			notes = append(notes, widgets.StatusText(ch.name+" constraint newly violated", widgets.StatusWarning))
		case ch.was && !ch.now:
			notes = append(notes, widgets.StatusText(ch.name+" constraint resolved", widgets.StatusOK))
		}
	}
	return notes
}

// prefix returns the evaluated entries of a chain
func prefix(values []int, length int) []int {
	return values[:min(max(length, 0), len(values))]
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}

func amount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
