// ABOUTME: Result panel for one evaluated placement
// ABOUTME: Shows feasibility, constraint magnitudes, bottleneck and per-node usage bars

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/icons"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/styles"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/widgets"
)

// Dashboard displays an evaluation response against the capacity tables
type Dashboard struct {
	tables *models.CapacityTables
	resp   *models.EvaluationResponse
	width  int
	height int
}

// New creates a dashboard. Either argument may be nil while data is loading.
func New(tables *models.CapacityTables, resp *models.EvaluationResponse, width, height int) *Dashboard {
	return &Dashboard{
		tables: tables,
		resp:   resp,
		width:  width,
		height: height,
	}
}

// Update replaces the displayed response
func (d *Dashboard) Update(resp *models.EvaluationResponse) {
	d.resp = resp
}

// SetTables replaces the capacity tables, e.g. once they finish loading
func (d *Dashboard) SetTables(tables *models.CapacityTables) {
	d.tables = tables
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if d.tables == nil || d.resp == nil {
		return styles.Panel.Width(max(d.width-4, 20)).Render("Loading evaluation...")
	}

	r := d.resp.Result
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(fmt.Sprintf("%s Evaluation Result", icons.Chain.String())))
	sb.WriteString("\n")
	sb.WriteString(d.summaryLine(r))
	sb.WriteString("\n\n")

	badges := []string{widgets.FeasibilityBadge(r.Feasible())}
	badges = append(badges,
		widgets.ViolationBadge("occupancy", r.InvalidOccupancy, float64(r.ConstraintOccupancy)),
		widgets.ViolationBadge("bandwidth", r.InvalidBandwidth, r.ConstraintBandwidth),
		widgets.ViolationBadge("latency", r.InvalidLatency, r.ConstraintLatency),
	)
	sb.WriteString(strings.Join(badges, " "))
	sb.WriteString("\n\n")

	sb.WriteString(d.constraintBlocks(r))
	sb.WriteString("\n\n")

	if summary := d.resp.Bottleneck.Summary; summary != "" {
		sb.WriteString(fmt.Sprintf("%s %s\n\n", icons.Gauge.String(), summary))
	}

	sb.WriteString(d.nodeUsage(r))

	return lipgloss.NewStyle().Width(d.width).Render(sb.String())
}

func (d *Dashboard) summaryLine(r models.EvaluationResult) string {
	line := fmt.Sprintf("%d entries evaluated   bandwidth %s Mbps   link latency %s ms   latency budget %s ms",
		r.ServiceLength,
		formatFloat(r.Bandwidth), formatFloat(r.LinkLatency), formatFloat(r.CPULatency))
	return lipgloss.NewStyle().Foreground(styles.Muted).Render(line)
}

// constraintBlocks lays the three constraint blocks side by side, stacking
// them when the terminal is too narrow
func (d *Dashboard) constraintBlocks(r models.EvaluationResult) string {
	cfg := widgets.DefaultMetricBlockConfig()
	blocks := []string{
		widgets.ConstraintBlock(icons.VNF, "Occupancy", r.InvalidOccupancy, float64(r.ConstraintOccupancy), "slots", cfg),
		widgets.ConstraintBlock(icons.Link, "Bandwidth", r.InvalidBandwidth, r.ConstraintBandwidth, "Mbps", cfg),
		widgets.ConstraintBlock(icons.Latency, "Latency", r.InvalidLatency, r.ConstraintLatency, "ms", cfg),
	}
	if d.width > 0 && d.width < 3*(cfg.Width+1) {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks[0], " ", blocks[1], " ", blocks[2])
}

// nodeUsage renders slot and link bars for every node the chain touches,
// followed by a load profile across all nodes
func (d *Dashboard) nodeUsage(r models.EvaluationResult) string {
	var sb strings.Builder
	cfg := widgets.DefaultBarConfig()
	cfg.Width = 12

	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s Node usage", icons.Node.String())))
	sb.WriteString("\n")

	used := make([]float64, d.tables.NumNodes())
	capacity := make([]float64, d.tables.NumNodes())
	shown := 0
	for n := 0; n < d.tables.NumNodes(); n++ {
		capacity[n] = float64(d.tables.Nodes[n].VMCapacity)
		if n < len(r.Occupancy) {
			used[n] = float64(r.Occupancy[n])
		}
		link := 0.0
		if n < len(r.LinkUsage) {
			link = r.LinkUsage[n]
		}
		if used[n] == 0 && link == 0 {
			continue
		}
		shown++
		sb.WriteString(fmt.Sprintf("node %2d  %s   %s\n", n,
			widgets.UsageBarWithLabel(used[n], capacity[n], "slots", cfg),
			widgets.UsageBarWithLabel(link, d.tables.Links[n].Bandwidth, "Mbps", cfg)))
	}
	if shown == 0 {
		sb.WriteString("no node carries load\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("load profile  %s\n",
		widgets.LoadProfile(used, capacity, styles.Secondary, styles.Warning, styles.Danger)))
	return sb.String()
}

func formatFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
