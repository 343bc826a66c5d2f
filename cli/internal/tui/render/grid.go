// ABOUTME: Draws an evaluated placement as a grid of VM slots per node
// ABOUTME: Read-only view over capacity tables and an evaluation result

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/styles"
)

const (
	cellWidth = 5
	emptyCell = "  ·  "
)

// SlotOwners rebuilds which service entry holds each VM slot, -1 for free slots.
// Slots are never released during an evaluation, so an entry's slots are the
// VMSize consecutive slots starting at its first VM index.
func SlotOwners(tables models.CapacityTables, result models.EvaluationResult) [][]int {
	owners := make([][]int, len(tables.Nodes))
	for n, node := range tables.Nodes {
		owners[n] = make([]int, node.VMCapacity)
		for s := range owners[n] {
			owners[n][s] = -1
		}
	}

	for i := 0; i < evaluatedEntries(result); i++ {
		first := result.FirstVMIndex[i]
		if first == models.InfeasibleVM {
			continue
		}
		node, vnf := result.Placement[i], result.Service[i]
		if node < 0 || node >= len(owners) || vnf < 0 || vnf >= len(tables.VNFs) {
			continue
		}
		for s := first; s < first+tables.VNFs[vnf].VMSize && s < len(owners[node]); s++ {
			owners[node][s] = i
		}
	}
	return owners
}

// Grid renders the constraint header, one row per node and the chain legend
func Grid(tables models.CapacityTables, result models.EvaluationResult) string {
	var sb strings.Builder

	sb.WriteString(Header(result))
	sb.WriteString("\n\n")

	owners := SlotOwners(tables, result)
	width := tables.MaxVMCapacity
	for n := range tables.Nodes {
		sb.WriteString(row(tables, result, owners, n, width))
		sb.WriteString("\n")
	}

	if legend := Legend(result); legend != "" {
		sb.WriteString("\n")
		sb.WriteString(legend)
	}
	if denied := Denied(result); denied != "" {
		sb.WriteString("\n")
		sb.WriteString(denied)
	}

	return strings.TrimRight(sb.String(), "\n")
}

// Header lists the chain totals and the three constraint magnitudes
func Header(result models.EvaluationResult) string {
	totals := fmt.Sprintf("bandwidth %s   link latency %s   cpu latency %s",
		amount(result.Bandwidth), amount(result.LinkLatency), amount(result.CPULatency))

	constraint := func(name string, violated bool, magnitude float64) string {
		text := fmt.Sprintf("%s +%s", name, amount(magnitude))
		if violated {
			return styles.StatusCritical.Render(text)
		}
		return styles.StatusOK.Render(text)
	}

	constraints := strings.Join([]string{
		constraint("occupancy", result.InvalidOccupancy, float64(result.ConstraintOccupancy)),
		constraint("bandwidth", result.InvalidBandwidth, result.ConstraintBandwidth),
		constraint("latency", result.InvalidLatency, result.ConstraintLatency),
	}, "   ")

	return styles.ValueStyle.Render(totals) + "\n" + constraints
}

func row(tables models.CapacityTables, result models.EvaluationResult, owners [][]int, n, width int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("node %2d │", n))

	for s := 0; s < width; s++ {
		switch {
		case s >= len(owners[n]):
			sb.WriteString(strings.Repeat(" ", cellWidth))
		case owners[n][s] < 0:
			sb.WriteString(styles.EmptySlot.Render(emptyCell))
		default:
			entry := owners[n][s]
			label := fmt.Sprintf(" vnf%d", result.Service[entry])
			sb.WriteString(styles.EntryStyle(entry).Render(fit(label)))
		}
	}
	sb.WriteString("│ ")

	used, capacity := 0, tables.Nodes[n].VMCapacity
	if n < len(result.Occupancy) {
		used = result.Occupancy[n]
	}
	usage := fmt.Sprintf("%d/%d", used, capacity)
	if used > capacity {
		usage = styles.StatusCritical.Render(usage + " overflow")
	}
	sb.WriteString(usage)

	return sb.String()
}

// Legend shows the chain in order as vnfN@node, colored per entry
func Legend(result models.EvaluationResult) string {
	n := evaluatedEntries(result)
	if n == 0 {
		return ""
	}
	hops := make([]string, n)
	for i := 0; i < n; i++ {
		hops[i] = lipgloss.NewStyle().Foreground(styles.EntryColor(i)).
			Render(fmt.Sprintf("vnf%d@%d", result.Service[i], result.Placement[i]))
	}
	return "chain: " + strings.Join(hops, " → ")
}

// Denied lists entries that did not fit on their node, or "" when all fit
func Denied(result models.EvaluationResult) string {
	var lines []string
	for i := 0; i < evaluatedEntries(result); i++ {
		if result.FirstVMIndex[i] == models.InfeasibleVM {
			lines = append(lines, fmt.Sprintf("  entry %d: vnf%d did not fit on node %d",
				i, result.Service[i], result.Placement[i]))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return styles.StatusCritical.Render("denied:") + "\n" + strings.Join(lines, "\n")
}

func evaluatedEntries(result models.EvaluationResult) int {
	n := result.ServiceLength
	for _, l := range []int{len(result.FirstVMIndex), len(result.Service), len(result.Placement)} {
		if l < n {
			n = l
		}
	}
	return n
}

func fit(label string) string {
	if len(label) > cellWidth {
		return label[:cellWidth]
	}
	return label + strings.Repeat(" ", cellWidth-len(label))
}

func amount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
