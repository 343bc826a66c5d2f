// ABOUTME: Usage bar for per-node VM slots and link bandwidth
// ABOUTME: Colors by utilization zone and marks demand beyond capacity as overflow

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OverflowMarker is appended to a bar whose demand exceeds its capacity
const OverflowMarker = "▶"

// BarConfig holds configuration for usage bars
type BarConfig struct {
	Width         int
	WarnThreshold float64 // Percentage where the warning zone starts (default 80)
	OKColor       lipgloss.Color
	WarnColor     lipgloss.Color
	OverColor     lipgloss.Color
	EmptyColor    lipgloss.Color
}

// DefaultBarConfig returns sensible defaults
func DefaultBarConfig() BarConfig {
	return BarConfig{
		Width:         20,
		WarnThreshold: 80,
		OKColor:       lipgloss.Color("#10B981"), // Green
		WarnColor:     lipgloss.Color("#F59E0B"), // Amber
		OverColor:     lipgloss.Color("#EF4444"), // Red
		EmptyColor:    lipgloss.Color("#374151"), // Dark gray
	}
}

// UsagePercent returns used as a percentage of capacity. Zero capacity with
// positive demand counts as a full overflow.
func UsagePercent(used, capacity float64) float64 {
	if capacity <= 0 {
		if used > 0 {
			return 200
		}
		return 0
	}
	return used / capacity * 100
}

// UsageBar renders demand against capacity. Demand beyond capacity fills the
// whole bar in the overflow color and appends OverflowMarker.
func UsageBar(used, capacity float64, config BarConfig) string {
	if config.Width <= 0 {
		config.Width = 20
	}

	percent := UsagePercent(used, capacity)
	overflow := percent > 100

	filled := int(clampPercent(percent) / 100.0 * float64(config.Width))
	color := config.OKColor
	switch {
	case overflow:
		color = config.OverColor
	case percent >= config.WarnThreshold:
		color = config.WarnColor
	}

	var bar strings.Builder
	bar.WriteString("[")
	bar.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)))
	bar.WriteString(lipgloss.NewStyle().Foreground(config.EmptyColor).Render(strings.Repeat("░", config.Width-filled)))
	bar.WriteString("]")
	if overflow {
		bar.WriteString(lipgloss.NewStyle().Foreground(config.OverColor).Render(OverflowMarker))
	}
	return bar.String()
}

// UsageBarWithLabel renders a usage bar followed by "used/capacity unit" and a status icon
func UsageBarWithLabel(used, capacity float64, unit string, config BarConfig) string {
	bar := UsageBar(used, capacity, config)
	percent := UsagePercent(used, capacity)

	level := StatusOK
	color := config.OKColor
	switch {
	case percent > 100:
		level, color = StatusCritical, config.OverColor
	case percent >= config.WarnThreshold:
		level, color = StatusWarning, config.WarnColor
	}

	label := lipgloss.NewStyle().Foreground(color).Render(
		fmt.Sprintf("%s/%s %s", formatAmount(used), formatAmount(capacity), unit))
	return fmt.Sprintf("%s %s %s", bar, label, StatusIcon(level))
}

// CompactBar renders a minimal bar for tight spaces
func CompactBar(percent float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = 10
	}

	filled := int(clampPercent(percent) / 100.0 * float64(width))

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▓", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Render(strings.Repeat("░", width-filled))
}

func clampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// formatAmount drops the fraction for whole numbers
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
