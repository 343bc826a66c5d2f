// ABOUTME: Compact metric block widget for the result view
// ABOUTME: Bordered panels for constraint magnitudes and hottest-node usage

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/icons"
)

// MetricBlockConfig holds configuration for a metric block
type MetricBlockConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	ValueColor  lipgloss.Color
}

// DefaultMetricBlockConfig returns sensible defaults
func DefaultMetricBlockConfig() MetricBlockConfig {
	return MetricBlockConfig{
		Width:       24,
		BorderColor: lipgloss.Color("#6B7280"), // Muted gray
		TitleColor:  lipgloss.Color("#7C3AED"), // Purple
		ValueColor:  lipgloss.Color("#F9FAFB"), // Light
	}
}

// MetricBlock renders a compact metric display block
func MetricBlock(icon icons.Icon, title, value, subtitle string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 24
	}
	innerWidth := config.Width - 4

	valueStyle := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	return box(icon, title, config, innerWidth,
		valueStyle.Render(truncate(value, innerWidth)),
		subtitleStyle.Render(truncate(subtitle, innerWidth)),
	)
}

// ConstraintBlock renders one constraint: its status and how far it is exceeded
func ConstraintBlock(icon icons.Icon, constraint string, violated bool, magnitude float64, unit string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 24
	}
	innerWidth := config.Width - 4

	status := StatusText("within limits", StatusOK)
	value := "0 " + unit
	if violated {
		status = StatusText("violated", StatusCritical)
		value = fmt.Sprintf("+%s %s", formatAmount(magnitude), unit)
	}

	valueStyle := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true)
	return box(icon, constraint, config, innerWidth,
		valueStyle.Render(truncate(value, innerWidth)),
		status,
	)
}

// UsageBlock renders the usage of one resource with a compact bar
func UsageBlock(icon icons.Icon, title string, used, capacity float64, details string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 24
	}
	innerWidth := config.Width - 4

	percent := UsagePercent(used, capacity)
	level := StatusOK
	color := BadgeOKBg
	switch {
	case percent > 100:
		level, color = StatusCritical, BadgeCritBg
	case percent >= 80:
		level, color = StatusWarning, BadgeWarnBg
	}

	percentLine := fmt.Sprintf("%s %s",
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%3.0f%%", percent)),
		StatusIcon(level))
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	return box(icon, title, config, innerWidth,
		percentLine,
		CompactBar(percent, innerWidth, color),
		detailStyle.Render(truncate(details, innerWidth)),
	)
}

// box draws the title-in-border frame around the given lines
func box(icon icons.Icon, title string, config MetricBlockConfig, innerWidth int, lines ...string) string {
	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)
	titleStr := truncate(fmt.Sprintf("%s %s", icon.String(), title), innerWidth)

	out := make([]string, 0, len(lines)+2)
	out = append(out, borderStyle.Render("┌─ ")+
		lipgloss.NewStyle().Foreground(config.TitleColor).Render(titleStr)+
		borderStyle.Render(" "+strings.Repeat("─", max(0, innerWidth-lipgloss.Width(titleStr)-1))+"┐"))

	for _, line := range lines {
		pad := max(0, innerWidth-lipgloss.Width(line))
		out = append(out, borderStyle.Render("│  ")+line+strings.Repeat(" ", pad)+borderStyle.Render("│"))
	}

	out = append(out, borderStyle.Render(fmt.Sprintf("└%s┘", strings.Repeat("─", innerWidth+2))))
	return strings.Join(out, "\n")
}

// truncate shortens a string to maxLen runes with an ellipsis if needed
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
