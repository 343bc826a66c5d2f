// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Feasibility, per-constraint violation and delta badges

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/icons"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

func levelColors(level StatusLevel) (bg, fg lipgloss.Color) {
	switch level {
	case StatusOK:
		return BadgeOKBg, BadgeOKFg
	case StatusWarning:
		return BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		return BadgeCritBg, BadgeCritFg
	case StatusInfo:
		return BadgeInfoBg, BadgeInfoFg
	default:
		return BadgeNeutralBg, BadgeNeutralFg
	}
}

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	bg, fg := levelColors(level)

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// FeasibilityBadge renders FEASIBLE or VIOLATED for a whole evaluation
func FeasibilityBadge(feasible bool) string {
	if feasible {
		return Badge("FEASIBLE", StatusOK)
	}
	return Badge("VIOLATED", StatusCritical)
}

// ViolationBadge renders one constraint with its magnitude, e.g. "bandwidth +300"
func ViolationBadge(constraint string, violated bool, magnitude float64) string {
	if !violated {
		return Badge(constraint+" ok", StatusOK)
	}
	return Badge(fmt.Sprintf("%s +%s", constraint, formatAmount(magnitude)), StatusCritical)
}

// StatusFromPercent returns the appropriate status level for a percentage value
func StatusFromPercent(percent, warnThreshold, critThreshold float64) StatusLevel {
	if percent >= critThreshold {
		return StatusCritical
	}
	if percent >= warnThreshold {
		return StatusWarning
	}
	return StatusOK
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	bg, _ := levelColors(level)
	style := lipgloss.NewStyle().Foreground(bg)

	switch level {
	case StatusOK:
		return style.Render(icons.CheckOK.String())
	case StatusWarning:
		return style.Render(icons.Warning.String())
	case StatusCritical:
		return style.Render(icons.Critical.String())
	case StatusInfo:
		return style.Render(icons.Info.String())
	default:
		return style.Render("•")
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	bg, _ := levelColors(level)
	return fmt.Sprintf("%s %s", StatusIcon(level), lipgloss.NewStyle().Foreground(bg).Render(text))
}

// DeltaBadge renders a change indicator. For constraint magnitudes a rise is
// bad, so invertColors should be true.
func DeltaBadge(delta float64, unit string, invertColors bool) string {
	var text string
	var level StatusLevel

	switch {
	case delta > 0:
		text = fmt.Sprintf("+%s%s", formatAmount(delta), unit)
		level = StatusOK
		if invertColors {
			level = StatusWarning
		}
	case delta < 0:
		text = fmt.Sprintf("%s%s", formatAmount(delta), unit)
		level = StatusWarning
		if invertColors {
			level = StatusOK
		}
	default:
		text = fmt.Sprintf("0%s", unit)
		level = StatusNeutral
	}

	return Badge(text, level)
}

// TrendIndicator returns an arrow icon for trend direction
func TrendIndicator(current, previous float64) string {
	if current > previous {
		return lipgloss.NewStyle().Foreground(BadgeWarnBg).Render(icons.TrendUp.String())
	} else if current < previous {
		return lipgloss.NewStyle().Foreground(BadgeOKBg).Render(icons.TrendDown.String())
	}
	return lipgloss.NewStyle().Foreground(BadgeNeutralBg).Render("→")
}
