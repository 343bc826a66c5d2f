// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines colors, the service entry palette, borders, and text styles

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	BgDark    = lipgloss.Color("#1F2937") // Dark gray

	// Colors - Extended palette
	Accent  = lipgloss.Color("#8B5CF6") // Lighter purple for highlights
	Surface = lipgloss.Color("#374151") // Empty VM slot background
	Info    = lipgloss.Color("#3B82F6") // Blue - informational

	// EntryColors paints service entries in the placement grid, cycling when a
	// service is longer than the palette.
	EntryColors = []lipgloss.Color{
		"#E6194B", "#3CB44B", "#4363D8", "#F58231",
		"#911EB4", "#42D4F4", "#F032E6", "#BFEF45",
		"#FABED4", "#469990", "#DCBEFF", "#9A6324",
	}

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Frame styles for header/footer
	HeaderStyle = lipgloss.NewStyle().
			Border(lipgloss.Border{
			Top:   "─",
			Left:  "╭",
			Right: "╮",
		}).
		BorderForeground(Muted).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Border(lipgloss.Border{
			Bottom: "─",
			Left:   "╰",
			Right:  "╯",
		}).
		BorderForeground(Muted).
		Padding(0, 1)

	// Key style for keyboard shortcuts
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Value style for emphasized data
	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	// EmptySlot renders a free VM slot in the placement grid
	EmptySlot = lipgloss.NewStyle().
			Foreground(Muted).
			Background(Surface)
)

// EntryColor returns the palette color for the service entry at index i
func EntryColor(i int) lipgloss.Color {
	if i < 0 {
		return Muted
	}
	return EntryColors[i%len(EntryColors)]
}

// EntryStyle returns the grid cell style for the service entry at index i
func EntryStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(BgDark).
		Background(EntryColor(i)).
		Bold(true)
}

// UsageColor picks green, amber or red for a utilization percentage.
// Anything above 100% is an overflow and always red.
func UsageColor(percent float64) lipgloss.Color {
	switch {
	case percent > 100:
		return Danger
	case percent >= 80:
		return Warning
	default:
		return Secondary
	}
}
