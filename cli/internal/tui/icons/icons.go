// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides node, link, latency and VNF glyphs across terminal capabilities

package icons

import (
	"os"
	"strings"
	"sync"
)

// EnvNerdFonts forces Nerd Font glyphs on ("1"/"true") or off (anything else)
const EnvNerdFonts = "VNF_PLACEMENT_NERD_FONTS"

var (
	useNerdFonts     bool
	nerdFontDetected sync.Once
)

// detectNerdFonts checks if Nerd Fonts should be used
func detectNerdFonts() bool {
	if env := os.Getenv(EnvNerdFonts); env != "" {
		return env == "1" || strings.ToLower(env) == "true"
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")

	// Terminals that usually ship with a patched font
	nerdFontTerminals := []string{
		"iTerm.app",
		"alacritty",
		"WezTerm",
		"kitty",
		"ghostty",
	}

	for _, t := range nerdFontTerminals {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}

	if os.Getenv("NERD_FONTS") == "1" {
		return true
	}

	return false
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	nerdFontDetected.Do(func() {
		useNerdFonts = detectNerdFonts()
	})
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

var (
	// Resources
	Node    = Icon{"󰒋", "▣"} // nf-md-server
	Link    = Icon{"󰌘", "⇄"} // nf-md-lan_connect
	Latency = Icon{"󰔛", "◷"} // nf-md-timer_outline
	VNF     = Icon{"󰆧", "□"} // nf-md-cube_outline
	Chain   = Icon{"󰌷", "⛓"} // nf-md-link_variant

	// Status indicators
	CheckOK  = Icon{"", "✓"} // nf-oct-check_circle
	Warning  = Icon{"", "⚠"} // nf-oct-alert
	Critical = Icon{"", "✗"} // nf-oct-x_circle
	Info     = Icon{"", "ℹ"} // nf-oct-info

	// Charts
	TrendUp   = Icon{"󰄬", "↗"} // nf-md-trending_up
	TrendDown = Icon{"󰄰", "↘"} // nf-md-trending_down
	Gauge     = Icon{"󰓅", "◐"} // nf-md-gauge

	// Actions
	Wizard = Icon{"󰂓", "★"} // nf-md-auto_fix
	Back   = Icon{"󰁍", "←"} // nf-md-arrow_left
	Quit   = Icon{"󰗼", "×"} // nf-md-exit_to_app

	// Application
	App = Icon{"󰛳", "◈"} // nf-md-network
)
