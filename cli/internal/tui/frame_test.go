// ABOUTME: Tests for header/footer frame layout
// ABOUTME: Ensures the frame renders at the terminal width and stays visible on tall results

package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/local"
)

func TestFrameAlignment(t *testing.T) {
	for _, targetWidth := range []int{60, 80, 100, 120} {
		t.Run(fmt.Sprintf("width_%d", targetWidth), func(t *testing.T) {
			app := New(local.New(nil), "local")
			model, _ := app.Update(tea.WindowSizeMsg{Width: targetWidth, Height: 30})
			app = model.(*App)

			// One column short of the terminal, never below the minimum
			expectedWidth := max(targetWidth-1, minTerminalWidth)

			lines := strings.Split(app.View(), "\n")
			header := lines[0]
			footer := lines[len(lines)-1]

			if !strings.HasPrefix(header, "╭") {
				t.Fatalf("expected header on the first line, got %q", header)
			}
			if w := lipgloss.Width(header); w != expectedWidth {
				t.Errorf("header width: expected %d, got %d", expectedWidth, w)
			}
			if !strings.HasPrefix(footer, "╰") {
				t.Fatalf("expected footer on the last line, got %q", footer)
			}
			if w := lipgloss.Width(footer); w != expectedWidth {
				t.Errorf("footer width: expected %d, got %d", expectedWidth, w)
			}
		})
	}
}

func TestResultScreenKeepsFrameVisible(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	app := New(local.New(nil), "local")
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	app.Update(app.loadCapacity()())
	app.Update(app.evaluate("reference scenario", referenceRequest())())

	if app.screen != ScreenResult {
		t.Fatalf("expected ScreenResult, got %d", app.screen)
	}

	lines := strings.Split(app.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("expected the view to fill exactly 30 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "╭") {
		t.Errorf("expected header at line 0, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[len(lines)-1], "╰") {
		t.Errorf("expected footer at the last line, got %q", lines[len(lines)-1])
	}

	// Scrolling to the bottom reveals the placement grid
	app.viewport.GotoBottom()
	if !strings.Contains(app.View(), "chain:") {
		t.Errorf("expected the placement legend after scrolling to the end")
	}
}
