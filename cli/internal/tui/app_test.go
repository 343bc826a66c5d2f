// ABOUTME: Integration tests for TUI app
// ABOUTME: Tests component wiring, evaluation flow, and screen transitions

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/local"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/menu"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/wizard"
)

// remoteEvaluator stands in for the API client, which cannot draw random requests
type remoteEvaluator struct {
	err error
}

func (r remoteEvaluator) Capacity(ctx context.Context) (*models.CapacityTables, error) {
	t := models.NewReferenceModel().Tables()
	return &t, nil
}

func (r remoteEvaluator) Evaluate(ctx context.Context, req *models.EvaluationRequest) (*models.EvaluationResponse, error) {
	if r.err != nil {
		return nil, r.err
	}
	return local.New(nil).Evaluate(ctx, req)
}

// newTestApp returns an app sized to 120x40 with capacity tables loaded
func newTestApp(t *testing.T, ev Evaluator) *App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	app := New(ev, "test")
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app.Update(app.loadCapacity()())
	if app.tables == nil {
		t.Fatal("expected capacity tables to load")
	}
	return app
}

// run executes a command and feeds its message back into the app
func run(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	app.Update(cmd())
}

func TestAppInitialState(t *testing.T) {
	app := New(local.New(nil), "local")

	if app.screen != ScreenMenu {
		t.Errorf("expected initial screen to be ScreenMenu, got %d", app.screen)
	}
	if app.menu == nil {
		t.Error("expected menu to be initialized")
	}
	if app.drawer == nil {
		t.Error("expected the local runner to offer random placements")
	}
}

func TestAppRemoteHasNoDrawer(t *testing.T) {
	app := New(remoteEvaluator{}, "http://localhost:8080")

	if app.drawer != nil {
		t.Error("expected no drawer for a remote evaluator")
	}
}

func TestAppReferenceFlow(t *testing.T) {
	app := newTestApp(t, local.New(nil))

	_, cmd := app.Update(menu.DataSourceSelectedMsg{Source: menu.SourceReference})
	run(t, app, cmd)

	if app.screen != ScreenResult {
		t.Fatalf("expected ScreenResult, got %d", app.screen)
	}
	if app.response == nil || !app.response.Result.Feasible() {
		t.Fatal("expected a feasible reference response")
	}

	view := app.View()
	for _, expected := range []string{"VNF Placement Evaluator", "reference scenario", "FEASIBLE", "e Edit", "r Random"} {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q", expected)
		}
	}
	if strings.Contains(view, "c Compare") {
		t.Error("compare needs two evaluations")
	}
}

func TestAppCompareAfterTwoEvaluations(t *testing.T) {
	app := newTestApp(t, local.New(nil))

	run(t, app, app.evaluate("reference scenario", referenceRequest()))
	run(t, app, app.evaluate("overflow", &models.EvaluationRequest{
		Service:   []int{1, 1, 1},
		Placement: []int{4, 4, 4},
	}))

	if app.previous == nil {
		t.Fatal("expected previous response to be kept")
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if app.screen != ScreenComparison {
		t.Fatalf("expected ScreenComparison, got %d", app.screen)
	}
	view := app.View()
	if !strings.Contains(view, "Placement Comparison") || !strings.Contains(view, "placement became infeasible") {
		t.Errorf("expected comparison content, got:\n%s", view)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if app.screen != ScreenResult {
		t.Errorf("expected back to ScreenResult, got %d", app.screen)
	}
}

func TestAppEvaluationError(t *testing.T) {
	app := newTestApp(t, remoteEvaluator{err: errors.New("backend unavailable")})

	_, cmd := app.Update(menu.DataSourceSelectedMsg{Source: menu.SourceReference})
	run(t, app, cmd)

	if app.screen != ScreenResult {
		t.Fatalf("expected ScreenResult, got %d", app.screen)
	}
	if !strings.Contains(app.View(), "Error: backend unavailable") {
		t.Error("expected the error to be shown")
	}
}

func TestAppRandomWithoutDrawerIsIgnored(t *testing.T) {
	app := newTestApp(t, remoteEvaluator{})
	run(t, app, app.evaluate("reference scenario", referenceRequest()))

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd != nil {
		t.Error("expected no evaluation without a drawer")
	}
	if strings.Contains(app.View(), "r Random") {
		t.Error("expected no random shortcut for a remote evaluator")
	}
}

func TestAppRandomSource(t *testing.T) {
	app := newTestApp(t, local.New(nil))

	_, cmd := app.Update(menu.DataSourceSelectedMsg{Source: menu.SourceRandom})
	run(t, app, cmd)

	if app.requestName != "random placement" {
		t.Errorf("expected random placement, got %q", app.requestName)
	}
	if got := len(app.request.Service); got != models.ReferenceNumVNFTypes {
		t.Errorf("expected %d entries, got %d", models.ReferenceNumVNFTypes, got)
	}
}

func TestAppWizardRoundTrip(t *testing.T) {
	app := newTestApp(t, local.New(nil))

	app.Update(menu.DataSourceSelectedMsg{Source: menu.SourceManual})
	if app.screen != ScreenWizard || app.wizardScreen == nil {
		t.Fatalf("expected ScreenWizard, got %d", app.screen)
	}

	app.Update(wizard.WizardCancelledMsg{})
	if app.screen != ScreenMenu {
		t.Errorf("expected cancel without a result to return to the menu, got %d", app.screen)
	}

	_, cmd := app.Update(wizard.WizardCompleteMsg{Request: &models.EvaluationRequest{
		Service:   []int{2},
		Placement: []int{5},
	}})
	run(t, app, cmd)
	if app.screen != ScreenResult || app.requestName != "manual entry" {
		t.Errorf("expected manual entry result, got screen %d name %q", app.screen, app.requestName)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if app.screen != ScreenWizard {
		t.Fatalf("expected edit to open the wizard, got %d", app.screen)
	}
	if got := app.wizardScreen.GetRequest().Placement; len(got) != 1 || got[0] != 5 {
		t.Errorf("expected wizard pre-filled with the last request, got %v", got)
	}

	app.Update(wizard.WizardCancelledMsg{})
	if app.screen != ScreenResult {
		t.Errorf("expected cancel to return to the result, got %d", app.screen)
	}
}

func TestAppWizardNeedsCapacity(t *testing.T) {
	app := New(local.New(nil), "local")

	if cmd := app.runWizard(nil); cmd != nil {
		t.Error("expected no wizard before capacity tables load")
	}
	if app.err == nil || app.screen != ScreenMenu {
		t.Error("expected an error on the menu screen")
	}
}

func TestAppBackToMenu(t *testing.T) {
	app := newTestApp(t, local.New(nil))
	run(t, app, app.evaluate("reference scenario", referenceRequest()))

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if app.screen != ScreenMenu {
		t.Errorf("expected ScreenMenu, got %d", app.screen)
	}
}

func TestAppFileSource(t *testing.T) {
	app := newTestApp(t, local.New(nil))

	app.Update(menu.DataSourceSelectedMsg{Source: menu.SourceFile})
	if app.screen != ScreenFilePicker || app.filePicker == nil {
		t.Fatalf("expected ScreenFilePicker, got %d", app.screen)
	}
	if !strings.Contains(app.View(), "Load sample request...") {
		t.Error("expected built-in samples to be offered")
	}
}

func TestFormatTimeSince(t *testing.T) {
	tests := []struct {
		ago      time.Duration
		expected string
	}{
		{time.Second, "just now"},
		{30 * time.Second, "30s ago"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
	}
	for _, tc := range tests {
		if got := formatTimeSince(time.Now().Add(-tc.ago)); got != tc.expected {
			t.Errorf("formatTimeSince(-%s) = %q, want %q", tc.ago, got, tc.expected)
		}
	}
}
