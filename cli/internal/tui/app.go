// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state, runs evaluations, and routes keyboard input to child components

package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/comparison"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/dashboard"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/debuglog"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/filepicker"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/icons"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/menu"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/recentfiles"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/render"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/samples"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/styles"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/wizard"
)

// Evaluator is the backend the TUI evaluates against: the in-process runner
// or the API client
type Evaluator interface {
	Capacity(ctx context.Context) (*models.CapacityTables, error)
	Evaluate(ctx context.Context, req *models.EvaluationRequest) (*models.EvaluationResponse, error)
}

// Drawer produces random requests. Only in-process evaluators implement it.
type Drawer interface {
	Draw(length int) models.EvaluationRequest
}

// Screen represents the current TUI screen
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenFilePicker
	ScreenResult
	ScreenComparison
	ScreenWizard
)

const (
	minTerminalWidth = 80
	// header and footer lines around the content
	frameOverhead = 2

	evaluateTimeout = 10 * time.Second
)

// capacityLoadedMsg is sent when the capacity tables are fetched
type capacityLoadedMsg struct {
	tables *models.CapacityTables
	err    error
}

// evaluatedMsg is sent when an evaluation completes
type evaluatedMsg struct {
	name string
	req  *models.EvaluationRequest
	resp *models.EvaluationResponse
	err  error
}

// App is the root model for the TUI
type App struct {
	evaluator Evaluator
	drawer    Drawer
	backend   string // shown in the header, e.g. "local" or the API URL

	screen     Screen
	width      int
	height     int
	err        error
	dataSource menu.DataSource
	lastUpdate time.Time

	tables      *models.CapacityTables
	request     *models.EvaluationRequest
	requestName string
	response    *models.EvaluationResponse
	previous    *models.EvaluationResponse

	dashboard *dashboard.Dashboard
	compView  *comparison.Comparison
	viewport  viewport.Model

	// Child models
	menu         *menu.Menu
	filePicker   *filepicker.FilePicker
	wizardScreen *wizard.Wizard

	recentFiles *recentfiles.RecentFiles
}

// New creates a new TUI application. Random placements are offered when the
// evaluator also implements Drawer.
func New(ev Evaluator, backend string) *App {
	drawer, _ := ev.(Drawer)
	return &App{
		evaluator:   ev,
		drawer:      drawer,
		backend:     backend,
		screen:      ScreenMenu,
		recentFiles: recentfiles.New(recentfiles.DefaultConfigDir()),
		menu:        menu.New(drawer != nil),
		viewport:    viewport.New(minTerminalWidth, 0),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.menu.Init(), a.loadCapacity())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		if a.menu != nil {
			a.menu.Update(msg)
		}
		if a.filePicker != nil {
			a.filePicker.Update(msg)
		}
		if a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case ScreenMenu:
			return a.updateMenu(msg)
		case ScreenFilePicker:
			return a.updateFilePicker(msg)
		case ScreenResult:
			return a.updateResult(msg)
		case ScreenComparison:
			return a.updateComparison(msg)
		case ScreenWizard:
			return a.updateWizard(msg)
		}

	case menu.DataSourceSelectedMsg:
		return a.handleDataSourceSelected(msg)

	case menu.CancelledMsg:
		return a, tea.Quit

	case filepicker.FileSelectedMsg:
		if msg.Recent {
			if err := a.recentFiles.Add(msg.Path); err != nil {
				debuglog.Error("save recent files", err)
			}
		}
		return a, a.evaluate(filepath.Base(msg.Path), msg.Request)

	case filepicker.CancelledMsg:
		a.screen = ScreenMenu
		a.filePicker = nil
		return a, nil

	case wizard.WizardCompleteMsg:
		a.wizardScreen = nil
		return a, a.evaluate("manual entry", msg.Request)

	case wizard.WizardCancelledMsg:
		a.wizardScreen = nil
		if a.response != nil {
			a.screen = ScreenResult
		} else {
			a.screen = ScreenMenu
		}
		return a, nil

	case capacityLoadedMsg:
		if msg.err != nil {
			debuglog.Error("load capacity", msg.err)
			a.err = msg.err
			return a, nil
		}
		a.tables = msg.tables
		a.refreshResult()
		return a, nil

	case evaluatedMsg:
		return a.handleEvaluated(msg)

	default:
		// huh forms drive themselves with internal messages
		if a.screen == ScreenWizard && a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
		if a.screen == ScreenMenu && a.menu != nil {
			return a.updateMenu(msg)
		}
	}

	return a, nil
}

func (a *App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.menu == nil {
		return a, nil
	}
	model, cmd := a.menu.Update(msg)
	a.menu = model.(*menu.Menu)
	return a, cmd
}

func (a *App) updateFilePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.filePicker == nil {
		return a, nil
	}
	model, cmd := a.filePicker.Update(msg)
	a.filePicker = model.(*filepicker.FilePicker)
	return a, cmd
}

func (a *App) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "e":
		return a, a.runWizard(a.request)
	case "c":
		if a.previous != nil && a.response != nil {
			a.compView = comparison.New(&a.previous.Result, &a.response.Result, a.contentWidth())
			a.screen = ScreenComparison
		}
		return a, nil
	case "r":
		if a.drawer != nil {
			req := a.drawer.Draw(0)
			return a, a.evaluate("random placement", &req)
		}
		return a, nil
	case "b":
		return a.backToMenu()
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

func (a *App) updateComparison(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "c":
		a.screen = ScreenResult
		a.compView = nil
	case "e":
		return a, a.runWizard(a.request)
	}
	return a, nil
}

func (a *App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.wizardScreen == nil {
		return a, nil
	}
	model, cmd := a.wizardScreen.Update(msg)
	a.wizardScreen = model.(*wizard.Wizard)
	return a, cmd
}

func (a *App) backToMenu() (tea.Model, tea.Cmd) {
	a.screen = ScreenMenu
	a.err = nil
	a.menu = menu.New(a.drawer != nil)
	return a, a.menu.Init()
}

func (a *App) handleDataSourceSelected(msg menu.DataSourceSelectedMsg) (tea.Model, tea.Cmd) {
	a.dataSource = msg.Source
	a.err = nil

	switch msg.Source {
	case menu.SourceReference:
		return a, a.evaluate("reference scenario", referenceRequest())

	case menu.SourceManual:
		return a, a.runWizard(a.request)

	case menu.SourceFile:
		recentList, err := a.recentFiles.Load()
		if err != nil {
			debuglog.Error("load recent files", err)
		}
		a.filePicker = filepicker.New(recentList, samples.All())
		a.filePicker.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.screen = ScreenFilePicker
		return a, nil

	case menu.SourceRandom:
		if a.drawer == nil {
			return a, nil
		}
		req := a.drawer.Draw(0)
		return a, a.evaluate("random placement", &req)
	}

	return a, nil
}

func (a *App) handleEvaluated(msg evaluatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		debuglog.Error("evaluate", msg.err)
		if a.screen == ScreenFilePicker && a.filePicker != nil {
			a.filePicker.SetError(msg.err.Error())
			return a, nil
		}
		a.err = msg.err
		a.screen = ScreenResult
		return a, nil
	}

	debuglog.Debug("evaluation finished",
		"name", msg.name,
		"id", msg.resp.ID,
		"feasible", msg.resp.Result.Feasible(),
		"violations", strings.Join(msg.resp.Result.Violations(), ","))

	a.err = nil
	a.previous = a.response
	a.response = msg.resp
	a.request = msg.req
	a.requestName = msg.name
	a.lastUpdate = time.Now()
	a.filePicker = nil

	a.refreshResult()
	a.screen = ScreenResult
	return a, nil
}

// refreshResult rebuilds the scrollable result content
func (a *App) refreshResult() {
	if a.response == nil {
		return
	}
	if a.dashboard == nil {
		a.dashboard = dashboard.New(a.tables, a.response, a.contentWidth(), a.contentHeight())
	} else {
		a.dashboard.SetTables(a.tables)
		a.dashboard.SetSize(a.contentWidth(), a.contentHeight())
		a.dashboard.Update(a.response)
	}

	content := a.dashboard.View()
	if a.tables != nil {
		content += "\n\n" + styles.Subtitle.Render("Placement") + "\n" + render.Grid(*a.tables, a.response.Result)
	}
	a.viewport.SetContent(content)
}

func (a *App) resize() {
	a.viewport.Width = a.contentWidth()
	a.viewport.Height = a.contentHeight()
	if a.compView != nil && a.previous != nil && a.response != nil {
		a.compView = comparison.New(&a.previous.Result, &a.response.Result, a.contentWidth())
	}
	a.refreshResult()
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenFilePicker:
		content = a.viewFilePicker()
	case ScreenResult:
		content = a.viewResult()
	case ScreenComparison:
		content = a.viewComparison()
	case ScreenWizard:
		content = a.viewWizard()
	default:
		content = a.viewMenu()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewMenu() string {
	if a.menu == nil {
		return ""
	}
	view := a.menu.View()
	if a.err != nil {
		view += "\n" + styles.StatusCritical.Render("Error: "+a.err.Error())
	}
	return view
}

func (a *App) viewFilePicker() string {
	if a.filePicker != nil {
		return a.filePicker.View()
	}
	return ""
}

func (a *App) viewWizard() string {
	if a.wizardScreen != nil {
		return a.wizardScreen.View()
	}
	return ""
}

func (a *App) viewResult() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: "+a.err.Error()) + "\n\n" +
			styles.Help.Render("Press e to edit the placement or b to go back")
	}
	if a.response == nil {
		return styles.Panel.Render("Evaluating...")
	}
	if a.viewport.Height <= 0 {
		return a.dashboard.View()
	}
	return a.viewport.View()
}

func (a *App) viewComparison() string {
	if a.compView == nil {
		return ""
	}
	return a.compView.View()
}

// frameWidth is one column short of the terminal to avoid wrapping, but never
// narrower than minTerminalWidth
func (a *App) frameWidth() int {
	return max(a.width-1, minTerminalWidth)
}

func (a *App) contentWidth() int {
	return a.frameWidth()
}

func (a *App) contentHeight() int {
	return max(a.height-frameOverhead, 0)
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	left := fmt.Sprintf(" %s %s ", icons.App.String(), titleStyle.Render("VNF Placement Evaluator"))

	var parts []string
	if a.requestName != "" && a.screen != ScreenMenu && a.screen != ScreenFilePicker {
		parts = append(parts, a.requestName)
	}
	if a.backend != "" {
		parts = append(parts, a.backend)
	}
	right := ""
	if len(parts) > 0 {
		right = " " + contextStyle.Render(strings.Join(parts, " · ")) + " "
	}

	fill := max(0, width-4-lipgloss.Width(left)-lipgloss.Width(right))
	return borderStyle.Render("╭─" + left + strings.Repeat("─", fill) + right + "─╮")
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenMenu:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenFilePicker:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "b Back"}
	case ScreenResult:
		shortcuts = []string{"↑↓ Scroll", "e Edit"}
		if a.previous != nil {
			shortcuts = append(shortcuts, "c Compare")
		}
		if a.drawer != nil {
			shortcuts = append(shortcuts, "r Random")
		}
		shortcuts = append(shortcuts, "b Back", "q Quit")
	case ScreenComparison:
		shortcuts = []string{"e Edit", "b Back", "q Quit"}
	case ScreenWizard:
		shortcuts = []string{"Tab Next", "Enter Confirm", "Esc Cancel"}
	}

	styled := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		k, label, _ := strings.Cut(s, " ")
		styled = append(styled, keyStyle.Render(k)+" "+labelStyle.Render(label))
	}
	left := " " + strings.Join(styled, "  ") + " "

	right := ""
	if !a.lastUpdate.IsZero() && (a.screen == ScreenResult || a.screen == ScreenComparison) {
		right = " " + statusStyle.Render("Evaluated "+formatTimeSince(a.lastUpdate)) + " "
	}

	fill := max(0, width-4-lipgloss.Width(left)-lipgloss.Width(right))
	return borderStyle.Render("╰─" + left + strings.Repeat("─", fill) + right + "─╯")
}

// formatTimeSince formats a duration since the given time in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	switch {
	case d < 5*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// loadCapacity fetches the capacity tables used by the wizard and renderers
func (a *App) loadCapacity() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), evaluateTimeout)
		defer cancel()
		tables, err := a.evaluator.Capacity(ctx)
		return capacityLoadedMsg{tables: tables, err: err}
	}
}

// evaluate runs one evaluation in the background
func (a *App) evaluate(name string, req *models.EvaluationRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), evaluateTimeout)
		defer cancel()
		resp, err := a.evaluator.Evaluate(ctx, req)
		return evaluatedMsg{name: name, req: req, resp: resp, err: err}
	}
}

// runWizard opens the placement wizard, pre-filled with prev when set
func (a *App) runWizard(prev *models.EvaluationRequest) tea.Cmd {
	if a.tables == nil {
		a.err = fmt.Errorf("capacity tables are not loaded yet")
		return nil
	}
	a.wizardScreen = wizard.New(*a.tables, prev)
	a.wizardScreen.SetWidth(a.width)
	a.screen = ScreenWizard
	return a.wizardScreen.Init()
}

func referenceRequest() *models.EvaluationRequest {
	return &models.EvaluationRequest{
		Service:   []int{4, 8, 1, 4, 3, 6, 6, 8},
		Placement: []int{3, 3, 2, 1, 1, 0, 0, 0},
	}
}

// Run starts the TUI against the given evaluator
func Run(ev Evaluator, backend string) error {
	if err := debuglog.Init(recentfiles.DefaultConfigDir()); err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	defer debuglog.Close()

	p := tea.NewProgram(New(ev, backend), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
