// ABOUTME: Placement input wizard as a bubbletea model
// ABOUTME: Uses huh forms with a step indicator to collect a service chain and its placement

package wizard

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/request"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/icons"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/styles"
)

// WizardCompleteMsg is sent when the wizard finishes successfully
type WizardCompleteMsg struct {
	Request *models.EvaluationRequest
}

// WizardCancelledMsg is sent when the wizard is cancelled
type WizardCancelledMsg struct{}

// Wizard collects an evaluation request as a bubbletea model
type Wizard struct {
	tables models.CapacityTables
	req    *models.EvaluationRequest
	form   *huh.Form
	step   int
	width  int

	// Form field values (strings for huh)
	service   string
	placement string
	length    string
}

// Step names for progress indicator
var stepNames = []string{"Service Chain", "Placement"}

// createTheme returns the huh theme used by the wizard
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	cyan := lipgloss.Color("#06B6D4")
	cyanLight := lipgloss.Color("#22D3EE")
	blue := lipgloss.Color("#3B82F6")
	gray := lipgloss.Color("#9CA3AF")
	grayLight := lipgloss.Color("#E5E7EB")
	red := lipgloss.Color("#F87171")
	slate := lipgloss.Color("#334155")

	t.Group.Title = lipgloss.NewStyle().
		Foreground(cyan).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(gray).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(cyan)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(cyanLight).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(red).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(red)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(cyan)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(cyan)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(grayLight)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(blue).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(gray).
		Background(slate).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(gray)

	return t
}

// New creates a wizard for the given tables. A previous request pre-fills the
// fields so the user can edit it; nil starts from the reference chain.
func New(tables models.CapacityTables, prev *models.EvaluationRequest) *Wizard {
	req := &models.EvaluationRequest{
		Service:   []int{4, 8, 1, 4, 3, 6, 6, 8},
		Placement: []int{3, 3, 2, 1, 1, 0, 0, 0},
	}
	if prev != nil && len(prev.Service) > 0 {
		req = &models.EvaluationRequest{
			ServiceLength: prev.ServiceLength,
			Service:       append([]int(nil), prev.Service...),
			Placement:     append([]int(nil), prev.Placement...),
		}
	}

	w := &Wizard{
		tables:    tables,
		req:       req,
		step:      1,
		service:   request.FormatIntList(req.Service),
		placement: request.FormatIntList(req.Placement),
	}
	if req.ServiceLength > 0 {
		w.length = strconv.Itoa(req.ServiceLength)
	}

	w.form = w.createStep1Form()
	return w
}

func (w *Wizard) createStep1Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("VNF types").
				Description(fmt.Sprintf("Comma separated, each between 1 and %d", w.tables.NumVNFTypes())).
				Placeholder("e.g., 4,8,1").
				Value(&w.service).
				Validate(w.validateService),
			huh.NewInput().
				Title("Entries to evaluate").
				Description("Leave empty to evaluate the whole chain").
				Placeholder("all").
				CharLimit(4).
				Value(&w.length).
				Validate(validateOptionalPositiveInt),
		).Title("Step 1: Service Chain").
			Description("Which VNFs make up the network service, in chain order?"),
	).WithTheme(createTheme())
}

func (w *Wizard) createStep2Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nodes").
				Description(fmt.Sprintf("One node per VNF, each between 0 and %d", w.tables.NumNodes()-1)).
				Placeholder("e.g., 3,3,2").
				Value(&w.placement).
				Validate(w.validatePlacement),
		).Title("Step 2: Placement").
			Description("Which node hosts each VNF of the chain?"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.req.Service, _ = request.ParseIntList(w.service)
		w.req.ServiceLength, _ = strconv.Atoi(strings.TrimSpace(w.length))
		w.step = 2
		w.form = w.createStep2Form()
		return w, w.form.Init()

	case 2:
		w.req.Placement, _ = request.ParseIntList(w.placement)
		req := w.req
		return w, func() tea.Msg {
			return WizardCompleteMsg{Request: req}
		}
	}

	return w, nil
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder
	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(w.form.View())
	return sb.String()
}

// renderProgress renders the step progress indicator
func (w *Wizard) renderProgress() string {
	width := w.width - 1
	if width < 60 {
		width = 60
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		switch {
		case stepNum < w.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		case stepNum == w.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		default:
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}
	stepsLine := strings.Join(steps, "    ")

	// "│  " + bar + " │" is 5 columns of chrome
	barWidth := width - 5
	filledWidth := (w.step * barWidth) / len(stepNames)
	progressBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth)) +
		lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", barWidth-filledWidth))

	titleWidth := lipgloss.Width("Progress")
	topBorder := "┌─ " + titleStyle.Render("Progress") + " " + strings.Repeat("─", max(0, width-5-titleWidth)) + "┐"
	stepsLinePadded := "│ " + stepsLine + strings.Repeat(" ", max(0, width-4-lipgloss.Width(stepsLine))) + " │"
	progressLinePadded := "│  " + progressBar + " │"
	bottomBorder := "└" + strings.Repeat("─", width-2) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsLinePadded,
		progressLinePadded,
		bottomBorder,
	}, "\n"))
}

// GetRequest returns the collected request
func (w *Wizard) GetRequest() *models.EvaluationRequest {
	return w.req
}

// validateService checks the list shape and VNF type range
func (w *Wizard) validateService(s string) error {
	values, err := request.ParseIntList(s)
	if err != nil {
		return err
	}
	for i, v := range values {
		if v < 1 || v > w.tables.NumVNFTypes() {
			return fmt.Errorf("entry %d: VNF type %d is outside 1..%d", i, v, w.tables.NumVNFTypes())
		}
	}
	return nil
}

// validatePlacement checks node range and that every VNF has a node
func (w *Wizard) validatePlacement(s string) error {
	values, err := request.ParseIntList(s)
	if err != nil {
		return err
	}
	if len(values) != len(w.req.Service) {
		return fmt.Errorf("got %d nodes for %d VNFs", len(values), len(w.req.Service))
	}
	for i, v := range values {
		if v < 0 || v >= w.tables.NumNodes() {
			return fmt.Errorf("entry %d: node %d is outside 0..%d", i, v, w.tables.NumNodes()-1)
		}
	}
	return nil
}

func validateOptionalPositiveInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}
