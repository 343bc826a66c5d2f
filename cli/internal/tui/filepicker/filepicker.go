// ABOUTME: File picker TUI component for loading evaluation request files
// ABOUTME: Offers recent files, a typed path, and embedded or on-disk sample requests

package filepicker

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/request"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/samples"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/styles"
)

type state int

const (
	stateList state = iota
	stateInput
	stateSamples
)

// FileSelectedMsg is sent when a request file was read and decoded
type FileSelectedMsg struct {
	Path    string
	Request *models.EvaluationRequest
	// Recent is false for embedded samples, which have no path worth remembering
	Recent bool
}

// CancelledMsg is sent when the user backs out of the picker
type CancelledMsg struct{}

// FilePicker is the request file selection component
type FilePicker struct {
	recentFiles []string
	samples     []samples.SampleFile
	cursor      int
	state       state
	textInput   textinput.Model
	err         string
	width       int
	height      int
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(styles.Primary)
	helpStyle     = lipgloss.NewStyle().Foreground(styles.Muted)
	selectedStyle = lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(styles.Text)
	errorStyle    = lipgloss.NewStyle().Foreground(styles.Danger)
	dividerStyle  = lipgloss.NewStyle().Foreground(styles.Muted)
)

// New creates a new FilePicker
func New(recentFiles []string, sampleFiles []samples.SampleFile) *FilePicker {
	ti := textinput.New()
	ti.Placeholder = "/path/to/request.yaml"
	ti.CharLimit = 256
	ti.Width = 60

	return &FilePicker{
		recentFiles: recentFiles,
		samples:     sampleFiles,
		state:       stateList,
		textInput:   ti,
	}
}

// Init implements tea.Model
func (fp *FilePicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (fp *FilePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fp.width = msg.Width
		fp.height = msg.Height
		return fp, nil

	case tea.KeyMsg:
		fp.err = ""

		switch fp.state {
		case stateList:
			return fp.updateList(msg)
		case stateInput:
			return fp.updateInput(msg)
		case stateSamples:
			return fp.updateSamples(msg)
		}
	}

	return fp, nil
}

func (fp *FilePicker) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		fp.moveCursor(-1, fp.listItemCount())
	case "down", "j":
		fp.moveCursor(1, fp.listItemCount())
	case "enter":
		return fp.selectListItem()
	case "esc", "b":
		return fp, func() tea.Msg { return CancelledMsg{} }
	}
	return fp, nil
}

func (fp *FilePicker) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		fp.state = stateList
		fp.textInput.SetValue("")
		fp.textInput.Blur()
		return fp, nil
	case "enter":
		path := strings.TrimSpace(fp.textInput.Value())
		if path == "" {
			fp.err = "Please enter a file path"
			return fp, nil
		}
		return fp.loadPath(path)
	}

	var cmd tea.Cmd
	fp.textInput, cmd = fp.textInput.Update(msg)
	return fp, cmd
}

func (fp *FilePicker) updateSamples(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		fp.moveCursor(-1, len(fp.samples)+1)
	case "down", "j":
		fp.moveCursor(1, len(fp.samples)+1)
	case "enter":
		if fp.cursor == len(fp.samples) {
			fp.state = stateList
			fp.cursor = 0
			return fp, nil
		}
		return fp.loadSample(fp.samples[fp.cursor])
	case "esc", "b":
		fp.state = stateList
		fp.cursor = 0
	}
	return fp, nil
}

func (fp *FilePicker) moveCursor(delta, count int) {
	next := fp.cursor + delta
	if next >= 0 && next < count {
		fp.cursor = next
	}
}

// listItemCount covers recent files, "Enter path..." and the optional samples entry
func (fp *FilePicker) listItemCount() int {
	count := len(fp.recentFiles) + 1
	if len(fp.samples) > 0 {
		count++
	}
	return count
}

func (fp *FilePicker) selectListItem() (tea.Model, tea.Cmd) {
	recentCount := len(fp.recentFiles)

	switch {
	case fp.cursor < recentCount:
		return fp.loadPath(fp.recentFiles[fp.cursor])
	case fp.cursor == recentCount:
		fp.state = stateInput
		fp.textInput.Focus()
		return fp, textinput.Blink
	case len(fp.samples) > 0 && fp.cursor == recentCount+1:
		fp.state = stateSamples
		fp.cursor = 0
	}
	return fp, nil
}

func (fp *FilePicker) loadSample(sample samples.SampleFile) (tea.Model, tea.Cmd) {
	if sample.Data == nil {
		return fp.loadPath(sample.Path)
	}
	req, err := request.Decode(sample.Data, filepath.Ext(sample.Name))
	if err != nil {
		fp.err = "Invalid sample " + sample.Name + ": " + err.Error()
		return fp, nil
	}
	return fp, selected(sample.Path, req, false)
}

func (fp *FilePicker) loadPath(path string) (tea.Model, tea.Cmd) {
	expanded := expandPath(path)

	req, err := request.LoadFile(expanded)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			fp.err = "File not found: " + path
		case errors.Is(err, os.ErrPermission):
			fp.err = "Cannot read file: permission denied"
		default:
			fp.err = err.Error()
		}
		return fp, nil
	}
	return fp, selected(expanded, req, true)
}

func selected(path string, req *models.EvaluationRequest, recent bool) tea.Cmd {
	return func() tea.Msg {
		return FileSelectedMsg{Path: path, Request: req, Recent: recent}
	}
}

// expandPath expands a leading ~ to the home directory
func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}

// SetError sets an error message to display
func (fp *FilePicker) SetError(msg string) {
	fp.err = msg
}

// View implements tea.Model
func (fp *FilePicker) View() string {
	switch fp.state {
	case stateInput:
		return fp.viewInput()
	case stateSamples:
		return fp.viewSamples()
	default:
		return fp.viewList()
	}
}

func (fp *FilePicker) item(b *strings.Builder, idx int, label string) {
	cursor, style := "  ", normalStyle
	if idx == fp.cursor {
		cursor, style = "> ", selectedStyle
	}
	b.WriteString(cursor + style.Render(label) + "\n")
}

func (fp *FilePicker) writeError(b *strings.Builder) {
	if fp.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + fp.err))
	}
}

func (fp *FilePicker) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select request file"))
	b.WriteString("\n\n")

	if len(fp.recentFiles) > 0 {
		b.WriteString(helpStyle.Render("Recent files:"))
		b.WriteString("\n")
		for i, path := range fp.recentFiles {
			fp.item(&b, i, fp.shortenPath(path))
		}
		b.WriteString("\n")

		width := min(40, fp.width-4)
		if width < 1 {
			width = 40
		}
		b.WriteString(dividerStyle.Render(strings.Repeat("─", width)))
		b.WriteString("\n")
	}

	idx := len(fp.recentFiles)
	fp.item(&b, idx, "Enter path...")
	if len(fp.samples) > 0 {
		fp.item(&b, idx+1, "Load sample request...")
	}

	fp.writeError(&b)
	return b.String()
}

// shortenPath keeps the tail of paths that would not fit the terminal
func (fp *FilePicker) shortenPath(path string) string {
	if fp.width <= 20 || len(path) <= fp.width-10 {
		return path
	}
	return "..." + path[len(path)-(fp.width-13):]
}

func (fp *FilePicker) viewInput() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Enter request file path"))
	b.WriteString("\n\n")
	b.WriteString(fp.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("YAML or JSON with service, placement and an optional service_length"))
	b.WriteString("\n")

	fp.writeError(&b)
	return b.String()
}

func (fp *FilePicker) viewSamples() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select sample request"))
	b.WriteString("\n\n")

	for i, sample := range fp.samples {
		label := sample.Name
		if sample.Data != nil {
			label += helpStyle.Render(" (built-in)")
		}
		fp.item(&b, i, label)
	}
	fp.item(&b, len(fp.samples), "[back]")

	fp.writeError(&b)
	return b.String()
}
