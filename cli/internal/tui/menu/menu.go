// ABOUTME: Request source selection menu for TUI startup
// ABOUTME: Reference scenario, manual entry, request file, or a random placement

package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// DataSource represents where the evaluated request comes from
type DataSource int

const (
	SourceReference DataSource = iota
	SourceManual
	SourceFile
	SourceRandom
)

// DataSourceSelectedMsg is sent when the user picks an enabled source
type DataSourceSelectedMsg struct {
	Source DataSource
}

// CancelledMsg is sent when the user leaves the menu
type CancelledMsg struct{}

type option struct {
	label   string
	value   DataSource
	enabled bool
}

// Menu represents the request source selection menu
type Menu struct {
	options  []option
	selected DataSource
	form     *huh.Form
	err      string
}

// New creates the menu. Random placements need an in-process sampler.
func New(randomAvailable bool) *Menu {
	m := &Menu{
		options: []option{
			{label: "Reference scenario", value: SourceReference, enabled: true},
			{label: "Enter service and placement", value: SourceManual, enabled: true},
			{label: "Load request file", value: SourceFile, enabled: true},
			{label: "Random placement", value: SourceRandom, enabled: randomAvailable},
		},
		selected: SourceReference,
	}
	m.form = m.buildForm()
	return m
}

func (m *Menu) buildForm() *huh.Form {
	var options []huh.Option[DataSource]
	for _, opt := range m.options {
		label := opt.label
		if !opt.enabled {
			label = fmt.Sprintf("%s (local mode only)", label)
		}
		options = append(options, huh.NewOption(label, opt.value))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[DataSource]().
				Title("What do you want to evaluate?").
				Options(options...).
				Value(&m.selected),
		),
	).WithTheme(huh.ThemeBase())
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.err = ""
		switch key.String() {
		case "esc", "q":
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.complete()
	}
	return m, cmd
}

func (m *Menu) complete() (tea.Model, tea.Cmd) {
	if !m.enabled(m.selected) {
		m.err = fmt.Sprintf("%s is not available with a remote backend", m.selected)
		m.form = m.buildForm()
		return m, m.form.Init()
	}
	source := m.selected
	return m, func() tea.Msg { return DataSourceSelectedMsg{Source: source} }
}

func (m *Menu) enabled(ds DataSource) bool {
	for _, opt := range m.options {
		if opt.value == ds {
			return opt.enabled
		}
	}
	return false
}

// View implements tea.Model
func (m *Menu) View() string {
	view := m.form.View()
	if m.err != "" {
		view += "\nError: " + m.err
	}
	return view
}

// String returns the string representation of a DataSource
func (ds DataSource) String() string {
	switch ds {
	case SourceReference:
		return "reference"
	case SourceManual:
		return "manual"
	case SourceFile:
		return "file"
	case SourceRandom:
		return "random"
	default:
		return "unknown"
	}
}
