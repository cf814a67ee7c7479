package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devfolio/internal/adapters/tui/styles"
	"devfolio/internal/application/terminal"
	"devfolio/internal/application/workspace"
)

// Banner is printed above the terminal history
var Banner = []string{
	"devfolio shell [Version 2.4.0]",
	"Type /help for commands, or / to browse documents.",
}

// TerminalKeyMap defines key bindings for the terminal view
type TerminalKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Cancel   key.Binding
	Submit   key.Binding
}

var TerminalKeys = TerminalKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "prev suggestion"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next suggestion"),
	),
	Complete: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "complete"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
}

// TerminalModel is the command line under the editor
type TerminalModel struct {
	ViewState
	ws      *workspace.Controller
	engine  *terminal.Engine
	prompt  *terminal.Prompt
	input   textinput.Model
	focused bool
}

// NewTerminalModel creates the terminal panel
func NewTerminalModel(ws *workspace.Controller, engine *terminal.Engine) *TerminalModel {
	requireWorkspace(ws)
	if engine == nil {
		engine = terminal.NewEngine(ws.Store(), ws)
	}

	input := textinput.New()
	input.Prompt = ">>> "
	input.PromptStyle = styles.TerminalPrompt
	input.Placeholder = "/" + ws.ProfileID()
	input.Focus()

	return &TerminalModel{
		ws:      ws,
		engine:  engine,
		prompt:  terminal.NewPrompt(ws.Store().Keys()),
		input:   input,
		focused: true,
	}
}

// Init initializes the terminal
func (m *TerminalModel) Init() tea.Cmd {
	return textinput.Blink
}

// Suggesting reports whether the suggestion popup is shown
func (m *TerminalModel) Suggesting() bool {
	return m.prompt.State() == terminal.Suggesting
}

// Update handles messages for the terminal
func (m *TerminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PendingOpenMsg:
		if m.engine.Resolve(msg.Open) {
			return m, openedCmd(msg.Open.ID)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, TerminalKeys.Up):
			m.prompt.Prev()
			return m, nil

		case key.Matches(msg, TerminalKeys.Down):
			m.prompt.Next()
			return m, nil

		case key.Matches(msg, TerminalKeys.Complete):
			if m.prompt.Complete() {
				m.input.SetValue(m.prompt.Input())
				m.input.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, TerminalKeys.Cancel):
			m.prompt.Cancel()
			return m, nil

		case key.Matches(msg, TerminalKeys.Submit):
			return m, m.submit()
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.prompt.SetInput(v)
	}
	return m, cmd
}

func (m *TerminalModel) submit() tea.Cmd {
	command, ok := m.prompt.Submit()
	m.input.Reset()
	if !ok {
		return nil
	}

	result := m.engine.Execute(command)
	switch result.Action {
	case terminal.ActionImport:
		return scheduleOpen(*result.Open)
	case terminal.ActionCloseAll:
		return statusCmd("closed all editors", false)
	}
	return nil
}

// scheduleOpen delivers the pending open after its delay. Later commands
// never cancel it.
func scheduleOpen(p terminal.PendingOpen) tea.Cmd {
	return tea.Tick(p.Delay, func(time.Time) tea.Msg {
		return PendingOpenMsg{Open: p}
	})
}

// Focus gives the prompt keyboard focus
func (m *TerminalModel) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes keyboard focus from the prompt
func (m *TerminalModel) Blur() {
	m.focused = false
	m.input.Blur()
}

// View renders the terminal
func (m *TerminalModel) View() string {
	var lines []string
	for _, l := range Banner {
		lines = append(lines, styles.TerminalBanner.Render(l))
	}
	for _, e := range m.engine.History() {
		lines = append(lines, renderEntry(e))
	}

	popup := m.renderSuggestions()
	// header, prompt and popup take fixed rows
	room := m.Height - 2 - lipgloss.Height(popup)
	if popup == "" {
		room = m.Height - 2
	}
	if room < 0 {
		room = 0
	}
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}

	var b strings.Builder
	b.WriteString(RenderPanelHeader("terminal", m.Width, m.focused))
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString(" " + l + "\n")
	}
	if popup != "" {
		b.WriteString(popup)
		b.WriteString("\n")
	}
	b.WriteString(" " + m.input.View())
	return b.String()
}

func (m *TerminalModel) renderSuggestions() string {
	suggestions := m.prompt.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.PopupTitle.Render("Available Documents"))
	for i, s := range suggestions {
		b.WriteString("\n")
		if i == m.prompt.Highlight() {
			b.WriteString(styles.NodeSelected.Render(s))
		} else {
			b.WriteString(s)
		}
	}
	return styles.Popup.Render(b.String())
}

func renderEntry(e terminal.Entry) string {
	switch e.Kind {
	case terminal.EntryCommand:
		return styles.TerminalPrompt.Render(">>> ") + styles.TerminalCommand.Render(e.Text)
	case terminal.EntryError:
		return styles.TerminalError.Render(e.Text)
	default:
		return styles.TerminalOutput.Render(e.Text)
	}
}

// SetSize updates the view dimensions
func (m *TerminalModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.input.Width = max(width-8, 10)
}
