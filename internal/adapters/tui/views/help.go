package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"devfolio/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return m, func() tea.Msg {
			return CloseHelpMsg{}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("devfolio"))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render("A portfolio you browse like a code editor"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Shell"))
	b.WriteString("\n")
	b.WriteString(helpLine("tab / shift+tab", "Cycle focus between panels"))
	b.WriteString(helpLine("ctrl+k", "Command palette"))
	b.WriteString(helpLine("ctrl+b", "Toggle explorer"))
	b.WriteString(helpLine("ctrl+o", "Open profile"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / ctrl+c", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Explorer"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / ←", "Collapse / go to parent"))
	b.WriteString(helpLine("l / →", "Expand"))
	b.WriteString(helpLine("enter", "Open document / toggle folder"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Editor"))
	b.WriteString("\n")
	b.WriteString(helpLine("1-9", "Follow numbered link"))
	b.WriteString(helpLine("[ / ]", "Previous / next tab"))
	b.WriteString(helpLine("x", "Close tab"))
	b.WriteString(helpLine("e", "Edit source in $EDITOR"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Terminal"))
	b.WriteString("\n")
	b.WriteString(helpLine("/<document>", "Open a document, e.g. /about"))
	b.WriteString(helpLine("↑ / ↓, tab", "Pick and complete a suggestion"))
	b.WriteString(helpLine("/clear, /close-all", "Clear history, close all editors"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
