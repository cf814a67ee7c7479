package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"devfolio/internal/adapters/tui/styles"
	"devfolio/internal/application/palette"
	"devfolio/internal/application/workspace"
	"devfolio/internal/domain"
	"devfolio/internal/ports"
)

// paletteRows is the number of results shown at once
const paletteRows = 10

// PaletteKeyMap defines key bindings for the command palette
type PaletteKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Close key.Binding
	Copy  key.Binding
}

var PaletteKeys = PaletteKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy location"),
	),
}

// PaletteModel is the quick-open overlay
type PaletteModel struct {
	ViewState
	ws        *workspace.Controller
	palette   *palette.Palette
	clipboard ports.Clipboard
	input     textinput.Model
}

// NewPaletteModel creates the palette overlay. clip may be nil, in which
// case copying reports an error.
func NewPaletteModel(ws *workspace.Controller, clip ports.Clipboard) *PaletteModel {
	requireWorkspace(ws)

	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "Search documents by name"
	input.Focus()

	return &PaletteModel{
		ws:        ws,
		palette:   palette.New(ws.Store()),
		clipboard: clip,
		input:     input,
	}
}

// Init initializes the palette
func (m *PaletteModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and selection for a fresh open
func (m *PaletteModel) Reset() tea.Cmd {
	m.input.Reset()
	m.palette.Reset()
	return m.input.Focus()
}

// Update handles messages for the palette
func (m *PaletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, PaletteKeys.Close):
			m.ws.SetPaletteOpen(false)
			return m, nil

		case key.Matches(keyMsg, PaletteKeys.Up):
			m.palette.Up()
			return m, nil

		case key.Matches(keyMsg, PaletteKeys.Down):
			m.palette.Down()
			return m, nil

		case key.Matches(keyMsg, PaletteKeys.Open):
			doc, ok := m.palette.Selected()
			if !ok {
				return m, nil
			}
			m.ws.SetPaletteOpen(false)
			if !m.ws.OpenDocument(doc.ID) {
				return m, statusCmd(fmt.Sprintf("cannot open %s", doc.ID), true)
			}
			return m, openedCmd(doc.ID)

		case key.Matches(keyMsg, PaletteKeys.Copy):
			return m, m.copySelected()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.palette.Query() {
		m.palette.SetQuery(m.input.Value())
	}
	return m, cmd
}

func (m *PaletteModel) copySelected() tea.Cmd {
	doc, ok := m.palette.Selected()
	if !ok {
		return nil
	}
	if m.clipboard == nil {
		return statusCmd("clipboard unavailable", true)
	}
	location := domain.KeyFor(doc.ID)
	if err := m.clipboard.Copy(location); err != nil {
		return statusCmd(fmt.Sprintf("copy failed: %v", err), true)
	}
	return statusCmd("copied "+location, false)
}

// View renders the palette box
func (m *PaletteModel) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	results := m.palette.Results()
	if len(results) == 0 {
		b.WriteString(RenderMuted("No matching documents"))
	}

	start := max(m.palette.Index()-paletteRows+1, 0)
	end := min(start+paletteRows, len(results))
	for i := start; i < end; i++ {
		doc := results[i]
		line := fmt.Sprintf("%s %-24s %s", doc.Icon.Glyph(), doc.Filename, RenderMuted(domain.KeyFor(doc.ID)))
		b.WriteString("\n")
		if i == m.palette.Index() {
			b.WriteString(styles.NodeSelected.Render(line))
		} else {
			b.WriteString(line)
		}
	}
	if len(results) > paletteRows {
		b.WriteString("\n")
		b.WriteString(RenderMuted(fmt.Sprintf("%d of %d", m.palette.Index()+1, len(results))))
	}

	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(PaletteKeys.Open, PaletteKeys.Copy, PaletteKeys.Close))

	return styles.Overlay.Width(m.boxWidth()).Render(b.String())
}

// SetSize updates the dimensions and fits the query field inside the box
func (m *PaletteModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// border, padding and prompt
	m.input.Width = max(m.boxWidth()-6, 10)
}

func (m *PaletteModel) boxWidth() int {
	return min(max(m.Width-10, 30), 72)
}
