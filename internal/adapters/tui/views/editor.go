package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devfolio/internal/adapters/markdown"
	"devfolio/internal/adapters/tui/styles"
	"devfolio/internal/application/workspace"
	"devfolio/internal/domain"
	"devfolio/internal/ports"
)

// maxLinks is the number of links reachable with the digit keys
const maxLinks = 9

// EditorKeyMap defines key bindings for the editor view
type EditorKeyMap struct {
	Close   key.Binding
	PrevTab key.Binding
	NextTab key.Binding
	Edit    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Link    key.Binding
}

var EditorKeys = EditorKeyMap{
	Close: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev tab"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next tab"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit source"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Link: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "follow link"),
	),
}

// EditorModel shows the tab strip and the active document
type EditorModel struct {
	ViewState
	ws       *workspace.Controller
	renderer ports.DocumentRenderer
	viewport viewport.Model
	links    []string

	renderedID    string
	renderedWidth int
}

// NewEditorModel creates the editor pane. A nil renderer shows raw Markdown.
func NewEditorModel(ws *workspace.Controller, renderer ports.DocumentRenderer) *EditorModel {
	requireWorkspace(ws)
	if renderer == nil {
		renderer = rawRenderer{}
	}
	return &EditorModel{
		ws:       ws,
		renderer: renderer,
		viewport: viewport.New(80, 20),
	}
}

// Init initializes the editor
func (m *EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the editor
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, EditorKeys.Close):
		if id := m.ws.ActiveID(); id != "" {
			m.ws.CloseTab(id)
		}
		m.Sync()
		return m, nil

	case key.Matches(keyMsg, EditorKeys.PrevTab):
		m.ws.CycleTab(-1)
		m.Sync()
		return m, nil

	case key.Matches(keyMsg, EditorKeys.NextTab):
		m.ws.CycleTab(1)
		m.Sync()
		return m, nil

	case key.Matches(keyMsg, EditorKeys.Edit):
		doc, ok := m.ws.ActiveDocument()
		if !ok || doc.SourcePath == "" {
			return m, statusCmd("no source file for this tab", true)
		}
		return m, func() tea.Msg {
			return OpenEditorMsg{Path: doc.SourcePath}
		}

	case key.Matches(keyMsg, EditorKeys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(keyMsg, EditorKeys.Bottom):
		m.viewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, EditorKeys.Link):
		idx := int(keyMsg.String()[0] - '1')
		if idx >= len(m.links) {
			return m, nil
		}
		dest := m.links[idx]
		return m, func() tea.Msg {
			return FollowLinkMsg{Dest: dest}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// Links returns the links of the active document in order
func (m *EditorModel) Links() []string {
	return m.links
}

// SetSize updates the dimensions and re-renders for the new width
func (m *EditorModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.Sync()
}

// Sync re-renders the active document when the tab or the width changed
func (m *EditorModel) Sync() {
	active := m.ws.ActiveID()
	if active == m.renderedID && m.Width == m.renderedWidth {
		return
	}
	m.renderedID = active
	m.renderedWidth = m.Width

	doc, ok := m.ws.ActiveDocument()
	if !ok {
		m.links = nil
		m.viewport.SetContent("")
		m.layout()
		return
	}

	m.links = markdown.ExtractLinks(doc.Content)
	m.layout()
	m.viewport.SetContent(m.renderer.Render(doc, m.viewport.Width))
	m.viewport.GotoTop()
}

func (m *EditorModel) layout() {
	// tab strip, breadcrumbs, header
	reserved := 3
	if n := min(len(m.links), maxLinks); n > 0 {
		reserved += n + 1
	}
	m.viewport.Width = max(m.Width-2, 1)
	m.viewport.Height = max(m.Height-reserved, 1)
}

// View renders the editor
func (m *EditorModel) View() string {
	doc, ok := m.ws.ActiveDocument()
	if !ok {
		return m.renderWelcome()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(" " + RenderBreadcrumbs(doc) + "  " + RenderTags(doc))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(1).Render(m.viewport.View()))

	if len(m.links) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderMuted(" links"))
		for i, dest := range m.links[:min(len(m.links), maxLinks)] {
			b.WriteString("\n")
			b.WriteString(" " + RenderLink(i+1, dest))
		}
	}

	return b.String()
}

func (m *EditorModel) renderTabs() string {
	var tabs []string
	for _, id := range m.ws.Tabs() {
		doc, ok := m.ws.Store().FindByID(id)
		if !ok {
			continue
		}
		tabs = append(tabs, RenderTab(doc, id == m.ws.ActiveID()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *EditorModel) renderWelcome() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("devfolio"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("No editor is open"))
	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(
		key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "find a document")),
		key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open profile")),
	))
	b.WriteString("\n\n")
	b.WriteString(RenderMuted("or type /" + m.ws.ProfileID() + " in the terminal"))
	return Center(m.Width, m.Height, b.String())
}

// rawRenderer shows the Markdown source when no renderer is configured
type rawRenderer struct{}

func (rawRenderer) Render(doc domain.Document, _ int) string {
	return doc.Content
}
