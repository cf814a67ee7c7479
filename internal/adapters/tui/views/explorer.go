package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devfolio/internal/adapters/tui/styles"
	"devfolio/internal/application/workspace"
	"devfolio/internal/domain"
)

// ExplorerKeyMap defines key bindings for the explorer view
type ExplorerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Open     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var ExplorerKeys = ExplorerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open/toggle"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
}

// ExplorerModel is the file tree next to the activity bar
type ExplorerModel struct {
	ViewState
	ws        *workspace.Controller
	roots     []*domain.TreeNode
	flatNodes []*domain.TreeNode
	scroll    *Scroller
	focused   bool
}

// NewExplorerModel builds the tree for the workspace store
func NewExplorerModel(ws *workspace.Controller) *ExplorerModel {
	requireWorkspace(ws)
	m := &ExplorerModel{
		ws:     ws,
		roots:  domain.BuildTree(ws.Store()),
		scroll: NewScroller(20),
	}
	m.refreshFlatNodes()
	return m
}

// Init initializes the explorer
func (m *ExplorerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the explorer
func (m *ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, ExplorerKeys.Up):
		m.scroll.Move(-1)

	case key.Matches(keyMsg, ExplorerKeys.Down):
		m.scroll.Move(1)

	case key.Matches(keyMsg, ExplorerKeys.PageUp):
		m.scroll.PageUp()

	case key.Matches(keyMsg, ExplorerKeys.PageDown):
		m.scroll.PageDown()

	case key.Matches(keyMsg, ExplorerKeys.Left):
		node := m.SelectedNode()
		if node == nil {
			break
		}
		if node.IsDir() && node.IsExpanded {
			node.Collapse()
			m.refreshFlatNodes()
		} else if node.Parent != nil {
			m.moveTo(node.Parent)
		}

	case key.Matches(keyMsg, ExplorerKeys.Right):
		if node := m.SelectedNode(); node != nil && node.IsDir() && !node.IsExpanded {
			node.Expand()
			m.refreshFlatNodes()
		}

	case key.Matches(keyMsg, ExplorerKeys.Open):
		node := m.SelectedNode()
		if node == nil {
			break
		}
		if node.IsDocument() {
			if m.ws.OpenDocument(node.Document.ID) {
				return m, openedCmd(node.Document.ID)
			}
			return m, statusCmd(fmt.Sprintf("cannot open %s", node.ID), true)
		}
		node.Toggle()
		m.refreshFlatNodes()
	}

	return m, nil
}

// SelectedNode returns the node under the cursor
func (m *ExplorerModel) SelectedNode() *domain.TreeNode {
	c := m.scroll.Cursor()
	if c >= 0 && c < len(m.flatNodes) {
		return m.flatNodes[c]
	}
	return nil
}

// VisibleNodes returns the flattened tree in display order
func (m *ExplorerModel) VisibleNodes() []*domain.TreeNode {
	return m.flatNodes
}

// Reveal moves the cursor to a document, expanding its ancestors
func (m *ExplorerModel) Reveal(id string) {
	node := domain.FindNode(m.roots, id)
	if node == nil {
		return
	}
	for p := node.Parent; p != nil; p = p.Parent {
		p.Expand()
	}
	m.refreshFlatNodes()
	m.moveTo(node)
}

func (m *ExplorerModel) moveTo(target *domain.TreeNode) {
	for i, n := range m.flatNodes {
		if n == target {
			m.scroll.SetCursor(i)
			return
		}
	}
}

func (m *ExplorerModel) refreshFlatNodes() {
	m.flatNodes = domain.Flatten(m.roots)
	m.scroll.SetTotal(len(m.flatNodes))
}

// SetFocused marks the explorer as the focused panel
func (m *ExplorerModel) SetFocused(focused bool) {
	m.focused = focused
}

// View renders the explorer
func (m *ExplorerModel) View() string {
	var b strings.Builder

	b.WriteString(RenderPanelHeader("explorer", m.Width, m.focused))
	b.WriteString("\n")

	if len(m.flatNodes) == 0 {
		b.WriteString(RenderMuted(" no documents"))
		return b.String()
	}

	start, end := m.scroll.Window()
	for i := start; i < end; i++ {
		b.WriteString(m.renderNode(m.flatNodes[i], i == m.scroll.Cursor()))
		b.WriteString("\n")
	}
	if m.scroll.Overflows() {
		b.WriteString(RenderMuted(fmt.Sprintf(" %d%%", m.scroll.Percent())))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *ExplorerModel) renderNode(node *domain.TreeNode, selected bool) string {
	indent := strings.Repeat("  ", node.Depth())

	var prefix string
	switch {
	case !node.IsDir():
		prefix = styles.TreeLeaf
	case node.IsExpanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	glyph := domain.IconFolder.Glyph()
	if node.IsDocument() {
		glyph = node.Document.Icon.Glyph()
	}
	text := fmt.Sprintf("%s %s", glyph, node.Name)

	var style lipgloss.Style
	switch {
	case selected && m.focused:
		style = styles.NodeSelected
	case node.IsDocument() && node.Document.ID == m.ws.ActiveID():
		style = styles.NodeActive
	case node.IsDir():
		style = styles.NodeDir
	default:
		style = styles.NodeDocument
	}

	return fmt.Sprintf(" %s%s%s", indent, styles.TreeBranch.Render(prefix), style.Render(text))
}

// SetSize updates the view dimensions
func (m *ExplorerModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// header and page indicator
	m.scroll.SetHeight(height - 2)
}
