package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"devfolio/internal/adapters/markdown"
	"devfolio/internal/adapters/tui/views"
	"devfolio/internal/application"
	"devfolio/internal/application/terminal"
	"devfolio/internal/application/workspace"
	"devfolio/internal/ports"
)

// Focus identifies the panel receiving keys
type Focus int

const (
	FocusExplorer Focus = iota
	FocusEditor
	FocusTerminal
)

func (f Focus) String() string {
	switch f {
	case FocusExplorer:
		return "explorer"
	case FocusEditor:
		return "editor"
	case FocusTerminal:
		return "terminal"
	}
	return "unknown"
}

const (
	explorerWidth = 30
	// Below this width the explorer becomes a drawer over the editor
	narrowWidth = 80
	minTerminal = 8
)

// AppKeyMap defines the shell-wide key bindings
type AppKeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Palette   key.Binding
	Explorer  key.Binding
	Profile   key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
}

var AppKeys = AppKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Palette: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "palette"),
	),
	Explorer: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("ctrl+b", "explorer"),
	),
	Profile: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "profile"),
	),
	NextFocus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next panel"),
	),
	PrevFocus: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev panel"),
	),
}

// App is the main TUI application model
type App struct {
	ws        *workspace.Controller
	editor    ports.EditorOpener
	browser   ports.URLOpener
	logger    *zap.Logger
	renderer  ports.DocumentRenderer
	clipboard ports.Clipboard
	engine    *terminal.Engine

	focus    Focus
	showHelp bool

	explorer *views.ExplorerModel
	pane     *views.EditorModel
	term     *views.TerminalModel
	palette  *views.PaletteModel
	help     *views.HelpModel

	message    string
	messageErr bool

	width  int
	height int
}

// Option configures the App
type Option func(*App)

// WithEditor sets the opener used for the edit-source key
func WithEditor(ed ports.EditorOpener) Option {
	return func(a *App) {
		a.editor = ed
	}
}

// WithURLOpener sets the opener used for external links
func WithURLOpener(o ports.URLOpener) Option {
	return func(a *App) {
		a.browser = o
	}
}

// WithClipboard sets the clipboard used by the palette
func WithClipboard(c ports.Clipboard) Option {
	return func(a *App) {
		a.clipboard = c
	}
}

// WithRenderer sets the document renderer of the editor pane
func WithRenderer(r ports.DocumentRenderer) Option {
	return func(a *App) {
		a.renderer = r
	}
}

// WithEngine sets the terminal engine
func WithEngine(e *terminal.Engine) Option {
	return func(a *App) {
		a.engine = e
	}
}

// WithLogger sets the application logger
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new TUI application. It panics without a workspace.
func NewApp(ws *workspace.Controller, opts ...Option) *App {
	if ws == nil {
		panic(application.ErrNoWorkspace)
	}
	a := &App{
		ws:     ws,
		logger: zap.NewNop(),
		focus:  FocusExplorer,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.engine == nil {
		a.engine = terminal.NewEngine(ws.Store(), ws, terminal.WithLogger(a.logger))
	}

	a.explorer = views.NewExplorerModel(ws)
	a.pane = views.NewEditorModel(ws, a.renderer)
	a.term = views.NewTerminalModel(ws, a.engine)
	a.palette = views.NewPaletteModel(ws, a.clipboard)
	a.help = views.NewHelpModel()
	a.applyFocus()
	if id := ws.ActiveID(); id != "" {
		a.explorer.Reveal(id)
	}
	return a
}

// Focus returns the focused panel
func (a *App) Focus() Focus {
	return a.focus
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.term.Init(), a.palette.Init())
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.pane.Sync()
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		if a.focus == FocusExplorer && !a.explorerVisible() {
			return a.setFocus(FocusEditor)
		}
		return nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case views.DocumentOpenedMsg:
		a.logger.Debug("document opened", zap.String("id", msg.ID), zap.String("focus", a.focus.String()))
		a.explorer.Reveal(msg.ID)
		if a.narrow() {
			a.ws.SetSidebarOpen(false)
			if a.focus == FocusExplorer {
				a.setFocus(FocusEditor)
			}
		}
		return nil

	case views.FollowLinkMsg:
		return a.followLink(msg.Dest)

	case views.OpenEditorMsg:
		return a.openEditor(msg.Path)

	case views.StatusMsg:
		a.message = msg.Text
		a.messageErr = msg.Err
		return nil

	case views.CloseHelpMsg:
		a.showHelp = false
		return nil

	case editorFinishedMsg:
		if msg.err != nil {
			a.logger.Warn("editor failed", zap.Error(msg.err))
			a.message = msg.err.Error()
			a.messageErr = true
		}
		return nil

	case views.PendingOpenMsg:
		_, cmd := a.term.Update(msg)
		return cmd
	}

	// cursor blink and other ticks go to both inputs
	_, termCmd := a.term.Update(msg)
	_, palCmd := a.palette.Update(msg)
	return tea.Batch(termCmd, palCmd)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	a.message = ""

	if key.Matches(msg, AppKeys.ForceQuit) {
		return tea.Quit
	}

	if a.showHelp {
		_, cmd := a.help.Update(msg)
		return cmd
	}

	if key.Matches(msg, AppKeys.Palette) {
		a.ws.TogglePalette()
		if a.ws.PaletteOpen() {
			return a.palette.Reset()
		}
		return nil
	}
	if a.ws.PaletteOpen() {
		_, cmd := a.palette.Update(msg)
		return cmd
	}

	typing := a.focus == FocusTerminal
	switch {
	case key.Matches(msg, AppKeys.Explorer):
		a.toggleExplorer()
		return nil

	case key.Matches(msg, AppKeys.Profile):
		if a.ws.OpenDocument(a.ws.ProfileID()) {
			id := a.ws.ActiveID()
			return func() tea.Msg { return views.DocumentOpenedMsg{ID: id} }
		}
		return nil

	case key.Matches(msg, AppKeys.NextFocus) && !(typing && a.term.Suggesting()):
		return a.cycleFocus(1)

	case key.Matches(msg, AppKeys.PrevFocus):
		return a.cycleFocus(-1)

	case !typing && key.Matches(msg, AppKeys.Quit):
		return tea.Quit

	case !typing && key.Matches(msg, AppKeys.Help):
		a.showHelp = true
		return nil
	}

	var cmd tea.Cmd
	switch a.focus {
	case FocusExplorer:
		_, cmd = a.explorer.Update(msg)
	case FocusEditor:
		_, cmd = a.pane.Update(msg)
	case FocusTerminal:
		_, cmd = a.term.Update(msg)
	}
	return cmd
}

func (a *App) followLink(dest string) tea.Cmd {
	if markdown.IsInternal(dest) && a.ws.OpenDocument(dest) {
		id := a.ws.ActiveID()
		return func() tea.Msg { return views.DocumentOpenedMsg{ID: id} }
	}
	if a.browser == nil {
		a.message = "no browser configured for " + dest
		a.messageErr = true
		return nil
	}
	opener := a.browser
	return func() tea.Msg {
		if err := opener.OpenURL(dest); err != nil {
			return views.StatusMsg{Text: err.Error(), Err: true}
		}
		return views.StatusMsg{Text: "opened " + dest}
	}
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (a *App) narrow() bool {
	return a.width > 0 && a.width < narrowWidth
}

// explorerVisible reports whether the explorer column is drawn. On narrow
// screens it is a drawer that must be opened explicitly.
func (a *App) explorerVisible() bool {
	if a.ws.ActiveSidebarView() != workspace.SidebarExplorer {
		return false
	}
	if a.narrow() {
		return a.ws.SidebarOpen()
	}
	return true
}

func (a *App) toggleExplorer() {
	if a.narrow() {
		if a.ws.ActiveSidebarView() != workspace.SidebarExplorer {
			a.ws.SetActiveSidebarView(workspace.SidebarExplorer)
		}
		a.ws.SetSidebarOpen(!a.ws.SidebarOpen())
	} else {
		a.ws.ToggleExplorer()
	}
	if a.explorerVisible() {
		a.setFocus(FocusExplorer)
	} else if a.focus == FocusExplorer {
		a.setFocus(FocusEditor)
	}
	a.layout()
}

func (a *App) cycleFocus(delta int) tea.Cmd {
	order := []Focus{FocusExplorer, FocusEditor, FocusTerminal}
	if !a.explorerVisible() {
		order = order[1:]
	}
	idx := 0
	for i, f := range order {
		if f == a.focus {
			idx = i
		}
	}
	n := len(order)
	return a.setFocus(order[((idx+delta)%n+n)%n])
}

func (a *App) setFocus(f Focus) tea.Cmd {
	a.focus = f
	return a.applyFocus()
}

func (a *App) applyFocus() tea.Cmd {
	a.explorer.SetFocused(a.focus == FocusExplorer)
	if a.focus == FocusTerminal {
		return a.term.Focus()
	}
	a.term.Blur()
	return nil
}

func (a *App) layout() {
	body := max(a.height-2, 1)
	termHeight := max(body/3, minTerminal)
	mainWidth := a.width - views.ActivityBarWidth
	if a.explorerVisible() && !a.narrow() {
		mainWidth -= explorerWidth
	}
	mainWidth = max(mainWidth, 10)

	a.explorer.SetSize(explorerWidth, body)
	a.pane.SetSize(mainWidth, max(body-termHeight, 1))
	a.term.SetSize(mainWidth, termHeight)
	a.palette.SetSize(a.width, a.height)
	a.help.SetSize(a.width, a.height)
}

// View renders the shell
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}
	if a.showHelp {
		return a.help.View()
	}

	body := max(a.height-2, 1)
	titleBar := views.RenderTitleBar(a.ws, a.width)
	statusBar := views.RenderStatusBar(a.ws, a.width, a.message, a.messageErr)

	if a.ws.PaletteOpen() {
		overlay := lipgloss.Place(a.width, body, lipgloss.Center, lipgloss.Top, a.palette.View())
		return lipgloss.JoinVertical(lipgloss.Left, titleBar, overlay, statusBar)
	}

	mainWidth := a.pane.Width
	editorHeight := a.pane.Height
	main := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(mainWidth).Height(editorHeight).MaxHeight(editorHeight).Render(a.pane.View()),
		lipgloss.NewStyle().Width(mainWidth).Height(a.term.Height).MaxHeight(a.term.Height).Render(a.term.View()),
	)

	columns := []string{views.RenderActivityBar(a.ws, body)}
	switch {
	case a.explorerVisible() && a.narrow():
		// drawer replaces the editor area
		main = lipgloss.NewStyle().Width(mainWidth).Height(body).MaxHeight(body).Render(a.explorer.View())
	case a.explorerVisible():
		columns = append(columns, lipgloss.NewStyle().Width(explorerWidth).Height(body).MaxHeight(body).Render(a.explorer.View()))
	}
	columns = append(columns, main)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleBar,
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		statusBar,
	)
}
