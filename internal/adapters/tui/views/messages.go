package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"devfolio/internal/application/terminal"
)

// DocumentOpenedMsg is sent after a view opened a document in the workspace
type DocumentOpenedMsg struct {
	ID string
}

// FollowLinkMsg asks the shell to follow a link from the active document
type FollowLinkMsg struct {
	Dest string
}

// OpenEditorMsg asks the shell to open a source file in $EDITOR
type OpenEditorMsg struct {
	Path string
}

// PendingOpenMsg fires when the import delay of a terminal command elapsed
type PendingOpenMsg struct {
	Open terminal.PendingOpen
}

// StatusMsg sets the status bar message
type StatusMsg struct {
	Text string
	Err  bool
}

// CloseHelpMsg hides the help view
type CloseHelpMsg struct{}

func openedCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return DocumentOpenedMsg{ID: id}
	}
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text, Err: isErr}
	}
}
