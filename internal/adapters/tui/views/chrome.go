package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"devfolio/internal/adapters/tui/styles"
	"devfolio/internal/application/workspace"
)

// ActivityBarWidth is the width of the icon column left of the explorer
const ActivityBarWidth = 3

// RenderTitleBar renders the window title with the active document
func RenderTitleBar(ws *workspace.Controller, width int) string {
	title := "devfolio"
	if doc, ok := ws.ActiveDocument(); ok {
		title = doc.Filename + " - devfolio"
	}
	return styles.TitleBar.
		Width(width).
		Align(lipgloss.Center).
		Render(title)
}

// RenderActivityBar renders the icon column. The explorer icon is lit while
// the explorer is the active sidebar view.
func RenderActivityBar(ws *workspace.Controller, height int) string {
	icons := []struct {
		glyph  string
		active bool
	}{
		{"▤", ws.ActiveSidebarView() == workspace.SidebarExplorer},
		{"⌕", ws.PaletteOpen()},
		{"◉", ws.ActiveID() == ws.ProfileID()},
	}

	var lines []string
	for _, icon := range icons {
		if icon.active {
			lines = append(lines, styles.ActivityActive.Render(icon.glyph))
		} else {
			lines = append(lines, icon.glyph)
		}
	}
	return styles.ActivityBar.
		Width(ActivityBarWidth).
		Height(max(height, len(lines))).
		Render(strings.Join(lines, "\n"))
}

// RenderStatusBar renders the bottom bar: language badge, location, tab
// count, a message and the session
func RenderStatusBar(ws *workspace.Controller, width int, message string, isErr bool) string {
	var left []string
	if doc, ok := ws.ActiveDocument(); ok {
		left = append(left,
			RenderBadge(doc.Lang),
			styles.StatusText.Render(ws.Location()),
		)
	} else {
		left = append(left, styles.StatusText.Render("no editor"))
	}
	left = append(left, styles.StatusText.Render(fmt.Sprintf("  %d tab(s)", len(ws.Tabs()))))
	if message != "" {
		msg := styles.StatusText.Render("  " + message)
		if isErr {
			msg = styles.ErrorMsg.Render("  " + message)
		}
		left = append(left, msg)
	}

	session := ws.SessionID()
	if len(session) > 8 {
		session = session[:8]
	}
	right := styles.StatusText.Render("session " + session)

	leftStr := lipgloss.JoinHorizontal(lipgloss.Top, left...)
	gap := max(width-lipgloss.Width(leftStr)-lipgloss.Width(right)-2, 1)
	return styles.StatusBar.Width(width).Render(leftStr + strings.Repeat(" ", gap) + right)
}
