package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"devfolio/internal/adapters/markdown"
	"devfolio/internal/adapters/tui/styles"
	"devfolio/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMuted renders muted/secondary text
func RenderMuted(text string) string {
	return styles.MutedText.Render(text)
}

// RenderPanelHeader renders the upper-case title row of a panel
func RenderPanelHeader(title string, width int, focused bool) string {
	header := styles.PanelHeader
	if focused {
		header = styles.PanelHeaderFocused
	}
	return header.Width(max(width, 1)).Render(" " + strings.ToUpper(title))
}

// RenderBadge renders a language badge in its language color
func RenderBadge(lang domain.Lang) string {
	badge := lang.Badge()
	return styles.StatusKey.
		Background(styles.LangColor(badge)).
		Foreground(styles.Black).
		Render(badge)
}

// RenderBreadcrumbs joins the display path segments of a document
func RenderBreadcrumbs(doc domain.Document) string {
	crumbs := doc.Breadcrumbs()
	parts := make([]string, len(crumbs))
	for i, c := range crumbs {
		parts[i] = styles.Breadcrumb.Render(c)
	}
	return strings.Join(parts, styles.BreadcrumbSeparator.String())
}

// RenderTags renders a document's tags as #tag labels, or its language
// badge when it has none
func RenderTags(doc domain.Document) string {
	if len(doc.Tags) == 0 {
		return RenderBadge(doc.Lang)
	}
	labels := make([]string, len(doc.Tags))
	for i, tag := range doc.Tags {
		labels[i] = styles.Tag.Render("#" + tag)
	}
	return strings.Join(labels, " ")
}

// RenderLink renders the n-th link of a document, internal links in the
// workspace color
func RenderLink(n int, dest string) string {
	style := styles.LinkExternal
	if markdown.IsInternal(dest) {
		style = styles.LinkInternal
	}
	return fmt.Sprintf("%s %s", styles.LinkIndex.Render(fmt.Sprintf("[%d]", n)), style.Render(dest))
}

// RenderTab renders one editor tab; the active tab carries the close mark
func RenderTab(doc domain.Document, active bool) string {
	label := fmt.Sprintf("%s %s", doc.Icon.Glyph(), doc.Filename)
	if active {
		return styles.TabActive.Render(label + " ×")
	}
	return styles.Tab.Render(label)
}

// Center places a block in the middle of a width x height area
func Center(width, height int, block string) string {
	return lipgloss.Place(max(width, 1), max(height, 1), lipgloss.Center, lipgloss.Center, block)
}
