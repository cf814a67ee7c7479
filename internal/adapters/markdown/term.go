package markdown

import (
	"sync"

	"github.com/charmbracelet/glamour"

	"devfolio/internal/domain"
	"devfolio/internal/ports"
)

// DefaultTermStyle is the glamour style used by the shell
const DefaultTermStyle = "dark"

// TermRenderer implements ports.DocumentRenderer with glamour.
// Renderers are built lazily per width.
type TermRenderer struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// Ensure TermRenderer implements DocumentRenderer
var _ ports.DocumentRenderer = (*TermRenderer)(nil)

// NewTermRenderer creates a renderer for a glamour standard style
// ("dark", "light", "notty", ...).
func NewTermRenderer(style string) *TermRenderer {
	if style == "" {
		style = DefaultTermStyle
	}
	return &TermRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Render renders a document body, falling back to the raw text when glamour
// fails or panics.
func (r *TermRenderer) Render(doc domain.Document, width int) (result string) {
	content := doc.Content
	defer func() {
		if rec := recover(); rec != nil {
			result = content
		}
	}()

	if content == "" {
		return ""
	}
	tr, err := r.renderer(width)
	if err != nil {
		return content
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func (r *TermRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	if width < 20 {
		width = 20
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if tr, ok := r.renderers[width]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.renderers[width] = tr
	return tr, nil
}
