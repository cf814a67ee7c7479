package ports

import "devfolio/internal/domain"

// HTMLCompiler turns a Markdown body into render-ready HTML for rich content
type HTMLCompiler interface {
	Compile(source string) (string, error)
}

// DocumentRenderer renders a document for a terminal of the given width
type DocumentRenderer interface {
	Render(doc domain.Document, width int) string
}
