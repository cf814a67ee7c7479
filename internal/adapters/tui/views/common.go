package views

import (
	"devfolio/internal/application"
	"devfolio/internal/application/workspace"
)

// ViewState contains the dimensions shared by all view models.
// Embed this struct in view models to get SetSize.
type ViewState struct {
	Width  int
	Height int
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// requireWorkspace panics when a view is built without a workspace
func requireWorkspace(ws *workspace.Controller) {
	if ws == nil {
		panic(application.ErrNoWorkspace)
	}
}
