// Package workspace owns the session state of the shell: the open tab list,
// the active tab and the visibility of the palette and sidebar.
//
// A Controller is passed explicitly to every display surface. It is not safe
// for concurrent use; the shell drives it from a single event loop.
package workspace

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devfolio/internal/domain"
)

// SidebarView identifies the panel shown next to the activity bar
type SidebarView string

const (
	SidebarNone     SidebarView = ""
	SidebarExplorer SidebarView = "explorer"
)

// Controller is the workspace state machine
type Controller struct {
	store     *domain.Store
	logger    *zap.Logger
	sessionID string
	profileID string
	initialID string

	tabs   []string
	active string

	paletteOpen bool
	sidebarOpen bool
	sidebarView SidebarView
}

// Option configures the Controller
type Option func(*Controller)

// WithLogger sets the logger used for state transitions
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithInitialDocument opens a document next to the profile at session start
func WithInitialDocument(id string) Option {
	return func(c *Controller) {
		c.initialID = id
	}
}

// WithProfileID overrides the profile document opened by default
func WithProfileID(id string) Option {
	return func(c *Controller) {
		c.profileID = id
	}
}

// New creates a workspace over an immutable store
func New(store *domain.Store, opts ...Option) *Controller {
	c := &Controller{
		store:       store,
		logger:      zap.NewNop(),
		sessionID:   uuid.NewString(),
		profileID:   domain.ProfileID,
		sidebarView: SidebarExplorer,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("session", c.sessionID))

	if doc, ok := store.Resolve(c.profileID); ok {
		c.tabs = append(c.tabs, doc.ID)
		c.active = doc.ID
	}
	if c.initialID != "" {
		if !c.OpenDocument(c.initialID) {
			c.logger.Warn("initial document not found", zap.String("id", c.initialID))
		}
	}

	c.logger.Debug("workspace started",
		zap.Int("documents", store.Len()),
		zap.Strings("tabs", c.tabs),
	)
	return c
}

// Store returns the document store backing the workspace
func (c *Controller) Store() *domain.Store {
	return c.store
}

// SessionID returns the random identifier of this session
func (c *Controller) SessionID() string {
	return c.sessionID
}

// ProfileID returns the profile document ID
func (c *Controller) ProfileID() string {
	return c.profileID
}

// OpenDocument resolves an identifier with or without a leading separator,
// appends it to the tabs when absent and makes it active. It reports whether
// resolution succeeded so callers can fall back (e.g. external links).
func (c *Controller) OpenDocument(requested string) bool {
	doc, ok := c.store.Resolve(requested)
	if !ok {
		c.logger.Debug("open failed", zap.String("requested", requested))
		return false
	}

	if !slices.Contains(c.tabs, doc.ID) {
		c.tabs = append(c.tabs, doc.ID)
	}
	c.active = doc.ID
	c.logger.Debug("document opened", zap.String("id", doc.ID), zap.Int("tabs", len(c.tabs)))
	return true
}

// CloseTab removes a tab. Closing the active tab promotes the last remaining
// tab; closing any other tab leaves the active tab alone.
func (c *Controller) CloseTab(id string) {
	idx := slices.Index(c.tabs, id)
	if idx < 0 {
		return
	}
	c.tabs = slices.Delete(c.tabs, idx, idx+1)

	switch {
	case len(c.tabs) == 0:
		c.active = ""
	case c.active == id:
		c.active = c.tabs[len(c.tabs)-1]
	}
	c.logger.Debug("tab closed", zap.String("id", id), zap.String("active", c.active))
}

// SwitchTab activates an already open tab
func (c *Controller) SwitchTab(id string) bool {
	if !slices.Contains(c.tabs, id) {
		return false
	}
	c.active = id
	return true
}

// CycleTab moves the active tab by delta positions, wrapping around
func (c *Controller) CycleTab(delta int) {
	if len(c.tabs) == 0 {
		return
	}
	idx := slices.Index(c.tabs, c.active)
	if idx < 0 {
		idx = 0
	}
	n := len(c.tabs)
	c.active = c.tabs[((idx+delta)%n+n)%n]
}

// CloseAll empties the tab list
func (c *Controller) CloseAll() {
	c.tabs = nil
	c.active = ""
	c.logger.Debug("all tabs closed")
}

// Tabs returns the open tab IDs in order
func (c *Controller) Tabs() []string {
	return slices.Clone(c.tabs)
}

// ActiveID returns the active tab ID, or "" when none
func (c *Controller) ActiveID() string {
	return c.active
}

// ActiveDocument returns the document shown in the editor
func (c *Controller) ActiveDocument() (domain.Document, bool) {
	if c.active == "" {
		return domain.Document{}, false
	}
	return c.store.FindByID(c.active)
}

// Location returns the addressable location of the active document
func (c *Controller) Location() string {
	switch c.active {
	case "":
		return ""
	case c.profileID:
		return "/"
	default:
		return domain.KeyFor(c.active)
	}
}

// PaletteOpen reports whether the command palette is visible
func (c *Controller) PaletteOpen() bool {
	return c.paletteOpen
}

// SetPaletteOpen shows or hides the command palette
func (c *Controller) SetPaletteOpen(open bool) {
	c.paletteOpen = open
}

// TogglePalette flips the palette visibility
func (c *Controller) TogglePalette() {
	c.paletteOpen = !c.paletteOpen
}

// SidebarOpen reports whether the narrow-screen drawer is open
func (c *Controller) SidebarOpen() bool {
	return c.sidebarOpen
}

// SetSidebarOpen opens or closes the narrow-screen drawer
func (c *Controller) SetSidebarOpen(open bool) {
	c.sidebarOpen = open
}

// ActiveSidebarView returns the panel next to the activity bar
func (c *Controller) ActiveSidebarView() SidebarView {
	return c.sidebarView
}

// SetActiveSidebarView changes the panel next to the activity bar
func (c *Controller) SetActiveSidebarView(view SidebarView) {
	c.sidebarView = view
}

// ToggleExplorer shows the explorer, or hides it when already shown
func (c *Controller) ToggleExplorer() {
	if c.sidebarView == SidebarExplorer {
		c.sidebarView = SidebarNone
		return
	}
	c.sidebarView = SidebarExplorer
}
