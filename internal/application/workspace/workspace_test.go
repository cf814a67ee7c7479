package workspace

import (
	"slices"
	"testing"

	"devfolio/internal/domain"
)

func newStore() *domain.Store {
	return domain.NewStore(map[string]domain.Document{
		"/about":           {ID: "about", Filename: "about.md"},
		"/works":           {ID: "works", Filename: "works.mdx"},
		"/works/microbase": {ID: "works/microbase", Filename: "microbase.md"},
		"/contact":         {ID: "contact", Filename: "contact.md"},
	})
}

func assertInvariant(t *testing.T, c *Controller) {
	t.Helper()
	if c.ActiveID() != "" && !slices.Contains(c.Tabs(), c.ActiveID()) {
		t.Fatalf("active %q not in tabs %v", c.ActiveID(), c.Tabs())
	}
}

func TestNew_DefaultsToProfile(t *testing.T) {
	c := New(newStore())
	if got := c.Tabs(); !slices.Equal(got, []string{"about"}) {
		t.Errorf("tabs = %v, want [about]", got)
	}
	if c.ActiveID() != "about" {
		t.Errorf("active = %q, want about", c.ActiveID())
	}
	if c.Location() != "/" {
		t.Errorf("location = %q, want /", c.Location())
	}
	if c.SessionID() == "" {
		t.Error("expected a session id")
	}
}

func TestNew_InitialDocument(t *testing.T) {
	c := New(newStore(), WithInitialDocument("/works/microbase"))
	if got := c.Tabs(); !slices.Equal(got, []string{"about", "works/microbase"}) {
		t.Errorf("tabs = %v", got)
	}
	if c.ActiveID() != "works/microbase" {
		t.Errorf("active = %q", c.ActiveID())
	}
	if c.Location() != "/works/microbase" {
		t.Errorf("location = %q", c.Location())
	}
}

func TestNew_InitialProfileNotDuplicated(t *testing.T) {
	c := New(newStore(), WithInitialDocument("about"))
	if got := c.Tabs(); !slices.Equal(got, []string{"about"}) {
		t.Errorf("tabs = %v", got)
	}
}

func TestNew_EmptyWhenProfileMissing(t *testing.T) {
	c := New(domain.NewStore(nil))
	if len(c.Tabs()) != 0 || c.ActiveID() != "" || c.Location() != "" {
		t.Errorf("expected empty workspace, got tabs=%v active=%q", c.Tabs(), c.ActiveID())
	}
	if _, ok := c.ActiveDocument(); ok {
		t.Error("expected no active document")
	}
}

func TestOpenDocument(t *testing.T) {
	c := New(newStore())

	if !c.OpenDocument("/contact") {
		t.Fatal("expected /contact to resolve")
	}
	if !c.OpenDocument("works") {
		t.Fatal("expected works to resolve")
	}
	if got := c.Tabs(); !slices.Equal(got, []string{"about", "contact", "works"}) {
		t.Errorf("tabs = %v", got)
	}
	if c.ActiveID() != "works" {
		t.Errorf("active = %q", c.ActiveID())
	}
	assertInvariant(t, c)
}

func TestOpenDocument_AlreadyOpenMovesFocus(t *testing.T) {
	c := New(newStore())
	c.OpenDocument("contact")
	c.OpenDocument("works")

	if !c.OpenDocument("/contact") {
		t.Fatal("expected success")
	}
	if got := c.Tabs(); !slices.Equal(got, []string{"about", "contact", "works"}) {
		t.Errorf("tabs = %v, want no duplicate", got)
	}
	if c.ActiveID() != "contact" {
		t.Errorf("active = %q, want contact", c.ActiveID())
	}
}

func TestOpenDocument_Unknown(t *testing.T) {
	c := New(newStore())
	if c.OpenDocument("https://example.com") {
		t.Error("external link should not resolve")
	}
	if got := c.Tabs(); !slices.Equal(got, []string{"about"}) {
		t.Errorf("tabs changed on failed open: %v", got)
	}
	if c.ActiveID() != "about" {
		t.Errorf("active changed on failed open: %q", c.ActiveID())
	}
}

func TestOpenDocument_EveryIDBothForms(t *testing.T) {
	store := newStore()
	for _, doc := range store.Documents() {
		for _, req := range []string{doc.ID, "/" + doc.ID} {
			c := New(store)
			if !c.OpenDocument(req) || c.ActiveID() != doc.ID {
				t.Errorf("OpenDocument(%q) active=%q", req, c.ActiveID())
			}
		}
	}
}

func TestCloseTab(t *testing.T) {
	tests := []struct {
		name       string
		open       []string
		switchTo   string
		close      string
		wantTabs   []string
		wantActive string
	}{
		{
			name:       "close only tab",
			close:      "about",
			wantTabs:   []string{},
			wantActive: "",
		},
		{
			name:       "close active promotes last",
			open:       []string{"contact", "works"},
			switchTo:   "contact",
			close:      "contact",
			wantTabs:   []string{"about", "works"},
			wantActive: "works",
		},
		{
			name:       "close active last tab promotes new last",
			open:       []string{"contact", "works"},
			close:      "works",
			wantTabs:   []string{"about", "contact"},
			wantActive: "contact",
		},
		{
			name:       "close non-active keeps active",
			open:       []string{"contact", "works"},
			switchTo:   "contact",
			close:      "about",
			wantTabs:   []string{"contact", "works"},
			wantActive: "contact",
		},
		{
			name:       "close unknown is no-op",
			open:       []string{"contact"},
			close:      "nope",
			wantTabs:   []string{"about", "contact"},
			wantActive: "contact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(newStore())
			for _, id := range tt.open {
				c.OpenDocument(id)
			}
			if tt.switchTo != "" {
				c.SwitchTab(tt.switchTo)
			}

			c.CloseTab(tt.close)

			got := c.Tabs()
			if got == nil {
				got = []string{}
			}
			if !slices.Equal(got, tt.wantTabs) {
				t.Errorf("tabs = %v, want %v", got, tt.wantTabs)
			}
			if c.ActiveID() != tt.wantActive {
				t.Errorf("active = %q, want %q", c.ActiveID(), tt.wantActive)
			}
			assertInvariant(t, c)
		})
	}
}

func TestSwitchTab(t *testing.T) {
	c := New(newStore())
	c.OpenDocument("contact")

	if !c.SwitchTab("about") || c.ActiveID() != "about" {
		t.Errorf("switch to open tab failed, active=%q", c.ActiveID())
	}
	if c.SwitchTab("works") {
		t.Error("switch to a tab that is not open should fail")
	}
	if c.ActiveID() != "about" {
		t.Errorf("active changed on rejected switch: %q", c.ActiveID())
	}
}

func TestCycleTab(t *testing.T) {
	c := New(newStore())
	c.OpenDocument("contact")
	c.OpenDocument("works")

	c.CycleTab(1)
	if c.ActiveID() != "about" {
		t.Errorf("next from last should wrap to first, got %q", c.ActiveID())
	}
	c.CycleTab(-1)
	if c.ActiveID() != "works" {
		t.Errorf("prev from first should wrap to last, got %q", c.ActiveID())
	}

	c.CloseAll()
	c.CycleTab(1)
	if c.ActiveID() != "" {
		t.Error("cycling an empty workspace should keep it empty")
	}
}

func TestCloseAll(t *testing.T) {
	c := New(newStore())
	c.OpenDocument("works")
	c.CloseAll()

	if len(c.Tabs()) != 0 || c.ActiveID() != "" {
		t.Errorf("expected empty workspace, got %v / %q", c.Tabs(), c.ActiveID())
	}
	if !c.OpenDocument("contact") || c.ActiveID() != "contact" {
		t.Error("workspace should still open documents after close-all")
	}
}

func TestChromeState(t *testing.T) {
	c := New(newStore())

	if c.PaletteOpen() {
		t.Error("palette should start closed")
	}
	c.TogglePalette()
	if !c.PaletteOpen() {
		t.Error("toggle should open palette")
	}
	c.SetPaletteOpen(false)
	if c.PaletteOpen() {
		t.Error("palette should be closed")
	}

	if c.ActiveSidebarView() != SidebarExplorer {
		t.Errorf("sidebar = %q, want explorer", c.ActiveSidebarView())
	}
	c.ToggleExplorer()
	if c.ActiveSidebarView() != SidebarNone {
		t.Error("toggle should hide explorer")
	}
	c.ToggleExplorer()
	if c.ActiveSidebarView() != SidebarExplorer {
		t.Error("toggle should show explorer again")
	}

	c.SetSidebarOpen(true)
	if !c.SidebarOpen() {
		t.Error("drawer should be open")
	}
}
