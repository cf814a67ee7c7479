package terminal

import (
	"strings"
	"testing"
	"time"

	"devfolio/internal/domain"
)

type fakeController struct {
	store    *domain.Store
	tabs     []string
	closed   int
	openings []string
}

func (f *fakeController) CloseAll() {
	f.closed++
	f.tabs = nil
}

func (f *fakeController) OpenDocument(id string) bool {
	doc, ok := f.store.Resolve(id)
	if !ok {
		return false
	}
	f.openings = append(f.openings, doc.ID)
	f.tabs = append(f.tabs, doc.ID)
	return true
}

func newEngine(t *testing.T) (*Engine, *fakeController) {
	t.Helper()
	store := domain.NewStore(map[string]domain.Document{
		"/about":           {ID: "about", Filename: "about.md", Module: "profile"},
		"/works/microbase": {ID: "works/microbase", Filename: "microbase.mdx", Module: "works"},
	})
	ctrl := &fakeController{store: store, tabs: []string{"about"}}
	return NewEngine(store, ctrl, WithDelay(10*time.Millisecond)), ctrl
}

func kinds(entries []Entry) []EntryKind {
	out := make([]EntryKind, len(entries))
	for i, e := range entries {
		out[i] = e.Kind
	}
	return out
}

func TestEngine_DocumentCommand(t *testing.T) {
	for _, text := range []string{"/works/microbase", "works/microbase"} {
		t.Run(text, func(t *testing.T) {
			e, ctrl := newEngine(t)
			res := e.Execute(text)

			if res.Action != ActionImport || res.Open == nil {
				t.Fatalf("result = %+v, want import", res)
			}
			if res.Open.ID != "works/microbase" || res.Open.Delay != 10*time.Millisecond {
				t.Errorf("pending = %+v", *res.Open)
			}
			h := e.History()
			if len(h) != 2 || h[0].Kind != EntryCommand || h[0].Text != text || h[1].Kind != EntryOutput {
				t.Fatalf("history = %+v", h)
			}
			if !strings.Contains(h[1].Text, "works") || !strings.Contains(h[1].Text, "microbase.mdx") {
				t.Errorf("import line = %q", h[1].Text)
			}
			if len(ctrl.openings) != 0 {
				t.Error("execute must not open before the delay")
			}

			if !e.Resolve(*res.Open) {
				t.Fatal("resolve failed")
			}
			if len(ctrl.openings) != 1 || ctrl.openings[0] != "works/microbase" {
				t.Errorf("openings = %v", ctrl.openings)
			}
		})
	}
}

func TestEngine_UnknownCommand(t *testing.T) {
	e, _ := newEngine(t)
	res := e.Execute("rm -rf /")

	if res.Action != ActionUnknown || res.Open != nil {
		t.Errorf("result = %+v", res)
	}
	h := e.History()
	if got := kinds(h); len(got) != 2 || got[0] != EntryCommand || got[1] != EntryError {
		t.Fatalf("kinds = %v", got)
	}
	if !strings.Contains(h[1].Text, "command not found") {
		t.Errorf("error text = %q", h[1].Text)
	}
}

func TestEngine_Clear(t *testing.T) {
	for _, text := range []string{"clear", "/clear", "clear-history", "/clear-history"} {
		t.Run(text, func(t *testing.T) {
			e, _ := newEngine(t)
			e.Execute("/about")
			e.Execute("nope")

			res := e.Execute(text)
			if res.Action != ActionClear {
				t.Errorf("action = %v", res.Action)
			}
			if len(e.History()) != 0 {
				t.Errorf("history = %+v, want empty", e.History())
			}
		})
	}
}

func TestEngine_CloseAll(t *testing.T) {
	e, ctrl := newEngine(t)
	res := e.Execute("close-all")

	if res.Action != ActionCloseAll || ctrl.closed != 1 || len(ctrl.tabs) != 0 {
		t.Errorf("result = %+v closed=%d tabs=%v", res, ctrl.closed, ctrl.tabs)
	}
	if got := kinds(e.History()); len(got) != 2 || got[1] != EntryOutput {
		t.Errorf("kinds = %v", got)
	}
}

func TestEngine_Help(t *testing.T) {
	e, _ := newEngine(t)
	e.Execute("/help")

	var text strings.Builder
	for _, entry := range e.History()[1:] {
		if entry.Kind != EntryOutput {
			t.Errorf("help entry kind = %v", entry.Kind)
		}
		text.WriteString(entry.Text + "\n")
	}
	for _, want := range []string{"/clear", "/close-all", "/works/microbase"} {
		if !strings.Contains(text.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestEngine_PendingOpenSurvivesCloseAll(t *testing.T) {
	e, ctrl := newEngine(t)

	res := e.Execute("/works/microbase")
	e.Execute("/close-all")
	e.Execute("/clear")

	if !e.Resolve(*res.Open) {
		t.Fatal("pending open should still resolve")
	}
	if len(ctrl.tabs) != 1 || ctrl.tabs[0] != "works/microbase" {
		t.Errorf("tabs = %v, want the pending document", ctrl.tabs)
	}
}

func TestEngine_PendingOpensNotCoalesced(t *testing.T) {
	e, ctrl := newEngine(t)

	first := e.Execute("/about")
	second := e.Execute("/works/microbase")
	e.Resolve(*first.Open)
	e.Resolve(*second.Open)

	if len(ctrl.openings) != 2 {
		t.Errorf("openings = %v, want both", ctrl.openings)
	}
}

func TestImportLine_DefaultModule(t *testing.T) {
	line := ImportLine(domain.Document{Filename: "notes.md"})
	if !strings.HasPrefix(line, "from module import notes") {
		t.Errorf("line = %q", line)
	}
}
