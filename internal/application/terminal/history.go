package terminal

// EntryKind classifies a history line
type EntryKind int

const (
	EntryCommand EntryKind = iota
	EntryOutput
	EntryError
)

func (k EntryKind) String() string {
	switch k {
	case EntryCommand:
		return "command"
	case EntryOutput:
		return "output"
	case EntryError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is one line of terminal history
type Entry struct {
	Kind EntryKind
	Text string
}

// History is the terminal scrollback. It only grows, except for Clear.
type History struct {
	entries []Entry
}

// Append adds an entry at the end
func (h *History) Append(kind EntryKind, text string) {
	h.entries = append(h.entries, Entry{Kind: kind, Text: text})
}

// Clear removes every entry
func (h *History) Clear() {
	h.entries = nil
}

// Entries returns a copy of the history in order
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}
