package terminal

import (
	"cmp"
	"slices"
	"strings"

	"devfolio/internal/domain"
)

// PromptState is the autocomplete state
type PromptState int

const (
	Idle PromptState = iota
	Suggesting
)

// NoHighlight marks that no suggestion has been navigated to yet
const NoHighlight = -1

// Prompt holds the terminal input line and its suggestion list
type Prompt struct {
	keys        []string
	input       string
	suggestions []string
	highlight   int
}

// NewPrompt creates a prompt that suggests from the given lookup keys
func NewPrompt(keys []string) *Prompt {
	return &Prompt{
		keys:      slices.Clone(keys),
		highlight: NoHighlight,
	}
}

// Input returns the current input text
func (p *Prompt) Input() string {
	return p.input
}

// State reports whether suggestions are showing
func (p *Prompt) State() PromptState {
	if len(p.suggestions) > 0 {
		return Suggesting
	}
	return Idle
}

// Suggestions returns the visible suggestions in display order
func (p *Prompt) Suggestions() []string {
	return slices.Clone(p.suggestions)
}

// Highlight returns the highlighted suggestion index, or NoHighlight
func (p *Prompt) Highlight() int {
	return p.highlight
}

// SetInput replaces the input and recomputes suggestions
func (p *Prompt) SetInput(v string) {
	p.input = v
	p.highlight = NoHighlight
	p.suggestions = nil

	if !strings.HasPrefix(v, domain.KeyPrefix) {
		return
	}
	for _, k := range p.keys {
		if strings.HasPrefix(k, v) {
			p.suggestions = append(p.suggestions, k)
		}
	}
	slices.SortFunc(p.suggestions, func(a, b string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

// Next highlights the following suggestion, wrapping at the end
func (p *Prompt) Next() {
	n := len(p.suggestions)
	if n == 0 {
		return
	}
	if p.highlight == NoHighlight {
		p.highlight = 0
		return
	}
	p.highlight = (p.highlight + 1) % n
}

// Prev highlights the preceding suggestion, wrapping at the start
func (p *Prompt) Prev() {
	n := len(p.suggestions)
	if n == 0 {
		return
	}
	if p.highlight == NoHighlight {
		p.highlight = n - 1
		return
	}
	p.highlight = (p.highlight - 1 + n) % n
}

// Cancel hides the suggestions and keeps the input
func (p *Prompt) Cancel() {
	p.suggestions = nil
	p.highlight = NoHighlight
}

// Complete fills the input with the highlighted suggestion, or the first one
// when nothing is highlighted, and hides the list.
func (p *Prompt) Complete() bool {
	if len(p.suggestions) == 0 {
		return false
	}
	idx := p.highlight
	if idx == NoHighlight {
		idx = 0
	}
	p.input = p.suggestions[idx]
	p.Cancel()
	return true
}

// Submit returns the command to execute and resets the prompt. A highlighted
// suggestion takes precedence over the typed text. ok is false when there is
// nothing to run.
func (p *Prompt) Submit() (command string, ok bool) {
	if p.highlight != NoHighlight && p.highlight < len(p.suggestions) {
		command = p.suggestions[p.highlight]
	} else {
		command = strings.TrimSpace(p.input)
	}

	p.input = ""
	p.Cancel()
	return command, command != ""
}
