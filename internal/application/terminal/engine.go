// Package terminal interprets the text typed into the shell's terminal panel.
//
// The engine never opens documents itself. A recognised document command
// yields a PendingOpen that the caller resolves after its delay; pending opens
// are not cancelled or coalesced by later commands.
package terminal

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"devfolio/internal/domain"
)

// DefaultImportDelay is the pause between the import line and the open
const DefaultImportDelay = 400 * time.Millisecond

// Action tells the caller what a command did
type Action int

const (
	ActionNone Action = iota
	ActionClear
	ActionCloseAll
	ActionHelp
	ActionImport
	ActionUnknown
)

// Reserved command names. Each is accepted with or without the prefix.
const (
	CmdClear        = "clear"
	CmdClearHistory = "clear-history"
	CmdCloseAll     = "close-all"
	CmdHelp         = "help"
)

var reserved = map[string]Action{
	CmdClear:        ActionClear,
	CmdClearHistory: ActionClear,
	CmdCloseAll:     ActionCloseAll,
	CmdHelp:         ActionHelp,
}

// Controller is the part of the workspace the engine drives
type Controller interface {
	CloseAll()
	OpenDocument(id string) bool
}

// PendingOpen is a deferred request to open a document
type PendingOpen struct {
	ID    string
	Delay time.Duration
}

// Result describes the outcome of one Execute call
type Result struct {
	Action Action
	Open   *PendingOpen
}

// Engine executes terminal commands against a store and a workspace
type Engine struct {
	store      *domain.Store
	controller Controller
	history    History
	delay      time.Duration
	logger     *zap.Logger
}

// Option configures the Engine
type Option func(*Engine)

// WithDelay sets the import delay
func WithDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.delay = d
		}
	}
}

// WithLogger sets the engine logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine
func NewEngine(store *domain.Store, controller Controller, opts ...Option) *Engine {
	e := &Engine{
		store:      store,
		controller: controller,
		delay:      DefaultImportDelay,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// History returns the scrollback
func (e *Engine) History() []Entry {
	return e.history.Entries()
}

// ClearHistory empties the scrollback without recording a command
func (e *Engine) ClearHistory() {
	e.history.Clear()
}

// Execute interprets one submitted line
func (e *Engine) Execute(text string) Result {
	e.history.Append(EntryCommand, text)

	name := strings.TrimPrefix(strings.TrimSpace(text), domain.KeyPrefix)
	if action, ok := reserved[name]; ok {
		return e.runReserved(action)
	}

	doc, ok := e.store.LookupCommand(text)
	if !ok {
		e.history.Append(EntryError, fmt.Sprintf("command not found: %s", strings.TrimSpace(text)))
		e.logger.Debug("unknown command", zap.String("text", text))
		return Result{Action: ActionUnknown}
	}

	e.history.Append(EntryOutput, ImportLine(doc))
	e.logger.Debug("import scheduled", zap.String("id", doc.ID), zap.Duration("delay", e.delay))
	return Result{
		Action: ActionImport,
		Open:   &PendingOpen{ID: doc.ID, Delay: e.delay},
	}
}

func (e *Engine) runReserved(action Action) Result {
	switch action {
	case ActionClear:
		e.history.Clear()
	case ActionCloseAll:
		e.controller.CloseAll()
		e.history.Append(EntryOutput, "closed all editors")
	case ActionHelp:
		for _, line := range HelpLines(e.store) {
			e.history.Append(EntryOutput, line)
		}
	}
	return Result{Action: action}
}

// Resolve opens the document of a pending request. It reports whether the
// document could still be resolved.
func (e *Engine) Resolve(p PendingOpen) bool {
	ok := e.controller.OpenDocument(p.ID)
	if !ok {
		e.logger.Warn("pending open failed", zap.String("id", p.ID))
	}
	return ok
}

// ImportLine is the simulated module import shown for a document command
func ImportLine(doc domain.Document) string {
	module := doc.Module
	if module == "" {
		module = "module"
	}
	return fmt.Sprintf("from %s import %s  # loading %s", module, moduleName(doc), doc.Filename)
}

func moduleName(doc domain.Document) string {
	name := strings.ReplaceAll(doc.Title(), "-", "_")
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		return "*"
	}
	return name
}

// HelpLines lists the reserved commands and a few document commands
func HelpLines(store *domain.Store) []string {
	lines := []string{
		"available commands:",
		"  /clear        clear the terminal",
		"  /close-all    close every open editor",
		"  /help         show this message",
	}
	keys := store.Keys()
	if len(keys) > 0 {
		lines = append(lines, "documents:")
	}
	for _, k := range keys {
		lines = append(lines, "  "+k)
	}
	return lines
}
