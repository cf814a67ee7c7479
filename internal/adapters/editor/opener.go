package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"devfolio/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
}

// OpenFile opens a file in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor.
// Editor variables may carry arguments, e.g. "code --wait".
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	if path == "" {
		return nil, fmt.Errorf("document has no source file")
	}
	editor := o.findEditor()
	if len(editor) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	args := append(editor[1:], path)
	cmd := exec.Command(editor[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor command line to use
func (o *Opener) findEditor() []string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(o.getenv(env)); len(fields) > 0 {
			return fields
		}
	}

	// Try common editors
	for _, editor := range []string{"nvim", "vim", "vi", "nano", "code"} {
		if path, err := o.lookPath(editor); err == nil {
			return []string{path}
		}
	}

	return nil
}
