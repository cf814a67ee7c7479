package desktop

import (
	"fmt"

	"github.com/atotto/clipboard"

	"devfolio/internal/ports"
)

// Clipboard implements ports.Clipboard with the system clipboard
type Clipboard struct{}

// Ensure Clipboard implements the port
var _ ports.Clipboard = Clipboard{}

// Copy writes text to the system clipboard
func (Clipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
