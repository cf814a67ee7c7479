// Package desktop integrates with the user's desktop: the system browser and
// the clipboard.
package desktop

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"devfolio/internal/ports"
)

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// Opener implements ports.URLOpener
type Opener struct {
	goos string
	run  func(*exec.Cmd) error
}

// Ensure Opener implements URLOpener
var _ ports.URLOpener = (*Opener)(nil)

// NewOpener creates a new URL opener for the current platform
func NewOpener() *Opener {
	return &Opener{
		goos: runtime.GOOS,
		run:  (*exec.Cmd).Start,
	}
}

// OpenURL opens an external link in the system browser
func (o *Opener) OpenURL(rawURL string) error {
	cmd, err := o.Command(rawURL)
	if err != nil {
		return err
	}
	return o.run(cmd)
}

// Command returns the platform command that opens rawURL
func (o *Opener) Command(rawURL string) (*exec.Cmd, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", u), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", u), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", u), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

// ValidateURL checks that a link is absolute and uses an allowed scheme
func ValidateURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if !allowedSchemes[strings.ToLower(u.Scheme)] {
		return "", fmt.Errorf("refusing to open %q: unsupported scheme", rawURL)
	}
	if u.Scheme != "mailto" && u.Host == "" {
		return "", fmt.Errorf("invalid URL %q: missing host", rawURL)
	}
	return u.String(), nil
}
