// Package browser asks the host operating system to open URLs.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// ErrPlaceholder is returned for links that have no real destination yet.
var ErrPlaceholder = errors.New("placeholder link")

// Opener launches URLs with the platform's default handler.
type Opener struct {
	// start runs the command; replaced in tests.
	start func(cmd *exec.Cmd) error
}

// New returns an Opener that launches real processes.
func New() *Opener {
	return &Opener{start: (*exec.Cmd).Start}
}

// Open launches url in a new browser window or tab. It does not wait for
// the browser to exit.
func (o *Opener) Open(rawURL string) error {
	if rawURL == "" || rawURL == "#" {
		return ErrPlaceholder
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: unsupported scheme %q", rawURL, u.Scheme)
	}

	cmd, err := Command(runtime.GOOS, u.String())
	if err != nil {
		return err
	}
	return o.start(cmd)
}

// Command builds the command that opens url on goos.
func Command(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	case "darwin":
		return exec.Command("open", url), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
