// Package browser opens avatar and profile links in the user's browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// command builds the platform opener. Replaced in tests.
var command = func(goos, target string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux":
		return exec.Command("xdg-open", target), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

// Open opens an http(s) URL in the default browser. Other schemes are
// refused since links come from untrusted review data.
func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("browser.Open: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("browser.Open: refusing %q link", u.Scheme)
	}
	cmd, err := command(runtime.GOOS, u.String())
	if err != nil {
		return fmt.Errorf("browser.Open: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("browser.Open: %w", err)
	}
	return nil
}
