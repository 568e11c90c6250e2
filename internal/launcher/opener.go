package launcher

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

const (
	// BrowserDefault opens with the platform's default URL handler.
	BrowserDefault = "default"
	// BrowserSystem is an alias for BrowserDefault.
	BrowserSystem = "system"
)

// SystemOpener starts the named browser program with the URL.
type SystemOpener struct {
	goos     string
	openURL  func(url string) error
	startCmd func(cmd *exec.Cmd) error
}

// NewSystemOpener creates an opener for the current platform.
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{
		goos:     runtime.GOOS,
		openURL:  browser.OpenURL,
		startCmd: startDetached,
	}
}

// Open implements Opener.
func (o *SystemOpener) Open(url, browserName string) error {
	if browserName == BrowserDefault || browserName == BrowserSystem {
		return o.openURL(url)
	}
	return o.startCmd(buildBrowserCommand(o.goos, url, browserName))
}

// buildBrowserCommand builds the command that opens url in browserName.
func buildBrowserCommand(goos, url, browserName string) *exec.Cmd {
	switch goos {
	case "darwin":
		// Application names like "Google Chrome" are resolved by open(1).
		return exec.Command("open", "-a", browserName, url)
	case "windows":
		// Empty title so the URL is not taken as the window title.
		return exec.Command("cmd", "/c", "start", "", browserName, url)
	default:
		return exec.Command(browserName, url)
	}
}

// startDetached starts cmd without waiting for it; a browser may run long
// after bo has exited.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// ClipboardOpener copies the URL to the clipboard instead of opening it.
type ClipboardOpener struct {
	write func(text string) error
}

// NewClipboardOpener creates an opener backed by the system clipboard.
func NewClipboardOpener() *ClipboardOpener {
	return &ClipboardOpener{write: clipboard.WriteAll}
}

// Open implements Opener. The browser is ignored.
func (o *ClipboardOpener) Open(url, _ string) error {
	if err := o.write(url); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
