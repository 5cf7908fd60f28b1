package dialog

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/skratchdot/open-golang/open"

	"github.com/1broseidon/xpdesk/internal/explorer"
)

// Launcher performs link actions outside the terminal.
type Launcher interface {
	OpenURL(url string) error
	CopyText(text string) error
}

// SystemLauncher uses the desktop's URL handler and clipboard.
type SystemLauncher struct{}

// OpenURL opens url in the default browser.
func (SystemLauncher) OpenURL(url string) error {
	return open.Run(url)
}

// CopyText places text on the clipboard.
func (SystemLauncher) CopyText(text string) error {
	return clipboard.WriteAll(text)
}

// Follow performs the action for link.
func Follow(l Launcher, link explorer.Link) error {
	switch link.Kind {
	case explorer.LinkEmail:
		if err := l.CopyText(link.Target); err != nil {
			return fmt.Errorf("copy %s: %w", link.Target, err)
		}
	default:
		if err := l.OpenURL(link.Target); err != nil {
			return fmt.Errorf("open %s: %w", link.Target, err)
		}
	}
	return nil
}
