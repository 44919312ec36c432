package platform

import (
	"fmt"
	"log"
	"net/url"

	"fyne.io/fyne/v2"
)

// URLApp is the subset of fyne.App used to hand URLs to the OS
type URLApp interface {
	OpenURL(u *url.URL) error
	Clipboard() fyne.Clipboard
}

// Launcher opens saved URLs in the system browser and copies them
type Launcher struct {
	app URLApp
}

// NewLauncher creates a launcher bound to the app
func NewLauncher(app URLApp) *Launcher {
	return &Launcher{app: app}
}

// Open normalizes the URL and opens it with the platform handler
func (l *Launcher) Open(raw string) error {
	log.Printf("Opening URL: %s", raw)

	u, err := NormalizeURL(raw)
	if err != nil {
		return err
	}

	log.Printf("Formatted URL: %s", u.String())
	if err := l.app.OpenURL(u); err != nil {
		return fmt.Errorf("could not open URL in browser: %w", err)
	}
	return nil
}

// Copy places the URL on the system clipboard
func (l *Launcher) Copy(raw string) {
	l.app.Clipboard().SetContent(raw)
}
