package storage

import (
	"context"

	"fyne.io/fyne/v2"
)

// Preferences stores slots in the Fyne application preferences, which the
// driver keeps in the platform's app-private storage.
type Preferences struct {
	prefs fyne.Preferences
}

// NewPreferences creates a substrate over the app's preferences
func NewPreferences(app fyne.App) *Preferences {
	return &Preferences{prefs: app.Preferences()}
}

// Get returns the stored string. An empty value counts as absent.
func (p *Preferences) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, &IOError{Op: "get", Key: key, Err: err}
	}
	value := p.prefs.String(key)
	return value, value != "", nil
}

// Set overwrites the stored string
func (p *Preferences) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return &IOError{Op: "set", Key: key, Err: err}
	}
	p.prefs.SetString(key, value)
	return nil
}
