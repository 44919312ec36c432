package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/qvideo/internal/model"
	"github.com/ytget/qvideo/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyPassword      = "access_password"
	KeyLanguage      = "app_language"
	KeyDefaultRating = "default_rating"
	KeyDateLayout    = "date_layout"
)

// Default values
const (
	DefaultPassword      = "qv"
	DefaultLanguage      = "system"
	DefaultDefaultRating = model.MinRating
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetPassword returns the password required to unlock the app
func (s *Settings) GetPassword() string {
	password := s.app.Preferences().String(KeyPassword)
	if password == "" {
		return DefaultPassword
	}
	return password
}

// SetPassword sets the unlock password. Empty restores the default.
func (s *Settings) SetPassword(password string) {
	if password == "" {
		s.app.Preferences().RemoveValue(KeyPassword)
		return
	}
	s.app.Preferences().SetString(KeyPassword, password)
}

// CheckPassword reports whether the candidate unlocks the app
func (s *Settings) CheckPassword(candidate string) bool {
	return candidate == s.GetPassword()
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDefaultRating returns the rating assigned to newly added videos
func (s *Settings) GetDefaultRating() int {
	return s.app.Preferences().IntWithFallback(KeyDefaultRating, DefaultDefaultRating)
}

// SetDefaultRating sets the rating for new videos, clamped to the valid range
func (s *Settings) SetDefaultRating(rating int) {
	s.app.Preferences().SetInt(KeyDefaultRating, model.ClampRating(rating))
}

// GetDateLayout returns an explicit dateAdded layout, or "" to follow the system locale
func (s *Settings) GetDateLayout() string {
	return s.app.Preferences().String(KeyDateLayout)
}

// SetDateLayout overrides the locale-derived date layout. Empty clears the override.
func (s *Settings) SetDateLayout(layout string) {
	if layout == "" {
		s.app.Preferences().RemoveValue(KeyDateLayout)
		return
	}
	s.app.Preferences().SetString(KeyDateLayout, layout)
}

// ResolveDateLayout returns the override if set, else the short date layout of locale
func (s *Settings) ResolveDateLayout(locale string) string {
	if layout := s.GetDateLayout(); layout != "" {
		return layout
	}
	return platform.ShortDateLayout(locale)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
