package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/qvideo/internal/config"
)

// LoginScreen gates the video list behind the configured password
type LoginScreen struct {
	settings     *config.Settings
	localization *Localization
	onLogin      func()

	passwordEntry *widget.Entry
	errorLabel    *widget.Label
	content       fyne.CanvasObject
}

// NewLoginScreen creates the password screen
func NewLoginScreen(settings *config.Settings, localization *Localization, version string, onLogin func()) *LoginScreen {
	ls := &LoginScreen{
		settings:     settings,
		localization: localization,
		onLogin:      onLogin,
	}

	ls.createUI(version)
	return ls
}

// Content returns the screen's root object
func (ls *LoginScreen) Content() fyne.CanvasObject {
	return ls.content
}

// Focus puts the keyboard focus on the password field
func (ls *LoginScreen) Focus(window fyne.Window) {
	window.Canvas().Focus(ls.passwordEntry)
}

func (ls *LoginScreen) createUI(version string) {
	title := widget.NewLabelWithStyle(ls.localization.GetText(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	versionLabel := widget.NewLabelWithStyle(VersionPrefix+version, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	subtitle := widget.NewLabelWithStyle(ls.localization.GetText(KeyEnterPassword), fyne.TextAlignCenter, fyne.TextStyle{})

	ls.passwordEntry = widget.NewPasswordEntry()
	ls.passwordEntry.SetPlaceHolder(ls.localization.GetText(KeyPassword))
	ls.passwordEntry.OnSubmitted = func(string) {
		ls.submit()
	}

	ls.errorLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	ls.errorLabel.Importance = widget.DangerImportance
	ls.errorLabel.Hide()

	loginBtn := widget.NewButton(ls.localization.GetText(KeyLogin), ls.submit)
	loginBtn.Importance = widget.HighImportance

	ls.content = container.NewPadded(container.NewVBox(
		title,
		versionLabel,
		subtitle,
		ls.passwordEntry,
		loginBtn,
		ls.errorLabel,
	))
}

// submit checks the entered password. The field is cleared either way.
func (ls *LoginScreen) submit() {
	candidate := ls.passwordEntry.Text
	ls.passwordEntry.SetText("")

	if !ls.settings.CheckPassword(candidate) {
		log.Printf("[ui] Login rejected")
		ls.errorLabel.SetText(ls.localization.GetText(KeyIncorrectPassword))
		ls.errorLabel.Show()
		return
	}

	ls.errorLabel.Hide()
	if ls.onLogin != nil {
		ls.onLogin()
	}
}
