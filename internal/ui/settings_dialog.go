package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/qvideo/internal/config"
	"github.com/ytget/qvideo/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	ratingSelect   *widget.Select
	dateEntry      *widget.Entry
	passwordEntry  *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Default rating for new videos
	ratingOptions := []string{}
	for rating := model.MinRating; rating <= model.MaxRating; rating++ {
		ratingOptions = append(ratingOptions, strconv.Itoa(rating))
	}
	sd.ratingSelect = widget.NewSelect(ratingOptions, nil)

	// Date layout override
	sd.dateEntry = widget.NewEntry()
	sd.dateEntry.SetPlaceHolder(sd.localization.GetText(KeyDateFormatHint))

	// Password; empty keeps the current one
	sd.passwordEntry = widget.NewPasswordEntry()

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyDefaultRating)+":"),
		sd.ratingSelect,

		widget.NewLabel(sd.localization.GetText(KeyDateFormat)+":"),
		sd.dateEntry,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyNewPassword)+":"),
		sd.passwordEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.ratingSelect.SetSelected(strconv.Itoa(sd.settings.GetDefaultRating()))
	sd.dateEntry.SetText(sd.settings.GetDateLayout())
	sd.passwordEntry.SetText("")
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if rating, err := strconv.Atoi(sd.ratingSelect.Selected); err == nil {
		sd.settings.SetDefaultRating(rating)
	}

	sd.settings.SetDateLayout(sd.dateEntry.Text)

	if sd.passwordEntry.Text != "" {
		sd.settings.SetPassword(sd.passwordEntry.Text)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
