package ui

import (
	"context"
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/qvideo/internal/config"
	"github.com/ytget/qvideo/internal/library"
	"github.com/ytget/qvideo/internal/model"
	"github.com/ytget/qvideo/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	store        library.Library
	launcher     *platform.Launcher
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	version      string

	// Add bar
	urlEntry    *widget.Entry
	labelsEntry *widget.Entry
	addBtn      *widget.Button

	// Video list
	videos     model.VideoList
	videoList  *widget.List
	emptyLabel *widget.Label

	login *LoginScreen
}

// NewRootUI creates and initializes the main UI. The password screen is
// shown first; the list appears after a successful login.
func NewRootUI(window fyne.Window, app fyne.App, store library.Library, launcher *platform.Launcher, version string) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		store:        store,
		launcher:     launcher,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		version:      version,
		videos:       store.Entries(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for list updates
	ui.store.SetUpdateCallback(ui.onLibraryUpdate)

	ui.showLogin()
	return ui
}

// showLogin puts the password screen in the window
func (ui *RootUI) showLogin() {
	ui.login = NewLoginScreen(ui.settings, ui.localization, ui.version, ui.showMain)
	ui.window.SetContent(ui.login.Content())
	ui.login.Focus(ui.window)
}

// showMain creates and arranges the list screen
func (ui *RootUI) showMain() {
	log.Printf("[ui] Login accepted, %d videos in list", ui.store.Len())

	ui.createMenu()

	// Add bar
	ui.urlEntry = ui.mobile.CreateMobileEntry(ui.localization.GetText(KeyEnterVideoURL))

	ui.labelsEntry = widget.NewEntry()
	ui.labelsEntry.SetPlaceHolder(ui.localization.GetText(KeyLabelsPlaceholder))
	ui.labelsEntry.OnSubmitted = func(string) {
		ui.onAddClick()
	}

	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddVideo), ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance

	settingsBtn := ui.mobile.CreateMobileButton(IconSettings, ui.onShowSettings)

	topPanel := container.NewVBox(
		ui.urlEntry,
		container.NewBorder(nil, nil, nil, container.NewHBox(ui.addBtn, settingsBtn), ui.labelsEntry),
		widget.NewSeparator(),
	)

	// Video list
	ui.videoList = widget.NewList(
		func() int {
			return len(ui.videos)
		},
		func() fyne.CanvasObject { return ui.createVideoItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateVideoItem(id, obj) },
	)

	ui.emptyLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyNoVideos), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	ui.refreshEmptyState()

	content := container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		container.NewStack(ui.videoList, container.NewCenter(ui.emptyLabel)),
	)

	ui.window.SetContent(content)
	ui.window.Canvas().Focus(ui.urlEntry)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	if ui.urlEntry == nil {
		return
	}
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterVideoURL))
	ui.labelsEntry.SetPlaceHolder(ui.localization.GetText(KeyLabelsPlaceholder))
	ui.addBtn.SetText(ui.localization.GetText(KeyAddVideo))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoVideos))

	// Rows render "Added:" and "Rating:" through the localization
	ui.videoList.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.store.SetDateLayout(ui.settings.ResolveDateLayout(string(lang.SystemLocale())))
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}).Show()
}

// onAddClick extracts URLs from the add bar and appends the new ones
func (ui *RootUI) onAddClick() {
	result, err := ui.store.AddText(context.Background(), ui.urlEntry.Text, ui.settings.GetDefaultRating(), ui.labelsEntry.Text)
	if err != nil {
		log.Printf("[ui] Add rejected: %v", err)
		dialog.ShowInformation(ui.localization.GetText(KeyError), addErrorMessage(ui.localization, err), ui.window)
		return
	}

	if result.Added > 0 {
		ui.urlEntry.SetText("")
		ui.labelsEntry.SetText("")
	}

	title, message := addOutcomeMessage(ui.localization, result)
	dialog.ShowInformation(title, message, ui.window)
}

// addErrorMessage maps a store error from AddText to user facing text
func addErrorMessage(localization *Localization, err error) string {
	switch {
	case errors.Is(err, library.ErrEmptyInput):
		return localization.GetText(KeyEnterValidURL)
	case errors.Is(err, library.ErrNoURLs):
		return localization.GetText(KeyEnterAtLeastOneURL)
	case errors.Is(err, library.ErrNotLoaded):
		return localization.GetText(KeyStillLoading)
	default:
		return err.Error()
	}
}

// addOutcomeMessage reports how many URLs were added and skipped
func addOutcomeMessage(localization *Localization, result library.AddResult) (title, message string) {
	if result.Added == 0 {
		return localization.GetText(KeyInfo), localization.GetText(KeyAllDuplicates)
	}

	message = localization.Format(KeyAddedVideos, result.Added)
	if result.Skipped > 0 {
		message += "\n" + localization.Format(KeyDuplicatesSkipped, result.Skipped)
	}
	return localization.GetText(KeySuccess), message
}

// onLibraryUpdate receives list snapshots from the store
func (ui *RootUI) onLibraryUpdate(videos model.VideoList) {
	fyne.Do(func() {
		ui.videos = videos
		if ui.videoList == nil {
			return
		}
		ui.videoList.Refresh()
		ui.refreshEmptyState()
	})
}

func (ui *RootUI) refreshEmptyState() {
	if len(ui.videos) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
}

// createVideoItem creates a new row widget for the list
func (ui *RootUI) createVideoItem() fyne.CanvasObject {
	row := NewVideoRow(ui.localization)
	row.SetCallbacks(ui.onOpenVideo, ui.onShowMenu)
	return row
}

// updateVideoItem binds a recycled row to the entry at id
func (ui *RootUI) updateVideoItem(id widget.ListItemID, item fyne.CanvasObject) {
	row, ok := item.(*VideoRow)
	if !ok || id < 0 || id >= len(ui.videos) {
		return
	}
	row.Update(id, ui.videos[id])
}

// onShowMenu opens the row action menu below the row's menu button
func (ui *RootUI) onShowMenu(index int, anchor fyne.CanvasObject) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem(ui.localization.GetText(KeyOpenInBrowser), func() { ui.onOpenVideo(index) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyUpdateRating), func() { ui.onUpdateRating(index) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyCopyURL), func() { ui.onCopyURL(index) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyDelete), func() { ui.onDelete(index) }),
		fyne.NewMenuItemSeparator(),
		// Dismissing the popup is all Cancel does
		fyne.NewMenuItem(ui.localization.GetText(KeyCancel), func() {}),
	)

	driver := fyne.CurrentApp().Driver()
	pos := driver.AbsolutePositionForObject(anchor).AddXY(0, anchor.Size().Height)
	widget.ShowPopUpMenuAtPosition(menu, ui.window.Canvas(), pos)
}

// onOpenVideo opens the entry's URL in the system browser
func (ui *RootUI) onOpenVideo(index int) {
	entry, err := ui.store.Entry(index)
	if err != nil {
		log.Printf("[ui] Open failed: %v", err)
		return
	}

	if err := ui.launcher.Open(entry.URL); err != nil {
		dialog.ShowInformation(ui.localization.GetText(KeyError), ui.localization.Format(KeyCouldNotOpen, entry.URL), ui.window)
	}
}

// onCopyURL copies the entry's URL to the clipboard
func (ui *RootUI) onCopyURL(index int) {
	entry, err := ui.store.Entry(index)
	if err != nil {
		log.Printf("[ui] Copy failed: %v", err)
		return
	}

	ui.launcher.Copy(entry.URL)
	dialog.ShowInformation(ui.localization.GetText(KeyCopied), ui.localization.GetText(KeyURLCopied), ui.window)
}

// onDelete removes the entry at index
func (ui *RootUI) onDelete(index int) {
	if err := ui.store.RemoveAt(context.Background(), index); err != nil {
		log.Printf("[ui] Delete failed: %v", err)
		dialog.ShowError(err, ui.window)
	}
}

// onUpdateRating opens the rating dialog for the entry at index
func (ui *RootUI) onUpdateRating(index int) {
	entry, err := ui.store.Entry(index)
	if err != nil {
		log.Printf("[ui] Rating failed: %v", err)
		return
	}

	NewRatingDialog(ui.window, ui.localization, entry.Rating, func(rating int) {
		if err := ui.store.SetRating(context.Background(), index, rating); err != nil {
			log.Printf("[ui] Rating update failed: %v", err)
			dialog.ShowError(err, ui.window)
		}
	}).Show()
}
