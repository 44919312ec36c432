package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/qvideo/internal/library"
	"github.com/ytget/qvideo/internal/model"
)

// RatingDialog lets the user pick a rating between 0 and 5
type RatingDialog struct {
	window       fyne.Window
	localization *Localization
	onSubmit     func(rating int)

	ratingEntry *widget.Entry
	dialog      *dialog.ConfirmDialog
}

// NewRatingDialog creates a rating dialog preset to current
func NewRatingDialog(window fyne.Window, localization *Localization, current int, onSubmit func(rating int)) *RatingDialog {
	rd := &RatingDialog{
		window:       window,
		localization: localization,
		onSubmit:     onSubmit,
	}

	rd.createUI(current)
	return rd
}

// Show displays the dialog
func (rd *RatingDialog) Show() {
	rd.dialog.Show()
}

func (rd *RatingDialog) createUI(current int) {
	rd.ratingEntry = widget.NewEntry()
	rd.ratingEntry.SetText(strconv.Itoa(current))
	rd.ratingEntry.OnSubmitted = func(string) {
		rd.dialog.Confirm()
	}

	minusBtn := widget.NewButton(IconMinus, rd.decrement)
	plusBtn := widget.NewButton(IconPlus, rd.increment)

	stepper := container.NewBorder(nil, nil, minusBtn, plusBtn, rd.ratingEntry)
	content := container.NewVBox(
		widget.NewLabel(rd.localization.GetText(KeyRatingPrompt)),
		stepper,
	)

	rd.dialog = dialog.NewCustomConfirm(
		rd.localization.GetText(KeyUpdateRating),
		rd.localization.GetText(KeyUpdate),
		rd.localization.GetText(KeyCancel),
		content,
		rd.onConfirm,
		rd.window,
	)
	rd.dialog.Resize(fyne.NewSize(RatingDialogWidth, rd.dialog.MinSize().Height))
}

func (rd *RatingDialog) decrement() {
	rd.ratingEntry.SetText(stepRating(rd.ratingEntry.Text, -1))
}

func (rd *RatingDialog) increment() {
	rd.ratingEntry.SetText(stepRating(rd.ratingEntry.Text, 1))
}

func (rd *RatingDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}

	rating, err := parseRating(rd.ratingEntry.Text)
	if err != nil {
		dialog.ShowInformation(rd.localization.GetText(KeyError), rd.localization.GetText(KeyInvalidRating), rd.window)
		return
	}

	if rd.onSubmit != nil {
		rd.onSubmit(rating)
	}
}

// stepRating moves the entered rating by delta, staying within bounds.
// Unparsable text counts as 0.
func stepRating(text string, delta int) string {
	current, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		current = model.MinRating
	}

	return strconv.Itoa(model.ClampRating(current + delta))
}

// parseRating parses and validates a rating typed by the user
func parseRating(text string) (int, error) {
	rating, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, err
	}
	if !model.ValidRating(rating) {
		return 0, &library.RangeError{Rating: rating}
	}
	return rating, nil
}
