package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/qvideo/internal/model"
)

// VideoRow renders one saved video: the tappable URL, date and stars,
// labels, and the row action menu button.
type VideoRow struct {
	widget.BaseWidget

	localization *Localization
	index        int

	urlButton   *widget.Button
	metaLabel   *widget.Label
	labelsLabel *widget.Label
	menuButton  *widget.Button

	onOpen func(index int)
	onMenu func(index int, anchor fyne.CanvasObject)
}

// NewVideoRow creates an empty row; Update fills it
func NewVideoRow(localization *Localization) *VideoRow {
	row := &VideoRow{localization: localization}

	row.urlButton = widget.NewButton("", func() {
		if row.onOpen != nil {
			row.onOpen(row.index)
		}
	})
	row.urlButton.Importance = widget.LowImportance
	row.urlButton.Alignment = widget.ButtonAlignLeading

	row.metaLabel = widget.NewLabel("")
	row.metaLabel.TextStyle = fyne.TextStyle{Italic: true}

	row.labelsLabel = widget.NewLabel("")
	row.labelsLabel.Importance = widget.HighImportance
	row.labelsLabel.Hide()

	row.menuButton = widget.NewButton(IconMenu, func() {
		if row.onMenu != nil {
			row.onMenu(row.index, row.menuButton)
		}
	})
	row.menuButton.Importance = widget.LowImportance

	row.ExtendBaseWidget(row)
	return row
}

// SetCallbacks sets the tap handlers
func (r *VideoRow) SetCallbacks(onOpen func(index int), onMenu func(index int, anchor fyne.CanvasObject)) {
	r.onOpen = onOpen
	r.onMenu = onMenu
}

// Update binds the row to the entry at index
func (r *VideoRow) Update(index int, entry model.VideoEntry) {
	r.index = index
	r.urlButton.SetText(entry.URL)
	r.metaLabel.SetText(formatMeta(r.localization, entry))

	if entry.HasLabels() {
		r.labelsLabel.SetText(formatLabels(entry.Labels))
		r.labelsLabel.Show()
	} else {
		r.labelsLabel.Hide()
	}
}

// CreateRenderer implements fyne.Widget
func (r *VideoRow) CreateRenderer() fyne.WidgetRenderer {
	info := container.NewVBox(r.urlButton, r.metaLabel, r.labelsLabel)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, touchTarget(r.menuButton), info))
}

// formatMeta renders "Added: <date> · Rating: ★★☆☆☆"
func formatMeta(localization *Localization, entry model.VideoEntry) string {
	return localization.Format(KeyAddedOn, entry.DateAdded) +
		MiddleDotSeparator +
		localization.Format(KeyRatingStars, entry.Stars())
}

// formatLabels renders labels as "#a #b"
func formatLabels(labels []string) string {
	tags := make([]string, 0, len(labels))
	for _, label := range labels {
		tags = append(tags, IconLabel+label)
	}
	return strings.Join(tags, LabelSeparator)
}
