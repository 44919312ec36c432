package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateMobileButton creates a button with a touch-sized minimum on mobile
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) fyne.CanvasObject {
	btn := widget.NewButton(text, onTapped)
	if !m.IsMobileDevice() {
		return btn
	}
	return touchTarget(btn)
}

// CreateMobileEntry creates a multi-line entry; mobile keyboards get more rows
func (m *MobileUI) CreateMobileEntry(placeholder string) *widget.Entry {
	entry := widget.NewMultiLineEntry()
	entry.SetPlaceHolder(placeholder)
	entry.Wrapping = fyne.TextWrapBreak
	entry.SetMinRowsVisible(URLEntryRows)
	return entry
}

// touchTarget stacks obj over a transparent spacer so it never shrinks below
// the minimum touch target size
func touchTarget(obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(MobileButtonWidth, MobileButtonHeight))
	return container.NewStack(spacer, obj)
}
