package ui

// Package ui contains the Fyne-based user interface: the password gate, the
// add bar, the saved video list with its per-row action menu, and the rating
// and settings dialogs. All state changes go through library.Library; all UI
// strings are localized via Localization.
