package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconMenu     = "⋮"
	IconMinus    = "−"
	IconPlus     = "+"
	IconLabel    = "#"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	LabelSeparator     = " "
	VersionPrefix      = "v"
)

// Layout sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 760

	URLEntryRows = 3

	// Touch target minimum sizes (iOS/Android guidelines)
	MobileButtonWidth  float32 = 60
	MobileButtonHeight float32 = 48
)

// Dialog sizes
const (
	SettingsDialogWidth  float32 = 380
	SettingsDialogHeight float32 = 420
	RatingDialogWidth    float32 = 280
)
