package platform

// Package platform contains OS/platform integration glue: URL extraction from
// pasted text, label parsing, opening URLs and copying them to the clipboard,
// and the locale-dependent short date layout.
