package platform

import (
	"golang.org/x/text/language"
)

// DefaultDateLayout is the en-US short date format (M/D/YYYY)
const DefaultDateLayout = "1/2/2006"

// Short date layouts per supported locale. The first entry is the fallback.
var shortDateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, DefaultDateLayout},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "2/1/2006"},
	{language.Russian, "02.01.2006"},
	{language.Portuguese, "02/01/2006"},
	{language.Japanese, "2006/1/2"},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(shortDateLayouts))
	for i, entry := range shortDateLayouts {
		tags[i] = entry.tag
	}
	return language.NewMatcher(tags)
}()

// ShortDateLayout returns a time layout for the locale's short date format,
// e.g. "en-US" -> "1/2/2006". Unknown or empty locales get DefaultDateLayout.
func ShortDateLayout(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultDateLayout
	}

	_, index, confidence := dateMatcher.Match(tag)
	if confidence == language.No {
		return DefaultDateLayout
	}
	return shortDateLayouts[index].layout
}
