package platform

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// URL schemes
const (
	SchemeHTTP    = "http://"
	SchemeHTTPS   = "https://"
	DefaultScheme = SchemeHTTPS
)

// LabelSeparator splits label input
const LabelSeparator = ","

// urlPattern matches http(s) URLs up to the next whitespace
var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// ErrEmptyURL is returned by NormalizeURL for blank input
var ErrEmptyURL = errors.New("empty URL")

// ExtractURLs returns every URL-shaped token in text, in order of appearance.
// Duplicates are kept; deduplication belongs to the store.
func ExtractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// ParseLabels splits comma-separated input into trimmed, non-empty labels
func ParseLabels(text string) []string {
	parts := strings.Split(text, LabelSeparator)
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		label := strings.TrimSpace(part)
		if label == "" {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

// NormalizeURL prefixes the default scheme when the URL has no http(s)
// scheme and parses the result.
func NormalizeURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrEmptyURL
	}

	formatted := trimmed
	if !strings.HasPrefix(formatted, SchemeHTTP) && !strings.HasPrefix(formatted, SchemeHTTPS) {
		formatted = DefaultScheme + formatted
	}

	u, err := url.Parse(formatted)
	if err != nil {
		return nil, fmt.Errorf("cannot open this URL: %s: %w", formatted, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("cannot open this URL: %s: missing host", formatted)
	}
	return u, nil
}
