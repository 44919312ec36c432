package model

import (
	"strings"
)

// Rating bounds, inclusive
const (
	MinRating = 0
	MaxRating = 5
)

// Star glyphs used for rating display
const (
	StarFilled = "★"
	StarEmpty  = "☆"
)

// VideoEntry represents a single saved link
type VideoEntry struct {
	URL       string   `json:"url"`
	DateAdded string   `json:"dateAdded"`
	Rating    int      `json:"rating"`
	Labels    []string `json:"labels"`
}

// VideoList is the ordered collection of saved entries; index order is display order.
type VideoList []VideoEntry

// NewVideoEntry creates an entry with its own copy of labels. Empty labels are dropped.
func NewVideoEntry(url, dateAdded string, rating int, labels []string) VideoEntry {
	kept := make([]string, 0, len(labels))
	for _, label := range labels {
		if label == "" {
			continue
		}
		kept = append(kept, label)
	}
	return VideoEntry{
		URL:       url,
		DateAdded: dateAdded,
		Rating:    rating,
		Labels:    kept,
	}
}

// ValidRating reports whether rating is within [MinRating, MaxRating]
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// ClampRating limits rating to [MinRating, MaxRating]
func ClampRating(rating int) int {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}

// Stars renders the rating as filled and empty stars
func (e VideoEntry) Stars() string {
	rating := ClampRating(e.Rating)
	return strings.Repeat(StarFilled, rating) + strings.Repeat(StarEmpty, MaxRating-rating)
}

// HasLabels returns true if the entry carries at least one label
func (e VideoEntry) HasLabels() bool {
	return len(e.Labels) > 0
}

// Contains reports whether an entry with exactly this url exists
func (l VideoList) Contains(url string) bool {
	for _, entry := range l {
		if entry.URL == url {
			return true
		}
	}
	return false
}

// URLs returns the urls in list order
func (l VideoList) URLs() []string {
	urls := make([]string, 0, len(l))
	for _, entry := range l {
		urls = append(urls, entry.URL)
	}
	return urls
}

// Clone returns a deep copy. Labels are always non-nil in the copy, so the
// result encodes labels as [] rather than null.
func (l VideoList) Clone() VideoList {
	out := make(VideoList, len(l))
	for i, entry := range l {
		out[i] = entry
		out[i].Labels = append([]string{}, entry.Labels...)
	}
	return out
}
