package library

import (
	"errors"
	"fmt"

	"github.com/ytget/qvideo/internal/model"
)

var (
	// ErrNotLoaded rejects mutations issued before Load has completed
	ErrNotLoaded = errors.New("video list not loaded yet")

	// ErrAlreadyLoaded is returned by a second Load call
	ErrAlreadyLoaded = errors.New("video list already loaded")

	// ErrEmptyInput is returned by AddText for blank input
	ErrEmptyInput = errors.New("please enter a valid video URL")

	// ErrNoURLs is returned by AddText when no http(s) URL was found
	ErrNoURLs = errors.New("please enter at least one valid URL starting with http:// or https://")

	// ErrIndexOutOfRange matches any *IndexError via errors.Is
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrRatingOutOfRange matches any *RangeError via errors.Is
	ErrRatingOutOfRange = errors.New("rating out of range")
)

// IndexError reports an operation addressed to a list position that does not exist
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// RangeError reports a rating outside [model.MinRating, model.MaxRating]
type RangeError struct {
	Rating int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("please enter a valid rating between %d and %d (got %d)", model.MinRating, model.MaxRating, e.Rating)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRatingOutOfRange
}
