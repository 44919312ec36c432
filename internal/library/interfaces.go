package library

import (
	"context"

	"github.com/ytget/qvideo/internal/model"
)

// Library defines the interface for the video list store.
type Library interface {
	Load(ctx context.Context) error
	Loaded() bool
	Add(ctx context.Context, urls []string, rating int, labels []string) (AddResult, error)
	AddText(ctx context.Context, text string, rating int, labelsText string) (AddResult, error)
	RemoveAt(ctx context.Context, index int) error
	SetRating(ctx context.Context, index int, rating int) error
	Persist(ctx context.Context)
	Entries() model.VideoList
	Entry(index int) (model.VideoEntry, error)
	Len() int

	// SetDateLayout sets the time layout used for dateAdded of new entries
	SetDateLayout(layout string)

	// SetUpdateCallback is invoked after every successful change of the list
	SetUpdateCallback(func(model.VideoList))
}

// Lifecycle is the subset of fyne.Lifecycle the store listens to.
type Lifecycle interface {
	SetOnExitedForeground(func())
	SetOnStopped(func())
}
