package library

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/qvideo/internal/codec"
	"github.com/ytget/qvideo/internal/model"
	"github.com/ytget/qvideo/internal/platform"
	"github.com/ytget/qvideo/internal/storage"
)

// AddResult counts the outcome of an add call
type AddResult struct {
	Added   int
	Skipped int // already in the list, or repeated within the batch
}

// Store is the authoritative owner of the video list
type Store struct {
	substrate  storage.Substrate
	slotKey    string
	dateLayout string
	now        func() time.Time
	session    string
	onUpdate   func(model.VideoList)

	mu     sync.Mutex
	videos model.VideoList
	loaded bool
	// readFailed is set when Load could not read the slot. The saved list
	// may still be there, so nothing is written for the rest of the session.
	readFailed bool
	// seenNonEmpty is set once the list held entries during this session.
	// An empty list is only persisted after that, so a fresh empty state
	// never overwrites a saved list.
	seenNonEmpty bool
}

// NewStore creates a store backed by the given substrate
func NewStore(substrate storage.Substrate) *Store {
	return &Store{
		substrate:  substrate,
		slotKey:    storage.SlotKey,
		dateLayout: platform.DefaultDateLayout,
		now:        time.Now,
		session:    generateSessionID(),
		videos:     model.VideoList{},
	}
}

// SetDateLayout sets the time layout used for dateAdded
func (s *Store) SetDateLayout(layout string) {
	if layout == "" {
		layout = platform.DefaultDateLayout
	}
	s.mu.Lock()
	s.dateLayout = layout
	s.mu.Unlock()
}

// SetClock replaces the time source used for dateAdded
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// SetSlotKey changes the persistent slot name
func (s *Store) SetSlotKey(key string) {
	s.mu.Lock()
	s.slotKey = key
	s.mu.Unlock()
}

// SetUpdateCallback sets the callback function for list updates
func (s *Store) SetUpdateCallback(callback func(model.VideoList)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Session returns the id tagging this process's log lines
func (s *Store) Session() string {
	return s.session
}

// Load reads the slot and adopts its contents. It must be called once before
// any mutation. Storage failures are logged and leave the list empty; the
// store stays usable in memory but never writes over the unread slot.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return ErrAlreadyLoaded
	}

	blob, ok, err := s.substrate.Get(ctx, s.slotKey)
	s.loaded = true
	switch {
	case err != nil:
		s.readFailed = true
		log.Printf("[store %s] Error loading videos, saving disabled for this session: %v", s.session, err)
	case !ok:
		log.Printf("[store %s] No saved videos", s.session)
	default:
		s.videos = codec.Decode(blob)
		s.seenNonEmpty = len(s.videos) > 0
		log.Printf("[store %s] Videos loaded and decrypted successfully (%d)", s.session, len(s.videos))
	}
	snapshot := s.videos.Clone()
	s.mu.Unlock()

	s.notifyUpdate(snapshot)
	return nil
}

// Loaded reports whether Load has completed
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Add appends every url not already present. URLs are trimmed before the
// comparison; no other canonicalization is applied, so scheme-case and
// trailing-slash variants are distinct entries.
func (s *Store) Add(ctx context.Context, urls []string, rating int, labels []string) (AddResult, error) {
	var result AddResult

	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return result, ErrNotLoaded
	}
	if !model.ValidRating(rating) {
		s.mu.Unlock()
		return result, &RangeError{Rating: rating}
	}

	dateAdded := s.now().Format(s.dateLayout)
	for _, raw := range urls {
		candidate := strings.TrimSpace(raw)
		if candidate == "" {
			continue
		}
		if s.videos.Contains(candidate) {
			result.Skipped++
			continue
		}
		s.videos = append(s.videos, model.NewVideoEntry(candidate, dateAdded, rating, labels))
		result.Added++
	}

	if result.Added == 0 {
		s.mu.Unlock()
		return result, nil
	}
	s.seenNonEmpty = true
	snapshot := s.commitLocked(ctx)
	s.mu.Unlock()

	s.notifyUpdate(snapshot)
	return result, nil
}

// AddText extracts http(s) URLs from free text and adds them with labels
// parsed from comma-separated input.
func (s *Store) AddText(ctx context.Context, text string, rating int, labelsText string) (AddResult, error) {
	if strings.TrimSpace(text) == "" {
		return AddResult{}, ErrEmptyInput
	}

	urls := platform.ExtractURLs(text)
	if len(urls) == 0 {
		return AddResult{}, ErrNoURLs
	}
	return s.Add(ctx, urls, rating, platform.ParseLabels(labelsText))
}

// RemoveAt deletes the entry at index; later entries move down by one
func (s *Store) RemoveAt(ctx context.Context, index int) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	if index < 0 || index >= len(s.videos) {
		err := &IndexError{Index: index, Len: len(s.videos)}
		s.mu.Unlock()
		return err
	}

	s.videos = append(s.videos[:index:index], s.videos[index+1:]...)
	snapshot := s.commitLocked(ctx)
	s.mu.Unlock()

	s.notifyUpdate(snapshot)
	return nil
}

// SetRating replaces the rating of the entry at index
func (s *Store) SetRating(ctx context.Context, index int, rating int) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	if !model.ValidRating(rating) {
		s.mu.Unlock()
		return &RangeError{Rating: rating}
	}
	if index < 0 || index >= len(s.videos) {
		err := &IndexError{Index: index, Len: len(s.videos)}
		s.mu.Unlock()
		return err
	}
	if s.videos[index].Rating == rating {
		s.mu.Unlock()
		return nil
	}

	s.videos[index].Rating = rating
	snapshot := s.commitLocked(ctx)
	s.mu.Unlock()

	s.notifyUpdate(snapshot)
	return nil
}

// Persist writes the encoded list to the slot. Failures are logged only.
func (s *Store) Persist(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLocked(ctx)
}

// OnBackground persists the list when the app leaves the foreground
func (s *Store) OnBackground() {
	log.Printf("[store %s] App left foreground, saving videos", s.session)
	s.Persist(context.Background())
}

// BindLifecycle persists on backgrounding and on stop
func (s *Store) BindLifecycle(lc Lifecycle) {
	lc.SetOnExitedForeground(s.OnBackground)
	lc.SetOnStopped(s.OnBackground)
}

// Entries returns a copy of the list
func (s *Store) Entries() model.VideoList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videos.Clone()
}

// Entry returns a copy of the entry at index
func (s *Store) Entry(index int) (model.VideoEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.videos) {
		return model.VideoEntry{}, &IndexError{Index: index, Len: len(s.videos)}
	}
	return s.videos[index : index+1].Clone()[0], nil
}

// Len returns the number of entries
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.videos)
}

func (s *Store) persistLocked(ctx context.Context) {
	if !s.loaded {
		log.Printf("[store %s] Skipping save, videos not loaded yet", s.session)
		return
	}
	if s.readFailed {
		log.Printf("[store %s] Skipping save, stored videos could not be read", s.session)
		return
	}
	if len(s.videos) == 0 && !s.seenNonEmpty {
		return
	}

	blob, err := codec.Encode(s.videos)
	if err != nil {
		log.Printf("[store %s] Error saving videos: %v", s.session, err)
		return
	}
	if err := s.substrate.Set(ctx, s.slotKey, blob); err != nil {
		log.Printf("[store %s] Error saving videos: %v", s.session, err)
		return
	}
	log.Printf("[store %s] Videos saved and encrypted successfully (%d)", s.session, len(s.videos))
}

// commitLocked persists a changed list and returns a snapshot for listeners
func (s *Store) commitLocked(ctx context.Context) model.VideoList {
	s.persistLocked(ctx)
	return s.videos.Clone()
}

// notifyUpdate calls the update callback if set. Must be called without mu held.
func (s *Store) notifyUpdate(snapshot model.VideoList) {
	s.mu.Lock()
	onUpdate := s.onUpdate
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(snapshot)
	}
}

// generateSessionID returns a UUID v7, falling back to a timestamp
func generateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("session-%d", time.Now().UnixNano())
	}
	return id.String()
}

var _ Library = (*Store)(nil)
