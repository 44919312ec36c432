package library

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/qvideo/internal/codec"
	"github.com/ytget/qvideo/internal/model"
	"github.com/ytget/qvideo/internal/storage"
)

var fixedNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T, mem *storage.Memory) *Store {
	t.Helper()
	store := NewStore(mem)
	store.SetClock(func() time.Time { return fixedNow })
	return store
}

func newLoadedStore(t *testing.T, mem *storage.Memory, urls ...string) *Store {
	t.Helper()
	store := newTestStore(t, mem)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(urls) > 0 {
		if _, err := store.Add(context.Background(), urls, 0, nil); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	return store
}

func seed(t *testing.T, mem *storage.Memory, list model.VideoList) string {
	t.Helper()
	blob, err := codec.Encode(list)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := mem.Set(context.Background(), storage.SlotKey, blob); err != nil {
		t.Fatalf("Set: %v", err)
	}
	return blob
}

func TestNewStore(t *testing.T) {
	store := NewStore(storage.NewMemory())

	if store.Len() != 0 {
		t.Errorf("Expected empty store, got %d entries", store.Len())
	}
	if store.Loaded() {
		t.Error("New store should not be loaded")
	}
	if store.Session() == "" {
		t.Error("Expected a session id")
	}
	if store.slotKey != "encrypted_videos" {
		t.Errorf("Expected slot key encrypted_videos, got %s", store.slotKey)
	}
}

func TestLoad_AdoptsStoredList(t *testing.T) {
	mem := storage.NewMemory()
	stored := model.VideoList{
		{URL: "http://a.com", DateAdded: "1/2/2026", Rating: 4, Labels: []string{"x"}},
		{URL: "http://b.com", DateAdded: "1/3/2026", Rating: 0, Labels: []string{}},
	}
	seed(t, mem, stored)

	store := newTestStore(t, mem)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(store.Entries(), stored) {
		t.Errorf("Expected %#v, got %#v", stored, store.Entries())
	}
	if mem.Writes() != 1 {
		t.Errorf("Load must not write, got %d writes", mem.Writes())
	}
}

func TestLoad_Twice(t *testing.T) {
	store := newLoadedStore(t, storage.NewMemory())
	if err := store.Load(context.Background()); !errors.Is(err, ErrAlreadyLoaded) {
		t.Errorf("Expected ErrAlreadyLoaded, got %v", err)
	}
}

func TestLoad_CorruptBlob(t *testing.T) {
	mem := storage.NewMemory()
	if err := mem.Set(context.Background(), storage.SlotKey, "not-hex!!"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	store := newTestStore(t, mem)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Corrupt data must not surface as an error, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Expected empty list, got %d", store.Len())
	}
	if !store.Loaded() {
		t.Error("Store should be loaded after a failed decode")
	}
}

func TestLoad_ReadFailure(t *testing.T) {
	mem := storage.NewMemory()
	mem.GetErr = errors.New("io failure")

	store := newTestStore(t, mem)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Read failures must be swallowed, got %v", err)
	}
	if !store.Loaded() || store.Len() != 0 {
		t.Errorf("Expected loaded empty store, got loaded=%v len=%d", store.Loaded(), store.Len())
	}
}

func TestLoad_ReadFailureKeepsStoredList(t *testing.T) {
	mem := storage.NewMemory()
	blob := seed(t, mem, model.VideoList{
		{URL: "http://a.com", DateAdded: "1/2/2026", Rating: 1, Labels: []string{}},
		{URL: "http://b.com", DateAdded: "1/2/2026", Rating: 2, Labels: []string{}},
		{URL: "http://c.com", DateAdded: "1/2/2026", Rating: 3, Labels: []string{}},
	})
	writes := mem.Writes()

	mem.GetErr = errors.New("io failure")
	store := newTestStore(t, mem)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	mem.GetErr = nil

	result, err := store.Add(context.Background(), []string{"http://new.com"}, 0, nil)
	if err != nil || result.Added != 1 {
		t.Fatalf("Add should still work in memory, got %+v, %v", result, err)
	}
	if err := store.SetRating(context.Background(), 0, 4); err != nil {
		t.Fatalf("SetRating: %v", err)
	}
	if err := store.RemoveAt(context.Background(), 0); err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	store.OnBackground()

	if mem.Writes() != writes {
		t.Errorf("Expected no writes after a failed read, got %d", mem.Writes()-writes)
	}
	if mem.Value(storage.SlotKey) != blob {
		t.Error("Stored list must survive a failed read")
	}
	if stored := codec.Decode(mem.Value(storage.SlotKey)); len(stored) != 3 {
		t.Errorf("Expected 3 stored entries, got %d", len(stored))
	}
}

func TestSetSlotKey(t *testing.T) {
	mem := storage.NewMemory()
	seed(t, mem, model.VideoList{{URL: "http://default.com", DateAdded: "1/2/2026", Labels: []string{}}})

	store := newTestStore(t, mem)
	store.SetSlotKey("other_videos")
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Expected the default slot to be ignored, got %d entries", store.Len())
	}

	if _, err := store.Add(context.Background(), []string{"http://a.com"}, 0, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := codec.Decode(mem.Value("other_videos")); len(got) != 1 || got[0].URL != "http://a.com" {
		t.Errorf("Expected the list in other_videos, got %#v", got)
	}
	if got := codec.Decode(mem.Value(storage.SlotKey)); len(got) != 1 || got[0].URL != "http://default.com" {
		t.Errorf("Default slot must be untouched, got %#v", got)
	}
}

func TestAdd_SkipsDuplicates(t *testing.T) {
	mem := storage.NewMemory()
	store := newLoadedStore(t, mem, "http://a.com")

	result, err := store.Add(context.Background(), []string{"http://a.com", "http://b.com", " http://a.com "}, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Added != 1 || result.Skipped != 2 {
		t.Errorf("Expected 1 added and 2 skipped, got %+v", result)
	}

	urls := store.Entries().URLs()
	expected := []string{"http://a.com", "http://b.com"}
	if !reflect.DeepEqual(urls, expected) {
		t.Errorf("Expected %v, got %v", expected, urls)
	}
}

func TestAdd_DuplicatesWithinBatch(t *testing.T) {
	store := newLoadedStore(t, storage.NewMemory())

	result, err := store.Add(context.Background(), []string{"http://a.com", "http://a.com", "  ", "HTTP://a.com/"}, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Added != 2 || result.Skipped != 1 {
		t.Errorf("Expected 2 added and 1 skipped, got %+v", result)
	}
}

func TestAdd_EntryFields(t *testing.T) {
	store := newLoadedStore(t, storage.NewMemory())

	labels := []string{"music", "", "live"}
	if _, err := store.Add(context.Background(), []string{"  https://a.com/v  "}, 3, labels); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	labels[0] = "mutated"

	entry, err := store.Entry(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := model.VideoEntry{
		URL:       "https://a.com/v",
		DateAdded: "10/14/2026",
		Rating:    3,
		Labels:    []string{"music", "live"},
	}
	if !reflect.DeepEqual(entry, expected) {
		t.Errorf("Expected %#v, got %#v", expected, entry)
	}
}

func TestAdd_DateLayout(t *testing.T) {
	store := newTestStore(t, storage.NewMemory())
	store.SetDateLayout("02.01.2006")
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := store.Add(context.Background(), []string{"http://a.com"}, 0, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, _ := store.Entry(0)
	if entry.DateAdded != "14.10.2026" {
		t.Errorf("Expected 14.10.2026, got %s", entry.DateAdded)
	}
}

func TestAdd_InvalidDefaultRating(t *testing.T) {
	mem := storage.NewMemory()
	store := newLoadedStore(t, mem)

	_, err := store.Add(context.Background(), []string{"http://a.com"}, 6, nil)
	if !errors.Is(err, ErrRatingOutOfRange) {
		t.Errorf("Expected rating error, got %v", err)
	}
	if store.Len() != 0 || mem.Writes() != 0 {
		t.Error("Rejected add must not change or persist the list")
	}
}

func TestAdd_AllDuplicatesDoesNotPersist(t *testing.T) {
	mem := storage.NewMemory()
	store := newLoadedStore(t, mem, "http://a.com")
	writes := mem.Writes()

	result, err := store.Add(context.Background(), []string{"http://a.com"}, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Added != 0 || result.Skipped != 1 {
		t.Errorf("Unexpected result %+v", result)
	}
	if mem.Writes() != writes {
		t.Error("Unchanged list must not be persisted")
	}
}

func TestAddText(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		labels      string
		expectedErr error
		added       int
	}{
		{name: "blank", text: "   ", expectedErr: ErrEmptyInput},
		{name: "no URLs", text: "just some words", expectedErr: ErrNoURLs},
		{name: "several URLs", text: "http://a.com https://b.com\nhttp://c.com", labels: "x, y", added: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newLoadedStore(t, storage.NewMemory())

			result, err := store.AddText(context.Background(), tt.text, 0, tt.labels)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Added != tt.added {
				t.Errorf("expected %d added, got %d", tt.added, result.Added)
			}
			entry, _ := store.Entry(0)
			if !reflect.DeepEqual(entry.Labels, []string{"x", "y"}) {
				t.Errorf("expected labels [x y], got %v", entry.Labels)
			}
		})
	}
}

func TestSetRating_Bounds(t *testing.T) {
	mem := storage.NewMemory()
	store := newLoadedStore(t, mem, "http://a.com")
	ctx := context.Background()

	if err := store.SetRating(ctx, 0, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, rating := range []int{6, -1} {
		err := store.SetRating(ctx, 0, rating)
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("SetRating(0, %d): expected *RangeError, got %v", rating, err)
		}
		if rangeErr.Rating != rating {
			t.Errorf("Expected rating %d in error, got %d", rating, rangeErr.Rating)
		}
		entry, _ := store.Entry(0)
		if entry.Rating != 2 {
			t.Errorf("Rating changed to %d after a rejected update", entry.Rating)
		}
	}

	for _, rating := range []int{0, 5} {
		if err := store.SetRating(ctx, 0, rating); err != nil {
			t.Errorf("SetRating(0, %d): unexpected error: %v", rating, err)
		}
		entry, _ := store.Entry(0)
		if entry.Rating != rating {
			t.Errorf("Expected rating %d, got %d", rating, entry.Rating)
		}
	}
}

func TestSetRating_LeavesOtherFields(t *testing.T) {
	store := newLoadedStore(t, storage.NewMemory())
	if _, err := store.Add(context.Background(), []string{"http://a.com"}, 1, []string{"keep"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	before, _ := store.Entry(0)

	if err := store.SetRating(context.Background(), 0, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, _ := store.Entry(0)
	before.Rating = 4
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Expected only rating to change: %#v vs %#v", before, after)
	}
}

func TestSetRating_IndexOutOfRange(t *testing.T) {
	store := newLoadedStore(t, storage.NewMemory(), "http://a.com")

	err := store.SetRating(context.Background(), 1, 3)
	var indexErr *IndexError
	if !errors.As(err, &indexErr) {
		t.Fatalf("Expected *IndexError, got %v", err)
	}
	if indexErr.Index != 1 || indexErr.Len != 1 {
		t.Errorf("Unexpected error fields %+v", indexErr)
	}
}

func TestSetRating_UnchangedDoesNotPersist(t *testing.T) {
	mem := storage.NewMemory()
	store := newLoadedStore(t, mem, "http://a.com")
	writes := mem.Writes()

	if err := store.SetRating(context.Background(), 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mem.Writes() != writes {
		t.Error("Setting the same rating must not persist")
	}
}

func TestRemoveAt(t *testing.T) {
	mem := storage.NewMemory()
	store := newLoadedStore(t, mem, "http://a.com", "http://b.com", "http://c.com")
	ctx := context.Background()

	for _, index := range []int{-1, 3} {
		err := store.RemoveAt(ctx, index)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveAt(%d): expected index error, got %v", index, err)
		}
	}
	if store.Len() != 3 {
		t.Fatalf("Rejected removals must not change the list, got %d", store.Len())
	}

	if err := store.RemoveAt(ctx, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"http://b.com", "http://c.com"}
	if urls := store.Entries().URLs(); !reflect.DeepEqual(urls, expected) {
		t.Errorf("Expected %v, got %v", expected, urls)
	}

	persisted := codec.Decode(mem.Value(storage.SlotKey))
	if !reflect.DeepEqual(persisted.URLs(), expected) {
		t.Errorf("Expected persisted %v, got %v", expected, persisted.URLs())
	}
}

func TestRemoveAt_LastEntryPersistsEmptyList(t *testing.T) {
	mem := storage.NewMemory()
	store := newLoadedStore(t, mem, "http://a.com")

	if err := store.RemoveAt(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mem.Value(storage.SlotKey) != "3234" {
		t.Errorf("Expected the empty list to be saved, got %q", mem.Value(storage.SlotKey))
	}

	restarted := newTestStore(t, mem)
	if err := restarted.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restarted.Len() != 0 {
		t.Errorf("Deleted entry came back after restart: %v", restarted.Entries().URLs())
	}
}

func TestPersist_NotBeforeLoad(t *testing.T) {
	mem := storage.NewMemory()
	stored := model.VideoList{
		{URL: "http://a.com", DateAdded: "1/2/2026", Labels: []string{}},
		{URL: "http://b.com", DateAdded: "1/2/2026", Labels: []string{}},
	}
	blob := seed(t, mem, stored)
	writes := mem.Writes()

	store := newTestStore(t, mem)
	ctx := context.Background()

	if _, err := store.Add(ctx, []string{"http://c.com"}, 0, nil); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Add before Load: expected ErrNotLoaded, got %v", err)
	}
	if err := store.RemoveAt(ctx, 0); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("RemoveAt before Load: expected ErrNotLoaded, got %v", err)
	}
	if err := store.SetRating(ctx, 0, 1); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("SetRating before Load: expected ErrNotLoaded, got %v", err)
	}
	store.Persist(ctx)
	store.OnBackground()

	if mem.Writes() != writes || mem.Value(storage.SlotKey) != blob {
		t.Fatal("Stored data was overwritten before Load completed")
	}

	if err := store.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(store.Entries(), stored) {
		t.Errorf("Expected stored list after load, got %#v", store.Entries())
	}
}

func TestPersist_SkipsNeverNonEmptyList(t *testing.T) {
	mem := storage.NewMemory()
	store := newLoadedStore(t, mem)

	store.Persist(context.Background())
	store.OnBackground()

	if mem.Writes() != 0 {
		t.Errorf("Empty session list must not be persisted, got %d writes", mem.Writes())
	}
}

func TestPersist_WriteFailureIsSwallowed(t *testing.T) {
	mem := storage.NewMemory()
	mem.SetErr = errors.New("disk full")
	store := newLoadedStore(t, mem)

	result, err := store.Add(context.Background(), []string{"http://a.com"}, 0, nil)
	if err != nil {
		t.Fatalf("Write failures must not surface, got %v", err)
	}
	if result.Added != 1 || store.Len() != 1 {
		t.Error("In-memory state should still be updated")
	}
}

type fakeLifecycle struct {
	onExited  func()
	onStopped func()
}

func (l *fakeLifecycle) SetOnExitedForeground(f func()) { l.onExited = f }
func (l *fakeLifecycle) SetOnStopped(f func())          { l.onStopped = f }

func TestBindLifecycle(t *testing.T) {
	mem := storage.NewMemory()
	store := newLoadedStore(t, mem, "http://a.com")
	lc := &fakeLifecycle{}
	store.BindLifecycle(lc)

	if lc.onExited == nil || lc.onStopped == nil {
		t.Fatal("Expected lifecycle callbacks to be registered")
	}

	writes := mem.Writes()
	lc.onExited()
	lc.onStopped()
	if mem.Writes() != writes+2 {
		t.Errorf("Expected 2 lifecycle writes, got %d", mem.Writes()-writes)
	}
}

func TestUpdateCallback(t *testing.T) {
	store := newLoadedStore(t, storage.NewMemory())

	var calls int
	var lastLen int
	store.SetUpdateCallback(func(list model.VideoList) {
		calls++
		lastLen = len(list)
		// reading back must not deadlock
		_ = store.Len()
	})

	ctx := context.Background()
	if _, err := store.Add(ctx, []string{"http://a.com", "http://b.com"}, 0, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.SetRating(ctx, 0, 3); err != nil {
		t.Fatalf("SetRating: %v", err)
	}
	if err := store.RemoveAt(ctx, 1); err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	_ = store.RemoveAt(ctx, 9)

	if calls != 3 {
		t.Errorf("Expected 3 update callbacks, got %d", calls)
	}
	if lastLen != 1 {
		t.Errorf("Expected last snapshot of length 1, got %d", lastLen)
	}
}

func TestSetters_ConcurrentWithMutations(t *testing.T) {
	store := newLoadedStore(t, storage.NewMemory())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			store.SetUpdateCallback(func(model.VideoList) {})
			store.SetClock(func() time.Time { return fixedNow })
			store.SetDateLayout("2006-01-02")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			if _, err := store.Add(ctx, []string{fmt.Sprintf("http://%d.com", i)}, 0, nil); err != nil {
				t.Errorf("Add: %v", err)
			}
		}
	}()
	wg.Wait()

	if store.Len() != 50 {
		t.Errorf("Expected 50 entries, got %d", store.Len())
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	store := newLoadedStore(t, storage.NewMemory(), "http://a.com")

	entries := store.Entries()
	entries[0].URL = "http://changed.com"

	entry, _ := store.Entry(0)
	if entry.URL != "http://a.com" {
		t.Error("Entries should return a copy")
	}

	if _, err := store.Entry(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected index error, got %v", err)
	}
}

func TestStore_RestartWithPreferences(t *testing.T) {
	app := test.NewApp()
	prefs := storage.NewPreferences(app)
	ctx := context.Background()

	first := NewStore(prefs)
	if err := first.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := first.Add(ctx, []string{"https://a.com", "https://例え.jp/動画"}, 2, []string{"x"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	second := NewStore(prefs)
	if err := second.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(first.Entries(), second.Entries()) {
		t.Errorf("Expected restarted store to match:\n %#v\n %#v", first.Entries(), second.Entries())
	}
}
