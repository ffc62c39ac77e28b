// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package favorites

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookdex/bookdex/pkg/pointer"
)

// fakeClock hands out strictly increasing timestamps one second apart.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	c.current = c.current.Add(time.Second)
	return c.current
}

// brokenStore fails selected operations, passing the rest through to an
// in-memory store.
type brokenStore struct {
	*MemoryStore
	saveErr   error
	existsErr error
}

func (s *brokenStore) Save(ctx context.Context, record Record) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.MemoryStore.Save(ctx, record)
}

func (s *brokenStore) Exists(ctx context.Context, isbn13 string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return s.MemoryStore.Exists(ctx, isbn13)
}

func newTestService(store Store) (*Service, *Notifier) {
	notifier := NewNotifier()
	service := NewService(store, notifier, slog.New(slog.DiscardHandler))
	service.now = (&fakeClock{current: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}).Now
	return service, notifier
}

func sampleInput(isbn string) ToggleInput {
	return ToggleInput{
		ISBN13:   isbn,
		Title:    "Practical Go",
		Subtitle: "Real-world patterns",
		Price:    "$39.99",
		ImageURL: "https://itbook.store/img/books/" + isbn + ".png",
		Year:     pointer.To(2019),
		Rating:   pointer.To(4),
	}
}

func TestToggle_RoundTrip(t *testing.T) {
	t.Parallel()

	service, notifier := newTestService(NewMemoryStore())
	changes, cancel := notifier.Subscribe()
	defer cancel()

	ctx := context.Background()
	const isbn = "9781617291784"

	favorite, err := service.Toggle(ctx, sampleInput(isbn))
	require.NoError(t, err)
	assert.True(t, favorite)
	assert.True(t, service.IsFavorite(ctx, isbn))
	assert.Equal(t, Change{ISBN13: isbn, Favorite: true}, <-changes)

	records, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2019, pointer.Deref(records[0].Year))
	assert.True(t, pointer.Equal(records[0].Rating, pointer.To(4)))

	// The second toggle of the same book removes it.
	favorite, err = service.Toggle(ctx, sampleInput(isbn))
	require.NoError(t, err)
	assert.False(t, favorite)
	assert.False(t, service.IsFavorite(ctx, isbn))
	assert.Equal(t, Change{ISBN13: isbn, Favorite: false}, <-changes)

	records, err = service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestToggle_InvalidISBN(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(NewMemoryStore())

	tests := []string{"", "12345", "97816172917845", "978161729178X"}
	for _, raw := range tests {
		_, err := service.Toggle(context.Background(), sampleInput(raw))
		assert.Error(t, err, "isbn %q", raw)
	}
}

func TestToggle_FailedWriteDoesNotNotify(t *testing.T) {
	t.Parallel()

	store := &brokenStore{MemoryStore: NewMemoryStore(), saveErr: errors.New("disk full")}
	service, notifier := newTestService(store)
	changes, cancel := notifier.Subscribe()
	defer cancel()

	_, err := service.Toggle(context.Background(), sampleInput("9781617291784"))
	require.Error(t, err)

	select {
	case change := <-changes:
		t.Fatalf("no change must be published after a failed write, got %+v", change)
	default:
	}
	assert.False(t, service.IsFavorite(context.Background(), "9781617291784"))
}

func TestToggle_ReAddLandsOnTop(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(NewMemoryStore())
	ctx := context.Background()

	const first = "9781617291784"
	const second = "9781593278281"

	_, err := service.Toggle(ctx, sampleInput(first))
	require.NoError(t, err)
	_, err = service.Toggle(ctx, sampleInput(second))
	require.NoError(t, err)

	records, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second, records[0].ISBN13, "most recently added first")

	// Remove and re-add the older book: it gets a fresh stamp and moves to
	// the top.
	_, err = service.Toggle(ctx, sampleInput(first))
	require.NoError(t, err)
	_, err = service.Toggle(ctx, sampleInput(first))
	require.NoError(t, err)

	records, err = service.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first, records[0].ISBN13)
}

func TestSave_RenewsRecency(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(NewMemoryStore())
	ctx := context.Background()

	const first = "9781617291784"
	const second = "9781593278281"

	_, err := service.Save(ctx, sampleInput(first))
	require.NoError(t, err)
	_, err = service.Save(ctx, sampleInput(second))
	require.NoError(t, err)

	// Re-saving an existing favorite (the detail-refresh path) bumps it back
	// to the top of the recency ordering.
	updated := sampleInput(first)
	updated.Title = "Practical Go, Second Edition"
	record, err := service.Save(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, "Practical Go, Second Edition", record.Title)

	records, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first, records[0].ISBN13)
	assert.Equal(t, "Practical Go, Second Edition", records[0].Title)
}

func TestIsFavorite_StoreErrorDegradesToFalse(t *testing.T) {
	t.Parallel()

	store := &brokenStore{MemoryStore: NewMemoryStore(), existsErr: errors.New("connection reset")}
	service, _ := newTestService(store)

	assert.False(t, service.IsFavorite(context.Background(), "9781617291784"))
}

func TestRemove(t *testing.T) {
	t.Parallel()

	service, notifier := newTestService(NewMemoryStore())
	ctx := context.Background()
	const isbn = "9781617291784"

	_, err := service.Toggle(ctx, sampleInput(isbn))
	require.NoError(t, err)

	changes, cancel := notifier.Subscribe()
	defer cancel()

	require.NoError(t, service.Remove(ctx, isbn))
	assert.Equal(t, Change{ISBN13: isbn, Favorite: false}, <-changes)

	assert.Error(t, service.Remove(ctx, isbn), "removing an absent favorite reports not found")
}
