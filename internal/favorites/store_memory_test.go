// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package favorites_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookdex/bookdex/internal/favorites"
	"github.com/bookdex/bookdex/internal/platform/dberr"
)

func TestMemoryStore_PreservesCallerTimestamps(t *testing.T) {
	t.Parallel()

	store := favorites.NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	older := favorites.Record{ISBN13: "9781617291784", Title: "Practical Go", AddedAt: base}
	newer := favorites.Record{ISBN13: "9781593278281", Title: "The Rust Book", AddedAt: base.Add(time.Hour)}

	require.NoError(t, store.Save(ctx, older))
	require.NoError(t, store.Save(ctx, newer))

	// Re-save the older record with refreshed fields but its ORIGINAL
	// timestamp: the store persists AddedAt verbatim, so the shelf position
	// is unchanged. Bumping recency is a service-layer decision.
	refreshed := older
	refreshed.Title = "Practical Go, Second Edition"
	require.NoError(t, store.Save(ctx, refreshed))

	records, err := store.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ISBN13, records[0].ISBN13, "re-save with the old timestamp keeps the old position")
	assert.Equal(t, older.ISBN13, records[1].ISBN13)
	assert.Equal(t, "Practical Go, Second Edition", records[1].Title)
	assert.True(t, records[1].AddedAt.Equal(base))
}

func TestMemoryStore_DeleteAbsent(t *testing.T) {
	t.Parallel()

	store := favorites.NewMemoryStore()

	err := store.Delete(context.Background(), "9781617291784")
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
