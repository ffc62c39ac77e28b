// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package favorites

import "context"

// Store is the persistence contract for favorites.
//
// # Semantics
//
//   - Save upserts by ISBN13. The record's AddedAt is caller-controlled: the
//     store persists it verbatim and never invents timestamps, so the caller
//     decides whether a re-save bumps recency.
//   - FetchAll returns records sorted by AddedAt descending, computed at read
//     time.
//   - Writes for the same ISBN13 are serialized; reads may run concurrently.
type Store interface {
	FetchAll(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, record Record) error
	Delete(ctx context.Context, isbn13 string) error
	Exists(ctx context.Context, isbn13 string) (bool, error)
}
