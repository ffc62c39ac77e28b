// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package favorites

import (
	"context"
	"sort"
	"sync"

	"github.com/bookdex/bookdex/internal/platform/dberr"
)

// MemoryStore implements [Store] on a mutex-guarded map.
//
// It backs the unit tests and can serve as a non-durable fallback when no
// database is configured. New ISBNs land at the logical front of the
// recency ordering via their AddedAt; re-saves replace the record in place.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func (store *MemoryStore) FetchAll(_ context.Context) ([]Record, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	records := make([]Record, 0, len(store.records))
	for _, r := range store.records {
		records = append(records, r)
	}

	// Recency ordering is computed at read time, exactly like the SQL store.
	sort.Slice(records, func(i, j int) bool {
		return records[i].AddedAt.After(records[j].AddedAt)
	})
	return records, nil
}

func (store *MemoryStore) Save(_ context.Context, record Record) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.records[record.ISBN13] = record
	return nil
}

func (store *MemoryStore) Delete(_ context.Context, isbn13 string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, found := store.records[isbn13]; !found {
		return dberr.ErrNotFound
	}
	delete(store.records, isbn13)
	return nil
}

func (store *MemoryStore) Exists(_ context.Context, isbn13 string) (bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	_, found := store.records[isbn13]
	return found, nil
}
