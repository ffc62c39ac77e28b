// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

// Package favorites manages the locally-persisted set of favorite books and
// the toggle coordination that keeps every open list in sync.
package favorites

import "time"

// Record is one persisted favorite.
//
// # Identity & Ordering
//
// Records are unique by ISBN13. Display order is AddedAt descending,
// recomputed at read time — the store never relies on insertion order.
// Year and Rating are nil when the book was favorited from a summary-only
// context (the search list) and populated when favorited from a detail view.
type Record struct {
	ISBN13    string    `json:"isbn13"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Authors   string    `json:"authors,omitempty"`
	Publisher string    `json:"publisher,omitempty"`
	ImageURL  string    `json:"image_url"`
	Price     string    `json:"price"`
	Year      *int      `json:"year,omitempty"`
	Rating    *int      `json:"rating,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// Change is the event published after every successful favorite mutation.
//
// Listeners use the ISBN13 to refresh a single visible row in place instead
// of reloading a whole list.
type Change struct {
	ISBN13 string `json:"isbn13"`
	// Favorite is the NEW membership state (post-toggle, not pre-toggle).
	Favorite bool `json:"favorite"`
}
