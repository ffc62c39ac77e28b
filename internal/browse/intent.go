// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

// Package browse implements server-held browse sessions: debounced search
// input, incremental page loading with duplicate-request suppression, and
// consistent paginated list state.
package browse

import "strings"

// IntentKind discriminates what a list should display.
type IntentKind string

const (
	// IntentNewBooks shows the unfiltered new-releases feed.
	IntentNewBooks IntentKind = "new_books"

	// IntentSearch shows search results for a query.
	IntentSearch IntentKind = "search"
)

// Intent is a resolved directive for what a list should display.
type Intent struct {
	Kind  IntentKind `json:"kind"`
	Query string     `json:"query,omitempty"`
}

// NewBooksIntent returns the new-releases directive.
func NewBooksIntent() Intent {
	return Intent{Kind: IntentNewBooks}
}

// SearchIntent returns a search directive for the given (already trimmed) query.
func SearchIntent(query string) Intent {
	return Intent{Kind: IntentSearch, Query: query}
}

// Equal reports whether two intents would drive the same load.
func (i Intent) Equal(other Intent) bool {
	return i.Kind == other.Kind && i.Query == other.Query
}

// ResolveIntent maps raw query text to its effective intent: empty or
// whitespace-only input routes to the new-releases feed, anything else to a
// search for the trimmed text.
//
// Content validation (length bounds, encodability) is deliberately not done
// here — that belongs to the validate package, downstream of intent
// resolution.
func ResolveIntent(rawQuery string) Intent {
	trimmed := strings.TrimSpace(rawQuery)
	if trimmed == "" {
		return NewBooksIntent()
	}
	return SearchIntent(trimmed)
}
