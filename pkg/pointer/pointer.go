// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

// Package pointer provides small helpers for working with optional values.
//
// Favorite records carry optional year/rating fields that are nil when a book
// was favorited from a summary-only context (the search list) and populated
// when favorited from a detail view. Production code receives those pointers
// ready-made from JSON decoding, so today these helpers are used by test
// fixtures and assertions that need to build or compare them by hand.
package pointer

// To returns a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// Deref returns the value behind p, or the zero value if p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Equal reports whether two pointers are both nil or point to equal values.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
