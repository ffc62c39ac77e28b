// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

// Package catalog provides access to the remote IT-book catalog: the
// new-releases feed, paginated full-text search, and per-book detail lookups.
package catalog

// Book is one entry in a browsable list (new-releases feed or search results).
//
// # Identity
//
// ISBN13 is the stable, unique key within a single list. It is used for list
// diffing and favorite-membership lookups. A Book is an immutable value — it
// is never mutated after mapping, only replaced wholesale in a list.
type Book struct {
	// ISBN13 is treated as an opaque unique key.
	ISBN13   string `json:"isbn13"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	// Price is a display string, not a parsed numeric — the catalog reports
	// values like "$28.99" and "Free".
	Price     string `json:"price"`
	ImageURL  string `json:"image_url"`
	DetailURL string `json:"detail_url"`
}

// BookDetail is the extended single-book record, fetched lazily when a detail
// view opens. It shares ISBN13 with [Book].
type BookDetail struct {
	ISBN13      string `json:"isbn13"`
	ISBN10      string `json:"isbn10,omitempty"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Authors     string `json:"authors,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Pages       int    `json:"pages,omitempty"`
	Year        int    `json:"year,omitempty"`
	Rating      int    `json:"rating,omitempty"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
	DetailURL   string `json:"detail_url"`
	// PDFSamples maps sample chapter names to download URLs. Nil when the
	// catalog offers no samples for this book.
	PDFSamples map[string]string `json:"pdf_samples,omitempty"`
}

// Summary projects the detail record down to its list representation.
func (d BookDetail) Summary() Book {
	return Book{
		ISBN13:    d.ISBN13,
		Title:     d.Title,
		Subtitle:  d.Subtitle,
		Price:     d.Price,
		ImageURL:  d.ImageURL,
		DetailURL: d.DetailURL,
	}
}
