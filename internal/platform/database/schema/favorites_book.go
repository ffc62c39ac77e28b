// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

// Package schema holds table descriptors so repository SQL never hard-codes
// identifier strings.
package schema

// FavoriteBookTable represents the 'favorites.book' table
type FavoriteBookTable struct {
	Table     string
	ISBN13    string
	Title     string
	Subtitle  string
	Authors   string
	Publisher string
	ImageURL  string
	Price     string
	Year      string
	Rating    string
	AddedAt   string
}

// FavoriteBook is the schema definition for favorites.book
var FavoriteBook = FavoriteBookTable{
	Table:     "favorites.book",
	ISBN13:    "isbn13",
	Title:     "title",
	Subtitle:  "subtitle",
	Authors:   "authors",
	Publisher: "publisher",
	ImageURL:  "imageurl",
	Price:     "price",
	Year:      "year",
	Rating:    "rating",
	AddedAt:   "addedat",
}

func (t FavoriteBookTable) Columns() []string {
	return []string{
		t.ISBN13, t.Title, t.Subtitle, t.Authors, t.Publisher, t.ImageURL,
		t.Price, t.Year, t.Rating, t.AddedAt,
	}
}
