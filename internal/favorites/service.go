// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package favorites

import (
	"context"
	"log/slog"
	"time"

	"github.com/bookdex/bookdex/internal/platform/validate"
)

// ToggleInput carries the display fields needed to construct a [Record] when
// a toggle turns out to be an add.
//
// Authors/Publisher/Year/Rating are empty or nil when toggling from a
// summary-only context (the search list) and populated when toggling from a
// detail screen.
type ToggleInput struct {
	ISBN13    string `json:"isbn13"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Price     string `json:"price"`
	ImageURL  string `json:"image_url"`
	Authors   string `json:"authors"`
	Publisher string `json:"publisher"`
	Year      *int   `json:"year"`
	Rating    *int   `json:"rating"`
}

// Service coordinates favorite toggles across every list that displays books.
//
// # Consistency
//
// A change notification is published only after the store write confirms.
// A failed write means the toggle had no effect: state unchanged, nothing
// published, and the error is returned for logging upstream.
type Service struct {
	store    Store
	notifier *Notifier
	logger   *slog.Logger

	// now is injectable so tests can pin recency timestamps.
	now func() time.Time
}

func NewService(store Store, notifier *Notifier, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Toggle flips the membership of one book and returns the NEW state.
//
// If the book is currently a favorite it is removed; otherwise a fresh
// [Record] is built from the input with AddedAt stamped now, so adding (or
// re-adding after a remove) always lands at the top of the recency ordering.
func (service *Service) Toggle(ctx context.Context, input ToggleInput) (bool, error) {
	isbn, err := validate.ISBN13(input.ISBN13)
	if err != nil {
		return false, err
	}

	exists, err := service.store.Exists(ctx, isbn)
	if err != nil {
		return false, err
	}

	if exists {
		if err := service.store.Delete(ctx, isbn); err != nil {
			return true, err
		}

		service.notifier.Publish(Change{ISBN13: isbn, Favorite: false})
		service.logger.Info("favorite_removed", slog.String("isbn13", isbn))
		return false, nil
	}

	record := Record{
		ISBN13:    isbn,
		Title:     input.Title,
		Subtitle:  input.Subtitle,
		Authors:   input.Authors,
		Publisher: input.Publisher,
		ImageURL:  input.ImageURL,
		Price:     input.Price,
		Year:      input.Year,
		Rating:    input.Rating,
		AddedAt:   service.now(),
	}
	if err := service.store.Save(ctx, record); err != nil {
		return false, err
	}

	service.notifier.Publish(Change{ISBN13: isbn, Favorite: true})
	service.logger.Info("favorite_added", slog.String("isbn13", isbn))
	return true, nil
}

// IsFavorite is a read-through membership check.
//
// Store errors degrade to "not favorite" — a UI row must never block on a
// storage read problem.
func (service *Service) IsFavorite(ctx context.Context, isbn13 string) bool {
	exists, err := service.store.Exists(ctx, isbn13)
	if err != nil {
		service.logger.Warn("favorite_lookup_failed",
			slog.String("isbn13", isbn13),
			slog.Any("error", err),
		)
		return false
	}
	return exists
}

// Save upserts a favorite with refreshed display fields (the detail-screen
// path). The AddedAt stamp is renewed, so a re-save bumps recency.
func (service *Service) Save(ctx context.Context, input ToggleInput) (Record, error) {
	isbn, err := validate.ISBN13(input.ISBN13)
	if err != nil {
		return Record{}, err
	}

	record := Record{
		ISBN13:    isbn,
		Title:     input.Title,
		Subtitle:  input.Subtitle,
		Authors:   input.Authors,
		Publisher: input.Publisher,
		ImageURL:  input.ImageURL,
		Price:     input.Price,
		Year:      input.Year,
		Rating:    input.Rating,
		AddedAt:   service.now(),
	}
	if err := service.store.Save(ctx, record); err != nil {
		return Record{}, err
	}

	service.notifier.Publish(Change{ISBN13: isbn, Favorite: true})
	return record, nil
}

// List returns all favorites, most recently added first.
func (service *Service) List(ctx context.Context) ([]Record, error) {
	return service.store.FetchAll(ctx)
}

// Remove deletes a favorite by id and publishes the membership change.
func (service *Service) Remove(ctx context.Context, rawISBN string) error {
	isbn, err := validate.ISBN13(rawISBN)
	if err != nil {
		return err
	}

	if err := service.store.Delete(ctx, isbn); err != nil {
		return err
	}

	service.notifier.Publish(Change{ISBN13: isbn, Favorite: false})
	service.logger.Info("favorite_removed", slog.String("isbn13", isbn))
	return nil
}

// Changes exposes the notifier subscription for SSE streaming.
func (service *Service) Changes() (<-chan Change, func()) {
	return service.notifier.Subscribe()
}
