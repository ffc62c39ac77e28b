// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package browse

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bookdex/bookdex/internal/catalog"
	"github.com/bookdex/bookdex/internal/platform/apperr"
	"github.com/bookdex/bookdex/internal/platform/constants"
	"github.com/bookdex/bookdex/internal/platform/validate"
)

// ListState is a point-in-time view of a coordinated list.
//
// CurrentPage always names the page whose contents are the LAST page merged
// into Items. A provisional increment happens while a next-page request is in
// flight; on failure it is rolled back so the same page is retried next time.
type ListState struct {
	Items            []catalog.Book `json:"items"`
	CurrentPage      int            `json:"current_page"`
	TotalAvailable   int            `json:"total_available"`
	IsLoadingInitial bool           `json:"is_loading_initial"`
	IsLoadingMore    bool           `json:"is_loading_more"`
	ErrorMessage     string         `json:"error_message,omitempty"`
	Intent           Intent         `json:"intent"`
}

// HasMore reports whether further pages exist. It is a pure function of the
// item count against the reported total, so a feed whose total equals its
// length (the new-releases feed) never has more.
func (s ListState) HasMore() bool {
	return len(s.Items) < s.TotalAvailable
}

// Coordinator serializes all loads for a single list.
//
// # Concurrency
//
// At most one primary load and at most one next-page load is ever in flight.
// A competing ResetAndLoad or LoadMoreIfNeeded during that window is a no-op
// rather than a queued request. A generation stamp guards completions: a
// request that was superseded by a newer reset discards its result instead of
// clobbering the newer state.
type Coordinator struct {
	gateway catalog.Gateway
	logger  *slog.Logger

	mu         sync.Mutex
	state      ListState
	generation uint64
}

// NewCoordinator returns a coordinator with an empty list on page 1.
func NewCoordinator(gateway catalog.Gateway, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		gateway: gateway,
		logger:  logger,
		state: ListState{
			Items:       []catalog.Book{},
			CurrentPage: 1,
			Intent:      NewBooksIntent(),
		},
	}
}

// Snapshot returns a copy of the current list state. The items slice is
// copied so callers can hold the snapshot across later mutations.
func (c *Coordinator) Snapshot() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.state
	snap.Items = make([]catalog.Book, len(c.state.Items))
	copy(snap.Items, c.state.Items)
	return snap
}

// ResetAndLoad replaces the list with page 1 of the given intent.
//
// If a primary load is already in flight the call is a no-op and the in-flight
// load's result stands; callers that need the new intent to win must wait for
// completion and call again (the session debouncer naturally provides that
// spacing). On failure the previous items are kept and ErrorMessage is set.
func (c *Coordinator) ResetAndLoad(ctx context.Context, intent Intent) error {
	c.mu.Lock()
	if c.state.IsLoadingInitial {
		c.mu.Unlock()
		return nil
	}
	c.state.IsLoadingInitial = true
	c.state.ErrorMessage = ""
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	var (
		items []catalog.Book
		total int
		err   error
	)
	switch intent.Kind {
	case IntentSearch:
		var query string
		if query, err = validate.Query(intent.Query); err == nil {
			items, total, err = c.gateway.SearchBooks(ctx, query, 1)
		}
	default:
		items, err = c.gateway.FetchNewBooks(ctx)
		total = len(items)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// A newer reset owns the state now.
		return nil
	}
	c.state.IsLoadingInitial = false
	c.state.IsLoadingMore = false

	if err != nil {
		c.logger.Warn("primary load failed",
			slog.String("kind", string(intent.Kind)),
			slog.String("error", err.Error()))
		c.state.ErrorMessage = loadErrorMessage(err)
		return err
	}

	c.state.Items = items
	c.state.CurrentPage = 1
	c.state.TotalAvailable = total
	c.state.Intent = intent
	return nil
}

// LoadMoreIfNeeded appends the next result page when the reader is near the
// end of the current items. It returns whether a load was actually triggered.
//
// A load fires only when all of these hold: visibleIndex is within the last
// few items, the list is showing search results, no load is in flight, and
// more pages exist. A failed page load rolls CurrentPage back and stays
// silent — the existing items remain valid and the next near-end signal
// retries the same page.
func (c *Coordinator) LoadMoreIfNeeded(ctx context.Context, visibleIndex int) bool {
	c.mu.Lock()
	if c.state.IsLoadingInitial || c.state.IsLoadingMore {
		c.mu.Unlock()
		return false
	}
	if c.state.Intent.Kind != IntentSearch || !c.state.HasMore() {
		c.mu.Unlock()
		return false
	}
	if len(c.state.Items) == 0 || visibleIndex < len(c.state.Items)-constants.NearEndThreshold {
		c.mu.Unlock()
		return false
	}
	c.state.IsLoadingMore = true
	c.state.CurrentPage++
	page := c.state.CurrentPage
	query := c.state.Intent.Query
	gen := c.generation
	c.mu.Unlock()

	items, total, err := c.gateway.SearchBooks(ctx, query, page)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// Superseded by a reset while in flight; its state is authoritative.
		return true
	}
	c.state.IsLoadingMore = false

	if err != nil {
		c.state.CurrentPage--
		c.logger.Warn("next page load failed",
			slog.String("query", query),
			slog.Int("page", page),
			slog.String("error", err.Error()))
		return true
	}

	c.state.Items = append(c.state.Items, items...)
	c.state.TotalAvailable = total
	return true
}

// loadErrorMessage renders an error as reader-facing text, preferring the
// curated message of an AppError over raw error chains.
func loadErrorMessage(err error) string {
	if appErr := apperr.As(err); appErr != nil {
		return appErr.Message
	}
	return "The book catalog is temporarily unavailable."
}
