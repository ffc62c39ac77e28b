// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package catalog

import "context"

// Gateway is the contract for the remote book catalog.
//
// # Failure Semantics
//
// Every method performs a single attempt — no automatic retries — and any
// transport, status, or decoding problem surfaces as a GATEWAY_ERROR
// [apperr.AppError]. Callers decide whether the failure is user-visible.
type Gateway interface {
	// FetchNewBooks returns the unfiltered new-releases feed. The feed has no
	// server-reported total and does not paginate.
	FetchNewBooks(ctx context.Context) ([]Book, error)

	// SearchBooks returns one page of results for query, along with the
	// server-reported total number of matches. Pages are 1-indexed.
	SearchBooks(ctx context.Context, query string, page int) ([]Book, int, error)

	// FetchBookDetail returns the extended record for one ISBN13.
	FetchBookDetail(ctx context.Context, isbn13 string) (*BookDetail, error)
}
