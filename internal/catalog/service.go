// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package catalog

import (
	"context"
	"log/slog"

	"github.com/bookdex/bookdex/internal/platform/validate"
)

// Service fronts the [Gateway] with input validation.
//
// Validation always happens before any gateway call is attempted, so a
// malformed query or ISBN never reaches the wire.
type Service struct {
	gateway Gateway
	logger  *slog.Logger
}

func NewService(gateway Gateway, logger *slog.Logger) *Service {
	return &Service{gateway: gateway, logger: logger}
}

// NewBooks returns the unfiltered new-releases feed.
func (service *Service) NewBooks(ctx context.Context) ([]Book, error) {
	return service.gateway.FetchNewBooks(ctx)
}

// Search returns one validated page of search results and the total match count.
func (service *Service) Search(ctx context.Context, rawQuery string, page int) ([]Book, int, error) {
	query, err := validate.Query(rawQuery)
	if err != nil {
		return nil, 0, err
	}

	if _, err := validate.Page(page); err != nil {
		return nil, 0, err
	}

	books, total, err := service.gateway.SearchBooks(ctx, query, page)
	if err != nil {
		return nil, 0, err
	}

	service.logger.Debug("catalog_search",
		slog.String("query", query),
		slog.Int("page", page),
		slog.Int("total", total),
	)
	return books, total, nil
}

// Detail returns the extended record for a validated ISBN13.
func (service *Service) Detail(ctx context.Context, rawISBN string) (*BookDetail, error) {
	isbn, err := validate.ISBN13(rawISBN)
	if err != nil {
		return nil, err
	}
	return service.gateway.FetchBookDetail(ctx, isbn)
}
