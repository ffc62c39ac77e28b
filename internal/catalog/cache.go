// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookdex/bookdex/internal/platform/constants"
)

// CachedGateway is a read-through Redis decorator around another [Gateway].
//
// # Degradation
//
// The cache is strictly best-effort: a Redis miss, decode problem, or outage
// falls through to the inner gateway, and a failed write only produces a
// debug log. Correctness never depends on Redis being up.
type CachedGateway struct {
	inner  Gateway
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedGateway wraps inner with a Redis cache.
func NewCachedGateway(inner Gateway, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedGateway {
	return &CachedGateway{inner: inner, client: client, ttl: ttl, logger: logger}
}

// cachedSearchPage bundles one search page with its server-reported total so
// both survive a cache round-trip together.
type cachedSearchPage struct {
	Books []Book `json:"books"`
	Total int    `json:"total"`
}

// FetchNewBooks implements [Gateway].
func (g *CachedGateway) FetchNewBooks(ctx context.Context) ([]Book, error) {
	var books []Book
	if g.lookup(ctx, constants.RedisPrefixNewBooks, &books) {
		return books, nil
	}

	books, err := g.inner.FetchNewBooks(ctx)
	if err != nil {
		return nil, err
	}

	g.store(ctx, constants.RedisPrefixNewBooks, books)
	return books, nil
}

// SearchBooks implements [Gateway].
func (g *CachedGateway) SearchBooks(ctx context.Context, query string, page int) ([]Book, int, error) {
	key := SearchCacheKey(query, page)

	var cached cachedSearchPage
	if g.lookup(ctx, key, &cached) {
		return cached.Books, cached.Total, nil
	}

	books, total, err := g.inner.SearchBooks(ctx, query, page)
	if err != nil {
		return nil, 0, err
	}

	g.store(ctx, key, cachedSearchPage{Books: books, Total: total})
	return books, total, nil
}

// FetchBookDetail implements [Gateway].
func (g *CachedGateway) FetchBookDetail(ctx context.Context, isbn13 string) (*BookDetail, error) {
	key := DetailCacheKey(isbn13)

	var cached BookDetail
	if g.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	detail, err := g.inner.FetchBookDetail(ctx, isbn13)
	if err != nil {
		return nil, err
	}

	g.store(ctx, key, detail)
	return detail, nil
}

// lookup reports whether key was present and decoded into target.
func (g *CachedGateway) lookup(ctx context.Context, key string, target interface{}) bool {
	raw, err := g.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			g.logger.Debug("catalog_cache_read_failed", slog.String("key", key), slog.Any("error", err))
		}
		return false
	}

	if err := json.Unmarshal(raw, target); err != nil {
		g.logger.Debug("catalog_cache_decode_failed", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

// store writes the value under key with the configured TTL, best-effort.
func (g *CachedGateway) store(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		g.logger.Debug("catalog_cache_encode_failed", slog.String("key", key), slog.Any("error", err))
		return
	}

	if err := g.client.Set(ctx, key, raw, g.ttl).Err(); err != nil {
		g.logger.Debug("catalog_cache_write_failed", slog.String("key", key), slog.Any("error", err))
	}
}

// # Cache Keys

// SearchCacheKey builds the Redis key for one search page.
func SearchCacheKey(query string, page int) string {
	return fmt.Sprintf("%s%s:%d", constants.RedisPrefixSearch, query, page)
}

// DetailCacheKey builds the Redis key for one book detail payload.
func DetailCacheKey(isbn13 string) string {
	return constants.RedisPrefixBookDetail + isbn13
}
