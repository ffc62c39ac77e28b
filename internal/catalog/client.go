// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/bookdex/bookdex/internal/platform/apperr"
)

// Client is the HTTP implementation of [Gateway] for the itbook.store-style
// REST API.
//
// # Behavior
//
// Requests are rate limited with a token bucket so aggressive browsing never
// exceeds the upstream's fair-use policy. Each call is a single attempt; the
// caller owns any retry decision (the browse coordinator deliberately retries
// load-more failures via its near-end trigger rather than here).
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient constructs a catalog client.
//
// # Parameters
//   - baseURL: API root, e.g. "https://api.itbook.store/1.0".
//   - rps: sustained requests per second against the upstream.
//   - timeout: per-request deadline.
func NewClient(baseURL string, rps int, timeout time.Duration) *Client {
	if rps < 1 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  "bookdex/0.1",
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// # Wire Format
//
// The upstream encodes every numeric field as a string ("total":"80",
// "pages":"224"), so payload structs decode strings and convert afterwards.

type listPayload struct {
	Error string        `json:"error"`
	Total string        `json:"total"`
	Books []bookPayload `json:"books"`
}

type bookPayload struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ISBN13   string `json:"isbn13"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	URL      string `json:"url"`
}

type detailPayload struct {
	Error     string            `json:"error"`
	Title     string            `json:"title"`
	Subtitle  string            `json:"subtitle"`
	Authors   string            `json:"authors"`
	Publisher string            `json:"publisher"`
	ISBN10    string            `json:"isbn10"`
	ISBN13    string            `json:"isbn13"`
	Pages     string            `json:"pages"`
	Year      string            `json:"year"`
	Rating    string            `json:"rating"`
	Desc      string            `json:"desc"`
	Price     string            `json:"price"`
	Image     string            `json:"image"`
	URL       string            `json:"url"`
	PDF       map[string]string `json:"pdf"`
}

// FetchNewBooks implements [Gateway].
func (c *Client) FetchNewBooks(ctx context.Context) ([]Book, error) {
	var payload listPayload
	if err := c.get(ctx, c.baseURL+"/new", &payload); err != nil {
		return nil, err
	}
	return mapBooks(payload.Books), nil
}

// SearchBooks implements [Gateway].
func (c *Client) SearchBooks(ctx context.Context, query string, page int) ([]Book, int, error) {
	endpoint := fmt.Sprintf("%s/search/%s/%d", c.baseURL, url.PathEscape(query), page)

	var payload listPayload
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, 0, err
	}

	// The total arrives as a decimal string; a malformed value is a decoding
	// failure like any other.
	total, err := strconv.Atoi(payload.Total)
	if err != nil {
		return nil, 0, apperr.Gateway(fmt.Errorf("catalog: malformed total %q: %w", payload.Total, err))
	}

	return mapBooks(payload.Books), total, nil
}

// FetchBookDetail implements [Gateway].
func (c *Client) FetchBookDetail(ctx context.Context, isbn13 string) (*BookDetail, error) {
	endpoint := c.baseURL + "/books/" + url.PathEscape(isbn13)

	var payload detailPayload
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	detail := &BookDetail{
		ISBN13:      payload.ISBN13,
		ISBN10:      payload.ISBN10,
		Title:       payload.Title,
		Subtitle:    payload.Subtitle,
		Authors:     payload.Authors,
		Publisher:   payload.Publisher,
		Pages:       atoiLenient(payload.Pages),
		Year:        atoiLenient(payload.Year),
		Rating:      atoiLenient(payload.Rating),
		Description: payload.Desc,
		Price:       payload.Price,
		ImageURL:    payload.Image,
		DetailURL:   payload.URL,
		PDFSamples:  payload.PDF,
	}
	if len(detail.PDFSamples) == 0 {
		detail.PDFSamples = nil
	}
	return detail, nil
}

// get performs a single rate-limited GET and decodes the JSON body.
func (c *Client) get(ctx context.Context, endpoint string, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return apperr.Gateway(err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperr.Gateway(err)
	}
	request.Header.Set("User-Agent", c.userAgent)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return apperr.Gateway(err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return apperr.NotFound("Book")
	}
	if response.StatusCode != http.StatusOK {
		return apperr.Gateway(fmt.Errorf("catalog: unexpected status %d", response.StatusCode))
	}

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		return apperr.Gateway(fmt.Errorf("catalog: decode failed: %w", err))
	}
	return nil
}

// mapBooks converts wire records into immutable [Book] values.
func mapBooks(payloads []bookPayload) []Book {
	books := make([]Book, 0, len(payloads))
	for _, p := range payloads {
		books = append(books, Book{
			ISBN13:    p.ISBN13,
			Title:     p.Title,
			Subtitle:  p.Subtitle,
			Price:     p.Price,
			ImageURL:  p.Image,
			DetailURL: p.URL,
		})
	}
	return books
}

// atoiLenient converts optional numeric strings; the detail endpoint
// occasionally omits pages/year/rating, which map to zero.
func atoiLenient(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
