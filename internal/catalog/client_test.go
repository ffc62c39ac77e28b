// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookdex/bookdex/internal/catalog"
	"github.com/bookdex/bookdex/internal/platform/apperr"
)

func newTestClient(handler http.Handler) (*catalog.Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return catalog.NewClient(server.URL, 1000, 5*time.Second), server
}

func TestClient_SearchBooks(t *testing.T) {
	t.Parallel()

	var gotPath, gotAgent string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		// Numerics arrive string-encoded on the wire.
		_, _ = w.Write([]byte(`{
			"error": "0",
			"total": "80",
			"page": "1",
			"books": [
				{
					"title": "Practical MongoDB",
					"subtitle": "Architecting, Developing, and Administering MongoDB",
					"isbn13": "9781484206485",
					"price": "$32.04",
					"image": "https://itbook.store/img/books/9781484206485.png",
					"url": "https://itbook.store/books/9781484206485"
				}
			]
		}`))
	}))
	defer server.Close()

	books, total, err := client.SearchBooks(context.Background(), "mongodb", 1)
	require.NoError(t, err)

	assert.Equal(t, "/search/mongodb/1", gotPath)
	assert.Contains(t, gotAgent, "bookdex")
	assert.Equal(t, 80, total)
	require.Len(t, books, 1)
	assert.Equal(t, catalog.Book{
		ISBN13:    "9781484206485",
		Title:     "Practical MongoDB",
		Subtitle:  "Architecting, Developing, and Administering MongoDB",
		Price:     "$32.04",
		ImageURL:  "https://itbook.store/img/books/9781484206485.png",
		DetailURL: "https://itbook.store/books/9781484206485",
	}, books[0])
}

func TestClient_SearchBooksEscapesQuery(t *testing.T) {
	t.Parallel()

	var gotEscaped string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEscaped = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"error":"0","total":"0","books":[]}`))
	}))
	defer server.Close()

	_, _, err := client.SearchBooks(context.Background(), "c++ primer", 2)
	require.NoError(t, err)
	assert.Equal(t, "/search/c++%20primer/2", gotEscaped)
}

func TestClient_SearchBooksMalformedTotal(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"0","total":"lots","books":[]}`))
	}))
	defer server.Close()

	_, _, err := client.SearchBooks(context.Background(), "go", 1)
	require.Error(t, err)
	assert.True(t, apperr.IsGateway(err))
}

func TestClient_FetchNewBooks(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/new", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"error": "0",
			"total": "2",
			"books": [
				{"title": "First", "isbn13": "9781001001001", "price": "$10.00"},
				{"title": "Second", "isbn13": "9781001001002", "price": "$20.00"}
			]
		}`))
	}))
	defer server.Close()

	books, err := client.FetchNewBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "First", books[0].Title)
	assert.Equal(t, "9781001001002", books[1].ISBN13)
}

func TestClient_FetchBookDetail(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books/9781617294136", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"error": "0",
			"title": "Securing DevOps",
			"authors": "Julien Vehent",
			"publisher": "Manning",
			"isbn10": "1617294136",
			"isbn13": "9781617294136",
			"pages": "384",
			"year": "2018",
			"rating": "4",
			"desc": "An introduction to securing cloud services.",
			"price": "$26.98",
			"image": "https://itbook.store/img/books/9781617294136.png",
			"url": "https://itbook.store/books/9781617294136",
			"pdf": {"Chapter 2": "https://itbook.store/files/9781617294136/chapter2.pdf"}
		}`))
	}))
	defer server.Close()

	detail, err := client.FetchBookDetail(context.Background(), "9781617294136")
	require.NoError(t, err)

	assert.Equal(t, 384, detail.Pages)
	assert.Equal(t, 2018, detail.Year)
	assert.Equal(t, 4, detail.Rating)
	assert.Equal(t, "Julien Vehent", detail.Authors)
	assert.Len(t, detail.PDFSamples, 1)

	summary := detail.Summary()
	assert.Equal(t, "9781617294136", summary.ISBN13)
	assert.Equal(t, "Securing DevOps", summary.Title)
}

func TestClient_NotFound(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := client.FetchBookDetail(context.Background(), "9780000000000")
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestClient_UpstreamErrorStatus(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := client.FetchNewBooks(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.IsGateway(err))
}

func TestClient_MalformedBody(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	_, err := client.FetchNewBooks(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.IsGateway(err))
}
