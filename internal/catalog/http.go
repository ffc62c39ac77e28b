// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/bookdex/bookdex/internal/platform/request"
	"github.com/bookdex/bookdex/internal/platform/respond"
	"github.com/bookdex/bookdex/pkg/pagination"
)

// Handler exposes stateless catalog proxy routes. Browse sessions are the
// stateful path; these routes serve one-shot lookups (detail screens, deep
// links) without a session.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/new", handler.newBooks)
	router.Get("/search", handler.search)
	router.Get("/{isbn13}", handler.detail)

	return router
}

// newBooks handles GET /books/new.
func (handler *Handler) newBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.NewBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

// search handles GET /books/search?q=...&page=N.
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")

	page := pagination.DefaultPage
	if raw := request.URL.Query().Get("page"); raw != "" {
		// A non-numeric value becomes 0 and fails the page rule in the
		// service, surfacing a VALIDATION_ERROR instead of a silent page 1.
		page, _ = strconv.Atoi(raw)
	}

	books, total, err := handler.service.Search(request.Context(), query, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The upstream serves fixed pages of 10.
	respond.Paginated(writer, books, pagination.NewMeta(page, 10, total))
}

// detail handles GET /books/{isbn13}.
func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.Detail(request.Context(), requestutil.Param(request, "isbn13"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}
