// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package favorites

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/bookdex/bookdex/internal/platform/request"
	"github.com/bookdex/bookdex/internal/platform/respond"
	"github.com/bookdex/bookdex/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/events", handler.events)
	router.Get("/{isbn13}", handler.membership)
	router.Post("/toggle", handler.toggle)
	router.Put("/{isbn13}", handler.save)
	router.Delete("/{isbn13}", handler.remove)

	return router
}

// list handles GET /favorites — most recently added first, windowed by the
// standard pagination parameters.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	window, total := pagination.Slice(records, params)

	respond.Paginated(writer, window, pagination.NewMeta(params.Page, params.Limit, total))
}

// membership handles GET /favorites/{isbn13} — a cheap boolean probe used by
// detail screens.
func (handler *Handler) membership(writer http.ResponseWriter, request *http.Request) {
	isbn := requestutil.Param(request, "isbn13")

	respond.OK(writer, map[string]any{
		"isbn13":   isbn,
		"favorite": handler.service.IsFavorite(request.Context(), isbn),
	})
}

// toggle handles POST /favorites/toggle.
func (handler *Handler) toggle(writer http.ResponseWriter, request *http.Request) {
	var input ToggleInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	favorite, err := handler.service.Toggle(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"isbn13":   input.ISBN13,
		"favorite": favorite,
	})
}

// save handles PUT /favorites/{isbn13} — the detail-screen refresh path.
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	var input ToggleInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.ISBN13 = requestutil.Param(request, "isbn13")

	record, err := handler.service.Save(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

// remove handles DELETE /favorites/{isbn13}.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Remove(request.Context(), requestutil.Param(request, "isbn13")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// events handles GET /favorites/events — a Server-Sent Events stream of
// [Change] notifications, one per favorite mutation.
//
// Connected clients re-render the single row matching the ISBN13 rather than
// reloading their lists.
func (handler *Handler) events(writer http.ResponseWriter, request *http.Request) {
	flusher, ok := writer.(http.Flusher)
	if !ok {
		http.Error(writer, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// The server's write timeout would sever the stream mid-flight; lift it
	// for this connection only. The request context still bounds the stream.
	_ = http.NewResponseController(writer).SetWriteDeadline(time.Time{})

	changes, cancel := handler.service.Changes()
	defer cancel()

	header := writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-request.Context().Done():
			return
		case change, open := <-changes:
			if !open {
				return
			}

			payload, err := json.Marshal(change)
			if err != nil {
				continue
			}
			fmt.Fprintf(writer, "event: favorite_changed\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
