// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package browse

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookdex/bookdex/internal/catalog"
	requestutil "github.com/bookdex/bookdex/internal/platform/request"
	"github.com/bookdex/bookdex/internal/platform/respond"
)

// MembershipChecker reports whether a book is currently favorited. Snapshots
// decorate each row with this flag so list cells can render a heart without a
// second round trip.
type MembershipChecker interface {
	IsFavorite(ctx context.Context, isbn13 string) bool
}

// Handler exposes the browse-session routes.
type Handler struct {
	manager    *Manager
	membership MembershipChecker
}

func NewHandler(manager *Manager, membership MembershipChecker) *Handler {
	return &Handler{manager: manager, membership: membership}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.create)
	router.Get("/{sessionID}", handler.snapshot)
	router.Put("/{sessionID}/query", handler.submitQuery)
	router.Post("/{sessionID}/visible", handler.reportVisible)
	router.Delete("/{sessionID}", handler.remove)

	return router
}

type sessionCreatedResponse struct {
	ID string `json:"id"`
}

type queryRequest struct {
	Query string `json:"query"`
}

type visibleRequest struct {
	Index int `json:"index"`
}

type visibleResponse struct {
	Triggered bool `json:"triggered"`
}

// rowView is a catalog book decorated with favorite membership.
type rowView struct {
	catalog.Book
	IsFavorite bool `json:"is_favorite"`
}

type snapshotResponse struct {
	ID               string    `json:"id"`
	Query            string    `json:"query"`
	Intent           Intent    `json:"intent"`
	Items            []rowView `json:"items"`
	CurrentPage      int       `json:"current_page"`
	TotalAvailable   int       `json:"total_available"`
	HasMore          bool      `json:"has_more"`
	IsLoadingInitial bool      `json:"is_loading_initial"`
	IsLoadingMore    bool      `json:"is_loading_more"`
	ErrorMessage     string    `json:"error_message,omitempty"`
}

// create handles POST /browse.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	session := handler.manager.Create()
	respond.Created(writer, sessionCreatedResponse{ID: session.ID})
}

// snapshot handles GET /browse/{sessionID}.
func (handler *Handler) snapshot(writer http.ResponseWriter, request *http.Request) {
	session, err := handler.manager.Get(requestutil.Param(request, "sessionID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rawQuery, state := session.State()

	rows := make([]rowView, 0, len(state.Items))
	for _, book := range state.Items {
		rows = append(rows, rowView{
			Book:       book,
			IsFavorite: handler.membership.IsFavorite(request.Context(), book.ISBN13),
		})
	}

	respond.OK(writer, snapshotResponse{
		ID:               session.ID,
		Query:            rawQuery,
		Intent:           state.Intent,
		Items:            rows,
		CurrentPage:      state.CurrentPage,
		TotalAvailable:   state.TotalAvailable,
		HasMore:          state.HasMore(),
		IsLoadingInitial: state.IsLoadingInitial,
		IsLoadingMore:    state.IsLoadingMore,
		ErrorMessage:     state.ErrorMessage,
	})
}

// submitQuery handles PUT /browse/{sessionID}/query. It returns immediately;
// the resulting load, if any, happens after the quiet period.
func (handler *Handler) submitQuery(writer http.ResponseWriter, request *http.Request) {
	session, err := handler.manager.Get(requestutil.Param(request, "sessionID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload queryRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session.SubmitQuery(payload.Query)
	respond.JSON(writer, http.StatusAccepted, respond.SuccessEnvelope{Data: queryRequest{Query: payload.Query}})
}

// reportVisible handles POST /browse/{sessionID}/visible.
func (handler *Handler) reportVisible(writer http.ResponseWriter, request *http.Request) {
	session, err := handler.manager.Get(requestutil.Param(request, "sessionID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload visibleRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	triggered := session.ReportVisible(request.Context(), payload.Index)
	respond.OK(writer, visibleResponse{Triggered: triggered})
}

// remove handles DELETE /browse/{sessionID}.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.manager.Close(requestutil.Param(request, "sessionID")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
