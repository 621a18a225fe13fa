// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/sportscal/middleware"
	"github.com/danielhkuo/sportscal/store"
)

type CatalogHandler struct {
	store *store.Store
}

func NewCatalogHandler(st *store.Store) *CatalogHandler {
	return &CatalogHandler{store: st}
}

// ListSports handles GET /api/sports
func (h *CatalogHandler) ListSports(w http.ResponseWriter, r *http.Request) {
	sports, err := h.store.ListSports(r.Context())
	if err != nil {
		slog.Error("failed to list sports", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list sports")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sports)
}

// ListVenues handles GET /api/venues
func (h *CatalogHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.store.ListVenues(r.Context())
	if err != nil {
		slog.Error("failed to list venues", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list venues")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, venues)
}

// ListTeams handles GET /api/teams
func (h *CatalogHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		slog.Error("failed to list teams", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list teams")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, teams)
}
