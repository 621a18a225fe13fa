// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/sportscal/middleware"
	"github.com/danielhkuo/sportscal/models"
	"github.com/danielhkuo/sportscal/store"
	"github.com/danielhkuo/sportscal/validation"
)

type EventHandler struct {
	store *store.Store
}

func NewEventHandler(st *store.Store) *EventHandler {
	return &EventHandler{store: st}
}

// ListEvents handles GET /api/events?venue_name=&participant_name=
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := store.EventFilter{
		VenueName:       query.Get("venue_name"),
		ParticipantName: query.Get("participant_name"),
	}

	events, err := h.store.ListEvents(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list events")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, events)
}

// SearchEvents handles GET /api/events/search?q=
func (h *EventHandler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	events, err := h.store.SearchEvents(r.Context(), q)
	if err != nil {
		slog.Error("failed to search events", "query", q, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to search events")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, events)
}

// GetEvent handles GET /api/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event id must be an integer")
		return
	}

	event, err := h.store.GetEvent(r.Context(), id)
	if errors.Is(err, store.ErrEventNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		slog.Error("failed to get event", "event_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, event)
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Normalize()
	if err := validation.Validate(r.Context(), &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sportID, err := req.SportID.Int64()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sport_id must be an integer")
		return
	}
	venueID, err := req.VenueID.Int64()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "venue_id must be an integer")
		return
	}

	eventID, err := h.store.CreateEvent(r.Context(), models.NewEvent{
		SportID:      sportID,
		VenueID:      venueID,
		EventDate:    req.EventDate,
		EventTime:    req.EventTime,
		Description:  req.Description,
		Participants: req.Participants,
	})
	if err != nil {
		slog.Error("failed to create event", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	slog.Info("event created",
		"event_id", eventID,
		"sport_id", sportID,
		"venue_id", venueID,
		"participants", len(req.Participants),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateEventResponse{EventID: eventID})
}
