package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Placeholder labels for events whose sport or venue row is missing
const (
	UnknownSportLabel = "Event"
	UnknownVenueLabel = "Venue"
)

// Request types

type CreateEventRequest struct {
	SportID      IntRef   `json:"sport_id" validate:"required,integer"`
	VenueID      IntRef   `json:"venue_id" validate:"required,integer"`
	EventDate    string   `json:"event_date" validate:"required"`
	EventTime    string   `json:"event_time" validate:"required"`
	Description  string   `json:"description"`
	Participants []string `json:"participants" validate:"dive,required"`
}

// Normalize trims surrounding whitespace from every text field.
func (r *CreateEventRequest) Normalize() {
	r.SportID = IntRef(strings.TrimSpace(string(r.SportID)))
	r.VenueID = IntRef(strings.TrimSpace(string(r.VenueID)))
	r.EventDate = strings.TrimSpace(r.EventDate)
	r.EventTime = strings.TrimSpace(r.EventTime)
	r.Description = strings.TrimSpace(r.Description)
	for i, p := range r.Participants {
		r.Participants[i] = strings.TrimSpace(p)
	}
}

// IntRef is a row reference that arrives either as a JSON number or as a
// numeric string. The raw text is kept so validation can report a bad value
// against the field name instead of failing the whole decode.
type IntRef string

func (r *IntRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = IntRef(s)
		return nil
	}
	*r = IntRef(b)
	return nil
}

func (r IntRef) MarshalJSON() ([]byte, error) {
	if n, err := r.Int64(); err == nil {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(r))
}

// Int64 parses the reference as a base-10 integer
func (r IntRef) Int64() (int64, error) {
	return strconv.ParseInt(string(r), 10, 64)
}

// NewEvent is a validated create request ready for insertion.
type NewEvent struct {
	SportID      int64
	VenueID      int64
	EventDate    string
	EventTime    string
	Description  string
	Participants []string
}

// Response types

type CreateEventResponse struct {
	EventID int64 `json:"event_id"`
}

// Domain types

type Sport struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Venue struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Event struct {
	ID          int64  `json:"event_id"`
	SportID     int64  `json:"sport_id"`
	VenueID     int64  `json:"venue_id"`
	EventDate   string `json:"event_date"`
	EventTime   string `json:"event_time"`
	Description string `json:"description,omitempty"`
	SportName   string `json:"sport_name"`
	VenueName   string `json:"venue_name"`
	Title       string `json:"title"`
	Start       string `json:"start,omitempty"`
}

// Decorate fills the calendar fields derived from the stored columns.
func (e *Event) Decorate() {
	e.Title = EventTitle(e.SportName, e.VenueName)
	e.Start = StartTimestamp(e.EventDate, e.EventTime)
}

type EventDetail struct {
	Event
	Participants []string `json:"participants"`
}

// StartTimestamp joins a date and a time of day with a literal T.
// A time without seconds ("12:00") is padded to "12:00:00".
// Returns "" when either part is missing.
func StartTimestamp(date, timeOfDay string) string {
	if date == "" || timeOfDay == "" {
		return ""
	}
	if strings.Count(timeOfDay, ":") == 1 {
		timeOfDay += ":00"
	}
	return date + "T" + timeOfDay
}

func EventTitle(sport, venue string) string {
	return sport + " @ " + venue
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
