// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateEventRequest: sport_id, venue_id, event_date, event_time,
    description, participants

sport_id and venue_id are IntRef values, which accept either a JSON number
or a numeric string and are parsed after validation.

# Response Types

Types for JSON responses:

  - CreateEventResponse: event_id
  - ErrorResponse: error

# Domain Types

  - Sport, Venue, Team: catalog rows
  - Event: an event joined with its sport and venue names
  - EventDetail: an Event plus its participant names
  - NewEvent: a validated create request

# Calendar Fields

Every Event carries two computed fields used by the calendar front end:

	title = "{sport_name} @ {venue_name}"
	start = event_date + "T" + event_time   (seconds padded: 12:00 -> 12:00:00)

Events whose sport or venue row cannot be resolved are labelled with
UnknownSportLabel ("Event") and UnknownVenueLabel ("Venue").
*/
package models
