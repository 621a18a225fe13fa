// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the calendar API.

# Handler Types

  - CatalogHandler: sports, venues and teams listings
  - EventHandler: event listing, search, lookup and creation
  - StaticHandler: the browser front end

API handlers are created from a *store.Store:

	eventHandler := handlers.NewEventHandler(st)

# Errors

Every failure is a JSON body {"error": "..."}:

  - 400 for malformed JSON, failed validation, or a non-integer event id
  - 404 when an event id does not exist
  - 500 for database failures; the cause is logged, not returned

# Creating Events

	POST /api/events
	{
	  "sport_id": 1,
	  "venue_id": "2",
	  "event_date": "2025-11-20",
	  "event_time": "12:00",
	  "description": "Season opener",
	  "participants": ["Team A", "Team B"]
	}

Ids may be numbers or numeric strings. Text fields are trimmed before
validation. The response is 201 {"event_id": N}.
*/
package handlers
