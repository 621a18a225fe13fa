// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the calendar server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store.New(conn, dialect), cfg)

# Endpoints

Health:

	GET /health

Reference data:

	GET /api/sports - Sports by name
	GET /api/venues - Venues by name, with city and address
	GET /api/teams  - Teams by name

Events:

	GET  /api/events           - Listing (?venue_name=, ?participant_name=)
	GET  /api/events/search    - Keyword search (?q=)
	GET  /api/events/{id}      - One event with participants
	POST /api/events           - Create event

Front end:

	GET / and GET /{path...} - Files from cfg.StaticDir

The static catch-all means any other method on a known path gets 405.
*/
package router
