// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the query and persistence layer for the calendar catalog.

	st := store.New(conn, db.SQLite)
	events, err := st.ListEvents(ctx, store.EventFilter{VenueName: "arena"})

# Listings

ListEvents joins each event to its sport and venue and orders by date, then
time. Optional filters add a case-insensitive substring match on the venue
name and an EXISTS sub-select over participant names; nothing is joined or
filtered unless asked for.

SearchEvents matches one keyword against sport name, venue name, date, time
and description. A blank keyword returns an empty slice without a query.

Events with a missing sport or venue still list, labelled "Event" / "Venue".

# Query Building

Filters are composed with a small builder that accumulates predicates and
bound arguments; user input never ends up in SQL text. LIKE wildcards in
user input are escaped.

# Writes

CreateEvent inserts the event and its participant rows in one transaction.
If any participant insert fails, the event row is rolled back with it.
*/
package store
